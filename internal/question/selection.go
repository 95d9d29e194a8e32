package question

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Paginate returns the 1-based page of items. Pages below 1 are treated as the
// first page; a page past the end yields an empty slice.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	pages := (len(items) + PageSize - 1) / PageSize
	if page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// Search keeps the questions whose text contains term, ignoring case.
func Search(items []Question, term string) []Question {
	needle := strings.ToLower(term)
	out := make([]Question, 0, len(items))
	for _, q := range items {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			out = append(out, q)
		}
	}
	return out
}

// ByCategory keeps the questions filed under categoryID.
func ByCategory(items []Question, categoryID int) []Question {
	out := make([]Question, 0, len(items))
	for _, q := range items {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out
}

// ValidCategory reports whether categoryID is acceptable given the number of
// known categories. The check is ordinal: ids 1..categoryCount are accepted
// whether or not a category with that exact id exists.
func ValidCategory(categoryID, categoryCount int) bool {
	return categoryID >= 1 && categoryID <= categoryCount
}

// Selector picks quiz questions. It is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector builds a selector around rnd. A nil rnd is seeded from the clock.
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rnd: rnd}
}

// Next returns a random question from pool that belongs to category (any
// category when nil) and whose id is not in previous. It returns nil once the
// eligible pool is exhausted.
func (s *Selector) Next(category *Category, previous []int, pool []Question) *Question {
	asked := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	eligible := make([]Question, 0, len(pool))
	for _, q := range pool {
		if category != nil && q.Category != category.ID {
			continue
		}
		if _, seen := asked[q.ID]; seen {
			continue
		}
		eligible = append(eligible, q)
	}
	if len(eligible) == 0 {
		return nil
	}

	s.mu.Lock()
	idx := s.rnd.Intn(len(eligible))
	s.mu.Unlock()

	picked := eligible[idx]
	return &picked
}
