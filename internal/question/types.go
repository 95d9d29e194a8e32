package question

// PageSize is the fixed number of questions per page.
const PageSize = 10

// Question is the formatted record returned to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Listing is a set of questions plus the context a listing endpoint reports.
type Listing struct {
	Questions  []Question
	Total      int
	Categories []Category
}

// Mutation describes the collection after a create or delete.
type Mutation struct {
	ID        int
	Questions []Question
	Total     int
}

// CreateRequest carries the fields for a new question.
type CreateRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuizRequest is the session state a client sends with every quiz call.
// A nil Category means questions from every category are eligible.
type QuizRequest struct {
	Category          *Category
	PreviousQuestions []int
}

// CategoryMap renders categories as the id -> label object clients expect.
func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
