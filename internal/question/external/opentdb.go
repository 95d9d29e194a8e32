package external

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// OpenTDBClient fetches questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenTDBClient(baseURL string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &OpenTDBClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// OpenTDBQuestion is one result with HTML entities already decoded.
type OpenTDBQuestion struct {
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	Difficulty      string   `json:"difficulty"`
	Question        string   `json:"question"`
	CorrectAnswer   string   `json:"correct_answer"`
	IncorrectAnswer []string `json:"incorrect_answers"`
}

type openTDBResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []OpenTDBQuestion `json:"results"`
}

// MaxAmount is the largest batch the API serves per call.
const MaxAmount = 50

// Fetch requests amount multiple-choice questions, optionally restricted to a difficulty.
func (c *OpenTDBClient) Fetch(ctx context.Context, amount int, difficulty string) ([]OpenTDBQuestion, error) {
	if amount <= 0 {
		return nil, nil
	}
	if amount > MaxAmount {
		amount = MaxAmount
	}

	values := url.Values{}
	values.Set("amount", fmt.Sprint(amount))
	values.Set("type", "multiple")
	if difficulty != "" {
		values.Set("difficulty", difficulty)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api.php?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("opentdb non-200: %d", resp.StatusCode)
	}

	var payload openTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb response code %d", payload.ResponseCode)
	}

	for i := range payload.Results {
		unescape(&payload.Results[i])
	}
	return payload.Results, nil
}

// CategoryLabel strips the OpenTDB sub-category: "Entertainment: Film" -> "Entertainment".
func CategoryLabel(category string) string {
	if idx := strings.Index(category, ":"); idx >= 0 {
		category = category[:idx]
	}
	return strings.TrimSpace(category)
}

// DifficultyScore maps OpenTDB difficulty names onto the numeric scale.
func DifficultyScore(difficulty string) int {
	switch strings.ToLower(difficulty) {
	case "easy":
		return 1
	case "hard":
		return 3
	default:
		return 2
	}
}

func unescape(q *OpenTDBQuestion) {
	q.Category = html.UnescapeString(q.Category)
	q.Question = html.UnescapeString(q.Question)
	q.CorrectAnswer = html.UnescapeString(q.CorrectAnswer)
	for i, a := range q.IncorrectAnswer {
		q.IncorrectAnswer[i] = html.UnescapeString(a)
	}
}
