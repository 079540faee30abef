// Package ai fetches a single "challenge" task suggestion from the Claude
// Messages API. The call is an opaque fallible remote operation: there is
// no retry policy here, the caller may simply try again.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultModel     = "claude-3-haiku-20240307"
	defaultMaxTokens = 50
	defaultAPIURL    = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"
)

// weekdays holds the Japanese weekday names, Sunday first, used in the
// suggestion prompt.
var weekdays = []string{
	"にちようび", "げつようび", "かようび", "すいようび",
	"もくようび", "きんようび", "どようび",
}

// Request describes the day the suggestion is for and the tasks that
// already exist, so the model can avoid duplicates.
type Request struct {
	// DayOfWeek is 0 (Sunday) through 6 (Saturday).
	DayOfWeek int

	// Month is 1 through 12.
	Month int

	// Day is the day of the month.
	Day int

	// ExistingTasks is the display text of today's current tasks.
	ExistingTasks []string
}

// Suggester calls the Claude API to produce one short task suggestion.
type Suggester struct {
	apiKey    string
	model     string
	maxTokens int
	apiURL    string
	client    *http.Client
}

// New creates a Suggester with the given API key and model name.
// An empty model name selects the default.
func New(apiKey, modelName string, maxTokens int) *Suggester {
	if modelName == "" {
		modelName = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Suggester{
		apiKey:    apiKey,
		model:     modelName,
		maxTokens: maxTokens,
		apiURL:    defaultAPIURL,
		client:    &http.Client{},
	}
}

// SetEndpoint overrides the API URL. Used by tests.
func (s *Suggester) SetEndpoint(url string) {
	s.apiURL = url
}

// Suggest requests one suggestion for the given day and returns its text.
func (s *Suggester) Suggest(ctx context.Context, req Request) (string, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return "", fmt.Errorf("invalid day of week: %d", req.DayOfWeek)
	}

	reqBody := apiRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []apiMessage{
			{
				Role: "user",
				Content: []apiContentBlock{
					{Type: "text", Text: buildPrompt(req)},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, s.apiURL, bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", s.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			suggestion := strings.TrimSpace(block.Text)
			if suggestion == "" {
				break
			}
			return suggestion, nil
		}
	}

	return "", fmt.Errorf("empty suggestion in response")
}

// buildPrompt constructs the Japanese suggestion prompt for the given day.
func buildPrompt(req Request) string {
	existing := "まだ「やること」はありません"
	if len(req.ExistingTasks) > 0 {
		existing = "すでにある「やること」: " + strings.Join(req.ExistingTasks, "、")
	}

	var sb strings.Builder
	sb.WriteString("あなたは小学2年生の子どもに「やること」を提案するアシスタントです。\n\n")
	fmt.Fprintf(&sb, "今日は%d月の%sです。\n", req.Month, weekdays[req.DayOfWeek])
	sb.WriteString(existing)
	sb.WriteString("\n\n以下の条件で、子どもに1つだけ「やること」を提案してください：\n")
	sb.WriteString("- ひらがなで書く（小学1年生で習う簡単な漢字は使ってOK）\n")
	sb.WriteString("- 10文字以内で短く\n")
	sb.WriteString("- 子どもが自分でできること\n")
	sb.WriteString("- 楽しそうなこと\n")
	sb.WriteString("- すでにある「やること」と重複しない\n\n")
	sb.WriteString("提案だけを出力してください（説明不要）。")

	return sb.String()
}

// --- Claude API types ---

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string            `json:"role"`
	Content []apiContentBlock `json:"content"`
}

type apiContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type apiResponse struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Role       string            `json:"role"`
	Content    []apiContentBlock `json:"content"`
	Model      string            `json:"model"`
	StopReason string            `json:"stop_reason"`
}

type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
