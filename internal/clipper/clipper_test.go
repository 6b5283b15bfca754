package clipper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocery-assistant/internal/llm"
	"grocery-assistant/internal/metrics"
)

type MockTextGenerator struct {
	lastPrompt string
	response   string
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	m.lastPrompt = prompt
	return llm.ContentResponse{
		Content: m.response,
		Usage:   llm.TokenUsage{PromptTokens: 120, CompletionTokens: 80},
	}, nil
}

const pageHTML = `<html><head><script>var tracking = true;</script></head>
<body><h1>Midnight Pasta</h1><p>A garlicky late-night classic for 2.</p>
<ul><li>200 g spaghetti</li><li>3 cloves garlic</li></ul></body></html>`

func TestClipURL(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(pageHTML))
	}))
	defer page.Close()

	gen := &MockTextGenerator{response: "```json\n" + `{
		"title": "Midnight Pasta",
		"description": "A garlicky late-night classic.",
		"servings": 2,
		"prep_time_minutes": 5,
		"cook_time_minutes": 15,
		"ingredients": [
			{"ingredient": "spaghetti", "quantity": 200, "unit": "g"},
			{"ingredient": "garlic", "quantity": 3, "unit": "cloves"}
		],
		"steps": ["Boil pasta.", "Fry garlic.", "Toss together."]
	}` + "\n```"}
	store := metrics.NewStore()

	draft, err := NewClipper(gen, store).ClipURL(context.Background(), page.URL)
	if err != nil {
		t.Fatalf("ClipURL failed: %v", err)
	}

	if draft.Title != "Midnight Pasta" {
		t.Errorf("Expected title 'Midnight Pasta', got %q", draft.Title)
	}
	if len(draft.Ingredients) != 2 || draft.Ingredients[0].Ingredient != "spaghetti" {
		t.Errorf("Expected parsed ingredient lines, got %v", draft.Ingredients)
	}
	if draft.SourceURL != page.URL {
		t.Errorf("Expected source URL %s, got %s", page.URL, draft.SourceURL)
	}

	// Script content is stripped before the text reaches the LLM.
	if strings.Contains(gen.lastPrompt, "tracking") {
		t.Error("Expected script content to be removed from the prompt")
	}
	if !strings.Contains(gen.lastPrompt, "200 g spaghetti") {
		t.Error("Expected page text to be included in the prompt")
	}

	summary := store.Summarize()
	if summary.Executions != 1 {
		t.Errorf("Expected 1 recorded execution, got %d", summary.Executions)
	}
	if summary.PromptTokens != 120 || summary.CompletionTokens != 80 {
		t.Errorf("Expected token usage recorded, got %+v", summary)
	}
}

func TestClipURLBadResponse(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(pageHTML))
	}))
	defer page.Close()

	gen := &MockTextGenerator{response: "Sorry, I could not find a recipe."}
	if _, err := NewClipper(gen, nil).ClipURL(context.Background(), page.URL); err == nil {
		t.Fatal("Expected an error for a non-JSON response, got nil")
	}
}

func TestClipURLFetchFailure(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer page.Close()

	if _, err := NewClipper(&MockTextGenerator{}, nil).ClipURL(context.Background(), page.URL); err == nil {
		t.Fatal("Expected an error for a failed fetch, got nil")
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
	}
	for _, c := range cases {
		if got := stripCodeFences(c.in); got != c.want {
			t.Errorf("stripCodeFences(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
