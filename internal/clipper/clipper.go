// Package clipper extracts structured recipe drafts from recipe web pages.
// Drafts are returned for human review; they are never inserted into the
// immutable recipe catalog.
package clipper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"grocery-assistant/internal/llm"
	"grocery-assistant/internal/metrics"
	"grocery-assistant/internal/recipe"
)

// Clipper fetches recipe URLs and structures them through an LLM.
type Clipper struct {
	textGen llm.TextGenerator
	metrics *metrics.Store
	client  *http.Client
}

// DraftRecipe is the AI-structured output, shaped to match the catalog's
// recipe model so a reviewer can compare it line by line.
type DraftRecipe struct {
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Servings        int                     `json:"servings"`
	PrepTimeMinutes int                     `json:"prep_time_minutes"`
	CookTimeMinutes int                     `json:"cook_time_minutes"`
	Ingredients     []recipe.IngredientLine `json:"ingredients"`
	Steps           []string                `json:"steps"`
	SourceURL       string                  `json:"source_url"`
}

// NewClipper creates a Clipper. Metric records go to store when it is
// non-nil.
func NewClipper(textGen llm.TextGenerator, store *metrics.Store) *Clipper {
	return &Clipper{
		textGen: textGen,
		metrics: store,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ClipURL fetches the URL and extracts a structured recipe draft.
func (c *Clipper) ClipURL(ctx context.Context, url string) (*DraftRecipe, error) {
	content, err := c.fetchAndCleanHTML(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a culinary parser that extracts ingredients with quantities and normalized units.
Extract the recipe from the following page text and return strictly a JSON object with this structure:
{
  "title": "Recipe Title",
  "description": "One sentence summary",
  "servings": 4,
  "prep_time_minutes": 15,
  "cook_time_minutes": 30,
  "ingredients": [{"ingredient": "normalized name", "quantity": 1.5, "unit": "g | ml | pieces | tbsp | tsp"}, ...],
  "steps": ["Step 1 description", ...]
}

Resolve fractions to decimals, prefer metric units, and use lowercase pantry-friendly ingredient names.
Ensure the output is valid JSON. Do not wrap the response in markdown code blocks.

Page content:
%s
`, content)

	started := time.Now()
	resp, err := c.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}
	if c.metrics != nil {
		c.metrics.Record(metrics.ExecutionMetric{
			AgentName:        "recipe_clipper",
			Model:            "gemini-1.5-flash",
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			LatencyMS:        time.Since(started).Milliseconds(),
		})
	}

	var draft DraftRecipe
	if err := json.Unmarshal([]byte(stripCodeFences(resp.Content)), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w. Response: %s", err, resp.Content)
	}
	draft.SourceURL = url
	return &draft, nil
}

func (c *Clipper) fetchAndCleanHTML(url string) (string, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return doc.Find("body").Text(), nil
}

// stripCodeFences removes a markdown code fence if the model added one
// despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
