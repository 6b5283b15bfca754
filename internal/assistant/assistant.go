// Package assistant carries the assistant capability statement and the
// prompt/guardrail configuration. The prompt and guardrail documents are
// configuration handed through to clients verbatim, so they stay as embedded
// JSON instead of Go types.
package assistant

import (
	_ "embed"
	"encoding/json"
)

//go:embed prompts.json
var promptsJSON []byte

//go:embed guardrails.json
var guardrailsJSON []byte

// Capabilities describes what the assistant can and cannot do. Automatic
// purchasing is off by design: every flow ends at a human-reviewable cart.
type Capabilities struct {
	AutomaticShopping  bool     `json:"automaticShopping"`
	Description        string   `json:"description"`
	RequiresUserReview bool     `json:"requiresUserReview"`
	SupportedFlows     []string `json:"supportedFlows"`
	UnsupportedFlows   []string `json:"unsupportedFlows"`
}

// GetCapabilities returns the capability statement.
func GetCapabilities() Capabilities {
	return Capabilities{
		AutomaticShopping:  false,
		Description:        "The prototype can search products, stage carts, and build checkout links, but a human must confirm and submit orders.",
		RequiresUserReview: true,
		SupportedFlows:     []string{"store_lookup", "product_search", "cart_building", "checkout_handoff"},
		UnsupportedFlows:   []string{"auto_purchase", "payment_processing"},
	}
}

// Prompts returns the assistant prompt configuration verbatim.
func Prompts() json.RawMessage {
	return json.RawMessage(promptsJSON)
}

// Guardrails returns the guardrail policy configuration verbatim.
func Guardrails() json.RawMessage {
	return json.RawMessage(guardrailsJSON)
}
