// Package llm provides the Gemini client and the CV oracles built on it:
// structured extraction, summary generation and skill grouping.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite serves cheap calls: language-bound summaries, grouping.
	TierLite ModelTier = "lite"
	// TierStandard serves structured extraction of full CV records.
	TierStandard ModelTier = "standard"
)

// Config holds the model names used per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the standard
// tier when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}
