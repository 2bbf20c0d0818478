package llm

import "strings"

// chatPricing holds USD per 1K tokens as [input, output] for the chat
// models the relay is expected to run against. Dated snapshots
// ("gpt-4o-2024-08-06") resolve to their family by longest prefix.
var chatPricing = map[string][2]float64{
	"gpt-4o":        {0.0025, 0.01},
	"gpt-4o-mini":   {0.00015, 0.0006},
	"gpt-4.1":       {0.002, 0.008},
	"gpt-4.1-mini":  {0.0004, 0.0016},
	"gpt-4-turbo":   {0.01, 0.03},
	"gpt-3.5-turbo": {0.0005, 0.0015},
}

// EstimateCost returns the USD cost of a completion, or 0 for unknown models.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	var (
		best   string
		prices [2]float64
	)
	for family, p := range chatPricing {
		if strings.HasPrefix(model, family) && len(family) > len(best) {
			best, prices = family, p
		}
	}
	if best == "" {
		return 0
	}
	return float64(inputTokens)/1000.0*prices[0] + float64(outputTokens)/1000.0*prices[1]
}
