package renderer

import "github.com/fondos-dev/fondos"

// VariationMarkdown renders one lookback window's report to markdown.
func VariationMarkdown(r *fondos.VariationReport) string {
	partials := map[string]string{
		"variation_consolidated": "variation_consolidated.md",
		"variation_funds":        "variation_funds.md",
		"variation_units":        "variation_units.md",
	}
	return renderTemplate("variation", "variation.md", partials, r)
}
