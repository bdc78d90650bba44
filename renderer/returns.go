package renderer

// ReturnsTable carries the flattened returns export for rendering.
type ReturnsTable struct {
	Header []string
	Rows   [][]string
}

// ReturnsMarkdown renders the per-fund published returns as a markdown table.
func ReturnsMarkdown(header []string, rows [][]string) string {
	return renderTemplate("returns", "returns.md", nil, &ReturnsTable{Header: header, Rows: rows})
}
