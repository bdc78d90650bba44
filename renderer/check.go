package renderer

import "github.com/fondos-dev/fondos"

// ChecksMarkdown renders the transfer-consistency diagnostics.
func ChecksMarkdown(diags []fondos.TransferDiagnostic) string {
	return renderTemplate("check", "check.md", nil, diags)
}
