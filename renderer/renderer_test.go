package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/fondos-dev/fondos"
)

func TestVariationMarkdown(t *testing.T) {
	d0 := fondos.NewDate(2023, time.May, 1)
	r := &fondos.VariationReport{
		Days:  30,
		Start: d0.Add(-30),
		End:   d0,
		Funds: []fondos.FundVariation{{
			Fund: "Fondo Abierto",
			Values: []fondos.DatedValue{
				{Date: d0.Add(-2), Value: 0},
				{Date: d0, Value: 5000},
			},
		}},
		UnitReturns: []fondos.UnitReturn{{
			Fund: "Fondo Abierto",
			Values: []fondos.DatedPercent{
				{Date: d0.Add(-2), Value: 0},
				{Date: d0, Value: 1.25},
			},
		}},
		Consolidated: fondos.Consolidated{
			Invested: 110000,
			Last:     115000,
			Profit:   5000,
			Percent:  4.55,
		},
	}

	got := VariationMarkdown(r)
	for _, want := range []string{
		"# Variation over 30 days",
		"Fondo Abierto",
		"+$50.00",
		"$1,100.00",
		"$1,150.00",
		"+4.55%",
		"+1.25%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("rendered report contains a template error:\n%s", got)
	}
}

func TestReturnsMarkdown(t *testing.T) {
	got := ReturnsMarkdown(
		[]string{"Fund", "Last year"},
		[][]string{{"Fondo Abierto", "4.50%"}, {"Otro Fondo", "NA"}},
	)
	for _, want := range []string{"# Published returns", "| Fund |", "| Fondo Abierto |", "| NA |"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered table missing %q:\n%s", want, got)
		}
	}
}

func TestChecksMarkdown(t *testing.T) {
	on := fondos.NewDate(2023, time.May, 2)

	if got := ChecksMarkdown(nil); !strings.Contains(got, "matching leg") {
		t.Errorf("empty diagnostics render:\n%s", got)
	}

	diags := []fondos.TransferDiagnostic{{
		Fund:          "Origen",
		Action:        fondos.Action{Date: on, Change: -20000},
		Likely:        "Cercano",
		LikelyBalance: 69000,
	}}
	got := ChecksMarkdown(diags)
	for _, want := range []string{"Origen", "-$200.00", "Cercano", "$690.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("diagnostics render missing %q:\n%s", want, got)
		}
	}
}
