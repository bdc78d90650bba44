package fondos

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrImpossibleWindow reports a lookback window whose start date cannot be
// computed. The window is skipped, never fatal.
var ErrImpossibleWindow = errors.New("window start date cannot be computed")

// DatedValue is one point of a plot-ready money series.
type DatedValue struct {
	Date  Date
	Value Money
}

// DatedPercent is one point of a plot-ready percent series.
type DatedPercent struct {
	Date  Date
	Value Percent
}

// FundVariation is the action-adjusted performance series of one fund over a
// window: the portion of balance change attributable to investment
// performance, with cash-flow effects removed.
type FundVariation struct {
	Fund   string
	Values []DatedValue
}

// UnitReturn is the percent change of a fund's published unit value relative
// to the first record of the window. Unit pricing already excludes
// subscription and redemption effects, so this series is not flow-adjusted.
type UnitReturn struct {
	Fund   string
	Values []DatedPercent
}

// Consolidated sums the window across every included fund.
type Consolidated struct {
	Invested Money // initial balances plus every action from the initial date onward
	Last     Money // last balances
	Profit   Money
	Percent  Percent
}

// VariationReport is the complete output for one lookback window, handed to
// the rendering layer.
type VariationReport struct {
	Days         int
	Start, End   Date
	Funds        []FundVariation
	UnitReturns  []UnitReturn
	Consolidated Consolidated
}

// Variation computes the action-adjusted performance of every fund over the
// lookback window of the given number of days ending today. Funds with no
// balance on or after the start date are excluded. Windows are independent
// of each other and never mutate the ledger.
func (l *Ledger) Variation(today Date, days int) (*VariationReport, error) {
	start := today.Add(-days)
	if start.Year() < 1 {
		return nil, fmt.Errorf("window of %d days ending %s: %w", days, today, ErrImpossibleWindow)
	}
	report := &VariationReport{Days: days, Start: start, End: today}

	var invested, last Money
	included := false
	for _, s := range l.Funds() {
		i0, ok := s.firstBalanceOnOrAfter(start)
		if !ok {
			continue
		}
		included = true
		initial := s.Balances[i0]

		// Actions dated before the initial balance are already baked into it;
		// the window's flows start on the initial date.
		cursor := 0
		for cursor < len(s.Actions) && s.Actions[cursor].Date.Before(initial.Date) {
			cursor++
		}
		flowStart := cursor

		fv := FundVariation{Fund: s.Name}
		fv.Values = append(fv.Values, DatedValue{Date: initial.Date, Value: 0})
		running := initial.Balance
		for _, b := range s.Balances[i0+1:] {
			// Consume every flow dated strictly before this balance.
			var consumed Money
			for cursor < len(s.Actions) && s.Actions[cursor].Date.Before(b.Date) {
				consumed = consumed.Add(s.Actions[cursor].Change)
				cursor++
			}
			before := running
			running = running.Add(consumed)
			adjusted := b.Balance.Sub(consumed)
			variation1 := adjusted.Sub(before)
			variation2 := b.Balance.Sub(running)
			// The two agree in exact arithmetic; keeping the smaller
			// magnitude damps ordering edge cases at flow boundaries. This
			// is a numerical-robustness heuristic, not a financial
			// definition.
			v := variation1
			if variation2.Abs() < variation1.Abs() {
				v = variation2
			}
			fv.Values = append(fv.Values, DatedValue{Date: b.Date, Value: v})
		}
		report.Funds = append(report.Funds, fv)

		invested = invested.Add(initial.Balance)
		for _, a := range s.Actions[flowStart:] {
			if a.Date.After(today) {
				break
			}
			invested = invested.Add(a.Change)
		}
		last = last.Add(s.Balances[len(s.Balances)-1].Balance)
	}

	report.Consolidated = consolidate(invested, last)
	if !included {
		report.Consolidated.Percent = NA()
	}

	for _, s := range l.Funds() {
		i0, ok := s.firstFundValueOnOrAfter(start)
		if !ok {
			continue
		}
		first := s.FundValues[i0]
		if first.UnitValue.IsZero() {
			continue
		}
		ur := UnitReturn{Fund: s.Name}
		base := decimal.NewFromInt(first.UnitValue.Cents())
		for _, fv := range s.FundValues[i0:] {
			p := decimal.NewFromInt(fv.UnitValue.Cents()).
				Div(base).
				Sub(decimal.NewFromInt(1)).
				Mul(decimal.NewFromInt(100))
			ur.Values = append(ur.Values, DatedPercent{Date: fv.Date, Value: Percent(p.InexactFloat64())})
		}
		report.UnitReturns = append(report.UnitReturns, ur)
	}

	return report, nil
}

// consolidate derives the portfolio-level figures for a window.
func consolidate(invested, last Money) Consolidated {
	c := Consolidated{Invested: invested, Last: last, Profit: last.Sub(invested), Percent: NA()}
	if !invested.IsZero() {
		p := decimal.NewFromInt(c.Profit.Cents()).
			Div(decimal.NewFromInt(invested.Cents())).
			Mul(decimal.NewFromInt(100))
		c.Percent = Percent(p.InexactFloat64())
	}
	return c
}
