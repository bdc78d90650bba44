package fondos

import (
	"bufio"
	"io"
	"strings"
)

// Literal page markers from the portal. The state machines match these
// verbatim; any drift in the portal's boilerplate surfaces as a page that
// never leaves its header state.
const (
	statusHeaderMark = "Anual**"
	statusFooterMark = "Total\t"
	statusEndMark    = "Aprenda aquí sobre el producto\tAprenda aquí sobre el producto"

	movementsHeaderMark = "Fecha\tNombre del multiportafolio\tMovimiento\tTipo Aporte\tValor"
	movementsEndMark    = "que origina esta transacción."

	returnsHeaderMark = "Rentabilidades**"
	returnsEndMark    = "Fin de las rentabilidades"

	// endSentinel lets the operator close any section by typing it on a line
	// of its own.
	endSentinel = "EOF"
)

// Movement labels and their cash-flow sign.
var movementSign = map[string]int{
	"Aporte": +1,
	"Aporte por traslado de otro portafolio": +1,
	"Aporte por traslado a otro portafolio":  -1,
	"Retiro parcial":                         -1,
}

// LineScanner reads one pasted page at a time off a shared stream, so that
// consecutive ingestion passes over the same stdin do not swallow each
// other's lines.
type LineScanner struct {
	s *bufio.Scanner
}

// NewLineScanner wraps a reader for sequential page ingestion.
func NewLineScanner(r io.Reader) *LineScanner {
	return &LineScanner{s: bufio.NewScanner(r)}
}

// Next returns the next line, false at end of stream.
func (ls *LineScanner) Next() (string, bool) {
	if !ls.s.Scan() {
		return "", false
	}
	return ls.s.Text(), true
}

// Err returns the underlying read error, if any.
func (ls *LineScanner) Err() error { return ls.s.Err() }

type ingestMode int

const (
	modeHeader ingestMode = iota
	modeSkipSubHeader
	modeTable
	modeFooter
	modeIntermission
	modeTable1
)

// splitRow tokenizes one payload line. Fields are tab separated because fund
// names and movement labels contain spaces.
func splitRow(line string) []string { return strings.Split(line, "\t") }

// IngestStatus merges one pasted account-status page into the ledger. Every
// payload row carries (fund, balance) for the run date. The pass is staged:
// a fatal error commits nothing.
func (l *Ledger) IngestStatus(ls *LineScanner, today Date) ([]Warning, error) {
	work := l.Clone()
	var warnings []Warning
	mode := modeHeader
scan:
	for {
		line, ok := ls.Next()
		if !ok {
			break
		}
		switch mode {
		case modeHeader:
			if line == statusHeaderMark {
				mode = modeTable
			} else if line == endSentinel {
				break scan
			}
		case modeTable:
			if strings.HasPrefix(line, statusFooterMark) {
				mode = modeFooter
				continue
			}
			if line == endSentinel {
				break scan
			}
			fields := splitRow(line)
			ctx := Ctx{}.With("line", line)
			if len(fields) < 2 {
				return nil, ctx.Errorf("account status row wants at least 2 tab-separated fields, got %d", len(fields))
			}
			fund, err := ParseName(fields[0])
			if err != nil {
				return nil, ctx.With("fund", fields[0]).Wrap(err)
			}
			ctx = ctx.With("fund", fund)
			balance, err := ParseCents(fields[1])
			if err != nil {
				return nil, ctx.With("balance", fields[1]).Wrap(err)
			}
			warnings = append(warnings, work.SetBalance(fund, Balance{Date: today, Balance: balance})...)
		case modeFooter:
			if line == statusEndMark || line == endSentinel {
				break scan
			}
		}
	}
	if err := ls.Err(); err != nil {
		return nil, err
	}
	work.sortAll()
	*l = *work
	return warnings, nil
}

// IngestMovements merges one pasted movements page into the ledger. The page
// is one reconciliation batch: rows are counted by (fund, date, change)
// signature and reconciled against the stored multiset at the end of the
// pass, so overlapping pastes neither drop nor duplicate repeated actions.
// It reports whether a table was actually seen, so the caller can keep
// prompting for further pages until the operator ends the session.
func (l *Ledger) IngestMovements(ls *LineScanner) (warnings []Warning, seenTable bool, err error) {
	work := l.Clone()
	batch := NewBatch()
	mode := modeHeader
scan:
	for {
		line, ok := ls.Next()
		if !ok {
			break
		}
		switch mode {
		case modeHeader:
			if strings.HasPrefix(line, movementsHeaderMark) {
				mode = modeTable
				seenTable = true
			} else if line == endSentinel {
				break scan
			}
		case modeTable:
			if line == "" {
				mode = modeFooter
				continue
			}
			if line == endSentinel {
				break scan
			}
			fields := splitRow(line)
			ctx := Ctx{}.With("line", line)
			if len(fields) < 5 {
				return nil, seenTable, ctx.Errorf("movement row wants 5 tab-separated fields, got %d", len(fields))
			}
			date, err := ParseDMY(fields[0])
			if err != nil {
				return nil, seenTable, ctx.With("date", fields[0]).Wrap(err)
			}
			ctx = ctx.With("date", fields[0])
			fund, err := ParseName(fields[1])
			if err != nil {
				return nil, seenTable, ctx.With("fund", fields[1]).Wrap(err)
			}
			ctx = ctx.With("fund", fund).With("movement", fields[2])
			// fields[3] is the contribution-type column, carried by the page
			// but not meaningful here.
			value, err := ParseCents(fields[4])
			if err != nil {
				return nil, seenTable, ctx.With("value", fields[4]).Wrap(err)
			}
			sign, ok := movementSign[fields[2]]
			if !ok {
				return nil, seenTable, &UnrecognizedCategory{Label: fields[2], Fields: ctx.With("value", fields[4]).fields}
			}
			change := value
			if sign < 0 {
				change = change.Neg()
			}
			batch.Add(fund, Action{Date: date, Change: change})
		case modeFooter:
			if line == movementsEndMark || line == endSentinel {
				break scan
			}
		}
	}
	if err := ls.Err(); err != nil {
		return nil, seenTable, err
	}
	work.Reconcile(batch)
	*l = *work
	return warnings, seenTable, nil
}

// IngestReturns merges one pasted returns page. The page carries two
// sub-tables: yearly figures (previous year, last year, year to date) and
// daily/periodic figures alongside the published unit and fund values. Both
// merge into one aggregate per fund by normalized name; fund values are
// upserted for the run date with last-write-wins semantics.
func (l *Ledger) IngestReturns(ls *LineScanner, today Date) ([]Warning, error) {
	work := l.Clone()
	var warnings []Warning
	mode := modeHeader
scan:
	for {
		line, ok := ls.Next()
		if !ok {
			break
		}
		switch mode {
		case modeHeader:
			if line == returnsHeaderMark {
				mode = modeSkipSubHeader
			} else if line == endSentinel {
				break scan
			}
		case modeSkipSubHeader:
			// Column headers of the yearly sub-table.
			mode = modeTable
		case modeTable:
			if line == "" {
				mode = modeIntermission
				continue
			}
			if line == endSentinel {
				break scan
			}
			fund, yearly, err := parseYearlyRow(line)
			if err != nil {
				return nil, err
			}
			work.MergeReturns(fund, yearly)
		case modeIntermission:
			// Column headers of the periodic sub-table.
			mode = modeTable1
		case modeTable1:
			if line == returnsEndMark || line == endSentinel || line == "" {
				break scan
			}
			fund, fv, periodic, err := parsePeriodicRow(line, today)
			if err != nil {
				return nil, err
			}
			warnings = append(warnings, work.SetFundValue(fund, fv)...)
			work.MergeReturns(fund, periodic)
		}
	}
	if err := ls.Err(); err != nil {
		return nil, err
	}
	work.sortAll()
	*l = *work
	return warnings, nil
}

// parseYearlyRow parses "fund \t prev-year% \t last-year% \t ytd%".
func parseYearlyRow(line string) (string, Returns, error) {
	fields := splitRow(line)
	ctx := Ctx{}.With("line", line)
	if len(fields) < 4 {
		return "", Returns{}, ctx.Errorf("yearly returns row wants 4 tab-separated fields, got %d", len(fields))
	}
	fund, err := ParseName(fields[0])
	if err != nil {
		return "", Returns{}, ctx.With("fund", fields[0]).Wrap(err)
	}
	ctx = ctx.With("fund", fund)
	r := NewReturns()
	cells := []struct {
		name string
		dst  *Percent
	}{
		{"previous year", &r.PrevYear},
		{"last year", &r.LastYear},
		{"year to date", &r.YearToDate},
	}
	for i, c := range cells {
		p, err := ParsePercent(fields[1+i])
		if err != nil {
			return "", Returns{}, ctx.With(c.name, fields[1+i]).Wrap(err)
		}
		*c.dst = p
	}
	return fund, r, nil
}

// parsePeriodicRow parses
// "fund \t unit-value \t fund-value \t day% \t day-annualized% \t month% \t trimester% \t semester% \t year% \t 2-years% \t total%".
func parsePeriodicRow(line string, today Date) (string, FundValue, Returns, error) {
	fields := splitRow(line)
	ctx := Ctx{}.With("line", line)
	if len(fields) < 11 {
		return "", FundValue{}, Returns{}, ctx.Errorf("periodic returns row wants 11 tab-separated fields, got %d", len(fields))
	}
	fund, err := ParseName(fields[0])
	if err != nil {
		return "", FundValue{}, Returns{}, ctx.With("fund", fields[0]).Wrap(err)
	}
	ctx = ctx.With("fund", fund)
	unit, err := ParseCents(fields[1])
	if err != nil {
		return "", FundValue{}, Returns{}, ctx.With("unit value", fields[1]).Wrap(err)
	}
	ctx = ctx.With("unit value", fields[1])
	total, err := ParseCents(fields[2])
	if err != nil {
		return "", FundValue{}, Returns{}, ctx.With("fund value", fields[2]).Wrap(err)
	}
	ctx = ctx.With("fund value", fields[2])
	r := NewReturns()
	cells := []struct {
		name string
		dst  *Percent
	}{
		{"day", &r.Day},
		{"day annualized", &r.DayAnnualized},
		{"month", &r.Month},
		{"trimester", &r.Trimester},
		{"semester", &r.Semester},
		{"year", &r.Year},
		{"2 years", &r.TwoYears},
		{"total", &r.Total},
	}
	for i, c := range cells {
		p, err := ParsePercent(fields[3+i])
		if err != nil {
			return "", FundValue{}, Returns{}, ctx.With(c.name, fields[3+i]).Wrap(err)
		}
		*c.dst = p
	}
	fv := FundValue{Date: today, FundValue: total, UnitValue: unit}
	return fund, fv, r, nil
}
