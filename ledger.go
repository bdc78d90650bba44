package fondos

// Ledger holds one Series per fund. The list order is incidental (first
// observation wins a slot); lookups go through the normalized-name index.
// During a run the ledger is mutated only by the ingestion passes, then
// treated as read-only.
type Ledger struct {
	series []*Series
	index  map[string]*Series
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]*Series)}
}

// Fund returns the series for a fund name, or false if the ledger has never
// seen it. Lookup is by normalized name.
func (l *Ledger) Fund(name string) (*Series, bool) {
	s, ok := l.index[Normalize(name)]
	return s, ok
}

// Funds returns the series list in its stored order.
func (l *Ledger) Funds() []*Series { return l.series }

// fund returns the series for a fund, creating it on first sight.
func (l *Ledger) fund(name string) *Series {
	key := Normalize(name)
	if s, ok := l.index[key]; ok {
		return s
	}
	s := newSeries(name)
	l.series = append(l.series, s)
	l.index[key] = s
	return s
}

// SetBalance upserts the fund's balance for a date. A differing value already
// stored for that date is overwritten, last write wins, and the change is
// reported as a warning.
func (l *Ledger) SetBalance(fund string, b Balance) (warnings []Warning) {
	s := l.fund(fund)
	for i := range s.Balances {
		if s.Balances[i].Date == b.Date {
			if s.Balances[i].Balance != b.Balance {
				warnings = append(warnings, Warningf("fund %s changing balance on %s from %s to %s", s.Name, b.Date, s.Balances[i].Balance, b.Balance))
				s.Balances[i].Balance = b.Balance
			}
			return warnings
		}
	}
	s.Balances = append(s.Balances, b)
	return warnings
}

// SetFundValue upserts the fund's published fund/unit value for a date, with
// the same last-write-wins semantics as SetBalance.
func (l *Ledger) SetFundValue(fund string, fv FundValue) (warnings []Warning) {
	s := l.fund(fund)
	for i := range s.FundValues {
		if s.FundValues[i].Date == fv.Date {
			if s.FundValues[i].FundValue != fv.FundValue {
				warnings = append(warnings, Warningf("fund %s changing fund value on %s from %s to %s", s.Name, fv.Date, s.FundValues[i].FundValue, fv.FundValue))
				s.FundValues[i].FundValue = fv.FundValue
			}
			if s.FundValues[i].UnitValue != fv.UnitValue {
				warnings = append(warnings, Warningf("fund %s changing unit value on %s from %s to %s", s.Name, fv.Date, s.FundValues[i].UnitValue, fv.UnitValue))
				s.FundValues[i].UnitValue = fv.UnitValue
			}
			return warnings
		}
	}
	s.FundValues = append(s.FundValues, fv)
	return warnings
}

// MergeReturns folds published percentages into the fund's aggregate record,
// overwriting only the periods o actually publishes.
func (l *Ledger) MergeReturns(fund string, o Returns) {
	l.fund(fund).Returns.merge(o)
}

// actionKey is the signature actions are reconciled by.
type actionKey struct {
	fund   string // normalized
	date   Date
	change Money
}

// Batch counts the (fund, date, change) signatures observed in one movements
// page, in first-seen order.
type Batch struct {
	counts map[actionKey]int
	order  []actionKey
	names  map[string]string // normalized -> display name as first seen
}

// NewBatch creates an empty movements batch.
func NewBatch() *Batch {
	return &Batch{counts: make(map[actionKey]int), names: make(map[string]string)}
}

// Add records one observed movement row.
func (b *Batch) Add(fund string, a Action) {
	key := actionKey{fund: Normalize(fund), date: a.Date, change: a.Change}
	if _, ok := b.counts[key]; !ok {
		b.order = append(b.order, key)
	}
	b.counts[key]++
	if _, ok := b.names[key.fund]; !ok {
		b.names[key.fund] = fund
	}
}

// Len returns the number of rows recorded in the batch.
func (b *Batch) Len() int {
	n := 0
	for _, c := range b.counts {
		n += c
	}
	return n
}

// Reconcile merges one movements batch into the ledger. The operator may
// paste overlapping pages, so a signature already stored must not be appended
// blindly: for each signature the batch observed R times while the ledger
// stores C matching records, max(0, R-C) clones are appended. Across
// repeated or overlapping pastes the stored multiplicity converges to the
// maximum multiplicity ever observed in a single batch: re-pasting the same
// page is a no-op, and never-seen signatures are purely additive.
func (l *Ledger) Reconcile(b *Batch) {
	for _, key := range b.order {
		s := l.fund(b.names[key.fund])
		missing := b.counts[key] - s.CountActions(key.date, key.change)
		for i := 0; i < missing; i++ {
			s.Actions = append(s.Actions, Action{Date: key.date, Change: key.change})
		}
	}
	l.sortAll()
}

// sortAll restores by-date ordering in every series.
func (l *Ledger) sortAll() {
	for _, s := range l.series {
		s.sortAll()
	}
}
