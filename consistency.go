package fondos

// TransferDiagnostic reports an action with no offsetting leg in any fund: a
// transfer whose counterpart was never pasted, or a movement the operator
// should double-check. Diagnostics never mutate data and never abort a run.
type TransferDiagnostic struct {
	Fund   string
	Action Action
	// Likely is the fund whose last balance sits numerically closest to
	// balance - change, the most plausible intended counterpart.
	Likely        string
	LikelyBalance Money
}

// CheckTransfers scans funds holding a nonzero current balance for recent
// actions (dated after the cutover) that have no exactly negated same-date
// action anywhere in the ledger.
func (l *Ledger) CheckTransfers(cutover Date) []TransferDiagnostic {
	var diags []TransferDiagnostic
	for _, s := range l.series {
		lastBalance, ok := s.LastBalance()
		if !ok || lastBalance.Balance.IsZero() {
			continue
		}
		for _, a := range s.Actions {
			if !a.Date.After(cutover) {
				continue
			}
			if l.hasMatchingLeg(a) {
				continue
			}
			d := TransferDiagnostic{Fund: s.Name, Action: a}
			d.Likely, d.LikelyBalance = l.closestFund(s, lastBalance.Balance.Sub(a.Change))
			diags = append(diags, d)
		}
	}
	return diags
}

// hasMatchingLeg reports whether any fund holds the negated same-date action.
func (l *Ledger) hasMatchingLeg(a Action) bool {
	for _, s := range l.series {
		if s.CountActions(a.Date, a.Change.Neg()) > 0 {
			return true
		}
	}
	return false
}

// closestFund returns the fund (other than s) whose last balance is
// numerically closest to the target amount.
func (l *Ledger) closestFund(s *Series, target Money) (string, Money) {
	var name string
	var balance Money
	best := Money(-1)
	for _, o := range l.series {
		if o == s {
			continue
		}
		lastBalance, ok := o.LastBalance()
		if !ok {
			continue
		}
		diff := lastBalance.Balance.Sub(target).Abs()
		if best < 0 || diff < best {
			best = diff
			name = o.Name
			balance = lastBalance.Balance
		}
	}
	return name, balance
}
