package fondos

import (
	"testing"
	"time"
)

func TestCheckTransfers_MatchedPair(t *testing.T) {
	cutover := NewDate(2021, time.January, 1)
	on := NewDate(2023, time.May, 2)
	l := NewLedger()
	l.SetBalance("Origen", Balance{Date: on, Balance: 50000})
	l.SetBalance("Destino", Balance{Date: on, Balance: 70000})
	b := NewBatch()
	b.Add("Origen", Action{Date: on, Change: -20000})
	b.Add("Destino", Action{Date: on, Change: 20000})
	l.Reconcile(b)

	if diags := l.CheckTransfers(cutover); len(diags) != 0 {
		t.Errorf("matched transfer pair flagged: %v", diags)
	}
}

func TestCheckTransfers_MissingLeg(t *testing.T) {
	cutover := NewDate(2021, time.January, 1)
	on := NewDate(2023, time.May, 2)
	l := NewLedger()
	l.SetBalance("Origen", Balance{Date: on, Balance: 50000})
	l.SetBalance("Lejano", Balance{Date: on, Balance: 500000})
	l.SetBalance("Cercano", Balance{Date: on, Balance: 69000})
	b := NewBatch()
	b.Add("Origen", Action{Date: on, Change: -20000})
	l.Reconcile(b)

	diags := l.CheckTransfers(cutover)
	if len(diags) != 1 {
		t.Fatalf("diags = %v, want 1", diags)
	}
	d := diags[0]
	if d.Fund != "Origen" || d.Action.Change != -20000 {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	// Target is 50000 - (-20000) = 70000; Cercano at 69000 sits closest.
	if d.Likely != "Cercano" || d.LikelyBalance != 69000 {
		t.Errorf("likely counterpart = %s (%s), want Cercano ($690.00)", d.Likely, d.LikelyBalance)
	}
}

func TestCheckTransfers_CutoverExcludesHistory(t *testing.T) {
	cutover := NewDate(2021, time.January, 1)
	l := NewLedger()
	l.SetBalance("Origen", Balance{Date: NewDate(2023, time.May, 2), Balance: 50000})
	b := NewBatch()
	b.Add("Origen", Action{Date: NewDate(2020, time.June, 1), Change: -20000})
	b.Add("Origen", Action{Date: cutover, Change: -30000}) // on the cutover itself
	l.Reconcile(b)

	if diags := l.CheckTransfers(cutover); len(diags) != 0 {
		t.Errorf("actions on or before the cutover flagged: %v", diags)
	}
}

func TestCheckTransfers_ClosedFundIgnored(t *testing.T) {
	cutover := NewDate(2021, time.January, 1)
	on := NewDate(2023, time.May, 2)
	l := NewLedger()
	l.SetBalance("Cerrado", Balance{Date: on, Balance: 0})
	b := NewBatch()
	b.Add("Cerrado", Action{Date: on, Change: -20000})
	l.Reconcile(b)

	if diags := l.CheckTransfers(cutover); len(diags) != 0 {
		t.Errorf("fund with zero balance flagged: %v", diags)
	}
}

func TestCheckTransfers_SameDateDifferentAmount(t *testing.T) {
	cutover := NewDate(2021, time.January, 1)
	on := NewDate(2023, time.May, 2)
	l := NewLedger()
	l.SetBalance("Origen", Balance{Date: on, Balance: 50000})
	l.SetBalance("Destino", Balance{Date: on, Balance: 70000})
	b := NewBatch()
	b.Add("Origen", Action{Date: on, Change: -20000})
	b.Add("Destino", Action{Date: on, Change: 19000}) // amounts disagree
	l.Reconcile(b)

	diags := l.CheckTransfers(cutover)
	if len(diags) != 2 {
		t.Errorf("diags = %v, want both mismatched legs flagged", diags)
	}
}
