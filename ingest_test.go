package fondos

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const statusPage = `Portafolio	Saldo
Anual**
Fondo Abierto	$1,000.00
Otro Fondo	$211,231.74
Total	$212,231.74
Aprenda aquí sobre el producto	Aprenda aquí sobre el producto
`

const movementsPage = `Fecha	Nombre del multiportafolio	Movimiento	Tipo Aporte	Valor
1/5/2023	Fondo Abierto	Aporte	Voluntario	$100.00
1/5/2023	Fondo Abierto	Aporte	Voluntario	$100.00
2/5/2023	Fondo Abierto	Retiro parcial	Voluntario	$50.00
3/5/2023	Fondo Abierto	Aporte por traslado de otro portafolio	Voluntario	$20.00

que origina esta transacción.
`

const returnsPage = `Rentabilidades**
Portafolio	Año anterior	Último año	Año corrido
Fondo Abierto	3 %EA	4.5 %EA	NA

Portafolio	Valor unidad	Valor fondo	Día	Día EA	Mes	Trimestre	Semestre	Año	2 años	Total
Fondo Abierto	$123.45	$1,000,000.00	0.01 %EA	3.72 %EA	NA	1 %EA	2 %EA	3 %EA	4 %EA	-.003 %EA
Fin de las rentabilidades
`

func TestIngestStatus(t *testing.T) {
	l := NewLedger()
	today := NewDate(2023, time.May, 4)
	warnings, err := l.IngestStatus(NewLineScanner(strings.NewReader(statusPage)), today)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	s, ok := l.Fund("Fondo Abierto")
	if !ok {
		t.Fatal("fund not recorded")
	}
	if len(s.Balances) != 1 || s.Balances[0].Balance != 100000 || s.Balances[0].Date != today {
		t.Errorf("unexpected balances %v", s.Balances)
	}
	if s, ok := l.Fund("Otro Fondo"); !ok || s.Balances[0].Balance != 21123174 {
		t.Errorf("second fund not recorded correctly")
	}
	// The Total footer row must not become a fund.
	if _, ok := l.Fund("Total"); ok {
		t.Error("footer total recorded as a fund")
	}
}

func TestIngestStatus_EndSentinel(t *testing.T) {
	l := NewLedger()
	page := "Anual**\nFondo Abierto\t$1,000.00\nEOF\n"
	if _, err := l.IngestStatus(NewLineScanner(strings.NewReader(page)), Today()); err != nil {
		t.Fatal(err)
	}
	if _, ok := l.Fund("Fondo Abierto"); !ok {
		t.Error("fund before the sentinel not recorded")
	}
}

func TestIngestStatus_BadRowCommitsNothing(t *testing.T) {
	l := NewLedger()
	page := "Anual**\nFondo Abierto\t$1,000.00\nOtro Fondo\tno-money\n"
	_, err := l.IngestStatus(NewLineScanner(strings.NewReader(page)), Today())
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(l.Funds()) != 0 {
		t.Errorf("failed pass must leave the ledger untouched, got %d funds", len(l.Funds()))
	}
}

func TestIngestMovements(t *testing.T) {
	l := NewLedger()
	_, seenTable, err := l.IngestMovements(NewLineScanner(strings.NewReader(movementsPage)))
	if err != nil {
		t.Fatal(err)
	}
	if !seenTable {
		t.Error("seenTable = false for a full page")
	}
	s, ok := l.Fund("Fondo Abierto")
	if !ok {
		t.Fatal("fund not recorded")
	}
	if len(s.Actions) != 4 {
		t.Fatalf("actions = %v, want 4 rows", s.Actions)
	}
	if got := s.CountActions(MustParseDMY("1/5/2023"), 10000); got != 2 {
		t.Errorf("repeated deposit stored %d times, want 2", got)
	}
	if got := s.CountActions(MustParseDMY("2/5/2023"), -5000); got != 1 {
		t.Errorf("withdrawal stored %d times, want 1; withdrawals must be negative", got)
	}
	if got := s.CountActions(MustParseDMY("3/5/2023"), 2000); got != 1 {
		t.Errorf("incoming transfer stored %d times, want 1", got)
	}
}

func TestIngestMovements_RepeatedPageIsIdempotent(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 3; i++ {
		if _, _, err := l.IngestMovements(NewLineScanner(strings.NewReader(movementsPage))); err != nil {
			t.Fatal(err)
		}
	}
	s, _ := l.Fund("Fondo Abierto")
	if len(s.Actions) != 4 {
		t.Errorf("re-pasting the same page changed the ledger: %d actions, want 4", len(s.Actions))
	}
}

func TestIngestMovements_EmptyStream(t *testing.T) {
	l := NewLedger()
	_, seenTable, err := l.IngestMovements(NewLineScanner(strings.NewReader("")))
	if err != nil {
		t.Fatal(err)
	}
	if seenTable {
		t.Error("seenTable = true on an empty stream")
	}
}

func TestIngestMovements_UnknownLabel(t *testing.T) {
	l := NewLedger()
	page := "Fecha\tNombre del multiportafolio\tMovimiento\tTipo Aporte\tValor\n" +
		"1/5/2023\tFondo Abierto\tAporte\tVoluntario\t$100.00\n" +
		"1/5/2023\tFondo Abierto\tDividendo\tVoluntario\t$9.00\n"
	_, _, err := l.IngestMovements(NewLineScanner(strings.NewReader(page)))
	var uc *UnrecognizedCategory
	if !errors.As(err, &uc) {
		t.Fatalf("error = %v, want *UnrecognizedCategory", err)
	}
	if uc.Label != "Dividendo" {
		t.Errorf("Label = %q, want Dividendo", uc.Label)
	}
	if len(l.Funds()) != 0 {
		t.Error("failed pass must leave the ledger untouched")
	}
}

func TestIngestReturns(t *testing.T) {
	l := NewLedger()
	today := NewDate(2023, time.May, 4)
	warnings, err := l.IngestReturns(NewLineScanner(strings.NewReader(returnsPage)), today)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	s, ok := l.Fund("Fondo Abierto")
	if !ok {
		t.Fatal("fund not recorded")
	}
	r := s.Returns
	if !r.PrevYear.Equal(3) || !r.LastYear.Equal(4.5) || !r.YearToDate.IsNA() {
		t.Errorf("yearly figures = %v %v %v", r.PrevYear, r.LastYear, r.YearToDate)
	}
	if !r.Day.Equal(0.01) || !r.Month.IsNA() || !r.Total.Equal(-0.003) {
		t.Errorf("periodic figures = %v %v %v", r.Day, r.Month, r.Total)
	}
	if len(s.FundValues) != 1 {
		t.Fatalf("fund values = %v, want 1 record", s.FundValues)
	}
	fv := s.FundValues[0]
	if fv.Date != today || fv.UnitValue != 12345 || fv.FundValue != 100000000 {
		t.Errorf("unexpected fund value %+v", fv)
	}
}

func TestIngestReturns_MergesAcrossPastes(t *testing.T) {
	l := NewLedger()
	today := NewDate(2023, time.May, 4)
	if _, err := l.IngestReturns(NewLineScanner(strings.NewReader(returnsPage)), today); err != nil {
		t.Fatal(err)
	}
	// a later paste publishing a figure that was NA fills it in
	updated := "Rentabilidades**\nheaders\nFondo Abierto\tNA\tNA\t7 %EA\nEOF\n"
	if _, err := l.IngestReturns(NewLineScanner(strings.NewReader(updated)), today); err != nil {
		t.Fatal(err)
	}
	s, _ := l.Fund("Fondo Abierto")
	if !s.Returns.YearToDate.Equal(7) {
		t.Errorf("YearToDate = %v, want 7", s.Returns.YearToDate)
	}
	if !s.Returns.LastYear.Equal(4.5) {
		t.Errorf("NA in a later paste must not erase LastYear, got %v", s.Returns.LastYear)
	}
}

func TestSequentialPassesShareTheStream(t *testing.T) {
	// One pasted session: status, then movements, then returns, on one reader.
	session := statusPage + movementsPage + returnsPage
	ls := NewLineScanner(strings.NewReader(session))
	l := NewLedger()
	today := NewDate(2023, time.May, 4)

	if _, err := l.IngestStatus(ls, today); err != nil {
		t.Fatal(err)
	}
	if _, seenTable, err := l.IngestMovements(ls); err != nil || !seenTable {
		t.Fatalf("movements pass: seenTable=%v err=%v", seenTable, err)
	}
	if _, err := l.IngestReturns(ls, today); err != nil {
		t.Fatal(err)
	}

	s, _ := l.Fund("Fondo Abierto")
	if len(s.Balances) != 1 || len(s.Actions) != 4 || len(s.FundValues) != 1 {
		t.Errorf("session did not land in all three stores: %d balances, %d actions, %d fund values",
			len(s.Balances), len(s.Actions), len(s.FundValues))
	}
}
