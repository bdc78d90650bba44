package fondos

import "sort"

// ReturnsHeader names the columns of the returns export, in order.
var ReturnsHeader = []string{
	"fund",
	"previous_year",
	"last_year",
	"year_to_date",
	"day",
	"day_annualized",
	"month",
	"trimester",
	"semester",
	"year",
	"two_years",
	"total",
}

// ReturnsTable flattens the merged per-fund return aggregates into one row
// per fund, sorted by fund name, for the CSV writer. Unpublished periods
// render as "NA".
func (l *Ledger) ReturnsTable() [][]string {
	rows := make([][]string, 0, len(l.series))
	for _, s := range l.series {
		r := s.Returns
		rows = append(rows, []string{
			s.Name,
			r.PrevYear.String(),
			r.LastYear.String(),
			r.YearToDate.String(),
			r.Day.String(),
			r.DayAnnualized.String(),
			r.Month.String(),
			r.Trimester.String(),
			r.Semester.String(),
			r.Year.String(),
			r.TwoYears.String(),
			r.Total.String(),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows
}
