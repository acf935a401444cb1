// Package summary reads alignment summary tables: tab-separated files with
// one alignment per row and its chromosome, position and identity.
package summary

// Column names required in the header row.
const (
	ChrColumn      = "#chr"
	StartColumn    = "start_pos"
	EndColumn      = "end_pos"
	IdentityColumn = "identity"
)

// Record is a single row of an alignment summary.
type Record struct {
	// Chr is the reference chromosome, ex: "chr10"
	Chr string

	// Start of the alignment on Chr
	Start int

	// End of the alignment on Chr
	End int

	// Identity is the fraction of aligned bases that match, in [0, 1]
	Identity float64
}

// Table is the set of records in file order.
type Table []Record

// Chromosomes returns the distinct chromosome names in the order they're first seen.
func (t Table) Chromosomes() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t {
		if seen[r.Chr] {
			continue
		}
		seen[r.Chr] = true
		names = append(names, r.Chr)
	}
	return names
}

// Span returns the smallest start and the largest end in the table.
// ok is false for an empty table.
func (t Table) Span() (min, max int, ok bool) {
	if len(t) == 0 {
		return 0, 0, false
	}

	min, max = t[0].Start, t[0].End
	for _, r := range t {
		for _, p := range []int{r.Start, r.End} {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
	}
	return min, max, true
}
