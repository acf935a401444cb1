// Package chrom orders chromosome names for display.
//
// Names are sorted by the number after their three character prefix
// ("chr10" -> 10). Names without a numeric suffix, like "chrX" or an
// unplaced contig, come after all the numbered ones in the order they
// were first seen.
package chrom

import (
	"sort"
	"strings"
)

// prefixLen is the length of the "chr" prefix dropped before parsing the number.
const prefixLen = 3

// Ranks maps each chromosome name to its 1-based position on the y-axis.
type Ranks map[string]int

// Order returns the chromosome names sorted by rank.
func (r Ranks) Order() []string {
	names := make([]string, len(r))
	for name, rank := range r {
		names[rank-1] = name
	}
	return names
}

// Sort returns the distinct names in display order. The input is not modified.
func Sort(names []string) []string {
	seen := make(map[string]bool, len(names))
	sorted := []string{}
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			sorted = append(sorted, n)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// Rank sorts the names and numbers them from 1.
func Rank(names []string) Ranks {
	ranks := make(Ranks)
	for i, n := range Sort(names) {
		ranks[n] = i + 1
	}
	return ranks
}

// key is the numeric suffix of a chromosome name without leading zeros.
// ok is false for names with no numeric suffix.
func key(name string) (digits string, ok bool) {
	if len(name) <= prefixLen {
		return "", false
	}

	suffix := name[prefixLen:]
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return "", false
		}
	}

	digits = strings.TrimLeft(suffix, "0")
	if digits == "" {
		digits = "0"
	}
	return digits, true
}

// less orders numbered names by value, ahead of all the others.
// Suffixes are compared as digit strings so any length is exact.
func less(a, b string) bool {
	ka, aok := key(a)
	kb, bok := key(b)
	switch {
	case !aok:
		return false
	case !bok:
		return true
	case len(ka) != len(kb):
		return len(ka) < len(kb)
	default:
		return ka < kb
	}
}
