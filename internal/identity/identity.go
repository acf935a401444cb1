// Package identity computes how closely reads match a reference from the
// extended CIGAR strings ('=' and 'X' rather than 'M') of their alignments.
package identity

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// ErrAmbiguousMatch is returned for a CIGAR with 'M' operations, which don't
// tell matches and mismatches apart.
var ErrAmbiguousMatch = errors.New("alignment contains ambiguous M operations, cannot determine mismatches without = or X operations")

// ppmScale is one million, the identity of a perfect alignment.
const ppmScale = 1000000

// Alignment is the identity of one alignment.
type Alignment struct {
	Ref        string
	Query      string
	MapQ       byte
	Flags      sam.Flags
	Matches    int64
	Nonmatches int64
	PPM        int64
}

// Percent is the identity as a percentage.
func (a Alignment) Percent() float64 {
	return float64(a.PPM) / 10000
}

func (a Alignment) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d %.4f", a.Ref, a.Query, a.MapQ, int(a.Flags), a.Matches, a.Nonmatches, a.PPM, a.Percent())
}

// Bin is the number of alignments with a given identity.
type Bin struct {
	PPM   int64
	Count int64
}

// Percent is the bin's identity as a percentage.
func (b Bin) Percent() float64 {
	return float64(b.PPM) / 10000
}

// Distribution counts alignments per identity in parts per million.
type Distribution map[int64]int64

// Bins returns the distribution in increasing identity order.
func (d Distribution) Bins() []Bin {
	bins := make([]Bin, 0, len(d))
	for ppm, count := range d {
		bins = append(bins, Bin{PPM: ppm, Count: count})
	}
	sort.Slice(bins, func(i, j int) bool {
		return bins[i].PPM < bins[j].PPM
	})
	return bins
}

// Total is the number of alignments counted.
func (d Distribution) Total() (total int64) {
	for _, count := range d {
		total += count
	}
	return
}

// Count returns the matching and non-matching (mismatch, insertion, deletion) lengths
// of a CIGAR. Clips, skips and pads are ignored.
func Count(cigar sam.Cigar) (matches, nonmatches int64, err error) {
	for _, co := range cigar {
		switch co.Type() {
		case sam.CigarEqual:
			matches += int64(co.Len())
		case sam.CigarMismatch, sam.CigarInsertion, sam.CigarDeletion:
			nonmatches += int64(co.Len())
		case sam.CigarMatch:
			return 0, 0, ErrAmbiguousMatch
		}
	}
	return matches, nonmatches, nil
}

// PPM is the identity in parts per million, rounded down. ok is false when
// there's nothing aligned.
func PPM(matches, nonmatches int64) (ppm int64, ok bool) {
	if matches+nonmatches == 0 {
		return 0, false
	}
	return matches * ppmScale / (matches + nonmatches), true
}

// Primary reports whether a record is a mapped primary alignment.
func Primary(r *sam.Record) bool {
	return r.Flags&(sam.Unmapped|sam.Secondary|sam.Supplementary) == 0
}

// Of returns the identity of one alignment. ok is false if it has no aligned bases.
func Of(r *sam.Record) (a Alignment, ok bool, err error) {
	matches, nonmatches, err := Count(r.Cigar)
	if err != nil {
		return Alignment{}, false, fmt.Errorf("failed to count %s: %v", r.Name, err)
	}

	ppm, ok := PPM(matches, nonmatches)
	if !ok {
		return Alignment{}, false, nil
	}

	ref := "*"
	if r.Ref != nil {
		ref = r.Ref.Name()
	}
	return Alignment{
		Ref:        ref,
		Query:      r.Name,
		MapQ:       r.MapQ,
		Flags:      r.Flags,
		Matches:    matches,
		Nonmatches: nonmatches,
		PPM:        ppm,
	}, true, nil
}

// recordReader is satisfied by both bam.Reader and sam.Reader.
type recordReader interface {
	Read() (*sam.Record, error)
}

// Collect reads every record from rr and counts the identity of each primary alignment.
// each, if non-nil, is called with every alignment counted.
func Collect(rr recordReader, each func(Alignment)) (Distribution, error) {
	dist := make(Distribution)
	for {
		r, err := rr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read alignment: %v", err)
		}

		if !Primary(r) {
			continue
		}

		a, ok, err := Of(r)
		if err != nil {
			return nil, err
		} else if !ok {
			continue
		}

		if each != nil {
			each(a)
		}
		dist[a.PPM]++
	}
	return dist, nil
}

// FromFile computes the identity distribution of a BAM, or of a SAM if the path ends in ".sam".
func FromFile(path string, each func(Alignment)) (Distribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alignments: %v", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".sam") {
		sr, err := sam.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read SAM header of %s: %v", path, err)
		}
		return Collect(sr, each)
	}

	br, err := bam.NewReader(f, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to read BAM header of %s: %v", path, err)
	}
	defer br.Close()

	return Collect(br, each)
}
