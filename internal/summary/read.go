package summary

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Read an alignment summary TSV to a Table. The second line of the file
// holds column units and is always skipped.
func Read(path string) (Table, error) {
	var err error

	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)

		if err != nil {
			return nil, fmt.Errorf("failed to create path to alignment summary: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alignment summary: %v", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return t, nil
}

// headerLines is the number of raw lines before the first row: the column
// names and the units/annotation row.
const headerLines = 2

// Parse reads an alignment summary from r. The second line is dropped as
// written, whatever its shape.
func Parse(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)

	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	header, err := splitHeader(first)
	if err != nil {
		return nil, err
	}

	cols, err := columns(header)
	if err != nil {
		return nil, err
	}

	if _, err = br.ReadString('\n'); err == io.EOF {
		return Table{}, nil
	} else if err != nil {
		return nil, err
	}

	tsv := newReader(br)
	tsv.FieldsPerRecord = len(header)

	t := Table{}
	for {
		row, err := tsv.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				pe.StartLine += headerLines
				pe.Line += headerLines
			}
			return nil, err
		}

		rec, err := cols.record(row)
		if err != nil {
			// a row returned by Read always has a first field
			line, _ := tsv.FieldPos(0)
			return nil, fmt.Errorf("line %d: %v", line+headerLines, err)
		}
		t = append(t, rec)
	}

	return t, nil
}

func newReader(r io.Reader) *csv.Reader {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.LazyQuotes = true
	tsv.ReuseRecord = true
	return tsv
}

// splitHeader reads the column names from the first line of the file.
func splitHeader(line string) ([]string, error) {
	header, err := newReader(strings.NewReader(line)).Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row")
	} else if err != nil {
		return nil, err
	}
	return header, nil
}

// columnIndex is the position of each required column in a row.
type columnIndex struct {
	chr, start, end, identity int
}

func columns(header []string) (columnIndex, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	var cols columnIndex
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ChrColumn, &cols.chr},
		{StartColumn, &cols.start},
		{EndColumn, &cols.end},
		{IdentityColumn, &cols.identity},
	} {
		i, ok := index[c.name]
		if !ok {
			return cols, fmt.Errorf("missing column %q in header %v", c.name, header)
		}
		*c.dst = i
	}
	return cols, nil
}

func (c columnIndex) record(row []string) (Record, error) {
	start, err := parsePosition(row[c.start])
	if err != nil {
		return Record{}, fmt.Errorf("column %s: %v", StartColumn, err)
	}

	end, err := parsePosition(row[c.end])
	if err != nil {
		return Record{}, fmt.Errorf("column %s: %v", EndColumn, err)
	}

	identity, err := strconv.ParseFloat(strings.TrimSpace(row[c.identity]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("column %s: %v", IdentityColumn, err)
	}

	return Record{
		Chr:      row[c.chr],
		Start:    start,
		End:      end,
		Identity: identity,
	}, nil
}

// parsePosition accepts integers and floats without a fractional part ("1200.0").
func parsePosition(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	return int(f), nil
}
