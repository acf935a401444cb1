package summary

import (
	"path"
	"reflect"
	"strings"
	"testing"
)

// Test reading of an alignment summary TSV
func Test_Read(t *testing.T) {
	type fileRead struct {
		name     string
		file     string
		rowCount int
		wantErr  bool
	}

	files := []fileRead{
		{
			"alignment_summary.tsv",
			path.Join("..", "..", "test", "input", "alignment_summary.tsv"),
			7,
			false,
		},
		{
			"header_only.tsv",
			path.Join("..", "..", "test", "input", "header_only.tsv"),
			0,
			false,
		},
		{
			"missing_column.tsv",
			path.Join("..", "..", "test", "input", "missing_column.tsv"),
			0,
			true,
		},
		{
			"does_not_exist.tsv",
			path.Join("..", "..", "test", "input", "does_not_exist.tsv"),
			0,
			true,
		},
	}

	for _, f := range files {
		t.Run(f.name, func(t *testing.T) {
			table, err := Read(f.file)

			if (err != nil) != f.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, f.wantErr)
			}

			if len(table) != f.rowCount {
				t.Errorf("failed to load records, len=%d, expected=%d", len(table), f.rowCount)
			}

			for _, r := range table {
				if r.Chr == "" {
					t.Error("failed to load a chromosome name")
				}
				if r.End < r.Start {
					t.Errorf("end before start in %+v", r)
				}
				if r.Identity < 0 || r.Identity > 1 {
					t.Errorf("identity out of range in %+v", r)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Table
		wantErr bool
	}{
		{
			"second line skipped even if it looks like data",
			"#chr\tstart_pos\tend_pos\tidentity\nchr9\t1\t2\t0.1\nchr1\t10\t20\t0.5\n",
			Table{{Chr: "chr1", Start: 10, End: 20, Identity: 0.5}},
			false,
		},
		{
			"column order from header",
			"identity\tend_pos\t#chr\tstart_pos\n#\t#\t#\t#\n0.75\t300\tchrX\t100\n",
			Table{{Chr: "chrX", Start: 100, End: 300, Identity: 0.75}},
			false,
		},
		{
			"float positions without a fraction",
			"#chr\tstart_pos\tend_pos\tidentity\n-\t-\t-\t-\nchr2\t5.0\t1e3\t1\n",
			Table{{Chr: "chr2", Start: 5, End: 1000, Identity: 1}},
			false,
		},
		{
			"blank second line",
			"#chr\tstart_pos\tend_pos\tidentity\n\nchr1\t10\t20\t0.5\nchr2\t1\t2\t0.3\n",
			Table{
				{Chr: "chr1", Start: 10, End: 20, Identity: 0.5},
				{Chr: "chr2", Start: 1, End: 2, Identity: 0.3},
			},
			false,
		},
		{
			"short second line",
			"#chr\tstart_pos\tend_pos\tidentity\n#units\nchr1\t10\t20\t0.5\n",
			Table{{Chr: "chr1", Start: 10, End: 20, Identity: 0.5}},
			false,
		},
		{
			"quoted tab in the second line",
			"#chr\tstart_pos\tend_pos\tidentity\n\"a\tb\"\t-\t-\t-\t-\nchr1\t10\t20\t0.5\n",
			Table{{Chr: "chr1", Start: 10, End: 20, Identity: 0.5}},
			false,
		},
		{
			"header only",
			"#chr\tstart_pos\tend_pos\tidentity\n",
			Table{},
			false,
		},
		{
			"fractional position",
			"#chr\tstart_pos\tend_pos\tidentity\n-\t-\t-\t-\nchr2\t5.5\t10\t1\n",
			nil,
			true,
		},
		{
			"bad identity",
			"#chr\tstart_pos\tend_pos\tidentity\n-\t-\t-\t-\nchr2\t5\t10\thigh\n",
			nil,
			true,
		},
		{
			"ragged row",
			"#chr\tstart_pos\tend_pos\tidentity\n-\t-\t-\t-\nchr2\t5\t10\n",
			nil,
			true,
		},
		{
			"empty file",
			"",
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_errorLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"bad value",
			"#chr\tstart_pos\tend_pos\tidentity\n-\t-\t-\t-\nchr1\t1\t2\t0.5\nchr2\t5\t10\thigh\n",
			"line 4",
		},
		{
			"ragged row",
			"#chr\tstart_pos\tend_pos\tidentity\n-\t-\t-\t-\nchr2\t5\t10\n",
			"line 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to name %s", err, tt.want)
			}
		})
	}
}

func TestTable_Chromosomes(t *testing.T) {
	table := Table{
		{Chr: "chr2"}, {Chr: "chr10"}, {Chr: "chr2"}, {Chr: "chrX"}, {Chr: "chr1"}, {Chr: "chrX"},
	}
	want := []string{"chr2", "chr10", "chrX", "chr1"}

	if got := table.Chromosomes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Table.Chromosomes() = %v, want %v", got, want)
	}
}

func TestTable_Span(t *testing.T) {
	tests := []struct {
		name            string
		table           Table
		wantMin, wantMax int
		wantOK          bool
	}{
		{"empty", Table{}, 0, 0, false},
		{"one", Table{{Start: 5, End: 10}}, 5, 10, true},
		{"many", Table{{Start: 50, End: 60}, {Start: 3, End: 8}, {Start: 20, End: 90}}, 3, 90, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, ok := tt.table.Span()
			if min != tt.wantMin || max != tt.wantMax || ok != tt.wantOK {
				t.Errorf("Table.Span() = (%d, %d, %v), want (%d, %d, %v)", min, max, ok, tt.wantMin, tt.wantMax, tt.wantOK)
			}
		})
	}
}
