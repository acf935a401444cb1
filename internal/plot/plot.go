// Package plot renders an alignment summary as one horizontal line per
// alignment, stacked by chromosome and colored by identity.
package plot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/freetype/truetype"
	"github.com/nanoporegenomics/wambam/config"
	"github.com/nanoporegenomics/wambam/internal/chrom"
	"github.com/nanoporegenomics/wambam/internal/summary"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// builtinFonts can be named in plot.font instead of a path to a TrueType file.
var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// Render draws the table and writes it as a PNG into outDir, which is created
// if it doesn't exist. It returns the path of the written image.
func Render(t summary.Table, conf config.PlotConfig, outDir string) (string, error) {
	font, err := loadFont(conf.Font)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %v", err)
	}

	ch := Chart(t, conf, font)

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("failed to render alignment summary: %v", err)
	}

	img, err := withDPI(buf.Bytes(), conf.DPI)
	if err != nil {
		return "", fmt.Errorf("failed to set image resolution: %v", err)
	}

	filename := conf.Filename
	if filename == "" {
		filename = config.DefaultFilename
	}
	out := filepath.Join(outDir, filename)
	if err := os.WriteFile(out, img, 0644); err != nil {
		return "", fmt.Errorf("failed to write the output: %v", err)
	}

	return out, nil
}

// Chart builds the go-chart chart for a table without rendering it. font may be nil.
func Chart(t summary.Table, conf config.PlotConfig, font *truetype.Font) chart.Chart {
	ranks := chrom.Rank(t.Chromosomes())
	order := ranks.Order()

	// half a row of space above the first and below the last chromosome
	yTicks := []chart.Tick{{Value: 0.5, Label: ""}}
	for i, name := range order {
		yTicks = append(yTicks, chart.Tick{Value: float64(i + 1), Label: name})
	}
	rows := len(order)
	if rows == 0 {
		rows = 1
	}
	yTicks = append(yTicks, chart.Tick{Value: float64(rows) + 0.5, Label: ""})

	xMin, xMax := xRange(t)

	width, height := conf.Pixels()
	pad := int(0.2 * conf.DPI)
	cb := newColorbar(conf.ColorbarLabel, conf.DPI)

	series := Segments(t, ranks, conf.StrokePixels())
	if len(series) == 0 {
		// go-chart needs one visible series to lay out the axes
		series = []chart.Series{chart.ContinuousSeries{
			Name:    "empty",
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
			XValues: []float64{xMin, xMax},
			YValues: []float64{0.5, 0.5},
		}}
	}

	return chart.Chart{
		Title:      conf.Title,
		Width:      width,
		Height:     height,
		DPI:        conf.DPI,
		Font:       font,
		Background: chart.Style{Padding: chart.Box{Top: pad, Left: pad, Right: cb.reserve(), Bottom: pad}},
		XAxis: chart.XAxis{
			Name:           conf.XLabel,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: positionFormatter,
		},
		// chromosome labels on the left, rank 1 at the top
		YAxis: chart.YAxis{
			AxisType: chart.YAxisSecondary,
			Name:     conf.YLabel,
			Range:    &chart.ContinuousRange{Descending: true},
			Ticks:    yTicks,
		},
		Series:   series,
		Elements: []chart.Renderable{cb.render},
	}
}

// Segments returns one line series per record, from (start, rank) to (end, rank).
func Segments(t summary.Table, ranks chrom.Ranks, strokeWidth float64) []chart.Series {
	series := make([]chart.Series, 0, len(t))
	for i, r := range t {
		y := float64(ranks[r.Chr])
		series = append(series, chart.ContinuousSeries{
			Name: fmt.Sprintf("%s:%d-%d #%d", r.Chr, r.Start, r.End, i),
			Style: chart.Style{
				StrokeColor: IdentityColor(r.Identity),
				StrokeWidth: strokeWidth,
			},
			XValues: []float64{float64(r.Start), float64(r.End)},
			YValues: []float64{y, y},
		})
	}
	return series
}

// xRange spans every start and end position. It is never empty.
func xRange(t summary.Table) (float64, float64) {
	min, max, ok := t.Span()
	if !ok {
		return 0, 1
	}
	if min == max {
		return float64(min) - 1, float64(max) + 1
	}
	return float64(min), float64(max)
}

// positionFormatter writes axis positions as whole bases.
func positionFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%v", v)
}

// loadFont parses a builtin font by name or a TrueType file by path.
// A nil font means go-chart's default.
func loadFont(path string) (*truetype.Font, error) {
	if path == "" {
		return nil, nil
	}

	b, ok := builtinFonts[path]
	if !ok {
		var err error
		if b, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read font: %v", err)
		}
	}
	font, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %v", path, err)
	}
	return font, nil
}
