package plot

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// colorbar is a vertical identity scale drawn to the right of the canvas.
// Sizes are in inches and scaled by dpi when drawn.
type colorbar struct {
	label string
	dpi   float64

	// gap between the canvas and the bar
	margin float64

	// bar width
	width float64

	// number of bands the gradient is drawn with
	steps int
}

// colorbarTicks are the identities labelled beside the bar.
var colorbarTicks = []float64{0, 0.2, 0.4, 0.6, 0.8, 1}

func newColorbar(label string, dpi float64) colorbar {
	return colorbar{
		label:  label,
		dpi:    dpi,
		margin: 0.35,
		width:  0.25,
		steps:  256,
	}
}

// reserve is the right padding, in pixels, the colorbar needs beside the canvas.
func (cb colorbar) reserve() int {
	return cb.px(cb.margin + cb.width + 1.0)
}

func (cb colorbar) px(inches float64) int {
	return int(inches * cb.dpi)
}

// box is where the bar is drawn relative to the chart's canvas.
func (cb colorbar) box(canvas chart.Box) chart.Box {
	left := canvas.Right + cb.px(cb.margin)
	return chart.Box{
		Top:    canvas.Top,
		Left:   left,
		Right:  left + cb.px(cb.width),
		Bottom: canvas.Bottom,
	}
}

// render draws the gradient, its frame, tick labels and the rotated label.
func (cb colorbar) render(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
	bar := cb.box(canvas)
	height := float64(bar.Height())

	// gradient, identity 0 at the bottom
	for i := 0; i < cb.steps; i++ {
		lo := bar.Bottom - int(float64(i)*height/float64(cb.steps))
		hi := bar.Bottom - int(float64(i+1)*height/float64(cb.steps))
		if hi == lo {
			continue
		}

		c := IdentityColor((float64(i) + 0.5) / float64(cb.steps))
		r.SetFillColor(c)
		r.SetStrokeColor(c)
		r.SetStrokeWidth(0)
		r.MoveTo(bar.Left, lo)
		r.LineTo(bar.Right, lo)
		r.LineTo(bar.Right, hi)
		r.LineTo(bar.Left, hi)
		r.Close()
		r.Fill()
	}

	frame := chart.Style{
		StrokeColor: drawing.ColorBlack,
		StrokeWidth: cb.dpi / 72,
	}
	frame.WriteDrawingOptionsToRenderer(r)
	r.MoveTo(bar.Left, bar.Top)
	r.LineTo(bar.Right, bar.Top)
	r.LineTo(bar.Right, bar.Bottom)
	r.LineTo(bar.Left, bar.Bottom)
	r.Close()
	r.Stroke()

	// tick marks and labels
	text := chart.Style{
		Font:      defaults.Font,
		FontSize:  chart.DefaultAxisFontSize,
		FontColor: drawing.ColorBlack,
	}
	text.WriteTextOptionsToRenderer(r)

	tickLen := cb.px(0.05)
	widest := 0
	for _, v := range colorbarTicks {
		y := bar.Bottom - int(v*height)

		r.SetStrokeColor(drawing.ColorBlack)
		r.SetStrokeWidth(cb.dpi / 72)
		r.MoveTo(bar.Right, y)
		r.LineTo(bar.Right+tickLen, y)
		r.Stroke()

		label := fmt.Sprintf("%.1f", v)
		tb := r.MeasureText(label)
		if tb.Width() > widest {
			widest = tb.Width()
		}
		r.Text(label, bar.Right+2*tickLen, y+tb.Height()/2)
	}

	if cb.label == "" {
		return
	}

	// label reads bottom to top, centred on the bar
	tb := r.MeasureText(cb.label)
	r.SetTextRotation(chart.DegreesToRadians(270))
	x := bar.Right + 3*tickLen + widest + tb.Height()
	y := bar.Top + bar.Height()/2 + tb.Width()/2
	r.Text(cb.label, x, y)
	r.ClearTextRotation()
}
