package plot

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// IdentityColor maps an identity in [0, 1] onto the viridis color scale.
// Values outside the range are clamped to the scale's ends.
func IdentityColor(identity float64) drawing.Color {
	switch {
	case math.IsNaN(identity), identity < 0:
		identity = 0
	case identity > 1:
		identity = 1
	}
	return chart.Viridis(identity, 0, 1)
}
