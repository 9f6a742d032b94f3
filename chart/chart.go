// Package chart computes line and bar chart geometry as plain data: rows and a
// metric in, pixel-space points out. Rendering to SVG is left to templates so
// the mapping stays unit-testable.
package chart

import (
	"fmt"
	"strings"

	"github.com/IamDalemark/energy-consumption-frontend/models"
)

// Metric identifiers accepted by BuildLineChart.
const (
	MetricEnergyConsumption = "energy_consumption"
	MetricSquareFootage     = "square_footage"
	MetricOccupants         = "number_of_occupants"
	MetricAppliances        = "appliances_used"
)

const gridlineCount = 5

type Dimensions struct {
	Width, Height                        float64
	PadTop, PadRight, PadBottom, PadLeft float64
}

// DefaultDimensions is the dataset chart's logical canvas.
var DefaultDimensions = Dimensions{
	Width: 1000, Height: 500,
	PadTop: 40, PadRight: 60, PadBottom: 60, PadLeft: 80,
}

// DefaultBarDimensions is the factor chart's logical canvas.
var DefaultBarDimensions = Dimensions{
	Width: 600, Height: 300,
	PadTop: 30, PadRight: 30, PadBottom: 50, PadLeft: 60,
}

func (d Dimensions) PlotWidth() float64  { return d.Width - d.PadLeft - d.PadRight }
func (d Dimensions) PlotHeight() float64 { return d.Height - d.PadTop - d.PadBottom }
func (d Dimensions) PlotRight() float64  { return d.Width - d.PadRight }
func (d Dimensions) PlotBottom() float64 { return d.Height - d.PadBottom }

// LabelX is the right-aligned anchor for the y-axis gridline labels.
func (d Dimensions) LabelX() float64 { return d.PadLeft - 10 }

type Point struct {
	X, Y         float64
	Value        float64
	BuildingType string
	Color        string
}

type Gridline struct {
	Y     float64
	Label string
}

type LineChart struct {
	Dims      Dimensions
	Metric    string
	Points    []Point
	Gridlines []Gridline
	// Path is the SVG polyline points attribute for the series.
	Path string
}

var buildingColors = map[string]string{
	models.BuildingResidential: "#4caf50",
	models.BuildingCommercial:  "#2196f3",
	models.BuildingIndustrial:  "#ff9800",
}

const defaultColor = "#9e9e9e"

// ColorFor maps a building type to its series color, falling back to a neutral
// grey for unknown types.
func ColorFor(buildingType string) string {
	if c, ok := buildingColors[buildingType]; ok {
		return c
	}
	return defaultColor
}

// MetricValue extracts the selected metric from a row. Unknown metric names
// read as energy consumption.
func MetricValue(row models.DatasetRow, metric string) float64 {
	switch metric {
	case MetricSquareFootage:
		return row.SquareFootage
	case MetricOccupants:
		return row.NumberOfOccupants
	case MetricAppliances:
		return row.AppliancesUsed
	default:
		return row.EnergyConsumption
	}
}

// BuildLineChart maps rows to pixel space. X placement is index-based and
// linear; Y is inverted min/max normalization. A constant series (min == max)
// uses a range of one with the floor shifted half a unit down, which puts
// every point at the vertical chart center.
func BuildLineChart(rows []models.DatasetRow, metric string, d Dimensions) LineChart {
	lc := LineChart{Dims: d, Metric: metric}
	if len(rows) == 0 {
		return lc
	}

	lo := MetricValue(rows[0], metric)
	hi := lo
	for _, row := range rows[1:] {
		v := MetricValue(row, metric)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	rng := hi - lo
	floor := lo
	if rng == 0 {
		rng = 1
		floor = lo - 0.5
	}

	denom := float64(len(rows) - 1)
	if denom < 1 {
		denom = 1
	}

	lc.Points = make([]Point, 0, len(rows))
	for i, row := range rows {
		v := MetricValue(row, metric)
		lc.Points = append(lc.Points, Point{
			X:            d.PadLeft + (float64(i)/denom)*d.PlotWidth(),
			Y:            d.PadTop + d.PlotHeight() - ((v-floor)/rng)*d.PlotHeight(),
			Value:        v,
			BuildingType: row.BuildingType,
			Color:        ColorFor(row.BuildingType),
		})
	}

	lc.Gridlines = make([]Gridline, 0, gridlineCount)
	for i := 0; i < gridlineCount; i++ {
		lc.Gridlines = append(lc.Gridlines, Gridline{
			Y:     d.PadTop + (float64(i)/float64(gridlineCount-1))*d.PlotHeight(),
			Label: fmt.Sprintf("%.1f", hi-float64(i)*rng/float64(gridlineCount-1)),
		})
	}

	lc.Path = polylinePath(lc.Points)
	return lc
}

func polylinePath(points []Point) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", p.X, p.Y)
	}
	return b.String()
}
