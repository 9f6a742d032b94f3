package chart

import "github.com/IamDalemark/energy-consumption-frontend/models"

type Bar struct {
	Label               string
	Value               float64
	X, Y, Width, Height float64
	Color               string
	// Precomputed label anchors, so templates stay arithmetic-free.
	CenterX, LabelY, ValueY float64
}

type BarChart struct {
	Dims Dimensions
	Bars []Bar
}

var factorColors = [...]string{"#4caf50", "#2196f3", "#ff9800", "#9c27b0"}

// BuildFactorBars lays out the four factor contributions in fixed order,
// regardless of magnitude. Bars scale against the largest contribution; an
// all-zero set renders four zero-height bars on the baseline.
func BuildFactorBars(f models.Factors, d Dimensions) BarChart {
	entries := []struct {
		label string
		value float64
	}{
		{"Building Type", f.BuildingType},
		{"Square Footage", f.SquareFootage},
		{"Occupants", f.NumberOfOccupants},
		{"Appliances", f.AppliancesUsed},
	}

	max := 0.0
	for _, e := range entries {
		if e.value > max {
			max = e.value
		}
	}
	if max == 0 {
		max = 1
	}

	slot := d.PlotWidth() / float64(len(entries))
	barWidth := slot * 0.6

	bc := BarChart{Dims: d, Bars: make([]Bar, 0, len(entries))}
	for i, e := range entries {
		v := e.value
		if v < 0 {
			v = 0
		}
		h := (v / max) * d.PlotHeight()
		x := d.PadLeft + float64(i)*slot + (slot-barWidth)/2
		y := d.PadTop + d.PlotHeight() - h
		bc.Bars = append(bc.Bars, Bar{
			Label:   e.label,
			Value:   e.value,
			X:       x,
			Y:       y,
			Width:   barWidth,
			Height:  h,
			Color:   factorColors[i],
			CenterX: x + barWidth/2,
			LabelY:  d.PlotBottom() + 20,
			ValueY:  y - 6,
		})
	}
	return bc
}
