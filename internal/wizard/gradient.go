package wizard

import (
	"fmt"
	"math"
)

// Color anchors for the three tone axes, in band order.
const (
	ColorDirectness = "#E25822"
	ColorWarmth     = "#F2B134"
	ColorChallenge  = "#7A3E9D"
)

const (
	// minSegment is the smallest visible share of any band, in percent.
	minSegment = 8.0
	// bandOverlap softens the seam between adjacent bands, in points.
	bandOverlap = 2
)

// GradientBand is one colored span of the preview background, with its
// start and end positions in [0,100].
type GradientBand struct {
	Color string
	From  int
	To    int
}

// GradientSpec is the three-band blend derived from a tone triple.
// Widths holds the final segment shares (summing to 100); Stops holds
// the rounded cumulative boundaries before the overlap is applied.
type GradientSpec struct {
	Widths [3]float64
	Stops  [2]int
	Bands  [3]GradientBand
}

// Descriptor renders the canonical textual form of the gradient.
// Identical inputs to ComputePreviewGradient yield byte-identical
// descriptors.
func (g GradientSpec) Descriptor() string {
	return fmt.Sprintf("linear-gradient(120deg, %s %d%% %d%%, %s %d%% %d%%, %s %d%% %d%%)",
		g.Bands[0].Color, g.Bands[0].From, g.Bands[0].To,
		g.Bands[1].Color, g.Bands[1].From, g.Bands[1].To,
		g.Bands[2].Color, g.Bands[2].From, g.Bands[2].To,
	)
}

// ComputePreviewGradient maps three non-negative tone weights onto a
// three-band gradient. Each band keeps a minimum visible share of 8%;
// the clamped-away budget is redistributed among the unclamped bands in
// proportion to their pre-clamp shares. The function is pure.
func ComputePreviewGradient(d, w, c float64) GradientSpec {
	raw := [3]float64{d, w, c}
	total := raw[0] + raw[1] + raw[2]
	if total < 1e-6 {
		total = 1e-6
	}

	var pct [3]float64
	for i, v := range raw {
		pct[i] = v / total * 100
	}

	var clamped [3]bool
	budget := 100.0
	unclampedSum := 0.0
	for i, p := range pct {
		if p < minSegment {
			clamped[i] = true
			budget -= minSegment
		} else {
			unclampedSum += p
		}
	}

	var widths [3]float64
	if unclampedSum <= 0 {
		// Every band fell below the minimum: an even split is the only
		// sensible distribution left.
		for i := range widths {
			widths[i] = 100.0 / 3
		}
	} else {
		for i := range widths {
			if clamped[i] {
				widths[i] = minSegment
			} else {
				widths[i] = pct[i] / unclampedSum * budget
			}
		}
	}

	stop1 := int(math.Round(widths[0]))
	stop2 := int(math.Round(widths[0] + widths[1]))

	return GradientSpec{
		Widths: widths,
		Stops:  [2]int{stop1, stop2},
		Bands: [3]GradientBand{
			{Color: ColorDirectness, From: 0, To: clampPct(stop1 + bandOverlap)},
			{Color: ColorWarmth, From: clampPct(stop1 - bandOverlap), To: clampPct(stop2 + bandOverlap)},
			{Color: ColorChallenge, From: clampPct(stop2 - bandOverlap), To: 100},
		},
	}
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
