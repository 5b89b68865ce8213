package spatial

import (
	"math"
)

// HemisphereSign holds the expected coordinate signs for the target region:
// -1 for the southern/western hemisphere, +1 for northern/eastern.
type HemisphereSign struct {
	Lat int
	Lon int
}

// SanitizeOptions controls the batch correction heuristics.
type SanitizeOptions struct {
	// Sign is the expected hemisphere sign per axis.
	Sign HemisphereSign

	// MajorityThreshold is the fraction of wrong-signed values above which
	// a whole-column sign error is assumed.
	MajorityThreshold float64

	// SwapSplitDegrees separates plausible latitude magnitudes from plausible
	// longitude magnitudes for the target region. The region's true longitude
	// magnitude (~40) sits above it, the true latitude magnitude (~19) below,
	// so transposed columns collapse mean |lon| under the split.
	SwapSplitDegrees float64
}

// DefaultSanitizeOptions returns the options tuned for the Espírito Santo
// dataset: southern/western hemisphere, 0.6 majority, 30 degree split.
func DefaultSanitizeOptions() SanitizeOptions {
	return SanitizeOptions{
		Sign:              HemisphereSign{Lat: -1, Lon: -1},
		MajorityThreshold: 0.6,
		SwapSplitDegrees:  30,
	}
}

// CorrectionReport summarizes the corrections applied to a batch.
type CorrectionReport struct {
	LonSignFlipped int  `json:"lonSignFlipped"`
	LatSignFlipped int  `json:"latSignFlipped"`
	Swapped        bool `json:"swapped"`
}

// Empty reports whether no correction was applied
func (r CorrectionReport) Empty() bool {
	return r.LonSignFlipped == 0 && r.LatSignFlipped == 0 && !r.Swapped
}

// Sanitize detects and corrects systematic geocoding errors in a batch:
// whole-column sign errors on longitude and latitude, then transposed
// lat/lon columns. Each step inspects the current state of the batch, so
// later corrections see the effect of earlier ones.
//
// The decisions are population-level: a single point's coordinates are not
// self-diagnostic, so no correction is ever applied per record. Below the
// thresholds the data passes through unchanged. Sanitize never fails; it
// returns a best-effort corrected copy plus a report of what was done.
// Out-of-range values that survive are left for the region filter to drop.
func Sanitize(points []Point, opts SanitizeOptions) ([]Point, CorrectionReport) {
	out := make([]Point, len(points))
	copy(out, points)

	var report CorrectionReport
	if len(out) == 0 {
		return out, report
	}

	// Longitude sign: if most values sit in the wrong hemisphere, the whole
	// column was exported with the wrong sign.
	if wrong := countWrongSign(out, opts.Sign.Lon, lonOf); fraction(wrong, len(out)) > opts.MajorityThreshold {
		for i := range out {
			if wrongSign(out[i].Lon, opts.Sign.Lon) {
				out[i].Lon = -out[i].Lon
			}
		}
		report.LonSignFlipped = wrong
	}

	// Latitude sign, same rule, evaluated after the longitude fix.
	if wrong := countWrongSign(out, opts.Sign.Lat, latOf); fraction(wrong, len(out)) > opts.MajorityThreshold {
		for i := range out {
			if wrongSign(out[i].Lat, opts.Sign.Lat) {
				out[i].Lat = -out[i].Lat
			}
		}
		report.LatSignFlipped = wrong
	}

	// Column swap: one global decision for the whole batch. When the mean
	// longitude magnitude is implausibly small and the mean latitude
	// magnitude implausibly large, the two columns were transposed upstream.
	meanAbsLon := meanAbs(out, lonOf)
	meanAbsLat := meanAbs(out, latOf)
	if meanAbsLon < opts.SwapSplitDegrees && meanAbsLat > opts.SwapSplitDegrees {
		for i := range out {
			out[i].Lat, out[i].Lon = out[i].Lon, out[i].Lat
		}
		report.Swapped = true
	}

	return out, report
}

func latOf(p Point) float64 { return p.Lat }
func lonOf(p Point) float64 { return p.Lon }

// wrongSign reports whether v has the sign opposite the expected hemisphere.
// NaN is never wrong-signed.
func wrongSign(v float64, sign int) bool {
	if sign < 0 {
		return v > 0
	}
	return v < 0
}

func countWrongSign(points []Point, sign int, coord func(Point) float64) int {
	count := 0
	for _, p := range points {
		if wrongSign(coord(p), sign) {
			count++
		}
	}
	return count
}

func fraction(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// meanAbs averages the absolute coordinate values, skipping non-finite ones
func meanAbs(points []Point, coord func(Point) float64) float64 {
	var sum float64
	n := 0
	for _, p := range points {
		v := coord(p)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += math.Abs(v)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
