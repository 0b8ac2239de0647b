package metrics

import (
	"math"
	"sort"

	"vault-pulse/internal/domain"
	"vault-pulse/internal/provider"
)

const tokenScale = 1e18

// seriesToPoints converts raw hourly samples into the domain representation.
// Token-amount series are scaled out of base units here so every later
// computation sees decimal token quantities.
func seriesToPoints(series []provider.SeriesPoint, tokenAmount bool) []domain.TimeSeriesPoint {
	points := make([]domain.TimeSeriesPoint, 0, len(series))
	for _, s := range series {
		p := domain.TimeSeriesPoint{Timestamp: int64(s.X)}
		if s.Y != nil {
			v := float64(*s.Y)
			if tokenAmount {
				v /= tokenScale
			}
			p.Value = &v
		}
		points = append(points, p)
	}
	return points
}

// sortNewestFirst orders points descending by timestamp. The provider is
// expected to send them that way already, but the delta math depends on it,
// so it is enforced rather than assumed.
func sortNewestFirst(points []domain.TimeSeriesPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp > points[j].Timestamp
	})
}

// Average arithmetic-means the defined values of a window. Returns nil when
// every bucket is absent: "insufficient data" is not zero.
func Average(points []domain.TimeSeriesPoint) *float64 {
	sum := 0.0
	n := 0
	for _, p := range points {
		if p.Value == nil {
			continue
		}
		sum += *p.Value
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// Delta compares current against the oldest defined sample in the window.
// Returns nil when the window has no usable points or the oldest value is
// exactly zero, which would make the relative change a division by zero.
func Delta(current float64, points []domain.TimeSeriesPoint) *domain.DeltaResult {
	sorted := make([]domain.TimeSeriesPoint, len(points))
	copy(sorted, points)
	sortNewestFirst(sorted)

	var oldest *float64
	for _, p := range sorted {
		if p.Value != nil {
			oldest = p.Value
		}
	}
	if oldest == nil || *oldest == 0 || math.IsNaN(*oldest) {
		return nil
	}

	abs := current - *oldest
	return &domain.DeltaResult{Abs: abs, Rel: abs / *oldest}
}
