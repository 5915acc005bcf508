// internal/app/store/metrics/numeric.go
package metricsstore

import "math"

// percent returns part of whole as a percentage rounded to the nearest
// integer. A zero denominator yields 0, never NaN.
func percent(part, whole int64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
