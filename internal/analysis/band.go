package analysis

// Thresholds configures band classification and confidence scoring.
type Thresholds struct {
	// Weak is the accuracy ratio below which a topic is weak (0.6 = 60%).
	Weak float64
	// Borderline is the ratio above which a topic can be strong.
	Borderline float64
	// MinItems is the minimum sample size for full confidence.
	MinItems int
}

// DefaultThresholds returns the standard classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Weak:       0.6,
		Borderline: 0.8,
		MinItems:   3,
	}
}

// ClassifyBand assigns a band from the two accuracy metrics.
//
// The logic is deliberately asymmetric: weak triggers when EITHER metric
// falls below the weak threshold, while strong requires BOTH metrics to
// clear the borderline threshold. A single weak signal is enough to flag a
// topic early; certifying strength demands agreement.
func ClassifyBand(percentCorrect, avgScorePct float64, th Thresholds) Band {
	weakCut := th.Weak * 100
	strongCut := th.Borderline * 100

	if percentCorrect < weakCut || avgScorePct < weakCut {
		return BandWeak
	}
	if percentCorrect > strongCut && avgScorePct > strongCut {
		return BandStrong
	}
	return BandBorderline
}
