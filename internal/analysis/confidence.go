package analysis

// lowSampleCeiling caps confidence for topics with too few items. Staying
// under 0.5 signals "insufficient sample" without a separate flag field:
// downstream generators already branch on confidence >= 0.5.
const lowSampleCeiling = 0.49

// Confidence scores how much to trust a topic's classification, from sample
// size and outcome stability.
//
// Stability is 1 - 4p(1-p) for p = percentCorrect/100: 1 when answers are
// all right or all wrong, 0 at a 50/50 split. For a small sample a
// consistent outcome is more informative than a borderline one. The
// quadratic blend compresses low raw values while preserving high ones.
func Confidence(totalItems int, percentCorrect float64, minItems int) float64 {
	if minItems <= 0 {
		minItems = DefaultThresholds().MinItems
	}

	sampleFactor := clamp(float64(totalItems)/float64(minItems), 0, 1)
	p := clamp(percentCorrect/100, 0, 1)
	stability := 1 - 4*p*(1-p)

	raw := 0.5*sampleFactor + 0.5*stability
	conf := clamp(round2(0.85*raw+0.15*raw*raw), 0, 1)

	if totalItems < minItems && conf > lowSampleCeiling {
		conf = lowSampleCeiling
	}
	return conf
}
