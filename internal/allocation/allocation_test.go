package allocation

import (
	"math"
	"testing"

	"github.com/qazprep/qazprep/internal/analysis"
)

func topic(name string, band analysis.Band, conf float64) analysis.TopicAnalysis {
	return analysis.TopicAnalysis{Topic: name, Classification: band, Confidence: conf}
}

func proportionSum(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Proportion
	}
	return sum
}

func shareOf(items []Item, topics []analysis.TopicAnalysis, band analysis.Band) float64 {
	var sum float64
	for i, t := range topics {
		if t.Classification == band {
			sum += items[i].Proportion
		}
	}
	return sum
}

func TestPlan_Empty(t *testing.T) {
	if items := Plan(nil, DefaultConfig()); items != nil {
		t.Errorf("got %v, want nil", items)
	}
}

func TestPlan_SingleTopicGetsEverything(t *testing.T) {
	for _, band := range []analysis.Band{analysis.BandWeak, analysis.BandBorderline, analysis.BandStrong} {
		items := Plan([]analysis.TopicAnalysis{topic("only", band, 0.1)}, DefaultConfig())
		if len(items) != 1 || items[0].Proportion != 1 {
			t.Errorf("band %s: got %v, want single proportion exactly 1", band, items)
		}
	}
}

func TestPlan_SumIsExactlyOne(t *testing.T) {
	topics := []analysis.TopicAnalysis{
		topic("a", analysis.BandWeak, 0.3),
		topic("b", analysis.BandWeak, 0.9),
		topic("c", analysis.BandBorderline, 0.7),
		topic("d", analysis.BandStrong, 0.5),
		topic("e", analysis.BandStrong, 1.0),
	}
	items := Plan(topics, DefaultConfig())
	if got := proportionSum(items); math.Abs(got-1) > 1e-9 {
		t.Errorf("sum = %v, want 1 within 1e-9", got)
	}
	for _, it := range items {
		if it.Proportion < 0 {
			t.Errorf("topic %s has negative proportion %v", it.Topic, it.Proportion)
		}
	}
}

func TestPlan_WeakShareWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	topics := []analysis.TopicAnalysis{
		topic("w", analysis.BandWeak, 0.0),
		topic("b1", analysis.BandBorderline, 1.0),
		topic("b2", analysis.BandBorderline, 1.0),
		topic("b3", analysis.BandBorderline, 1.0),
		topic("b4", analysis.BandBorderline, 1.0),
		topic("b5", analysis.BandBorderline, 1.0),
	}
	// Raw weak weight 1.5 against 5x1.5: weak share 1/6, below the
	// minimum, must be lifted to it.
	items := Plan(topics, cfg)
	weak := shareOf(items, topics, analysis.BandWeak)
	if math.Abs(weak-cfg.WeakShareMin) > 1e-9 {
		t.Errorf("weak share = %v, want lifted to %v", weak, cfg.WeakShareMin)
	}
	if got := proportionSum(items); math.Abs(got-1) > 1e-9 {
		t.Errorf("sum = %v, want 1", got)
	}
}

func TestPlan_WeakShareCappedAtMax(t *testing.T) {
	cfg := DefaultConfig()
	topics := []analysis.TopicAnalysis{
		topic("w1", analysis.BandWeak, 1.0),
		topic("w2", analysis.BandWeak, 1.0),
		topic("w3", analysis.BandWeak, 1.0),
		topic("b", analysis.BandBorderline, 0.0),
	}
	// Raw weak share 9/9.75 far exceeds the max.
	items := Plan(topics, cfg)
	weak := shareOf(items, topics, analysis.BandWeak)
	if math.Abs(weak-cfg.WeakShareMax) > 1e-9 {
		t.Errorf("weak share = %v, want capped to %v", weak, cfg.WeakShareMax)
	}
}

func TestPlan_StrongShareCapped(t *testing.T) {
	cfg := DefaultConfig()
	topics := []analysis.TopicAnalysis{
		topic("s1", analysis.BandStrong, 1.0),
		topic("s2", analysis.BandStrong, 1.0),
		topic("b", analysis.BandBorderline, 0.0),
	}
	// No weak topics: only the strong cap applies.
	items := Plan(topics, cfg)
	strong := shareOf(items, topics, analysis.BandStrong)
	if math.Abs(strong-cfg.StrongShareMax) > 1e-9 {
		t.Errorf("strong share = %v, want capped to %v", strong, cfg.StrongShareMax)
	}
	if got := proportionSum(items); math.Abs(got-1) > 1e-9 {
		t.Errorf("sum = %v, want 1", got)
	}
}

func TestPlan_TwoTopicBoundaryCase(t *testing.T) {
	// One weak, one strong: weak-share enforcement pins weak to 0.7,
	// then the strong cap pulls strong down to 0.25 and hands the freed
	// mass back to weak. The final weak share (0.75) sits above the
	// weak maximum; the constraints apply sequentially, not jointly.
	cfg := DefaultConfig()
	topics := []analysis.TopicAnalysis{
		topic("w", analysis.BandWeak, 0.6),
		topic("s", analysis.BandStrong, 0.8),
	}
	items := Plan(topics, cfg)
	weak := shareOf(items, topics, analysis.BandWeak)
	strong := shareOf(items, topics, analysis.BandStrong)
	if math.Abs(strong-0.25) > 1e-9 {
		t.Errorf("strong share = %v, want 0.25", strong)
	}
	if math.Abs(weak-0.75) > 1e-9 {
		t.Errorf("weak share = %v, want 0.75", weak)
	}
}

func TestPlan_AllWeakSkipsEnforcement(t *testing.T) {
	topics := []analysis.TopicAnalysis{
		topic("w1", analysis.BandWeak, 0.3),
		topic("w2", analysis.BandWeak, 0.9),
	}
	items := Plan(topics, DefaultConfig())
	if got := proportionSum(items); math.Abs(got-1) > 1e-9 {
		t.Errorf("sum = %v, want 1", got)
	}
	// Higher-confidence weak topic gets the larger share.
	if items[1].Proportion <= items[0].Proportion {
		t.Errorf("expected w2 (%v) above w1 (%v)", items[1].Proportion, items[0].Proportion)
	}
}

func TestPlan_ConfidenceDamping(t *testing.T) {
	topics := []analysis.TopicAnalysis{
		topic("low", analysis.BandBorderline, 0.0),
		topic("high", analysis.BandBorderline, 1.0),
	}
	items := Plan(topics, DefaultConfig())
	// Zero confidence halves the weight: shares must be 1/3 and 2/3.
	if math.Abs(items[0].Proportion-1.0/3) > 1e-9 {
		t.Errorf("low-confidence share = %v, want 1/3", items[0].Proportion)
	}
	if math.Abs(items[1].Proportion-2.0/3) > 1e-9 {
		t.Errorf("high-confidence share = %v, want 2/3", items[1].Proportion)
	}
}

func TestPlan_StrongCapDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrongShareMax = 0
	topics := []analysis.TopicAnalysis{
		topic("s1", analysis.BandStrong, 1.0),
		topic("s2", analysis.BandStrong, 1.0),
		topic("b", analysis.BandBorderline, 0.0),
	}
	items := Plan(topics, cfg)
	strong := shareOf(items, topics, analysis.BandStrong)
	if strong <= 0.25 {
		t.Errorf("strong share = %v, want uncapped", strong)
	}
}
