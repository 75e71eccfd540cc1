package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/dd0wney/synergy-rank/pkg/analysis"
)

func resultWithGolden(members []analysis.Member) *analysis.Result {
	return &analysis.Result{
		Meta:         analysis.Meta{SeedID: "seed"},
		GoldenVolume: members,
	}
}

func TestProject_InvalidMonths(t *testing.T) {
	result := resultWithGolden([]analysis.Member{{ID: "a", Revenue: 100, Synergy: 0.9}})

	_, err := Project(result, -1, DefaultOptions())
	if !errors.Is(err, ErrInvalidMonths) {
		t.Errorf("Expected ErrInvalidMonths, got %v", err)
	}
}

func TestProject_EmptyGoldenVolume(t *testing.T) {
	result := resultWithGolden(nil)

	_, err := Project(result, 12, DefaultOptions())
	if !errors.Is(err, ErrEmptyGoldenVolume) {
		t.Errorf("Expected ErrEmptyGoldenVolume, got %v", err)
	}
}

func TestProject_CompoundMath(t *testing.T) {
	// Three golden members keep the graph below the network threshold,
	// so the multiplier stays at 1 and the compound term is isolated.
	result := resultWithGolden([]analysis.Member{
		{ID: "a", Revenue: 1000, Synergy: 0.9},
		{ID: "b", Revenue: 2000, Synergy: 0.8},
		{ID: "c", Revenue: -500, Synergy: 0.85}, // negative revenue excluded
	})

	p, err := Project(result, 12, DefaultOptions())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	if p.BaseValue != 3000 {
		t.Errorf("Expected base value 3000, got %f", p.BaseValue)
	}
	if math.Abs(p.AvgSynergy-0.85) > 1e-9 {
		t.Errorf("Expected avg synergy 0.85, got %f", p.AvgSynergy)
	}

	wantRate := 0.15 * (1 + 0.85)
	if math.Abs(p.SynergyRate-wantRate) > 1e-6 {
		t.Errorf("Expected synergy rate %f, got %f", wantRate, p.SynergyRate)
	}

	wantProjected := 3000 * math.Pow(1+wantRate, 12)
	if math.Abs(p.ProjectedValue-wantProjected) > 0.01 {
		t.Errorf("Expected projected value %f, got %f", wantProjected, p.ProjectedValue)
	}

	if p.NetworkMultiplier != 1.0 {
		t.Errorf("Expected multiplier 1 below threshold, got %f", p.NetworkMultiplier)
	}
	if p.FinalValue != p.ProjectedValue {
		t.Errorf("Expected final == projected without multiplier, got %f vs %f",
			p.FinalValue, p.ProjectedValue)
	}
	if p.GoldenCount != 3 {
		t.Errorf("Expected golden count 3, got %d", p.GoldenCount)
	}
	if p.SeedID != "seed" {
		t.Errorf("Expected seed id carried over, got %s", p.SeedID)
	}
}

func TestProject_NetworkMultiplierActivation(t *testing.T) {
	members := make([]analysis.Member, 5)
	for i := range members {
		members[i] = analysis.Member{ID: string(rune('a' + i)), Revenue: 1000, Synergy: 0.9}
	}

	p, err := Project(resultWithGolden(members), 6, DefaultOptions())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	// multiplier = 1 + 5*ln(5)/10 + 0.9*0.5
	want := 1.0 + 5*math.Log(5)/10 + 0.45
	if math.Abs(p.NetworkMultiplier-want) > 1e-3 {
		t.Errorf("Expected multiplier %f, got %f", want, p.NetworkMultiplier)
	}
	if p.NetworkMultiplier <= 1 {
		t.Errorf("Expected superlinear multiplier above 1, got %f", p.NetworkMultiplier)
	}

	wantFinal := p.ProjectedValue * p.NetworkMultiplier
	if math.Abs(p.FinalValue-wantFinal) > 1 {
		t.Errorf("Expected final %f, got %f", wantFinal, p.FinalValue)
	}
}

func TestProject_BelowThresholdBoundary(t *testing.T) {
	members := make([]analysis.Member, 4)
	for i := range members {
		members[i] = analysis.Member{ID: string(rune('a' + i)), Revenue: 500, Synergy: 0.85}
	}

	p, err := Project(resultWithGolden(members), 6, DefaultOptions())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	if p.NetworkMultiplier != 1.0 {
		t.Errorf("Expected multiplier 1 with 4 members, got %f", p.NetworkMultiplier)
	}
}

func TestProject_ZeroMonths(t *testing.T) {
	result := resultWithGolden([]analysis.Member{
		{ID: "a", Revenue: 1200, Synergy: 0.9},
	})

	p, err := Project(result, 0, DefaultOptions())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	if p.ProjectedValue != 1200 {
		t.Errorf("Expected no compounding at 0 months, got %f", p.ProjectedValue)
	}
	if p.GrowthRate != 0 {
		t.Errorf("Expected zero growth at 0 months, got %f", p.GrowthRate)
	}
}

func TestProject_AllNegativeRevenue(t *testing.T) {
	result := resultWithGolden([]analysis.Member{
		{ID: "a", Revenue: -100, Synergy: 0.9},
		{ID: "b", Revenue: -200, Synergy: 0.8},
	})

	p, err := Project(result, 12, DefaultOptions())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	if p.BaseValue != 0 {
		t.Errorf("Expected zero base with all-negative revenue, got %f", p.BaseValue)
	}
	if p.ProjectedValue != 0 || p.FinalValue != 0 {
		t.Errorf("Expected zero projection, got %f / %f", p.ProjectedValue, p.FinalValue)
	}
	if p.GrowthRate != 0 {
		t.Errorf("Expected zero growth with zero base, got %f", p.GrowthRate)
	}
}

func TestProject_GrowthRate(t *testing.T) {
	result := resultWithGolden([]analysis.Member{
		{ID: "a", Revenue: 1000, Synergy: 0.5},
	})

	p, err := Project(result, 12, DefaultOptions())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	want := p.FinalValue/p.BaseValue - 1
	if math.Abs(p.GrowthRate-want) > 1e-3 {
		t.Errorf("Expected growth rate %f, got %f", want, p.GrowthRate)
	}
	if p.GrowthRate <= 0 {
		t.Errorf("Expected positive growth over 12 months, got %f", p.GrowthRate)
	}
}

func TestProject_ZeroOptionsFallBackToDefaults(t *testing.T) {
	result := resultWithGolden([]analysis.Member{
		{ID: "a", Revenue: 1000, Synergy: 0.9},
	})

	p, err := Project(result, 12, Options{})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	wantRate := 0.15 * 1.9
	if math.Abs(p.SynergyRate-wantRate) > 1e-6 {
		t.Errorf("Expected default compound rate applied, got rate %f", p.SynergyRate)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.CompoundRate != 0.15 {
		t.Errorf("Expected default compound rate 0.15, got %f", opts.CompoundRate)
	}
	if opts.BaseMultiplier != 1.0 {
		t.Errorf("Expected default base multiplier 1, got %f", opts.BaseMultiplier)
	}
	if opts.NetworkThreshold != 5 {
		t.Errorf("Expected default network threshold 5, got %d", opts.NetworkThreshold)
	}
}
