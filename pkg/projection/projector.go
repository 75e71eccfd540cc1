package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/dd0wney/synergy-rank/pkg/analysis"
	"github.com/dd0wney/synergy-rank/pkg/logging"
	"github.com/dd0wney/synergy-rank/pkg/metrics"
)

// Common sentinel errors
var (
	ErrEmptyGoldenVolume = errors.New("golden volume is empty")
	ErrInvalidMonths     = errors.New("months must be non-negative")
)

// Options configures the compounding revenue projection.
type Options struct {
	CompoundRate     float64 // Base monthly compound rate, usually 0.15
	BaseMultiplier   float64 // Network multiplier floor once activated
	NetworkThreshold int     // Golden-volume size required to activate the multiplier
}

// DefaultOptions returns the default projection configuration.
func DefaultOptions() Options {
	return Options{
		CompoundRate:     0.15,
		BaseMultiplier:   1.0,
		NetworkThreshold: 5,
	}
}

// Projection is the compounding value estimate built from the golden
// volume of a prior analysis.
type Projection struct {
	SeedID            string  `json:"seed_id"`
	Months            int     `json:"months"`
	GoldenCount       int     `json:"golden_count"`
	BaseValue         float64 `json:"base_value"`
	AvgSynergy        float64 `json:"avg_synergy"`
	SynergyRate       float64 `json:"synergy_rate"`
	ProjectedValue    float64 `json:"projected_value"`
	NetworkMultiplier float64 `json:"network_multiplier"`
	FinalValue        float64 `json:"final_value"`
	GrowthRate        float64 `json:"growth_rate"`
}

// Project estimates compounding value over the given number of months
// from the golden volume of an analysis result. An empty golden volume
// is an explicit, branchable error — not a panic — since sparse graphs
// routinely produce one.
func Project(result *analysis.Result, months int, opts Options) (*Projection, error) {
	reg := metrics.DefaultRegistry()

	if months < 0 {
		reg.RecordProjection("error")
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonths, months)
	}
	golden := result.GoldenVolume
	if len(golden) == 0 {
		reg.RecordProjection("empty_golden")
		return nil, ErrEmptyGoldenVolume
	}
	if opts.CompoundRate <= 0 {
		opts.CompoundRate = DefaultOptions().CompoundRate
	}
	if opts.BaseMultiplier <= 0 {
		opts.BaseMultiplier = DefaultOptions().BaseMultiplier
	}
	if opts.NetworkThreshold <= 0 {
		opts.NetworkThreshold = DefaultOptions().NetworkThreshold
	}

	// Negative revenue is excluded from the base so a drain node never
	// projects negative compounding.
	baseValue := 0.0
	synergySum := 0.0
	for _, m := range golden {
		if m.Revenue > 0 {
			baseValue += m.Revenue
		}
		synergySum += m.Synergy
	}
	avgSynergy := synergySum / float64(len(golden))

	synergyRate := opts.CompoundRate * (1 + avgSynergy)
	projected := baseValue * math.Pow(1+synergyRate, float64(months))

	// The network multiplier is intentionally superlinear in the
	// golden-volume size: ln(n^n) = n·ln(n).
	multiplier := 1.0
	n := len(golden)
	if n >= opts.NetworkThreshold {
		multiplier = opts.BaseMultiplier + float64(n)*math.Log(float64(n))/10 + avgSynergy*0.5
	}

	finalValue := projected * multiplier

	growthRate := 0.0
	if baseValue > 0 {
		growthRate = finalValue/baseValue - 1
	}

	projection := &Projection{
		SeedID:            result.Meta.SeedID,
		Months:            months,
		GoldenCount:       n,
		BaseValue:         roundTo(baseValue, 2),
		AvgSynergy:        roundTo(avgSynergy, 6),
		SynergyRate:       roundTo(synergyRate, 6),
		ProjectedValue:    roundTo(projected, 2),
		NetworkMultiplier: roundTo(multiplier, 4),
		FinalValue:        roundTo(finalValue, 2),
		GrowthRate:        roundTo(growthRate, 4),
	}

	reg.RecordProjection("success")
	logging.Debug("projection complete",
		logging.Component("projector"),
		logging.SeedID(result.Meta.SeedID),
		logging.Count(n),
		logging.Float64("final_value", projection.FinalValue),
	)

	return projection, nil
}

func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
