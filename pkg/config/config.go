package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/synergy-rank/pkg/validation"
)

// PPRConfig controls the power-iteration random walk.
type PPRConfig struct {
	Alpha         float64 `yaml:"alpha"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// SynergyConfig controls the PPR-to-synergy transformation.
type SynergyConfig struct {
	Epsilon      float64 `yaml:"epsilon"`
	MaxRevenue   float64 `yaml:"max_revenue"`
	TimeBaseline float64 `yaml:"time_baseline"`
}

// RankingConfig controls cluster extraction thresholds and output caps.
type RankingConfig struct {
	GoldenThreshold  float64 `yaml:"golden_threshold"`
	EntropyThreshold float64 `yaml:"entropy_threshold"`
	GoldenOutputCap  int     `yaml:"golden_output_cap"`
	EntropyOutputCap int     `yaml:"entropy_output_cap"`
}

// ProjectionConfig controls the compounding revenue projection.
type ProjectionConfig struct {
	CompoundRate     float64 `yaml:"compound_rate"`
	BaseMultiplier   float64 `yaml:"base_multiplier"`
	NetworkThreshold int     `yaml:"network_threshold"`
}

// EngineConfig is the full configuration for the ranking engine.
type EngineConfig struct {
	PPR        PPRConfig        `yaml:"ppr"`
	Synergy    SynergyConfig    `yaml:"synergy"`
	Ranking    RankingConfig    `yaml:"ranking"`
	Projection ProjectionConfig `yaml:"projection"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		PPR: PPRConfig{
			Alpha:         0.85,
			MaxIterations: 50,
			Tolerance:     1e-6,
		},
		Synergy: SynergyConfig{
			Epsilon:      1e-10,
			MaxRevenue:   10000,
			TimeBaseline: 0.5,
		},
		Ranking: RankingConfig{
			GoldenThreshold:  0.8,
			EntropyThreshold: -0.3,
			GoldenOutputCap:  10,
			EntropyOutputCap: 5,
		},
		Projection: ProjectionConfig{
			CompoundRate:     0.15,
			BaseMultiplier:   1.0,
			NetworkThreshold: 5,
		},
	}
}

// LoadFile reads a YAML config file over the defaults and validates
// the result.
func LoadFile(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all configuration values, collecting every violation.
func (c *EngineConfig) Validate() error {
	return validation.NewConfigValidator("EngineConfig").
		OpenRangeFloat("PPR.Alpha", c.PPR.Alpha, 0, 1).
		Positive("PPR.MaxIterations", c.PPR.MaxIterations).
		PositiveFloat("PPR.Tolerance", c.PPR.Tolerance).
		PositiveFloat("Synergy.Epsilon", c.Synergy.Epsilon).
		PositiveFloat("Synergy.MaxRevenue", c.Synergy.MaxRevenue).
		RangeFloat("Ranking.GoldenThreshold", c.Ranking.GoldenThreshold, -1, 1).
		RangeFloat("Ranking.EntropyThreshold", c.Ranking.EntropyThreshold, -1, 1).
		Positive("Ranking.GoldenOutputCap", c.Ranking.GoldenOutputCap).
		Positive("Ranking.EntropyOutputCap", c.Ranking.EntropyOutputCap).
		PositiveFloat("Projection.CompoundRate", c.Projection.CompoundRate).
		PositiveFloat("Projection.BaseMultiplier", c.Projection.BaseMultiplier).
		Positive("Projection.NetworkThreshold", c.Projection.NetworkThreshold).
		Validate()
}
