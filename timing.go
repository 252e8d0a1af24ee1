package cadence

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Phi is the golden ratio. The default timing and spacing tables are built
// from powers of it, following the house style of the scripted videos.
const (
	Phi    = 1.618033988749895
	PhiInv = 0.618033988749895
	PhiSq  = 2.618033988749895
)

// Timing is a table of named durations (in seconds) used to parameterize
// animations without magic numbers. It is an immutable value: pass it
// explicitly to whatever builds combinators, never mutate a shared copy.
type Timing struct {
	// Core timings
	Instant  float64 `yaml:"instant"`  // snap changes
	Flash    float64 `yaml:"flash"`    // φ⁻³, quick flash
	Quick    float64 `yaml:"quick"`    // φ⁻², fast reveals
	Fast     float64 `yaml:"fast"`     // φ⁻¹, quick transitions
	Normal   float64 `yaml:"normal"`   // standard timing
	Slow     float64 `yaml:"slow"`     // φ, deliberate reveals
	Dramatic float64 `yaml:"dramatic"` // φ², big moments
	Epic     float64 `yaml:"epic"`     // φ³, chapter transitions

	// Pauses
	Beat        float64 `yaml:"beat"`
	Breath      float64 `yaml:"breath"`
	Absorb      float64 `yaml:"absorb"`
	Contemplate float64 `yaml:"contemplate"`

	// Lag ratios for staggered animations
	LagFast   float64 `yaml:"lag_fast"`
	LagNormal float64 `yaml:"lag_normal"`
	LagSlow   float64 `yaml:"lag_slow"`
}

// Spacing is the layout counterpart of Timing: named distances in scene units.
type Spacing struct {
	Tight float64 `yaml:"tight"`
	SM    float64 `yaml:"sm"`
	MD    float64 `yaml:"md"` // φ⁻²
	LG    float64 `yaml:"lg"` // φ⁻¹
	XL    float64 `yaml:"xl"`

	// Tree layout
	TreeLevelHeight float64 `yaml:"tree_level_height"` // vertical step per level
	TreeMaxWidth    float64 `yaml:"tree_max_width"`    // default horizontal bound span
	TreeOriginY     float64 `yaml:"tree_origin_y"`     // Y of the root level
}

// Config bundles the timing and spacing tables. Layout and scene scripts take
// a Config value rather than reading ambient globals.
type Config struct {
	Timing  Timing  `yaml:"timing"`
	Spacing Spacing `yaml:"spacing"`
}

// DefaultConfig returns the built-in φ-based tables.
func DefaultConfig() Config {
	return Config{
		Timing: Timing{
			Instant:  0.1,
			Flash:    0.236,
			Quick:    0.382,
			Fast:     PhiInv,
			Normal:   1.0,
			Slow:     Phi,
			Dramatic: PhiSq,
			Epic:     4.236,

			Beat:        0.382,
			Breath:      PhiInv,
			Absorb:      1.0,
			Contemplate: Phi,

			LagFast:   0.05,
			LagNormal: 0.1,
			LagSlow:   0.2,
		},
		Spacing: Spacing{
			Tight: 0.1,
			SM:    0.2,
			MD:    0.382,
			LG:    PhiInv,
			XL:    1.0,

			TreeLevelHeight: 1.5,
			TreeMaxWidth:    12,
			TreeOriginY:     2,
		},
	}
}

// LoadConfig parses a YAML document over the defaults: fields present in the
// document override, absent fields keep their default values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cadence: failed to parse config YAML: %w", err)
	}
	return cfg, nil
}
