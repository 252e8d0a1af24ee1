package cadence

import (
	"math"
	"testing"
)

func TestDefaultConfigGoldenRatios(t *testing.T) {
	cfg := DefaultConfig()

	if !almostEqual(cfg.Timing.Fast, PhiInv) {
		t.Errorf("Fast = %f, want φ⁻¹", cfg.Timing.Fast)
	}
	if !almostEqual(cfg.Timing.Slow, Phi) {
		t.Errorf("Slow = %f, want φ", cfg.Timing.Slow)
	}
	if !almostEqual(cfg.Timing.Dramatic, PhiSq) {
		t.Errorf("Dramatic = %f, want φ²", cfg.Timing.Dramatic)
	}
	if !almostEqual(Phi*PhiInv, 1) {
		t.Error("φ × φ⁻¹ should be 1")
	}
	// The ladder is strictly increasing.
	ladder := []float64{
		cfg.Timing.Instant, cfg.Timing.Flash, cfg.Timing.Quick, cfg.Timing.Fast,
		cfg.Timing.Normal, cfg.Timing.Slow, cfg.Timing.Dramatic, cfg.Timing.Epic,
	}
	for i := 1; i < len(ladder); i++ {
		if ladder[i] <= ladder[i-1] {
			t.Errorf("timing ladder not increasing at index %d: %f then %f",
				i, ladder[i-1], ladder[i])
		}
	}
}

func TestDefaultLagRatiosValidForStaggered(t *testing.T) {
	cfg := DefaultConfig()
	n := NewContainer("n")
	for _, lag := range []float64{cfg.Timing.LagFast, cfg.Timing.LagNormal, cfg.Timing.LagSlow} {
		if _, err := Staggered(lag, Animate(n, FadeTo(1), 1)); err != nil {
			t.Errorf("default lag %f rejected: %v", lag, err)
		}
	}
}

func TestLoadConfigOverridesListedFieldsOnly(t *testing.T) {
	doc := []byte(`
timing:
  normal: 0.8
  lag_normal: 0.15
spacing:
  tree_level_height: 2.0
`)
	cfg, err := LoadConfig(doc)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Timing.Normal != 0.8 {
		t.Errorf("Normal = %f, want 0.8 from YAML", cfg.Timing.Normal)
	}
	if cfg.Timing.LagNormal != 0.15 {
		t.Errorf("LagNormal = %f, want 0.15 from YAML", cfg.Timing.LagNormal)
	}
	if cfg.Spacing.TreeLevelHeight != 2.0 {
		t.Errorf("TreeLevelHeight = %f, want 2.0 from YAML", cfg.Spacing.TreeLevelHeight)
	}
	// Unlisted fields keep defaults.
	def := DefaultConfig()
	if cfg.Timing.Fast != def.Timing.Fast {
		t.Errorf("Fast = %f, default %f should survive a partial override", cfg.Timing.Fast, def.Timing.Fast)
	}
	if cfg.Spacing.TreeMaxWidth != def.Spacing.TreeMaxWidth {
		t.Errorf("TreeMaxWidth = %f, default should survive", cfg.Spacing.TreeMaxWidth)
	}
}

func TestLoadConfigEmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Error("empty YAML should leave every default intact")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, err := LoadConfig([]byte("timing: ["))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestNewTreeLayoutUsesConfigSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spacing.TreeLevelHeight = 3
	cfg.Spacing.TreeOriginY = 1

	l := NewTreeLayout(cfg)
	if l.LevelHeight != 3 || l.OriginY != 1 {
		t.Errorf("layout = %+v, want spacing values from config", l)
	}

	root := NewElement("root", 1, 1)
	child := NewElement("child", 1, 1)
	root.AddChild(child)
	if err := l.Layout(root, -2, 2); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(root.Y, 1) || !almostEqual(child.Y, -2) {
		t.Errorf("Ys = (%f, %f), want (1, -2)", root.Y, child.Y)
	}
}

func TestTimingLadderApproximatesGoldenPowers(t *testing.T) {
	cfg := DefaultConfig()
	// Flash and Epic are the rounded φ⁻³ and φ³ used in the house tables.
	if math.Abs(cfg.Timing.Flash-1/(Phi*Phi*Phi)) > 0.001 {
		t.Errorf("Flash = %f, want ≈ φ⁻³", cfg.Timing.Flash)
	}
	if math.Abs(cfg.Timing.Epic-Phi*Phi*Phi) > 0.001 {
		t.Errorf("Epic = %f, want ≈ φ³", cfg.Timing.Epic)
	}
}
