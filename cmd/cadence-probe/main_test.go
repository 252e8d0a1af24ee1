package main

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/cadence"
)

// buildTargets constructs every demo scene the way main does: sequentially,
// so node IDs are minted on a single goroutine.
func buildTargets(t *testing.T) []probeTarget {
	t.Helper()
	cfg := cadence.DefaultConfig()
	specs := []sceneSpec{
		{name: "btree-reveal", build: buildBTreeReveal},
		{name: "grid-pop", build: buildGridPop},
		{name: "lsm-flush", build: buildLSMFlush},
	}
	targets := make([]probeTarget, len(specs))
	for i, spec := range specs {
		scene, comb, err := spec.build(cfg)
		if err != nil {
			t.Fatalf("%s: %v", spec.name, err)
		}
		targets[i] = probeTarget{
			name:     spec.name,
			scene:    scene,
			timeline: cadence.Compile(comb, 0),
		}
	}
	return targets
}

func TestBuildersMintDisjointNodeIDs(t *testing.T) {
	seen := map[uint32]string{}
	for _, tgt := range buildTargets(t) {
		tgt.scene.Walk(func(n *cadence.Node) bool {
			if other, ok := seen[n.ID]; ok {
				t.Errorf("node id %d minted for both %s and %s", n.ID, other, tgt.name)
			}
			seen[n.ID] = tgt.name
			return true
		})
	}
}

// Playbacks over pre-built scenes share no state, so the fan-out must be
// clean under the race detector and every probe must count events.
func TestProbesRunConcurrentlyOverPrebuiltScenes(t *testing.T) {
	targets := buildTargets(t)

	results := make([]probeResult, len(targets))
	g, ctx := errgroup.WithContext(context.Background())
	for i, tgt := range targets {
		g.Go(func() error {
			res, err := probe(ctx, tgt, 240)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for _, res := range results {
		if res.entries == 0 {
			t.Errorf("%s: no timeline entries", res.name)
		}
		if res.events == 0 {
			t.Errorf("%s: playback produced no events", res.name)
		}
		if res.duration <= 0 {
			t.Errorf("%s: duration = %f, want positive", res.name, res.duration)
		}
	}
}
