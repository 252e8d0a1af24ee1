// Cadence-probe compiles a set of demo scenes headlessly and reports each
// timeline's entry count, total duration, and the number of mutation events a
// full playback produces. Scenes are built and compiled sequentially, then
// played back concurrently; each playback stays single-threaded on its own
// scene graph.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/cadence"
)

type sceneSpec struct {
	name  string
	build func(cfg cadence.Config) (*cadence.Scene, *cadence.Combinator, error)
}

// probeTarget is a fully built scene ready for playback. Building nodes is
// single-threaded (the scene graph and its ID counter are not goroutine-safe),
// so targets are constructed sequentially before the playback fan-out.
type probeTarget struct {
	name     string
	scene    *cadence.Scene
	timeline *cadence.Timeline
}

type probeResult struct {
	name     string
	entries  int
	duration float64
	events   int
}

func main() {
	ticksPerSecond := flag.Float64("tps", 60, "virtual ticks per second during probe playback")
	configPath := flag.String("config", "", "optional timing/spacing YAML overriding the defaults")
	timeout := flag.Duration("timeout", 30*time.Second, "overall probe timeout")
	flag.Parse()

	cfg := cadence.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg, err = cadence.LoadConfig(data)
		if err != nil {
			log.Fatal(err)
		}
	}

	specs := []sceneSpec{
		{name: "btree-reveal", build: buildBTreeReveal},
		{name: "grid-pop", build: buildGridPop},
		{name: "lsm-flush", build: buildLSMFlush},
	}

	targets := make([]probeTarget, len(specs))
	for i, spec := range specs {
		scene, comb, err := spec.build(cfg)
		if err != nil {
			log.Fatalf("%s: %v", spec.name, err)
		}
		targets[i] = probeTarget{
			name:     spec.name,
			scene:    scene,
			timeline: cadence.Compile(comb, 0),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	results := make([]probeResult, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	for i, tgt := range targets {
		g.Go(func() error {
			res, err := probe(ctx, tgt, *ticksPerSecond)
			if err != nil {
				return fmt.Errorf("%s: %w", tgt.name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(a, b int) bool { return results[a].name < results[b].name })
	fmt.Printf("%-16s %8s %10s %8s\n", "scene", "entries", "duration", "events")
	for _, r := range results {
		fmt.Printf("%-16s %8d %9.3fs %8d\n", r.name, r.entries, r.duration, r.events)
	}
}

// probe plays one pre-built scene to completion, counting events. Each
// playback touches only its own scene graph, so probes run concurrently.
func probe(ctx context.Context, tgt probeTarget, tps float64) (probeResult, error) {
	player, err := cadence.NewPlayer(tgt.scene, tgt.timeline)
	if err != nil {
		return probeResult{}, err
	}

	events := 0
	err = player.Run(ctx, tps, func(batch []cadence.MutationEvent) error {
		events += len(batch)
		return nil
	})
	if err != nil {
		return probeResult{}, err
	}
	return probeResult{
		name:     tgt.name,
		entries:  len(tgt.timeline.Entries),
		duration: tgt.timeline.Duration,
		events:   events,
	}, nil
}

// buildBTreeReveal is a three-level tree revealed level by level.
func buildBTreeReveal(cfg cadence.Config) (*cadence.Scene, *cadence.Combinator, error) {
	scene := cadence.NewScene()
	root := cadence.NewElement("root", 1.6, 0.6)
	root.Alpha = 0
	scene.Root().AddChild(root)

	var branches []*cadence.Node
	for i := 0; i < 3; i++ {
		branch := cadence.NewElement("branch", 1.6, 0.6)
		branch.Alpha = 0
		root.AddChild(branch)
		branches = append(branches, branch)
		for j := 0; j < 2; j++ {
			leaf := cadence.NewElement("leaf", 1.6, 0.6)
			leaf.Alpha = 0
			branch.AddChild(leaf)
		}
	}

	layout := cadence.NewTreeLayout(cfg)
	if err := layout.Layout(root, -cfg.Spacing.TreeMaxWidth/2, cfg.Spacing.TreeMaxWidth/2); err != nil {
		return nil, nil, err
	}

	var steps []*cadence.Combinator
	steps = append(steps, cadence.Animate(root, cadence.FadeTo(1), cfg.Timing.Fast))
	var branchFades []*cadence.Combinator
	for _, branch := range branches {
		branchFades = append(branchFades, cadence.Animate(branch, cadence.FadeTo(1), cfg.Timing.Fast))
		for _, leaf := range branch.Children() {
			branchFades = append(branchFades, cadence.Animate(leaf, cadence.FadeTo(1), cfg.Timing.Quick))
		}
	}
	staggered, err := cadence.Staggered(cfg.Timing.LagNormal, branchFades...)
	if err != nil {
		return nil, nil, err
	}
	steps = append(steps, staggered)
	return scene, cadence.Sequence(steps...), nil
}

// buildGridPop scales up a grid of cells with a stagger, then fades out.
func buildGridPop(cfg cadence.Config) (*cadence.Scene, *cadence.Combinator, error) {
	scene := cadence.NewScene()
	positions := cadence.GridPositions(3, 5, cadence.Vec2{}, 1.4, 1.0)

	var pops []*cadence.Combinator
	for _, row := range positions {
		for _, pos := range row {
			cell := cadence.NewElement("cell", 1.2, 0.8)
			cell.SetPosition(pos.X, pos.Y)
			cell.ScaleX, cell.ScaleY = 0.01, 0.01
			scene.Root().AddChild(cell)
			pops = append(pops, cadence.Animate(cell, cadence.ScaleTo(1, 1), cfg.Timing.Fast))
		}
	}
	pop, err := cadence.Staggered(cfg.Timing.LagFast, pops...)
	if err != nil {
		return nil, nil, err
	}
	return scene, cadence.Sequence(pop, scene.FadeAll(0, cfg.Timing.Slow)), nil
}

// buildLSMFlush moves a memtable block down into a row of SSTable slots.
func buildLSMFlush(cfg cadence.Config) (*cadence.Scene, *cadence.Combinator, error) {
	scene := cadence.NewScene()

	memtable := cadence.NewElement("memtable", 3, 1.5)
	memtable.SetPosition(0, 2.5)
	scene.Root().AddChild(memtable)

	slots := cadence.RowPositions(4, cadence.Vec2{Y: -2}, 3)
	var settles []*cadence.Combinator
	for _, pos := range slots {
		sst := cadence.NewElement("sstable", 2.5, 0.5)
		sst.SetPosition(pos.X, pos.Y+4) // start above, settle into place
		sst.Alpha = 0
		scene.Root().AddChild(sst)
		settles = append(settles, cadence.Parallel(
			cadence.Animate(sst, cadence.FadeTo(1), cfg.Timing.Quick),
			cadence.Animate(sst, cadence.MoveTo(pos.X, pos.Y), cfg.Timing.Normal),
		))
	}
	flush, err := cadence.Staggered(0.5, settles...)
	if err != nil {
		return nil, nil, err
	}

	drain := cadence.Parallel(
		cadence.Animate(memtable, cadence.ScaleTo(1, 0.1), cfg.Timing.Normal),
		cadence.Animate(memtable, cadence.FadeTo(0.2), cfg.Timing.Normal),
	)
	return scene, cadence.Sequence(drain, flush), nil
}
