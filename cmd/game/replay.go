package main

import (
	"fmt"
	"io"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene/arena"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Frames       int
	Seed         int64
	Wave         int
	Coins        int
	Kills        int
	State        state.GameState
	PlayerHealth int
	PlayerX      float64
	PlayerY      float64
	Enemies      int
}

// runReplay feeds every recorded frame through a fresh arena scene without a window
func runReplay(cfg *config.GameConfig, waves system.WaveSource, data replay.ReplayData) ReplayResult {
	replayer := replay.NewReplayer(data)
	dt := stepFor(cfg.Tuning.Display.Framerate, replayer.DT())

	var result ReplayResult
	scene := arena.New(cfg, arena.Options{
		Waves: waves,
		Input: replayer,
		Seed:  replayer.Seed(),
		DT:    dt,
		OnEvent: func(e arena.Event) {
			if e.Kind == arena.EventEnemyKilled {
				result.Kills++
			}
		},
	})

	for !replayer.Done() {
		// The arena scene never switches scenes or fails
		_, _ = scene.Update(dt)
	}

	p := scene.Player()
	result.Frames = replayer.CurrentFrame()
	result.Seed = scene.Seed()
	result.Wave = scene.Waves().CurrentWave()
	result.Coins = scene.Coins()
	result.State = scene.State()
	result.PlayerHealth = p.Health
	result.PlayerX = p.X
	result.PlayerY = p.Y
	result.Enemies = len(scene.Enemies())
	return result
}

// verifyReplay loads a recording, runs it headless and writes a summary to w
func verifyReplay(cfg *config.GameConfig, waves system.WaveSource, path string, w io.Writer) (ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplayResult{}, err
	}

	r := runReplay(cfg, waves, *data)

	fmt.Fprintf(w, "Replay: %s\n", path)
	fmt.Fprintf(w, "  Frames:  %d (seed %d)\n", r.Frames, r.Seed)
	fmt.Fprintf(w, "  State:   %s\n", r.State)
	fmt.Fprintf(w, "  Wave:    %d\n", r.Wave)
	fmt.Fprintf(w, "  Coins:   %d (%d kills)\n", r.Coins, r.Kills)
	fmt.Fprintf(w, "  Player:  %d HP at (%.1f, %.1f)\n", r.PlayerHealth, r.PlayerX, r.PlayerY)
	fmt.Fprintf(w, "  Enemies: %d\n", r.Enemies)

	return r, nil
}
