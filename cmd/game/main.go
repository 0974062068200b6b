package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/internal/application/game"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene/arena"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/audio"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// loadConfig reads the config set from dir, or from the embedded defaults when dir is empty
func loadConfig(dir string) (*config.GameConfig, *config.Loader) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	return loader.LoadOrDefault(), loader
}

// stepFor returns the clamped step the game runs with: the recorded step when
// there is one, otherwise one frame at framerate. Recordings carry this value.
func stepFor(framerate int, recorded float64) float64 {
	if recorded > 0 {
		return game.ClampDT(recorded)
	}
	return game.ClampDT(1.0 / float64(framerate))
}

func main() {
	configDir := flag.String("configs", "", "Config directory (default: embedded configs)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	autoRecordFlag := flag.Bool("autorecord", false, "Record input to a timestamped replay_*.json file")
	replayFlag := flag.String("replay", "", "Play back a recorded run")
	verifyFlag := flag.String("verify", "", "Run a recording headless and print a summary")
	seedFlag := flag.Int64("seed", 0, "RNG seed (default: current time)")
	muteFlag := flag.Bool("mute", false, "Disable audio")
	flag.Parse()

	cfg, loader := loadConfig(*configDir)

	if *verifyFlag != "" {
		if _, err := verifyReplay(cfg, loader, *verifyFlag, os.Stdout); err != nil {
			log.Fatalf("Failed to verify replay: %v", err)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dt := stepFor(cfg.Tuning.Display.Framerate, 0)

	var input arena.InputSource = system.NewInputSystem(system.DefaultKeyMap())
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer := replay.NewReplayer(*data)
		input = replayer
		seed = replayer.Seed()
		dt = stepFor(cfg.Tuning.Display.Framerate, replayer.DT())
		log.Printf("Replaying %s: %d frames (seed: %d)", *replayFlag, replayer.TotalFrames(), seed)
	}

	audioCfg := cfg.Tuning.Audio
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer sounds.Close()

	scene := arena.New(cfg, arena.Options{
		Waves:      loader,
		Input:      input,
		Seed:       seed,
		DT:         dt,
		Record:     *autoRecordFlag,
		RecordPath: *recordFlag,
		OnEvent:    soundHandler(sounds),
	})

	display := cfg.Tuning.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(dt)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Pixel Arena")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
