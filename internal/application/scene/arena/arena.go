// Package arena provides the main gameplay scene.
package arena

import (
	"log"
	"math/rand"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// InputSource supplies one frame of input per call.
// *system.InputSystem reads the devices; *replay.Replayer plays a recording back.
type InputSource interface {
	GetInput() system.InputState
}

// Options configures a Scene
type Options struct {
	Waves      system.WaveSource // nil: every wave is procedural
	Input      InputSource
	Seed       int64
	DT         float64 // Step size written into recordings
	Record     bool    // Record input; saved to RecordPath or a timestamped file
	RecordPath string  // Non-empty enables input recording
	OnEvent    func(Event)
}

// Scene is the arena: it owns the run and advances it one frame at a time
type Scene struct {
	tuning      *config.TuningConfig
	source      system.WaveSource
	templates   map[string]entity.EnemyStats
	arena       entity.Arena
	playerStats entity.PlayerStats
	input       InputSource

	state       state.GameState
	player      *entity.Player
	enemies     []*entity.Enemy
	projectiles []*entity.Projectile
	waves       *system.WaveManager
	combat      *system.CombatSystem
	coins       int
	waveTimer   float64
	frame       int

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	// Input recording
	recorder   *replay.Recorder
	recordPath string

	// OnEvent receives gameplay events, e.g. for sound effects
	OnEvent func(Event)
}

// New creates an arena scene and starts wave 1
func New(cfg *config.GameConfig, opts Options) *Scene {
	s := &Scene{
		tuning:      cfg.Tuning,
		source:      opts.Waves,
		templates:   system.LoadEnemyTemplates(cfg.Enemies),
		arena:       system.LoadArena(cfg.Tuning.Arena),
		playerStats: system.LoadPlayerStats(cfg.Tuning.Player),
		input:       opts.Input,
		recordPath:  opts.RecordPath,
		OnEvent:     opts.OnEvent,
	}

	if opts.Record || opts.RecordPath != "" {
		s.recorder = replay.NewRecorder(opts.Seed, opts.DT)
		log.Printf("Recording enabled: %q (seed: %d)", opts.RecordPath, opts.Seed)
	}

	s.reset(opts.Seed)
	return s
}

// reset starts a fresh run from seed
func (s *Scene) reset(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))

	s.state = state.StatePlaying
	s.player = entity.NewPlayer(s.arena.CenterX(), s.arena.CenterY(), s.playerStats)
	clear(s.enemies)
	s.enemies = s.enemies[:0]
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
	s.coins = 0
	s.waveTimer = 0
	s.frame = 0

	s.combat = system.NewCombatSystem()
	s.combat.OnEnemyHit = func(e *entity.Enemy, damage int, _ bool) {
		s.emit(Event{Kind: EventEnemyHit, Amount: damage, X: e.CenterX(), Y: e.CenterY()})
	}
	s.combat.OnPlayerHit = func(damage int) {
		s.emit(Event{Kind: EventPlayerHurt, Amount: damage, X: s.player.CenterX(), Y: s.player.CenterY()})
	}

	s.waves = system.NewWaveManager(s.source, s.templates, s.tuning, s.rng)
	s.waves.OnWaveComplete = func(wave int) {
		s.emit(Event{Kind: EventWaveCleared, Amount: wave})
	}
	s.waves.LoadWave(1)
	s.announceWave()
}

func (s *Scene) announceWave() {
	s.emit(Event{Kind: EventWaveStarted, Amount: s.waves.CurrentWave()})
}

// Update reads input and advances the run (implements scene.Scene)
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	var in system.InputState
	if s.input != nil {
		in = s.input.GetInput()
	}

	if s.recorder != nil {
		s.recorder.RecordFrame(in)
	}

	s.Step(dt, in)
	return nil, nil // nil = stay on this scene
}

// Step advances the run by dt using the given input.
// Nothing is simulated while paused, in the shop or after game over.
func (s *Scene) Step(dt float64, in system.InputState) {
	s.handleToggles(in)
	if !s.state.Simulating() {
		return
	}
	s.frame++

	// Inter-wave pause
	if s.waves.IsComplete() {
		s.waveTimer += dt
		if s.waveTimer >= s.tuning.Arena.WaveDelay {
			s.waveTimer = 0
			s.waves.NextWave()
			s.announceWave()
		}
	}

	if s.player.Alive() {
		aimX, aimY := in.Aim()
		if proj := s.player.HandleInput(in.Directions(), aimX, aimY, in.Fire); proj != nil {
			s.projectiles = append(s.projectiles, proj)
			s.emit(Event{Kind: EventShot, X: proj.CenterX(), Y: proj.CenterY()})
		}
		s.player.Update(dt, s.arena)
	}

	s.enemies = append(s.enemies, s.waves.Update(dt, s.enemies)...)

	s.updateEnemies(dt)
	s.updateProjectiles(dt)

	s.combat.ResolveCollisions(s.player, s.enemies, s.projectiles)

	if !s.player.Alive() {
		s.gameOver()
	}
}

func (s *Scene) handleToggles(in system.InputState) {
	if in.ToggleMute {
		s.emit(Event{Kind: EventMuteToggled})
	}

	switch s.state {
	case state.StatePlaying:
		if in.TogglePause {
			s.state = state.StatePaused
		} else if in.ToggleShop {
			s.state = state.StateShop
		}
	case state.StatePaused:
		if in.TogglePause {
			s.state = state.StatePlaying
		}
	case state.StateShop:
		if in.ToggleShop {
			s.state = state.StatePlaying
		}
	case state.StateGameOver:
		if in.Restart {
			s.restart()
		}
	}
}

func (s *Scene) updateEnemies(dt float64) {
	for _, e := range s.enemies {
		if !e.Alive() {
			s.reward(e)
			continue
		}

		e.Update(dt, s.player, s.arena, s.rng)
		if e.Attack(s.player) {
			s.emit(Event{Kind: EventPlayerHurt, Amount: e.ContactDamage, X: s.player.CenterX(), Y: s.player.CenterY()})
		}
	}
	s.enemies = compact(s.enemies)
}

// reward credits a dead enemy's coins. ClaimReward pays at most once per enemy.
func (s *Scene) reward(e *entity.Enemy) {
	coins, ok := e.ClaimReward()
	if !ok {
		return
	}
	s.coins += coins
	s.emit(Event{Kind: EventEnemyKilled, Amount: coins, X: e.CenterX(), Y: e.CenterY()})
}

func (s *Scene) updateProjectiles(dt float64) {
	for _, p := range s.projectiles {
		if p.Alive() {
			p.Update(dt, s.arena)
		}
	}
	s.projectiles = compact(s.projectiles)
}

func (s *Scene) gameOver() {
	if s.state == state.StateGameOver {
		return
	}
	s.state = state.StateGameOver

	// Enemies killed this frame still pay out
	for _, e := range s.enemies {
		if !e.Alive() {
			s.reward(e)
		}
	}

	log.Printf("Game over: wave %d, %d coins", s.waves.CurrentWave(), s.coins)
	s.emit(Event{Kind: EventGameOver, Amount: s.coins})

	// Auto-save recording on game over
	s.saveRecording()
}

func (s *Scene) restart() {
	// Next run's seed comes from this run so replays stay deterministic
	seed := s.rng.Int63()
	s.reset(seed)
	log.Printf("Restarted (seed: %d)", seed)
	s.emit(Event{Kind: EventRestart})
}

// saveRecording saves the current recording to file
func (s *Scene) saveRecording() {
	if s.recorder == nil || !s.recorder.IsRecording() {
		return
	}

	// Later saves of the same run overwrite the first file
	if s.recordPath == "" {
		s.recordPath = replay.GenerateFilename()
	}

	if err := s.recorder.Save(s.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", s.recordPath, s.recorder.FrameCount())
	}
}

func (s *Scene) emit(e Event) {
	if s.OnEvent != nil {
		s.OnEvent(e)
	}
}

// OnEnter is called when the scene becomes active (implements scene.Scene)
func (s *Scene) OnEnter() {
	log.Printf("Arena %gx%g, wave %d, %d enemy types", s.arena.Width, s.arena.Height, s.waves.CurrentWave(), len(s.templates))
}

// OnExit is called when leaving the scene (implements scene.Scene)
func (s *Scene) OnExit() {
	s.saveRecording()
	if s.recorder != nil {
		s.recorder.Stop()
	}
}

// State returns the current game state
func (s *Scene) State() state.GameState {
	return s.state
}

// Player returns the player
func (s *Scene) Player() *entity.Player {
	return s.player
}

// Enemies returns the live enemy set
func (s *Scene) Enemies() []*entity.Enemy {
	return s.enemies
}

// Projectiles returns the live projectile set
func (s *Scene) Projectiles() []*entity.Projectile {
	return s.projectiles
}

// Coins returns the coins earned this run
func (s *Scene) Coins() int {
	return s.coins
}

// Waves returns the wave manager
func (s *Scene) Waves() *system.WaveManager {
	return s.waves
}

// Frame returns the number of simulated frames this run
func (s *Scene) Frame() int {
	return s.frame
}

// Seed returns the seed of the current run
func (s *Scene) Seed() int64 {
	return s.seed
}

// ShopItems returns the items listed in the shop overlay
func (s *Scene) ShopItems() []config.ShopItem {
	return s.tuning.Shop.Items
}

// CanAfford reports whether the run has enough coins for item
func (s *Scene) CanAfford(item config.ShopItem) bool {
	return s.coins >= item.Price
}

// compact drops dead items in place, keeping order
func compact[T interface{ Alive() bool }](items []T) []T {
	n := 0
	for _, it := range items {
		if it.Alive() {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
