package system

import (
	"errors"
	"io/fs"
	"log"
	"math"
	"math/rand"
	"sort"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// WaveState is the wave lifecycle
type WaveState int

const (
	// WaveIdle means no wave has been loaded yet
	WaveIdle WaveState = iota
	// WaveSpawning means the spawn queue still has entries
	WaveSpawning
	// WaveClearing means everything has spawned and some enemies are alive
	WaveClearing
	// WaveComplete latches until NextWave
	WaveComplete
)

func (s WaveState) String() string {
	switch s {
	case WaveIdle:
		return "Idle"
	case WaveSpawning:
		return "Spawning"
	case WaveClearing:
		return "Clearing"
	case WaveComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// WaveSource provides declarative wave definitions. *config.Loader implements it.
type WaveSource interface {
	LoadWave(n int) (*config.WaveConfig, error)
}

type spawnEntry struct {
	enemyType string
	at        float64 // seconds since wave start
}

// WaveManager schedules enemy spawns for the current wave and tracks its completion
type WaveManager struct {
	source     WaveSource
	templates  map[string]entity.EnemyStats
	procedural config.WavesConfig
	arena      entity.Arena
	margin     float64
	rng        *rand.Rand

	state     WaveState
	wave      int
	queue     []spawnEntry
	timer     float64
	spawned   int
	remaining int

	// Called once per Complete transition
	OnWaveComplete func(wave int)
}

// NewWaveManager creates an idle wave manager. source may be nil, in which
// case every wave is generated procedurally.
func NewWaveManager(source WaveSource, templates map[string]entity.EnemyStats, tuning *config.TuningConfig, rng *rand.Rand) *WaveManager {
	return &WaveManager{
		source:     source,
		templates:  templates,
		procedural: tuning.Waves,
		arena:      LoadArena(tuning.Arena),
		margin:     tuning.Arena.SpawnMargin,
		rng:        rng,
		queue:      make([]spawnEntry, 0, 32),
	}
}

// LoadWave prepares the spawn queue for wave n. A missing or invalid
// definition falls back to a procedural wave.
func (m *WaveManager) LoadWave(n int) {
	m.wave = n

	var cfg *config.WaveConfig
	if m.source != nil {
		var err error
		cfg, err = m.source.LoadWave(n)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Wave %d definition rejected, generating: %v", n, err)
			}
			cfg = nil
		}
	}
	if cfg == nil {
		cfg = m.GenerateProceduralWave(n)
	}

	m.prepareQueue(cfg)
	m.state = WaveSpawning
	log.Printf("Wave %d loaded: %d enemies", n, len(m.queue))
}

// GenerateProceduralWave builds a single-group wave scaled by n
func (m *WaveManager) GenerateProceduralWave(n int) *config.WaveConfig {
	p := m.procedural

	count := p.BaseCount + p.PerWave*n
	if p.MaxCount > 0 && count > p.MaxCount {
		count = p.MaxCount
	}
	if count < 0 {
		count = 0
	}

	delay := 0.0
	if p.SpawnDelay > 0 {
		delay = math.Max(p.MinSpawnDelay, p.SpawnDelay-p.SpawnDelayDecay*float64(n))
	}

	return &config.WaveConfig{
		Enemies: []config.WaveGroup{{
			Type:       m.proceduralType(),
			Count:      count,
			SpawnDelay: delay,
		}},
	}
}

func (m *WaveManager) proceduralType() string {
	if _, ok := m.templates[m.procedural.ProceduralType]; ok {
		return m.procedural.ProceduralType
	}
	// Fall back to the first known template so procedural waves are never empty
	if types := m.Templates(); len(types) > 0 {
		return types[0]
	}
	return m.procedural.ProceduralType
}

func (m *WaveManager) prepareQueue(cfg *config.WaveConfig) {
	m.queue = m.queue[:0]
	m.timer = 0
	m.spawned = 0

	for _, g := range cfg.Enemies {
		for i := 0; i < g.Count; i++ {
			m.queue = append(m.queue, spawnEntry{
				enemyType: g.Type,
				at:        float64(i) * g.SpawnDelay,
			})
		}
	}

	sort.SliceStable(m.queue, func(i, j int) bool {
		return m.queue[i].at < m.queue[j].at
	})

	m.remaining = len(m.queue)
}

// Update advances the wave clock and returns the enemies that spawned this frame.
// live is the caller's current enemy set; it is only read.
func (m *WaveManager) Update(dt float64, live []*entity.Enemy) []*entity.Enemy {
	if m.state == WaveIdle {
		return nil
	}

	m.timer += dt

	var spawned []*entity.Enemy
	for len(m.queue) > 0 && m.queue[0].at <= m.timer {
		next := m.queue[0]
		m.queue = m.queue[1:]

		stats, ok := m.templates[next.enemyType]
		if !ok {
			log.Printf("Wave %d: unknown enemy type %q, skipped", m.wave, next.enemyType)
			continue
		}

		x, y := m.spawnPoint(stats)
		spawned = append(spawned, entity.NewEnemy(x, y, next.enemyType, stats, m.rng))
		m.spawned++
	}

	alive := countAlive(live) + countAlive(spawned)
	m.remaining = alive + len(m.queue)

	switch {
	case m.state == WaveComplete:
	case len(m.queue) == 0 && alive == 0:
		m.state = WaveComplete
		log.Printf("Wave %d complete", m.wave)
		if m.OnWaveComplete != nil {
			m.OnWaveComplete(m.wave)
		}
	case len(m.queue) == 0:
		m.state = WaveClearing
	}

	return spawned
}

// spawnPoint picks a point against a random arena edge. Bouncing enemies
// sit on their bounce inset so the first frame does not push them back in.
func (m *WaveManager) spawnPoint(stats entity.EnemyStats) (float64, float64) {
	size := stats.Size
	inset := 0.0
	if stats.Steering.WallBounce {
		inset = stats.Steering.BounceMargin
	}

	alongX := m.along(m.arena.Width, size, inset)
	alongY := m.along(m.arena.Height, size, inset)

	switch m.rng.Intn(4) {
	case 0: // top
		return alongX, inset
	case 1: // right
		return m.arena.Width - size - inset, alongY
	case 2: // bottom
		return alongX, m.arena.Height - size - inset
	default: // left
		return inset, alongY
	}
}

func (m *WaveManager) along(extent, size, inset float64) float64 {
	lo := max(m.margin, inset)
	hi := extent - lo - size
	if hi <= lo {
		return math.Max(0, (extent-size)/2)
	}
	return lo + m.rng.Float64()*(hi-lo)
}

// NextWave advances to the next wave
func (m *WaveManager) NextWave() {
	m.LoadWave(m.wave + 1)
}

// State returns the wave lifecycle state
func (m *WaveManager) State() WaveState {
	return m.state
}

// IsComplete reports whether the current wave has been cleared
func (m *WaveManager) IsComplete() bool {
	return m.state == WaveComplete
}

// CurrentWave returns the wave number, 0 before the first LoadWave
func (m *WaveManager) CurrentWave() int {
	return m.wave
}

// EnemiesSpawned returns how many enemies this wave has spawned so far
func (m *WaveManager) EnemiesSpawned() int {
	return m.spawned
}

// EnemiesRemaining returns alive plus queued enemies as of the last Update
func (m *WaveManager) EnemiesRemaining() int {
	return m.remaining
}

// QueueLen returns the number of spawns still pending
func (m *WaveManager) QueueLen() int {
	return len(m.queue)
}

// Templates returns the known enemy types in sorted order
func (m *WaveManager) Templates() []string {
	types := make([]string, 0, len(m.templates))
	for name := range m.templates {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

func countAlive(enemies []*entity.Enemy) int {
	n := 0
	for _, e := range enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}
