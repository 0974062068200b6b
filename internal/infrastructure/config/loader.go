package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"sort"
	"strings"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning  *TuningConfig
	Enemies map[string]EnemyConfig
}

// EnemyTypes returns the loaded enemy type names in sorted order
func (c *GameConfig) EnemyTypes() []string {
	types := make([]string, 0, len(c.Enemies))
	for name := range c.Enemies {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTuning loads tuning.json on top of DefaultTuning and validates the result
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	cfg := DefaultTuning()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning.json: %w", err)
	}

	return &cfg, nil
}

// LoadEnemy loads a single enemy template on top of DefaultEnemyConfig
func (l *Loader) LoadEnemy(name string) (*EnemyConfig, error) {
	p := "enemies/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy %s: %w", name, err)
	}

	cfg := DefaultEnemyConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse enemy %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid enemy %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadEnemies loads every enemies/*.json file.
// Files that fail are skipped; their errors are joined into the returned error.
func (l *Loader) LoadEnemies() (map[string]EnemyConfig, error) {
	matches, err := fs.Glob(l.fsys, "enemies/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list enemies: %w", err)
	}

	enemies := make(map[string]EnemyConfig, len(matches))
	var errs []error
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), ".json")
		cfg, err := l.LoadEnemy(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		enemies[name] = *cfg
	}

	return enemies, errors.Join(errs...)
}

// LoadWave loads waves/wave_NN.json for wave n
func (l *Loader) LoadWave(n int) (*WaveConfig, error) {
	p := fmt.Sprintf("waves/wave_%02d.json", n)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave %d: %w", n, err)
	}

	var cfg WaveConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse wave %d: %w", n, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wave %d: %w", n, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (tuning, enemies)
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	enemies, err := l.LoadEnemies()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning:  tuning,
		Enemies: enemies,
	}, nil
}

// LoadOrDefault loads all base configurations and never fails.
// A missing or malformed tuning.json yields DefaultTuning; an empty or
// unreadable enemies/ directory yields DefaultEnemies.
func (l *Loader) LoadOrDefault() *GameConfig {
	tuning, err := l.LoadTuning()
	if err != nil {
		logFallback(l.basePath, err)
		def := DefaultTuning()
		tuning = &def
	}

	enemies, err := l.LoadEnemies()
	if err != nil {
		logFallback(l.basePath, err)
	}
	if len(enemies) == 0 {
		log.Printf("No enemy templates in %s, using built-in %q", l.basePath, DefaultEnemyType)
		enemies = DefaultEnemies()
	}

	return &GameConfig{
		Tuning:  tuning,
		Enemies: enemies,
	}
}

func logFallback(source string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config missing in %s, using defaults: %v", source, err)
		return
	}
	log.Printf("Config error in %s, using defaults: %v", source, err)
}
