package config

import (
	"errors"
	"fmt"
)

// WaveConfig is the root config for waves/wave_NN.json
type WaveConfig struct {
	Enemies []WaveGroup `json:"enemies"`
}

// WaveGroup spawns Count enemies of Type, one every SpawnDelay seconds.
// A zero delay spawns the whole group at wave start.
type WaveGroup struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	SpawnDelay float64 `json:"spawn_delay"`
}

// TotalCount returns the number of enemies across all groups
func (w *WaveConfig) TotalCount() int {
	total := 0
	for _, g := range w.Enemies {
		total += g.Count
	}
	return total
}

func (w *WaveConfig) Validate() error {
	var errs []error
	for i, g := range w.Enemies {
		if g.Type == "" {
			errs = append(errs, fmt.Errorf("group %d: missing type", i))
		}
		if g.Count < 0 {
			errs = append(errs, fmt.Errorf("group %d: negative count %d", i, g.Count))
		}
		if g.SpawnDelay < 0 {
			errs = append(errs, fmt.Errorf("group %d: negative spawn_delay %g", i, g.SpawnDelay))
		}
	}
	return errors.Join(errs...)
}
