package config

import (
	"errors"
	"fmt"
)

// Validate rejects tuning the game cannot run with. Every problem is reported.
func (c *TuningConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, v))
		}
	}

	positive("display.framerate", float64(c.Display.Framerate))
	positive("display.screen_width", float64(c.Display.ScreenWidth))
	positive("display.screen_height", float64(c.Display.ScreenHeight))
	positive("display.scale", float64(c.Display.Scale))

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	nonNegative("arena.spawn_margin", c.Arena.SpawnMargin)
	nonNegative("arena.wave_delay", c.Arena.WaveDelay)

	positive("player.max_health", float64(c.Player.MaxHealth))
	nonNegative("player.max_mana", c.Player.MaxMana)
	nonNegative("player.move_speed", c.Player.MoveSpeed)
	nonNegative("player.mana_regen", c.Player.ManaRegen)
	nonNegative("player.projectile_cost", c.Player.ProjectileCost)
	nonNegative("player.projectile_speed", c.Player.ProjectileSpeed)
	nonNegative("player.projectile_damage", float64(c.Player.ProjectileDamage))

	nonNegative("waves.base_count", float64(c.Waves.BaseCount))
	nonNegative("waves.per_wave", float64(c.Waves.PerWave))
	nonNegative("waves.max_count", float64(c.Waves.MaxCount))
	nonNegative("waves.spawn_delay", c.Waves.SpawnDelay)
	nonNegative("waves.spawn_delay_decay", c.Waves.SpawnDelayDecay)
	nonNegative("waves.min_spawn_delay", c.Waves.MinSpawnDelay)

	nonNegative("audio.sample_rate", float64(c.Audio.SampleRate))

	for _, item := range c.Shop.Items {
		nonNegative("shop item "+item.Name+" price", float64(item.Price))
	}

	return errors.Join(errs...)
}
