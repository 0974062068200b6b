package config

import (
	"errors"
	"fmt"
)

// EnemyConfig is the root config for enemies/<type>.json.
// The enemy type is the file name without extension.
type EnemyConfig struct {
	Health         int     `json:"health"`
	Speed          float64 `json:"speed"`
	Damage         int     `json:"damage"`
	Size           float64 `json:"size"`
	Color          [3]int  `json:"color"`
	Coins          int     `json:"coins"`
	ChaseRange     float64 `json:"chase_range"`
	AttackCooldown float64 `json:"attack_cooldown"`

	// Steering
	ChaseBlend    float64 `json:"chase_blend"` // 0 = pure drift, 1 = pure pursuit
	WallBounce    bool    `json:"wall_bounce"`
	OffsetJitter  float64 `json:"offset_jitter"`
	BounceMargin  float64 `json:"bounce_margin"`
	BounceDeflect float64 `json:"bounce_deflect"` // radians
}

// Validate rejects templates that cannot produce a working enemy
func (c *EnemyConfig) Validate() error {
	var errs []error
	if c.Health <= 0 {
		errs = append(errs, fmt.Errorf("health must be positive, got %d", c.Health))
	}
	if c.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %g", c.Size))
	}
	if c.Speed < 0 {
		errs = append(errs, fmt.Errorf("speed must not be negative, got %g", c.Speed))
	}
	if c.AttackCooldown < 0 {
		errs = append(errs, fmt.Errorf("attack_cooldown must not be negative, got %g", c.AttackCooldown))
	}
	return errors.Join(errs...)
}
