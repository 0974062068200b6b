package system

import (
	"image/color"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// LoadArena converts an ArenaConfig into the arena bounds
func LoadArena(cfg config.ArenaConfig) entity.Arena {
	return entity.Arena{
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// LoadPlayerStats converts a PlayerConfig into player stats
func LoadPlayerStats(cfg config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		MaxHealth:        cfg.MaxHealth,
		MaxMana:          cfg.MaxMana,
		MoveSpeed:        cfg.MoveSpeed,
		ManaRegen:        cfg.ManaRegen,
		ProjectileCost:   cfg.ProjectileCost,
		ProjectileSpeed:  cfg.ProjectileSpeed,
		ProjectileDamage: cfg.ProjectileDamage,
	}
}

// LoadEnemyStats converts an EnemyConfig into an enemy template.
// chase_blend is clamped to [0, 1] and color channels to [0, 255].
func LoadEnemyStats(cfg config.EnemyConfig) entity.EnemyStats {
	return entity.EnemyStats{
		Health:         cfg.Health,
		Speed:          cfg.Speed,
		Damage:         cfg.Damage,
		Size:           cfg.Size,
		Color:          color.RGBA{channel(cfg.Color[0]), channel(cfg.Color[1]), channel(cfg.Color[2]), 255},
		Coins:          cfg.Coins,
		ChaseRange:     cfg.ChaseRange,
		AttackCooldown: cfg.AttackCooldown,
		Steering: entity.Steering{
			ChaseBlend:    min(max(cfg.ChaseBlend, 0), 1),
			WallBounce:    cfg.WallBounce,
			OffsetJitter:  max(cfg.OffsetJitter, 0),
			BounceMargin:  max(cfg.BounceMargin, 0),
			BounceDeflect: max(cfg.BounceDeflect, 0),
		},
	}
}

// LoadEnemyTemplates converts every loaded enemy config
func LoadEnemyTemplates(enemies map[string]config.EnemyConfig) map[string]entity.EnemyStats {
	templates := make(map[string]entity.EnemyStats, len(enemies))
	for name, cfg := range enemies {
		templates[name] = LoadEnemyStats(cfg)
	}
	return templates
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
