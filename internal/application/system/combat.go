package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
)

// CombatSystem resolves projectile hits
type CombatSystem struct {
	// Event callbacks
	OnEnemyHit  func(enemy *entity.Enemy, damage int, killed bool)
	OnPlayerHit func(damage int)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// ResolveCollisions applies projectile hits for this frame.
// A friendly projectile damages the first live enemy it overlaps, in slice
// order, and is consumed. A hostile projectile can only hit the player.
func (s *CombatSystem) ResolveCollisions(player *entity.Player, enemies []*entity.Enemy, projectiles []*entity.Projectile) {
	for _, proj := range projectiles {
		if !proj.Alive() {
			continue
		}

		if !proj.Friendly {
			s.hitPlayer(player, proj)
			continue
		}

		for _, enemy := range enemies {
			if !enemy.Alive() || !proj.CollidesWith(&enemy.Body) {
				continue
			}

			proj.Hit()
			killed := enemy.TakeDamage(proj.Damage)
			if s.OnEnemyHit != nil {
				s.OnEnemyHit(enemy, proj.Damage, killed)
			}
			break
		}
	}
}

func (s *CombatSystem) hitPlayer(player *entity.Player, proj *entity.Projectile) {
	if !player.Alive() || !proj.CollidesWith(&player.Body) {
		return
	}

	proj.Hit()
	player.TakeDamage(proj.Damage)
	if s.OnPlayerHit != nil {
		s.OnPlayerHit(proj.Damage)
	}
}
