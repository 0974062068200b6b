package entity

import "math"

// PlayerSize is the side length of the player's square body
const PlayerSize = 32

// PlayerStats holds the tunable player values
type PlayerStats struct {
	MaxHealth        int
	MaxMana          float64
	MoveSpeed        float64
	ManaRegen        float64 // per second
	ProjectileCost   float64
	ProjectileSpeed  float64
	ProjectileDamage int
}

// Directions is the held state of the four movement keys
type Directions struct {
	Up, Down, Left, Right bool
}

// Player represents the player character
type Player struct {
	Body
	Stats PlayerStats

	Health    int
	MaxHealth int
	Mana      float64
	MaxMana   float64
}

// NewPlayer creates a player centered on (cx, cy) with full health and mana
func NewPlayer(cx, cy float64, stats PlayerStats) *Player {
	return &Player{
		Body:      NewBody(cx-PlayerSize/2, cy-PlayerSize/2, PlayerSize, PlayerSize),
		Stats:     stats,
		Health:    stats.MaxHealth,
		MaxHealth: stats.MaxHealth,
		Mana:      stats.MaxMana,
		MaxMana:   stats.MaxMana,
	}
}

// HandleInput sets the velocity from the held keys and fires toward the aim
// point when requested. It returns the new projectile, or nil if none was fired.
func (p *Player) HandleInput(dirs Directions, aimX, aimY float64, fire bool) *Projectile {
	p.VX, p.VY = 0, 0

	if dirs.Up {
		p.VY -= p.Stats.MoveSpeed
	}
	if dirs.Down {
		p.VY += p.Stats.MoveSpeed
	}
	if dirs.Left {
		p.VX -= p.Stats.MoveSpeed
	}
	if dirs.Right {
		p.VX += p.Stats.MoveSpeed
	}

	// Diagonal is no faster than a single axis
	if p.VX != 0 && p.VY != 0 {
		p.VX /= math.Sqrt2
		p.VY /= math.Sqrt2
	}

	if fire && p.Mana >= p.Stats.ProjectileCost {
		return p.Shoot(aimX, aimY)
	}
	return nil
}

// Shoot fires a friendly projectile from the player's center toward (tx, ty).
// Nothing happens, and no mana is spent, if mana is short or the target is the center.
func (p *Player) Shoot(tx, ty float64) *Projectile {
	if p.Mana < p.Stats.ProjectileCost {
		return nil
	}

	dx := tx - p.CenterX()
	dy := ty - p.CenterY()
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return nil
	}

	proj := NewProjectile(
		p.CenterX(), p.CenterY(),
		dx/dist*p.Stats.ProjectileSpeed,
		dy/dist*p.Stats.ProjectileSpeed,
		p.Stats.ProjectileDamage,
		true,
	)
	p.Mana -= p.Stats.ProjectileCost
	return proj
}

// Update moves the player, keeps it inside the arena and regenerates mana
func (p *Player) Update(dt float64, arena Arena) {
	p.Integrate(dt)
	p.X, p.Y = arena.Clamp(p.X, p.Y, p.W, p.H)

	p.Mana = math.Min(p.MaxMana, p.Mana+p.Stats.ManaRegen*dt)
	if p.Mana < 0 {
		p.Mana = 0
	}
}

// TakeDamage applies damage. Health stops at zero and death is final.
func (p *Player) TakeDamage(damage int) {
	if !p.Alive() || damage <= 0 {
		return
	}
	p.Health -= damage
	if p.Health <= 0 {
		p.Health = 0
		p.Kill()
	}
}

// HealthRatio returns health as a fraction of max health
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}

// ManaRatio returns mana as a fraction of max mana
func (p *Player) ManaRatio() float64 {
	if p.MaxMana <= 0 {
		return 0
	}
	return p.Mana / p.MaxMana
}
