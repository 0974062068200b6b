package entity

import (
	"image/color"
	"math"
	"math/rand"
)

// Steering configures how an enemy moves.
//
// ChaseBlend mixes the enemy's own drift heading with pursuit of the player
// while the player is within chase range: 0 is pure drift, 1 is pure pursuit.
// WallBounce keeps the enemy inside the arena by turning its drift back
// inward at the walls and nudging the heading by up to BounceDeflect radians.
// OffsetJitter spreads pursuit targets so a pack does not collapse onto one point.
type Steering struct {
	ChaseBlend    float64
	WallBounce    bool
	OffsetJitter  float64
	BounceMargin  float64
	BounceDeflect float64
}

// EnemyStats is the template an enemy is instantiated from
type EnemyStats struct {
	Health         int
	Speed          float64
	Damage         int
	Size           float64
	Color          color.RGBA
	Coins          int
	ChaseRange     float64
	AttackCooldown float64
	Steering       Steering
}

// Enemy represents a hostile arena entity
type Enemy struct {
	Body

	EnemyType      string
	Health         int
	MaxHealth      int
	MoveSpeed      float64
	ContactDamage  int
	Coins          int
	ChaseRange     float64
	AttackCooldown float64
	AttackTimer    float64
	Color          color.RGBA
	Steering       Steering

	// Drift heading scaled by MoveSpeed
	DriftVX, DriftVY float64
	// Per-enemy pursuit offset
	OffsetX, OffsetY float64

	rewarded bool
}

// NewEnemy creates an enemy of the given type at (x, y).
// The drift heading and pursuit offset are drawn from rng.
func NewEnemy(x, y float64, enemyType string, stats EnemyStats, rng *rand.Rand) *Enemy {
	e := &Enemy{
		Body:           NewBody(x, y, stats.Size, stats.Size),
		EnemyType:      enemyType,
		Health:         stats.Health,
		MaxHealth:      stats.Health,
		MoveSpeed:      stats.Speed,
		ContactDamage:  stats.Damage,
		Coins:          stats.Coins,
		ChaseRange:     stats.ChaseRange,
		AttackCooldown: stats.AttackCooldown,
		Color:          stats.Color,
		Steering:       stats.Steering,
	}

	if j := stats.Steering.OffsetJitter; j > 0 {
		e.OffsetX = (rng.Float64()*2 - 1) * j
		e.OffsetY = (rng.Float64()*2 - 1) * j
	}

	angle := rng.Float64() * 2 * math.Pi
	e.DriftVX = math.Cos(angle) * e.MoveSpeed
	e.DriftVY = math.Sin(angle) * e.MoveSpeed

	return e
}

// Update steers, moves and ticks the attack cooldown. Enemies freeze once the player is dead.
func (e *Enemy) Update(dt float64, player *Player, arena Arena, rng *rand.Rand) {
	if !e.Alive() || !player.Alive() {
		return
	}

	e.steer(player)
	e.Integrate(dt)

	if e.Steering.WallBounce && dt > 0 {
		e.bounce(arena, rng)
	}

	e.AttackTimer += dt
}

func (e *Enemy) steer(player *Player) {
	e.VX, e.VY = e.DriftVX, e.DriftVY

	if e.DistanceTo(&player.Body) > e.ChaseRange {
		return
	}

	dx := player.CenterX() + e.OffsetX - e.CenterX()
	dy := player.CenterY() + e.OffsetY - e.CenterY()
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}

	blend := e.Steering.ChaseBlend
	e.VX = e.DriftVX*(1-blend) + dx/dist*e.MoveSpeed*blend
	e.VY = e.DriftVY*(1-blend) + dy/dist*e.MoveSpeed*blend
}

func (e *Enemy) bounce(arena Arena, rng *rand.Rand) {
	m := e.Steering.BounceMargin
	maxX := arena.Width - e.W - m
	maxY := arena.Height - e.H - m
	bounced := false

	if e.X < m {
		e.DriftVX = math.Abs(e.DriftVX)
		bounced = true
	} else if e.X > maxX {
		e.DriftVX = -math.Abs(e.DriftVX)
		bounced = true
	}
	if e.Y < m {
		e.DriftVY = math.Abs(e.DriftVY)
		bounced = true
	} else if e.Y > maxY {
		e.DriftVY = -math.Abs(e.DriftVY)
		bounced = true
	}

	if !bounced {
		return
	}

	e.X = clamp(e.X, m, maxX)
	e.Y = clamp(e.Y, m, maxY)

	if d := e.Steering.BounceDeflect; d > 0 {
		angle := math.Atan2(e.DriftVY, e.DriftVX) + (rng.Float64()*2-1)*d
		speed := math.Hypot(e.DriftVX, e.DriftVY)
		e.DriftVX = math.Cos(angle) * speed
		e.DriftVY = math.Sin(angle) * speed
	}
}

// CanAttack returns true once the cooldown has elapsed
func (e *Enemy) CanAttack() bool {
	return e.AttackTimer >= e.AttackCooldown
}

// Attack deals contact damage when the cooldown allows it and the bodies overlap.
// It returns whether the attack landed.
func (e *Enemy) Attack(player *Player) bool {
	if !e.Alive() || !player.Alive() || !e.CanAttack() || !e.CollidesWith(&player.Body) {
		return false
	}
	player.TakeDamage(e.ContactDamage)
	e.AttackTimer = 0
	return true
}

// TakeDamage applies damage and returns true if this hit killed the enemy
func (e *Enemy) TakeDamage(damage int) bool {
	if !e.Alive() {
		return false
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Kill()
		return true
	}
	return false
}

// ClaimReward hands out the coin value of a dead enemy. It pays at most once.
func (e *Enemy) ClaimReward() (int, bool) {
	if e.Alive() || e.rewarded {
		return 0, false
	}
	e.rewarded = true
	return e.Coins, true
}

// HealthRatio returns health as a fraction of max health
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, float64(e.Health)/float64(e.MaxHealth))
}
