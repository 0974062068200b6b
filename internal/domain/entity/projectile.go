package entity

const (
	// ProjectileSize is the width and height of every projectile
	ProjectileSize = 8
	// ProjectileLifetime is the age in seconds at which a projectile expires
	ProjectileLifetime = 3.0
	// ProjectileBoundsMargin is how far past the arena edge a projectile may fly
	ProjectileBoundsMargin = 50.0
)

// Projectile is a bolt fired by the player (friendly) or an enemy (hostile)
type Projectile struct {
	Body

	Damage   int
	Friendly bool
	Age      float64
	Lifetime float64
}

// NewProjectile creates a projectile centered on (cx, cy)
func NewProjectile(cx, cy, vx, vy float64, damage int, friendly bool) *Projectile {
	p := &Projectile{
		Body:     NewBody(cx-ProjectileSize/2, cy-ProjectileSize/2, ProjectileSize, ProjectileSize),
		Damage:   damage,
		Friendly: friendly,
		Lifetime: ProjectileLifetime,
	}
	p.VX = vx
	p.VY = vy
	return p
}

// Update moves the projectile and expires it by age or distance from the arena
func (p *Projectile) Update(dt float64, arena Arena) {
	if !p.Alive() {
		return
	}

	p.Integrate(dt)
	p.Age += dt

	if p.Age >= p.Lifetime {
		p.Kill()
		return
	}

	if p.X < -ProjectileBoundsMargin || p.X > arena.Width+ProjectileBoundsMargin ||
		p.Y < -ProjectileBoundsMargin || p.Y > arena.Height+ProjectileBoundsMargin {
		p.Kill()
	}
}

// Hit consumes the projectile after it has dealt its damage
func (p *Projectile) Hit() {
	p.Kill()
}
