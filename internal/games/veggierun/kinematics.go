package veggierun

// Jump starts a jump if the player is on the ground.
// Returns false when the player is already airborne.
func (p *Player) Jump(strength float64) bool {
	if p.Jumping {
		return false
	}
	p.VelocityY = strength
	p.Jumping = true
	return true
}

// Integrate applies one tick of gravity and clamps the player to the ground.
func (p *Player) Integrate(gravity, groundY float64) {
	p.VelocityY += gravity
	p.Y += p.VelocityY

	if p.Y >= groundY {
		p.Y = groundY
		p.VelocityY = 0
		p.Jumping = false
	}
}
