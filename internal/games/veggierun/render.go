package veggierun

import (
	"fmt"

	"github.com/vovakirdan/veggie-run/internal/core"
)

// Visual characters for rendering
const (
	HillChar     = '▲'
	GrassChar    = '"'
	GroundChar   = '═'
	SoilChar     = '░'
	PlayerChar   = '█'
	LegChar1     = '╱'
	LegChar2     = '╲'
	ObstacleChar = '▓'
	FoodChar     = '●'
	PetChar      = '▒'
	UnicornChar  = '█'
	HazardChar   = '✱'
	BossChar     = '█'
	HeartChar    = '♥'
	RectConfetti = '■'
	DotConfetti  = '•'
)

// Distance between decorations on a layer, in world pixels.
const (
	hillSpacing  = 180.0
	grassSpacing = 60.0
)

var foodColors = [...]core.Color{
	core.ColorOrange, core.ColorGreen, core.ColorRed,
	core.ColorBrightGreen, core.ColorYellow, core.ColorPurple,
	core.ColorBrightRed, core.ColorBrightYellow, core.ColorMagenta,
}

var confettiColors = [len(ConfettiColors)]core.Color{
	core.ColorPink, core.ColorBrightRed, core.ColorBrightYellow, core.ColorGreen,
	core.ColorBlue, core.ColorPurple, core.ColorMagenta, core.ColorSky,
}

var bossColors = [...]core.Color{core.ColorRed, core.ColorOrange, core.ColorBlue}

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: worldW / float64(core.Max(1, dst.Width())),
		sy: worldH / float64(core.Max(1, dst.Height())),
	}
}

func (v viewport) rect(b core.Box) core.Rect {
	return b.Scale(v.sx, v.sy)
}

func (v viewport) col(x float64) int { return int(x / v.sx) }
func (v viewport) row(y float64) int { return int(y / v.sy) }

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	v := newViewport(dst, g.cfg.Screen.Width, g.cfg.Screen.Height)

	g.drawLayers(dst, v, snap.Layers)

	for _, obj := range snap.Objects {
		drawObject(dst, v, obj)
	}

	drawPlayer(dst, v, snap.Player)

	for _, p := range snap.Confetti {
		drawConfetti(dst, v, p)
	}

	drawHUD(dst, snap.UI)

	if snap.UI.BossActive {
		dst.DrawTextCentered(1, fmt.Sprintf("BOSS - Health: %d/%d", snap.UI.BossHealth, snap.UI.BossMaxHealth), core.ColorBrightRed)
		dst.DrawTextCentered(2, "Jump on his head!", core.ColorWhite)
	}

	if snap.UI.HugActive {
		drawHug(dst, snap.UI.HugAnimFrame)
	}

	if snap.UI.Held {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorWhite)
	}

	if snap.UI.GameOver {
		// Score counts every veggie eaten this run; FoodCollected resets per boss
		veggiesEaten := snap.UI.Score
		drawCenteredMessage(dst, "OUT OF ENERGY!", fmt.Sprintf("Veggies: %d  |  Press SPACE to try again", veggiesEaten), core.ColorBrightRed)
	}
}

// drawLayers renders the parallax hills, the ground line and the grass.
func (g *Game) drawLayers(dst *core.Screen, v viewport, l Layers) {
	feet := g.cfg.Player.GroundY + g.cfg.Player.Height
	span := layerSpan(g.cfg.World, g.cfg.Screen.Width)
	groundRow := v.row(feet)

	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SoilChar, core.ColorGreen)
	}
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorBrightGreen)

	hillRow := v.row(feet - 220)
	for _, offset := range l.Background {
		for x := 0.0; x < span; x += hillSpacing {
			col := v.col(offset + x)
			dst.SetColored(col, hillRow, HillChar, core.ColorGray)
			dst.SetColored(col-1, hillRow+1, HillChar, core.ColorGray)
			dst.SetColored(col+1, hillRow+1, HillChar, core.ColorGray)
		}
	}

	for _, offset := range l.Foreground {
		for x := 0.0; x < span; x += grassSpacing {
			dst.SetColored(v.col(offset+x), groundRow-1, GrassChar, core.ColorGreen)
		}
	}
}

func drawPlayer(dst *core.Screen, v viewport, p Player) {
	color := core.ColorSky
	switch p.Row {
	case RowHurt:
		color = core.ColorBrightRed
	case RowCelebrate:
		color = core.ColorBrightYellow
	case RowWalk:
	}

	r := v.rect(p.Box())
	if r.H > 1 {
		dst.DrawRect(core.NewRect(r.X, r.Y, r.W, r.H-1), PlayerChar, color)
	}

	// Legs alternate with the animation frame; tucked while airborne
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		leg := LegChar1
		if (x-r.X+int(p.Frame))%2 == 1 {
			leg = LegChar2
		}
		if p.Jumping {
			leg = '▀'
		}
		dst.SetColored(x, legs, leg, color)
	}
}

func drawObject(dst *core.Screen, v viewport, obj WorldObject) {
	r := v.rect(obj.Box())
	switch obj.Kind {
	case KindObstacle:
		dst.DrawRect(r, ObstacleChar, core.ColorGray)
	case KindFood:
		dst.DrawRect(r, FoodChar, foodColors[obj.FoodVariant%len(foodColors)])
	case KindPet:
		if obj.Pet.Row == PetAwake {
			dst.DrawRect(r, PetChar, core.ColorPink)
			dst.SetColored(r.X+r.W/2, r.Y-1, HeartChar, core.ColorBrightRed)
		} else {
			dst.DrawRect(r, PetChar, core.ColorOrange)
			dst.SetColored(r.Right(), r.Y-1, 'z', core.ColorWhite)
		}
	case KindUnicorn:
		dst.DrawRect(r, UnicornChar, core.ColorBrightMagenta)
		dst.SetColored(r.X-1, r.Y, '/', core.ColorBrightYellow) // Horn
	case KindFloatingHazard:
		dst.DrawRect(r, HazardChar, core.ColorRed)
	case KindBoss:
		dst.DrawRect(r, BossChar, bossColors[core.Clamp(obj.Boss.Row, 0, len(bossColors)-1)])
		if obj.Boss.HitCooldown > 0 && obj.Boss.HitCooldown%10 < 5 {
			dst.DrawBox(r, core.ColorBrightWhite) // Blink while invulnerable
		}
	}
}

func drawConfetti(dst *core.Screen, v viewport, p Confetti) {
	ch := DotConfetti
	if p.Shape == ShapeRect {
		ch = RectConfetti
	}
	dst.SetColored(v.col(p.X), v.row(p.Y), ch, confettiColors[p.Color%len(confettiColors)])
}

func drawHUD(dst *core.Screen, ui UIState) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Energy: %d%%", ui.Health), healthColor(ui.Health, ui.MaxHealth))
	dst.DrawTextColored(1, 1, fmt.Sprintf("Speed: %.1f", ui.GameSpeed), core.ColorWhite)
	dst.DrawTextColored(1, 2, fmt.Sprintf("Veggies: %d", ui.FoodCollected), core.ColorBrightGreen)
}

func healthColor(health, max int) core.Color {
	switch {
	case health*4 <= max:
		return core.ColorBrightRed
	case health*2 <= max:
		return core.ColorYellow
	default:
		return core.ColorBrightGreen
	}
}

// drawHug shows the pulsing hug banner with hearts orbiting it.
func drawHug(dst *core.Screen, frame int) {
	y := dst.Height() / 3
	text := "HUG!"
	if frame/8%2 == 1 {
		text = "* HUG! *"
	}
	dst.DrawTextCentered(y, text, core.ColorBrightMagenta)

	cx := dst.Width() / 2
	for i := 0; i < 6; i++ {
		dx := ((frame/4 + i*3) % 15) - 7
		dy := i%3 - 1
		dst.SetColored(cx+dx*2, y+dy*2, HeartChar, core.ColorPink)
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
