package minerun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/entity"
	"github.com/vovakirdan/minerun/internal/run"
	"github.com/vovakirdan/minerun/internal/section"
)

// Visual characters for rendering
const (
	WallChar    = '█'
	BeamChar    = '▒'
	LavaChar    = '~'
	SpikeChar   = '█'
	SpikeUp     = '▲'
	SpikeDown   = '▼'
	FireChar    = '*'
	CartChar    = '▄'
	CoinChar    = 'o'
	BonusChar   = '$'
	AvatarChar  = '●'
	HitboxChar  = '·'
	HazardOn    = '#'
	HazardOff   = '-'
)

const (
	hudRows     = 1  // Screen rows above the play field
	hazardCells = 10 // Width of the hazard bar
)

// viewport maps world pixels to screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	h := max(1, dst.Height()-hudRows)
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(h) / worldH,
		top: hudRows,
	}
}

// rect returns the cells covered by r; never empty.
func (v viewport) rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.Left() * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := int(math.Floor(r.Top() * v.sy))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0+v.top, max(1, x1-x0), max(1, y1-y0))
}

func (v viewport) point(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y*v.sy)) + v.top
}

// circle fills cells whose centers fall inside the circle, at least one.
func (v viewport) circle(dst *core.Screen, center core.Vec2, radius float64, ch rune, c core.Color) {
	box := v.rect(core.NewRectF(center.X-radius, center.Y-radius, 2*radius, 2*radius))
	drawn := false
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			wx := (float64(x) + 0.5) / v.sx
			wy := (float64(y-v.top) + 0.5) / v.sy
			dx, dy := wx-center.X, wy-center.Y
			if dx*dx+dy*dy <= radius*radius {
				dst.SetColored(x, y, ch, c)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := v.point(center)
		dst.SetColored(x, y, ch, c)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.run == nil {
		return
	}

	w, h := g.run.World()
	vp := newViewport(dst, w, h)

	// Fireballs first so lava covers them while submerged.
	for _, o := range g.run.Obstacles() {
		if fb, ok := o.(*entity.FireBall); ok {
			vp.circle(dst, fb.Pos, fb.Radius, FireChar, core.ColorOrange)
		}
	}
	for _, o := range g.run.Obstacles() {
		g.drawObstacle(dst, vp, o, h)
	}

	if g.run.Sections().IsSpikes() {
		lava := g.run.Sections().LavaHeight()
		dst.DrawRectColored(vp.rect(core.NewRectF(0, h-lava, w, lava)), LavaChar, core.ColorRed)
	}

	for _, c := range g.run.Coins() {
		if c.Collected {
			continue
		}
		ch, color := CoinChar, core.ColorBrightYellow
		if c.Value > 1 {
			ch, color = BonusChar, core.ColorBrightMagenta
		}
		vp.circle(dst, c.Pos, c.Radius, ch, color)
	}

	g.drawAvatar(dst, vp)

	if g.hitboxes {
		g.drawHitboxes(dst, vp)
	}

	g.drawHUD(dst)

	if g.bannerTicks > 0 && g.banner != "" {
		text := "== " + g.banner + " =="
		dst.DrawTextColored((dst.Width()-len(text))/2, hudRows+1, text, core.ColorBrightWhite)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  %s  |  Press R to restart", g.run.Score(), g.run.Cause()))
	}
}

func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o entity.Obstacle, worldH float64) {
	switch ob := o.(type) {
	case *entity.FireBall:
		// Drawn before everything else.
	case *entity.SpikeBlock:
		drawSpike(dst, vp, ob)
	case *entity.MineCart:
		r := vp.rect(ob.Hitbox())
		dst.DrawRectColored(r, CartChar, core.ColorYellow)
		if r.W > 2 {
			dst.SetColored(r.X, r.Bottom()-1, 'o', core.ColorGray)
			dst.SetColored(r.Right()-1, r.Bottom()-1, 'o', core.ColorGray)
		}
	default:
		r := vp.rect(o.Hitbox())
		switch o.Kind() {
		case entity.KindWall:
			dst.DrawRectColored(r, WallChar, core.ColorGray)
		case entity.KindLava:
			dst.DrawRectColored(r, LavaChar, core.ColorRed)
		case entity.KindBeam:
			dst.DrawRectColored(r, BeamChar, core.ColorYellow)
		case entity.KindSlopeSpike:
			ch := SpikeUp
			if o.Hitbox().Center().Y < worldH/2 {
				ch = SpikeDown
			}
			dst.DrawRectColored(r, ch, core.ColorBrightWhite)
		default:
			dst.DrawRectColored(r, WallChar, core.ColorWhite)
		}
	}
}

// drawSpike narrows the block from its base to its tip.
func drawSpike(dst *core.Screen, vp viewport, s *entity.SpikeBlock) {
	r := vp.rect(s.Bounds())
	color := core.ColorGray
	if s.Large {
		color = core.ColorBrightWhite
	}
	cx := float64(r.X) + float64(r.W)/2

	for i := 0; i < r.H; i++ {
		t := (float64(i) + 0.5) / float64(r.H) // 0 at top row
		frac := t
		tip := SpikeUp
		if s.Orientation == entity.OrientTop {
			frac = 1 - t
			tip = SpikeDown
		}
		half := math.Max(0.5, frac*float64(r.W)/2)
		x0 := int(math.Floor(cx - half))
		x1 := int(math.Ceil(cx + half))

		ch := SpikeChar
		if (s.Orientation == entity.OrientTop && i == r.H-1) || (s.Orientation == entity.OrientBottom && i == 0) {
			ch = tip
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, r.Y+i, ch, color)
		}
	}
}

func (g *Game) drawAvatar(dst *core.Screen, vp viewport) {
	a := g.run.Avatar()
	color := core.ColorBrightCyan
	if g.gameOver {
		color = core.ColorBrightRed
	}
	vp.circle(dst, a.Pos, a.Radius, AvatarChar, color)

	x, y := vp.point(a.Pos)
	switch g.run.AnimState() {
	case run.AnimFlying:
		dst.SetColored(x, y, '^', core.ColorBrightWhite)
	case run.AnimFalling:
		dst.SetColored(x, y, 'v', core.ColorBrightWhite)
	}
}

// drawHitboxes outlines every collision shape: obstacle boxes, lethal edge
// bands, coins and the avatar.
func (g *Game) drawHitboxes(dst *core.Screen, vp viewport) {
	for _, o := range g.run.Obstacles() {
		color := core.ColorBrightGreen
		if o.Lethal() {
			color = core.ColorBrightRed
		}
		dst.DrawOutline(vp.rect(o.Hitbox()), HitboxChar, color)

		if ro, ok := o.(*entity.RectObstacle); ok {
			for _, band := range ro.EdgeBands() {
				dst.DrawOutline(vp.rect(band), '!', core.ColorRed)
			}
		}
	}
	for _, c := range g.run.Coins() {
		center, radius := c.Hitbox()
		dst.DrawOutline(vp.rect(squareAround(center, radius)), HitboxChar, core.ColorBrightBlue)
	}
	center, radius := g.run.Avatar().Hitbox()
	dst.DrawOutline(vp.rect(squareAround(center, radius)), HitboxChar, core.ColorBrightBlue)
}

func squareAround(c core.Vec2, r float64) core.RectF {
	return core.NewRectF(c.X-r, c.Y-r, 2*r, 2*r)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')

	cur := g.run.Sections().Current()
	score := fmt.Sprintf(" SCORE %d ", g.run.Score())
	best := fmt.Sprintf(" BEST %d ", max(g.best, g.run.Score()))
	sec := fmt.Sprintf(" %s T%d ", strings.ToUpper(cur.Kind.String()), cur.Tier)

	x := 0
	dst.DrawTextColored(x, 0, score, core.ColorBrightYellow)
	x += len(score)
	dst.DrawTextColored(x, 0, best, core.ColorYellow)
	x += len(best)
	dst.DrawTextColored(x, 0, sec, sectionColor(cur.Kind))
	x += len(sec)

	intensity := g.run.Progression().HazardIntensity()
	filled := int(math.Round(intensity * hazardCells))
	bar := " HAZARD " + strings.Repeat(string(HazardOn), filled) + strings.Repeat(string(HazardOff), hazardCells-filled)
	dst.DrawTextColored(x, 0, bar, core.ColorOrange)
	x += len(bar)

	if g.hitboxes {
		dst.DrawTextColored(x, 0, " [H]", core.ColorBrightGreen)
	}
}

func sectionColor(k section.Kind) core.Color {
	switch k {
	case section.Spikes:
		return core.ColorBrightRed
	case section.Tunnel:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightBlue
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(w, max(len(title), len(subtitle))+4)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
