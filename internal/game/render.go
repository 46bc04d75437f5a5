package game

import (
	"fmt"

	"github.com/greensward/tinygolf/internal/config"
	"github.com/greensward/tinygolf/internal/core"
	"github.com/greensward/tinygolf/internal/geom"
	"github.com/greensward/tinygolf/internal/level"
	"github.com/greensward/tinygolf/internal/physics"
	"github.com/greensward/tinygolf/internal/raster"
)

// Course glyphs. Each region draws its base rune, or its texture rune where
// the region's fill pattern has a bit set.
const (
	glyphWall    = '█'
	glyphGrass   = ' '
	glyphTexture = '░'
	glyphWave    = '~'
	glyphChevron = '▒'
	glyphBall    = '●'
	glyphBallDot = '·'
	glyphCup     = 'O'
	glyphAim     = '+'
)

// regionCell styles one rasterized course pixel.
func (g *Game) regionCell(region int, textured bool) (rune, core.Color) {
	gray := g.golf.Theme == config.ThemeGray
	switch region {
	case level.RegionWall:
		return glyphWall, core.ColorWhite
	case level.RegionSandtrap:
		if gray {
			return pick(textured, glyphTexture, glyphGrass), core.ColorGray
		}
		return pick(textured, glyphTexture, glyphGrass), core.ColorYellow
	case level.RegionWater:
		if gray {
			return pick(textured, glyphWave, glyphGrass), core.ColorWhite
		}
		return pick(textured, glyphWave, glyphGrass), core.ColorBlue
	case level.RegionFairway:
		if gray {
			return pick(textured, glyphTexture, glyphGrass), core.ColorGray
		}
		return pick(textured, glyphTexture, glyphGrass), core.ColorGreen
	case level.RegionSlopeRight, level.RegionSlopeDown,
		level.RegionSlopeLeft, level.RegionSlopeUp:
		if gray {
			return pick(textured, glyphChevron, glyphGrass), core.ColorGray
		}
		return pick(textured, glyphChevron, glyphGrass), core.ColorBrightGreen
	default:
		return ' ', core.ColorDefault
	}
}

func pick(cond bool, a, b rune) rune {
	if cond {
		return a
	}
	return b
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// HUD takes the bottom two rows; the course gets the rest.
	viewW := dst.Width()
	viewH := core.Max(dst.Height()-2, 1)

	g.positionCamera(viewW, viewH)
	g.renderCourse(dst, viewW, viewH)
	g.renderBallAndCup(dst)
	if g.mode == ModeAim || g.mode == ModePower {
		g.renderAimMarker(dst)
	}
	g.renderHUD(dst, viewW, viewH)

	switch g.mode {
	case ModeAttract:
		g.renderAttractBanner(dst)
	case ModeHoleStart:
		g.renderHoleBanner(dst)
	case ModeSunk:
		g.renderSunkBanner(dst)
	case ModeScorecard:
		g.renderScorecard(dst)
	case ModeRoundEnd:
		g.renderRoundEnd(dst)
	}

	if g.paused {
		dst.DrawTextCentered(viewH/2, " PAUSED ")
	}
}

// positionCamera points the display transform for the current mode: the
// attract screen orbits the cup, aiming rotates the world so the aim heading
// points up, and everything else tracks the ball upright.
func (g *Game) positionCamera(viewW, viewH int) {
	h := g.hole().Meta
	centerX := (viewW / 2) << 10
	centerY := (viewH / 2) << 10

	switch g.mode {
	case ModeAttract:
		g.trDisplay.SetScaleF10(g.golf.Camera.AttractScaleF10)
		orbit := int(g.nowMS * int64(g.golf.Camera.OrbitDegPerSec) / 1000)
		g.trDisplay.SetAngleWD(orbit)
		g.trDisplay.MapWorldToScreenF10(h.HoleX<<10, h.HoleY<<10, centerX, centerY)
	case ModeAim, ModePower:
		g.trDisplay.SetScaleF10(g.golf.Camera.ScaleF10)
		g.trDisplay.SetAngleWD(270 - g.aimWD)
		bx, by := g.ball.PositionF10()
		g.trDisplay.MapWorldToScreenF10(bx, by, centerX, centerY)
	default:
		g.trDisplay.SetScaleF10(g.golf.Camera.ScaleF10)
		g.trDisplay.SetAngleWD(0)
		bx, by := g.ball.PositionF10()
		g.trDisplay.MapWorldToScreenF10(bx, by, centerX, centerY)
	}
}

// renderCourse rasterizes the hole through the display camera and styles
// each payload pixel onto the screen.
func (g *Game) renderCourse(dst *core.Screen, viewW, viewH int) {
	g.pbDisplay.SetDimensions(viewW, viewH)
	g.trDisplay.Rasterize(&g.pbDisplay, g.ball.MaskLayer())

	dx, dy := g.trDisplay.PatternDrift()
	g.patterns.Update(dx, dy, g.trDisplay.AngleWD(), g.nowMS)

	cd := g.hole().Data
	for y := 0; y < viewH; y++ {
		for x := 0; x < viewW; x++ {
			payload := int(g.pbDisplay.At(x, y))
			region := level.RegionEmpty
			if payload&level.PayloadBitNonWall != 0 {
				region = payload & level.PayloadMaskLow
			} else {
				// Edge pixel: its chunk index leads back to the line region.
				region = cd.EdgeRegionLine(payload)
			}
			if region >= level.RegionEmpty {
				continue
			}
			r, c := g.regionCell(region, g.patterns.On(region, x, y))
			dst.SetCell(x, y, r, c)
		}
	}
}

// renderBallAndCup draws the cup first so the ball wins when they overlap.
func (g *Game) renderBallAndCup(dst *core.Screen) {
	scale := g.trDisplay.ScaleF10()

	hx, hy := g.ball.HolePositionF10()
	cupX, cupY := g.trDisplay.WorldToScreenF10(hx, hy)
	raster.DrawCircle(cupX, cupY, physics.HoleDiameter*scale,
		func(x, y int, outline bool) {
			if outline {
				dst.SetCell(x, y, glyphCup, core.ColorWhite)
			} else {
				dst.SetCell(x, y, ' ', core.ColorDefault)
			}
		})

	bx, by := g.ball.PositionF10()
	ballX, ballY := g.trDisplay.WorldToScreenF10(bx, by)
	diameter := physics.BallDiameter * scale
	raster.DrawCircle(ballX, ballY, diameter,
		func(x, y int, outline bool) {
			if outline {
				dst.SetCell(x, y, glyphBallDot, core.ColorBrightWhite)
			} else {
				dst.SetCell(x, y, glyphBall, core.ColorBrightWhite)
			}
		})
}

// renderAimMarker dots the aim line out from the ball.
func (g *Game) renderAimMarker(dst *core.Screen) {
	bx, by := g.ball.PositionF10()
	cos := geom.CosF10(g.aimWD)
	sin := geom.SinF10(g.aimWD)
	for i := 1; i <= 4; i++ {
		wx := bx + cos*i*8
		wy := by + sin*i*8
		sx, sy := g.trDisplay.WorldToScreenF10(wx, wy)
		x := geom.RoundF10(sx)
		y := geom.RoundF10(sy)
		if i == 4 {
			dst.SetCell(x, y, glyphAim, core.ColorBrightYellow)
		} else {
			dst.SetCell(x, y, glyphBallDot, core.ColorBrightYellow)
		}
	}
}

// renderHUD fills the bottom two rows.
func (g *Game) renderHUD(dst *core.Screen, viewW, viewH int) {
	h := g.hole().Meta
	dst.DrawHLine(0, viewH, viewW, '─')

	var label string
	if g.practice {
		label = fmt.Sprintf(" practice %s  par %d  strokes %d",
			h.Name, h.Par, g.strokes[g.holeIndex])
	} else {
		label = fmt.Sprintf(" hole %d/%d  par %d  strokes %d  total %d",
			g.holeIndex+1, len(g.holes), h.Par,
			g.strokes[g.holeIndex], g.totalStrokes())
	}
	dst.DrawText(0, viewH+1, label)

	if g.mode == ModePower {
		g.renderPowerMeter(dst, viewW, viewH+1)
	}
}

// renderPowerMeter draws the oscillating meter on the HUD's right side.
func (g *Game) renderPowerMeter(dst *core.Screen, viewW, y int) {
	const width = 20
	x0 := viewW - width - 2
	if x0 < 0 {
		return
	}
	filled := g.powerFracF10() * width >> 10
	dst.Set(x0-1, y, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			dst.SetCell(x0+i, y, '=', core.ColorBrightRed)
		} else {
			dst.Set(x0+i, y, ' ')
		}
	}
	dst.Set(x0+width, y, ']')
}

func (g *Game) renderAttractBanner(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "T I N Y G O L F")
	dst.DrawTextCentered(mid+1, "press enter to play")
}

func (g *Game) renderHoleBanner(dst *core.Screen) {
	h := g.hole().Meta
	g.drawBanner(dst,
		fmt.Sprintf("hole %d: %s", g.holeIndex+1, h.Name),
		fmt.Sprintf("par %d", h.Par))
}

func (g *Game) renderSunkBanner(dst *core.Screen) {
	strokes := g.strokes[g.holeIndex]
	g.drawBanner(dst,
		fmt.Sprintf("in the hole in %d", strokes),
		scoreName(strokes-g.hole().Meta.Par))
}

// scoreName names a score relative to par.
func scoreName(toPar int) string {
	switch {
	case toPar <= -3:
		return "albatross!"
	case toPar == -2:
		return "eagle!"
	case toPar == -1:
		return "birdie"
	case toPar == 0:
		return "par"
	case toPar == 1:
		return "bogey"
	case toPar == 2:
		return "double bogey"
	default:
		return fmt.Sprintf("+%d", toPar)
	}
}

func (g *Game) renderScorecard(dst *core.Screen) {
	mid := dst.Height() / 2
	if g.practice {
		dst.DrawTextCentered(mid-2, "practice")
		dst.DrawTextCentered(mid-1, fmt.Sprintf("attempts: %d", len(g.attempts)))
		if best := bestAttempt(g.attempts); best > 0 {
			dst.DrawTextCentered(mid, fmt.Sprintf("best: %d", best))
		}
		dst.DrawTextCentered(mid+2, "enter to go again")
		return
	}

	head := "hole  "
	pars := "par   "
	got := "shots "
	for i, h := range g.holes {
		head += fmt.Sprintf("%3d", i+1)
		pars += fmt.Sprintf("%3d", h.Meta.Par)
		if i <= g.holeIndex {
			got += fmt.Sprintf("%3d", g.strokes[i])
		} else {
			got += "  -"
		}
	}
	dst.DrawTextCentered(mid-2, head)
	dst.DrawTextCentered(mid-1, pars)
	dst.DrawTextCentered(mid, got)
	dst.DrawTextCentered(mid+2, "press enter")
}

func bestAttempt(attempts []int) int {
	best := 0
	for _, n := range attempts {
		if best == 0 || n < best {
			best = n
		}
	}
	return best
}

func (g *Game) renderRoundEnd(dst *core.Screen) {
	total := g.totalStrokes()
	par := g.parTotal()
	g.drawBanner(dst,
		fmt.Sprintf("round complete: %d (%+d)", total, total-par),
		"press enter to exit")
}

// drawBanner centers a boxed two-line message.
func (g *Game) drawBanner(dst *core.Screen, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 6
	hgt := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height()-2-hgt)/2 + 1
	box := core.NewRect(x, y, w, hgt)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(y+1, line1)
	dst.DrawTextCentered(y+3, line2)
}
