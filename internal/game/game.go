// Package game implements the mini golf round: aiming, the power meter,
// rolling the ball, scoring, and the flow between holes.
package game

import (
	"github.com/greensward/tinygolf/internal/config"
	"github.com/greensward/tinygolf/internal/core"
	"github.com/greensward/tinygolf/internal/geom"
	"github.com/greensward/tinygolf/internal/level"
	"github.com/greensward/tinygolf/internal/physics"
	"github.com/greensward/tinygolf/internal/raster"
	"github.com/greensward/tinygolf/internal/scene"
)

// Mode is the phase of play the game is in.
type Mode int

const (
	ModeAttract Mode = iota
	ModeHoleStart
	ModeAim
	ModePower
	ModeRolling
	ModeSunk
	ModeScorecard
	ModeRoundEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeAttract:
		return "Attract"
	case ModeHoleStart:
		return "HoleStart"
	case ModeAim:
		return "Aim"
	case ModePower:
		return "Power"
	case ModeRolling:
		return "Rolling"
	case ModeSunk:
		return "Sunk"
	case ModeScorecard:
		return "Scorecard"
	case ModeRoundEnd:
		return "RoundEnd"
	default:
		return "Unknown"
	}
}

// Game implements a round of golf over the built-in course.
type Game struct {
	cfg  core.RuntimeConfig
	golf config.GolfConfig

	holes []level.CourseHole
	ball  *physics.Ball

	// Separate cameras: the display one frames the viewport, the collision
	// one is realigned to the ball's heading every physics step.
	trDisplay *scene.Transform
	trCollide *scene.Transform
	pbDisplay raster.PayloadBuffer
	pbCollide raster.PayloadBuffer
	patterns  scene.Patterns

	mode      Mode
	modeMS    int
	nowMS     int64
	deltaMS   int
	holeIndex int
	strokes   []int
	aimWD     int
	lastAim   core.Action // aim action seen last tick, for fast stepping
	practice  bool
	attempts  []int // practice: strokes of completed attempts
	peeking   bool  // scorecard opened from Aim, return there on close
	over      bool
	paused    bool

	// startHole and startStrokes seed Reset, so a resumed round survives a
	// restart of the model.
	startHole    int
	startStrokes []int

	// OnStroke fires after every stroke and hole transition with the state
	// to autosave. OnRoundDone fires once with the finished round. Both are
	// optional and never set in practice mode.
	OnStroke    func(holeIndex int, strokes []int)
	OnRoundDone func(strokes []int, par int)
}

// New creates a game over the built-in nine-hole course.
func New(golf config.GolfConfig) *Game {
	return &Game{
		golf:  golf,
		holes: level.Builtin(),
	}
}

// SetCourse swaps the built-in course for a loaded one. Call before Reset.
func (g *Game) SetCourse(holes []level.CourseHole) {
	g.holes = holes
}

// SetPractice puts the game in single-hole practice: no attract screen, no
// persistence, replaying the same hole.
func (g *Game) SetPractice(holeIndex int) {
	g.practice = true
	g.startHole = holeIndex
}

// Resume seeds the game from an autosaved round.
func (g *Game) Resume(holeIndex int, strokes []int) {
	g.startHole = holeIndex
	g.startStrokes = strokes
}

// HoleCount returns the number of holes on the course.
func (g *Game) HoleCount() int { return len(g.holes) }

// Pars returns the par of every hole.
func (g *Game) Pars() []int {
	pars := make([]int, len(g.holes))
	for i, h := range g.holes {
		pars[i] = h.Meta.Par
	}
	return pars
}

// Strokes returns the per-hole stroke counts so far.
func (g *Game) Strokes() []int {
	out := make([]int, len(g.strokes))
	copy(out, g.strokes)
	return out
}

// CurrentMode returns the current phase of play.
func (g *Game) CurrentMode() Mode { return g.mode }

// Practice reports whether the game is in practice mode.
func (g *Game) Practice() bool { return g.practice }

// Attempts returns the stroke counts of completed practice attempts.
func (g *Game) Attempts() []int {
	out := make([]int, len(g.attempts))
	copy(out, g.attempts)
	return out
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	if g.cfg.TickRate <= 0 {
		g.cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.deltaMS = 1000 / g.cfg.TickRate

	g.ball = physics.NewBall()
	g.trDisplay = scene.NewTransform(nil)
	g.trCollide = scene.NewTransform(nil)

	g.strokes = make([]int, len(g.holes))
	copy(g.strokes, g.startStrokes)
	g.attempts = nil
	g.holeIndex = core.Clamp(g.startHole, 0, len(g.holes)-1)
	g.nowMS = 0
	g.over = false
	g.paused = false
	g.peeking = false
	g.lastAim = core.ActionNone

	if g.practice || g.startStrokes != nil {
		g.enterHole(g.holeIndex)
		g.setMode(ModeHoleStart)
	} else {
		g.enterHole(0)
		g.setMode(ModeAttract)
	}
}

func (g *Game) setMode(m Mode) {
	g.mode = m
	g.modeMS = 0
}

// hole returns the hole in play.
func (g *Game) hole() level.CourseHole {
	return g.holes[g.holeIndex]
}

// enterHole loads a hole's geometry and places the ball on the tee.
func (g *Game) enterHole(index int) {
	g.holeIndex = index
	h := g.holes[index]
	g.trDisplay.SetChunkData(h.Data)
	g.trCollide.SetChunkData(h.Data)
	g.ball = physics.NewBall()
	g.ball.SetMaskLayer(h.Meta.TeeMaskLayer)
	g.ball.ResetLocationF10(h.Meta.TeeX<<10, h.Meta.TeeY<<10)
	g.ball.SetHoleLocationF10(h.Meta.HoleX<<10, h.Meta.HoleY<<10)
	g.ball.UpdateLastShot()
	// Aim roughly at the cup to start.
	g.aimWD = aimAtCup(h.Meta)
}

// aimAtCup returns the whole-degree heading from tee to cup.
func aimAtCup(h level.Hole) int {
	return geom.VectorAngleWD(h.HoleX-h.TeeX, h.HoleY-h.TeeY)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.nowMS += int64(g.deltaMS)
	g.modeMS += g.deltaMS

	switch g.mode {
	case ModeAttract:
		g.stepAttract(in)
	case ModeHoleStart:
		g.stepHoleStart(in)
	case ModeAim:
		g.stepAim(in)
	case ModePower:
		g.stepPower(in)
	case ModeRolling:
		g.stepRolling()
	case ModeSunk:
		g.stepSunk(in)
	case ModeScorecard:
		g.stepScorecard(in)
	case ModeRoundEnd:
		g.stepRoundEnd(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepAttract(in core.InputFrame) {
	if in.Any(core.ActionConfirm, core.ActionSwing, core.ActionUp,
		core.ActionDown, core.ActionAimLeft, core.ActionAimRight) {
		g.enterHole(0)
		g.setMode(ModeHoleStart)
	}
}

func (g *Game) stepHoleStart(in core.InputFrame) {
	if g.modeMS >= g.golf.Timing.HoleBannerMS ||
		in.Has(core.ActionConfirm) || in.Has(core.ActionSwing) {
		g.setMode(ModeAim)
	}
}

func (g *Game) stepAim(in core.InputFrame) {
	switch {
	case in.Has(core.ActionAimLeft):
		g.aimWD = geom.Wrap(g.aimWD - g.aimStep(core.ActionAimLeft))
		g.lastAim = core.ActionAimLeft
	case in.Has(core.ActionAimRight):
		g.aimWD = geom.Wrap(g.aimWD + g.aimStep(core.ActionAimRight))
		g.lastAim = core.ActionAimRight
	default:
		g.lastAim = core.ActionNone
	}

	if in.Has(core.ActionSwing) || in.Has(core.ActionConfirm) {
		g.setMode(ModePower)
		return
	}
	if in.Has(core.ActionScorecard) {
		g.peeking = true
		g.setMode(ModeScorecard)
		return
	}
	if g.practice && in.Has(core.ActionRestart) {
		g.enterHole(g.holeIndex)
		g.setMode(ModeHoleStart)
	}
}

// aimStep picks the aim increment, switching to the coarse step while the
// same direction repeats.
func (g *Game) aimStep(a core.Action) int {
	if g.lastAim == a {
		return g.golf.Aim.FastStepWD
	}
	return g.golf.Aim.StepWD
}

func (g *Game) stepPower(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.setMode(ModeAim)
		return
	}
	if in.Has(core.ActionSwing) || in.Has(core.ActionConfirm) {
		g.shoot()
	}
}

// powerFracF10 returns the meter position in [0,1024], sweeping
// min->max->min over the configured period.
func (g *Game) powerFracF10() int {
	period := g.golf.Power.SweepMS
	half := period / 2
	phase := g.modeMS % period
	if phase < half {
		return phase * 1024 / half
	}
	return (period - phase) * 1024 / half
}

// shoot strikes the ball with the meter's current power.
func (g *Game) shoot() {
	p := g.golf.Power
	vF10 := p.MinSpeedF10 + ((p.MaxSpeedF10-p.MinSpeedF10)*g.powerFracF10())>>10
	g.strokes[g.holeIndex]++
	g.ball.UpdateLastShot()
	g.ball.ResetVelocityWDF20(g.aimWD, vF10<<10)
	g.autosave()
	g.setMode(ModeRolling)
}

func (g *Game) stepRolling() {
	g.ball.Advance(g.deltaMS, g.trCollide, &g.pbCollide, g.hole().Data)
	if !g.ball.Stopped() {
		return
	}
	switch {
	case g.ball.InHole():
		g.setMode(ModeSunk)
	case g.ball.InWater():
		// Back to where the shot was taken, no penalty stroke.
		g.ball.MoveToLastShot()
		g.setMode(ModeAim)
	default:
		g.setMode(ModeAim)
	}
}

func (g *Game) stepSunk(in core.InputFrame) {
	if g.modeMS >= g.golf.Timing.SunkBannerMS ||
		in.Has(core.ActionConfirm) || in.Has(core.ActionSwing) {
		if g.practice {
			g.attempts = append(g.attempts, g.strokes[g.holeIndex])
		}
		g.setMode(ModeScorecard)
	}
}

func (g *Game) stepScorecard(in core.InputFrame) {
	if g.peeking {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionSwing) ||
			in.Has(core.ActionScorecard) || in.Has(core.ActionBack) {
			g.peeking = false
			g.setMode(ModeAim)
		}
		return
	}
	if !in.Has(core.ActionConfirm) && !in.Has(core.ActionSwing) {
		return
	}
	if g.practice {
		// Replay the same hole.
		g.strokes[g.holeIndex] = 0
		g.enterHole(g.holeIndex)
		g.setMode(ModeHoleStart)
		return
	}
	if g.holeIndex+1 < len(g.holes) {
		g.enterHole(g.holeIndex + 1)
		g.autosave()
		g.setMode(ModeHoleStart)
		return
	}
	if g.OnRoundDone != nil {
		g.OnRoundDone(g.Strokes(), g.parTotal())
	}
	g.setMode(ModeRoundEnd)
}

func (g *Game) stepRoundEnd(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionSwing) {
		g.over = true
	}
}

func (g *Game) autosave() {
	if g.practice || g.OnStroke == nil {
		return
	}
	g.OnStroke(g.holeIndex, g.Strokes())
}

func (g *Game) parTotal() int {
	total := 0
	for _, h := range g.holes {
		total += h.Meta.Par
	}
	return total
}

func (g *Game) totalStrokes() int {
	total := 0
	for _, n := range g.strokes {
		total += n
	}
	return total
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		HoleIndex:   g.holeIndex,
		HoleStrokes: g.strokes[g.holeIndex],
		Total:       g.totalStrokes(),
		Over:        g.over,
		Paused:      g.paused,
	}
}
