package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greensward/tinygolf/internal/level"
	"github.com/greensward/tinygolf/internal/raster"
	"github.com/greensward/tinygolf/internal/scene"
)

// buildRange returns a walled fairway box from (10,10) to (200,200), wound
// so the wall normals point into the box, with any extra loops layered on.
func buildRange(t *testing.T, extra func(b *level.Builder)) *level.ChunkData {
	t.Helper()
	b := level.NewBuilder()
	require.NoError(t, b.AddLoop(level.RegionFairway, 0x1, 0))
	b.AddEdges([]int16{10, 10, 10, 200, 200, 200, 200, 10}, level.RegionWall)
	if extra != nil {
		extra(b)
	}
	return b.Build()
}

// strip adds a full-height region band between the two x coordinates.
func strip(b *level.Builder, region int, x0, x1 int16) {
	if err := b.AddLoop(region, 0x1, 0); err != nil {
		panic(err)
	}
	b.AddEdges([]int16{x0, 10, x0, 200, x1, 200, x1, 10}, level.RegionEmpty)
}

type sim struct {
	ball *Ball
	tr   *scene.Transform
	pb   raster.PayloadBuffer
	cd   *level.ChunkData
}

func newSim(cd *level.ChunkData) *sim {
	return &sim{ball: NewBall(), tr: scene.NewTransform(cd), cd: cd}
}

func (s *sim) step(deltaMS int) {
	s.ball.Advance(deltaMS, s.tr, &s.pb, s.cd)
}

// runUntilStopped steps the simulation and fails the test if the ball never
// comes to rest.
func (s *sim) runUntilStopped(t *testing.T, deltaMS, maxSteps int) int {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		s.step(deltaMS)
		if s.ball.Stopped() {
			return i + 1
		}
	}
	t.Fatal("ball never stopped")
	return 0
}

func TestRollStraightOnGrass(t *testing.T) {
	cd := buildRange(t, nil)
	s := newSim(cd)
	s.ball.ResetLocationF10(60<<10, 100<<10)
	s.ball.SetHoleLocationF10(190<<10, 30<<10)
	s.ball.ResetVelocityWDF20(0, 30<<10)
	s.runUntilStopped(t, 30, 500)

	x, y := s.ball.PositionF10()
	assert.Greater(t, x, 65<<10, "ball should roll forward")
	assert.Less(t, x, 200<<10, "ball should stay short of the far wall")
	assert.InDelta(t, 100<<10, y, 2<<10, "ball should hold its line")
	assert.False(t, s.ball.InWater())
	assert.False(t, s.ball.InHole())
	assert.Zero(t, s.ball.SpeedF20())
}

func TestAdvanceIsDeterministic(t *testing.T) {
	run := func() (int, int) {
		s := newSim(buildRange(t, nil))
		s.ball.ResetLocationF10(60<<10, 100<<10)
		s.ball.SetHoleLocationF10(190<<10, 30<<10)
		s.ball.ResetVelocityWDF20(27, 45<<10)
		s.runUntilStopped(t, 16, 2000)
		return s.ball.PositionF10()
	}
	x0, y0 := run()
	x1, y1 := run()
	require.Equal(t, x0, x1)
	require.Equal(t, y0, y1)
}

func TestWallBounce(t *testing.T) {
	cd := buildRange(t, nil)
	s := newSim(cd)
	s.ball.ResetLocationF10(180<<10, 100<<10)
	s.ball.SetHoleLocationF10(30<<10, 30<<10)
	s.ball.ResetVelocityWDF20(0, 60<<10)

	bounced := false
	for i := 0; i < 500 && !s.ball.Stopped(); i++ {
		s.step(30)
		wd := s.ball.VelocityWD()
		if wd > 90 && wd < 270 {
			bounced = true
		}
	}
	require.True(t, s.ball.Stopped())
	assert.True(t, bounced, "ball should rebound off the far wall")

	x, y := s.ball.PositionF10()
	assert.Less(t, x, 200<<10)
	assert.Greater(t, x, 10<<10)
	assert.InDelta(t, 100<<10, y, 4<<10)
}

func TestSandSlowsTheBall(t *testing.T) {
	shoot := func(cd *level.ChunkData) int {
		s := newSim(cd)
		s.ball.ResetLocationF10(60<<10, 100<<10)
		s.ball.SetHoleLocationF10(190<<10, 30<<10)
		s.ball.ResetVelocityWDF20(0, 40<<10)
		s.runUntilStopped(t, 30, 500)
		x, _ := s.ball.PositionF10()
		return x
	}
	grassOnly := shoot(buildRange(t, nil))
	withSand := shoot(buildRange(t, func(b *level.Builder) {
		strip(b, level.RegionSandtrap, 80, 160)
	}))
	assert.Less(t, withSand, grassOnly, "sand should cut the roll short")
}

func TestSandFlagsContact(t *testing.T) {
	cd := buildRange(t, func(b *level.Builder) {
		strip(b, level.RegionSandtrap, 80, 160)
	})
	s := newSim(cd)
	s.ball.ResetLocationF10(60<<10, 100<<10)
	s.ball.SetHoleLocationF10(190<<10, 30<<10)
	s.ball.ResetVelocityWDF20(0, 40<<10)
	s.runUntilStopped(t, 30, 500)
	assert.True(t, s.ball.OnSand())
}

func TestSlowRollDropsInHole(t *testing.T) {
	cd := buildRange(t, nil)
	s := newSim(cd)
	s.ball.ResetLocationF10(100<<10, 100<<10)
	s.ball.SetHoleLocationF10(120<<10, 100<<10)
	s.ball.ResetVelocityWDF20(0, 26<<10)
	s.runUntilStopped(t, 16, 2000)

	require.True(t, s.ball.InHole())
	x, y := s.ball.PositionF10()
	assert.InDelta(t, 120<<10, x, 2<<10, "ball should settle at the cup")
	assert.InDelta(t, 100<<10, y, 2<<10)
}

func TestFastRollSkipsHole(t *testing.T) {
	cd := buildRange(t, nil)
	s := newSim(cd)
	s.ball.ResetLocationF10(60<<10, 100<<10)
	s.ball.SetHoleLocationF10(80<<10, 100<<10)
	// Way over the entry speed: the ball blows past or lips out.
	s.ball.ResetVelocityWDF20(0, 130<<10)
	for i := 0; i < 20 && !s.ball.InHole(); i++ {
		s.step(16)
	}
	assert.False(t, s.ball.InHole())
	x, _ := s.ball.PositionF10()
	assert.Greater(t, x, 85<<10, "ball should carry past the cup")
}

func TestWaterSinksTheBall(t *testing.T) {
	cd := buildRange(t, func(b *level.Builder) {
		strip(b, level.RegionWater, 100, 160)
	})
	s := newSim(cd)
	s.ball.ResetLocationF10(60<<10, 100<<10)
	s.ball.SetHoleLocationF10(190<<10, 30<<10)
	s.ball.UpdateLastShot()
	s.ball.ResetVelocityWDF20(0, 40<<10)
	s.runUntilStopped(t, 30, 500)

	require.True(t, s.ball.InWater())
	x, _ := s.ball.PositionF10()
	assert.Greater(t, x, 100<<10, "ball should sink inside the water band")
	assert.Less(t, x, 160<<10)

	s.ball.MoveToLastShot()
	x, y := s.ball.PositionF10()
	assert.Equal(t, 60<<10, x)
	assert.Equal(t, 100<<10, y)
	assert.False(t, s.ball.InWater())
	assert.False(t, s.ball.Stopped())
}

func TestSlopeBendsTheRoll(t *testing.T) {
	cd := buildRange(t, func(b *level.Builder) {
		strip(b, level.RegionSlopeDown, 80, 160)
	})
	s := newSim(cd)
	s.ball.ResetLocationF10(60<<10, 100<<10)
	s.ball.SetHoleLocationF10(190<<10, 30<<10)
	s.ball.ResetVelocityWDF20(0, 40<<10)
	for i := 0; i < 40; i++ {
		s.step(30)
	}
	_, y := s.ball.PositionF10()
	assert.Greater(t, y, 101<<10, "downslope should pull the ball down-screen")
	wd := s.ball.VelocityWD()
	assert.True(t, wd > 0 && wd < 180, "velocity should tilt down-screen, got %d", wd)
}

func TestTriggerSwitchesLayer(t *testing.T) {
	b := level.NewBuilder()
	require.NoError(t, b.AddLoop(level.RegionFairway, 0x3, 0))
	b.AddEdges([]int16{10, 10, 10, 200, 200, 200, 200, 10}, level.RegionWall)
	require.NoError(t, b.AddLoop(level.RegionFairway, 0x3, 0x2))
	b.AddEdges([]int16{80, 10, 80, 200, 160, 200, 160, 10}, level.RegionEmpty)
	cd := b.Build()
	s := newSim(cd)
	s.ball.ResetLocationF10(60<<10, 100<<10)
	s.ball.SetHoleLocationF10(190<<10, 30<<10)
	s.ball.SetMaskLayer(0x1)
	s.ball.ResetVelocityWDF20(0, 30<<10)
	s.runUntilStopped(t, 30, 500)
	assert.Equal(t, 0x2, s.ball.MaskLayer())
}

func TestProjectedLocation(t *testing.T) {
	b := NewBall()
	b.ResetLocationF10(50<<10, 50<<10)
	b.ResetVelocityWDF20(0, 10<<10)
	x, y := b.LocationAfterF10(100)
	assert.Equal(t, (50<<10)+1000, x)
	assert.Equal(t, 50<<10, y)

	b.ResetVelocityWDF20(90, 10<<10)
	x, y = b.LocationAfterF10(100)
	assert.Equal(t, 50<<10, x)
	assert.Equal(t, (50<<10)+1000, y)
}

func TestStationaryBallStaysPut(t *testing.T) {
	cd := buildRange(t, nil)
	s := newSim(cd)
	s.ball.ResetLocationF10(100<<10, 100<<10)
	s.ball.SetHoleLocationF10(190<<10, 30<<10)
	s.ball.ResetVelocityWDF20(0, 0)
	s.runUntilStopped(t, 30, 100)
	x, y := s.ball.PositionF10()
	assert.Equal(t, 100<<10, x)
	assert.Equal(t, 100<<10, y)
}
