// Package physics advances the golf ball against rasterized course
// geometry. All math is integer fixed point, so a given sequence of shots
// and timesteps plays out identically everywhere.
package physics

import (
	"github.com/greensward/tinygolf/internal/geom"
	"github.com/greensward/tinygolf/internal/level"
	"github.com/greensward/tinygolf/internal/raster"
	"github.com/greensward/tinygolf/internal/scene"
)

// Ball dimensions. Diameters assumed odd.
const (
	BallDiameter    = 5
	BallRadiusFloor = 2

	HoleDiameter         = 9
	HoleRadiusFloor      = 4
	holeRadiusSqF20      = 21233664
	holeSlowF20          = 10240
	holeAngDeflect       = 60
	holeMaxSpeedEnterF10 = 110
)

// Friction and slope coefficients, applied per ms of contact.
const (
	coeffGrassF20 = 15
	coeffSandF20  = 100
	subtrWallF20  = 24000
	coeffSlopeF20 = 128
)

// Stopped-detection tuning.
const (
	coeffA           = 3
	deltaWStoppedF10 = 1024
	msBeforeStopped  = 500
	msBeforeSink     = 100
)

// Ball is the physics state of the ball, plus the hole it is played toward.
// It operates on outside scene geometry through a dedicated collision
// transform and payload buffer.
type Ball struct {
	xwF10, ywF10 int

	// Velocity as angle (wrapped degrees) and speed (world units per ms).
	vAngleWD   int
	vWPerMsF20 int

	// Chunk indices of up to two edges contacted last timestep, or -1.
	contact0 int
	contact1 int

	// Layer(s) the ball currently occupies.
	maskLayer int

	// Water contact tracking and the reset-to position.
	waterMS       int
	inWater       bool
	xwLastShotF10 int
	ywLastShotF10 int

	// Hole placement and the ball's status relative to it.
	xwHoleF10      int
	ywHoleF10      int
	onSand         bool
	inHole         bool
	ignoreHoleLine bool

	// Done-moving tracking.
	isStopped         bool
	msBelowStopThresh int
	xwExpAvgF10       int
	ywExpAvgF10       int
}

// NewBall returns a ball occupying every layer, at rest at the origin.
func NewBall() *Ball {
	return &Ball{maskLayer: 0xf, contact0: -1, contact1: -1}
}

// PositionF10 returns the ball's world position.
func (b *Ball) PositionF10() (x, y int) { return b.xwF10, b.ywF10 }

// HolePositionF10 returns the hole's world position.
func (b *Ball) HolePositionF10() (x, y int) { return b.xwHoleF10, b.ywHoleF10 }

// VelocityWD returns the velocity angle in wrapped degrees.
func (b *Ball) VelocityWD() int { return b.vAngleWD }

// SpeedF20 returns the speed in world units per ms.
func (b *Ball) SpeedF20() int { return b.vWPerMsF20 }

// Stopped reports whether the ball has come to rest.
func (b *Ball) Stopped() bool { return b.isStopped }

// InWater reports whether the ball sank.
func (b *Ball) InWater() bool { return b.inWater }

// InHole reports whether the ball entered the hole.
func (b *Ball) InHole() bool { return b.inHole }

// OnSand reports whether the ball touched sand last timestep.
func (b *Ball) OnSand() bool { return b.onSand }

// MaskLayer returns the layer(s) the ball currently occupies.
func (b *Ball) MaskLayer() int { return b.maskLayer }

// SetMaskLayer sets the layer(s) the ball occupies.
func (b *Ball) SetMaskLayer(mask int) { b.maskLayer = mask }

// UpdateLastShot records the current position as the one to restore after a
// water penalty.
func (b *Ball) UpdateLastShot() {
	b.xwLastShotF10 = b.xwF10
	b.ywLastShotF10 = b.ywF10
}

// MoveToLastShot returns the ball to where its last shot was taken.
func (b *Ball) MoveToLastShot() {
	b.xwF10 = b.xwLastShotF10
	b.ywF10 = b.ywLastShotF10
	b.resetBall()
}

func (b *Ball) setWaterStatus(waterMS int) {
	b.waterMS = waterMS
	if waterMS > msBeforeSink {
		b.inWater = true
		b.isStopped = true
	}
}

func (b *Ball) resetIsStopped() {
	b.isStopped = false
	b.msBelowStopThresh = 0
	// Bias exp avg away from the ball to prolong the animation.
	b.xwExpAvgF10 = b.xwF10 + 4096
	b.ywExpAvgF10 = b.ywF10 + 4096
}

func (b *Ball) resetBall() {
	b.contact0 = -1
	b.contact1 = -1
	b.inHole = false
	b.ignoreHoleLine = false
	b.isStopped = false
	b.msBelowStopThresh = 0
	b.xwExpAvgF10 = b.xwF10
	b.ywExpAvgF10 = b.ywF10
	b.waterMS = 0
	b.inWater = false
	b.xwLastShotF10 = b.xwF10
	b.ywLastShotF10 = b.ywF10
}

// ResetLocationF10 teleports the ball and clears all transient state.
func (b *Ball) ResetLocationF10(xwF10, ywF10 int) {
	b.xwF10 = xwF10
	b.ywF10 = ywF10
	b.onSand = false
	b.resetBall()
}

// SetHoleLocationF10 places the hole.
func (b *Ball) SetHoleLocationF10(xwF10, ywF10 int) {
	b.xwHoleF10 = xwF10
	b.ywHoleF10 = ywF10
	b.inHole = false
	b.ignoreHoleLine = false
}

func (b *Ball) setVelocityWDF20(angleWD, wPerMsF20 int) {
	b.vAngleWD = geom.Wrap(angleWD)
	b.vWPerMsF20 = wPerMsF20
}

// ResetVelocityWDF20 strikes the ball: sets velocity and clears transient
// state so the new roll is tracked from scratch.
func (b *Ball) ResetVelocityWDF20(angleWD, wPerMsF20 int) {
	b.setVelocityWDF20(angleWD, wPerMsF20)
	b.resetBall()
}

func (b *Ball) setVelocityVectorF10(xwPerMsF10, ywPerMsF10 int) {
	if xwPerMsF10 == 0 && ywPerMsF10 == 0 {
		// Preserve orientation, zero out speed.
		b.setVelocityWDF20(b.vAngleWD, 0)
		return
	}
	angleWD := geom.VectorAngleWD(xwPerMsF10, ywPerMsF10)
	normSqF20 := xwPerMsF10*xwPerMsF10 + ywPerMsF10*ywPerMsF10
	b.setVelocityWDF20(angleWD, geom.SqrtInt(normSqF20)<<10)
}

// LocationAfterF10 projects the ball's position deltaMS into the future at
// the current velocity, ignoring the course.
func (b *Ball) LocationAfterF10(deltaMS int) (x, y int) {
	wPerMsF10 := (b.vWPerMsF20 + 0x200) >> 10
	deltaWF10 := wPerMsF10 * deltaMS
	dx := (geom.CosF10(b.vAngleWD)*deltaWF10 + 0x200) >> 10
	dy := (geom.SinF10(b.vAngleWD)*deltaWF10 + 0x200) >> 10
	return b.xwF10 + dx, b.ywF10 + dy
}

// maybeAdvanceToHoleInteraction handles the timestep when the ball is near
// or in the hole. Returns true when it owned the timestep.
func (b *Ball) maybeAdvanceToHoleInteraction(deltaMS int) bool {
	xwF10, ywF10 := b.xwF10, b.ywF10
	xwHoleF10, ywHoleF10 := b.xwHoleF10, b.ywHoleF10
	vAngleWD := b.vAngleWD
	vWPerMsF20 := b.vWPerMsF20

	if b.inHole {
		// Animate the ball towards the hole center. Is-stopped detection
		// eventually fires and ends this.
		aF10 := coeffA * deltaMS
		b.xwF10 = (aF10*xwHoleF10 + (1024-aF10)*xwF10 + 0x200) >> 10
		b.ywF10 = (aF10*ywHoleF10 + (1024-aF10)*ywF10 + 0x200) >> 10
		return true
	}

	absDxF10 := xwHoleF10 - xwF10
	if absDxF10 < 0 {
		absDxF10 = -absDxF10
	}
	absDyF10 := ywHoleF10 - ywF10
	if absDyF10 < 0 {
		absDyF10 = -absDyF10
	}

	holeRadiusF10 := HoleDiameter << 9
	wRangeF10 := (vWPerMsF20*deltaMS + 0x200) >> 10
	if absDxF10 > holeRadiusF10 || absDyF10 > holeRadiusF10 {
		// Not starting near the hole. Re-enable hole-line intersection.
		b.ignoreHoleLine = false
		if absDxF10-wRangeF10 > holeRadiusF10 ||
			absDyF10-wRangeF10 > holeRadiusF10 {
			return false
		}
	} else if vWPerMsF20 < holeSlowF20 {
		// Close and slow: roll in once past the lip.
		distSqF20 := absDxF10*absDxF10 + absDyF10*absDyF10
		if distSqF20 < holeRadiusSqF20 {
			b.inHole = true
			b.resetIsStopped() // let the animation to center play
			return true
		}
	}

	if b.ignoreHoleLine || vWPerMsF20 < holeSlowF20 {
		return false
	}

	// Moving too fast to roll in unconditionally and newly close to the
	// hole. Inspect the crossing of the "hole line" perpendicular to the
	// velocity through the hole center.
	vxUnitF10 := geom.CosF10(vAngleWD)
	vyUnitF10 := geom.SinF10(vAngleWD)
	distSignedF10 := ((xwHoleF10-xwF10)*vxUnitF10 +
		(ywHoleF10-ywF10)*vyUnitF10 + 0x200) >> 10
	if distSignedF10 < 0 || distSignedF10 > wRangeF10 {
		return false
	}
	xwF10 += (distSignedF10*vxUnitF10 + 0x200) >> 10
	ywF10 += (distSignedF10*vyUnitF10 + 0x200) >> 10
	absDxF10 = xwHoleF10 - xwF10
	if absDxF10 < 0 {
		absDxF10 = -absDxF10
	}
	absDyF10 = ywHoleF10 - ywF10
	if absDyF10 < 0 {
		absDyF10 = -absDyF10
	}
	if absDxF10 > holeRadiusF10 || absDyF10 > holeRadiusF10 {
		return false
	}
	distSqF20 := absDxF10*absDxF10 + absDyF10*absDyF10
	if distSqF20 > holeRadiusSqF20 {
		return false
	}

	// The crossing lands within the hole; this helper owns the timestep.
	// Advance to the crossing and shed speed as if crossing sand.
	b.xwF10 = xwF10
	b.ywF10 = ywF10
	b.contact0 = -1
	b.contact1 = -1
	b.ignoreHoleLine = true
	msSand := 0
	if wRangeF10 > 0 {
		msSand = (distSignedF10 * deltaMS) / wRangeF10
	}
	vWPerMsF20 -= coeffSandF20 * msSand
	if vWPerMsF20 < 0 {
		vWPerMsF20 = 0
	}
	b.setVelocityWDF20(vAngleWD, vWPerMsF20)

	// Enter or deflect, as a function of distance and speed.
	fracMaxEntryF10 := vWPerMsF20 / holeMaxSpeedEnterF10
	distF10 := geom.SqrtInt(distSqF20)
	fracCenterF10 := 1024 - ((distF10 << 1) / HoleDiameter)
	if fracCenterF10 > fracMaxEntryF10 {
		b.inHole = true
		b.resetIsStopped()
		return true
	}
	fracDeflF10 := 1024 - (fracMaxEntryF10 << 1) + fracCenterF10
	if fracDeflF10 < 0 {
		// Too far towards the lip to deflect.
		return true
	}
	deltaAng := (fracDeflF10*holeAngDeflect + 0x200) >> 10
	dot := vyUnitF10*(xwF10-xwHoleF10) - vxUnitF10*(ywF10-ywHoleF10)
	if dot > 0 {
		vAngleWD = geom.Wrap(vAngleWD + deltaAng)
	} else {
		vAngleWD = geom.Wrap(vAngleWD - deltaAng)
	}
	b.setVelocityWDF20(vAngleWD, vWPerMsF20)
	return true
}

// advanceToCollisionAxisAligned rasterizes the course in a camera that maps
// the ball's heading to +y, scans the strip the ball sweeps for surface
// contact and up to two collision edges, advances to the first collision,
// and applies friction, slopes, triggers, and water.
func (b *Ball) advanceToCollisionAxisAligned(deltaMS int, tr *scene.Transform, pb *raster.PayloadBuffer, cd *level.ChunkData) {
	maskLayer := b.maskLayer
	xwF10, ywF10 := b.xwF10, b.ywF10
	vAngleWD := b.vAngleWD
	vWPerMsF20 := b.vWPerMsF20

	deltaWF10 := (vWPerMsF20*deltaMS + 0x200) >> 10
	deltaW := (deltaWF10 + 0x200) >> 10

	payloadDimY := deltaW + 1 + 3*BallRadiusFloor
	pb.SetDimensions(BallDiameter, payloadDimY)
	tr.SetScaleF10(1024)
	tr.SetAngleWD(90 - vAngleWD)
	tr.MapWorldToScreenF10(xwF10, ywF10,
		BallRadiusFloor<<10, BallRadiusFloor<<10)
	tr.Rasterize(pb, maskLayer)

	// Contact time is split into deltaW+1 buckets: the starting footprint,
	// then each additional row the ball reaches over deltaMS.
	countGrass, countSand, countWater := 0, 0, 0
	touchGrass, touchSand := false, false
	countWaterRow := 0
	signedCountSlopeX, signedCountSlopeY := 0, 0
	signedIncrSlopeX, signedIncrSlopeY := 0, 0

	scanNoncollide := -1
	scanCollide0 := -1
	scanCollide1 := -1
	iRow := 0
	iPayloadRowStart := 0
	iRowEndScan := BallDiameter + deltaW // past last row to scan
	wToStep := deltaW                    // or less if a collision is found
	wToStepF10 := deltaWF10

	for iRow < iRowEndScan {
		for iOff := 0; iOff < BallDiameter; iOff++ {
			payload := int(pb.Buf[iPayloadRowStart+iOff])
			if payload&level.PayloadBitNonWall != 0 {
				region := payload & level.PayloadMaskLow
				switch region {
				case level.RegionFairway:
					touchGrass = true
				case level.RegionWater:
					countWaterRow++
				case level.RegionSandtrap:
					touchSand = true
				case level.RegionSlopeUp:
					signedIncrSlopeY = -1
					touchGrass = true
				case level.RegionSlopeDown:
					signedIncrSlopeY = 1
					touchGrass = true
				case level.RegionSlopeLeft:
					signedIncrSlopeX = -1
					touchGrass = true
				case level.RegionSlopeRight:
					signedIncrSlopeX = 1
					touchGrass = true
				}
				// Triggers reset the layer mask; last one wins.
				if trigger := payload >> level.PayloadShiftTrigger; trigger != 0 {
					maskLayer = trigger
				}
				continue
			}
			// Edge pixel carrying a chunk index.
			normalWD := int(cd.NormalWD[payload])
			if geom.VelocityHits(vAngleWD, normalWD) {
				if scanCollide0 < 0 {
					// First collision seen: set the step and narrow the scan.
					scanCollide0 = payload
					if iRow <= BallDiameter {
						// In or just past the starting footprint. Hold
						// position but check a few more rows for a second
						// edge to include in the response.
						wToStep = 0
						wToStepF10 = 0
						iRowEndScan = BallDiameter + BallRadiusFloor
					} else {
						// Advance to the last collision-free footprint.
						wToStep = iRow - BallDiameter
						wToStepF10 = wToStep << 10
						iRowEndScan = iRow + BallRadiusFloor + 1
					}
				} else if payload != scanCollide0 && scanCollide1 < 0 {
					scanCollide1 = payload
				}
			} else if scanNoncollide < 0 {
				scanNoncollide = payload
			}
		}
		if iRow >= BallDiameter-1 && (iRow-BallDiameter) < wToStep {
			// The ball's ending footprint includes or passes this row.
			if touchGrass {
				countGrass++
				touchGrass = false
			}
			if touchSand {
				countSand++
				touchSand = false
			}
			if countWaterRow > BallRadiusFloor {
				countWater++
			}
			countWaterRow = 0
			signedCountSlopeX += signedIncrSlopeX
			signedCountSlopeY += signedIncrSlopeY
			signedIncrSlopeX = 0
			signedIncrSlopeY = 0
		}
		iRow++
		iPayloadRowStart += BallDiameter
	}

	// Pick up to two contact edges, favoring ones opposing the velocity.
	contact0 := scanCollide0
	contact1 := scanCollide1
	if contact0 >= 0 && contact1 < 0 {
		contact1 = scanNoncollide // may still be -1
	}
	b.contact0 = contact0
	b.contact1 = contact1

	if wToStepF10 > 0 {
		xwF10 += (geom.CosF10(vAngleWD)*wToStepF10 + 0x200) >> 10
		ywF10 += (geom.SinF10(vAngleWD)*wToStepF10 + 0x200) >> 10
		b.xwF10 = xwF10
		b.ywF10 = ywF10
	}

	// Approximate ms in contact with each region and apply friction.
	denom := deltaW + 1
	msGrass := (deltaMS * countGrass) / denom
	msSand := (deltaMS * countSand) / denom
	vWPerMsF20 -= coeffGrassF20 * msGrass
	vWPerMsF20 -= coeffSandF20 * msSand
	if vWPerMsF20 < 0 {
		vWPerMsF20 = 0
	}
	b.setVelocityWDF20(vAngleWD, vWPerMsF20)

	b.maskLayer = maskLayer
	if signedCountSlopeX != 0 || signedCountSlopeY != 0 {
		wPerMsF10 := (vWPerMsF20 + 0x200) >> 10
		xwPerMsF10 := (geom.CosF10(vAngleWD)*wPerMsF10 + 0x200) >> 10
		ywPerMsF10 := (geom.SinF10(vAngleWD)*wPerMsF10 + 0x200) >> 10
		signedMsSlopeX := (deltaMS * signedCountSlopeX) / denom
		signedMsSlopeY := (deltaMS * signedCountSlopeY) / denom
		xwPerMsF10 += (signedMsSlopeX*coeffSlopeF20 + 0x200) >> 10
		ywPerMsF10 += (signedMsSlopeY*coeffSlopeF20 + 0x200) >> 10
		b.setVelocityVectorF10(xwPerMsF10, ywPerMsF10)
	}
	b.onSand = countSand > 0

	// Water: position won't make perfect sense, but close enough.
	if countWater == denom {
		b.setWaterStatus(b.waterMS + deltaMS)
	} else {
		b.setWaterStatus((deltaMS * countWater) / denom)
	}
}

// maybeResolveCollision reflects the velocity off whichever contact edges
// still oppose it, shedding wall speed once for any hit.
func (b *Ball) maybeResolveCollision(cd *level.ChunkData) {
	vAngleWD := b.vAngleWD
	vWPerMsF20 := b.vWPerMsF20
	normal0WD, normal1WD := 0, 0
	isCollision0, isCollision1 := false, false
	if b.contact0 >= 0 {
		normal0WD = int(cd.NormalWD[b.contact0])
		isCollision0 = geom.VelocityHits(vAngleWD, normal0WD)
	}
	if b.contact1 >= 0 {
		normal1WD = int(cd.NormalWD[b.contact1])
		isCollision1 = geom.VelocityHits(vAngleWD, normal1WD)
	}
	if isCollision0 || isCollision1 {
		vWPerMsF20 -= subtrWallF20
		if vWPerMsF20 < 0 {
			vWPerMsF20 = 0
		}
	}
	switch {
	case isCollision0 && isCollision1:
		// Reflect about the endpoint normal shared by the two edges.
		vAngleWD = geom.Reflect(vAngleWD,
			geom.EndpointNormal(normal0WD, normal1WD))
		b.setVelocityWDF20(vAngleWD, vWPerMsF20)
	case isCollision0:
		vAngleWD = geom.Reflect(vAngleWD, normal0WD)
		b.setVelocityWDF20(vAngleWD, vWPerMsF20)
	case isCollision1:
		vAngleWD = geom.Reflect(vAngleWD, normal1WD)
		b.setVelocityWDF20(vAngleWD, vWPerMsF20)
	}
}

// updateStoppedTracking keeps a timestep-weighted exponential average of the
// ball's position and marks the ball stopped once it hugs the average long
// enough.
func (b *Ball) updateStoppedTracking(deltaMS int) {
	aF10 := coeffA * deltaMS
	b.xwExpAvgF10 = (aF10*b.xwF10 + (1024-aF10)*b.xwExpAvgF10 + 0x200) >> 10
	b.ywExpAvgF10 = (aF10*b.ywF10 + (1024-aF10)*b.ywExpAvgF10 + 0x200) >> 10

	absDxF10 := b.xwF10 - b.xwExpAvgF10
	if absDxF10 < 0 {
		absDxF10 = -absDxF10
	}
	absDyF10 := b.ywF10 - b.ywExpAvgF10
	if absDyF10 < 0 {
		absDyF10 = -absDyF10
	}
	if absDxF10 < deltaWStoppedF10 && absDyF10 < deltaWStoppedF10 {
		b.msBelowStopThresh += deltaMS
		if b.msBelowStopThresh > msBeforeStopped {
			b.isStopped = true
		}
	} else {
		b.msBelowStopThresh = 0
	}
}

// Advance moves the ball through one timestep of deltaMS against the course
// geometry, resolving up to one collision so the ball exits the step in its
// post-bounce state.
func (b *Ball) Advance(deltaMS int, tr *scene.Transform, pb *raster.PayloadBuffer, cd *level.ChunkData) {
	if b.isStopped {
		return
	}
	if !b.maybeAdvanceToHoleInteraction(deltaMS) {
		b.advanceToCollisionAxisAligned(deltaMS, tr, pb, cd)
		b.maybeResolveCollision(cd)
	}
	b.updateStoppedTracking(deltaMS)
}
