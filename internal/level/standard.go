package level

// CourseHole pairs hole metadata with decoded chunk data, ready to play.
// The built-in course ships in this form directly; baked courses reach it
// through Course.LoadAllHoles.
type CourseHole struct {
	Meta Hole
	Data *ChunkData
}

// Builtin returns the nine standard holes, geometry ready to play.
func Builtin() []CourseHole {
	return []CourseHole{
		buildOpening(),
		buildBoulder(),
		buildFork(),
		buildPlateau(),
		buildCrossing(),
		buildLagoon(),
		buildEddy(),
		buildHighBridge(),
		buildFinale(),
	}
}

func mustLoop(b *Builder, regionFill, maskLayer, maskTrigger int) {
	if err := b.AddLoop(regionFill, maskLayer, maskTrigger); err != nil {
		panic(err)
	}
}

func buildOpening() CourseHole {
	b := NewBuilder()

	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		81, 146, 85, 143, 89, 137, 94, 123, 101, 104, 112, 90, 119, 85, 126, 82,
		135, 81, 144, 81, 155, 83, 163, 90, 173, 101, 180, 109, 190, 115,
		200, 117, 212, 117, 223, 115, 231, 111, 236, 104, 238, 96, 238, 75,
		237, 57, 232, 42, 228, 36, 220, 30, 209, 24, 196, 20, 175, 18, 150, 19,
		127, 22, 100, 28, 80, 36, 62, 52, 52, 72, 44, 91, 41, 99, 40, 106,
		40, 130, 42, 137, 50, 143, 56, 146, 68, 147,
	}, RegionWall)

	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		142, 62, 132, 63, 123, 66, 113, 71, 110, 77, 110, 85, 112, 90, 119, 85,
		126, 82, 135, 81, 144, 81, 155, 83, 163, 90, 165, 86, 166, 80, 166, 75,
		164, 70, 159, 65, 152, 62,
	}, RegionEmpty)

	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		211, 48, 220, 48, 228, 46, 232, 42, 228, 36, 220, 30, 209, 24, 196, 20,
		193, 25, 191, 32, 191, 37, 193, 42, 197, 45, 204, 47,
	}, RegionEmpty)

	return CourseHole{
		Meta: Hole{Name: "Opening", Par: 3, TeeMaskLayer: 0x1,
			TeeX: 68, TeeY: 129, HoleX: 205, HoleY: 88},
		Data: b.Build(),
	}
}

func buildBoulder() CourseHole {
	b := NewBuilder()

	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		308, 161, 335, 164, 362, 164,
		375, 162, 383, 159, 388, 155, 391, 145, 391, 118, 390, 99, 387, 82,
		381, 62, 373, 41, 365, 25, 357, 17, 344, 12, 332, 10, 321, 11, 315, 13,
		312, 16, 309, 22, 306, 37, 307, 58, 307, 73, 304, 88, 301, 96, 296, 100,
		289, 101, 277, 101, 257, 98, 238, 92, 219, 83, 207, 75, 199, 67,
		192, 63, 184, 60, 172, 59, 162, 60, 157, 63, 153, 67, 151, 72, 151, 80,
		153, 89, 160, 101, 169, 111, 182, 120, 209, 133, 236, 143, 261, 150,
	}, RegionWall)

	// CW loop cuts a rock out of the fairway above.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		344, 96, 350, 100, 357, 106, 360, 112, 362, 121, 361, 129, 359, 134,
		355, 137, 347, 138, 336, 137, 330, 135, 323, 131, 316, 127, 313, 124,
		313, 122, 314, 119, 317, 114, 323, 105, 328, 99, 331, 96, 336, 95,
	}, RegionWall)

	return CourseHole{
		Meta: Hole{Name: "Boulder", Par: 3, TeeMaskLayer: 0x1,
			TeeX: 182, TeeY: 92, HoleX: 337, HoleY: 61},
		Data: b.Build(),
	}
}

func buildFork() CourseHole {
	b := NewBuilder()

	lu := []int16{151, 45}
	ld := []int16{149, 56}
	ru := []int16{229, 70}
	rd := []int16{227, 82}
	cu := []int16{190, 56}
	cdv := []int16{191, 70}
	cl := []int16{173, 63}
	cr := []int16{204, 63}

	bl1 := []int16{180, 75}
	bl2 := []int16{165, 67}
	bl3 := []int16{165, 59}
	bl4 := []int16{180, 51}
	br1 := []int16{201, 76}
	br2 := []int16{211, 67}
	br3 := []int16{211, 60}
	br4 := []int16{202, 51}

	fairLeftOuter := []int16{
		131, 47, 115, 49, 105, 50, 99, 53, 95, 57, 93, 62, 94, 67, 96, 71,
		100, 73, 111, 75, 126, 77, 141, 80, 154, 81, 169, 79,
	}
	fairLeftInner := []int16{
		157, 69, 149, 70, 141, 69, 131, 66, 123, 62, 131, 59, 141, 57,
	}
	fairRightOuter := []int16{
		242, 81, 249, 82, 254, 85, 257, 89, 259, 96, 261, 104, 265, 108,
		271, 110, 277, 110, 283, 107, 287, 101, 289, 88, 288, 75, 285, 65,
		284, 60, 281, 56, 276, 52, 266, 51, 252, 49, 239, 46,
		227, 45, 212, 47,
	}
	fairRightInner := []int16{
		220, 58, 229, 57, 237, 58, 245, 60, 252, 63, 245, 67, 237, 69,
	}

	// Left fairway before buffer; triggers the top path.
	mustLoop(b, RegionFairway, 0x1, 0x5)
	b.AddEdges(fairLeftOuter, RegionWall)
	b.AddEdges(bl1, RegionEmpty)
	b.AddEdges(bl2, RegionWall)
	b.AddEdges(fairLeftInner, RegionWall)
	b.AddEdges(ld, RegionEmpty)
	b.AddEdges(lu, RegionWall)

	// Left fairway buffer, no trigger.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges(cdv, RegionEmpty)
	b.AddEdges(cl, RegionWall)
	b.AddEdges(bl2, RegionEmpty)
	b.AddEdges(bl1, RegionWall)

	// Left ramp before buffer; triggers the bottom path.
	mustLoop(b, RegionFairway, 0x1, 0x3)
	b.AddEdges([]int16{157, 57}, RegionWall)
	b.AddEdges(bl3, RegionEmpty)
	b.AddEdges(bl4, RegionWall)
	b.AddEdges([]int16{168, 47}, RegionWall)
	b.AddEdges(lu, RegionEmpty)
	b.AddEdges(ld, RegionWall)

	// Left ramp buffer, no trigger.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges(cu, RegionWall)
	b.AddEdges(bl4, RegionEmpty)
	b.AddEdges(bl3, RegionWall)
	b.AddEdges(cl, RegionEmpty)

	// Top middle, visible when taking the top path.
	mustLoop(b, RegionFairway, 0x4, 0)
	b.AddEdges(cdv, RegionWall)
	b.AddEdges(cr, RegionEmpty)
	b.AddEdges(cu, RegionWall)
	b.AddEdges(cl, RegionEmpty)

	// Bottom middle, visible when taking the bottom path.
	mustLoop(b, RegionFairway, 0x2, 0)
	b.AddEdges(cdv, RegionEmpty)
	b.AddEdges(cr, RegionWall)
	b.AddEdges(cu, RegionEmpty)
	b.AddEdges(cl, RegionWall)

	// Right fairway before buffer; triggers the top path.
	mustLoop(b, RegionFairway, 0x1, 0x5)
	b.AddEdges(fairRightOuter, RegionWall)
	b.AddEdges(br4, RegionEmpty)
	b.AddEdges(br3, RegionWall)
	b.AddEdges(fairRightInner, RegionWall)
	b.AddEdges(ru, RegionEmpty)
	b.AddEdges(rd, RegionWall)

	// Right fairway buffer, no trigger.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges(cu, RegionEmpty)
	b.AddEdges(cr, RegionWall)
	b.AddEdges(br3, RegionEmpty)
	b.AddEdges(br4, RegionWall)

	// Right ramp before buffer; triggers the bottom path.
	mustLoop(b, RegionFairway, 0x1, 0x3)
	b.AddEdges([]int16{220, 69}, RegionWall)
	b.AddEdges(br2, RegionEmpty)
	b.AddEdges(br1, RegionWall)
	b.AddEdges([]int16{213, 80}, RegionWall)
	b.AddEdges(rd, RegionEmpty)
	b.AddEdges(ru, RegionWall)

	// Right ramp buffer, no trigger.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges(cdv, RegionWall)
	b.AddEdges(br1, RegionEmpty)
	b.AddEdges(br2, RegionWall)
	b.AddEdges(cr, RegionEmpty)

	return CourseHole{
		Meta: Hole{Name: "Fork", Par: 3, TeeMaskLayer: 0x5,
			TeeX: 105, TeeY: 62, HoleX: 275, HoleY: 96},
		Data: b.Build(),
	}
}

func buildPlateau() CourseHole {
	b := NewBuilder()

	// Right fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		149, 55, 155, 66, 161, 81, 165, 88, 171, 92, 178, 95, 186, 96,
		193, 94, 198, 90, 201, 85, 202, 78, 200, 69, 195, 56,
	}, RegionWall)
	b.AddEdges([]int16{188, 45, 171, 52}, RegionEmpty)

	// Sloped middle.
	mustLoop(b, RegionSlopeDown, 0x1, 0)
	b.AddEdges([]int16{
		188, 45, 176, 31, 161, 20, 139, 11, 121, 10, 98, 15, 84, 23, 75, 31,
	}, RegionWall)
	b.AddEdges([]int16{67, 41, 86, 50}, RegionEmpty)
	b.AddEdges([]int16{
		108, 54, 111, 49, 115, 45, 121, 42, 128, 41, 135, 43, 142, 47,
	}, RegionWall)
	b.AddEdges([]int16{149, 55, 171, 52}, RegionEmpty)

	// Left fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		67, 41, 55, 57, 48, 69, 45, 77, 43, 86, 44, 93, 47, 99, 52, 105,
		59, 111, 68, 116, 75, 118, 84, 118, 89, 115, 93, 111, 98, 101,
		100, 95, 101, 90, 101, 80, 103, 68, 105, 61,
	}, RegionWall)
	b.AddEdges([]int16{108, 54, 86, 50}, RegionEmpty)

	// Left sandtrap.
	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		55, 57, 48, 69, 45, 77, 43, 86, 44, 93, 47, 99, 52, 105, 57, 100,
		60, 93, 61, 84, 61, 72, 59, 64,
	}, RegionEmpty)

	// Right sandtrap.
	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		101, 90, 101, 80, 103, 68, 105, 61, 98, 61, 94, 62, 91, 65, 89, 71,
		89, 78, 91, 83, 95, 87,
	}, RegionEmpty)

	return CourseHole{
		Meta: Hole{Name: "Plateau", Par: 2, TeeMaskLayer: 0x1,
			TeeX: 184, TeeY: 82, HoleX: 80, HoleY: 103},
		Data: b.Build(),
	}
}

func buildCrossing() CourseHole {
	b := NewBuilder()

	// Starting area of fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		115, 106, 91, 101, 64, 97, 57, 99, 55, 106, 54, 125, 56, 136, 61, 140,
		79, 142,
	}, RegionWall)
	b.AddEdges([]int16{115, 146}, RegionEmpty)

	// Small section just right of the crossing.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{177, 121}, RegionWall)
	b.AddEdges([]int16{141, 114}, RegionEmpty)
	b.AddEdges([]int16{141, 151}, RegionWall)
	b.AddEdges([]int16{174, 155}, RegionEmpty)

	// Main stretch of fairway, not touching the crossing; triggers top.
	mustLoop(b, RegionFairway, 0x1, 0x5)
	b.AddEdges([]int16{177, 121}, RegionEmpty)
	b.AddEdges([]int16{174, 155, 211, 161}, RegionWall)
	// The bounce-off curve.
	b.AddEdges([]int16{
		241, 163, 245, 157, 250, 152, 256, 147, 263, 143,
	}, RegionWall)
	b.AddEdges([]int16{
		269, 140, 262, 118,
		252, 97, 238, 78, 220, 59, 198, 43, 164, 25, 133, 17, 113, 14, 107, 15,
		103, 18, 101, 22, 101, 27, 106, 43,
	}, RegionWall)
	b.AddEdges([]int16{109, 62}, RegionEmpty)
	b.AddEdges([]int16{
		137, 75, 145, 77, 164, 84, 180, 94, 197, 110, 212, 127,
	}, RegionWall)

	// Fairway before the slope; triggers bottom.
	mustLoop(b, RegionFairway, 0x1, 0x3)
	b.AddEdges([]int16{109, 62}, RegionWall)
	b.AddEdges([]int16{113, 84}, RegionEmpty)
	b.AddEdges([]int16{138, 84}, RegionWall)
	b.AddEdges([]int16{137, 75}, RegionEmpty)

	// Slope above the crossing.
	mustLoop(b, RegionSlopeDown, 0x1, 0)
	b.AddEdges([]int16{115, 106}, RegionEmpty)
	b.AddEdges([]int16{141, 114}, RegionWall)
	b.AddEdges([]int16{138, 84}, RegionEmpty)
	b.AddEdges([]int16{113, 84}, RegionWall)

	// Crossing, top (fairway).
	mustLoop(b, RegionFairway, 0x4, 0)
	b.AddEdges([]int16{115, 106}, RegionEmpty)
	b.AddEdges([]int16{115, 146}, RegionWall)
	b.AddEdges([]int16{141, 151}, RegionEmpty)
	b.AddEdges([]int16{141, 114}, RegionWall)

	// Crossing, bottom (slope).
	mustLoop(b, RegionSlopeDown, 0x2, 0)
	b.AddEdges([]int16{115, 106}, RegionWall)
	b.AddEdges([]int16{115, 146}, RegionEmpty)
	b.AddEdges([]int16{141, 151}, RegionWall)
	b.AddEdges([]int16{141, 114}, RegionEmpty)

	// Slope below the crossing.
	mustLoop(b, RegionSlopeDown, 0x1, 0)
	b.AddEdges([]int16{115, 160}, RegionEmpty)
	b.AddEdges([]int16{140, 160}, RegionWall)
	b.AddEdges([]int16{141, 151}, RegionEmpty)
	b.AddEdges([]int16{115, 146}, RegionWall)

	// Down-below fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		115, 160, 114, 194, 113, 205, 113, 223, 118, 235, 129, 245, 146, 252,
		169, 253, 215, 248, 236, 241, 244, 233, 246, 223, 245, 208, 235, 192,
		217, 180, 201, 175, 181, 173, 161, 175, 140, 180,
	}, RegionWall)
	b.AddEdges([]int16{140, 160}, RegionEmpty)

	// Top-right sandtrap.
	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		220, 59, 218, 71, 222, 85, 230, 93, 241, 97, 252, 97, 238, 78,
	}, RegionEmpty)

	// Top-left sandtrap.
	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		180, 94, 179, 82, 172, 72, 162, 68, 151, 68, 145, 77, 164, 84,
	}, RegionEmpty)

	// Bottom sandtrap.
	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		186, 232, 193, 231, 196, 227, 195, 218, 192, 209, 184, 202, 172, 195,
		167, 192, 160, 192, 155, 196, 152, 202, 154, 207, 161, 211, 169, 216,
		175, 221, 176, 226, 178, 230,
	}, RegionEmpty)

	return CourseHole{
		Meta: Hole{Name: "Crossing", Par: 5, TeeMaskLayer: 0x5,
			TeeX: 74, TeeY: 123, HoleX: 217, HoleY: 201},
		Data: b.Build(),
	}
}

func buildLagoon() CourseHole {
	b := NewBuilder()

	// Fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		239, 222, 275, 215, 305, 205, 323, 197, 341, 184, 355, 170, 365, 156,
		370, 145, 373, 133, 374, 121, 373, 111, 369, 98, 357, 81, 343, 66,
		327, 53, 311, 45, 294, 42, 280, 43, 265, 47, 254, 51, 242, 58, 224, 65,
		190, 76, 153, 83, 136, 89, 119, 99, 104, 111, 94, 122, 86, 135,
		84, 151, 86, 168, 92, 183, 96, 190, 103, 197, 117, 206, 136, 213,
		164, 219, 214, 223,
	}, RegionWall)

	// Water.
	mustLoop(b, RegionWater, 0x1, 0)
	b.AddEdges([]int16{
		239, 222, 275, 215, 305, 205, 297, 201, 287, 192, 280, 181, 276, 170,
		276, 158, 282, 147, 290, 139, 300, 134, 307, 128, 311, 121, 311, 113,
		307, 108, 299, 103, 283, 102, 252, 105, 221, 112, 186, 122, 156, 134,
		129, 148, 125, 152, 123, 157, 124, 163, 129, 167, 141, 172, 162, 173,
		189, 170, 214, 163, 225, 161, 234, 164, 241, 171, 245, 184, 247, 200,
		247, 210, 245, 217,
	}, RegionEmpty)

	// Left sandtrap.
	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		175, 116, 157, 114, 141, 119, 131, 126, 127, 137, 129, 148, 156, 134,
		186, 122,
	}, RegionEmpty)

	// Right sandtrap.
	mustLoop(b, RegionSandtrap, 0x1, 0)
	b.AddEdges([]int16{
		340, 80, 341, 99, 345, 116, 356, 134, 370, 145, 373, 133, 374, 121,
		373, 111, 369, 98, 357, 81, 343, 66,
	}, RegionEmpty)

	return CourseHole{
		Meta: Hole{Name: "Lagoon", Par: 4, TeeMaskLayer: 0x1,
			TeeX: 225, TeeY: 189, HoleX: 307, HoleY: 170},
		Data: b.Build(),
	}
}

func buildEddy() CourseHole {
	b := NewBuilder()

	// Uphill fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		133, 184, 132, 170, 131, 147, 127, 123,
	}, RegionEmpty)
	b.AddEdges([]int16{
		126, 109, 109, 116, 92, 130, 81, 144, 73, 161, 70, 176, 70, 199,
		74, 218, 82, 231, 92, 238, 103, 242, 116, 241, 123, 237, 126, 231,
		128, 214, 128, 198,
	}, RegionWall)

	// Slope.
	mustLoop(b, RegionSlopeRight, 0x1, 0)
	b.AddEdges([]int16{
		133, 184, 140, 176, 149, 172, 158, 171, 167, 174, 172, 177, 175, 184,
		180, 195, 187, 204, 204, 219, 217, 228, 226, 231, 234, 231, 241, 228,
		247, 222, 250, 215, 249, 206, 247, 200, 242, 195, 239, 190, 239, 186,
		242, 182, 253, 177,
	}, RegionWall)
	b.AddEdges([]int16{
		263, 172, 258, 161, 254, 146,
	}, RegionEmpty)
	b.AddEdges([]int16{
		253, 131, 236, 144, 217, 153, 201, 154, 197, 151, 197, 144, 201, 137,
		207, 127, 209, 118, 207, 110, 200, 102, 191, 99, 177, 100, 151, 103,
	}, RegionWall)
	b.AddEdges([]int16{
		126, 109, 127, 123, 131, 147, 132, 170,
	}, RegionEmpty)

	// Downhill fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		253, 131, 254, 146, 258, 161,
	}, RegionEmpty)
	b.AddEdges([]int16{
		263, 172, 267, 173, 268, 178, 271, 195, 273, 216, 278, 225, 287, 231,
		300, 234, 316, 232, 329, 223, 338, 208, 343, 180, 342, 155, 336, 135,
		325, 121, 314, 112, 300, 107, 288, 108, 277, 113, 266, 120,
	}, RegionWall)

	return CourseHole{
		Meta: Hole{Name: "Eddy", Par: 3, TeeMaskLayer: 0x1,
			TeeX: 103, TeeY: 218, HoleX: 306, HoleY: 203},
		Data: b.Build(),
	}
}

func buildHighBridge() CourseHole {
	b := NewBuilder()

	// Starting fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{106, 167}, RegionEmpty)
	b.AddEdges([]int16{
		113, 135, 105, 123,
	}, RegionWall)
	b.AddEdges([]int16{93, 106}, RegionEmpty)
	b.AddEdges([]int16{
		110, 59, 97, 53, 88, 50, 78, 49, 64, 51, 55, 56, 44, 67, 37, 78, 34, 94,
		35, 103, 39, 113, 45, 118, 53, 121, 65, 125, 75, 131, 82, 141, 94, 156,
	}, RegionWall)

	// Starting fairway trigger for under the bridge.
	mustLoop(b, RegionFairway, 0x1, 0x3)
	b.AddEdges([]int16{115, 116}, RegionEmpty)
	b.AddEdges([]int16{131, 68}, RegionWall)
	b.AddEdges([]int16{110, 59}, RegionEmpty)
	b.AddEdges([]int16{93, 106}, RegionWall)

	// Starting fairway past the trigger, before under the bridge.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		136, 124, 146, 100,
	}, RegionEmpty)
	b.AddEdges([]int16{154, 79}, RegionWall)
	b.AddEdges([]int16{131, 68}, RegionEmpty)
	b.AddEdges([]int16{115, 116}, RegionWall)

	// Slope onto the bridge from the start, triggering over the bridge.
	mustLoop(b, RegionSlopeLeft, 0x1, 0x5)
	b.AddEdges([]int16{129, 174}, RegionEmpty)
	b.AddEdges([]int16{
		125, 139, 119, 138,
	}, RegionWall)
	b.AddEdges([]int16{113, 135}, RegionEmpty)
	b.AddEdges([]int16{
		106, 167, 116, 172,
	}, RegionWall)

	// Bridge not yet over the fairway, start side.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		129, 174, 139, 173, 147, 168, 155, 154,
	}, RegionWall)
	b.AddEdges([]int16{163, 137}, RegionEmpty)
	b.AddEdges([]int16{
		136, 124, 130, 136,
	}, RegionWall)
	b.AddEdges([]int16{125, 139}, RegionEmpty)

	// Bridge overlapping section, over.
	mustLoop(b, RegionFairway, 0x4, 0)
	b.AddEdges([]int16{
		163, 137, 172, 113,
	}, RegionWall)
	b.AddEdges([]int16{178, 90}, RegionEmpty)
	b.AddEdges([]int16{
		154, 79, 146, 100,
	}, RegionWall)
	b.AddEdges([]int16{136, 124}, RegionEmpty)

	// Bridge overlapping section, under.
	mustLoop(b, RegionFairway, 0x2, 0)
	b.AddEdges([]int16{
		163, 137, 172, 113,
	}, RegionEmpty)
	b.AddEdges([]int16{178, 90}, RegionWall)
	b.AddEdges([]int16{
		154, 79, 146, 100,
	}, RegionEmpty)
	b.AddEdges([]int16{136, 124}, RegionWall)

	// Bridge past the over fairway, end side.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{178, 90}, RegionWall)
	b.AddEdges([]int16{187, 67}, RegionEmpty)
	b.AddEdges([]int16{
		176, 38, 169, 48, 163, 60,
	}, RegionWall)
	b.AddEdges([]int16{154, 79}, RegionEmpty)

	// Slope off the bridge, triggering over the bridge.
	mustLoop(b, RegionSlopeRight, 0x1, 0x5)
	b.AddEdges([]int16{
		187, 67, 193, 58,
	}, RegionWall)
	b.AddEdges([]int16{200, 51}, RegionEmpty)
	b.AddEdges([]int16{190, 28}, RegionWall)
	b.AddEdges([]int16{176, 38}, RegionEmpty)

	// Fairway before the trigger past under the bridge.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{181, 146}, RegionEmpty)
	b.AddEdges([]int16{203, 102}, RegionWall)
	b.AddEdges([]int16{
		178, 90, 172, 113,
	}, RegionEmpty)
	b.AddEdges([]int16{163, 137}, RegionWall)

	// Fairway trigger past the bridge for under the bridge.
	mustLoop(b, RegionFairway, 0x1, 0x3)
	b.AddEdges([]int16{197, 158}, RegionEmpty)
	b.AddEdges([]int16{230, 109}, RegionWall)
	b.AddEdges([]int16{203, 102}, RegionEmpty)
	b.AddEdges([]int16{181, 146}, RegionWall)

	// Far fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		197, 158, 211, 167, 225, 174, 249, 179, 268, 180, 285, 179, 297, 174,
		305, 168, 312, 158, 320, 139, 324, 115, 323, 97, 318, 84, 309, 67,
		298, 53, 287, 43, 274, 35, 259, 29, 241, 25, 222, 22, 201, 24,
	}, RegionWall)
	b.AddEdges([]int16{190, 28}, RegionEmpty)
	b.AddEdges([]int16{
		200, 51, 207, 47, 213, 46, 218, 48, 215, 54, 209, 62, 205, 69, 203, 76,
		206, 83, 213, 89, 224, 92, 253, 93, 271, 91, 284, 90, 288, 91, 289, 95,
		285, 101, 280, 106, 271, 110, 255, 112,
	}, RegionWall)
	b.AddEdges([]int16{230, 109}, RegionEmpty)

	// Rock in the far fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		278, 158, 268, 160, 255, 158, 252, 152, 255, 146, 261, 140, 269, 136,
		286, 131, 291, 133, 292, 136, 290, 144, 286, 152,
	}, RegionWall)

	return CourseHole{
		Meta: Hole{Name: "High Bridge", Par: 3, TeeMaskLayer: 0x5,
			TeeX: 60, TeeY: 76, HoleX: 224, HoleY: 76},
		Data: b.Build(),
	}
}

func buildFinale() CourseHole {
	b := NewBuilder()

	// Starting fairway, with parts to be overlapped by water.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{211, 264}, RegionEmpty)
	b.AddEdges([]int16{
		153, 199, 145, 182, 141, 166, 140, 151,
	}, RegionWall)
	b.AddEdges([]int16{
		143, 137, 111, 139,
	}, RegionEmpty)
	b.AddEdges([]int16{
		97, 214, 124, 231, 165, 250,
	}, RegionWall)

	// First half of the first sloped curve.
	mustLoop(b, RegionSlopeRight, 0x1, 0)
	b.AddEdges([]int16{
		148, 128, 116, 101, 111, 118, 111, 139,
	}, RegionEmpty)
	b.AddEdges([]int16{143, 137}, RegionWall)

	// Second half of the first sloped curve.
	mustLoop(b, RegionSlopeDown, 0x1, 0)
	b.AddEdges([]int16{
		148, 128, 156, 124, 166, 127,
	}, RegionWall)
	b.AddEdges([]int16{
		173, 131, 211, 113, 199, 99, 182, 86, 158, 78, 137, 80, 123, 90,
		116, 101,
	}, RegionEmpty)

	// Middle fairway.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		244, 195, 240, 184, 229, 151,
	}, RegionWall)
	b.AddEdges([]int16{
		221, 131, 211, 113,
	}, RegionEmpty)
	b.AddEdges([]int16{
		173, 131, 181, 140, 191, 155, 201, 173,
	}, RegionWall)
	b.AddEdges([]int16{208, 192}, RegionEmpty)

	// First half of the second sloped curve.
	mustLoop(b, RegionSlopeUp, 0x1, 0)
	b.AddEdges([]int16{251, 204}, RegionWall)
	b.AddEdges([]int16{
		244, 195, 208, 192, 218, 212, 227, 224,
	}, RegionEmpty)

	// Second half of the second sloped curve.
	mustLoop(b, RegionSlopeUp, 0x1, 0)
	b.AddEdges([]int16{
		251, 204, 227, 224, 239, 235, 248, 239, 259, 242, 274, 242, 284, 240,
		299, 232,
	}, RegionEmpty)
	b.AddEdges([]int16{314, 209}, RegionWall)
	b.AddEdges([]int16{321, 183}, RegionEmpty)
	b.AddEdges([]int16{
		267, 193, 264, 203, 258, 206,
	}, RegionWall)

	// Fairway before the uphill to the hole.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{320, 146}, RegionEmpty)
	b.AddEdges([]int16{
		264, 149, 267, 158, 269, 175,
	}, RegionWall)
	b.AddEdges([]int16{267, 193}, RegionEmpty)
	b.AddEdges([]int16{321, 183, 321, 164}, RegionWall)

	// Uphill to the hole.
	mustLoop(b, RegionSlopeDown, 0x1, 0)
	b.AddEdges([]int16{320, 146}, RegionWall)
	b.AddEdges([]int16{316, 124}, RegionEmpty)
	b.AddEdges([]int16{
		243, 125, 254, 135,
	}, RegionWall)
	b.AddEdges([]int16{264, 149}, RegionEmpty)

	// Fairway at the hole, to be overlapped by water.
	mustLoop(b, RegionFairway, 0x1, 0)
	b.AddEdges([]int16{
		234, 60, 213, 85,
	}, RegionEmpty)
	b.AddEdges([]int16{234, 114}, RegionWall)
	b.AddEdges([]int16{243, 125}, RegionEmpty)
	b.AddEdges([]int16{
		316, 124, 310, 110, 305, 103, 299, 97, 293, 92, 280, 82,
		262, 70,
	}, RegionWall)

	// Upper water, overlapped by the first slope, overlapping some fairways.
	mustLoop(b, RegionWater, 0x1, 0)
	b.AddEdges([]int16{
		234, 60, 211, 56, 175, 56, 139, 63, 108, 80, 81, 106, 66, 138, 54, 179,
		75, 200,
	}, RegionWall)
	b.AddEdges([]int16{
		97, 214, 106, 201, 110, 189, 112, 178, 111, 157, 111, 139, 148, 105,
		211, 113,
	}, RegionEmpty)
	b.AddEdges([]int16{221, 131}, RegionWall)
	b.AddEdges([]int16{
		234, 114, 227, 105, 223, 93, 222, 81, 227, 69,
	}, RegionEmpty)

	// Lower water, overlapped by the second slope, overlapping some fairways.
	mustLoop(b, RegionWater, 0x1, 0)
	b.AddEdges([]int16{
		211, 264, 245, 271, 280, 268, 306, 254, 331, 226,
	}, RegionWall)
	b.AddEdges([]int16{
		314, 209, 267, 226,
	}, RegionEmpty)
	b.AddEdges([]int16{208, 192}, RegionWall)
	b.AddEdges([]int16{
		153, 199, 169, 224, 187, 246,
	}, RegionEmpty)

	return CourseHole{
		Meta: Hole{Name: "Finale", Par: 6, TeeMaskLayer: 0x1,
			TeeX: 133, TeeY: 211, HoleX: 250, HoleY: 98},
		Data: b.Build(),
	}
}
