package system

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"ascii-roguelike/internal/gamemap"
)

// openMapFOV creates a fully-open (all floor) map for FOV tests.
func openMapFOV(t *testing.T, width, height int) *gamemap.GameMap {
	t.Helper()
	gmap, err := gamemap.New(gamemap.Dimension{Width: width, Height: height})
	if err != nil {
		t.Fatal(err)
	}
	for i := range gmap.Tiles {
		gmap.Tiles[i] = gamemap.MakeFloor()
	}
	return gmap
}

var algorithms = []FOVAlgorithm{FOVLineOfSight, FOVShadowcast}

func TestFOVRadiusZeroSeesOnlyOrigin(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			gmap := openMapFOV(t, 20, 20)
			vis, err := ComputeFOV(gmap, gamemap.Position{X: 5, Y: 5}, 0, alg)
			if err != nil {
				t.Fatal(err)
			}
			want := []int{gmap.Index(gamemap.Position{X: 5, Y: 5})}
			if !slices.Equal(vis, want) {
				t.Fatalf("visible = %v; want %v", vis, want)
			}
		})
	}
}

func TestFOVNegativeRadiusActsAsZero(t *testing.T) {
	gmap := openMapFOV(t, 5, 5)
	vis, err := ComputeFOV(gmap, gamemap.Position{X: 2, Y: 2}, -3, FOVLineOfSight)
	if err != nil {
		t.Fatal(err)
	}
	if len(vis) != 1 {
		t.Fatalf("len = %d; want 1", len(vis))
	}
}

func TestFOVOpenMapDiscCount(t *testing.T) {
	// Points with dx²+dy² <= 9: 7 + 2*5 + 2*5 + 2*1.
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			gmap := openMapFOV(t, 20, 20)
			vis, err := ComputeFOV(gmap, gamemap.Position{X: 10, Y: 10}, 3, alg)
			if err != nil {
				t.Fatal(err)
			}
			if len(vis) != 29 {
				t.Fatalf("visible tiles = %d; want 29", len(vis))
			}
		})
	}
}

func TestFOVIndicesSortedAndInRange(t *testing.T) {
	gmap := openMapFOV(t, 20, 20)
	origin := gamemap.Position{X: 1, Y: 18}
	for _, alg := range algorithms {
		vis, err := ComputeFOV(gmap, origin, 6, alg)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.IsSorted(vis) {
			t.Errorf("%v: indices not sorted", alg)
		}
		for _, i := range vis {
			dx, dy := origin.Delta(gmap.PositionOf(i))
			if dx*dx+dy*dy > 36 {
				t.Errorf("%v: tile %v beyond radius", alg, gmap.PositionOf(i))
			}
		}
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	// A wall at (10,8) blocks (10,7) from an observer at (10,10).
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			gmap := openMapFOV(t, 20, 20)
			gmap.Set(gamemap.Position{X: 10, Y: 8}, gamemap.MakeWall())
			tr := NewTracker(8, alg)
			if _, err := tr.Update(gmap, gamemap.Position{X: 10, Y: 10}); err != nil {
				t.Fatal(err)
			}
			if !gmap.At(gamemap.Position{X: 10, Y: 8}).Visible {
				t.Error("the wall tile itself should be visible")
			}
			if gmap.At(gamemap.Position{X: 10, Y: 7}).Visible {
				t.Error("tile behind the wall should not be visible")
			}
		})
	}
}

func TestFOVOutOfBoundsOrigin(t *testing.T) {
	gmap := openMapFOV(t, 10, 10)
	for _, p := range []gamemap.Position{{X: -1, Y: 0}, {X: 10, Y: 3}, {X: 3, Y: 10}} {
		if _, err := ComputeFOV(gmap, p, 4, FOVLineOfSight); !errors.Is(err, gamemap.ErrOutOfBounds) {
			t.Errorf("origin %v: err = %v; want ErrOutOfBounds", p, err)
		}
	}
}

// randomWalls returns a map with roughly a third of tiles turned to wall.
func randomWalls(t *testing.T, seed int64) *gamemap.GameMap {
	t.Helper()
	gmap := openMapFOV(t, 30, 20)
	rng := rand.New(rand.NewSource(seed))
	for i := range gmap.Tiles {
		if rng.Intn(3) == 0 {
			gmap.Tiles[i] = gamemap.MakeWall()
		}
	}
	return gmap
}

func TestLineOfSightMatchesBresenham(t *testing.T) {
	const radius = 7
	for seed := int64(1); seed <= 5; seed++ {
		gmap := randomWalls(t, seed)
		origin := gamemap.Position{X: 15, Y: 10}
		vis, err := ComputeFOV(gmap, origin, radius, FOVLineOfSight)
		if err != nil {
			t.Fatal(err)
		}
		lit := make(map[int]bool, len(vis))
		for _, i := range vis {
			lit[i] = true
		}
		for i := range gmap.Tiles {
			p := gmap.PositionOf(i)
			dx, dy := origin.Delta(p)
			if dx*dx+dy*dy > radius*radius {
				if lit[i] {
					t.Fatalf("seed %d: %v lit outside radius", seed, p)
				}
				continue
			}
			open := true
			line := Line(origin, p)
			for _, q := range between(line) {
				if !gmap.IsTransparent(q) {
					open = false
					break
				}
			}
			if open != lit[i] {
				t.Fatalf("seed %d: %v lit=%v, line clear=%v", seed, p, lit[i], open)
			}
		}
	}
}

func TestTrackerSeenIsMonotonic(t *testing.T) {
	gmap := openMapFOV(t, 30, 10)
	tr := NewTracker(4, FOVLineOfSight)

	first, err := tr.Update(gmap, gamemap.Position{X: 3, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Update(gmap, gamemap.Position{X: 25, Y: 5}); err != nil {
		t.Fatal(err)
	}
	for _, i := range first {
		tile := gmap.Tiles[i]
		if !tile.Seen {
			t.Fatalf("tile %v lost Seen", gmap.PositionOf(i))
		}
		if tile.Visible {
			t.Fatalf("tile %v still visible after moving away", gmap.PositionOf(i))
		}
	}
	if !slices.Equal(tr.Visible(), gmap.VisibleIndices()) {
		t.Error("Visible() out of sync with map flags")
	}
	for _, i := range gmap.VisibleIndices() {
		if !gmap.Tiles[i].Seen {
			t.Fatal("every visible tile must also be seen")
		}
	}
}

func TestTrackerErrorLeavesMapUntouched(t *testing.T) {
	gmap := openMapFOV(t, 10, 10)
	tr := NewTracker(3, FOVLineOfSight)
	before, err := tr.Update(gmap, gamemap.Position{X: 5, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Update(gmap, gamemap.Position{X: 50, Y: 5}); !errors.Is(err, gamemap.ErrOutOfBounds) {
		t.Fatalf("err = %v; want ErrOutOfBounds", err)
	}
	if !slices.Equal(before, gmap.VisibleIndices()) {
		t.Error("failed update changed visibility")
	}
	if !slices.Equal(before, tr.Visible()) {
		t.Error("failed update changed tracker state")
	}
}

func TestTrackerContains(t *testing.T) {
	gmap := openMapFOV(t, 10, 10)
	tr := NewTracker(2, FOVLineOfSight)
	if _, err := tr.Update(gmap, gamemap.Position{X: 5, Y: 5}); err != nil {
		t.Fatal(err)
	}
	if !tr.Contains(gmap, gamemap.Position{X: 5, Y: 3}) {
		t.Error("(5,3) should be visible")
	}
	if tr.Contains(gmap, gamemap.Position{X: 9, Y: 9}) {
		t.Error("(9,9) should not be visible")
	}
	if tr.Contains(gmap, gamemap.Position{X: -1, Y: 0}) {
		t.Error("out of bounds is never visible")
	}
}

func TestParseFOVAlgorithm(t *testing.T) {
	cases := map[string]FOVAlgorithm{
		"":              FOVLineOfSight,
		"line-of-sight": FOVLineOfSight,
		" LOS ":         FOVLineOfSight,
		"shadowcast":    FOVShadowcast,
	}
	for in, want := range cases {
		got, err := ParseFOVAlgorithm(in)
		if err != nil || got != want {
			t.Errorf("ParseFOVAlgorithm(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFOVAlgorithm("raycast"); err == nil {
		t.Error("unknown name should fail")
	}
}

func TestLineEndpointsAndSteps(t *testing.T) {
	a := gamemap.Position{X: 2, Y: 3}
	for _, b := range []gamemap.Position{
		{X: 2, Y: 3}, {X: 9, Y: 3}, {X: 2, Y: -4}, {X: 7, Y: 5}, {X: -3, Y: 11}, {X: 0, Y: 0},
	} {
		line := Line(a, b)
		if line[0] != a || line[len(line)-1] != b {
			t.Fatalf("Line(%v,%v) endpoints = %v..%v", a, b, line[0], line[len(line)-1])
		}
		dx, dy := a.Delta(b)
		if want := max(abs(dx), abs(dy)) + 1; len(line) != want {
			t.Errorf("Line(%v,%v) len = %d; want %d", a, b, len(line), want)
		}
		for i := 1; i < len(line); i++ {
			sx, sy := line[i-1].Delta(line[i])
			if abs(sx) > 1 || abs(sy) > 1 {
				t.Fatalf("Line(%v,%v) jumps between %v and %v", a, b, line[i-1], line[i])
			}
		}
	}
}

// between drops the end points of a traced line.
func between(line []gamemap.Position) []gamemap.Position {
	if len(line) < 3 {
		return nil
	}
	return line[1 : len(line)-1]
}

func TestCanSeeShortLines(t *testing.T) {
	gmap := openMapFOV(t, 5, 5)
	center := gamemap.Position{X: 2, Y: 2}
	gmap.Set(gamemap.Position{X: 3, Y: 2}, gamemap.MakeWall())

	cases := []struct {
		name   string
		to     gamemap.Position
		radius int
		want   bool
	}{
		{"own tile", center, 0, true},
		{"adjacent wall", gamemap.Position{X: 3, Y: 2}, 1, true},
		{"behind adjacent wall", gamemap.Position{X: 4, Y: 2}, 2, false},
		{"diagonal neighbour", gamemap.Position{X: 1, Y: 1}, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanSee(gmap, center, tc.to, tc.radius); got != tc.want {
				t.Errorf("CanSee(%v, %v, %d) = %v; want %v", center, tc.to, tc.radius, got, tc.want)
			}
		})
	}
}

func TestLineOfSightAlwaysLightsOrigin(t *testing.T) {
	for _, radius := range []int{0, 1, 5} {
		gmap := randomWalls(t, int64(radius)+3)
		origin := gamemap.Position{X: 15, Y: 10}
		vis, err := ComputeFOV(gmap, origin, radius, FOVLineOfSight)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Contains(vis, gmap.Index(origin)) {
			t.Fatalf("radius %d: origin %v not visible", radius, origin)
		}
	}
}

func TestShadowcastLightsPastLineOfSightWall(t *testing.T) {
	gmap := openMapFOV(t, 11, 11)
	origin := gamemap.Position{X: 5, Y: 5}
	wall := gamemap.Position{X: 2, Y: 3}
	target := gamemap.Position{X: 1, Y: 2}
	gmap.Set(wall, gamemap.MakeWall())

	if !slices.Contains(Line(origin, target), wall) {
		t.Fatalf("line %v should cross %v", Line(origin, target), wall)
	}

	los, err := ComputeFOV(gmap, origin, 5, FOVLineOfSight)
	if err != nil {
		t.Fatal(err)
	}
	shadow, err := ComputeFOV(gmap, origin, 5, FOVShadowcast)
	if err != nil {
		t.Fatal(err)
	}
	idx := gmap.Index(target)
	if slices.Contains(los, idx) || CanSee(gmap, origin, target, 5) {
		t.Fatalf("line of sight should not see %v", target)
	}
	if !slices.Contains(shadow, idx) {
		t.Fatalf("shadowcast should light %v through the gap", target)
	}
}
