package system

import (
	"testing"

	"ascii-roguelike/internal/gamemap"
)

func setupMoveMap(t *testing.T) *gamemap.GameMap {
	t.Helper()
	gmap, err := gamemap.New(gamemap.Dimension{Width: 10, Height: 10})
	if err != nil {
		t.Fatal(err)
	}
	// Carve a small open area.
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			gmap.Set(gamemap.Position{X: x, Y: y}, gamemap.MakeFloor())
		}
	}
	return gmap
}

func TestTryMove(t *testing.T) {
	gmap := setupMoveMap(t)
	monster := gamemap.Position{X: 4, Y: 3}

	cases := []struct {
		name   string
		from   gamemap.Position
		dx, dy int
		want   MoveResult
		pos    gamemap.Position
	}{
		{"open floor", gamemap.Position{X: 3, Y: 4}, 1, 0, MoveOK, gamemap.Position{X: 4, Y: 4}},
		{"diagonal", gamemap.Position{X: 3, Y: 4}, 1, 1, MoveOK, gamemap.Position{X: 4, Y: 5}},
		{"into wall", gamemap.Position{X: 3, Y: 1}, 0, -1, MoveBlocked, gamemap.Position{X: 3, Y: 1}},
		{"off map", gamemap.Position{X: 0, Y: 0}, -1, 0, MoveBlocked, gamemap.Position{X: 0, Y: 0}},
		{"into monster", gamemap.Position{X: 3, Y: 3}, 1, 0, MoveOccupied, gamemap.Position{X: 3, Y: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, pos := TryMove(gmap, []gamemap.Position{monster}, tc.from, tc.dx, tc.dy)
			if got != tc.want {
				t.Fatalf("result = %v; want %v", got, tc.want)
			}
			if pos != tc.pos {
				t.Fatalf("pos = %v; want %v", pos, tc.pos)
			}
		})
	}
}

func TestDirectionDeltas(t *testing.T) {
	want := map[Direction][2]int{
		North: {0, -1}, South: {0, 1}, East: {1, 0}, West: {-1, 0},
		NorthEast: {1, -1}, NorthWest: {-1, -1}, SouthEast: {1, 1}, SouthWest: {-1, 1},
	}
	for d, w := range want {
		dx, dy := d.Delta()
		if dx != w[0] || dy != w[1] {
			t.Errorf("%v.Delta() = (%d,%d); want (%d,%d)", d, dx, dy, w[0], w[1])
		}
		parsed, err := ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, err)
		}
	}
}

func TestParseDirectionAliases(t *testing.T) {
	cases := map[string]Direction{"n": North, "SE": SouthEast, " up_left ": NorthWest, "right": East}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("unknown direction should fail")
	}
}
