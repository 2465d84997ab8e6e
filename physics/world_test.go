package physics

import (
	"math"
	"testing"

	"github.com/solarlune/resolv"
)

func newTestWorld() *World {
	return NewWorld(Config{
		PixelsPerUnit: 32,
		Gravity:       -9.8,
		MaxFallSpeed:  20,
		SolidTags:     []string{"solid"},
	}, 640, 480, 16)
}

func addBox(w *World, x, y, width, height float64, tags ...string) *resolv.Object {
	o := resolv.NewObject(x, y, width, height, tags...)
	w.Add(o)
	return o
}

func TestBodyFallsAndLands(t *testing.T) {
	w := newTestWorld()
	addBox(w, 0, 400, 640, 32, "solid")
	player := addBox(w, 100, 300, 24, 40)

	var v Velocity
	landed := false
	for i := 0; i < 240; i++ {
		if _, hitY := w.Step(player, &v, 1, 1.0/60); hitY {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatalf("body never landed, y = %v", player.Y)
	}
	if got := player.Y + player.H; math.Abs(got-400) > 1e-9 {
		t.Errorf("feet at %v, want flush with ground at 400", got)
	}
	if v.Y != 0 {
		t.Errorf("vy = %v after landing", v.Y)
	}
}

func TestLandingFromManyHeights(t *testing.T) {
	for i := 0; i < 2000; i++ {
		w := newTestWorld()
		addBox(w, 0, 400, 640, 32, "solid")
		start := 100 + float64(i)*0.0137
		player := addBox(w, 100, start, 20, 30)

		var v Velocity
		for tick := 0; tick < 240; tick++ {
			w.Step(player, &v, 1, 1.0/60)
		}

		if got := player.Y + player.H; math.Abs(got-400) > 1e-6 {
			t.Fatalf("dropped from y=%v: feet at %v, want 400", start, got)
		}
	}
}

func TestJumpsLandOnFloor(t *testing.T) {
	for h := 1.50; h < 2.495; h += 0.01 {
		w := newTestWorld()
		addBox(w, 0, 400, 640, 32, "solid")
		player := addBox(w, 100, 370, 20, 30)

		v := Velocity{Y: math.Sqrt(2 * 9.8 * h)}
		landed := false
		for tick := 0; tick < 600 && !landed; tick++ {
			_, landed = w.Step(player, &v, 1, 1.0/60)
		}

		if !landed {
			t.Fatalf("jump of %.2f never landed, feet at %v", h, player.Y+player.H)
		}
		if got := player.Y + player.H; math.Abs(got-400) > 1e-6 {
			t.Fatalf("jump of %.2f: feet at %v, want 400", h, got)
		}
	}
}

func TestShallowSinkIsPushedOut(t *testing.T) {
	w := newTestWorld()
	addBox(w, 0, 400, 640, 32, "solid")
	player := addBox(w, 100, 360.005, 24, 40)

	var v Velocity
	_, hitY := w.Step(player, &v, 1, 1.0/60)

	if !hitY {
		t.Fatal("floor did not stop a body resting inside it")
	}
	if got := player.Y + player.H; math.Abs(got-400) > 1e-6 {
		t.Errorf("feet at %v, want pushed back to 400", got)
	}

	// Walking along the floor is not blocked by the contact.
	player.Y += 0.005
	player.Update()
	if hitX, _ := w.Move(player, 10, 0, "solid"); hitX {
		t.Error("shallow floor contact blocked a horizontal move")
	}
}

func TestShallowSinkDoesNotSnapThroughOnRise(t *testing.T) {
	w := newTestWorld()
	addBox(w, 0, 400, 640, 32, "solid")
	player := addBox(w, 100, 360.005, 24, 40)

	w.Move(player, 0, -0.001, "solid")

	if player.Y > 361 || player.Y < 359 {
		t.Errorf("y = %v after a small rise, want near 360", player.Y)
	}
}

func TestGravityScaleZeroFloats(t *testing.T) {
	w := newTestWorld()
	player := addBox(w, 100, 100, 24, 40)

	v := Velocity{X: 0, Y: 1.5}
	w.Step(player, &v, 0, 1.0/60)

	if v.Y != 1.5 {
		t.Errorf("vy = %v, gravity applied with scale 0", v.Y)
	}
	if want := 100 - 1.5/60*32; math.Abs(player.Y-want) > 1e-9 {
		t.Errorf("y = %v, want %v (Y up velocity moves up the screen)", player.Y, want)
	}
}

func TestFallSpeedClamp(t *testing.T) {
	w := newTestWorld()
	player := addBox(w, 100, 0, 24, 40)

	v := Velocity{Y: -100}
	w.Step(player, &v, 1, 1.0/60)

	if v.Y != -20 {
		t.Errorf("vy = %v, want clamp at -20", v.Y)
	}
}

func TestWallBlocksHorizontal(t *testing.T) {
	w := newTestWorld()
	addBox(w, 200, 0, 32, 480, "solid")
	player := addBox(w, 170, 100, 24, 40)

	hitX, _ := w.Move(player, 20, 0, "solid")

	if !hitX {
		t.Fatal("wall did not block")
	}
	if player.X+player.W != 200 {
		t.Errorf("right edge at %v, want 200", player.X+player.W)
	}
}

func TestIgnoredPairPassesThrough(t *testing.T) {
	w := newTestWorld()
	wall := addBox(w, 200, 0, 32, 480, "solid")
	player := addBox(w, 170, 100, 24, 40)

	w.Ignore(player, wall, true)
	if !w.Ignored(wall, player) {
		t.Fatal("ignore is not symmetric")
	}
	if hitX, _ := w.Move(player, 20, 0, "solid"); hitX {
		t.Fatal("ignored wall blocked")
	}

	w.Ignore(wall, player, false)
	if w.Ignored(player, wall) {
		t.Fatal("pair still ignored")
	}

	// Already inside the wall: restoring collision must not trap the body.
	if hitX, _ := w.Move(player, 5, 0, "solid"); hitX {
		t.Error("overlapping wall blocked an escaping body")
	}
}

func TestRemoveForgetsPairs(t *testing.T) {
	w := newTestWorld()
	a := addBox(w, 0, 0, 10, 10)
	b := addBox(w, 50, 0, 10, 10)
	c := addBox(w, 100, 0, 10, 10)

	w.Ignore(a, b, true)
	w.Ignore(a, c, true)
	w.Remove(b)

	if w.Ignored(a, b) || w.Ignored(b, a) {
		t.Error("removed object still paired")
	}
	if !w.Ignored(a, c) {
		t.Error("unrelated pair lost")
	}
}

func TestBoxCast(t *testing.T) {
	w := newTestWorld()
	ground := addBox(w, 0, 400, 640, 32, "ground", "solid")
	addBox(w, 300, 300, 32, 32, "solid")
	player := addBox(w, 100, 360, 24, 40)

	tests := []struct {
		name     string
		y        float64
		distance float64
		tags     []string
		wantHit  bool
	}{
		{"standing", 395, 10, []string{"ground"}, true},
		{"within reach", 385, 10, []string{"ground"}, true},
		{"out of reach", 370, 10, []string{"ground"}, false},
		{"wrong layer", 395, 10, []string{"ladder"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.BoxCast(player, 100, tt.y, 24, 10, 0, tt.distance, tt.tags...)
			if got != tt.wantHit {
				t.Errorf("BoxCast = %v, want %v", got, tt.wantHit)
			}
		})
	}

	w.Ignore(player, ground, true)
	if w.BoxCast(player, 100, 395, 24, 10, 0, 10, "ground") {
		t.Error("cast hit an ignored collider")
	}

	if n := len(w.Space().Objects()); n != 3 {
		t.Errorf("space holds %d objects, cast area leaked", n)
	}
}

func TestBoxCastLastPixel(t *testing.T) {
	w := newTestWorld()
	addBox(w, 0, 400, 640, 32, "ground")
	player := addBox(w, 100, 100, 24, 40)

	if !w.BoxCast(player, 100, 389.5, 24, 10, 0, 0.6, "ground") {
		t.Error("cast ending inside the last pixel missed the ground")
	}
	if w.BoxCast(player, 100, 389.5, 24, 10, 0, 0.4, "ground") {
		t.Error("cast stopping short reported ground")
	}
}

func TestBoxCastSkipsSelf(t *testing.T) {
	w := newTestWorld()
	player := addBox(w, 100, 100, 24, 40, "ground")

	if w.BoxCast(player, 100, 130, 24, 20, 0, 5, "ground") {
		t.Error("cast hit its own collider")
	}
}

func TestOverlapping(t *testing.T) {
	w := newTestWorld()
	enemy := addBox(w, 110, 110, 16, 16, "Enemy")
	addBox(w, 300, 110, 16, 16, "Enemy")
	addBox(w, 100, 100, 50, 50, "solid")
	player := addBox(w, 100, 100, 24, 40)

	got := w.Overlapping(player, "Enemy")

	if len(got) != 1 || got[0] != enemy {
		t.Fatalf("overlapping = %v, want only the touching enemy", got)
	}
}
