package render

import (
	"strings"
	"testing"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	ss.Clear()
	return ss
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := range w {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

// litRoom returns a map whose floor tiles are all currently visible.
func litRoom(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
			gmap.Reveal(x, y)
		}
	}
	return gmap
}

func addGlyph(w *ecs.World, x, y int, glyph rune, order int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: glyph, FGColor: tcell.ColorWhite, BGColor: tcell.ColorBlack, RenderOrder: order})
	return id
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(40, 20, 80, 17)
	sx, sy, ok := c.WorldToScreen(40, 20)
	if !ok || sx != 40 || sy != 8 {
		t.Fatalf("WorldToScreen(40,20) = (%d,%d,%v)", sx, sy, ok)
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 40 || wy != 20 {
		t.Errorf("ScreenToWorld = (%d,%d); want (40,20)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(0, 0); ok {
		t.Error("(0,0) should be off screen")
	}
}

func TestDrawFrameTilesAndEntities(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)
	gmap := litRoom(10, 10)
	w := ecs.NewWorld()
	addGlyph(w, 4, 4, '@', 0)
	r.CenterOn(5, 5)

	r.DrawFrame(w, gmap)

	sx, sy, _ := r.camera.WorldToScreen(4, 4)
	if got := runeAt(s, sx, sy); got != '@' {
		t.Errorf("entity cell = %q; want '@'", got)
	}
	fx, fy, _ := r.camera.WorldToScreen(2, 2)
	if got := runeAt(s, fx, fy); got != '.' {
		t.Errorf("floor cell = %q; want '.'", got)
	}
	wx, wy, _ := r.camera.WorldToScreen(0, 0)
	if got := runeAt(s, wx, wy); got != ' ' {
		t.Errorf("unexplored wall drawn as %q", got)
	}
}

func TestDrawFrameHidesEntitiesOutOfSight(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)
	gmap := litRoom(10, 10)
	gmap.At(6, 6).Visible = false
	w := ecs.NewWorld()
	addGlyph(w, 6, 6, 'o', 1)
	r.CenterOn(5, 5)

	r.DrawFrame(w, gmap)

	sx, sy, _ := r.camera.WorldToScreen(6, 6)
	if got := runeAt(s, sx, sy); got == 'o' {
		t.Error("entity on a tile out of sight was drawn")
	}
}

func TestDrawFrameRenderOrder(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)
	gmap := litRoom(10, 10)
	w := ecs.NewWorld()
	addGlyph(w, 3, 3, 'o', 1)
	addGlyph(w, 3, 3, '!', 2)
	r.CenterOn(5, 5)

	r.DrawFrame(w, gmap)

	sx, sy, _ := r.camera.WorldToScreen(3, 3)
	if got := runeAt(s, sx, sy); got != 'o' {
		t.Errorf("cell = %q; lower render order must be on top", got)
	}
}

func TestDrawHUD(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)
	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.Add(player, component.CombatStats{MaxHP: 30, HP: 12})

	long := strings.Repeat("x", 200)
	r.DrawHUD(w, player, []string{"one", "two", "three", "four", "five", "six", long})

	_, h := s.Size()
	hudY := h - HUDRows
	if got := rowText(s, hudY+1); !strings.Contains(got, "HP: 12 / 30") {
		t.Errorf("status row = %q", got)
	}
	if got := strings.TrimSpace(rowText(s, hudY+2)); got != "three" {
		t.Errorf("oldest shown log line = %q; want %q", got, "three")
	}
	last := rowText(s, h-1)
	if !strings.HasSuffix(strings.TrimRight(last, " "), "…") {
		t.Errorf("long log line should be truncated, got %q", last)
	}
}

func TestDrawMenu(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)
	r.DrawMenu("Inventory", []string{"Health Potion", "Scroll of Fireball"}, "ESCAPE to cancel")

	var all strings.Builder
	_, h := s.Size()
	for y := range h {
		all.WriteString(rowText(s, y))
		all.WriteByte('\n')
	}
	for _, want := range []string{"Inventory", "(a) Health Potion", "(b) Scroll of Fireball", "ESCAPE to cancel"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("menu is missing %q", want)
		}
	}
}

func TestScreenToWorldFollowsCamera(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)
	r.CenterOn(30, 30)
	sx, sy, ok := r.camera.WorldToScreen(31, 29)
	if !ok {
		t.Fatal("tile next to the center should be on screen")
	}
	if got := r.ScreenToWorld(sx, sy); got != (gamemap.Point{X: 31, Y: 29}) {
		t.Errorf("ScreenToWorld = %v", got)
	}
}
