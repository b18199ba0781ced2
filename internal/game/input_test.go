package game

import (
	"testing"

	"ascii-dungeon/internal/factory"
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/runstate"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func namedKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{namedKey(tcell.KeyUp), ActionMoveN},
		{namedKey(tcell.KeyLeft), ActionMoveW},
		{runeKey('y'), ActionMoveNW},
		{runeKey('3'), ActionMoveSE},
		{runeKey('g'), ActionPickup},
		{runeKey('i'), ActionInventory},
		{runeKey('d'), ActionDrop},
		{namedKey(tcell.KeyEnter), ActionConfirm},
		{namedKey(tcell.KeyEscape), ActionCancel},
		{runeKey('Z'), ActionNone},
	}
	for _, tt := range tests {
		if got := keyToAction(tt.ev); got != tt.want {
			t.Errorf("keyToAction(%v) = %v; want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestControllerAwaitingInput(t *testing.T) {
	g := newTestGame(t)
	c := NewController(g, nil)
	st := runstate.Of(runstate.AwaitingInput)

	tests := []struct {
		ev   tcell.Event
		want runstate.Command
	}{
		{runeKey('l'), runstate.Move(1, 0)},
		{runeKey('b'), runstate.Move(-1, 1)},
		{runeKey(','), runstate.Pickup()},
		{runeKey('i'), runstate.OpenInventory()},
		{runeKey('d'), runstate.OpenDrop()},
		{runeKey('x'), runstate.None()},
	}
	for _, tt := range tests {
		got, quit := c.Command(st, tt.ev)
		if quit || got != tt.want {
			t.Errorf("Command(%v) = %+v, quit=%v; want %+v", tt.ev, got, quit, tt.want)
		}
	}
	if _, quit := c.Command(st, runeKey('q')); !quit {
		t.Error("q should quit from the map")
	}
}

func TestControllerMenus(t *testing.T) {
	g := newTestGame(t)
	scroll := carry(g, factory.FireballScroll)
	potion := carry(g, factory.HealthPotion)
	c := NewController(g, nil)

	for _, kind := range []runstate.Kind{runstate.ShowInventory, runstate.ShowDropItem} {
		st := runstate.Of(kind)
		if got, _ := c.Command(st, runeKey('a')); got != runstate.Select(potion) {
			t.Errorf("%v 'a' = %+v; want potion", kind, got)
		}
		if got, _ := c.Command(st, runeKey('b')); got != runstate.Select(scroll) {
			t.Errorf("%v 'b' = %+v; want scroll", kind, got)
		}
		if got, _ := c.Command(st, runeKey('c')); got != runstate.None() {
			t.Errorf("%v 'c' = %+v; want nothing", kind, got)
		}
		if got, quit := c.Command(st, namedKey(tcell.KeyEscape)); quit || got != runstate.Cancel() {
			t.Errorf("%v escape = %+v quit=%v; want cancel", kind, got, quit)
		}
	}
}

func TestControllerTargetingCursor(t *testing.T) {
	g := newTestGame(t)
	scroll := carry(g, factory.MagicMissileScroll)
	c := NewController(g, nil)
	c.ResetCursor()
	st := runstate.Targeting(6, scroll)

	c.Command(st, runeKey('l'))
	c.Command(st, runeKey('l'))
	c.Command(st, runeKey('j'))
	got, _ := c.Command(st, namedKey(tcell.KeyEnter))

	want := runstate.SelectTarget(gamemap.Point{X: 7, Y: 6})
	if got != want {
		t.Errorf("confirm = %+v; want %+v", got, want)
	}
}

func TestControllerMouseTargeting(t *testing.T) {
	g := newTestGame(t)
	scroll := carry(g, factory.MagicMissileScroll)
	c := NewController(g, func(sx, sy int) gamemap.Point {
		return gamemap.Point{X: sx + 1, Y: sy + 1}
	})
	st := runstate.Targeting(6, scroll)

	hover := tcell.NewEventMouse(4, 4, tcell.ButtonNone, tcell.ModNone)
	if got, _ := c.Command(st, hover); got != runstate.None() {
		t.Errorf("hover = %+v; want nothing", got)
	}
	if c.Cursor() != (gamemap.Point{X: 5, Y: 5}) {
		t.Errorf("cursor = %v; want hover tile", c.Cursor())
	}
	click := tcell.NewEventMouse(7, 5, tcell.Button1, tcell.ModNone)
	if got, _ := c.Command(st, click); got != runstate.SelectTarget(gamemap.Point{X: 8, Y: 6}) {
		t.Errorf("click = %+v", got)
	}
	if got, _ := c.Command(runstate.Of(runstate.AwaitingInput), click); got != runstate.None() {
		t.Errorf("click outside targeting = %+v", got)
	}
}
