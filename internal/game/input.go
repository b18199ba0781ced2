package game

import (
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/runstate"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionPickup
	ActionInventory
	ActionDrop
	ActionConfirm
	ActionCancel
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionCancel
	case tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys. The number pad doubles as a compass.
	switch ev.Rune() {
	case 'k', 'K', '8':
		return ActionMoveN
	case 'j', 'J', '2':
		return ActionMoveS
	case 'l', 'L', '6':
		return ActionMoveE
	case 'h', 'H', '4':
		return ActionMoveW
	case 'y', 'Y', '7':
		return ActionMoveNW
	case 'u', 'U', '9':
		return ActionMoveNE
	case 'b', 'B', '1':
		return ActionMoveSW
	case 'n', 'N', '3':
		return ActionMoveSE
	case 'g', 'G', ',':
		return ActionPickup
	case 'i', 'I':
		return ActionInventory
	case 'd', 'D':
		return ActionDrop
	case '.':
		return ActionConfirm
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}

// Controller turns raw terminal events into commands for the current run
// state. It owns the targeting cursor, which is interface state only.
type Controller struct {
	game   *Game
	cursor gamemap.Point
	// toWorld maps a screen cell to a map tile for mouse targeting.
	toWorld func(sx, sy int) gamemap.Point
}

// NewController creates a controller for g. toWorld may be nil, in which case
// mouse events are ignored.
func NewController(g *Game, toWorld func(sx, sy int) gamemap.Point) *Controller {
	return &Controller{game: g, toWorld: toWorld}
}

// Cursor is the tile currently highlighted while targeting.
func (c *Controller) Cursor() gamemap.Point { return c.cursor }

// ResetCursor puts the targeting cursor on the player.
func (c *Controller) ResetCursor() { c.cursor = c.game.playerPosition() }

// Command interprets ev in state st. quit is true when the player asked to
// leave the game.
func (c *Controller) Command(st runstate.State, ev tcell.Event) (cmd runstate.Command, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.key(st, ev)
	case *tcell.EventMouse:
		return c.mouse(st, ev), false
	}
	return runstate.None(), false
}

func (c *Controller) key(st runstate.State, ev *tcell.EventKey) (runstate.Command, bool) {
	action := keyToAction(ev)
	if action == ActionQuit && ev.Key() == tcell.KeyCtrlC {
		return runstate.None(), true
	}

	switch st.Kind {
	case runstate.AwaitingInput:
		switch action {
		case ActionQuit, ActionCancel:
			return runstate.None(), true
		case ActionPickup:
			return runstate.Pickup(), false
		case ActionInventory:
			return runstate.OpenInventory(), false
		case ActionDrop:
			return runstate.OpenDrop(), false
		}
		if dx, dy := actionToDelta(action); dx != 0 || dy != 0 {
			return runstate.Move(dx, dy), false
		}

	case runstate.ShowInventory, runstate.ShowDropItem:
		if action == ActionCancel {
			return runstate.Cancel(), false
		}
		if ev.Key() == tcell.KeyRune {
			return c.menuSelect(ev.Rune()), false
		}

	case runstate.ShowTargeting:
		switch action {
		case ActionCancel:
			return runstate.Cancel(), false
		case ActionConfirm:
			return runstate.SelectTarget(c.cursor), false
		}
		dx, dy := actionToDelta(action)
		c.cursor.X += dx
		c.cursor.Y += dy
	}
	return runstate.None(), false
}

// menuSelect maps a letter to the item at that position of the inventory.
func (c *Controller) menuSelect(r rune) runstate.Command {
	idx := int(r - 'a')
	inv := c.game.Inventory()
	if idx < 0 || idx >= len(inv) {
		return runstate.None()
	}
	return runstate.Select(inv[idx].ID)
}

func (c *Controller) mouse(st runstate.State, ev *tcell.EventMouse) runstate.Command {
	if st.Kind != runstate.ShowTargeting || c.toWorld == nil {
		return runstate.None()
	}
	c.cursor = c.toWorld(ev.Position())
	if ev.Buttons()&tcell.Button1 != 0 {
		return runstate.SelectTarget(c.cursor)
	}
	return runstate.None()
}
