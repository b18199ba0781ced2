package runstate

import (
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
)

// CommandKind is what the input layer decided from one raw event.
type CommandKind uint8

const (
	CmdNone CommandKind = iota // no key, or a key with no meaning here
	CmdMove
	CmdPickup
	CmdOpenInventory
	CmdOpenDrop
	CmdSelect       // menu item chosen
	CmdSelectTarget // targeting tile chosen
	CmdCancel
)

// Command is one decision of the input layer.
type Command struct {
	Kind   CommandKind
	DX, DY int
	Item   ecs.EntityID
	Target gamemap.Point
}

func None() Command           { return Command{} }
func Move(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }
func Pickup() Command         { return Command{Kind: CmdPickup} }
func OpenInventory() Command  { return Command{Kind: CmdOpenInventory} }
func OpenDrop() Command       { return Command{Kind: CmdOpenDrop} }
func Cancel() Command         { return Command{Kind: CmdCancel} }

// Select chooses item from an open menu.
func Select(item ecs.EntityID) Command { return Command{Kind: CmdSelect, Item: item} }

// SelectTarget confirms a targeting tile.
func SelectTarget(p gamemap.Point) Command { return Command{Kind: CmdSelectTarget, Target: p} }
