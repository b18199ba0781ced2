package component

import "ascii-dungeon/internal/ecs"

// Presence-only tags, stored in the world's per-entity tag mask.
const (
	TagPlayer ecs.TagMask = 1 << iota
	TagMonster
	TagBlocksTile
	TagItem
	TagConsumable
	TagDeceased // set on the player once its death has been reported
)
