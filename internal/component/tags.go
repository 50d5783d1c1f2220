package component

import "emoji-inventory/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 8
	CTagStash  ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagStash marks an item pile the player can take from and drop into.
type TagStash struct{}

func (TagStash) Type() ecs.ComponentType { return CTagStash }
