package factory

import (
	"github.com/automoto/streakdrawer/archetypes"
	"github.com/automoto/streakdrawer/components"
	"github.com/automoto/streakdrawer/shared/tapspace"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, tapspace.New(width, height, cellSize))
	return space
}
