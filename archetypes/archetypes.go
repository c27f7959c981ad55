package archetypes

import (
	"github.com/automoto/streakdrawer/components"
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Reward = newArchetype(
		tags.Reward,
		components.Reward,
	)
	Background = newArchetype(
		tags.Background,
		components.Sprite,
		components.Object,
	)
	Panel = newArchetype(
		tags.Panel,
		components.Sprite,
		components.Object,
	)
	Token = newArchetype(
		tags.Token,
		components.Sprite,
		components.Object,
	)
	Badge = newArchetype(
		tags.Badge,
		components.Sprite,
		components.Object,
	)
	TapTarget = newArchetype(
		tags.TapTarget,
		components.TapTarget,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
