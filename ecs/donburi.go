package ecs

import (
	"github.com/keithhamilton/arcade"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// SpriteData attaches a static sprite and its destination rectangle to an
// entity.
type SpriteData struct {
	Sprite arcade.Sprite
	Dest   arcade.Rect
}

// AnimData attaches an animated sprite and its destination rectangle to an
// entity. Each entity should hold its own AnimatedSprite (use Clone to fork
// timing state from a shared template).
type AnimData struct {
	Anim *arcade.AnimatedSprite
	Dest arcade.Rect
}

// SpriteComponent is the Donburi component type for SpriteData.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

// AnimComponent is the Donburi component type for AnimData.
var AnimComponent = donburi.NewComponentType[AnimData]()

var (
	animQuery   = donburi.NewQuery(filter.Contains(AnimComponent))
	spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent))
)

// UpdateAnimations advances the clock of every AnimData entity by dt
// seconds. Call once per tick before drawing.
func UpdateAnimations(w donburi.World, dt float64) {
	animQuery.Each(w, func(entry *donburi.Entry) {
		AnimComponent.Get(entry).Anim.AddTime(dt)
	})
}

// DrawSprites renders every SpriteData entity, then every AnimData entity,
// into their destination rectangles. Iteration order within each component
// type follows Donburi's storage order; callers needing strict z-ordering
// should draw in their own systems instead.
func DrawSprites(w donburi.World, r *arcade.Renderer) {
	spriteQuery.Each(w, func(entry *donburi.Entry) {
		d := SpriteComponent.Get(entry)
		r.CopySprite(d.Sprite, d.Dest)
	})
	animQuery.Each(w, func(entry *donburi.Entry) {
		d := AnimComponent.Get(entry)
		r.CopySprite(d.Anim, d.Dest)
	})
}
