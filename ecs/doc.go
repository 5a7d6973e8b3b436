// Package ecs provides ECS adapters for arcade.
//
// It binds arcade sprites and animations to [Donburi] entities: attach a
// SpriteData or AnimData component to an entity, then drive everything with
// UpdateAnimations and DrawSprites from your game loop.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
