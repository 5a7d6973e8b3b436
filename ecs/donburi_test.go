package ecs

import (
	"math"
	"testing"

	"github.com/keithhamilton/arcade"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

func makeAnim(t *testing.T) *arcade.AnimatedSprite {
	t.Helper()
	sheet := arcade.NewSprite(arcade.NewTexture(ebiten.NewImage(64, 16)))
	frames, err := arcade.SliceFrames(sheet, arcade.SheetDescr{
		TotalFrames: 4, FramesWide: 4, FramesHigh: 1, FrameWidth: 16, FrameHeight: 16,
	})
	if err != nil {
		t.Fatalf("SliceFrames: %v", err)
	}
	return arcade.NewAnimatedSprite(frames, 0.25)
}

func TestUpdateAnimations_AdvancesEveryEntity(t *testing.T) {
	w := donburi.NewWorld()

	a1 := makeAnim(t)
	a2 := makeAnim(t)
	e1 := w.Entry(w.Create(AnimComponent))
	AnimComponent.SetValue(e1, AnimData{Anim: a1, Dest: arcade.Rect{Width: 16, Height: 16}})
	e2 := w.Entry(w.Create(AnimComponent))
	AnimComponent.SetValue(e2, AnimData{Anim: a2, Dest: arcade.Rect{X: 32, Width: 16, Height: 16}})

	UpdateAnimations(w, 0.3)

	if math.Abs(a1.CurrentTime()-0.3) > 1e-9 {
		t.Errorf("a1 CurrentTime = %g, want 0.3", a1.CurrentTime())
	}
	if math.Abs(a2.CurrentTime()-0.3) > 1e-9 {
		t.Errorf("a2 CurrentTime = %g, want 0.3", a2.CurrentTime())
	}
}

func TestUpdateAnimations_IgnoresSpriteOnlyEntities(t *testing.T) {
	w := donburi.NewWorld()
	sprite := arcade.NewSprite(arcade.NewTexture(ebiten.NewImage(16, 16)))
	e := w.Entry(w.Create(SpriteComponent))
	SpriteComponent.SetValue(e, SpriteData{Sprite: sprite, Dest: arcade.Rect{Width: 16, Height: 16}})

	// The entity has no AnimData; the query must skip it.
	UpdateAnimations(w, 0.1)
}

func TestDrawSprites_RendersBothComponentTypes(t *testing.T) {
	w := donburi.NewWorld()
	r := arcade.NewRenderer(ebiten.NewImage(128, 128))

	sprite := arcade.NewSprite(arcade.NewTexture(ebiten.NewImage(16, 16)))
	se := w.Entry(w.Create(SpriteComponent))
	SpriteComponent.SetValue(se, SpriteData{Sprite: sprite, Dest: arcade.Rect{Width: 32, Height: 32}})

	ae := w.Entry(w.Create(AnimComponent))
	AnimComponent.SetValue(ae, AnimData{Anim: makeAnim(t), Dest: arcade.Rect{X: 64, Width: 32, Height: 32}})

	DrawSprites(w, r)
}
