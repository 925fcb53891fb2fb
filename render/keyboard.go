package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"misty-maze/systems"
)

// KeyboardInput maps physical keys to logical actions
type KeyboardInput struct {
	bindings map[systems.Action][]ebiten.Key
}

// NewKeyboardInput creates the default bindings: WASD, arrow keys and vi keys
// to move, Shift to run, Q/E to zoom, R for a new maze, F1 for the log
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		bindings: map[systems.Action][]ebiten.Key{
			systems.ActionUp:         {ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeyK},
			systems.ActionDown:       {ebiten.KeyS, ebiten.KeyArrowDown, ebiten.KeyJ},
			systems.ActionLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyH},
			systems.ActionRight:      {ebiten.KeyD, ebiten.KeyArrowRight, ebiten.KeyL},
			systems.ActionRun:        {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			systems.ActionZoomIn:     {ebiten.KeyQ},
			systems.ActionZoomOut:    {ebiten.KeyE},
			systems.ActionRegenerate: {ebiten.KeyR},
			systems.ActionToggleLog:  {ebiten.KeyF1},
		},
	}
}

// Bind replaces the keys for an action
func (k *KeyboardInput) Bind(a systems.Action, keys ...ebiten.Key) {
	k.bindings[a] = keys
}

// JustPressed reports whether any key bound to a went down this frame
func (k *KeyboardInput) JustPressed(a systems.Action) bool {
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// Pressed reports whether any key bound to a is held
func (k *KeyboardInput) Pressed(a systems.Action) bool {
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
