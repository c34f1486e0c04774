package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/pulse-heart/internal/scene"
)

// commandForKey maps a pressed key to a command. Every key without a binding
// toggles fullscreen, except bare modifiers.
func commandForKey(k ebiten.Key) scene.Command {
	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return scene.CmdResetHeart
	case ebiten.KeyR:
		return scene.CmdToggleRotation
	case ebiten.KeyB:
		return scene.CmdToggleBounce
	case ebiten.KeyE:
		return scene.CmdToggleInstructions
	case ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return scene.CmdNone
	}
	return scene.CmdToggleFullscreen
}
