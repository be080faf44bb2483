// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyTable = map[ebiten.Key]gpucontext.Key{
	ebiten.KeyEscape:     gpucontext.KeyEscape,
	ebiten.KeyTab:        gpucontext.KeyTab,
	ebiten.KeyBackspace:  gpucontext.KeyBackspace,
	ebiten.KeyEnter:      gpucontext.KeyEnter,
	ebiten.KeySpace:      gpucontext.KeySpace,
	ebiten.KeyInsert:     gpucontext.KeyInsert,
	ebiten.KeyDelete:     gpucontext.KeyDelete,
	ebiten.KeyHome:       gpucontext.KeyHome,
	ebiten.KeyEnd:        gpucontext.KeyEnd,
	ebiten.KeyPageUp:     gpucontext.KeyPageUp,
	ebiten.KeyPageDown:   gpucontext.KeyPageDown,
	ebiten.KeyArrowLeft:  gpucontext.KeyLeft,
	ebiten.KeyArrowRight: gpucontext.KeyRight,
	ebiten.KeyArrowUp:    gpucontext.KeyUp,
	ebiten.KeyArrowDown:  gpucontext.KeyDown,

	ebiten.KeyShiftLeft:    gpucontext.KeyLeftShift,
	ebiten.KeyShiftRight:   gpucontext.KeyRightShift,
	ebiten.KeyControlLeft:  gpucontext.KeyLeftControl,
	ebiten.KeyControlRight: gpucontext.KeyRightControl,
	ebiten.KeyAltLeft:      gpucontext.KeyLeftAlt,
	ebiten.KeyAltRight:     gpucontext.KeyRightAlt,
	ebiten.KeyMetaLeft:     gpucontext.KeyLeftSuper,
	ebiten.KeyMetaRight:    gpucontext.KeyRightSuper,

	ebiten.KeyMinus:        gpucontext.KeyMinus,
	ebiten.KeyEqual:        gpucontext.KeyEqual,
	ebiten.KeyBracketLeft:  gpucontext.KeyLeftBracket,
	ebiten.KeyBracketRight: gpucontext.KeyRightBracket,
	ebiten.KeyBackslash:    gpucontext.KeyBackslash,
	ebiten.KeySemicolon:    gpucontext.KeySemicolon,
	ebiten.KeyQuote:        gpucontext.KeyApostrophe,
	ebiten.KeyBackquote:    gpucontext.KeyGrave,
	ebiten.KeyComma:        gpucontext.KeyComma,
	ebiten.KeyPeriod:       gpucontext.KeyPeriod,
	ebiten.KeySlash:        gpucontext.KeySlash,

	ebiten.KeyNumpadDecimal:  gpucontext.KeyNumpadDecimal,
	ebiten.KeyNumpadDivide:   gpucontext.KeyNumpadDivide,
	ebiten.KeyNumpadMultiply: gpucontext.KeyNumpadMultiply,
	ebiten.KeyNumpadSubtract: gpucontext.KeyNumpadSubtract,
	ebiten.KeyNumpadAdd:      gpucontext.KeyNumpadAdd,
	ebiten.KeyNumpadEnter:    gpucontext.KeyNumpadEnter,

	ebiten.KeyCapsLock:    gpucontext.KeyCapsLock,
	ebiten.KeyScrollLock:  gpucontext.KeyScrollLock,
	ebiten.KeyNumLock:     gpucontext.KeyNumLock,
	ebiten.KeyPrintScreen: gpucontext.KeyPrintScreen,
	ebiten.KeyPause:       gpucontext.KeyPause,
}

// keyOf maps an ebiten key to a gpucontext key, or gpucontext.KeyUnknown.
func keyOf(k ebiten.Key) gpucontext.Key {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return gpucontext.KeyA + gpucontext.Key(k-ebiten.KeyA)
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return gpucontext.Key0 + gpucontext.Key(k-ebiten.KeyDigit0)
	case k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9:
		return gpucontext.KeyNumpad0 + gpucontext.Key(k-ebiten.KeyNumpad0)
	case k >= ebiten.KeyF1 && k <= ebiten.KeyF12:
		return gpucontext.KeyF1 + gpucontext.Key(k-ebiten.KeyF1)
	}
	if g, ok := keyTable[k]; ok {
		return g
	}
	return gpucontext.KeyUnknown
}

var buttonTable = []struct {
	ebiten ebiten.MouseButton
	button gpucontext.MouseButton
}{
	{ebiten.MouseButtonLeft, gpucontext.MouseButtonLeft},
	{ebiten.MouseButtonMiddle, gpucontext.MouseButtonMiddle},
	{ebiten.MouseButtonRight, gpucontext.MouseButtonRight},
	{ebiten.MouseButton3, gpucontext.MouseButton4},
	{ebiten.MouseButton4, gpucontext.MouseButton5},
}

// modifiers returns the modifier state of the keyboard.
func modifiers() gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= gpucontext.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= gpucontext.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= gpucontext.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= gpucontext.ModSuper
	}
	return m
}
