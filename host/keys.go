// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/keymap"
)

var namedKeys = map[gpucontext.Key]keymap.Code{
	gpucontext.KeyEscape:    keymap.CodeEscape,
	gpucontext.KeyTab:       keymap.CodeTab,
	gpucontext.KeyBackspace: keymap.CodeBackspace,
	gpucontext.KeyEnter:     keymap.CodeReturn,
	gpucontext.KeySpace:     keymap.CodeSpace,
	gpucontext.KeyInsert:    keymap.CodeInsert,
	gpucontext.KeyDelete:    keymap.CodeDelete,
	gpucontext.KeyHome:      keymap.CodeHome,
	gpucontext.KeyEnd:       keymap.CodeEnd,
	gpucontext.KeyPageUp:    keymap.CodePageUp,
	gpucontext.KeyPageDown:  keymap.CodePageDown,
	gpucontext.KeyLeft:      keymap.CodeLeft,
	gpucontext.KeyRight:     keymap.CodeRight,
	gpucontext.KeyUp:        keymap.CodeUp,
	gpucontext.KeyDown:      keymap.CodeDown,

	gpucontext.KeyLeftShift:    keymap.CodeShift,
	gpucontext.KeyRightShift:   keymap.CodeShift,
	gpucontext.KeyLeftControl:  keymap.CodeControl,
	gpucontext.KeyRightControl: keymap.CodeControl,
	gpucontext.KeyLeftAlt:      keymap.CodeAlt,
	gpucontext.KeyRightAlt:     keymap.CodeAlt,
	gpucontext.KeyLeftSuper:    keymap.CodeSuperL,
	gpucontext.KeyRightSuper:   keymap.CodeSuperR,

	gpucontext.KeyMinus:        keymap.CodeMinus,
	gpucontext.KeyEqual:        keymap.CodeEqual,
	gpucontext.KeyLeftBracket:  keymap.CodeBracketLeft,
	gpucontext.KeyRightBracket: keymap.CodeBracketRight,
	gpucontext.KeyBackslash:    keymap.CodeBackslash,
	gpucontext.KeySemicolon:    keymap.CodeSemicolon,
	gpucontext.KeyApostrophe:   keymap.CodeApostrophe,
	gpucontext.KeyGrave:        keymap.CodeQuoteLeft,
	gpucontext.KeyComma:        keymap.CodeComma,
	gpucontext.KeyPeriod:       keymap.CodePeriod,
	gpucontext.KeySlash:        keymap.CodeSlash,

	gpucontext.KeyNumpadDecimal:  keymap.CodePeriod,
	gpucontext.KeyNumpadDivide:   keymap.CodeSlash,
	gpucontext.KeyNumpadMultiply: keymap.CodeAsterisk,
	gpucontext.KeyNumpadSubtract: keymap.CodeMinus,
	gpucontext.KeyNumpadAdd:      keymap.CodePlus,
	gpucontext.KeyNumpadEnter:    keymap.CodeEnter,

	gpucontext.KeyCapsLock:    keymap.CodeCapsLock,
	gpucontext.KeyScrollLock:  keymap.CodeScrollLock,
	gpucontext.KeyNumLock:     keymap.CodeNumLock,
	gpucontext.KeyPrintScreen: keymap.CodePrint,
	gpucontext.KeyPause:       keymap.CodePause,
}

// CodeOf returns the host key code for a gpucontext key, or
// keymap.CodeUnknown.
func CodeOf(k gpucontext.Key) keymap.Code {
	switch {
	case k >= gpucontext.KeyA && k <= gpucontext.KeyZ:
		return keymap.CodeA + keymap.Code(k-gpucontext.KeyA)
	case k >= gpucontext.Key0 && k <= gpucontext.Key9:
		return keymap.Code0 + keymap.Code(k-gpucontext.Key0)
	case k >= gpucontext.KeyNumpad0 && k <= gpucontext.KeyNumpad9:
		return keymap.Code0 + keymap.Code(k-gpucontext.KeyNumpad0)
	case k >= gpucontext.KeyF1 && k <= gpucontext.KeyF12:
		return keymap.CodeF(int(k-gpucontext.KeyF1) + 1)
	}
	if c, ok := namedKeys[k]; ok {
		return c
	}
	return keymap.CodeUnknown
}

// shiftedUS maps unshifted US-layout punctuation to its shifted form.
var shiftedUS = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
	';': ':', '\'': '"', '`': '~', ',': '<', '.': '>', '/': '?',
}

// TextOf returns the text a US layout produces for a printable host code,
// or "" for non-printable codes.
func TextOf(code keymap.Code, mods gpucontext.Modifiers) string {
	if code < keymap.CodeSpace || code > keymap.CodeAsciiTilde {
		return ""
	}
	r := rune(code)
	shift := mods.HasShift()
	if r >= 'A' && r <= 'Z' {
		if shift == (mods&gpucontext.ModCapsLock != 0) {
			r += 'a' - 'A'
		}
		return string(r)
	}
	if shift {
		if s, ok := shiftedUS[r]; ok {
			r = s
		}
	}
	return string(r)
}
