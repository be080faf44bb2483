package keymap

import (
	"unicode/utf8"

	"github.com/gogpu/gpucontext"
	"golang.org/x/text/encoding/charmap"
)

// Translator converts host key events into engine key symbols.
// The zero value is ready to use and safe for concurrent use.
type Translator struct{}

// Translate returns the key symbol, modified key symbol and modifier mask for
// a host key event. It never fails.
func (Translator) Translate(code Code, mods gpucontext.Modifiers, text string) (KeySymbol, KeySymbol, ModifierMask) {
	mask := Mask(mods)
	if sym, ok := Lookup(code); ok {
		return sym, sym, mask
	}
	sym, modified := fallback(code, text)
	return sym, modified, mask
}

// Translate is shorthand for Translator{}.Translate.
func Translate(code Code, mods gpucontext.Modifiers, text string) (KeySymbol, KeySymbol, ModifierMask) {
	return Translator{}.Translate(code, mods, text)
}

// Mask converts host modifier flags into a ModifierMask. Host Super is
// reported as Meta; lock states are not part of the mask.
func Mask(mods gpucontext.Modifiers) ModifierMask {
	var m ModifierMask
	if mods.HasShift() {
		m |= ModShift
	}
	if mods.HasControl() {
		m |= ModControl
	}
	if mods.HasAlt() {
		m |= ModAlt
	}
	if mods.HasSuper() {
		m |= ModMeta
	}
	return m
}

// fallback handles codes that are not in the table.
func fallback(code Code, text string) (KeySymbol, KeySymbol) {
	sym := KeySymbol(code)
	if code >= CodeA && code <= CodeZ {
		sym = KeySymbol(code + ('a' - 'A'))
	}
	return sym, firstLatin1(text)
}

// firstLatin1 returns the first character of text in Latin-1, '?' for a
// character Latin-1 cannot represent, or 0 for empty text.
func firstLatin1(text string) KeySymbol {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return KeyUndefined
	}
	b, ok := charmap.ISO8859_1.EncodeRune(r)
	if !ok {
		return KeyQuestion
	}
	return KeySymbol(b)
}
