// Package keymap converts host keyboard input into engine key symbols.
//
// A host toolkit reports a key press as a key code, a set of active
// modifier flags and the text the press produced. The engine wants a
// layout-independent [KeySymbol], the symbol actually produced under the
// current layout and modifiers, and a [ModifierMask].
//
// Translation runs in two stages:
//
//  1. The fixed table. Navigation, punctuation, editing, function and a
//     subset of modifier keys are looked up in an immutable table built once
//     at package initialization. A hit yields the same symbol for both the
//     base and the modified symbol; modification is carried by the mask only.
//  2. The fallback. A miss uses the key code itself as the symbol (upper-case
//     ASCII letters folded to lower case) and the first character of the
//     produced text, as Latin-1, as the modified symbol.
//
// Usage:
//
//	var tr keymap.Translator
//	sym, mod, mask := tr.Translate(keymap.CodeA, gpucontext.ModShift, "A")
//	// sym == 'a', mod == 'A', mask == keymap.ModShift
package keymap
