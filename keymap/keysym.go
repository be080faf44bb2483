package keymap

import "fmt"

// KeySymbol is an engine-neutral key identity. Printable keys use their
// Latin-1 value; special keys use X11 keysym values.
type KeySymbol uint16

// Key symbols produced by the table.
const (
	KeyUndefined KeySymbol = 0x0

	KeySpace        KeySymbol = 0x20
	KeyExclaim      KeySymbol = 0x21
	KeyQuotedbl     KeySymbol = 0x22
	KeyHash         KeySymbol = 0x23
	KeyDollar       KeySymbol = 0x24
	KeyAmpersand    KeySymbol = 0x26
	KeyQuote        KeySymbol = 0x27
	KeyLeftparen    KeySymbol = 0x28
	KeyRightparen   KeySymbol = 0x29
	KeyAsterisk     KeySymbol = 0x2A
	KeyPlus         KeySymbol = 0x2B
	KeyComma        KeySymbol = 0x2C
	KeyMinus        KeySymbol = 0x2D
	KeyPeriod       KeySymbol = 0x2E
	KeySlash        KeySymbol = 0x2F
	KeyColon        KeySymbol = 0x3A
	KeySemicolon    KeySymbol = 0x3B
	KeyLess         KeySymbol = 0x3C
	KeyEquals       KeySymbol = 0x3D
	KeyGreater      KeySymbol = 0x3E
	KeyQuestion     KeySymbol = 0x3F
	KeyAt           KeySymbol = 0x40
	KeyLeftbracket  KeySymbol = 0x5B
	KeyBackslash    KeySymbol = 0x5C
	KeyRightbracket KeySymbol = 0x5D
	KeyCaret        KeySymbol = 0x5E
	KeyUnderscore   KeySymbol = 0x5F
	KeyBackquote    KeySymbol = 0x60

	KeyBackSpace  KeySymbol = 0xFF08
	KeyTab        KeySymbol = 0xFF09
	KeyClear      KeySymbol = 0xFF0B
	KeyReturn     KeySymbol = 0xFF0D
	KeyPause      KeySymbol = 0xFF13
	KeyScrollLock KeySymbol = 0xFF14
	KeyEscape     KeySymbol = 0xFF1B
	KeyDelete     KeySymbol = 0xFFFF

	KeyHome     KeySymbol = 0xFF50
	KeyLeft     KeySymbol = 0xFF51
	KeyUp       KeySymbol = 0xFF52
	KeyRight    KeySymbol = 0xFF53
	KeyDown     KeySymbol = 0xFF54
	KeyPageUp   KeySymbol = 0xFF55
	KeyPageDown KeySymbol = 0xFF56
	KeyNext     KeySymbol = KeyPageDown
	KeyEnd      KeySymbol = 0xFF57

	KeySelect  KeySymbol = 0xFF60
	KeyPrint   KeySymbol = 0xFF61
	KeyExecute KeySymbol = 0xFF62
	KeyInsert  KeySymbol = 0xFF63
	KeyMenu    KeySymbol = 0xFF67
	KeyCancel  KeySymbol = 0xFF69
	KeyHelp    KeySymbol = 0xFF6A
	KeyNumLock KeySymbol = 0xFF7F

	KeyF1  KeySymbol = 0xFFBE
	KeyF24 KeySymbol = KeyF1 + 23

	KeyShiftL   KeySymbol = 0xFFE1
	KeyShiftR   KeySymbol = 0xFFE2
	KeyControlL KeySymbol = 0xFFE3
	KeyControlR KeySymbol = 0xFFE4
	KeyCapsLock KeySymbol = 0xFFE5
	KeyMetaL    KeySymbol = 0xFFE7
	KeyMetaR    KeySymbol = 0xFFE8
	KeyAltL     KeySymbol = 0xFFE9
	KeyAltR     KeySymbol = 0xFFEA
	KeySuperL   KeySymbol = 0xFFEB
	KeySuperR   KeySymbol = 0xFFEC
)

var symbolNames = map[KeySymbol]string{
	KeyUndefined:    "Undefined",
	KeySpace:        "Space",
	KeyExclaim:      "Exclaim",
	KeyQuotedbl:     "Quotedbl",
	KeyHash:         "Hash",
	KeyDollar:       "Dollar",
	KeyAmpersand:    "Ampersand",
	KeyQuote:        "Quote",
	KeyLeftparen:    "Leftparen",
	KeyRightparen:   "Rightparen",
	KeyAsterisk:     "Asterisk",
	KeyPlus:         "Plus",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyColon:        "Colon",
	KeySemicolon:    "Semicolon",
	KeyLess:         "Less",
	KeyEquals:       "Equals",
	KeyGreater:      "Greater",
	KeyQuestion:     "Question",
	KeyAt:           "At",
	KeyLeftbracket:  "Leftbracket",
	KeyBackslash:    "Backslash",
	KeyRightbracket: "Rightbracket",
	KeyCaret:        "Caret",
	KeyUnderscore:   "Underscore",
	KeyBackquote:    "Backquote",
	KeyBackSpace:    "BackSpace",
	KeyTab:          "Tab",
	KeyClear:        "Clear",
	KeyReturn:       "Return",
	KeyPause:        "Pause",
	KeyScrollLock:   "Scroll_Lock",
	KeyEscape:       "Escape",
	KeyDelete:       "Delete",
	KeyHome:         "Home",
	KeyLeft:         "Left",
	KeyUp:           "Up",
	KeyRight:        "Right",
	KeyDown:         "Down",
	KeyPageUp:       "Page_Up",
	KeyPageDown:     "Page_Down",
	KeyEnd:          "End",
	KeySelect:       "Select",
	KeyPrint:        "Print",
	KeyExecute:      "Execute",
	KeyInsert:       "Insert",
	KeyMenu:         "Menu",
	KeyCancel:       "Cancel",
	KeyHelp:         "Help",
	KeyNumLock:      "Num_Lock",
	KeyShiftL:       "Shift_L",
	KeyShiftR:       "Shift_R",
	KeyControlL:     "Control_L",
	KeyControlR:     "Control_R",
	KeyCapsLock:     "Caps_Lock",
	KeyMetaL:        "Meta_L",
	KeyMetaR:        "Meta_R",
	KeyAltL:         "Alt_L",
	KeyAltR:         "Alt_R",
	KeySuperL:       "Super_L",
	KeySuperR:       "Super_R",
}

// String returns the symbolic name of k, the character itself for other
// printable Latin-1 values, or a hex form.
func (k KeySymbol) String() string {
	if name, ok := symbolNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF24 {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if (k > 0x20 && k < 0x7F) || (k >= 0xA0 && k <= 0xFF) {
		return string(rune(k))
	}
	return fmt.Sprintf("KeySymbol(0x%X)", uint16(k))
}

// ModifierMask is the set of modifier keys active during a key or pointer
// event.
type ModifierMask uint16

// Modifier bits.
const (
	ModShift    ModifierMask = 1 << 0
	ModCapsLock ModifierMask = 1 << 1
	ModControl  ModifierMask = 1 << 2
	ModAlt      ModifierMask = 1 << 3
	ModNumLock  ModifierMask = 1 << 4
	ModMeta     ModifierMask = 1 << 7
)

// Has reports whether all bits of m2 are set in m.
func (m ModifierMask) Has(m2 ModifierMask) bool { return m&m2 == m2 }
