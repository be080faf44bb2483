package keymap

type entry struct {
	code Code
	sym  KeySymbol
}

// entries lists the fixed table in declaration order. A code declared twice
// keeps the later symbol.
var entries = []entry{
	{CodeUnknown, KeyUndefined},
	{CodeSpace, KeySpace},

	// cursor control & motion
	{CodeHome, KeyHome},
	{CodeLeft, KeyLeft},
	{CodeUp, KeyUp},
	{CodeRight, KeyRight},
	{CodeDown, KeyDown},
	{CodePageUp, KeyPageUp},
	{CodeHome, KeyNext},
	{CodePageDown, KeyPageDown},
	{CodeEnd, KeyEnd},

	{CodeExclam, KeyExclaim},
	{CodeQuoteDbl, KeyQuotedbl},
	{CodeNumberSign, KeyHash},
	{CodeDollar, KeyDollar},
	{CodeAmpersand, KeyAmpersand},
	{CodeQuoteLeft, KeyQuote},
	{CodeParenLeft, KeyLeftparen},
	{CodeParenRight, KeyRightparen},
	{CodeAsterisk, KeyAsterisk},
	{CodePlus, KeyPlus},
	{CodeComma, KeyComma},
	{CodeMinus, KeyMinus},
	{CodePeriod, KeyPeriod},
	{CodeSlash, KeySlash},
	{CodeColon, KeyColon},
	{CodeSemicolon, KeySemicolon},
	{CodeLess, KeyLess},
	{CodeEqual, KeyEquals},
	{CodeGreater, KeyGreater},
	{CodeQuestion, KeyQuestion},
	{CodeAt, KeyAt},
	{CodeBracketLeft, KeyLeftbracket},
	{CodeBackslash, KeyBackslash},
	{CodeBracketRight, KeyRightbracket},
	{CodeBar, KeyCaret},
	{CodeUnderscore, KeyUnderscore},
	{CodeAgrave, KeyBackquote},

	// editing & control
	{CodeBack, KeyBackSpace},
	{CodeTab, KeyTab},
	{CodeBacktab, KeyTab},
	{CodeClear, KeyClear},
	{CodeReturn, KeyReturn},
	{CodePause, KeyPause},
	{CodeScrollLock, KeyScrollLock},
	{CodeEscape, KeyEscape},
	{CodeDelete, KeyDelete},

	// misc functions
	{CodeSelect, KeySelect},
	{CodePrint, KeyPrint},
	{CodeExecute, KeyExecute},
	{CodeInsert, KeyInsert},
	{CodeMenu, KeyMenu},
	{CodeCancel, KeyCancel},
	{CodeHelp, KeyHelp},
	{CodeNumLock, KeyNumLock},

	// modifiers: one side each for shift and control, alt and meta unmapped
	{CodeShift, KeyShiftL},
	{CodeControl, KeyControlR},
	{CodeCapsLock, KeyCapsLock},
}

// table is read-only after init.
var table = buildTable()

func buildTable() map[Code]KeySymbol {
	m := make(map[Code]KeySymbol, len(entries)+24)
	for _, e := range entries {
		m[e.code] = e.sym
	}
	for n := 0; n < 24; n++ {
		m[CodeF1+Code(n)] = KeyF1 + KeySymbol(n)
	}
	return m
}

// Lookup returns the table symbol for code.
func Lookup(code Code) (KeySymbol, bool) {
	sym, ok := table[code]
	return sym, ok
}

// TableLen returns the number of distinct codes in the table.
func TableLen() int { return len(table) }
