package keymap

// Code is a host key code. Printable keys use the upper-case ASCII or
// Latin-1 value of the unshifted key; special keys live above 0x01000000.
type Code uint32

// Printable host codes.
const (
	CodeUnknown      Code = 0x00
	CodeSpace        Code = 0x20
	CodeExclam       Code = 0x21
	CodeQuoteDbl     Code = 0x22
	CodeNumberSign   Code = 0x23
	CodeDollar       Code = 0x24
	CodePercent      Code = 0x25
	CodeAmpersand    Code = 0x26
	CodeApostrophe   Code = 0x27
	CodeParenLeft    Code = 0x28
	CodeParenRight   Code = 0x29
	CodeAsterisk     Code = 0x2A
	CodePlus         Code = 0x2B
	CodeComma        Code = 0x2C
	CodeMinus        Code = 0x2D
	CodePeriod       Code = 0x2E
	CodeSlash        Code = 0x2F
	Code0            Code = 0x30
	Code9            Code = 0x39
	CodeColon        Code = 0x3A
	CodeSemicolon    Code = 0x3B
	CodeLess         Code = 0x3C
	CodeEqual        Code = 0x3D
	CodeGreater      Code = 0x3E
	CodeQuestion     Code = 0x3F
	CodeAt           Code = 0x40
	CodeA            Code = 0x41
	CodeZ            Code = 0x5A
	CodeBracketLeft  Code = 0x5B
	CodeBackslash    Code = 0x5C
	CodeBracketRight Code = 0x5D
	CodeAsciiCircum  Code = 0x5E
	CodeUnderscore   Code = 0x5F
	CodeQuoteLeft    Code = 0x60
	CodeBraceLeft    Code = 0x7B
	CodeBar          Code = 0x7C
	CodeBraceRight   Code = 0x7D
	CodeAsciiTilde   Code = 0x7E
	CodeAgrave       Code = 0xC0
)

// Special host codes.
const (
	CodeEscape     Code = 0x01000000
	CodeTab        Code = 0x01000001
	CodeBacktab    Code = 0x01000002
	CodeBackspace  Code = 0x01000003
	CodeReturn     Code = 0x01000004
	CodeEnter      Code = 0x01000005
	CodeInsert     Code = 0x01000006
	CodeDelete     Code = 0x01000007
	CodePause      Code = 0x01000008
	CodePrint      Code = 0x01000009
	CodeSysReq     Code = 0x0100000A
	CodeClear      Code = 0x0100000B
	CodeHome       Code = 0x01000010
	CodeEnd        Code = 0x01000011
	CodeLeft       Code = 0x01000012
	CodeUp         Code = 0x01000013
	CodeRight      Code = 0x01000014
	CodeDown       Code = 0x01000015
	CodePageUp     Code = 0x01000016
	CodePageDown   Code = 0x01000017
	CodeShift      Code = 0x01000020
	CodeControl    Code = 0x01000021
	CodeMeta       Code = 0x01000022
	CodeAlt        Code = 0x01000023
	CodeCapsLock   Code = 0x01000024
	CodeNumLock    Code = 0x01000025
	CodeScrollLock Code = 0x01000026
	CodeF1         Code = 0x01000030
	CodeF24        Code = CodeF1 + 23
	CodeSuperL     Code = 0x01000053
	CodeSuperR     Code = 0x01000054
	CodeMenu       Code = 0x01000055
	CodeHelp       Code = 0x01000058
	CodeBack       Code = 0x01000061
	CodeSelect     Code = 0x01010000
	CodeCancel     Code = 0x01020001
	CodeExecute    Code = 0x01020003
)

// CodeF returns the host code of function key Fn for n in 1..24.
func CodeF(n int) Code {
	return CodeF1 + Code(n-1)
}
