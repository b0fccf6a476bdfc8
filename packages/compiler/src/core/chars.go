package core

// Character code constants used by the template and expression lexers
const (
	CharEOF    = 0
	CharTAB    = 9
	CharLF     = 10
	CharCR     = 13
	CharSPACE  = 32
	CharBANG   = 33
	CharDQ     = 34
	CharDollar = 36
	CharAMP    = 38
	CharSQ     = 39
	CharLPAREN = 40
	CharRPAREN = 41
	CharCOMMA  = 44
	CharMINUS  = 45
	CharPERIOD = 46
	CharSLASH  = 47
	CharCOLON  = 58
	CharLT     = 60
	CharEQ     = 61
	CharGT     = 62

	CharQUESTION = 63

	Char0 = 48
	Char9 = 57

	CharA = 65
	CharZ = 90

	CharLBRACKET   = 91
	CharBACKSLASH  = 92
	CharRBRACKET   = 93
	CharUnderscore = 95

	CharLowerA = 97
	CharLowerZ = 122

	CharLBRACE = 123
	CharBAR    = 124
	CharRBRACE = 125
	CharNBSP   = 160
)

// IsWhitespace checks if a character code represents whitespace
func IsWhitespace(code int) bool {
	return (code >= CharTAB && code <= CharSPACE) || code == CharNBSP
}

// IsDigit checks if a character code represents a digit
func IsDigit(code int) bool {
	return Char0 <= code && code <= Char9
}

// IsAsciiLetter checks if a character code represents an ASCII letter
func IsAsciiLetter(code int) bool {
	return (code >= CharLowerA && code <= CharLowerZ) || (code >= CharA && code <= CharZ)
}

// IsAsciiUpper checks if a character code represents an upper-case ASCII letter
func IsAsciiUpper(code int) bool {
	return code >= CharA && code <= CharZ
}

// IsIdentifierStart checks if a character can start a JavaScript identifier
func IsIdentifierStart(code int) bool {
	return IsAsciiLetter(code) || code == CharUnderscore || code == CharDollar
}

// IsIdentifierPart checks if a character can continue a JavaScript identifier
func IsIdentifierPart(code int) bool {
	return IsIdentifierStart(code) || IsDigit(code)
}

// IsNameChar checks if a character can appear in a tag or attribute name.
// Tag names may contain '.' (member tags) and attribute names ':' or '-'.
func IsNameChar(code int) bool {
	return IsIdentifierPart(code) || code == CharMINUS || code == CharCOLON || code == CharPERIOD
}

// IsQuote checks if a character code represents a quote character
func IsQuote(code int) bool {
	return code == CharSQ || code == CharDQ
}
