package frontend

// Grammar holds a collection of helper methods for classifying runes and
// keywords based on a given language specification
type Grammar struct {
	Keywords []string
}

func (g *Grammar) isWhitespace(r rune) (matches bool) {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

func (g *Grammar) isAlphabetical(r rune) (matches bool) {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func (g *Grammar) isNumeric(r rune) (matches bool) {
	return (r >= '0' && r <= '9')
}

// isPunctuation returns true for any printable ASCII rune that is neither
// whitespace nor alphanumeric. Runes outside this range are left for the
// lexer's Unknown classification
func (g *Grammar) isPunctuation(r rune) (matches bool) {
	if r <= ' ' || r >= 0x7f {
		return false
	}

	return !g.isAlphabetical(r) && !g.isNumeric(r)
}

// isKeyword returns true if a given string is included in the Grammar's list
// of reserved words. Matching is exact and case-sensitive
func (g *Grammar) isKeyword(s string) (matches bool) {
	for i, l := 0, len(g.Keywords); i < l; i++ {
		if g.Keywords[i] == s {
			return true
		}
	}

	return false
}
