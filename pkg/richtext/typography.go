package richtext

import "unicode"

type substitution struct {
	from string
	to   string
}

// substitutions are tried longest first after every typed character.
var substitutions = []substitution{
	{"(tm)", "™"},
	{"(sm)", "℠"},
	{"1/2 ", "½ "},
	{"1/4 ", "¼ "},
	{"3/4 ", "¾ "},
	{"...", "…"},
	{"(c)", "©"},
	{"(r)", "®"},
	{"+/-", "±"},
	{"--", "—"},
	{"<-", "←"},
	{"->", "→"},
	{"!=", "≠"},
	{"<<", "«"},
	{">>", "»"},
	{"^2", "²"},
	{"^3", "³"},
}

// typographic returns the replacement for the text just before the cursor, the
// number of runes it replaces and whether a rule matched. before ends with the
// typed rune.
func typographic(before []rune) (string, int, bool) {
	if len(before) == 0 {
		return "", 0, false
	}
	last := before[len(before)-1]
	if last == '"' || last == '\'' {
		return smartQuote(before[:len(before)-1], last), 1, true
	}
	for _, s := range substitutions {
		from := []rune(s.from)
		if len(from) > len(before) {
			continue
		}
		if string(before[len(before)-len(from):]) == s.from {
			// fractions only when the number stands alone
			if s.from[1] == '/' && s.from[0] != '+' && len(before) > len(from) && unicode.IsDigit(before[len(before)-len(from)-1]) {
				continue
			}
			return s.to, len(from), true
		}
	}
	return "", 0, false
}

func smartQuote(prev []rune, q rune) string {
	opening := len(prev) == 0
	if !opening {
		p := prev[len(prev)-1]
		opening = unicode.IsSpace(p) || p == '(' || p == '[' || p == '{' || p == '“' || p == '‘' || p == '—'
	}
	switch {
	case q == '"' && opening:
		return "“"
	case q == '"':
		return "”"
	case opening:
		return "‘"
	}
	return "’"
}
