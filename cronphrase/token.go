package cronphrase

import "unicode"

// Tokenize splits one comma-free section into digit runs, word runs and
// single symbols, then resolves calendar names for kind. A word run may
// contain digits after its first character, so "w2" is one token while
// "2w" is two.
func Tokenize(section string, kind Kind) []string {
	runes := []rune(section)
	tokens := make([]string, 0, len(runes))
	for i := 0; i < len(runes); {
		j := i + 1
		switch {
		case unicode.IsDigit(runes[i]):
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
		case isWordRune(runes[i]):
			for j < len(runes) && isWordRune(runes[j]) {
				j++
			}
		}
		tokens = append(tokens, kind.ConvertIfWord(string(runes[i:j])))
		i = j
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.IsMark(r) ||
		unicode.Is(unicode.Pc, r)
}
