package theory

import "strings"

var romanValues = map[rune]int{
	'M': 1000,
	'D': 500,
	'C': 100,
	'L': 50,
	'X': 10,
	'V': 5,
	'I': 1,
}

// ParseRomanNumeral decodes a Roman numeral, ignoring case. A symbol
// followed by a larger one is subtracted, anything else is added. Decoding
// is permissive: "IIII" is 4 and "IIX" is 10, but an empty string or any
// character outside MDCLXVI is rejected.
func ParseRomanNumeral(text string) (int, error) {
	symbols := []rune(strings.ToUpper(text))
	if len(symbols) == 0 {
		return 0, newError(ErrInvalidRomanNumeral, text)
	}

	total := 0
	for i, r := range symbols {
		value, ok := romanValues[r]
		if !ok {
			return 0, newError(ErrInvalidRomanNumeral, text)
		}

		if i+1 < len(symbols) {
			next, ok := romanValues[symbols[i+1]]
			if !ok {
				return 0, newError(ErrInvalidRomanNumeral, text)
			}
			if next > value {
				total -= value
				continue
			}
		}
		total += value
	}

	return total, nil
}
