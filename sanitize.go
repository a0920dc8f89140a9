package iso8601

import "strings"

// SanitizeYear normalises the year at the start of an ISO 8601 date or date-time so that it has the form ISO
// parsers expect: at least four digits, no superfluous leading zeros and a '+' in front of unsigned years
// longer than four digits. "5-03-01" becomes "0005-03-01", "012345-01-01" becomes "+12345-01-01" and "00002024"
// becomes "2024".
//
// Only a leading run of digits, optionally signed and followed by '-' or the end of the text, is treated as a
// year. Anything else is returned unchanged, as is everything after the year. SanitizeYear is idempotent.
func SanitizeYear(text string) string {
	sign := ""
	rest := text
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		sign, rest = rest[:1], rest[1:]
	}

	end := 0
	for end < len(rest) && isDigit(rest[end]) {
		end++
	}

	if end == 0 || (end < len(rest) && rest[end] != '-') {
		return text
	}

	digits := strings.TrimLeft(rest[:end], "0")
	if len(digits) < 4 {
		digits = strings.Repeat("0", 4-len(digits)) + digits
	}

	if sign == "" && len(digits) > 4 {
		sign = "+"
	}

	return sign + digits + rest[end:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
