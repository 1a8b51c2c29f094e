package shared

import "strings"

// NormalizeRUT strips dots and uppercases the check digit, keeping the dash
// before it: "12.345.678-k" becomes "12345678-K".
func NormalizeRUT(raw string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), ".", ""))
	if cleaned == "" {
		return ""
	}
	if !strings.Contains(cleaned, "-") && len(cleaned) > 1 {
		cleaned = cleaned[:len(cleaned)-1] + "-" + cleaned[len(cleaned)-1:]
	}
	return cleaned
}

// ValidRUT checks the modulo-11 check digit of a normalized RUT.
func ValidRUT(rut string) bool {
	rut = NormalizeRUT(rut)
	parts := strings.Split(rut, "-")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != 1 {
		return false
	}
	number, check := parts[0], parts[1]

	sum := 0
	factor := 2
	for i := len(number) - 1; i >= 0; i-- {
		d := number[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	remainder := 11 - sum%11
	var expected string
	switch remainder {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = string(rune('0' + remainder))
	}
	return check == expected
}
