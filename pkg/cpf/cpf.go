// Package cpf validates and formats Brazilian individual taxpayer numbers (CPF).
package cpf

import "strings"

// Length is the number of digits in a CPF.
const Length = 11

// repeated holds the all-same-digit sequences that pass the checksum but are never issued.
var repeated = map[string]struct{}{
	"00000000000": {},
	"11111111111": {},
	"22222222222": {},
	"33333333333": {},
	"44444444444": {},
	"55555555555": {},
	"66666666666": {},
	"77777777777": {},
	"88888888888": {},
	"99999999999": {},
}

// Digits strips every non-digit character from input.
func Digits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Validate reports whether input, once stripped of formatting, is an 11 digit CPF
// whose two trailing verification digits match the checksum of the first nine.
func Validate(input string) bool {
	digits := Digits(input)
	if len(digits) != Length {
		return false
	}
	if _, ok := repeated[digits]; ok {
		return false
	}

	base := digits[:9]
	first := checkDigit(base, 10)
	second := checkDigit(base+string(rune('0'+first)), 11)

	return digits[9] == byte('0'+first) && digits[10] == byte('0'+second)
}

// Format masks input progressively as XXX.XXX.XXX-XX. Digits past the eleventh are dropped.
func Format(input string) string {
	digits := Digits(input)
	if len(digits) > Length {
		digits = digits[:Length]
	}

	n := len(digits)
	switch {
	case n <= 3:
		return digits
	case n <= 6:
		return digits[:3] + "." + digits[3:]
	case n <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

func checkDigit(partial string, factor int) int {
	sum := 0
	for i := 0; i < len(partial); i++ {
		sum += int(partial[i]-'0') * (factor - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
