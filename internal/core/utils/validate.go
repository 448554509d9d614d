package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateCPF checks the two trailing check digits of a Brazilian CPF.
// Non-digit characters are stripped first, so formatted input
// ("529.982.247-25") is accepted. Malformed input returns false, never an
// error: wrong length after stripping, or all eleven digits identical.
func ValidateCPF(cpf string) bool {
	if strings.TrimSpace(cpf) == "" {
		return false
	}

	var digits []int
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) != 11 {
		return false
	}

	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	first := checkDigit(digits[:9], 10)
	second := checkDigit(append(digits[:9:9], first), 11)

	return first == digits[9] && second == digits[10]
}

// checkDigit computes one CPF check digit: a positional sum weighted
// descending from multiplier, modulo 11, folded to 0 when the remainder is
// below 2.
func checkDigit(digits []int, multiplier int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (multiplier - i)
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// ValidateEmail reports whether the address matches the expected shape:
// a local part of word/dot/hyphen characters, an @, and a dotted domain.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailPattern.MatchString(email)
}
