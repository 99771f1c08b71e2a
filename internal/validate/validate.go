// Package validate holds the pure input checks used by the dialogue steps.
package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var handlePattern = regexp.MustCompile(`^@[A-Za-z0-9_]{5,32}$`)

// Choice matches raw text against a fixed option set, exact match only.
func Choice(raw string, options []string) (string, bool) {
	for _, opt := range options {
		if raw == opt {
			return opt, true
		}
	}
	return "", false
}

// Decimal parses a decimal number, accepting a decimal comma in place of
// the decimal point.
func Decimal(raw string) (float64, bool) {
	text := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// DecimalInRange parses a decimal and checks it against inclusive bounds.
func DecimalInRange(raw string, min, max float64) (float64, bool) {
	value, ok := Decimal(raw)
	if !ok || value < min || value > max {
		return 0, false
	}
	return value, true
}

// IntInRange parses a non-negative integer (digits only, no sign) and
// checks it against inclusive bounds.
func IntInRange(raw string, min, max int) (int, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(text)
	if err != nil || value < min || value > max {
		return 0, false
	}
	return value, true
}

// FreeText trims the input and requires at least two characters.
func FreeText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if utf8.RuneCountInString(text) < 2 {
		return "", false
	}
	return text, true
}

// Contact accepts a phone number (11 digits after stripping everything
// else, leading 7 or 8) or a @handle of 5-32 word characters.
func Contact(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}
	if handlePattern.MatchString(text) {
		return text, true
	}
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	phone := digits.String()
	if len(phone) == 11 && (phone[0] == '7' || phone[0] == '8') {
		return text, true
	}
	return "", false
}
