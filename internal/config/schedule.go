package config

import (
	"strconv"
	"strings"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// ParseScheduleText tokenizes a free-form inflation schedule as typed into a
// form field. Entries are separated by whitespace, newlines, semicolons, or
// commas; a comma sitting between digits in a dot-free token is treated as a
// decimal mark instead. A single trailing percent sign marks the value as a
// percentage. Non-numeric tokens are silently dropped and every value is
// floored at -0.99.
func ParseScheduleText(text string) []float64 {
	var schedule []float64
	for _, chunk := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		for _, token := range splitCommaChunk(chunk) {
			if value, ok := parseScheduleToken(token); ok {
				schedule = append(schedule, domain.ClampRate(value))
			}
		}
	}
	return schedule
}

// splitCommaChunk splits a chunk on commas unless the chunk reads as a single
// decimal-comma number ("2,8"), in which case the comma becomes a point.
func splitCommaChunk(chunk string) []string {
	if !strings.Contains(chunk, ",") {
		return []string{chunk}
	}
	if isDecimalComma(chunk) {
		return []string{strings.Replace(chunk, ",", ".", 1)}
	}
	return strings.Split(chunk, ",")
}

// isDecimalComma reports whether the chunk is digits around exactly one
// comma, with no dot, optionally signed or percent-suffixed.
func isDecimalComma(chunk string) bool {
	s := strings.TrimSuffix(chunk, "%")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if strings.Count(s, ",") != 1 || strings.Contains(s, ".") {
		return false
	}
	whole, frac, _ := strings.Cut(s, ",")
	return isDigits(whole) && isDigits(frac)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseScheduleToken(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}
	percent := strings.HasSuffix(token, "%")
	token = strings.TrimSuffix(token, "%")
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		value /= 100
	}
	return value, true
}
