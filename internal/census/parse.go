package census

import (
	"math"
	"strconv"
	"strings"
)

// parseCurrency parses values like "$43,296.36" into a float. Empty or
// unparseable input returns NaN.
func parseCurrency(s string) float64 {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "$", "")
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.ReplaceAll(raw, " ", "")
	if raw == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// parseShare parses percentage values like "11.2%" into a float (keeping the
// 0–100 scale). Empty or unparseable input returns NaN.
func parseShare(s string) float64 {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// parseCount parses a plain integer count, tolerating thousands separators.
func parseCount(s string) float64 {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// parseGenderPop splits a composite like "2341093M_2489527F" into male and
// female counts. An empty or malformed half is NaN; ok is false only when the
// composite shape itself is wrong (no separator), in which case both halves
// are NaN.
func parseGenderPop(s string) (male, female float64, ok bool) {
	raw := strings.TrimSpace(s)
	idx := strings.Index(raw, "_")
	if idx < 0 {
		return math.NaN(), math.NaN(), false
	}
	male = parseGenderHalf(raw[:idx], 'M')
	female = parseGenderHalf(raw[idx+1:], 'F')
	return male, female, true
}

func parseGenderHalf(s string, suffix byte) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	if s[len(s)-1] != suffix {
		return math.NaN()
	}
	return parseCount(s[:len(s)-1])
}
