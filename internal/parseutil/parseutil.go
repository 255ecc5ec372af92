// Package parseutil extracts numbers from scraped free text. Scraped markup is
// fragile, so every extractor degrades to a usable default instead of failing.
package parseutil

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

var (
	decimalRe   = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
	digitsRe    = regexp.MustCompile(`[0-9]+`)
	thousandsRe = regexp.MustCompile(`,([0-9]{3})`)
)

// Price extracts a decimal amount from text like "$45.00 / player",
// "$1,299.00", or "From €32,50". A comma before three digits is a thousands
// separator; any other comma is a decimal point. Returns 0 when no number is
// present.
func Price(raw string) float64 {
	s := thousandsRe.ReplaceAllString(strings.TrimSpace(raw), "$1")
	s = strings.ReplaceAll(s, ",", ".")
	m := decimalRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// IntInText extracts the first integer from text, returning fallback when
// none is found.
func IntInText(raw string, fallback int) int {
	m := digitsRe.FindString(strings.TrimSpace(raw))
	if m == "" {
		return fallback
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return fallback
	}
	return v
}

// Capacity extracts a player count from text like "1-4 players", defaulting
// to a foursome.
func Capacity(raw string) int {
	n := IntInText(lastNumberText(raw), teetime.DefaultCapacity)
	if n < 1 {
		return teetime.DefaultCapacity
	}
	return n
}

// Holes maps hole-count text to 9 or 18. Anything that does not clearly say
// nine is treated as a full round, matching how booking sites label slots.
func Holes(raw string) int {
	if strings.Contains(raw, "9") && !strings.Contains(raw, "18") {
		return 9
	}
	return teetime.DefaultHoles
}

// lastNumberText returns the substring from the last number onward, so that
// range text like "1-4 players" yields the upper bound.
func lastNumberText(raw string) string {
	locs := digitsRe.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return ""
	}
	return raw[locs[len(locs)-1][0]:]
}
