package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	_         = iota
	KB uint64 = 1 << (10 * iota)
	MB
	GB
)

var sizeRegex = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*([KMG]?B?)?$`)

// ParseSize parses a human-readable size string into bytes.
// Supports: B, K/KB, M/MB, G/GB (case-insensitive, binary multiples)
// Examples: "100KB", "1.5M", "2048"
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	matches := sizeRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", matches[1])
	}

	var multiplier uint64
	switch strings.ToUpper(matches[2]) {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = KB
	case "M", "MB":
		multiplier = MB
	case "G", "GB":
		multiplier = GB
	default:
		return 0, fmt.Errorf("unknown unit: %q", matches[2])
	}

	return uint64(num * float64(multiplier)), nil
}
