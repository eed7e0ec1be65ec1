// Package tabular flattens typed API items into the column-uniform records of package model.
package tabular

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// durationPattern accepts hours, minutes and seconds in that order, each optional,
// with an optional ISO-8601 "P[nD]T" prefix.
var durationPattern = regexp.MustCompile(`^(?:P(?:(\d+)D)?T?)?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

var unitSeconds = [...]int64{86400, 3600, 60, 1}

// ParseDurationSeconds converts a duration token like "PT1H23M9S" or "1h23m9s"
// into whole seconds. At least one component must be present.
func ParseDurationSeconds(s string) (int64, error) {
	m := durationPattern.FindStringSubmatch(strings.ToUpper(s))
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "" && m[4] == "") {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var total int64
	for i, unit := range unitSeconds {
		part := m[i+1]
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += n * unit
	}
	return total, nil
}

// DurationSeconds returns the seconds of a raw duration. An absent raw value
// is 0 without consulting the parser, as is a value the parser rejects.
func DurationSeconds(raw string) int64 {
	if raw == "" {
		return 0
	}
	sec, err := ParseDurationSeconds(raw)
	if err != nil {
		return 0
	}
	return sec
}
