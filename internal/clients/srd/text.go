package srd

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// The SRD gives range, duration and casting time as prose ("150 feet",
// "Concentration, up to 1 minute", "1 bonus action").

func parseRange(text string) *vtt.Range {
	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "self"):
		return &vtt.Range{Units: lookup.RangeSelf}
	case strings.HasPrefix(lower, "touch"):
		return &vtt.Range{Units: lookup.RangeTouch}
	}
	return &vtt.Range{Value: firstNumber(lower), Units: lookup.RangeFeet}
}

func parseDuration(text string) *vtt.Duration {
	lower := strings.ToLower(text)
	units := lookup.DurationInstantaneous
	for _, unit := range []lookup.DurationUnit{
		lookup.DurationMinute,
		lookup.DurationHour,
		lookup.DurationDay,
		lookup.DurationRound,
		lookup.DurationTurn,
	} {
		if strings.Contains(lower, string(unit)) {
			units = unit
			break
		}
	}
	if units == lookup.DurationInstantaneous {
		return &vtt.Duration{Units: units}
	}
	return &vtt.Duration{Value: firstNumber(lower), Units: units}
}

func parseCastingTime(text string) *vtt.Activation {
	lower := strings.ToLower(text)
	activation := &vtt.Activation{Cost: firstNumber(lower)}
	switch {
	case strings.Contains(lower, "bonus action"):
		activation.Type = lookup.ActivationBonus
	case strings.Contains(lower, "reaction"):
		activation.Type = lookup.ActivationReaction
	case strings.Contains(lower, "action"):
		activation.Type = lookup.ActivationAction
	case strings.Contains(lower, "minute"):
		activation.Type = lookup.ActivationMinute
	case strings.Contains(lower, "hour"):
		activation.Type = lookup.ActivationHour
	default:
		activation.Type = lookup.ActivationNone
	}
	return activation
}

// firstNumber returns the first positive integer in text, or nil
func firstNumber(text string) *int {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool { return r < '0' || r > '9' }) {
		if n, err := strconv.Atoi(field); err == nil && n > 0 {
			return &n
		}
	}
	return nil
}
