package timeutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date and date-time layouts accepted from clients and the upstream.
const (
	// DateLayout is the YYYY-MM-DD layout used for departure dates.
	DateLayout = "2006-01-02"

	// LocalDateTimeLayout is the offset-less layout the upstream uses for segment times.
	LocalDateTimeLayout = "2006-01-02T15:04:05"

	// localDateTimeMinutesLayout is LocalDateTimeLayout without seconds.
	localDateTimeMinutesLayout = "2006-01-02T15:04"
)

// ErrInvalidDuration is returned when an ISO-8601 duration cannot be parsed.
var ErrInvalidDuration = errors.New("invalid ISO-8601 duration")

// isoDurationRegex matches the day/time subset of ISO-8601 durations, e.g. "P1DT2H30M" or "PT45M".
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseLocalDateTime parses an upstream timestamp.
// Timestamps with an offset (RFC3339) keep it; offset-less timestamps are read as UTC wall-clock time.
func ParseLocalDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(LocalDateTimeLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(localDateTimeMinutesLayout, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseISODuration parses the day and time components of an ISO-8601 duration.
// Years, months and weeks are rejected because their length is calendar dependent.
func ParseISODuration(value string) (time.Duration, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	m := isoDurationRegex.FindStringSubmatch(value)
	if m == nil || value == "P" || strings.HasSuffix(value, "T") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	invalid := fmt.Errorf("%w: %q", ErrInvalidDuration, value)

	var total time.Duration
	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil || n > math.MaxInt64/int64(unit) {
			return 0, invalid
		}
		part := time.Duration(n) * unit
		if total > math.MaxInt64-part {
			return 0, invalid
		}
		total += part
	}
	if m[4] != "" {
		secs, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return 0, invalid
		}
		// Floats at or above 2^63 do not convert to int64.
		nanos := secs * float64(time.Second)
		if nanos >= math.MaxInt64 || time.Duration(nanos) > math.MaxInt64-total {
			return 0, invalid
		}
		total += time.Duration(nanos)
	}

	return total, nil
}

// FormatDuration renders a duration as "14h 30m" (minutes precision).
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	minutes := int(d.Round(time.Minute) / time.Minute)
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
