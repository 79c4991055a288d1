package domain

import (
	"sort"
	"strings"
)

// DefaultAllowedAirlines is the carrier allow-list used when none is configured.
var DefaultAllowedAirlines = map[string]string{
	"AA": "American Airlines",
	"BA": "British Airways",
	"SQ": "Singapore Airlines",
	"TG": "Thai Airways",
	"TK": "Turkish Airlines",
	"LH": "Lufthansa",
}

// AllowList is an immutable carrier allow-list mapping airline code to display name.
// Lookups are case-insensitive; codes are stored upper-case.
type AllowList struct {
	names map[string]string
}

// NewAllowList builds an AllowList from a code -> name map.
// Empty codes are ignored; a missing name falls back to the code itself.
func NewAllowList(airlines map[string]string) AllowList {
	names := make(map[string]string, len(airlines))
	for code, name := range airlines {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = code
		}
		names[code] = name
	}
	return AllowList{names: names}
}

// DefaultAllowList returns the allow-list built from DefaultAllowedAirlines.
func DefaultAllowList() AllowList {
	return NewAllowList(DefaultAllowedAirlines)
}

// Contains reports whether the carrier is allowed.
func (a AllowList) Contains(code string) bool {
	_, ok := a.names[strings.ToUpper(code)]
	return ok
}

// ContainsAny reports whether at least one of the carriers is allowed.
func (a AllowList) ContainsAny(codes []string) bool {
	for _, code := range codes {
		if a.Contains(code) {
			return true
		}
	}
	return false
}

// Name returns the display name of a carrier, or the code itself when it is not listed.
func (a AllowList) Name(code string) string {
	if name, ok := a.names[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// Codes returns the allowed carrier codes in ascending order.
func (a AllowList) Codes() []string {
	codes := make([]string, 0, len(a.names))
	for code := range a.names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of allowed carriers.
func (a AllowList) Len() int {
	return len(a.names)
}
