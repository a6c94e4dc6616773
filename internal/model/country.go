package model

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Country is an ISO 3166-1 alpha-2 region code, e.g. "BR".
type Country string

const (
	CountryAustralia    Country = "AU"
	CountryBrazil       Country = "BR"
	CountryUnitedStates Country = "US"
)

func (c Country) region() (language.Region, bool) {
	code := strings.ToUpper(strings.TrimSpace(string(c)))
	if len(code) != 2 {
		return language.Region{}, false
	}
	r, err := language.ParseRegion(code)
	if err != nil || !r.IsCountry() {
		return language.Region{}, false
	}
	return r, true
}

// Valid reports whether c names a real country.
func (c Country) Valid() bool {
	_, ok := c.region()
	return ok
}

// DisplayName returns the English country name, or the raw code when it is not a known region.
func (c Country) DisplayName() string {
	r, ok := c.region()
	if !ok {
		return string(c)
	}
	if name := display.English.Regions().Name(r); name != "" {
		return name
	}
	return r.String()
}
