package geo

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tbourn/go-rankings-backend/internal/domain"
)

// Resolution is layered: each tier is a pure matcher over the case-folded
// location text, tried in order with first match winning. Specific names run
// before coarse abbreviations because two-letter tokens risk false positives;
// they are therefore checked last and only as exact tokens, never substrings.
var matchers = []func(loc string) (domain.Country, bool){
	matchCountryName,
	matchCity,
	matchAlias,
	matchUSState,
	matchUSStateToken,
}

// Resolve maps a free-text profile location to a country. Empty or blank
// input, and text matching no tier, yield ok=false.
func Resolve(location string) (domain.Country, bool) {
	if strings.TrimSpace(location) == "" {
		return domain.Country{}, false
	}
	loc := fold(location)
	for _, match := range matchers {
		if c, ok := match(loc); ok {
			return c, true
		}
	}
	return domain.Country{}, false
}

// fold lower-cases with full Unicode case folding, so "ZÜRICH" matches
// "Zürich".
func fold(s string) string {
	return cases.Fold().String(s)
}

func matchCountryName(loc string) (domain.Country, bool) {
	for _, c := range Countries {
		if strings.Contains(loc, fold(c.Name)) {
			return c, true
		}
	}
	return domain.Country{}, false
}

func matchCity(loc string) (domain.Country, bool) {
	for _, c := range Countries {
		for _, city := range c.Cities {
			if strings.Contains(loc, fold(city)) {
				return c, true
			}
		}
	}
	return domain.Country{}, false
}

// aliases maps common abbreviations and synonyms to canonical country names.
// Kept as an ordered slice so resolution is deterministic.
var aliases = []struct {
	token   string
	country string
}{
	{"united states of america", "United States"},
	{"usa", "United States"},
	{"u.s.a", "United States"},
	{"u.s.", "United States"},
	{"america", "United States"},
	{"us", "United States"},
	{"uk", "United Kingdom"},
	{"england", "United Kingdom"},
	{"scotland", "United Kingdom"},
	{"wales", "United Kingdom"},
	{"britain", "United Kingdom"},
	{"uae", "United Arab Emirates"},
	{"holland", "Netherlands"},
	{"korea", "South Korea"},
}

func matchAlias(loc string) (domain.Country, bool) {
	for _, a := range aliases {
		if strings.Contains(loc, a.token) {
			if c, ok := FindByName(a.country); ok {
				return c, true
			}
		}
	}
	return domain.Country{}, false
}

// usStates are first-level administrative regions mapped to the United
// States. Substring match, like country and city names.
var usStates = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"new hampshire", "new jersey", "new mexico", "new york",
	"north carolina", "north dakota", "ohio", "oklahoma", "oregon",
	"pennsylvania", "rhode island", "south carolina", "south dakota",
	"tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west virginia", "wisconsin", "wyoming",
}

func matchUSState(loc string) (domain.Country, bool) {
	for _, state := range usStates {
		if strings.Contains(loc, state) {
			return FindByName("United States")
		}
	}
	return domain.Country{}, false
}

// usStateAbbrs are two-letter postal abbreviations. Matched only as whole
// tokens: "Car insurance" must not resolve via the embedded "ar".
var usStateAbbrs = map[string]struct{}{
	"al": {}, "ak": {}, "az": {}, "ar": {}, "ca": {}, "co": {}, "ct": {},
	"de": {}, "fl": {}, "ga": {}, "hi": {}, "id": {}, "il": {}, "in": {},
	"ia": {}, "ks": {}, "ky": {}, "la": {}, "me": {}, "md": {}, "ma": {},
	"mi": {}, "mn": {}, "ms": {}, "mo": {}, "mt": {}, "ne": {}, "nv": {},
	"nh": {}, "nj": {}, "nm": {}, "ny": {}, "nc": {}, "nd": {}, "oh": {},
	"ok": {}, "or": {}, "pa": {}, "ri": {}, "sc": {}, "sd": {}, "tn": {},
	"tx": {}, "ut": {}, "vt": {}, "va": {}, "wa": {}, "wv": {}, "wi": {},
	"wy": {},
}

// tokenRE splits on runs of non-alphanumeric characters.
var tokenRE = regexp.MustCompile(`[^a-z0-9]+`)

func matchUSStateToken(loc string) (domain.Country, bool) {
	for _, tok := range tokenRE.Split(loc, -1) {
		if _, ok := usStateAbbrs[tok]; ok {
			return FindByName("United States")
		}
	}
	return domain.Country{}, false
}
