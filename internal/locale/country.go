package locale

import (
	"sort"
	"strings"

	"github.com/biter777/countries"
)

// Country is a selectable country entry
type Country struct {
	Code string `json:"code" xml:"code"`
	Name string `json:"name" xml:"name"`
}

// lookup resolves an ISO 3166-1 alpha-2 code. ByName also matches aliases such as "UK"
// and placeholders such as "XX", so only codes that round trip through Alpha2 are accepted.
func lookup(code string) (countries.CountryCode, bool) {
	code = strings.ToUpper(code)
	if len(code) != 2 {
		return countries.Unknown, false
	}
	c := countries.ByName(code)
	if !c.IsValid() || c.Alpha2() != code {
		return countries.Unknown, false
	}
	return c, true
}

// CountryName returns the display name for an ISO 3166-1 alpha-2 code, or "" if unknown
func CountryName(code string) string {
	c, ok := lookup(code)
	if !ok {
		return ""
	}
	return c.String()
}

// CountryCode returns the alpha-2 code of the country whose display name matches name exactly
func CountryCode(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, c := range countries.All() {
		if _, ok := lookup(c.Alpha2()); ok && c.String() == name {
			return c.Alpha2(), true
		}
	}
	return "", false
}

// IsCountryCode reports whether code is an assigned ISO 3166-1 alpha-2 code, in any case
func IsCountryCode(code string) bool {
	return CountryName(code) != ""
}

// Countries returns all countries sorted by display name
func Countries() []Country {
	all := countries.All()
	out := make([]Country, 0, len(all))
	for _, c := range all {
		if _, ok := lookup(c.Alpha2()); !ok {
			continue
		}
		out = append(out, Country{Code: c.Alpha2(), Name: c.String()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
