package locale

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonesAreOrderedByOffsetThenName(t *testing.T) {
	assert.True(t, sort.SliceIsSorted(zones, func(i, j int) bool {
		if zones[i].Offset != zones[j].Offset {
			return zones[i].Offset < zones[j].Offset
		}
		return zones[i].Name < zones[j].Name
	}))
}

func TestZoneForOffset(t *testing.T) {
	t.Run("returns first zone with offset", func(t *testing.T) {
		zone, ok := ZoneForOffset(3600)
		require.True(t, ok)
		assert.Equal(t, "Amsterdam", zone.Name)
	})

	t.Run("first match is the alphabetically first name", func(t *testing.T) {
		zone, ok := ZoneForOffset(-14400)
		require.True(t, ok)
		assert.Equal(t, "Atlantic Time (Canada)", zone.Name)
	})

	t.Run("half hour offsets", func(t *testing.T) {
		zone, ok := ZoneForOffset(19800)
		require.True(t, ok)
		assert.Equal(t, "Chennai", zone.Name)
	})

	t.Run("unknown offset", func(t *testing.T) {
		_, ok := ZoneForOffset(1234)
		assert.False(t, ok)
	})
}

func TestOffsetForZone(t *testing.T) {
	offset, ok := OffsetForZone("Tokyo")
	require.True(t, ok)
	assert.Equal(t, 32400, offset)

	_, ok = OffsetForZone("Atlantis")
	assert.False(t, ok)
}

func TestZonesReturnsCopy(t *testing.T) {
	z := Zones()
	z[0].Name = "changed"
	assert.NotEqual(t, "changed", zones[0].Name)
}

func TestCountryLookups(t *testing.T) {
	t.Run("code to name and back", func(t *testing.T) {
		name := CountryName("DE")
		require.NotEmpty(t, name)

		code, ok := CountryCode(name)
		require.True(t, ok)
		assert.Equal(t, "DE", code)
	})

	t.Run("empty and unknown values", func(t *testing.T) {
		assert.Empty(t, CountryName(""))
		assert.False(t, IsCountryCode("ZZZZ"))
		assert.False(t, IsCountryCode("D"))
	})

	t.Run("aliases and placeholders are not codes", func(t *testing.T) {
		for _, code := range []string{"XX", "UK", "uk"} {
			assert.False(t, IsCountryCode(code), code)
			assert.Empty(t, CountryName(code), code)
		}
	})

	t.Run("lowercase codes are accepted", func(t *testing.T) {
		assert.True(t, IsCountryCode("de"))
		assert.Equal(t, CountryName("DE"), CountryName("de"))
		assert.True(t, IsCountryCode("GB"))

		_, ok := CountryCode("Nowhereland")
		assert.False(t, ok)

		_, ok = CountryCode("")
		assert.False(t, ok)
	})

	t.Run("countries are sorted by name", func(t *testing.T) {
		list := Countries()
		require.NotEmpty(t, list)
		assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool { return list[i].Name < list[j].Name }))
		for _, c := range list {
			assert.True(t, IsCountryCode(c.Code), c.Code)
		}
	})
}
