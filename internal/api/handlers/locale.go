package handlers

import (
	"encoding/xml"
	"net/http"

	"collab-backend/internal/locale"

	"github.com/gin-gonic/gin"
)

// LocaleHandler serves the country and timezone select lists used by company forms
type LocaleHandler struct{}

// NewLocaleHandler creates a new locale handler
func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

type countriesXML struct {
	XMLName   xml.Name         `xml:"countries"`
	Countries []locale.Country `xml:"country"`
}

type timezonesXML struct {
	XMLName xml.Name      `xml:"timezones"`
	Zones   []locale.Zone `xml:"timezone"`
}

// Countries handles GET /api/v1/companies/countries
// @Summary Country select list
// @Description Get every ISO 3166-1 country as a code/name pair ordered by name
// @Tags companies
// @Produce json,xml
// @Success 200 {array} locale.Country "Countries"
// @Security BearerAuth
// @Router /companies/countries [get]
func (h *LocaleHandler) Countries(c *gin.Context) {
	countries := locale.Countries()
	if wantsXML(c) {
		c.XML(http.StatusOK, countriesXML{Countries: countries})
		return
	}
	c.JSON(http.StatusOK, countries)
}

// Timezones handles GET /api/v1/companies/timezones
// @Summary Timezone select list
// @Description Get every selectable timezone with its UTC offset in seconds, ordered by offset then name
// @Tags companies
// @Produce json,xml
// @Success 200 {array} locale.Zone "Timezones"
// @Security BearerAuth
// @Router /companies/timezones [get]
func (h *LocaleHandler) Timezones(c *gin.Context) {
	zones := locale.Zones()
	if wantsXML(c) {
		c.XML(http.StatusOK, timezonesXML{Zones: zones})
		return
	}
	c.JSON(http.StatusOK, zones)
}
