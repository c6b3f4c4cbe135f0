// Package refdata holds the immutable reference datasets the rest of the
// application reads: languages, industry profiles and location profiles.
// Lookups that miss a table fall back to neutral values rather than failing;
// missing data means "no adjustment", not an error.
package refdata

import "github.com/example/linguabot/pkg/models"

// Fallback figures used when a language code is not in the catalog.
const (
	FallbackSalaryIncrease   = 10000
	FallbackJobOpportunities = 1000
)

// Catalog is a read-only view over the three reference tables. Build it once
// at startup and share it freely; it is safe for concurrent use.
type Catalog struct {
	languages  []models.Language
	industries []models.IndustryProfile
	locations  []models.LocationProfile

	byCode     map[string]int
	byIndustry map[string]int
	byCity     map[string]int
}

// NewCatalog builds a catalog from the given tables. Nil slices fall back to
// the built-in defaults.
func NewCatalog(languages []models.Language, industries []models.IndustryProfile, locations []models.LocationProfile) *Catalog {
	if languages == nil {
		languages = DefaultLanguages()
	}
	if industries == nil {
		industries = DefaultIndustries()
	}
	if locations == nil {
		locations = DefaultLocations()
	}

	c := &Catalog{
		languages:  languages,
		industries: industries,
		locations:  locations,
		byCode:     make(map[string]int, len(languages)),
		byIndustry: make(map[string]int, len(industries)),
		byCity:     make(map[string]int, len(locations)),
	}
	for i, l := range languages {
		c.byCode[l.Code] = i
	}
	for i, p := range industries {
		c.byIndustry[p.Name] = i
	}
	for i, p := range locations {
		c.byCity[p.City] = i
	}
	return c
}

// Default returns a catalog backed entirely by the built-in tables.
func Default() *Catalog {
	return NewCatalog(nil, nil, nil)
}

// Languages returns the reference languages in table order.
func (c *Catalog) Languages() []models.Language {
	out := make([]models.Language, len(c.languages))
	copy(out, c.languages)
	return out
}

// LanguageByCode looks up a language by its short code.
func (c *Catalog) LanguageByCode(code string) (models.Language, bool) {
	if i, ok := c.byCode[code]; ok {
		return c.languages[i], true
	}
	return models.Language{}, false
}

// Industries returns the industry profiles in table order.
func (c *Catalog) Industries() []models.IndustryProfile {
	out := make([]models.IndustryProfile, len(c.industries))
	copy(out, c.industries)
	return out
}

// IndustryByName looks up an industry profile by its unique name.
func (c *Catalog) IndustryByName(name string) (models.IndustryProfile, bool) {
	if i, ok := c.byIndustry[name]; ok {
		return c.industries[i], true
	}
	return models.IndustryProfile{}, false
}

// Locations returns the location profiles in table order.
func (c *Catalog) Locations() []models.LocationProfile {
	out := make([]models.LocationProfile, len(c.locations))
	copy(out, c.locations)
	return out
}

// LocationByCity looks up a location profile by city name.
func (c *Catalog) LocationByCity(city string) (models.LocationProfile, bool) {
	if i, ok := c.byCity[city]; ok {
		return c.locations[i], true
	}
	return models.LocationProfile{}, false
}

// IndustryMultiplier returns the salary multiplier for (industry, language),
// defaulting to 1.0 when either side is unknown.
func (c *Catalog) IndustryMultiplier(industry, code string) float64 {
	p, ok := c.IndustryByName(industry)
	if !ok {
		return 1.0
	}
	return p.MultiplierFor(code)
}

// LocationMultiplier returns the demand multiplier for (city, language),
// defaulting to 1.0 when either side is unknown.
func (c *Catalog) LocationMultiplier(city, code string) float64 {
	p, ok := c.LocationByCity(city)
	if !ok {
		return 1.0
	}
	return p.DemandFor(code)
}
