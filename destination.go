package wanderlust

import "strings"

// A Category groups Destinations on a browsing page.
type Category string

const (
	Cities  Category = "cities"
	Hiking  Category = "hiking"
	Islands Category = "islands"
)

// Path is the route the Category's page is served at.
func (c Category) Path() string { return "/" + string(c) }

// Title is the human-readable heading for the Category.
func (c Category) Title() string {
	switch c {
	case Cities:
		return "Cities"
	case Hiking:
		return "Hiking"
	case Islands:
		return "Islands"
	default:
		return string(c)
	}
}

// A Destination is a fixed entry in the catalog.
type Destination struct {
	Name     string
	Slug     string
	Category Category
	Summary  string
}

// Path is the route the Destination's page is served at.
func (d Destination) Path() string { return "/" + d.Slug }

// A Catalog is an ordered, read-only list of Destinations.
type Catalog []Destination

// DefaultCatalog is the set of Destinations every wanderlust app serves.
var DefaultCatalog = Catalog{
	{Name: "Paris", Slug: "paris", Category: Cities, Summary: "Cafés, museums, and the banks of the Seine."},
	{Name: "Rome", Slug: "rome", Category: Cities, Summary: "Three thousand years of history on every corner."},
	{Name: "Bali", Slug: "bali", Category: Islands, Summary: "Rice terraces, temples, and surf breaks."},
	{Name: "Santorini", Slug: "santorini", Category: Islands, Summary: "Whitewashed villages above a flooded caldera."},
	{Name: "Inca Trail", Slug: "inca", Category: Hiking, Summary: "Four days through the Andes to Machu Picchu."},
	{Name: "Annapurna Circuit", Slug: "annapurna", Category: Hiking, Summary: "A high pass loop through the Nepalese Himalaya."},
}

// Categories lists the Categories present in the Catalog in first-seen order.
func (c Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	var cats []Category
	for _, d := range c {
		if seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		cats = append(cats, d.Category)
	}

	return cats
}

// ByCategory returns the Destinations in cat, preserving Catalog order.
func (c Catalog) ByCategory(cat Category) []Destination {
	out := make([]Destination, 0)
	for _, d := range c {
		if d.Category == cat {
			out = append(out, d)
		}
	}

	return out
}

// Lookup finds the Destination named name, ignoring case.
func (c Catalog) Lookup(name string) (Destination, bool) {
	for _, d := range c {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}

	return Destination{}, false
}

// LookupSlug finds the Destination served at /slug.
func (c Catalog) LookupSlug(slug string) (Destination, bool) {
	for _, d := range c {
		if d.Slug == slug {
			return d, true
		}
	}

	return Destination{}, false
}

// Search returns every Destination whose name contains term, ignoring case.
// An empty term matches the whole Catalog.
// Results preserve Catalog order.
func (c Catalog) Search(term string) []Destination {
	term = strings.ToLower(term)
	out := make([]Destination, 0)
	for _, d := range c {
		if strings.Contains(strings.ToLower(d.Name), term) {
			out = append(out, d)
		}
	}

	return out
}
