package types

// Category is one kind of drop-off amenity and the Overpass tag filter that selects it.
type Category struct {
	Key    string `json:"key" example:"schools"`
	Label  string `json:"label" example:"School"`
	Icon   string `json:"icon" example:"🏫"`
	Filter string `json:"filter" example:"amenity=school"`
}

var (
	CategorySchools      = Category{Key: "schools", Label: "School", Icon: "🏫", Filter: "amenity=school"}
	CategorySupermarkets = Category{Key: "supermarkets", Label: "Supermarket", Icon: "🛒", Filter: "shop=supermarket"}
	CategoryPostOffices  = Category{Key: "post-offices", Label: "Post Office", Icon: "📮", Filter: "amenity=post_office"}
	CategoryRecycling    = Category{Key: "recycling", Label: "Recycling Centre", Icon: "♻️", Filter: "amenity=recycling"}
)

// categoryOrder is the order categories are queried and displayed in.
var categoryOrder = [...]Category{
	CategorySchools,
	CategorySupermarkets,
	CategoryPostOffices,
	CategoryRecycling,
}

var categoriesByKey = func() map[string]Category {
	m := make(map[string]Category, len(categoryOrder))
	for _, c := range categoryOrder {
		m[c.Key] = c
	}
	return m
}()

// Categories returns all categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// CategoryByKey looks up a category by its key.
func CategoryByKey(key string) (Category, bool) {
	c, ok := categoriesByKey[key]
	return c, ok
}

// DisplayLabel is the label with its icon, e.g. "🏫 School".
func (c Category) DisplayLabel() string {
	if c.Icon == "" {
		return c.Label
	}
	return c.Icon + " " + c.Label
}
