package menu

// Course identifies one of the fixed menu categories.
type Course string

const (
	CourseAppetizers Course = "appetizers"
	CourseMains      Course = "mains"
	CourseDesserts   Course = "desserts"
	CourseOther      Course = "other"
)

// TastingMenuItem is the shared order consumed by the whole party. It
// is never counted as a regular per-course item; the aggregators give
// it proportional or pseudo-item treatment instead.
const TastingMenuItem = "Chef's Tasting Menu"

// FallbackColor is used for dishes that match no course.
const FallbackColor = "#6d4c41"

// Categories holds the canonical, ordered menu lists and the parallel
// color palettes. It is plain data so tests can swap in alternate menus
// without touching aggregator logic.
type Categories struct {
	Appetizers []string
	Mains      []string
	Desserts   []string

	Palettes map[Course][]string
}

// Default is the restaurant's current menu with the palettes shared by
// the treemap and volume charts.
func Default() *Categories {
	return &Categories{
		Appetizers: []string{
			"Escargots",
			"Foie Gras",
			"Salmon Tartare",
			"Lobster Bisque",
			"Salade Niçoise",
		},
		Mains: []string{
			"Beef Bourguignon",
			"Coq au Vin",
			"Duck Confit",
			"Rabbit Roulade",
			"Salmon en Papillote",
		},
		Desserts: []string{
			"Chocolate Soufflé",
			"Crème Brûlée",
			"Tarte Tatin",
			"Profiteroles",
			"Mousse au Chocolat",
		},
		Palettes: map[Course][]string{
			CourseAppetizers: {"#8bc34a", "#cddc39", "#ffeb3b", "#ffc107", "#ff9800"},
			CourseMains:      {"#bac94a", "#e0b0b0", "#85b1bd", "#ce92ce", "#cbba89", "#a1887f"},
			CourseDesserts:   {"#795548", "#ffca28", "#ff7043", "#d7ccc8", "#6d4c41"},
		},
	}
}

// Items returns the canonical ordered list for a course. Nil for
// CourseOther.
func (c *Categories) Items(course Course) []string {
	switch course {
	case CourseAppetizers:
		return c.Appetizers
	case CourseMains:
		return c.Mains
	case CourseDesserts:
		return c.Desserts
	default:
		return nil
	}
}

// AllItems returns every known menu item across the three courses, in
// declared order.
func (c *Categories) AllItems() []string {
	all := make([]string, 0, len(c.Appetizers)+len(c.Mains)+len(c.Desserts))
	all = append(all, c.Appetizers...)
	all = append(all, c.Mains...)
	all = append(all, c.Desserts...)
	return all
}

// Palette returns the color list for a course, cycled by Color.
func (c *Categories) Palette(course Course) []string {
	return c.Palettes[course]
}

// Color returns the palette entry for an index, cycling modulo the
// palette length. Falls back to the neutral color for unknown courses.
func (c *Categories) Color(course Course, index int) string {
	palette := c.Palettes[course]
	if len(palette) == 0 {
		return FallbackColor
	}
	return palette[index%len(palette)]
}

type classification struct {
	course Course
	index  int
}

// Classifier resolves dish names to their course and color. Lookups
// are a single map access after construction.
type Classifier struct {
	categories *Categories
	byDish     map[string]classification
}

// NewClassifier indexes the given menu. Matching is exact and
// case-sensitive.
func NewClassifier(categories *Categories) *Classifier {
	byDish := make(map[string]classification)
	for _, course := range []Course{CourseAppetizers, CourseMains, CourseDesserts} {
		for i, dish := range categories.Items(course) {
			byDish[dish] = classification{course: course, index: i}
		}
	}
	return &Classifier{categories: categories, byDish: byDish}
}

// Categories returns the menu the classifier was built from.
func (cl *Classifier) Categories() *Categories {
	return cl.categories
}

// Classify returns the course and color for a dish. Unknown dishes are
// CourseOther with the neutral fallback color.
func (cl *Classifier) Classify(dish string) (Course, string) {
	found, ok := cl.byDish[dish]
	if !ok {
		return CourseOther, FallbackColor
	}
	return found.course, cl.categories.Color(found.course, found.index)
}

// Course returns just the course for a dish.
func (cl *Classifier) Course(dish string) Course {
	found, ok := cl.byDish[dish]
	if !ok {
		return CourseOther
	}
	return found.course
}

// Known reports whether the dish appears on any canonical course list.
func (cl *Classifier) Known(dish string) bool {
	_, ok := cl.byDish[dish]
	return ok
}
