package menu

import (
	"testing"
)

func TestClassifier_Classify(t *testing.T) {
	cl := NewClassifier(Default())

	tests := []struct {
		dish   string
		course Course
		color  string
	}{
		{"Escargots", CourseAppetizers, "#8bc34a"},
		{"Salade Niçoise", CourseAppetizers, "#ff9800"},
		{"Beef Bourguignon", CourseMains, "#bac94a"},
		{"Mousse au Chocolat", CourseDesserts, "#6d4c41"},
		{"Pizza", CourseOther, FallbackColor},
		{"escargots", CourseOther, FallbackColor}, // matching is case-sensitive
		{"", CourseOther, FallbackColor},
	}

	for _, tt := range tests {
		course, color := cl.Classify(tt.dish)
		if course != tt.course {
			t.Errorf("Classify(%q) course = %q, want %q", tt.dish, course, tt.course)
		}
		if color != tt.color {
			t.Errorf("Classify(%q) color = %q, want %q", tt.dish, color, tt.color)
		}
	}
}

func TestClassifier_Known(t *testing.T) {
	cl := NewClassifier(Default())

	if !cl.Known("Duck Confit") {
		t.Error("Known(\"Duck Confit\") = false, want true")
	}
	if cl.Known(TastingMenuItem) {
		t.Error("the tasting menu is not a canonical course item")
	}
}

func TestCategories_ColorCycles(t *testing.T) {
	categories := Default()

	palette := categories.Palette(CourseDesserts)
	if got := categories.Color(CourseDesserts, len(palette)); got != palette[0] {
		t.Errorf("Color should cycle modulo palette length, got %q want %q", got, palette[0])
	}
	if got := categories.Color(CourseOther, 3); got != FallbackColor {
		t.Errorf("Color for unknown course = %q, want fallback", got)
	}
}

func TestCategories_AllItems(t *testing.T) {
	categories := Default()
	all := categories.AllItems()

	want := len(categories.Appetizers) + len(categories.Mains) + len(categories.Desserts)
	if len(all) != want {
		t.Errorf("AllItems() returned %d items, want %d", len(all), want)
	}

	// Declared order: appetizers, then mains, then desserts
	if all[0] != categories.Appetizers[0] {
		t.Errorf("AllItems() starts with %q, want %q", all[0], categories.Appetizers[0])
	}
	if all[len(all)-1] != categories.Desserts[len(categories.Desserts)-1] {
		t.Error("AllItems() should end with the last dessert")
	}
}

func TestClassifier_AlternateMenu(t *testing.T) {
	// The menu is configuration, not code: aggregator logic must work
	// against any injected category table.
	cl := NewClassifier(&Categories{
		Appetizers: []string{"Soup"},
		Mains:      []string{"Stew"},
		Desserts:   []string{"Pie"},
		Palettes: map[Course][]string{
			CourseAppetizers: {"#111111"},
			CourseMains:      {"#222222"},
			CourseDesserts:   {"#333333"},
		},
	})

	course, color := cl.Classify("Stew")
	if course != CourseMains || color != "#222222" {
		t.Errorf("Classify(\"Stew\") = (%q, %q), want (mains, #222222)", course, color)
	}
	if cl.Known("Escargots") {
		t.Error("default menu items should be unknown to an alternate menu")
	}
}
