// Package report renders the printable service sheet for a night's
// reservations and archives generated sheets.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/steventanyang/laudure/internal/menu"
	"github.com/steventanyang/laudure/internal/models"
)

// courseMarkers are the monochrome print symbols matching the on-screen
// dish shapes.
var courseMarkers = map[menu.Course]string{
	menu.CourseAppetizers: "▲",
	menu.CourseMains:      "■",
	menu.CourseDesserts:   "⬟",
	menu.CourseOther:      "●",
}

const tastingMenuMarker = "★"

// Builder renders service sheets from normalized reservation details.
type Builder struct {
	classifier *menu.Classifier
}

// NewBuilder creates a service sheet builder over the given menu.
func NewBuilder(classifier *menu.Classifier) *Builder {
	return &Builder{classifier: classifier}
}

// Build renders the sheet for a date. Reservations are grouped by time
// slot; within a slot the kitchen reads urgent parties first, so the
// secondary sort is by status priority. The timeline feed itself stays
// time-ordered only; this reordering is a presentation concern.
func (b *Builder) Build(date string, details []models.ReservationDetail) string {
	ordered := make([]models.ReservationDetail, len(details))
	copy(ordered, details)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Time != ordered[j].Time {
			return ordered[i].Time < ordered[j].Time
		}
		return models.StatusPriority(ordered[i].Status) < models.StatusPriority(ordered[j].Status)
	})

	var sheet strings.Builder
	fmt.Fprintf(&sheet, "Reservations - %s\n", date)
	fmt.Fprintf(&sheet, "%s\n", strings.Repeat("=", 40))

	currentTime := ""
	for _, reservation := range ordered {
		if reservation.Time != currentTime {
			currentTime = reservation.Time
			fmt.Fprintf(&sheet, "\n-- %s --\n", currentTime)
		}
		b.writeReservation(&sheet, reservation, date)
	}

	if len(ordered) == 0 {
		sheet.WriteString("\nNo reservations with kitchen notes.\n")
	}
	return sheet.String()
}

func (b *Builder) writeReservation(sheet *strings.Builder, reservation models.ReservationDetail, date string) {
	fmt.Fprintf(sheet, "\n[%s] %s — party of %d — %s • %s\n",
		strings.ToUpper(string(reservation.Status)), reservation.Name,
		reservation.People, reservation.Time, date)

	sheet.WriteString("  Menu Items\n")
	if len(reservation.Dishes) == 0 {
		sheet.WriteString("    No menu items specified\n")
	}
	for _, dish := range reservation.Dishes {
		marker := tastingMenuMarker
		if dish != menu.TastingMenuItem {
			course, _ := b.classifier.Classify(dish)
			marker = courseMarkers[course]
		}
		fmt.Fprintf(sheet, "    %s %s\n", marker, dish)
	}

	sheet.WriteString("  Special Requests\n")
	if len(reservation.Notes) == 0 {
		sheet.WriteString("    None\n")
	}
	for _, note := range reservation.Notes {
		fmt.Fprintf(sheet, "    (%s) %s: %s\n", note.Urgency.Status(), note.Dish, note.Note)
	}
}
