package report

import (
	"strings"
	"testing"

	"github.com/steventanyang/laudure/internal/menu"
	"github.com/steventanyang/laudure/internal/models"
)

func testBuilder() *Builder {
	return NewBuilder(menu.NewClassifier(menu.Default()))
}

func detail(name, time string, status models.Status, dishes ...string) models.ReservationDetail {
	return models.ReservationDetail{
		Name:   name,
		People: 2,
		Time:   time,
		Status: status,
		Dishes: dishes,
	}
}

func TestBuild_GroupsByTime(t *testing.T) {
	sheet := testBuilder().Build("2024-05-20", []models.ReservationDetail{
		detail("Late Party", "21:00", models.StatusNormal),
		detail("Early Party", "18:30", models.StatusNormal),
		detail("Second Early", "18:30", models.StatusNormal),
	})

	early := strings.Index(sheet, "-- 18:30 --")
	late := strings.Index(sheet, "-- 21:00 --")
	if early < 0 || late < 0 {
		t.Fatalf("missing time headers in sheet:\n%s", sheet)
	}
	if early > late {
		t.Error("time groups out of order")
	}
	if strings.Count(sheet, "-- 18:30 --") != 1 {
		t.Error("shared slot should print a single header")
	}
}

func TestBuild_UrgentFirstWithinSlot(t *testing.T) {
	sheet := testBuilder().Build("2024-05-20", []models.ReservationDetail{
		detail("Calm Party", "19:00", models.StatusNormal),
		detail("Urgent Party", "19:00", models.StatusUrgent),
	})

	urgent := strings.Index(sheet, "Urgent Party")
	calm := strings.Index(sheet, "Calm Party")
	if urgent < 0 || calm < 0 {
		t.Fatalf("missing reservations in sheet:\n%s", sheet)
	}
	if urgent > calm {
		t.Error("urgent reservation should print before normal within a slot")
	}
}

func TestBuild_CourseMarkers(t *testing.T) {
	sheet := testBuilder().Build("2024-05-20", []models.ReservationDetail{
		detail("Guest", "19:00", models.StatusNormal,
			"Escargots", "Duck Confit", "Tarte Tatin", menu.TastingMenuItem, "Hamburger"),
	})

	for _, line := range []string{
		"▲ Escargots",
		"■ Duck Confit",
		"⬟ Tarte Tatin",
		"★ " + menu.TastingMenuItem,
		"● Hamburger",
	} {
		if !strings.Contains(sheet, line) {
			t.Errorf("sheet missing %q:\n%s", line, sheet)
		}
	}
}

func TestBuild_SpecialRequests(t *testing.T) {
	reservation := detail("Guest", "19:00", models.StatusUrgent, "Escargots")
	reservation.Notes = []models.KitchenNoteDetail{
		{Note: "Severe shellfish allergy", Dish: "Escargots", Urgency: models.UrgencyRed},
	}

	sheet := testBuilder().Build("2024-05-20", []models.ReservationDetail{reservation})

	if !strings.Contains(sheet, "[URGENT] Guest") {
		t.Errorf("status header missing:\n%s", sheet)
	}
	if !strings.Contains(sheet, "(urgent) Escargots: Severe shellfish allergy") {
		t.Errorf("note line missing:\n%s", sheet)
	}
}

func TestBuild_Empty(t *testing.T) {
	sheet := testBuilder().Build("2024-05-20", nil)

	if !strings.Contains(sheet, "Reservations - 2024-05-20") {
		t.Errorf("header missing:\n%s", sheet)
	}
	if !strings.Contains(sheet, "No reservations with kitchen notes.") {
		t.Errorf("empty marker missing:\n%s", sheet)
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	details := []models.ReservationDetail{
		detail("B", "20:00", models.StatusNormal),
		detail("A", "18:00", models.StatusNormal),
	}

	testBuilder().Build("2024-05-20", details)

	if details[0].Name != "B" || details[1].Name != "A" {
		t.Error("Build reordered the caller's slice")
	}
}
