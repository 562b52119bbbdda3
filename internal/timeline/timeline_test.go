package timeline

import (
	"reflect"
	"testing"

	"github.com/steventanyang/laudure/internal/analytics"
	"github.com/steventanyang/laudure/internal/models"
)

func note(dish string, urgency models.Urgency, tags ...string) models.KitchenNote {
	return models.KitchenNote{Note: "note for " + dish, Dish: dish, Urgency: urgency, Tags: tags}
}

func withCoordinatorNotes(notes ...models.KitchenNote) *models.AgentAnalysis {
	return &models.AgentAnalysis{
		CoordinatorSummary: &models.CoordinatorSummary{KitchenNotes: notes},
	}
}

func TestResolveKitchenNotes(t *testing.T) {
	primary := []models.KitchenNote{note("Escargots", models.UrgencyRed)}
	fallback := []models.KitchenNote{note("Duck Confit", models.UrgencyGreen)}

	tests := []struct {
		name     string
		analysis *models.AgentAnalysis
		want     []models.KitchenNote
	}{
		{"no analysis", nil, nil},
		{"empty analysis", &models.AgentAnalysis{}, nil},
		{"coordinator summary preferred", &models.AgentAnalysis{
			CoordinatorSummary: &models.CoordinatorSummary{KitchenNotes: primary},
			ChefNotes:          fallback,
		}, primary},
		{"chef notes fallback", &models.AgentAnalysis{ChefNotes: fallback}, fallback},
		{"empty primary falls through", &models.AgentAnalysis{
			CoordinatorSummary: &models.CoordinatorSummary{},
			ChefNotes:          fallback,
		}, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := &models.Reservation{AgentAnalysis: tt.analysis}
			got := ResolveKitchenNotes(reservation)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveKitchenNotes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReservationDetails_MissingDiners(t *testing.T) {
	if _, err := ReservationDetails(nil); err != analytics.ErrMissingDiners {
		t.Errorf("ReservationDetails(nil) error = %v, want ErrMissingDiners", err)
	}
}

func TestReservationDetails_FiltersReservationsWithoutNotes(t *testing.T) {
	data := &models.DinersList{Diners: []models.Diner{
		{Name: "Emily Chen", Reservations: []models.Reservation{
			{Date: "2024-05-20", Time: "19:00", NumberOfPeople: 2},
			{Date: "2024-05-21", Time: "20:00", NumberOfPeople: 4,
				AgentAnalysis: withCoordinatorNotes(note("Escargots", models.UrgencyGreen))},
		}},
	}}

	details, err := ReservationDetails(data)
	if err != nil {
		t.Fatalf("ReservationDetails() error = %v", err)
	}

	if len(details) != 1 {
		t.Fatalf("got %d details, want 1", len(details))
	}
	if details[0].Time != "20:00" {
		t.Errorf("wrong reservation survived the filter: %+v", details[0])
	}
}

func TestReservationDetails_StatusIsMaxUrgency(t *testing.T) {
	tests := []struct {
		name  string
		notes []models.KitchenNote
		want  models.Status
	}{
		{"red wins", []models.KitchenNote{
			note("A", models.UrgencyGreen), note("B", models.UrgencyRed), note("C", models.UrgencyOrange),
		}, models.StatusUrgent},
		{"orange without red", []models.KitchenNote{
			note("A", models.UrgencyGreen), note("B", models.UrgencyOrange),
		}, models.StatusAttention},
		{"all green", []models.KitchenNote{
			note("A", models.UrgencyGreen),
		}, models.StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &models.DinersList{Diners: []models.Diner{
				{Name: "Guest", Reservations: []models.Reservation{
					{Time: "19:00", AgentAnalysis: withCoordinatorNotes(tt.notes...)},
				}},
			}}

			details, err := ReservationDetails(data)
			if err != nil {
				t.Fatalf("ReservationDetails() error = %v", err)
			}
			if details[0].Status != tt.want {
				t.Errorf("status = %q, want %q", details[0].Status, tt.want)
			}
		})
	}
}

func TestReservationDetails_TagsDeduplicated(t *testing.T) {
	data := &models.DinersList{Diners: []models.Diner{
		{Name: "Guest", Reservations: []models.Reservation{
			{Time: "19:00", AgentAnalysis: withCoordinatorNotes(
				note("A", models.UrgencyGreen, "gluten free", "allergy"),
				note("B", models.UrgencyGreen, "allergy", "celebration"),
				note("C", models.UrgencyGreen),
			)},
		}},
	}}

	details, err := ReservationDetails(data)
	if err != nil {
		t.Fatalf("ReservationDetails() error = %v", err)
	}

	want := []string{"gluten free", "allergy", "celebration"}
	if !reflect.DeepEqual(details[0].Tags, want) {
		t.Errorf("tags = %v, want %v (first occurrence order, no duplicates)", details[0].Tags, want)
	}
}

func TestReservationDetails_DishesPassedThrough(t *testing.T) {
	data := &models.DinersList{Diners: []models.Diner{
		{Name: "Guest", Reservations: []models.Reservation{
			{Time: "19:00",
				Orders: []models.Order{
					{Item: "Escargots"}, {Item: "Escargots"}, {Item: "Chef's Tasting Menu"},
				},
				AgentAnalysis: withCoordinatorNotes(note("Escargots", models.UrgencyOrange))},
		}},
	}}

	details, err := ReservationDetails(data)
	if err != nil {
		t.Fatalf("ReservationDetails() error = %v", err)
	}

	// Original order, duplicates preserved, nothing filtered.
	want := []string{"Escargots", "Escargots", "Chef's Tasting Menu"}
	if !reflect.DeepEqual(details[0].Dishes, want) {
		t.Errorf("dishes = %v, want %v", details[0].Dishes, want)
	}
}

func TestReservationDetails_SortedByTime(t *testing.T) {
	data := &models.DinersList{Diners: []models.Diner{
		{Name: "First Diner", Reservations: []models.Reservation{
			{Time: "21:30", AgentAnalysis: withCoordinatorNotes(note("A", models.UrgencyGreen))},
			{Time: "18:00", AgentAnalysis: withCoordinatorNotes(note("B", models.UrgencyGreen))},
		}},
		{Name: "Second Diner", Reservations: []models.Reservation{
			{Time: "19:30", AgentAnalysis: withCoordinatorNotes(note("C", models.UrgencyGreen))},
		}},
	}}

	details, err := ReservationDetails(data)
	if err != nil {
		t.Fatalf("ReservationDetails() error = %v", err)
	}

	times := []string{details[0].Time, details[1].Time, details[2].Time}
	want := []string{"18:00", "19:30", "21:30"}
	if !reflect.DeepEqual(times, want) {
		t.Errorf("times = %v, want %v", times, want)
	}

	// IDs follow traversal order, not sorted order: 21:30 was visited
	// first so it carries id 1.
	if details[2].ID != 1 || details[0].ID != 2 || details[1].ID != 3 {
		t.Errorf("ids = [%d %d %d] for times %v, want traversal order",
			details[0].ID, details[1].ID, details[2].ID, times)
	}
}

func TestReservationDetails_StableForEqualTimes(t *testing.T) {
	data := &models.DinersList{Diners: []models.Diner{
		{Name: "Alpha", Reservations: []models.Reservation{
			{Time: "19:00", AgentAnalysis: withCoordinatorNotes(note("A", models.UrgencyGreen))},
		}},
		{Name: "Beta", Reservations: []models.Reservation{
			{Time: "19:00", AgentAnalysis: withCoordinatorNotes(note("B", models.UrgencyGreen))},
		}},
	}}

	details, err := ReservationDetails(data)
	if err != nil {
		t.Fatalf("ReservationDetails() error = %v", err)
	}

	if details[0].Name != "Alpha" || details[1].Name != "Beta" {
		t.Errorf("equal-time entries reordered: %s, %s", details[0].Name, details[1].Name)
	}
}

func TestReservationDetails_NoteTagsDefaultToEmpty(t *testing.T) {
	data := &models.DinersList{Diners: []models.Diner{
		{Name: "Guest", Reservations: []models.Reservation{
			{Time: "19:00", AgentAnalysis: withCoordinatorNotes(
				models.KitchenNote{Note: "no tags", Dish: "Escargots", Urgency: models.UrgencyGreen},
			)},
		}},
	}}

	details, err := ReservationDetails(data)
	if err != nil {
		t.Fatalf("ReservationDetails() error = %v", err)
	}

	if details[0].Notes[0].Tags == nil {
		t.Error("note tags should default to an empty slice, not nil")
	}
	if len(details[0].Tags) != 0 {
		t.Errorf("reservation tags = %v, want empty", details[0].Tags)
	}
}

func TestKitchenNotes_FlattensPerNote(t *testing.T) {
	data := &models.DinersList{Diners: []models.Diner{
		{Name: "Emily Chen", Reservations: []models.Reservation{
			{Date: "2024-05-20", Time: "20:00", NumberOfPeople: 4,
				AgentAnalysis: withCoordinatorNotes(
					note("Escargots", models.UrgencyOrange, "gluten free"),
					note("Duck Confit", models.UrgencyGreen),
				)},
		}},
		{Name: "Sam Park", Reservations: []models.Reservation{
			{Date: "2024-05-20", Time: "18:30", NumberOfPeople: 2,
				AgentAnalysis: &models.AgentAnalysis{ChefNotes: []models.KitchenNote{
					note("Tarte Tatin", models.UrgencyRed),
				}}},
		}},
	}}

	notes, err := KitchenNotes(data)
	if err != nil {
		t.Fatalf("KitchenNotes() error = %v", err)
	}

	if len(notes) != 3 {
		t.Fatalf("got %d notes, want 3", len(notes))
	}

	// Sorted by time: Sam Park's 18:30 note first.
	if notes[0].Name != "Sam Park" || notes[0].Dish != "Tarte Tatin" {
		t.Errorf("first note = %+v, want Sam Park's 18:30 note", notes[0])
	}

	// Reservation context rides along on each note.
	if notes[1].People != 4 || notes[1].Time != "20:00" {
		t.Errorf("note context = %+v, want Emily Chen's reservation fields", notes[1])
	}
}
