// Package timeline flattens agent-generated kitchen annotations into
// the chronological reservation feed the timeline view renders.
package timeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/steventanyang/laudure/internal/analytics"
	"github.com/steventanyang/laudure/internal/models"
)

// ResolveKitchenNotes returns the kitchen notes for a reservation,
// checking the alternative locations in preference order: the
// coordinator summary first, then the legacy chef_notes field. At most
// one location is consulted; an empty primary falls through to the
// fallback. Keeping the policy here keeps it testable in isolation.
func ResolveKitchenNotes(reservation *models.Reservation) []models.KitchenNote {
	analysis := reservation.AgentAnalysis
	if analysis == nil {
		return nil
	}
	if analysis.CoordinatorSummary != nil && len(analysis.CoordinatorSummary.KitchenNotes) > 0 {
		return analysis.CoordinatorSummary.KitchenNotes
	}
	return analysis.ChefNotes
}

// maxUrgency scans notes for the most severe urgency, starting from
// green so a reservation with no usable urgencies reads as normal.
func maxUrgency(notes []models.KitchenNote) models.Urgency {
	most := models.UrgencyGreen
	for _, note := range notes {
		if note.Urgency.Severity() > most.Severity() {
			most = note.Urgency
		}
	}
	return most
}

// uniqueTags deduplicates the union of all note tags, preserving the
// order tags first appear in.
func uniqueTags(notes []models.KitchenNote) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, note := range notes {
		for _, tag := range note.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// timeValue turns "18:30" into 1830 for ordering. The timeline only
// ever compares times within one service, so a plain numeric compare
// is enough.
func timeValue(t string) int {
	v, _ := strconv.Atoi(strings.Replace(t, ":", "", 1))
	return v
}

// ReservationDetails flattens every reservation that has at least one
// resolvable kitchen note into a timeline entry, sorted ascending by
// time. IDs are assigned in traversal order (diner order, then
// reservation order within each diner) before sorting; the sort is
// stable, so entries at the same time keep their traversal order.
func ReservationDetails(data *models.DinersList) ([]models.ReservationDetail, error) {
	if data == nil || data.Diners == nil {
		return nil, analytics.ErrMissingDiners
	}

	details := []models.ReservationDetail{}
	nextID := 1

	for _, diner := range data.Diners {
		for di := range diner.Reservations {
			reservation := &diner.Reservations[di]
			notes := ResolveKitchenNotes(reservation)
			if len(notes) == 0 {
				continue
			}

			dishes := make([]string, 0, len(reservation.Orders))
			for _, order := range reservation.Orders {
				dishes = append(dishes, order.Item)
			}

			noteDetails := make([]models.KitchenNoteDetail, len(notes))
			for i, note := range notes {
				tags := note.Tags
				if tags == nil {
					tags = []string{}
				}
				noteDetails[i] = models.KitchenNoteDetail{
					Note:    note.Note,
					Dish:    note.Dish,
					Tags:    tags,
					Urgency: note.Urgency,
				}
			}

			details = append(details, models.ReservationDetail{
				ID:     nextID,
				Name:   diner.Name,
				People: reservation.NumberOfPeople,
				Time:   reservation.Time,
				Date:   reservation.Date,
				Status: maxUrgency(notes).Status(),
				Tags:   uniqueTags(notes),
				Dishes: dishes,
				Notes:  noteDetails,
			})
			nextID++
		}
	}

	sort.SliceStable(details, func(i, j int) bool {
		return timeValue(details[i].Time) < timeValue(details[j].Time)
	})
	return details, nil
}

// KitchenNotes flattens every resolvable note into its own record with
// the reservation context attached, sorted ascending by time. This is
// the per-note feed; ReservationDetails is the per-reservation one.
func KitchenNotes(data *models.DinersList) ([]models.ProcessedKitchenNote, error) {
	if data == nil || data.Diners == nil {
		return nil, analytics.ErrMissingDiners
	}

	flat := []models.ProcessedKitchenNote{}
	nextID := 1

	for _, diner := range data.Diners {
		for di := range diner.Reservations {
			reservation := &diner.Reservations[di]
			for _, note := range ResolveKitchenNotes(reservation) {
				tags := note.Tags
				if tags == nil {
					tags = []string{}
				}
				flat = append(flat, models.ProcessedKitchenNote{
					ID:      nextID,
					Name:    diner.Name,
					People:  reservation.NumberOfPeople,
					Time:    reservation.Time,
					Date:    reservation.Date,
					Note:    note.Note,
					Dish:    note.Dish,
					Urgency: note.Urgency,
					Tags:    tags,
				})
				nextID++
			}
		}
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return timeValue(flat[i].Time) < timeValue(flat[j].Time)
	})
	return flat, nil
}
