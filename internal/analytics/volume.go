package analytics

import (
	"math"

	"github.com/steventanyang/laudure/internal/menu"
	"github.com/steventanyang/laudure/internal/models"
)

// TimeSlots is the fixed evening service axis. Reservations whose time
// does not match one of these exactly are excluded from volume
// aggregation only.
var TimeSlots = []string{
	"18:00", "18:30",
	"19:00", "19:30",
	"20:00", "20:30",
	"21:00", "21:30",
	"22:00",
}

// TastingMenuMode selects how the shared tasting-menu item enters the
// volume series.
type TastingMenuMode int

const (
	// TastingMenuExcluded drops tasting-menu orders from the series.
	TastingMenuExcluded TastingMenuMode = iota
	// TastingMenuPseudoItem adds a "Chef's Tasting Menu" series to
	// every course, credited with the full, undivided party size.
	TastingMenuPseudoItem
)

// tastingMenuMarker references the gradient the charts draw the
// tasting-menu band with.
const tastingMenuMarker = "url(#iridescent-gradient)"

// VolumeAggregator computes per-item, per-slot fractional order counts
// for stacked-area charting.
type VolumeAggregator struct {
	classifier *menu.Classifier
	mode       TastingMenuMode
}

// NewVolumeAggregator builds an aggregator over the given menu.
func NewVolumeAggregator(classifier *menu.Classifier, mode TastingMenuMode) *VolumeAggregator {
	return &VolumeAggregator{classifier: classifier, mode: mode}
}

// AggregateDetailed distributes each reservation's party size across
// the items it ordered, per course, at its time slot. Within one
// course the party splits evenly across that course's orders, so the
// pre-rounding contributions always sum back to the party size.
func (a *VolumeAggregator) AggregateDetailed(data *models.DinersList) (*models.DetailedVolumeData, error) {
	if data == nil || data.Diners == nil {
		return nil, ErrMissingDiners
	}

	slotIndex := make(map[string]int, len(TimeSlots))
	for i, slot := range TimeSlots {
		slotIndex[slot] = i
	}

	courses := []menu.Course{menu.CourseAppetizers, menu.CourseMains, menu.CourseDesserts}
	series := make(map[menu.Course]map[string][]float64, len(courses))
	for _, course := range courses {
		series[course] = make(map[string][]float64)
		for _, item := range a.classifier.Categories().Items(course) {
			series[course][item] = make([]float64, len(TimeSlots))
		}
		if a.mode == TastingMenuPseudoItem {
			series[course][menu.TastingMenuItem] = make([]float64, len(TimeSlots))
		}
	}

	for _, diner := range data.Diners {
		for _, reservation := range diner.Reservations {
			slot, ok := slotIndex[reservation.Time]
			if !ok {
				continue
			}
			people := float64(reservation.NumberOfPeople)

			ordered := make(map[menu.Course][]string, len(courses))
			hasTastingMenu := false
			for _, order := range reservation.Orders {
				if order.Item == menu.TastingMenuItem {
					hasTastingMenu = true
					continue
				}
				course := a.classifier.Course(order.Item)
				if course == menu.CourseOther {
					continue
				}
				ordered[course] = append(ordered[course], order.Item)
			}

			if hasTastingMenu && a.mode == TastingMenuPseudoItem {
				for _, course := range courses {
					series[course][menu.TastingMenuItem][slot] += people
				}
			}

			for course, items := range ordered {
				share := people / float64(len(items))
				for _, item := range items {
					series[course][item][slot] += share
				}
			}
		}
	}

	result := &models.DetailedVolumeData{
		AppetizersData: a.rows(series[menu.CourseAppetizers]),
		MainsData:      a.rows(series[menu.CourseMains]),
		DessertsData:   a.rows(series[menu.CourseDesserts]),
		Colors:         a.colors(),
	}
	return result, nil
}

// rows pivots a course's item series into one record per time slot,
// rounding values to one decimal place for display.
func (a *VolumeAggregator) rows(itemSeries map[string][]float64) []models.VolumePoint {
	points := make([]models.VolumePoint, len(TimeSlots))
	for i, slot := range TimeSlots {
		values := make(map[string]float64, len(itemSeries))
		for item, counts := range itemSeries {
			values[item] = math.Round(counts[i]*10) / 10
		}
		points[i] = models.VolumePoint{Time: slot, Values: values}
	}
	return points
}

// colors copies the course palettes, appending the tasting-menu marker
// when the pseudo-item series is present.
func (a *VolumeAggregator) colors() map[string][]string {
	categories := a.classifier.Categories()
	colors := make(map[string][]string, 3)
	for _, course := range []menu.Course{menu.CourseAppetizers, menu.CourseMains, menu.CourseDesserts} {
		palette := append([]string{}, categories.Palette(course)...)
		if a.mode == TastingMenuPseudoItem {
			palette = append(palette, tastingMenuMarker)
		}
		colors[string(course)] = palette
	}
	return colors
}
