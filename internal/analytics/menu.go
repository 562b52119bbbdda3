// Package analytics derives the chart-ready projections from the raw
// diner dataset: menu item popularity and per-slot order volume.
package analytics

import (
	"errors"
	"math"

	"github.com/steventanyang/laudure/internal/menu"
	"github.com/steventanyang/laudure/internal/models"
)

// ErrMissingDiners reports a dataset that violates the structural
// contract. Aggregation fails loudly rather than returning empty
// analytics, since silent degradation would corrupt counts undetectably.
var ErrMissingDiners = errors.New("analytics: dataset has no diners list")

// tastingMenuShare is the estimated per-dish uptake from tasting-menu
// diners: each dish already on the board gets this fraction of the
// tasting-menu headcount.
const tastingMenuShare = 0.2

// MenuAggregator computes menu popularity counts.
type MenuAggregator struct {
	classifier *menu.Classifier
}

// NewMenuAggregator builds an aggregator over the given menu.
func NewMenuAggregator(classifier *menu.Classifier) *MenuAggregator {
	return &MenuAggregator{classifier: classifier}
}

// Aggregate walks every order in the dataset and produces per-course
// popularity counts, weighted by party size. Orders for the shared
// tasting menu are not counted directly; instead each qualifying
// reservation contributes its party size once to a running total that
// is redistributed proportionally across dishes already ordered.
func (a *MenuAggregator) Aggregate(data *models.DinersList) (*models.MenuAnalytics, error) {
	if data == nil || data.Diners == nil {
		return nil, ErrMissingDiners
	}

	itemCounts := make(map[string]float64)
	tastingMenuTotal := 0

	for _, diner := range data.Diners {
		for _, reservation := range diner.Reservations {
			people := reservation.NumberOfPeople
			if people < 1 {
				people = 1
			}

			hasTastingMenu := false
			for _, order := range reservation.Orders {
				if order.Item == menu.TastingMenuItem {
					hasTastingMenu = true
					continue
				}
				itemCounts[order.Item] += float64(people)
			}

			// The whole party shares the tasting menu, so a
			// reservation counts once no matter how many times the
			// item appears on its ticket.
			if hasTastingMenu {
				tastingMenuTotal += people
			}
		}
	}

	if tastingMenuTotal > 0 {
		for _, item := range a.classifier.Categories().AllItems() {
			if itemCounts[item] > 0 {
				itemCounts[item] += float64(tastingMenuTotal) * tastingMenuShare
			}
		}
	}

	result := &models.MenuAnalytics{
		Appetizers: a.bucket(menu.CourseAppetizers, itemCounts),
		Mains:      a.bucket(menu.CourseMains, itemCounts),
		Desserts:   a.bucket(menu.CourseDesserts, itemCounts),
	}
	return result, nil
}

// bucket partitions counts into one course, preserving the canonical
// menu order and dropping items that were never ordered. Counts round
// up so fractional tasting-menu contributions never vanish.
func (a *MenuAggregator) bucket(course menu.Course, itemCounts map[string]float64) []models.MenuItemCount {
	items := []models.MenuItemCount{}
	for _, item := range a.classifier.Categories().Items(course) {
		if itemCounts[item] > 0 {
			items = append(items, models.MenuItemCount{
				Name:  item,
				Count: int(math.Ceil(itemCounts[item])),
			})
		}
	}
	return items
}

// AttachColors returns a copy of the analytics with each item colored
// by its position within its bucket, cycling the course palette.
func (a *MenuAggregator) AttachColors(analytics *models.MenuAnalytics) *models.MenuAnalytics {
	categories := a.classifier.Categories()
	colored := &models.MenuAnalytics{
		Appetizers: colorBucket(analytics.Appetizers, categories, menu.CourseAppetizers),
		Mains:      colorBucket(analytics.Mains, categories, menu.CourseMains),
		Desserts:   colorBucket(analytics.Desserts, categories, menu.CourseDesserts),
	}
	return colored
}

func colorBucket(items []models.MenuItemCount, categories *menu.Categories, course menu.Course) []models.MenuItemCount {
	colored := make([]models.MenuItemCount, len(items))
	for i, item := range items {
		item.Color = categories.Color(course, i)
		colored[i] = item
	}
	return colored
}
