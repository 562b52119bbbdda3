package models

import "encoding/json"

// MenuItemCount is one menu item's popularity within a course bucket.
// Color is attached by a separate step after aggregation.
type MenuItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// MenuAnalytics groups item popularity counts by course, in each
// course's canonical menu order.
type MenuAnalytics struct {
	Appetizers []MenuItemCount `json:"appetizers"`
	Mains      []MenuItemCount `json:"mains"`
	Desserts   []MenuItemCount `json:"desserts"`
}

// VolumePoint is one time slot's row in a course's stacked series:
// the slot label plus one value per menu item. It marshals flat
// ({"time": "18:00", "Escargots": 2.0, ...}) for direct chart use.
type VolumePoint struct {
	Time   string
	Values map[string]float64
}

// MarshalJSON flattens the point into a single object keyed by "time"
// and the item names.
func (p VolumePoint) MarshalJSON() ([]byte, error) {
	row := make(map[string]interface{}, len(p.Values)+1)
	row["time"] = p.Time
	for item, value := range p.Values {
		row[item] = value
	}
	return json.Marshal(row)
}

// UnmarshalJSON rebuilds the point from its flattened form.
func (p *VolumePoint) UnmarshalJSON(data []byte) error {
	raw := make(map[string]interface{})
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Values = make(map[string]float64, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			if key == "time" {
				p.Time = v
			}
		case float64:
			p.Values[key] = v
		}
	}
	return nil
}

// DetailedVolumeData is the stacked-area projection: one row per time
// slot per course, plus the per-course color lists.
type DetailedVolumeData struct {
	AppetizersData []VolumePoint       `json:"appetizersData"`
	MainsData      []VolumePoint       `json:"mainsData"`
	DessertsData   []VolumePoint       `json:"dessertsData"`
	Colors         map[string][]string `json:"colors"`
}

// KitchenNoteDetail is a kitchen note as carried on a ReservationDetail.
// Tags are always present (defaulted to empty) for the consuming UI.
type KitchenNoteDetail struct {
	Note    string   `json:"note"`
	Dish    string   `json:"dish"`
	Tags    []string `json:"tags"`
	Urgency Urgency  `json:"urgency"`
}

// ReservationDetail is one timeline entry: a reservation that has at
// least one resolvable kitchen note, flattened for display. IDs are
// assigned sequentially in dataset traversal order and are not stable
// identifiers across dataset edits.
type ReservationDetail struct {
	ID     int                 `json:"id"`
	Name   string              `json:"name"`
	People int                 `json:"people"`
	Time   string              `json:"time"`
	Date   string              `json:"date"`
	Status Status              `json:"status"`
	Tags   []string            `json:"tags"`
	Dishes []string            `json:"dishes"`
	Notes  []KitchenNoteDetail `json:"notes"`
}

// ProcessedKitchenNote is one note flattened with its reservation
// context, for the per-note feed.
type ProcessedKitchenNote struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	People  int      `json:"people"`
	Time    string   `json:"time"`
	Date    string   `json:"date"`
	Note    string   `json:"note"`
	Dish    string   `json:"dish"`
	Urgency Urgency  `json:"urgency"`
	Tags    []string `json:"tags"`
}
