package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempDataset(t, `{
		"diners": [
			{
				"name": "Emily Chen",
				"reservations": [
					{
						"date": "2024-05-20",
						"time": "19:00",
						"number_of_people": 4,
						"orders": [{"item": "Escargots", "dietary_tags": ["gluten-free"], "price": 24}],
						"agent_analysis": {
							"coordinator_summary": {
								"kitchen_notes": [
									{"note": "Prepare gluten-free", "dish": "Escargots", "urgency": "orange", "tags": ["gluten free"]}
								]
							}
						}
					}
				]
			}
		]
	}`)

	data, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(data.Diners) != 1 {
		t.Fatalf("got %d diners, want 1", len(data.Diners))
	}
	reservation := data.Diners[0].Reservations[0]
	if reservation.NumberOfPeople != 4 || reservation.Time != "19:00" {
		t.Errorf("reservation = %+v", reservation)
	}
	notes := reservation.AgentAnalysis.CoordinatorSummary.KitchenNotes
	if len(notes) != 1 || notes[0].Urgency != "orange" {
		t.Errorf("kitchen notes = %+v", notes)
	}
}

func TestLoad_MissingDiners(t *testing.T) {
	path := writeTempDataset(t, `{"restaurant": "laudure"}`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on a dataset without a diners list")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTempDataset(t, `{"diners": [`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed JSON")
	}
}

func TestLoad_NonArrayOrders(t *testing.T) {
	path := writeTempDataset(t, `{"diners": [{"name": "X", "reservations": [{"orders": "none"}]}]}`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail when orders is not an array")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}
