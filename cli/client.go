package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the laudure dashboard API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("LAUDURE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
		Token:   os.Getenv("LAUDURE_API_TOKEN"),
		UseMock: false, // Default to trying the real server first
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// CheckHealth checks if the API is up and running
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}

	return true, nil
}

// MenuItemCount is one dish with its projected guest count
type MenuItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// MenuAnalytics is the popularity payload grouped by course
type MenuAnalytics struct {
	Appetizers []MenuItemCount `json:"appetizers"`
	Mains      []MenuItemCount `json:"mains"`
	Desserts   []MenuItemCount `json:"desserts"`
}

// KitchenNoteDetail is one prep note attached to a reservation
type KitchenNoteDetail struct {
	Note    string   `json:"note"`
	Dish    string   `json:"dish"`
	Tags    []string `json:"tags"`
	Urgency string   `json:"urgency"`
}

// ReservationDetail is one timeline entry
type ReservationDetail struct {
	ID     int                 `json:"id"`
	Name   string              `json:"name"`
	People int                 `json:"people"`
	Time   string              `json:"time"`
	Date   string              `json:"date"`
	Status string              `json:"status"`
	Tags   []string            `json:"tags"`
	Dishes []string            `json:"dishes"`
	Notes  []KitchenNoteDetail `json:"notes"`
}

// ProcessedKitchenNote is one entry of the flat kitchen-notes feed
type ProcessedKitchenNote struct {
	Note    string   `json:"note"`
	Dish    string   `json:"dish"`
	Tags    []string `json:"tags"`
	Urgency string   `json:"urgency"`
	Name    string   `json:"name"`
	Time    string   `json:"time"`
	Date    string   `json:"date"`
	People  int      `json:"people"`
}

func (c *ApiClient) get(path string, target interface{}) error {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}

// GetMenuAnalytics retrieves the menu popularity projection
func (c *ApiClient) GetMenuAnalytics() (*MenuAnalytics, error) {
	if c.UseMock {
		return c.getMockMenuAnalytics(), nil
	}

	var analytics MenuAnalytics
	if err := c.get("/api/menu-analytics", &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// GetTimeline retrieves the service timeline
func (c *ApiClient) GetTimeline() ([]ReservationDetail, error) {
	if c.UseMock {
		return c.getMockTimeline(), nil
	}

	var details []ReservationDetail
	if err := c.get("/api/timeline-data", &details); err != nil {
		return nil, err
	}
	return details, nil
}

// GetKitchenNotes retrieves the flat kitchen-notes feed
func (c *ApiClient) GetKitchenNotes() ([]ProcessedKitchenNote, error) {
	if c.UseMock {
		return c.getMockKitchenNotes(), nil
	}

	var notes []ProcessedKitchenNote
	if err := c.get("/api/kitchen-notes", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetReport retrieves the printable service sheet as plain text
func (c *ApiClient) GetReport(date string) (string, error) {
	if c.UseMock {
		return c.getMockReport(date), nil
	}

	path := "/api/report"
	if date != "" {
		path += "?date=" + date
	}

	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return "", err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Mock data generators
// getMockMenuAnalytics generates mock popularity data
func (c *ApiClient) getMockMenuAnalytics() *MenuAnalytics {
	return &MenuAnalytics{
		Appetizers: []MenuItemCount{
			{Name: "Escargots", Count: 14, Color: "#8bc34a"},
			{Name: "Foie Gras", Count: 9, Color: "#cddc39"},
			{Name: "Lobster Bisque", Count: 7, Color: "#ffc107"},
		},
		Mains: []MenuItemCount{
			{Name: "Beef Bourguignon", Count: 12, Color: "#bac94a"},
			{Name: "Duck Confit", Count: 11, Color: "#85b1bd"},
			{Name: "Salmon en Papillote", Count: 6, Color: "#cbba89"},
		},
		Desserts: []MenuItemCount{
			{Name: "Chocolate Soufflé", Count: 10, Color: "#795548"},
			{Name: "Crème Brûlée", Count: 8, Color: "#ffca28"},
		},
	}
}

// getMockTimeline generates mock timeline data
func (c *ApiClient) getMockTimeline() []ReservationDetail {
	return []ReservationDetail{
		{
			ID: 1, Name: "Emily Chen", People: 4, Time: "19:00", Date: "2024-05-20",
			Status: "urgent", Tags: []string{"allergy", "celebration"},
			Dishes: []string{"Escargots", "Duck Confit"},
			Notes: []KitchenNoteDetail{
				{Note: "Severe shellfish allergy at the table", Dish: "Escargots", Urgency: "red", Tags: []string{"allergy"}},
			},
		},
		{
			ID: 2, Name: "Sam Park", People: 2, Time: "20:30", Date: "2024-05-20",
			Status: "normal", Tags: []string{"anniversary"},
			Dishes: []string{"Beef Bourguignon", "Crème Brûlée"},
			Notes: []KitchenNoteDetail{
				{Note: "Anniversary dessert plate", Dish: "Crème Brûlée", Urgency: "green", Tags: []string{"anniversary"}},
			},
		},
	}
}

// getMockKitchenNotes generates mock note feed data
func (c *ApiClient) getMockKitchenNotes() []ProcessedKitchenNote {
	notes := []ProcessedKitchenNote{}
	for _, detail := range c.getMockTimeline() {
		for _, note := range detail.Notes {
			notes = append(notes, ProcessedKitchenNote{
				Note: note.Note, Dish: note.Dish, Tags: note.Tags, Urgency: note.Urgency,
				Name: detail.Name, Time: detail.Time, Date: detail.Date, People: detail.People,
			})
		}
	}
	return notes
}

// getMockReport generates a mock service sheet
func (c *ApiClient) getMockReport(date string) string {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return fmt.Sprintf("Reservations - %s\n%s\n\n-- 19:00 --\n\n[URGENT] Emily Chen — party of 4 — 19:00 • %s\n  Menu Items\n    ▲ Escargots\n    ■ Duck Confit\n  Special Requests\n    (urgent) Escargots: Severe shellfish allergy at the table\n",
		date, "========================================", date)
}
