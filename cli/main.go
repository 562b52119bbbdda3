package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	attentionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#ff9f0a")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu     list.Model
	menuTable    table.Model
	timelineList list.Model
	notesList    list.Model
	reportView   string
	spinner      spinner.Model
	client       *ApiClient
	currentView  string
	error        string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Initialize main menu items
	items := []list.Item{
		item{title: "Menu Popularity", desc: "Projected guests per dish, by course"},
		item{title: "Service Timeline", desc: "Tonight's reservations with kitchen notes"},
		item{title: "Kitchen Notes", desc: "Every prep note across the service"},
		item{title: "Service Sheet", desc: "Printable report for the pass"},
		item{title: "Exit", desc: "Exit the application"},
	}

	// Initialize main menu
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "laudure Dashboard CLI"

	// Initialize menu popularity view
	columns := []table.Column{
		{Title: "Course", Width: 12},
		{Title: "Dish", Width: 24},
		{Title: "Guests", Width: 8},
	}
	menuTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	// Initialize timeline and notes views
	timelineList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	timelineList.Title = "Service Timeline"
	notesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	notesList.Title = "Kitchen Notes"

	// Initialize API client
	client := NewApiClient()

	return Model{
		mainMenu:     mainMenu,
		menuTable:    menuTable,
		timelineList: timelineList,
		notesList:    notesList,
		spinner:      s,
		client:       client,
		currentView:  "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v)
		m.timelineList.SetSize(msg.Width-h, msg.Height-v-2)
		m.notesList.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if m.currentView == "main" {
				selected, ok := m.mainMenu.SelectedItem().(item)
				if ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Menu Popularity":
						m.currentView = "menu"
						return m, fetchMenuAnalytics(m.client)
					case "Service Timeline":
						m.currentView = "timeline"
						return m, fetchTimeline(m.client)
					case "Kitchen Notes":
						m.currentView = "notes"
						return m, fetchKitchenNotes(m.client)
					case "Service Sheet":
						m.currentView = "report"
						return m, fetchReport(m.client)
					}
				}
			}
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
			}
		case "r":
			// Refresh the current view
			switch m.currentView {
			case "menu":
				return m, fetchMenuAnalytics(m.client)
			case "timeline":
				return m, fetchTimeline(m.client)
			case "notes":
				return m, fetchKitchenNotes(m.client)
			case "report":
				return m, fetchReport(m.client)
			}
		}
	case menuAnalyticsMsg:
		m.menuTable.SetRows(menuAnalyticsRows(msg.analytics))
		return m, nil
	case timelineMsg:
		m.timelineList.SetItems(timelineItems(msg.details))
		return m, nil
	case kitchenNotesMsg:
		m.notesList.SetItems(noteItems(msg.notes))
		return m, nil
	case reportMsg:
		m.reportView = msg.sheet
		return m, nil
	case errorMsg:
		m.error = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "menu":
		m.menuTable, cmd = m.menuTable.Update(msg)
	case "timeline":
		m.timelineList, cmd = m.timelineList.Update(msg)
	case "notes":
		m.notesList, cmd = m.notesList.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	help := "\nPress 'r' to refresh, 'esc' to go back, 'q' to quit\n"
	if m.error != "" {
		help += errorStyle.Render(m.error) + "\n"
	}

	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "menu":
		return docStyle.Render(titleStyle.Render("Menu Popularity") + "\n\n" + m.menuTable.View() + help)
	case "timeline":
		return docStyle.Render(m.timelineList.View() + help)
	case "notes":
		return docStyle.Render(m.notesList.View() + help)
	case "report":
		if m.reportView == "" {
			return docStyle.Render(m.spinner.View() + " Building service sheet...")
		}
		return docStyle.Render(titleStyle.Render("Service Sheet") + "\n\n" + m.reportView + help)
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type menuAnalyticsMsg struct {
	analytics *MenuAnalytics
}

type timelineMsg struct {
	details []ReservationDetail
}

type kitchenNotesMsg struct {
	notes []ProcessedKitchenNote
}

type reportMsg struct {
	sheet string
}

type errorMsg struct {
	err string
}

// fetchMenuAnalytics retrieves the popularity projection from the API
func fetchMenuAnalytics(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		analytics, err := client.GetMenuAnalytics()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching menu analytics: %v", err)}
		}
		return menuAnalyticsMsg{analytics: analytics}
	}
}

// fetchTimeline retrieves the service timeline from the API
func fetchTimeline(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		details, err := client.GetTimeline()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching timeline: %v", err)}
		}
		return timelineMsg{details: details}
	}
}

// fetchKitchenNotes retrieves the flat note feed from the API
func fetchKitchenNotes(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		notes, err := client.GetKitchenNotes()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching kitchen notes: %v", err)}
		}
		return kitchenNotesMsg{notes: notes}
	}
}

// fetchReport retrieves today's service sheet from the API
func fetchReport(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		sheet, err := client.GetReport("")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching service sheet: %v", err)}
		}
		return reportMsg{sheet: sheet}
	}
}

// menuAnalyticsRows flattens the course groups into table rows
func menuAnalyticsRows(analytics *MenuAnalytics) []table.Row {
	rows := []table.Row{}
	courses := []struct {
		name  string
		items []MenuItemCount
	}{
		{"Appetizers", analytics.Appetizers},
		{"Mains", analytics.Mains},
		{"Desserts", analytics.Desserts},
	}
	for _, course := range courses {
		for _, dish := range course.items {
			rows = append(rows, table.Row{course.name, dish.Name, fmt.Sprintf("%d", dish.Count)})
		}
	}
	return rows
}

// timelineItem represents a reservation in the timeline list
type timelineItem struct {
	title  string
	desc   string
	status string
}

func (i timelineItem) Title() string       { return i.title }
func (i timelineItem) Description() string { return i.desc }
func (i timelineItem) FilterValue() string { return i.title }

// timelineItems converts API reservations to list items
func timelineItems(details []ReservationDetail) []list.Item {
	items := make([]list.Item, len(details))
	for i, detail := range details {
		title := fmt.Sprintf("%s  %s (party of %d)", detail.Time, detail.Name, detail.People)
		switch detail.Status {
		case "urgent":
			title = urgentStyle.Render("URGENT") + " " + title
		case "attention":
			title = attentionStyle.Render("ATTN") + " " + title
		}

		desc := fmt.Sprintf("%d notes", len(detail.Notes))
		if len(detail.Tags) > 0 {
			desc += " • " + strings.Join(detail.Tags, ", ")
		}
		items[i] = timelineItem{title: title, desc: desc, status: detail.Status}
	}
	return items
}

// noteItems converts the flat note feed to list items
func noteItems(notes []ProcessedKitchenNote) []list.Item {
	items := make([]list.Item, len(notes))
	for i, note := range notes {
		title := fmt.Sprintf("%s  %s · %s", note.Time, note.Dish, note.Name)
		if note.Urgency == "red" {
			title = urgentStyle.Render("RED") + " " + title
		}
		items[i] = item{title: title, desc: note.Note}
	}
	return items
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
