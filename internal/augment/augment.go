// Package augment generates agent analyses for reservations that lack
// them, using an LLM coordinator. It is an offline tool; the dashboard
// only ever reads the augmented dataset it produces.
package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/steventanyang/laudure/internal/models"
)

// Coordinator produces consolidated kitchen briefings.
type Coordinator struct {
	model       llms.Model
	modelName   string
	temperature float64
}

// NewCoordinator creates a coordinator backed by the OpenAI API.
func NewCoordinator(apiKey string, modelName string) (*Coordinator, error) {
	if modelName == "" {
		modelName = "gpt-4o"
	}
	client, err := openai.New(
		openai.WithModel(modelName),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return &Coordinator{model: client, modelName: modelName}, nil
}

// NewCoordinatorWithModel wires an existing model, used by tests.
func NewCoordinatorWithModel(model llms.Model) *Coordinator {
	return &Coordinator{model: model}
}

// Analyze generates the agent analysis for one reservation.
func (c *Coordinator) Analyze(ctx context.Context, diner *models.Diner, reservation *models.Reservation) (*models.AgentAnalysis, error) {
	dinerInfo, err := json.Marshal(struct {
		Name    string          `json:"name"`
		Reviews []models.Review `json:"reviews,omitempty"`
		Emails  []models.Email  `json:"emails,omitempty"`
	}{diner.Name, diner.Reviews, diner.Emails})
	if err != nil {
		return nil, err
	}
	reservationInfo, err := json.Marshal(reservation)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(coordinatorPrompt, dinerInfo, reservationInfo)

	response, err := c.model.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}, llms.WithTemperature(c.temperature))
	if err != nil {
		return nil, fmt.Errorf("coordinator call failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("coordinator returned no choices")
	}

	return ParseAnalysis(response.Choices[0].Content)
}

// ParseAnalysis decodes a model response into an agent analysis,
// tolerating markdown code fences around the JSON.
func ParseAnalysis(raw string) (*models.AgentAnalysis, error) {
	cleaned := cleanJSONResponse(raw)

	var summary models.CoordinatorSummary
	if err := json.Unmarshal([]byte(cleaned), &summary); err != nil {
		return nil, fmt.Errorf("parsing coordinator response: %w", err)
	}
	return &models.AgentAnalysis{CoordinatorSummary: &summary}, nil
}

// cleanJSONResponse strips markdown fences and surrounding prose that
// models sometimes wrap around JSON output.
func cleanJSONResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if end := strings.LastIndex(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
		cleaned = strings.TrimSpace(cleaned)
	}
	// Fall back to the outermost braces if prose leaked in anyway.
	if !strings.HasPrefix(cleaned, "{") {
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start >= 0 && end > start {
			cleaned = cleaned[start : end+1]
		}
	}
	return cleaned
}

// Dataset walks every reservation and fills in missing agent analyses
// in a copy of the dataset. Reservations that already carry an
// analysis are left untouched, so reruns only pay for the gaps.
func (c *Coordinator) Dataset(ctx context.Context, data *models.DinersList) (*models.DinersList, error) {
	if data == nil || data.Diners == nil {
		return nil, fmt.Errorf("augment: missing diners list")
	}

	augmented := &models.DinersList{Diners: make([]models.Diner, len(data.Diners))}
	copy(augmented.Diners, data.Diners)

	generated := 0
	for di := range augmented.Diners {
		diner := &augmented.Diners[di]
		diner.Reservations = append([]models.Reservation(nil), diner.Reservations...)
		for ri := range diner.Reservations {
			reservation := &diner.Reservations[ri]
			if reservation.AgentAnalysis != nil {
				continue
			}

			analysis, err := c.Analyze(ctx, diner, reservation)
			if err != nil {
				log.Printf("Skipping %s %s %s: %v", diner.Name, reservation.Date, reservation.Time, err)
				continue
			}
			reservation.AgentAnalysis = analysis
			generated++
		}
	}

	log.Printf("Generated %d agent analyses", generated)
	return augmented, nil
}
