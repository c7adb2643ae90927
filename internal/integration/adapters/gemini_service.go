// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/aidiy/backend/internal/application/adapter"
	"github.com/aidiy/backend/internal/domain/entity"
)

const chatSystemPrompt = `You are AiDIY, a friendly money coach for kids. You help children learn about
saving, earning through chores, and reaching their goals.

RULES:
- Keep answers short, upbeat and age-appropriate
- Encourage saving toward goals and doing chores to earn rewards
- Never give financial, medical or legal advice meant for adults
- Never ask for or repeat personal information like addresses or passwords
- If asked something unrelated to money, chores or goals, gently steer back`

// GeminiService implements the adapter.AIService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance. An empty model
// falls back to the default.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// RecommendChores suggests age-appropriate chores for the family.
func (s *GeminiService) RecommendChores(ctx context.Context, request adapter.RecommendChoresRequest) ([]adapter.ChoreRecommendation, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildRecommendPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	recommendations, err := s.parseRecommendations(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return recommendations, nil
}

// Chat produces the assistant's reply for the next turn of a session.
func (s *GeminiService) Chat(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.8)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(chatSystemPrompt)},
	}

	chat := model.StartChat()
	chat.History = make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == entity.ChatRoleAssistant {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	reply := textContent(resp)
	if reply == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return reply, nil
}

// buildRecommendPrompt creates the chore recommendation prompt.
func (s *GeminiService) buildRecommendPrompt(request adapter.RecommendChoresRequest) string {
	var sb strings.Builder

	sb.WriteString(`You suggest household chores for children. Suggest 4 chores appropriate for
the family below. Rewards are in dollars between 1 and 15, scaled by difficulty.
Difficulty is one of "easy", "medium" or "hard". Due dates are within the next
two weeks, formatted like "Jan 2, 2006".

FAMILY:
`)

	if len(request.ChildNames) == 0 {
		sb.WriteString("(no children registered yet; suggest general kid-friendly chores)\n")
	}
	for i, name := range request.ChildNames {
		if i < len(request.ChildAges) && request.ChildAges[i] > 0 {
			sb.WriteString(fmt.Sprintf("- %s, age %d\n", name, request.ChildAges[i]))
		} else {
			sb.WriteString(fmt.Sprintf("- %s\n", name))
		}
	}

	if len(request.GoalTitles) > 0 {
		sb.WriteString("\nACTIVE SAVINGS GOALS:\n")
		for _, title := range request.GoalTitles {
			sb.WriteString(fmt.Sprintf("- %s\n", title))
		}
	}

	sb.WriteString(`
Respond with a JSON array. Each item must have:
{
  "title": "string",
  "description": "string",
  "category": "string",
  "difficulty": "easy" | "medium" | "hard",
  "reward": number,
  "due_date": "Jan 2, 2006"
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// geminiChoreSuggestion represents the raw response from Gemini.
type geminiChoreSuggestion struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Reward      float64 `json:"reward"`
	DueDate     string  `json:"due_date"`
}

// parseRecommendations parses the Gemini response into chore recommendations.
func (s *GeminiService) parseRecommendations(resp *genai.GenerateContentResponse) ([]adapter.ChoreRecommendation, error) {
	content := textContent(resp)
	if content == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var suggestions []geminiChoreSuggestion
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, content)
	}

	recommendations := make([]adapter.ChoreRecommendation, 0, len(suggestions))
	for _, sg := range suggestions {
		if sg.Title == "" {
			continue
		}
		switch sg.Difficulty {
		case "easy", "medium", "hard":
		default:
			sg.Difficulty = "easy"
		}
		if sg.Reward <= 0 {
			sg.Reward = 1
		}
		recommendations = append(recommendations, adapter.ChoreRecommendation{
			Title:       sg.Title,
			Description: sg.Description,
			Category:    sg.Category,
			Difficulty:  sg.Difficulty,
			Reward:      sg.Reward,
			DueDate:     sg.DueDate,
		})
	}

	return recommendations, nil
}

func textContent(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}
