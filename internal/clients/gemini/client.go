// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

const DefaultModel = "gemini-2.0-flash"

// Client implements the NarrativeProvider interface
type Client struct {
	client *genai.Client
	model  string
	logger *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: genaiClient,
		model:  DefaultModel,
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GenerateContent generates text from a prompt
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().Str("model", c.model).Msg("Generating content")

	contents := genai.Text(prompt)
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(result)
}

// GenerateChat generates the next reply for a conversation. The last message
// is sent as the new turn; everything before it becomes chat history. The
// provider requires history to start with a user turn, so any leading model
// messages are skipped.
func (c *Client) GenerateChat(ctx context.Context, systemInstruction string, messages []models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages to send")
	}

	c.logger.Debug().Str("model", c.model).Int("messages", len(messages)).Msg("Generating chat reply")

	var config *genai.GenerateContentConfig
	if systemInstruction != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		}
	}

	history := buildHistory(messages[:len(messages)-1])

	chat, err := c.client.Chats.Create(ctx, c.model, config, history)
	if err != nil {
		return "", fmt.Errorf("failed to create chat session: %w", err)
	}

	result, err := chat.Send(ctx, &genai.Part{Text: messages[len(messages)-1].Content})
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}

	return extractTextFromResponse(result)
}

func buildHistory(messages []models.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := genai.RoleUser
		if m.Role == models.ChatRoleAssistant {
			role = genai.RoleModel
		}
		if len(history) == 0 && role != genai.RoleUser {
			continue
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return history
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// Ensure Client implements NarrativeProvider
var _ interfaces.NarrativeProvider = (*Client)(nil)
