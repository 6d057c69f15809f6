package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Client is a thin wrapper over an OpenAI-compatible chat completion API.
// One call is one network round trip; retrying is the caller's business.
type Client struct {
	client *openai.Client
	cfg    ProviderConfig
}

func New(cfg ProviderConfig) *Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		cfg:    cfg,
	}
}

// Complete sends a system prompt plus a user text message and returns the
// first choice's content.
func (c *Client) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userText,
			},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call AI API: %w", err)
	}

	return firstChoiceContent(resp)
}

// CompleteVision sends a system prompt plus a user turn combining an inlined
// base64 image (as a data URL) and accompanying text.
func (c *Client) CompleteVision(ctx context.Context, systemPrompt, imageDataURL, userText string) (string, error) {
	parts := []openai.ChatMessagePart{
		{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: imageDataURL,
			},
		},
	}
	if userText != "" {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: userText,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.VisionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:         openai.ChatMessageRoleUser,
				MultiContent: parts,
			},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call AI API: %w", err)
	}

	return firstChoiceContent(resp)
}

func firstChoiceContent(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty response from AI")
	}
	return content, nil
}

// ImageDataURL inlines base64 image content the way vision endpoints expect.
func ImageDataURL(mimeType, base64Data string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)
}
