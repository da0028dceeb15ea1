package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"oneiro/internal/observability"

	"github.com/sashabaranov/go-openai"
)

// Interpreter produces a textual interpretation of a dream description.
type Interpreter interface {
	Interpret(ctx context.Context, description string) (string, error)
}

// Illustrator renders a dream description in a visual style, persists the
// result, and returns a public URL.
type Illustrator interface {
	Illustrate(ctx context.Context, description, style string) (string, error)
}

// ImageStore persists generated image bytes and returns a public URL.
type ImageStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

const interpretSystemPrompt = "You are an expert in dream interpretation. " +
	"Provide a detailed and insightful interpretation for the described dream."

const enhanceSystemPrompt = "You are an expert in interpreting dreams and creating precise prompts " +
	"for AI image generation. Translate the provided dream description into English and create a " +
	"prompt that vividly captures the essence and main elements of the dream, while explicitly " +
	"incorporating the specified image style."

// Client implements Interpreter and Illustrator against the OpenAI API.
type Client struct {
	oa         *openai.Client
	store      ImageStore
	httpClient *http.Client
}

// NewClient builds an OpenAI-backed collaborator client. Generated images are
// downloaded from the ephemeral OpenAI URL and persisted through store.
func NewClient(apiKey string, store ImageStore) *Client {
	return &Client{
		oa:         openai.NewClient(apiKey),
		store:      store,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Interpret asks the chat model for a textual interpretation of the dream.
func (c *Client) Interpret(ctx context.Context, description string) (string, error) {
	start := time.Now()
	resp, err := c.oa.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: interpretSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Interpret this dream: " + description},
		},
		MaxTokens: 500,
	})
	observeAICall("interpret", start, err)
	if err != nil {
		return "", fmt.Errorf("interpretation request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("interpretation response was empty")
	}
	return resp.Choices[0].Message.Content, nil
}

// enhancePrompt translates the description and blends in the style fragment so
// the image model receives a single cohesive English prompt. On an empty model
// response the raw description is used as-is.
func (c *Client) enhancePrompt(ctx context.Context, description, stylePrompt string) (string, error) {
	user := fmt.Sprintf(
		"Dream description: %q.\nImage style: %s.\n\n"+
			"Create a detailed and evocative image-generation prompt that begins with a clear statement "+
			"of the image style, reflects the main elements, atmosphere, and emotions of the dream, "+
			"translates any non-English elements into English, and stays true to the dreamer's vision "+
			"without adding details that are not present in the description.",
		description, stylePrompt,
	)

	resp, err := c.oa.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: enhanceSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   250,
	})
	if err != nil {
		return "", fmt.Errorf("prompt enhancement failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return description, nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Illustrate generates an image for the dream in the requested style, stores
// it, and returns the stored object's public URL.
func (c *Client) Illustrate(ctx context.Context, description, style string) (string, error) {
	prompt, err := c.enhancePrompt(ctx, description, StylePrompt(style))
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := c.oa.CreateImage(ctx, openai.ImageRequest{
		Model:          openai.CreateImageModelDallE3,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	observeAICall("illustrate", start, err)
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("image generation returned no URL")
	}

	body, err := c.download(ctx, resp.Data[0].URL)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("dream-images/%d.png", time.Now().UnixMilli())
	url, err := c.store.Put(ctx, key, body, "image/png")
	if err != nil {
		return "", fmt.Errorf("failed to store generated image: %w", err)
	}
	return url, nil
}

// download fetches the generated image from the provider's ephemeral URL.
func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download generated image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func observeAICall(operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	observability.AICallDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}
