// Package suggest provides optional AI-assisted category suggestions for
// review entries. Suggestions are advisory hints for the curator; they never
// replace the trained model's prediction or touch the corpus on their own.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIClient defines the interface for AI-based category suggestions. The
// abstraction keeps the review loop testable without external API calls.
type AIClient interface {
	// SuggestCategory proposes a category from the vocabulary for the given
	// description, or "unknown" when the service cannot decide.
	SuggestCategory(ctx context.Context, description string, vocab *models.Vocabulary) (string, error)
}

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a GeminiClient with the given API key and model name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// SuggestCategory asks Gemini for a category and clamps the answer to the
// vocabulary. Anything outside it comes back as "unknown".
func (c *GeminiClient) SuggestCategory(ctx context.Context, description string, vocab *models.Vocabulary) (string, error) {
	prompt := fmt.Sprintf(
		"Categorize this bank statement transaction description into exactly one of the following categories: %s.\n"+
			"Respond with only the category name, nothing else.\n"+
			"Transaction description: %q",
		strings.Join(vocab.TrainableLabels(), ", "), description)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.CategoryUnknown, nil
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return models.CategoryUnknown, nil
	}
	category := strings.ToLower(strings.TrimSpace(string(text)))

	if category == models.CategoryUnknown || !vocab.Contains(category) {
		c.logger.WithFields(
			logging.Field{Key: "description", Value: description},
			logging.Field{Key: "ai_category", Value: category},
		).Debug("AI suggestion outside vocabulary, treating as unknown")
		return models.CategoryUnknown, nil
	}
	return category, nil
}
