package classify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"rmoreira/findash/internal/models"
)

// Suggester proposes a semantic tag for a category label the mapping table
// could not resolve. Suggestions are advisory: classification never blocks
// on them and never applies them without the operator updating the table.
type Suggester interface {
	SuggestTag(category string) (models.CategoryTag, bool)
}

// GeminiSuggester asks the Gemini API which tag an unmapped category label
// most likely belongs to. Disabled installations simply never construct one.
type GeminiSuggester struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	log     *logrus.Logger
}

// NewGeminiSuggester creates a suggester backed by the Gemini API.
func NewGeminiSuggester(apiKey, modelName string, timeout time.Duration, logger *logrus.Logger) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}
	if logger == nil {
		logger = logrus.New()
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiSuggester{
		client:  client,
		model:   client.GenerativeModel(modelName),
		timeout: timeout,
		log:     logger,
	}, nil
}

// knownTags lists the tags the model may answer with.
var knownTags = []models.CategoryTag{
	models.TagReceita,
	models.TagCustoVariavel,
	models.TagCustoFixo,
	models.TagImposto,
	models.TagMarketing,
	models.TagPessoal,
	models.TagResultado,
}

// SuggestTag asks the model for a tag. Any API failure or unrecognized
// answer degrades to no suggestion.
func (s *GeminiSuggester) SuggestTag(category string) (models.CategoryTag, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	names := make([]string, len(knownTags))
	for i, t := range knownTags {
		names[i] = string(t)
	}
	prompt := fmt.Sprintf(
		"A financial dashboard category is labeled %q (Brazilian Portuguese). "+
			"Answer with exactly one of: %s",
		category, strings.Join(names, ", "))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.WithError(err).Debug("Gemini tag suggestion failed")
		return "", false
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", false
	}

	answer := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	for _, t := range knownTags {
		if strings.EqualFold(answer, string(t)) {
			return t, true
		}
	}
	s.log.WithField("answer", answer).Debug("Unrecognized tag suggestion from Gemini")
	return "", false
}

// Close releases the underlying API client.
func (s *GeminiSuggester) Close() error {
	return s.client.Close()
}
