package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"claim_triage/internal/domain/assessment"
	"claim_triage/internal/domain/entities"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var (
	ErrMissingAnthropicAPIKey = errors.New("missing ANTHROPIC_API_KEY")
	ErrNoTextContent          = errors.New("no text content in Anthropic response")
)

const visionSystemPrompt = `You are a vehicle damage assessor. Inspect the photo and answer with JSON only:
{"vehicle":{"make":"","model":"","year":0,"color":"","confidence":0},
 "damage":{"description":"","severity":"Minor|Moderate|Severe","confidence":0,
  "affected_areas":[{"name":"","confidence":0,"coordinates":{"x":0,"y":0,"width":0,"height":0}}]}}
Confidences are 0-100. Coordinates are percentages of the image size, 0-100.`

const languageSystemPrompt = `You are an insurance claims adjuster. Identify the vehicle in the photo and describe the visible damage.
Answer with JSON only:
{"vehicle":{"make":"","model":"","year":0,"color":"","confidence":0},
 "description":"","severity":"Minor|Moderate|Severe","score":0}
score is your overall confidence in this assessment, 0-100.`

// ClaudeClient asks an Anthropic model to analyze vehicle photos. It serves as
// both the vision analyzer and the language model of the assessment pipeline.
type ClaudeClient struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

func NewClaudeClient(apiKey, model string, maxTokens int64, timeout time.Duration) (*ClaudeClient, error) {
	if apiKey == "" {
		log.Printf("[assessment][anthropic] missing ANTHROPIC_API_KEY")
		return nil, ErrMissingAnthropicAPIKey
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	log.Printf("[assessment][anthropic] client initialized model=%s", model)
	return &ClaudeClient{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}, nil
}

func (c *ClaudeClient) AnalyzeImage(ctx context.Context, image []byte, mediaType string) (assessment.VisionResult, error) {
	text, err := c.ask(ctx, visionSystemPrompt, image, mediaType)
	if err != nil {
		return assessment.VisionResult{}, err
	}
	return parseVisionResponse(text)
}

func (c *ClaudeClient) DescribeDamage(ctx context.Context, image []byte, mediaType string) (assessment.LanguageResult, error) {
	text, err := c.ask(ctx, languageSystemPrompt, image, mediaType)
	if err != nil {
		return assessment.LanguageResult{}, err
	}
	return parseLanguageResponse(text)
}

func (c *ClaudeClient) ask(ctx context.Context, systemPrompt string, image []byte, mediaType string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt, CacheControl: anthropic.NewCacheControlEphemeralParam()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, base64.StdEncoding.EncodeToString(image)),
				anthropic.NewTextBlock("Assess this vehicle photo."),
			),
		},
	})
	if err != nil {
		log.Printf("[assessment][anthropic] request failed err=%v", err)
		return "", fmt.Errorf("anthropic api: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("[assessment][anthropic] response size=%d tokens_in=%d tokens_out=%d took=%s",
				len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens, time.Since(start))
			return block.Text, nil
		}
	}
	return "", ErrNoTextContent
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func parseVisionResponse(text string) (assessment.VisionResult, error) {
	text = stripFences(text)
	var out assessment.VisionResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return assessment.VisionResult{}, fmt.Errorf("parsing vision response: %w (response: %s)", err, text)
	}

	out.Damage.Severity = normalizeSeverity(string(out.Damage.Severity))
	out.Damage.Confidence = clampPercent(out.Damage.Confidence)
	areas := out.Damage.AffectedAreas[:0]
	for _, a := range out.Damage.AffectedAreas {
		a.Name = strings.TrimSpace(a.Name)
		if a.Name == "" {
			continue
		}
		a.Confidence = clampPercent(a.Confidence)
		a.Coordinates = clampBox(a.Coordinates)
		areas = append(areas, a)
	}
	out.Damage.AffectedAreas = areas
	if out.Vehicle != nil {
		out.Vehicle.Confidence = clampPercent(out.Vehicle.Confidence)
	}
	return out, nil
}

func parseLanguageResponse(text string) (assessment.LanguageResult, error) {
	text = stripFences(text)
	var out assessment.LanguageResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return assessment.LanguageResult{}, fmt.Errorf("parsing language response: %w (response: %s)", err, text)
	}

	out.Description = strings.TrimSpace(out.Description)
	out.Severity = normalizeSeverity(string(out.Severity))
	if out.Score != nil {
		s := clampPercent(*out.Score)
		out.Score = &s
	}
	if out.Vehicle != nil {
		out.Vehicle.Confidence = clampPercent(out.Vehicle.Confidence)
	}
	return out, nil
}

// normalizeSeverity maps free-form severities onto the known set; unknown values become "".
func normalizeSeverity(s string) entities.Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minor":
		return entities.SeverityMinor
	case "moderate":
		return entities.SeverityModerate
	case "severe":
		return entities.SeveritySevere
	}
	return ""
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

func clampBox(b entities.BoundingBox) entities.BoundingBox {
	b.X = clampPercent(b.X)
	b.Y = clampPercent(b.Y)
	b.Width = math.Min(clampPercent(b.Width), 100-b.X)
	b.Height = math.Min(clampPercent(b.Height), 100-b.Y)
	return b
}
