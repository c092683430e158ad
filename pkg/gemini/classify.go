package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/reflexa/pkg/emotion"
)

// jsonArrayPattern finds the JSON array inside a response that may wrap it
// in prose or markdown fences.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// Classifier turns entry text into a validated emotion distribution.
type Classifier struct {
	Generator Generator
	Logger    *zap.Logger
}

// NewClassifier wraps a generator. Logger may be nil.
func NewClassifier(g Generator, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{Generator: g, Logger: logger}
}

func classifyPrompt(text string) string {
	labels := make([]string, 0, len(emotion.Known()))
	for _, e := range emotion.Known() {
		labels = append(labels, string(e))
	}
	return fmt.Sprintf(`Analyze the emotional content of this text and identify the emotions present.
Return ONLY a JSON array of objects, each with "emotion" (string, one of: %s)
and "confidence" (number between 0-100) fields.
The confidence values should sum to 100.
If no clear emotion is detected, return an empty array [].
Text to analyze: %q`, strings.Join(labels, ", "), text)
}

// AnalyzeEmotion classifies the text. A single attempt is made against the
// model; any failure, including unparseable output, falls back to the
// deterministic keyword heuristic so a save never blocks on the network.
func (c *Classifier) AnalyzeEmotion(ctx context.Context, text string) emotion.Analysis {
	if c.Generator == nil {
		return emotion.KeywordAnalysis(text)
	}

	response, err := c.Generator.Generate(ctx, classifyPrompt(text))
	if err != nil {
		c.Logger.Warn("emotion classification failed, using keyword fallback", zap.Error(err))
		return emotion.KeywordAnalysis(text)
	}

	raw, err := extractScores(response)
	if err != nil {
		c.Logger.Warn("unparseable classifier response, using keyword fallback", zap.Error(err))
		return emotion.KeywordAnalysis(text)
	}
	return emotion.Normalize(raw)
}

// extractScores tolerates prose around the JSON fragment the model was
// asked for.
func extractScores(response string) ([]emotion.RawScore, error) {
	fragment := jsonArrayPattern.FindString(response)
	if fragment == "" {
		fragment = "[]"
	}
	var raw []emotion.RawScore
	if err := json.Unmarshal([]byte(fragment), &raw); err != nil {
		return nil, fmt.Errorf("gemini: parse emotion scores: %w", err)
	}
	return raw, nil
}
