// Package prompts generates journal prompts: deterministic rule-based
// suggestions that never fail, optionally enriched with AI nudges derived
// from the most recent entries.
package prompts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/gemini"
)

// Prompt is one journal suggestion shown to the user.
type Prompt struct {
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

// maxNudges caps the AI calls per regeneration: one per entry for the two
// most recent entries.
const maxNudges = 2

// Service produces the prompt list, serving from cache while it is valid.
type Service struct {
	Cache     *Cache
	Generator gemini.Generator // nil disables nudges entirely
	Nudges    bool             // the follow-up-questions settings toggle
	Logger    *zap.Logger
	now       func() time.Time
}

// NewService builds a Service. Generator and logger may be nil.
func NewService(g gemini.Generator, nudges bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Cache:     NewCache(),
		Generator: g,
		Nudges:    nudges,
		Logger:    logger,
		now:       time.Now,
	}
}

// Prompts returns the prompt list for the given entries, regenerating when
// the cache is empty or stale. Entries are expected newest first, as the
// repository hands them out.
func (s *Service) Prompts(ctx context.Context, entries []*entry.Entry) []Prompt {
	if cached, ok := s.Cache.get(entries); ok {
		return cached
	}

	generated := RulePrompts(entries, s.now())
	if len(entries) > 0 {
		generated = append(generated, s.nudges(ctx, entries)...)
	}

	s.Cache.fill(generated, entries)
	return generated
}

// genericPrompts are served whenever the journal is empty.
func genericPrompts() []Prompt {
	return []Prompt{
		{Question: "What's on your mind today?"},
		{Question: "How are you feeling right now?"},
		{Question: "What are you grateful for today?"},
	}
}

// RulePrompts derives prompts from entry count, recency, and emotion
// patterns. It is deterministic and never fails.
func RulePrompts(entries []*entry.Entry, now time.Time) []Prompt {
	if len(entries) == 0 {
		return genericPrompts()
	}

	prompts := make([]Prompt, 0, 4)
	recent := entries[0]

	weekAgo := now.AddDate(0, 0, -7)
	lastWeek := 0
	for _, e := range entries {
		if e.Date.After(weekAgo) {
			lastWeek++
		}
	}

	if recent.Content != "" {
		prompts = append(prompts, Prompt{
			Question: "How have your thoughts evolved since your last reflection?",
			Context:  "Based on your last entry",
		})
	}

	if len(recent.Emotions) > 0 {
		prompts = append(prompts, Prompt{
			Question: fmt.Sprintf("How are you managing your %s feelings today?", recent.EffectiveEmotion()),
			Context:  "Following up on your emotions",
		})
	}

	if lastWeek >= 3 {
		prompts = append(prompts, Prompt{
			Question: "What patterns have you noticed in your thoughts and feelings this week?",
			Context:  "Reflecting on your week",
		})
	}

	prompts = append(prompts, Prompt{
		Question: "What's one small step you could take today towards your personal growth?",
	})

	return prompts
}

func nudgePrompt(e *entry.Entry) string {
	return fmt.Sprintf(`You are a thoughtful journaling companion.
Based on the journal entry below, write ONE short, open-ended follow-up
question that helps the writer reflect further. Return only the question.

Entry (%s, feeling %s):
%s`, e.Date.Local().Format("January 2, 2006"), e.EffectiveEmotion(), e.Content)
}

// nudges asks the generator for up to two follow-up questions, one per
// recent entry. Individual failures are logged and skipped; the
// deterministic prompts are returned regardless.
func (s *Service) nudges(ctx context.Context, entries []*entry.Entry) []Prompt {
	if !s.Nudges || s.Generator == nil {
		return nil
	}

	out := make([]Prompt, 0, maxNudges)
	for i := 0; i < len(entries) && i < maxNudges; i++ {
		e := entries[i]
		text, err := s.Generator.Generate(ctx, nudgePrompt(e))
		if err != nil {
			s.Logger.Warn("prompt nudge skipped",
				zap.String("entry", e.ID),
				zap.Error(err))
			continue
		}
		question := strings.TrimSpace(text)
		if question == "" {
			continue
		}
		out = append(out, Prompt{
			Question: question,
			Context:  fmt.Sprintf("Inspired by your entry from %s", e.Date.Local().Format("January 2")),
		})
	}
	return out
}
