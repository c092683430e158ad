// Package mcp provides the Model Context Protocol server integration for
// reflexa.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/glyph"
	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/prompts"
	"tableflip.dev/reflexa/pkg/stats"
	"tableflip.dev/reflexa/pkg/timeutil"
)

// Analyzer scores entry text for the add tool.
type Analyzer interface {
	AnalyzeEmotion(ctx context.Context, text string) emotion.Analysis
}

// Service coordinates journal operations shared by the MCP server.
type Service struct {
	Repo     *journal.Repository
	Analyzer Analyzer
	Prompts  *prompts.Service
}

// ErrEntryNotFound is returned when an entry cannot be located.
var ErrEntryNotFound = errors.New("entry not found")

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Content           string
	AdditionalContent string
	Emotion           string
	Private           bool
	On                *time.Time
}

// ScoreDTO is one emotion confidence in a transport-friendly shape.
type ScoreDTO struct {
	Emotion    string `json:"emotion"`
	Confidence int    `json:"confidence"`
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID                string     `json:"id"`
	Content           string     `json:"content"`
	AdditionalContent string     `json:"additionalContent,omitempty"`
	DateISO           string     `json:"date"`
	DateUnix          int64      `json:"dateUnix"`
	Emotion           string     `json:"emotion"`
	EmotionSymbol     string     `json:"emotionSymbol"`
	Confidence        int        `json:"confidence"`
	Emotions          []ScoreDTO `json:"emotions,omitempty"`
	IsBookmarked      bool       `json:"isBookmarked"`
	IsPrivate         bool       `json:"isPrivate"`
	UserCorrected     bool       `json:"userCorrected"`
}

// InsightsDTO bundles streaks and aggregates for transport.
type InsightsDTO struct {
	CurrentStreak int                     `json:"currentStreak"`
	LongestStreak int                     `json:"longestStreak"`
	Weekly        stats.WeeklyEmotions    `json:"weeklyEmotions"`
	Monthly       []stats.MonthlyEmotions `json:"monthlyEmotions"`
	TotalEntries  int                     `json:"totalEntries"`
}

// NewService builds a service wrapper over the journal.
func NewService(repo *journal.Repository) *Service {
	return &Service{Repo: repo}
}

// ListEntries returns journal entries, newest first. When on is non-nil only
// that day's entries are returned; bookmarked narrows to bookmarks.
func (s *Service) ListEntries(ctx context.Context, on *time.Time, bookmarked bool) ([]EntryDTO, error) {
	if s.Repo == nil {
		return nil, errors.New("journal is not configured")
	}

	var entries []*entry.Entry
	switch {
	case on != nil:
		entries = s.Repo.GetEntriesByDate(*on)
	case bookmarked:
		entries = s.Repo.BookmarkedEntries()
	default:
		entries = s.Repo.Entries()
	}
	return toDTOs(entries), nil
}

// AddEntry creates and persists a new entry. When no explicit emotion is
// given the analyzer scores the content.
func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	if s.Repo == nil {
		return nil, errors.New("journal is not configured")
	}

	var (
		e   *entry.Entry
		err error
	)
	if opts.On != nil {
		e, err = entry.NewAt(opts.Content, *opts.On)
	} else {
		e, err = entry.New(opts.Content)
	}
	if err != nil {
		return nil, err
	}
	e.AdditionalContent = opts.AdditionalContent
	e.IsPrivate = opts.Private

	switch {
	case opts.Emotion != "":
		label, err := emotion.Parse(opts.Emotion)
		if err != nil {
			return nil, err
		}
		e.SetAnalysis(emotion.UserSelected(label))
	case s.Analyzer != nil:
		e.SetAnalysis(s.Analyzer.AnalyzeEmotion(ctx, opts.Content))
	default:
		e.SetAnalysis(emotion.KeywordAnalysis(opts.Content))
	}

	if err := s.Repo.AddEntry(e); err != nil {
		return nil, err
	}

	dto := toDTO(e)
	return &dto, nil
}

// UpdateEntry rewrites the content fields of an entry.
func (s *Service) UpdateEntry(ctx context.Context, id string, content, additional *string) (*EntryDTO, error) {
	if _, err := s.findEntry(id); err != nil {
		return nil, err
	}
	s.Repo.UpdateEntry(id, journal.Update{
		Content:           content,
		AdditionalContent: additional,
	})
	return s.EntryByID(ctx, id)
}

// DeleteEntry removes an entry from the journal.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.findEntry(id); err != nil {
		return err
	}
	s.Repo.DeleteEntry(id)
	return nil
}

// CorrectEmotion overrides the detected emotion with the user's label.
func (s *Service) CorrectEmotion(ctx context.Context, id, label string) (*EntryDTO, error) {
	parsed, err := emotion.Parse(label)
	if err != nil {
		return nil, err
	}
	if _, err := s.findEntry(id); err != nil {
		return nil, err
	}
	s.Repo.CorrectEmotion(id, parsed)
	return s.EntryByID(ctx, id)
}

// ToggleBookmark flips the bookmark flag on an entry.
func (s *Service) ToggleBookmark(ctx context.Context, id string) (*EntryDTO, error) {
	if _, err := s.findEntry(id); err != nil {
		return nil, err
	}
	s.Repo.ToggleBookmark(id)
	return s.EntryByID(ctx, id)
}

// TogglePrivate flips the privacy flag on an entry.
func (s *Service) TogglePrivate(ctx context.Context, id string) (*EntryDTO, error) {
	if _, err := s.findEntry(id); err != nil {
		return nil, err
	}
	s.Repo.TogglePrivate(id)
	return s.EntryByID(ctx, id)
}

// Insights returns streaks plus the calendar aggregates.
func (s *Service) Insights(ctx context.Context) (*InsightsDTO, error) {
	if s.Repo == nil {
		return nil, errors.New("journal is not configured")
	}
	snap := s.Repo.Snapshot()
	return &InsightsDTO{
		CurrentStreak: snap.CurrentStreak,
		LongestStreak: snap.LongestStreak,
		Weekly:        snap.Weekly,
		Monthly:       snap.Monthly,
		TotalEntries:  s.Repo.TotalEntries(),
	}, nil
}

// CountsForWindow tallies emotions over a report window like "2w" or "6mo".
func (s *Service) CountsForWindow(ctx context.Context, window string) (string, []stats.Count, error) {
	if s.Repo == nil {
		return "", nil, errors.New("journal is not configured")
	}
	win, err := timeutil.ParseWindow(window)
	if err != nil {
		return "", nil, err
	}
	now := time.Now()
	return win.Label(), stats.CountsBetween(s.Repo.Entries(), win.Start(now), now), nil
}

// ReflectionPrompts returns journaling prompts for the current journal state.
func (s *Service) ReflectionPrompts(ctx context.Context) ([]prompts.Prompt, error) {
	if s.Repo == nil {
		return nil, errors.New("journal is not configured")
	}
	if s.Prompts == nil {
		return prompts.RulePrompts(s.Repo.Entries(), time.Now()), nil
	}
	return s.Prompts.Prompts(ctx, s.Repo.Entries()), nil
}

// SearchEntries performs a substring match across entry content.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	if s.Repo == nil {
		return nil, errors.New("journal is not configured")
	}
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return []EntryDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	results := make([]EntryDTO, 0, limit)
	for _, e := range s.Repo.Entries() {
		if len(results) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(e.Content), q) ||
			strings.Contains(strings.ToLower(e.AdditionalContent), q) {
			results = append(results, toDTO(e))
		}
	}
	return results, nil
}

// EntryByID locates an entry by id and returns the DTO representation.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	e, err := s.findEntry(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

func (s *Service) findEntry(id string) (*entry.Entry, error) {
	if s.Repo == nil {
		return nil, errors.New("journal is not configured")
	}
	if id == "" {
		return nil, errors.New("id is required")
	}
	e, ok := s.Repo.GetEntryByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return e, nil
}

func toDTOs(entries []*entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e *entry.Entry) EntryDTO {
	effective := e.EffectiveEmotion()

	scores := make([]ScoreDTO, 0, len(e.Emotions))
	for _, s := range e.Emotions {
		scores = append(scores, ScoreDTO{
			Emotion:    string(s.Emotion),
			Confidence: s.Confidence,
		})
	}

	return EntryDTO{
		ID:                e.ID,
		Content:           e.Content,
		AdditionalContent: e.AdditionalContent,
		DateISO:           entry.FormatTime(e.Date.Time),
		DateUnix:          e.Date.Unix(),
		Emotion:           string(effective),
		EmotionSymbol:     glyph.ForEmotion(effective).Symbol,
		Confidence:        e.Confidence(),
		Emotions:          scores,
		IsBookmarked:      e.IsBookmarked,
		IsPrivate:         e.IsPrivate,
		UserCorrected:     e.UserCorrectedEmotion != "",
	}
}
