package entry

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/reflexa/pkg/emotion"
)

// ErrEmptyContent is returned when an entry is created without text.
var ErrEmptyContent = errors.New("entry: content is required")

// New creates an entry with a fresh id and the creation time stamped as its
// date. The date never changes for the lifetime of the entry.
func New(content string) (*Entry, error) {
	return NewAt(content, time.Now())
}

// NewAt creates an entry dated at the provided moment.
func NewAt(content string, at time.Time) (*Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return &Entry{
		ID:      uuid.NewString(),
		Content: content,
		Date:    Timestamp{Time: at},
		Emotion: emotion.Neutral,
	}, nil
}

// Entry is a single journal entry. The id and date are assigned at creation
// and are stable; everything else may change through explicit updates.
type Entry struct {
	ID                string    `json:"id"`
	Content           string    `json:"content"`
	AdditionalContent string    `json:"additionalContent,omitempty"`
	Date              Timestamp `json:"date"`
	Image             string    `json:"image,omitempty"`

	// Seq is the journal's insertion sequence. Stored documents are keyed
	// by date, so without it a backdated entry would change position after
	// a reload. Zero means the document predates sequence tracking.
	Seq uint64 `json:"seq,omitempty"`

	Emotion  emotion.Emotion `json:"emotion"`
	Emotions []emotion.Score `json:"emotions,omitempty"`

	IsBookmarked bool `json:"isBookmarked,omitempty"`
	IsPrivate    bool `json:"isPrivate,omitempty"`

	// UserCorrectedEmotion overrides Emotion everywhere a single label is
	// displayed or aggregated.
	UserCorrectedEmotion emotion.Emotion `json:"userCorrectedEmotion,omitempty"`
}

// EffectiveEmotion is the label aggregation and display should use.
func (e *Entry) EffectiveEmotion() emotion.Emotion {
	if e.UserCorrectedEmotion != "" {
		return e.UserCorrectedEmotion
	}
	if e.Emotion == "" {
		return emotion.Neutral
	}
	return e.Emotion
}

// Confidence reports the confidence of the effective emotion.
func (e *Entry) Confidence() int {
	effective := e.EffectiveEmotion()
	for _, s := range e.Emotions {
		if s.Emotion == effective {
			return s.Confidence
		}
	}
	return 0
}

// SetAnalysis applies a classifier result to the entry.
func (e *Entry) SetAnalysis(a emotion.Analysis) {
	e.Emotion = a.Primary
	e.Emotions = append([]emotion.Score(nil), a.Emotions...)
}

// Validate checks the save-time invariants.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return errors.New("entry: id is required")
	}
	if strings.TrimSpace(e.Content) == "" {
		return ErrEmptyContent
	}
	if e.Date.IsZero() {
		return errors.New("entry: date is required")
	}
	return nil
}

// Clone returns a copy that shares no mutable state with the original.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Emotions = append([]emotion.Score(nil), e.Emotions...)
	return &clone
}
