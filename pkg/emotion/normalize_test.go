package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confidenceOf(t *testing.T, a Analysis, e Emotion) int {
	t.Helper()
	for _, s := range a.Emotions {
		if s.Emotion == e {
			return s.Confidence
		}
	}
	t.Fatalf("emotion %s missing from distribution", e)
	return 0
}

func TestNormalizeCompleteSet(t *testing.T) {
	a := Normalize([]RawScore{{Emotion: "joy", Confidence: 100}})

	require.Len(t, a.Emotions, len(Known())+1)
	seen := map[Emotion]int{}
	for _, s := range a.Emotions {
		seen[s.Emotion]++
	}
	for _, e := range All() {
		assert.Equal(t, 1, seen[e], "expected exactly one %s", e)
	}
	assert.Equal(t, Joy, a.Primary)
}

func TestNormalizeAmbiguity(t *testing.T) {
	a := Normalize([]RawScore{
		{Emotion: "joy", Confidence: 45},
		{Emotion: "sadness", Confidence: 40},
	})

	assert.Equal(t, Neutral, a.Primary)
	// Original confidences survive un-renormalized.
	assert.Equal(t, 45, confidenceOf(t, a, Joy))
	assert.Equal(t, 40, confidenceOf(t, a, Sadness))
	assert.Equal(t, 0, confidenceOf(t, a, Neutral))
}

func TestNormalizeAllZero(t *testing.T) {
	a := Normalize(nil)

	assert.Equal(t, Neutral, a.Primary)
	for _, s := range a.Emotions {
		assert.Zero(t, s.Confidence)
	}
}

func TestNormalizeRescalesTo100(t *testing.T) {
	a := Normalize([]RawScore{
		{Emotion: "joy", Confidence: 30},
		{Emotion: "fear", Confidence: 30},
	})

	assert.Equal(t, 50, confidenceOf(t, a, Joy))
	assert.Equal(t, 50, confidenceOf(t, a, Fear))

	total := 0
	for _, s := range a.Emotions {
		total += s.Confidence
	}
	assert.Equal(t, 100, total)
}

func TestNormalizeRoundingTolerance(t *testing.T) {
	a := Normalize([]RawScore{
		{Emotion: "joy", Confidence: 10},
		{Emotion: "sadness", Confidence: 10},
		{Emotion: "anger", Confidence: 10},
	})

	total := 0
	for _, s := range a.Emotions {
		total += s.Confidence
	}
	// Rounding may land at 99-101; anything further off is a bug.
	assert.GreaterOrEqual(t, total, 99)
	assert.LessOrEqual(t, total, 101)
	assert.NotEqual(t, Neutral, a.Primary)
}

func TestNormalizeNeutralPinnedLast(t *testing.T) {
	a := Normalize([]RawScore{
		{Emotion: "surprise", Confidence: 60},
		{Emotion: "fear", Confidence: 40},
	})

	require.NotEmpty(t, a.Emotions)
	assert.Equal(t, Neutral, a.Emotions[len(a.Emotions)-1].Emotion)
	assert.Equal(t, Surprise, a.Emotions[0].Emotion)
}

func TestNormalizeIgnoresUnknownLabels(t *testing.T) {
	a := Normalize([]RawScore{
		{Emotion: "melancholy", Confidence: 90},
		{Emotion: "JOY", Confidence: 60},
	})

	assert.Equal(t, Joy, a.Primary)
	assert.Equal(t, 100, confidenceOf(t, a, Joy))
}

func TestKeywordAnalysis(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		primary Emotion
	}{
		{"joy", "I felt so happy at the park", Joy},
		{"sadness", "a really sad afternoon", Sadness},
		{"anger", "I was mad about the meeting", Anger},
		{"fear", "feeling anxious before the exam", Fear},
		{"love", "so much love for my family", Love},
		{"surprise", "completely shocked by the news", Surprise},
		{"mixed resolves to neutral", "my feelings are mixed today", Neutral},
		{"no match", "wrote a grocery list", Neutral},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := KeywordAnalysis(tc.text)
			assert.Equal(t, tc.primary, a.Primary)
		})
	}
}

func TestUserSelected(t *testing.T) {
	a := UserSelected(Love)

	assert.Equal(t, Love, a.Primary)
	assert.Equal(t, 100, confidenceOf(t, a, Love))
	assert.Equal(t, Love, a.Emotions[0].Emotion)
	assert.True(t, a.Emotions[0].IsUserSelected)
}

func TestParse(t *testing.T) {
	e, err := Parse(" Joy ")
	require.NoError(t, err)
	assert.Equal(t, Joy, e)

	_, err = Parse("bliss")
	assert.Error(t, err)
}
