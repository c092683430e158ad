package emotion

import (
	"math"
	"sort"
	"strings"
)

// AmbiguityThreshold is the confidence at which a second strong emotion
// makes the text count as emotionally ambiguous.
const AmbiguityThreshold = 40

// RawScore is a single unvalidated classifier pair. The classifier may
// omit emotions, repeat them, or report labels outside the known set.
type RawScore struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Normalize validates a raw classifier distribution and produces the
// canonical one: every known emotion present exactly once, confidences
// summing to 100 (or all zero when nothing was detected), neutral appended
// with zero confidence and pinned to the last position.
func Normalize(raw []RawScore) Analysis {
	scores := make([]Score, 0, len(Known())+1)
	for _, e := range Known() {
		confidence := 0
		for _, r := range raw {
			if strings.EqualFold(strings.TrimSpace(r.Emotion), string(e)) {
				confidence = int(math.Round(r.Confidence))
				break
			}
		}
		scores = append(scores, Score{Emotion: e, Confidence: confidence})
	}

	// Two or more strong emotions mean the text is ambiguous. Neutral wins
	// as primary while the original confidences are reported untouched.
	strong := 0
	for _, s := range scores {
		if s.Confidence >= AmbiguityThreshold {
			strong++
		}
	}
	if strong >= 2 {
		scores = append(scores, Score{Emotion: Neutral})
		return Analysis{Primary: Neutral, Emotions: scores}
	}

	total := 0
	for _, s := range scores {
		total += s.Confidence
	}
	if total == 0 {
		scores = append(scores, Score{Emotion: Neutral})
		return Analysis{Primary: Neutral, Emotions: scores}
	}

	// Rescale so the distribution sums to 100. Rounding can leave the sum
	// at 99-101, which is accepted.
	if total != 100 {
		for i := range scores {
			if scores[i].Confidence == 0 {
				continue
			}
			scores[i].Confidence = int(math.Round(float64(scores[i].Confidence) / float64(total) * 100))
		}
	}

	scores = append(scores, Score{Emotion: Neutral})
	sortScores(scores)

	primary := Neutral
	if scores[0].Confidence > 0 {
		primary = scores[0].Emotion
	}
	return Analysis{Primary: primary, Emotions: scores}
}

// sortScores orders descending by confidence with neutral forced last.
func sortScores(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Emotion == Neutral {
			return false
		}
		if scores[j].Emotion == Neutral {
			return true
		}
		return scores[i].Confidence > scores[j].Confidence
	})
}

// UserSelected builds the distribution for a manually chosen emotion.
func UserSelected(e Emotion) Analysis {
	scores := make([]Score, 0, len(Known())+1)
	for _, known := range Known() {
		s := Score{Emotion: known}
		if known == e {
			s.Confidence = 100
			s.IsUserSelected = true
		}
		scores = append(scores, s)
	}
	scores = append(scores, Score{Emotion: Neutral, IsUserSelected: e == Neutral})
	sortScores(scores)

	primary := e
	if primary == "" {
		primary = Neutral
	}
	return Analysis{Primary: primary, Emotions: scores}
}
