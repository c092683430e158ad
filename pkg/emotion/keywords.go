package emotion

import "strings"

// keywordRule maps trigger substrings to a best-effort distribution used
// when the classifier is unavailable or returns something unparseable.
type keywordRule struct {
	triggers []string
	scores   []RawScore
}

var keywordRules = []keywordRule{
	{[]string{"happy", "joy"}, []RawScore{{Emotion: "joy", Confidence: 70}, {Emotion: "love", Confidence: 30}}},
	{[]string{"sad", "depressed"}, []RawScore{{Emotion: "sadness", Confidence: 80}, {Emotion: "fear", Confidence: 20}}},
	{[]string{"angry", "mad"}, []RawScore{{Emotion: "anger", Confidence: 75}, {Emotion: "sadness", Confidence: 25}}},
	{[]string{"afraid", "anxious"}, []RawScore{{Emotion: "fear", Confidence: 65}, {Emotion: "sadness", Confidence: 35}}},
	{[]string{"love", "care"}, []RawScore{{Emotion: "love", Confidence: 85}, {Emotion: "joy", Confidence: 15}}},
	{[]string{"surprise", "shocked"}, []RawScore{{Emotion: "surprise", Confidence: 90}, {Emotion: "fear", Confidence: 10}}},
	// Mixed feelings intentionally trip the ambiguity rule and resolve to
	// neutral through the normal pipeline.
	{[]string{"mixed", "confused"}, []RawScore{{Emotion: "joy", Confidence: 45}, {Emotion: "sadness", Confidence: 40}}},
}

// KeywordAnalysis derives a deterministic distribution from substring
// matches against the entry text. The result flows through Normalize so it
// obeys the same invariants as a real classifier response.
func KeywordAnalysis(text string) Analysis {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return Normalize(rule.scores)
			}
		}
	}
	return Normalize(nil)
}
