// Package emotion defines the fixed emotion vocabulary shared by the
// classifier, the aggregators, and the display layers.
package emotion

import (
	"fmt"
	"strings"
)

// Emotion is one of the known emotion labels.
type Emotion string

const (
	Joy      Emotion = "joy"
	Sadness  Emotion = "sadness"
	Anger    Emotion = "anger"
	Fear     Emotion = "fear"
	Love     Emotion = "love"
	Surprise Emotion = "surprise"

	// Neutral is special: it never carries confidence of its own and is
	// selected as the primary emotion rather than scored.
	Neutral Emotion = "neutral"
)

// Known returns the non-neutral emotions in their canonical order.
func Known() []Emotion {
	return []Emotion{Joy, Sadness, Anger, Fear, Love, Surprise}
}

// All returns every label including neutral.
func All() []Emotion {
	return append(Known(), Neutral)
}

// Parse resolves a label string to an Emotion.
func Parse(s string) (Emotion, error) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All() {
		if e == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("emotion: unknown label %q", s)
}

// Info describes how an emotion is presented.
type Info struct {
	Name        string
	Color       string
	Icon        string
	Description string
}

var infos = map[Emotion]Info{
	Joy:      {Name: "Joy", Color: "#ffcc33", Icon: "smile", Description: "Feelings of happiness, pleasure, or contentment"},
	Sadness:  {Name: "Sadness", Color: "#5d8aa8", Icon: "frown", Description: "Feelings of sorrow, grief, or unhappiness"},
	Anger:    {Name: "Anger", Color: "#e34234", Icon: "angry", Description: "Feelings of displeasure, hostility, or antagonism"},
	Fear:     {Name: "Fear", Color: "#9370db", Icon: "alert-circle", Description: "Feelings of anxiety, worry, or dread"},
	Love:     {Name: "Love", Color: "#ff69b4", Icon: "heart", Description: "Feelings of affection, attachment, or caring"},
	Surprise: {Name: "Surprise", Color: "#40e0d0", Icon: "zap", Description: "Feelings of astonishment, amazement, or wonder"},
	Neutral:  {Name: "Neutral", Color: "#a9a9a9", Icon: "minus-circle", Description: "Balanced or indifferent emotional state"},
}

// Info returns display metadata for the emotion, falling back to neutral
// for unknown labels.
func (e Emotion) Info() Info {
	if info, ok := infos[e]; ok {
		return info
	}
	return infos[Neutral]
}

func (e Emotion) String() string {
	return string(e)
}

// Score is one entry of a confidence distribution.
type Score struct {
	Emotion        Emotion `json:"emotion"`
	Confidence     int     `json:"confidence"`
	IsUserSelected bool    `json:"isUserSelected,omitempty"`
}

// Analysis is a validated classifier result: a primary emotion plus the
// full distribution, one Score per known emotion and one for neutral.
type Analysis struct {
	Primary  Emotion `json:"primaryEmotion"`
	Emotions []Score `json:"emotions"`
}
