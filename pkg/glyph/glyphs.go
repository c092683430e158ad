// Package glyph maps emotions to the symbols and terminal colors used when
// rendering journal entries.
package glyph

import (
	"github.com/fatih/color"

	"tableflip.dev/reflexa/pkg/emotion"
)

type Glyph struct {
	Emotion emotion.Emotion
	Symbol  string
	Meaning string
	Order   int
	attrs   []color.Attribute
}

// Color returns a printer configured for this glyph's emotion.
func (g Glyph) Color() *color.Color {
	return color.New(g.attrs...)
}

var glyphs = map[emotion.Emotion]Glyph{
	emotion.Joy:      {emotion.Joy, "☀", "joy", 0, []color.Attribute{color.FgHiYellow}},
	emotion.Sadness:  {emotion.Sadness, "☂", "sadness", 1, []color.Attribute{color.FgBlue}},
	emotion.Anger:    {emotion.Anger, "⚡", "anger", 2, []color.Attribute{color.FgRed}},
	emotion.Fear:     {emotion.Fear, "△", "fear", 3, []color.Attribute{color.FgMagenta}},
	emotion.Love:     {emotion.Love, "♥", "love", 4, []color.Attribute{color.FgHiMagenta}},
	emotion.Surprise: {emotion.Surprise, "✦", "surprise", 5, []color.Attribute{color.FgCyan}},
	emotion.Neutral:  {emotion.Neutral, "•", "neutral", 6, []color.Attribute{color.Faint}},
}

// ForEmotion returns the glyph for e, falling back to the neutral glyph.
func ForEmotion(e emotion.Emotion) Glyph {
	if g, ok := glyphs[e]; ok {
		return g
	}
	return glyphs[emotion.Neutral]
}

// DefaultGlyphs lists every glyph in display order.
func DefaultGlyphs() []Glyph {
	out := make([]Glyph, 0, len(glyphs))
	for _, e := range emotion.All() {
		out = append(out, glyphs[e])
	}
	return out
}

// ByOrder sorts glyphs by their display order.
type ByOrder []Glyph

func (b ByOrder) Len() int           { return len(b) }
func (b ByOrder) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b ByOrder) Less(i, j int) bool { return b[i].Order < b[j].Order }
