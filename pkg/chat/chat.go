// Package chat implements the Reflexa companion conversation: a
// history-threaded dialogue with the generative model that degrades to an
// apology instead of an error.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/reflexa/pkg/gemini"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one line of the conversation.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	greeting = "Hi! I'm Reflexa, your AI companion. I'm here to chat, help you process your thoughts, and provide support. How are you feeling today?"

	// Apology is the fixed reply used when the model call fails; chat never
	// surfaces a raw error to the user.
	Apology = "I apologize, but I'm having trouble responding right now. Could you try rephrasing your message?"
)

// Session is a single conversation. It lives in memory only.
type Session struct {
	generator gemini.Generator
	logger    *zap.Logger
	messages  []Message
	now       func() time.Time
}

// NewSession starts a conversation seeded with the greeting.
func NewSession(g gemini.Generator, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		generator: g,
		logger:    logger,
		now:       time.Now,
	}
	s.append(SenderBot, greeting)
	return s
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Send records the user message, asks the model for a reply, and returns
// the bot message. A failed call yields the apology reply.
func (s *Session) Send(ctx context.Context, text string) Message {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.append(SenderBot, Apology)
	}

	history := s.messages
	s.append(SenderUser, text)

	if s.generator == nil {
		return s.append(SenderBot, Apology)
	}

	reply, err := s.generator.Generate(ctx, companionPrompt(history, text))
	if err != nil {
		s.logger.Warn("chat reply failed", zap.Error(err))
		return s.append(SenderBot, Apology)
	}
	return s.append(SenderBot, strings.TrimSpace(reply))
}

func (s *Session) append(sender Sender, text string) Message {
	m := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, m)
	return m
}

func companionPrompt(history []Message, userMessage string) string {
	var b strings.Builder
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Sender, m.Text)
	}
	return fmt.Sprintf(`You are Reflexa, an empathetic AI companion focused on emotional support and mental well-being.
Previous conversation: %s
User's message: %s

Respond in a supportive, empathetic way while maintaining a natural conversation flow. Keep the response concise and focused on the user's emotional well-being.`, b.String(), userMessage)
}
