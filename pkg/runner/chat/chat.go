package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/reflexa/pkg/chat"
	"tableflip.dev/reflexa/pkg/gemini"
)

// Chat runs the interactive companion loop until EOF or "exit".
type Chat struct {
	Generator gemini.Generator
	Logger    *zap.Logger

	In  io.Reader
	Out io.Writer
}

func (n *Chat) Do(ctx context.Context) error {
	in := n.In
	if in == nil {
		in = os.Stdin
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	bot := color.New(color.FgCyan)
	you := color.New(color.Bold)

	session := chat.NewSession(n.Generator, n.Logger)
	for _, m := range session.Messages() {
		_, _ = bot.Fprintf(out, "reflexa: %s\n", m.Text)
	}

	scanner := bufio.NewScanner(in)
	for {
		_, _ = you.Fprint(out, "you: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		reply := session.Send(ctx, line)
		_, _ = bot.Fprintf(out, "reflexa: %s\n", reply.Text)
	}

	_, _ = fmt.Fprintln(out, "")
	return scanner.Err()
}
