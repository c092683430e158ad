package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/reflexa/pkg/entry"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerUpdateEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerCorrectEmotionTool(srv, svc)
	registerBookmarkEntryTool(srv, svc)
	registerSetPrivacyTool(srv, svc)
	registerGetInsightsTool(srv, svc)
	registerGetPromptsTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
}

func emotionEnum() []string {
	return []string{"joy", "sadness", "anger", "fear", "love", "surprise", "neutral"}
}

func registerAddEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_entry",
		mcp.WithDescription("Add a new journal entry. The emotion is detected from the content unless one is provided."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The journal entry text."),
		),
		mcp.WithString("additional_content",
			mcp.Description("Optional follow-up reflection text."),
		),
		mcp.WithString("emotion",
			mcp.Description("Optional user-selected emotion, skips detection."),
			mcp.Enum(emotionEnum()...),
		),
		mcp.WithBoolean("private",
			mcp.Description("Mark the entry as private."),
		),
		mcp.WithString("date",
			mcp.Description("Optional RFC3339 timestamp for the entry date."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Content           string `json:"content"`
			AdditionalContent string `json:"additional_content"`
			Emotion           string `json:"emotion"`
			Private           bool   `json:"private"`
			Date              string `json:"date"`
		}

		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		var on *time.Time
		if strings.TrimSpace(args.Date) != "" {
			when, err := entry.ParseTime(args.Date)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid date value: %v", err)), nil
			}
			on = &when
		}

		dto, err := svc.AddEntry(ctx, AddEntryOptions{
			Content:           args.Content,
			AdditionalContent: args.AdditionalContent,
			Emotion:           args.Emotion,
			Private:           args.Private,
			On:                on,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries, newest first."),
		mcp.WithString("date",
			mcp.Description("Optional RFC3339 timestamp; only entries from that calendar day are returned."),
		),
		mcp.WithBoolean("bookmarked",
			mcp.Description("Only return bookmarked entries."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var on *time.Time
		if raw := strings.TrimSpace(request.GetString("date", "")); raw != "" {
			when, err := entry.ParseTime(raw)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid date value: %v", err)), nil
			}
			on = &when
		}
		bookmarked := request.GetBool("bookmarked", false)

		results, err := svc.ListEntries(ctx, on, bookmarked)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single journal entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_entry",
		mcp.WithDescription("Rewrite the content of an entry. The entry date never changes."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to modify."),
		),
		mcp.WithString("content",
			mcp.Description("Replacement entry text."),
		),
		mcp.WithString("additional_content",
			mcp.Description("Replacement follow-up reflection text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		args := request.GetArguments()
		var content, additional *string
		if v, ok := args["content"].(string); ok {
			content = &v
		}
		if v, ok := args["additional_content"].(string); ok {
			additional = &v
		}
		if content == nil && additional == nil {
			return mcp.NewToolResultError("nothing to update"), nil
		}

		dto, err := svc.UpdateEntry(ctx, id, content, additional)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete a journal entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.DeleteEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": id,
		})
	})
}

func registerCorrectEmotionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"correct_emotion",
		mcp.WithDescription("Override the detected emotion with the user's label."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to correct."),
		),
		mcp.WithString("emotion",
			mcp.Required(),
			mcp.Description("The corrected emotion label."),
			mcp.Enum(emotionEnum()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		label, err := request.RequireString("emotion")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.CorrectEmotion(ctx, id, label)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerBookmarkEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"bookmark_entry",
		mcp.WithDescription("Toggle the bookmark flag on an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to toggle."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleBookmark(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetPrivacyTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_privacy",
		mcp.WithDescription("Toggle the privacy flag on an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to toggle."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.TogglePrivate(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetInsightsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_insights",
		mcp.WithDescription("Get journaling streaks and emotion aggregates, optionally over an ad-hoc window."),
		mcp.WithString("window",
			mcp.Description("Optional report window such as 2w, 30d, 6mo, or 1y."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if window := strings.TrimSpace(request.GetString("window", "")); window != "" {
			label, counts, err := svc.CountsForWindow(ctx, window)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toJSONResult(map[string]any{
				"window": label,
				"counts": counts,
			})
		}

		insights, err := svc.Insights(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(insights)
	})
}

func registerGetPromptsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_prompts",
		mcp.WithDescription("Get reflection prompts tailored to the journal's recent entries."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		all, err := svc.ReflectionPrompts(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"prompts": all,
			"count":   len(all),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by substring match across entry content."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchEntries(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
