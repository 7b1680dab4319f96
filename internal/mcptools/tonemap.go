package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/filter-today/filterctl/internal/api"
)

// ToneMapHandler returns the handler function for the month_tonemap MCP tool.
func ToneMapHandler(client *api.Client) func(ctx context.Context, req *mcp.CallToolRequest, input ToneMapInput) (*mcp.CallToolResult, ToneMapOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ToneMapInput) (*mcp.CallToolResult, ToneMapOutput, error) {
		if input.Month < 1 || input.Month > 12 {
			return nil, ToneMapOutput{}, fmt.Errorf("month %d out of range", input.Month)
		}

		tm, err := client.ToneMap(ctx, input.Year, input.Month)
		if err != nil {
			return nil, ToneMapOutput{}, err
		}

		days := make([]DayResult, 0, len(tm))
		for _, date := range sortedDates(tm) {
			summary := tm[date]
			days = append(days, DayResult{
				Date:        date,
				HexCode:     summary.HexCode,
				EmotionType: summary.EmotionType,
				Preview:     truncate(summary.Content, 120),
			})
		}
		return nil, ToneMapOutput{Days: days}, nil
	}
}

// StatsHandler returns the handler function for the month_stats MCP tool.
func StatsHandler(client *api.Client) func(ctx context.Context, req *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
		if input.Month < 1 || input.Month > 12 {
			return nil, StatsOutput{}, fmt.Errorf("month %d out of range", input.Month)
		}

		stats, err := client.Stats(ctx, input.Year, input.Month)
		if err != nil {
			return nil, StatsOutput{}, err
		}

		out := make([]StatResult, 0, len(stats))
		for _, s := range stats {
			out = append(out, StatResult{
				EmotionType: s.EmotionType,
				Label:       s.Label,
				Count:       s.Count,
				HexCode:     s.HexCode,
			})
		}
		return nil, StatsOutput{Stats: out}, nil
	}
}
