package mcptools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/filter-today/filterctl/internal/api"
	"github.com/filter-today/filterctl/internal/record"
)

// GetRecordHandler returns the handler function for the get_record MCP tool.
func GetRecordHandler(client *api.Client) func(ctx context.Context, req *mcp.CallToolRequest, input GetRecordInput) (*mcp.CallToolResult, GetRecordOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetRecordInput) (*mcp.CallToolResult, GetRecordOutput, error) {
		if _, err := record.ParseDateKey(input.Date); err != nil {
			return nil, GetRecordOutput{}, err
		}

		rec, err := client.Record(ctx, input.Date)
		if err != nil {
			if errors.Is(err, api.ErrNoRecord) {
				return nil, GetRecordOutput{Found: false, Date: input.Date}, nil
			}
			return nil, GetRecordOutput{}, err
		}

		return nil, GetRecordOutput{
			Found:       true,
			DiaryID:     rec.DiaryID,
			Date:        rec.RecordDate,
			Content:     rec.Content,
			HexCode:     rec.HexCode,
			EmotionType: rec.EmotionType,
		}, nil
	}
}
