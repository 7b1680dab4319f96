package mcptools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/filter-today/filterctl/internal/api"
	"github.com/filter-today/filterctl/internal/record"
)

// SaveRecordHandler returns the handler function for the save_record MCP tool.
// When no hex_code is supplied the backend analyzer picks the tone color.
func SaveRecordHandler(client *api.Client) func(ctx context.Context, req *mcp.CallToolRequest, input SaveRecordInput) (*mcp.CallToolResult, SaveRecordOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SaveRecordInput) (*mcp.CallToolResult, SaveRecordOutput, error) {
		if _, err := record.ParseDateKey(input.Date); err != nil {
			return nil, SaveRecordOutput{}, err
		}
		content := strings.TrimSpace(input.Content)
		if err := record.ValidateContent(content); err != nil {
			return nil, SaveRecordOutput{}, err
		}

		hex := input.HexCode
		emotion := ""
		if hex == "" {
			sug, err := client.Analyze(ctx, content)
			if err != nil {
				return nil, SaveRecordOutput{}, err
			}
			hex = sug.HexCode
			emotion = sug.EmotionType
		}
		if err := record.ValidateHexCode(hex); err != nil {
			return nil, SaveRecordOutput{}, err
		}

		draft := record.Draft{RecordDate: input.Date, Content: content, HexCode: hex}

		existing, found, err := client.LookupRecord(ctx, input.Date)
		if err != nil {
			return nil, SaveRecordOutput{}, err
		}
		if found {
			if err := client.UpdateRecord(ctx, existing.DiaryID, draft); err != nil {
				return nil, SaveRecordOutput{}, err
			}
		} else {
			if err := client.CreateRecord(ctx, draft); err != nil {
				return nil, SaveRecordOutput{}, err
			}
		}

		return nil, SaveRecordOutput{
			Date:        input.Date,
			Updated:     found,
			HexCode:     hex,
			EmotionType: emotion,
		}, nil
	}
}
