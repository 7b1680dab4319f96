package mcptools

// GetRecordInput is the input schema for the get_record MCP tool.
type GetRecordInput struct {
	Date string `json:"date" jsonschema-description:"Record date (YYYY-MM-DD)"`
}

// GetRecordOutput is the output schema for the get_record MCP tool.
type GetRecordOutput struct {
	Found       bool   `json:"found"`
	DiaryID     int64  `json:"diaryId,omitempty"`
	Date        string `json:"date"`
	Content     string `json:"content,omitempty"`
	HexCode     string `json:"hexCode,omitempty"`
	EmotionType string `json:"emotionType,omitempty"`
}

// SaveRecordInput is the input schema for the save_record MCP tool.
type SaveRecordInput struct {
	Date    string `json:"date" jsonschema-description:"Record date (YYYY-MM-DD)"`
	Content string `json:"content" jsonschema-description:"Diary content"`
	HexCode string `json:"hex_code,omitempty" jsonschema-description:"Tone color (#RRGGBB); omit to use the analyzer's suggestion"`
}

// SaveRecordOutput is the output schema for the save_record MCP tool.
type SaveRecordOutput struct {
	Date        string `json:"date"`
	Updated     bool   `json:"updated"`
	HexCode     string `json:"hexCode"`
	EmotionType string `json:"emotionType,omitempty"`
}

// ToneMapInput is the input schema for the month_tonemap MCP tool.
type ToneMapInput struct {
	Year  int `json:"year" jsonschema-description:"Calendar year"`
	Month int `json:"month" jsonschema-description:"Calendar month (1-12)"`
}

// ToneMapOutput is the output schema for the month_tonemap MCP tool.
type ToneMapOutput struct {
	Days []DayResult `json:"days"`
}

// DayResult is one recorded day in month_tonemap output.
type DayResult struct {
	Date        string `json:"date"`
	HexCode     string `json:"hexCode"`
	EmotionType string `json:"emotionType,omitempty"`
	Preview     string `json:"preview"`
}

// StatsInput is the input schema for the month_stats MCP tool.
type StatsInput struct {
	Year  int `json:"year" jsonschema-description:"Calendar year"`
	Month int `json:"month" jsonschema-description:"Calendar month (1-12)"`
}

// StatsOutput is the output schema for the month_stats MCP tool.
type StatsOutput struct {
	Stats []StatResult `json:"stats"`
}

// StatResult is one emotion slice in month_stats output.
type StatResult struct {
	EmotionType string `json:"emotionType"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
	HexCode     string `json:"hexCode"`
}
