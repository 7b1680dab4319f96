package editor

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/filter-today/filterctl/internal/record"
)

type draftFrontMatter struct {
	RecordDate string `yaml:"record_date"`
	HexCode    string `yaml:"hex_code"`
}

// ComposeDraft renders a record as a markdown document with YAML front-matter,
// the form the editor presents for writing and editing entries.
func ComposeDraft(dateKey, hexCode, content string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "record_date: %s\n", dateKey)
	fmt.Fprintf(&b, "hex_code: %q\n", hexCode)
	b.WriteString("---\n\n")
	b.WriteString(content)
	return b.String()
}

// ParseDraft parses an edited draft back into a record draft. The date and
// color in the front-matter are validated; body whitespace is trimmed.
func ParseDraft(text string) (record.Draft, error) {
	var fm draftFrontMatter
	body, err := frontmatter.Parse(strings.NewReader(text), &fm)
	if err != nil {
		return record.Draft{}, fmt.Errorf("parsing front-matter: %w", err)
	}

	if _, err := record.ParseDateKey(fm.RecordDate); err != nil {
		return record.Draft{}, fmt.Errorf("invalid record_date %q: %w", fm.RecordDate, err)
	}

	hex := fm.HexCode
	if hex == "" {
		hex = record.DefaultHexCode
	}
	if err := record.ValidateHexCode(hex); err != nil {
		return record.Draft{}, fmt.Errorf("invalid hex_code %q: %w", fm.HexCode, err)
	}

	return record.Draft{
		RecordDate: fm.RecordDate,
		Content:    strings.TrimSpace(string(body)),
		HexCode:    hex,
	}, nil
}
