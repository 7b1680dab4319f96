package cmd

import (
	"fmt"

	"github.com/filter-today/filterctl/internal/record"
	"github.com/filter-today/filterctl/internal/ui"
)

// cliConfirmer answers the session's confirmation points with interactive
// prompts. The dashboard bypasses it with its own overlays.
type cliConfirmer struct{}

func (cliConfirmer) ConfirmSuggestion(s record.Suggestion) (bool, error) {
	label := record.EmotionLabel(s.EmotionType)
	return ui.Confirm(fmt.Sprintf("Analyzer suggests %s (%s). Accept?", label, s.HexCode), theme)
}

func (cliConfirmer) ConfirmDelete(dateKey string) (bool, error) {
	return ui.Confirm(fmt.Sprintf("Delete record for %s? This cannot be undone.", dateKey), theme)
}
