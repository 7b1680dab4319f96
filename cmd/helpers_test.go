package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filter-today/filterctl/internal/api"
	"github.com/filter-today/filterctl/internal/config"
	"github.com/filter-today/filterctl/internal/state"
	"github.com/filter-today/filterctl/internal/ui"
)

func setupTestEnv(t *testing.T, handler http.Handler) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	store, err := state.NewStore(dir)
	if err != nil {
		t.Fatalf("creating state store: %v", err)
	}
	stateStore = store

	client, err = api.New(srv.URL, store)
	if err != nil {
		t.Fatalf("creating API client: %v", err)
	}

	appConfig = &config.Config{
		BaseURL:      srv.URL,
		StateDir:     dir,
		DefaultColor: "#ff9900",
	}
	toneCache = nil
	jsonOutput = false
	theme = ui.ResolveTheme(config.ThemeConfig{})
}
