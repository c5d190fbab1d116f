package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-catalog/internal/catalog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "car-catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "cars.json", cfg.CatalogFile)
	assert.Equal(t, InterfaceGUI, cfg.Interface)
	assert.Equal(t, catalog.SortLoadOrder, cfg.SortOrder())
	assert.Equal(t, "https://www.google.com/search?q=", cfg.Links.SearchURL)
	assert.Equal(t, "https://omotech.xyz", cfg.Links.ProducerURL)
	assert.Equal(t, 750, cfg.Window.Width)
	assert.Equal(t, 400, cfg.Window.Height)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
catalog_file = "data/garage.json"
interface    = "tui"
default_sort = "brand-desc"
watch        = true

[links]
producer_url = "https://example.com/about"

[log]
level = "debug"
json  = true
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "data/garage.json", cfg.CatalogFile)
	assert.Equal(t, InterfaceTUI, cfg.Interface)
	assert.Equal(t, catalog.SortBrandDesc, cfg.SortOrder())
	assert.True(t, cfg.Watch)
	assert.Equal(t, "https://example.com/about", cfg.Links.ProducerURL)
	assert.Equal(t, "https://www.google.com/search?q=", cfg.Links.SearchURL, "unset keys keep defaults")
	assert.Equal(t, "Car Catalog", cfg.Window.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	require.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()
	cfg, err := Load("", true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		body        string
		errContains string
	}{
		{name: "syntax", body: `catalog_file = `, errContains: "parse config"},
		{name: "unknown key", body: `colour = "red"`, errContains: "unknown keys: colour"},
		{name: "wrong type", body: `watch = "yes"`, errContains: "parse config"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.body), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()
	v := NewViper()
	v.Set(KeyCatalogFile, "other.json")
	v.Set(KeyInterface, InterfaceTUI)
	v.Set(KeyDefaultSort, "oldest-first")
	v.Set(KeyWatch, true)
	v.Set(KeySearchURL, "https://duckduckgo.com/?q=")
	v.Set(KeyLogLevel, "warn")
	v.Set(KeyLogFile, "catalog.log")

	cfg := Default()
	cfg.Merge(v)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "other.json", cfg.CatalogFile)
	assert.Equal(t, InterfaceTUI, cfg.Interface)
	assert.Equal(t, catalog.SortOldestFirst, cfg.SortOrder())
	assert.True(t, cfg.Watch)
	assert.Equal(t, "https://duckduckgo.com/?q=", cfg.Links.SearchURL)
	assert.Equal(t, "https://omotech.xyz", cfg.Links.ProducerURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "catalog.log", cfg.Log.File)
}

func TestMerge_Environment(t *testing.T) {
	t.Setenv("CARCATALOG_CATALOG_FILE", "env.json")
	t.Setenv("CARCATALOG_LOG_JSON", "true")

	cfg := Default()
	cfg.Merge(NewViper())

	assert.Equal(t, "env.json", cfg.CatalogFile)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, InterfaceGUI, cfg.Interface)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{name: "empty catalog", mutate: func(c *Config) { c.CatalogFile = " " }, errContains: "catalog_file"},
		{name: "bad interface", mutate: func(c *Config) { c.Interface = "web" }, errContains: "interface"},
		{name: "bad sort", mutate: func(c *Config) { c.DefaultSort = "price" }, errContains: "default_sort"},
		{name: "relative search url", mutate: func(c *Config) { c.Links.SearchURL = "/search?q=" }, errContains: "links.search_url"},
		{name: "ftp producer", mutate: func(c *Config) { c.Links.ProducerURL = "ftp://omotech.xyz" }, errContains: "links.producer_url"},
		{name: "zero window", mutate: func(c *Config) { c.Window.Width = 0 }, errContains: "window size"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, errContains: "log.level"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestControllerLinks(t *testing.T) {
	t.Parallel()
	cfg := Default()
	links := cfg.ControllerLinks()
	assert.Equal(t, cfg.Links.SearchURL, links.SearchURL)
	assert.Equal(t, cfg.Links.ProducerURL, links.ProducerURL)
}
