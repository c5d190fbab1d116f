// Package config holds the viewer settings: defaults, the optional TOML file
// and environment/flag overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"car-catalog/internal/catalog"
	"car-catalog/internal/controllers"
	"car-catalog/internal/logger"
)

const (
	EnvPrefix         = "CARCATALOG"
	DefaultConfigFile = "car-catalog.toml"
	DefaultCatalog    = "cars.json"

	InterfaceGUI = "gui"
	InterfaceTUI = "tui"
)

// Keys shared by viper, cobra flags and the TOML file.
const (
	KeyCatalogFile = "catalog_file"
	KeyInterface   = "interface"
	KeyDefaultSort = "default_sort"
	KeyWatch       = "watch"
	KeySearchURL   = "links.search_url"
	KeyProducerURL = "links.producer_url"
	KeyLogLevel    = "log.level"
	KeyLogJSON     = "log.json"
	KeyLogFile     = "log.file"
)

type Config struct {
	CatalogFile string `toml:"catalog_file"`
	Interface   string `toml:"interface"`
	DefaultSort string `toml:"default_sort"`
	Watch       bool   `toml:"watch"`

	Links  Links  `toml:"links"`
	Window Window `toml:"window"`
	Log    Log    `toml:"log"`
}

type Links struct {
	SearchURL   string `toml:"search_url"`
	ProducerURL string `toml:"producer_url"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
	// File receives the log instead of stderr. The terminal shell discards
	// logs when it is empty.
	File string `toml:"file"`
}

func Default() Config {
	return Config{
		CatalogFile: DefaultCatalog,
		Interface:   InterfaceGUI,
		Links: Links{
			SearchURL:   controllers.DefaultSearchURL,
			ProducerURL: controllers.DefaultProducerURL,
		},
		Window: Window{
			Title:  "Car Catalog",
			Width:  750,
			Height: 400,
		},
		Log: Log{Level: "info"},
	}
}

// Load decodes the TOML file at path over the defaults. When required is false
// a missing file is not an error.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Merge applies every key explicitly set in v (flags or environment) on top of c.
func (c *Config) Merge(v *viper.Viper) {
	if v.IsSet(KeyCatalogFile) {
		c.CatalogFile = v.GetString(KeyCatalogFile)
	}
	if v.IsSet(KeyInterface) {
		c.Interface = v.GetString(KeyInterface)
	}
	if v.IsSet(KeyDefaultSort) {
		c.DefaultSort = v.GetString(KeyDefaultSort)
	}
	if v.IsSet(KeyWatch) {
		c.Watch = v.GetBool(KeyWatch)
	}
	if v.IsSet(KeySearchURL) {
		c.Links.SearchURL = v.GetString(KeySearchURL)
	}
	if v.IsSet(KeyProducerURL) {
		c.Links.ProducerURL = v.GetString(KeyProducerURL)
	}
	if v.IsSet(KeyLogLevel) {
		c.Log.Level = v.GetString(KeyLogLevel)
	}
	if v.IsSet(KeyLogJSON) {
		c.Log.JSON = v.GetBool(KeyLogJSON)
	}
	if v.IsSet(KeyLogFile) {
		c.Log.File = v.GetString(KeyLogFile)
	}
}

// NewViper returns a viper instance reading CARCATALOG_* environment variables
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.CatalogFile) == "" {
		errs = append(errs, errors.New("catalog_file is required"))
	}
	if c.Interface != InterfaceGUI && c.Interface != InterfaceTUI {
		errs = append(errs, fmt.Errorf("interface must be %q or %q, got %q", InterfaceGUI, InterfaceTUI, c.Interface))
	}
	if _, err := catalog.ParseSortOrder(c.DefaultSort); err != nil {
		errs = append(errs, fmt.Errorf("default_sort: %w", err))
	}
	if err := validateURL(c.Links.SearchURL); err != nil {
		errs = append(errs, fmt.Errorf("links.search_url: %w", err))
	}
	if err := validateURL(c.Links.ProducerURL); err != nil {
		errs = append(errs, fmt.Errorf("links.producer_url: %w", err))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// SortOrder is the parsed default_sort. Call Validate first.
func (c Config) SortOrder() catalog.SortOrder {
	order, _ := catalog.ParseSortOrder(c.DefaultSort)
	return order
}

func (c Config) ControllerLinks() controllers.Links {
	return controllers.Links{SearchURL: c.Links.SearchURL, ProducerURL: c.Links.ProducerURL}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
