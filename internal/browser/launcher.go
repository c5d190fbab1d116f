// Package browser opens links in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/browser"

	"car-catalog/internal/logger"
)

var ErrInvalidURL = errors.New("invalid url")

// Launcher opens a URL outside the application
type Launcher interface {
	Open(rawURL string) error
}

// URLOpener is satisfied by fyne.App
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// AppLauncher delegates to the GUI toolkit
type AppLauncher struct {
	opener URLOpener
	logger logger.Logger
}

func NewAppLauncher(opener URLOpener, log logger.Logger) *AppLauncher {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &AppLauncher{opener: opener, logger: log}
}

func (l *AppLauncher) Open(rawURL string) error {
	u, err := Parse(rawURL)
	if err != nil {
		return err
	}

	l.logger.Info("BrowserLauncher", "opening url", map[string]interface{}{
		"url": u.String(),
	})
	if err := l.opener.OpenURL(u); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}

// SystemLauncher shells out to the platform opener (xdg-open, open, start).
type SystemLauncher struct {
	logger  logger.Logger
	openURL func(string) error
}

// NewSystemLauncher silences the child process output so it cannot draw over
// a terminal UI.
func NewSystemLauncher(log logger.Logger) *SystemLauncher {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &SystemLauncher{logger: log, openURL: browser.OpenURL}
}

func (l *SystemLauncher) Open(rawURL string) error {
	u, err := Parse(rawURL)
	if err != nil {
		return err
	}

	l.logger.Info("BrowserLauncher", "opening url", map[string]interface{}{
		"url": u.String(),
	})
	if err := l.openURL(u.String()); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}

// Parse accepts absolute http and https URLs only
func Parse(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return u, nil
}
