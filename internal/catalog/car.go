// Package catalog loads car records and orders them for display.
package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// Car is a single catalog entry. Position in the loaded sequence is its only key.
type Car struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}

// Label is the text shown in the list for this car.
func (c Car) Label() string {
	return c.Brand + " " + c.Model
}

// Detail renders the fixed four-line detail layout.
func (c Car) Detail() string {
	return fmt.Sprintf("Brand: %s\nModel: %s\nYear: %d\nDescription: %s",
		c.Brand, c.Model, c.Year, c.Description)
}

// SearchQuery percent-encodes the label for use in a query string.
// Spaces become %20, not '+'.
func (c Car) SearchQuery() string {
	return strings.ReplaceAll(url.QueryEscape(c.Label()), "+", "%20")
}
