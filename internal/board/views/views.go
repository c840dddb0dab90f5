// Package views renders the dashboard HTML from a board snapshot.
package views

import "embed"

//go:embed templates
var viewsFS embed.FS
