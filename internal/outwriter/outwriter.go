// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteView prints the charts of a rendered selection using the configured output format.
func (ow *OutWriter) WriteView(view schema.View, cfg *contract.Config) error {
	return PrintView(view, cfg)
}

// WriteWeapons prints a weapon listing such as search results.
func (ow *OutWriter) WriteWeapons(weapons []schema.Weapon, cfg *contract.Config) error {
	return PrintWeapons(weapons, cfg)
}

// WriteCategories prints every measurement category with its unit.
func (ow *OutWriter) WriteCategories(cfg *contract.Config) error {
	return PrintCategories(cfg)
}

// WriteLinks prints saved share links.
func (ow *OutWriter) WriteLinks(links []schema.Link, cfg *contract.Config) error {
	return PrintLinks(links, cfg)
}
