package cmd

import (
	"fmt"

	"github.com/abhisek/triage/internal/app"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/config"
)

// runApp resolves the catalog and launches the TUI.
func runApp(cfg config.Config, skipDisclaimer bool) error {
	cat, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("resolve catalog: %w", err)
	}

	return app.Run(app.Options{
		Catalog:        cat,
		SkipDisclaimer: skipDisclaimer,
	})
}
