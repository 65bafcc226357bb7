package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/config"
)

func newCatalogCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the conditions and symptoms of the active catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Resolve(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("resolve catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			source := "built-in"
			if cfg.CatalogPath != "" {
				source = cfg.CatalogPath
			}
			fmt.Fprintf(out, "Catalog: %s\n\n", source)

			fmt.Fprintf(out, "%-24s  %s\n", "Condition", "Weighted symptoms")
			fmt.Fprintln(out, strings.Repeat("─", 70))
			for _, p := range cat {
				features := make([]string, 0, len(p.Weights))
				for f := range p.Weights {
					features = append(features, f)
				}
				sort.Strings(features)
				fmt.Fprintf(out, "%-24s  %s\n", p.Name, strings.Join(features, ", "))
			}

			features := cat.Features()
			fmt.Fprintf(out, "\n%d conditions, %d symptoms:\n", len(cat), len(features))
			for _, f := range features {
				fmt.Fprintf(out, "  %s\n", f)
			}
			return nil
		},
	}
}
