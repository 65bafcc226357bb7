package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/config"
	"github.com/abhisek/triage/internal/ranking"
)

func newRankCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank conditions by observed symptoms",
		Example: `  triage rank -s fever -s cough
  triage rank --symptom "runny nose" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			symptoms, _ := cmd.Flags().GetStringArray("symptom")
			asJSON, _ := cmd.Flags().GetBool("json")

			cat, err := catalog.Resolve(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("resolve catalog: %w", err)
			}

			obs := ranking.NewObservations()
			known := ranking.NewObservations(cat.Features()...)
			for _, s := range symptoms {
				s = strings.TrimSpace(s)
				if s == "" {
					continue
				}
				if !known.Has(s) {
					slog.Warn("symptom not in catalog, it will not affect the ranking", "symptom", s)
				}
				obs.Add(s)
			}

			results, err := ranking.Rank(cat, obs)
			if err != nil {
				return fmt.Errorf("rank: %w", err)
			}
			slog.Debug("ranked catalog", "observations", obs.Len(), "candidates", len(results))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			fmt.Fprintf(out, "%-24s  %9s  %7s\n", "Condition", "Score", "Share")
			fmt.Fprintln(out, strings.Repeat("─", 44))
			for _, r := range results {
				fmt.Fprintf(out, "%-24s  %9.3f  %6.1f%%\n", r.Name, r.Score, r.Share*100)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, disclaimer)
			return nil
		},
	}

	cmd.Flags().StringArrayP("symptom", "s", nil, "Observed symptom (repeatable)")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}

const disclaimer = "Demonstration only. Not medical advice."
