package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/checklist"
)

func newChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "checklist <acute|chronic>",
		Short:     "Evaluate an insomnia checklist pathway non-interactively",
		ValidArgs: []string{checklist.PathwayAcute, checklist.PathwayChronic},
		Args:      cobra.ExactArgs(1),
		Example: `  triage checklist acute --questions
  triage checklist chronic -o duration-3m-or-more,frequency-3-nights,daytime-impairment -o isi-available --isi 15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := checklist.Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if list, _ := cmd.Flags().GetBool("questions"); list {
				printQuestions(out, p)
				return nil
			}

			observed, _ := cmd.Flags().GetStringSlice("observe")
			asJSON, _ := cmd.Flags().GetBool("json")

			answers := checklist.NewAnswers()
			known := knownIDs(p)
			for _, id := range observed {
				id = strings.TrimSpace(id)
				if id == "" {
					continue
				}
				if !known[id] {
					slog.Warn("unknown observation ignored", "id", id, "pathway", p.ID)
				}
				answers.Observed.Add(id)
			}

			if cmd.Flags().Changed("isi") {
				if _, ok := p.Question("isi"); !ok {
					return fmt.Errorf("%w: pathway %s does not record an ISI score", checklist.ErrInvalidAnswer, p.ID)
				}
				isi, _ := cmd.Flags().GetInt("isi")
				answers.Values["isi"] = isi
				if !answers.Observed.Has("isi-available") {
					slog.Warn("ISI score ignored because isi-available is not observed", "isi", isi)
				}
			}

			outcome, err := checklist.Evaluate(p, answers)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", p.ID, err)
			}
			summary := checklist.Summarize(p, answers, outcome, time.Now())
			slog.Debug("evaluated pathway", "pathway", p.ID, "id", summary.ID,
				"criteria_met", outcome.CriteriaMet, "recommendations", len(outcome.Recommendations))

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			printSummary(out, p, outcome, summary)
			return nil
		},
	}

	cmd.Flags().StringSliceP("observe", "o", nil, "IDs of yes answers and selected options (repeatable, comma-separated)")
	cmd.Flags().Int("isi", 0, "Insomnia Severity Index score (0-28, chronic pathway)")
	cmd.Flags().Bool("questions", false, "List the questions and answer IDs of the pathway")
	cmd.Flags().Bool("json", false, "Print the evaluation summary as JSON")
	return cmd
}

// knownIDs returns every ID that may appear in an observation set.
func knownIDs(p *checklist.Pathway) map[string]bool {
	ids := make(map[string]bool)
	for _, q := range p.Questions() {
		switch q.Kind {
		case checklist.KindYesNo:
			ids[q.ID] = true
		case checklist.KindMultiSelect:
			for _, o := range q.Options {
				ids[o.ID] = true
			}
		}
	}
	return ids
}

func printQuestions(w io.Writer, p *checklist.Pathway) {
	fmt.Fprintln(w, p.Title)
	for _, n := range p.Nodes {
		fmt.Fprintf(w, "\n%s\n", n.Title)
		for _, q := range n.Questions {
			switch q.Kind {
			case checklist.KindYesNo:
				fmt.Fprintf(w, "  %-28s  %s (yes/no)\n", q.ID, q.Label)
			case checklist.KindNumber:
				dep := ""
				if q.DependsOn != "" {
					dep = ", only if " + q.DependsOn
				}
				fmt.Fprintf(w, "  %-28s  %s (--%s %d-%d%s)\n", q.ID, q.Label, q.ID, q.Min, q.Max, dep)
			case checklist.KindMultiSelect:
				fmt.Fprintf(w, "  %s\n", q.Label)
				for _, o := range q.Options {
					fmt.Fprintf(w, "    %-26s  %s\n", o.ID, o.Label)
				}
			}
		}
	}
}

func printSummary(w io.Writer, p *checklist.Pathway, out *checklist.Outcome, s *checklist.Summary) {
	fmt.Fprintln(w, p.Title)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "Status: %s\n", out.Status)

	if len(out.Alerts) > 0 {
		fmt.Fprintln(w, "\nAlerts:")
		for _, a := range out.Alerts {
			fmt.Fprintf(w, "  ! %s\n", a)
		}
	}

	fmt.Fprintln(w, "\nRecommendations:")
	for i, r := range out.Recommendations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, r)
	}

	fmt.Fprintln(w, "\nSummary:")
	keyWidth := 0
	for _, f := range s.Fields {
		if n := len([]rune(f.Key)); n > keyWidth {
			keyWidth = n
		}
	}
	for _, f := range s.Fields {
		pad := strings.Repeat(" ", keyWidth-len([]rune(f.Key)))
		fmt.Fprintf(w, "  %s%s  %s\n", f.Key, pad, f.Text())
	}

	fmt.Fprintf(w, "\nCreated %s · ID %s\n", s.Timestamp(), s.ID)
	fmt.Fprintln(w, disclaimer)
}
