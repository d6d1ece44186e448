package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery and achievement progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		learner := learnerID(cmd)

		concepts, err := st.Concepts().ByLearner(ctx, learner)
		if err != nil {
			return fmt.Errorf("load concepts: %w", err)
		}

		if len(concepts) == 0 {
			fmt.Println("No practice history yet. Start with: adept plan --strategy focused --concepts <name>")
		} else {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CONCEPT\tMASTERY\tDIFFICULTY\tATTEMPTS\tNEXT REVIEW")
			for _, c := range concepts {
				due := "-"
				if !c.NextReviewDue.IsZero() {
					due = c.NextReviewDue.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%d/%d\t%s\n",
					c.Concept, c.Mastery, c.Difficulty, c.CorrectAttempts, c.TotalAttempts, due)
			}
			w.Flush()
		}

		sum, err := svc.AchievementProgress(ctx, learner)
		if err != nil {
			return fmt.Errorf("load achievements: %w", err)
		}
		fmt.Printf("\nAchievements: %d/%d earned (%.1f%%)\n", sum.EarnedCount, sum.TotalCount, sum.CompletionPercentage)
		for _, a := range sum.Earned {
			fmt.Printf("  * %s (%s)\n", a.Name, a.EarnedAt.Format("2006-01-02"))
		}
		for _, a := range sum.InProgress {
			fmt.Printf("  . %s (%d/%d)\n", a.Name, a.Progress, a.Target)
		}
		return nil
	},
}
