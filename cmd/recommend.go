package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show ranked practice recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := svc.Recommendations(cmd.Context(), learnerID(cmd))
		if err != nil {
			return fmt.Errorf("compute recommendations: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("Nothing to recommend yet. Complete a session first.")
			return nil
		}

		for i, r := range recs {
			name := r.Concept
			if name == "" {
				name = "(all concepts)"
			}
			fmt.Printf("%d. [%s] %s\n", i+1, r.Priority, name)
			fmt.Printf("   %s\n", r.Reason)
			fmt.Printf("   %s (try: adept plan --strategy %s)\n", r.Action, r.SessionHint)
		}
		return nil
	},
}
