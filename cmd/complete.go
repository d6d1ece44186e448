package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [questionID=answer ...]",
	Short: "Submit answers for an open session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			return fmt.Errorf("--session is required")
		}
		timeSpent, _ := cmd.Flags().GetInt("time")

		answers := make(map[string]string, len(args))
		for _, arg := range args {
			id, answer, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("malformed answer %q, want questionID=answer", arg)
			}
			answers[id] = answer
		}

		res, err := svc.Complete(cmd.Context(), sessionID, learnerID(cmd), answers, timeSpent)
		if err != nil {
			return fmt.Errorf("complete session: %w", err)
		}

		fmt.Printf("Score: %d%% (%d/%d correct)\n\n", res.Score, res.QuestionsCorrect, res.QuestionsTotal)
		for _, d := range res.Deltas {
			fmt.Printf("  %-20s mastery %3d -> %3d (%d/%d this session)\n", d.Concept, d.Before, d.After, d.Correct, d.Total)
		}
		if len(res.Unlocked) > 0 {
			fmt.Println("\nUnlocked:")
			for _, u := range res.Unlocked {
				fmt.Printf("  %s: %s\n", u.Name, u.Description)
			}
		}
		if len(res.NextSteps) > 0 {
			fmt.Println("\nNext steps:")
			for _, r := range res.NextSteps {
				name := r.Concept
				if name == "" {
					name = "(all concepts)"
				}
				fmt.Printf("  [%s] %s: %s\n", r.Priority, name, r.Reason)
			}
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().String("session", "", "Session id to complete")
	completeCmd.Flags().Int("time", 0, "Time spent in seconds")
}
