package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apratap/adept/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a new practice session",
	Long: `Plan a new practice session and print its questions.

Strategies:
  quick    concepts most due for review
  focused  an explicit concept list (--concepts)
  mastery  challenge concepts already at high mastery
  weak     drill the weakest concepts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		strategy, _ := cmd.Flags().GetString("strategy")
		conceptsFlag, _ := cmd.Flags().GetString("concepts")
		count, _ := cmd.Flags().GetInt("count")

		var concepts []string
		if conceptsFlag != "" {
			for _, c := range strings.Split(conceptsFlag, ",") {
				if c = strings.TrimSpace(c); c != "" {
					concepts = append(concepts, c)
				}
			}
		}

		sess, err := svc.PlanSession(cmd.Context(), learnerID(cmd), session.Strategy(strategy), concepts, count)
		if err != nil {
			return fmt.Errorf("plan session: %w", err)
		}

		fmt.Printf("Session %s (%s, %s difficulty)\n", sess.ID, sess.Kind, sess.TargetDifficulty)
		fmt.Printf("Concepts: %s\n\n", strings.Join(sess.Concepts, ", "))
		for i, q := range sess.Questions {
			fmt.Printf("%d. [%s] %s\n", i+1, q.Difficulty, q.Prompt)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
			fmt.Printf("   (id: %s)\n", q.ID)
		}
		fmt.Printf("\nAnswer with: adept complete --session %s q1=... q2=...\n", sess.ID)
		return nil
	},
}

func init() {
	planCmd.Flags().String("strategy", "quick", "Selection strategy: quick, focused, mastery, weak")
	planCmd.Flags().String("concepts", "", "Comma-separated concept list (focused sessions)")
	planCmd.Flags().Int("count", 5, "Number of questions")
}
