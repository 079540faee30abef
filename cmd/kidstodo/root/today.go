package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/kids-todo/internal/day"
	"github.com/nhle/kids-todo/internal/skill"
	"github.com/nhle/kids-todo/internal/week"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, gateway, cleanup, err := openGateway()
			if err != nil {
				return err
			}
			defer cleanup()

			data := gateway.Load(ctx)
			days := day.New()
			ledger := skill.NewLedger()

			ledger.OnDailyOpen(ctx, data, gateway)
			tasks := days.Today(data)
			gateway.Save(ctx, data)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s のやること\n\n", days.TodayKey())

			for _, t := range tasks {
				check := "[ ]"
				if t.Completed {
					check = "[x]"
				}
				line := t.Text
				if t.Emoji != "" {
					line = t.Emoji + " " + line
				}
				if t.IsChallenge {
					line += " 🌟"
				}
				fmt.Fprintf(out, "  %s %s\n", check, line)
			}

			fmt.Fprint(out, "\nこんしゅう: ")
			labels := []string{"日", "月", "火", "水", "木", "金", "土"}
			for i, done := range week.Progress(data, ledger.Now()) {
				mark := "○"
				if done {
					mark = "●"
				}
				fmt.Fprintf(out, "%s%s ", labels[i], mark)
			}
			fmt.Fprintln(out)

			return nil
		},
	}
}
