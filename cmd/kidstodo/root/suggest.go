package root

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/kids-todo/internal/ai"
	"github.com/nhle/kids-todo/internal/credential"
	"github.com/nhle/kids-todo/internal/day"
	"github.com/nhle/kids-todo/internal/skill"
)

func newSuggestCmd() *cobra.Command {
	var add bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Fetch one challenge-task suggestion",
		Long:  "Asks the suggestion service for one new task for today. With --add the suggestion is appended to today's checklist as a challenge task.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, gateway, cleanup, err := openGateway()
			if err != nil {
				return err
			}
			defer cleanup()

			apiKey := os.Getenv("ANTHROPIC_API_KEY")
			if apiKey == "" {
				apiKey, err = credential.Get("claude-api-key")
				if err != nil || apiKey == "" {
					return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or store claude-api-key in the keyring")
				}
			}

			data := gateway.Load(ctx)
			days := day.New()
			tasks := days.Today(data)

			existing := make([]string, 0, len(tasks))
			for _, t := range tasks {
				existing = append(existing, t.Text)
			}

			now := time.Now()
			suggester := ai.New(apiKey, cfg.AI.Model, cfg.AI.MaxTokens)

			reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			text, err := suggester.Suggest(reqCtx, ai.Request{
				DayOfWeek:     int(now.Weekday()),
				Month:         int(now.Month()),
				Day:           now.Day(),
				ExistingTasks: existing,
			})
			if err != nil {
				return fmt.Errorf("fetching suggestion: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "🌟 %s\n", text)

			if add {
				tasks = append(tasks, days.NewTask(text, "", true))
				days.SaveToday(data, tasks)
				skill.NewLedger().OnNewTaskAdded(data)
				gateway.Save(ctx, data)
				fmt.Fprintln(cmd.OutOrStdout(), "きょうのやることについかしました")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&add, "add", false, "add the suggestion to today's checklist")
	return cmd
}
