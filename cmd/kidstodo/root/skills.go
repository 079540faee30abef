package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/skill"
)

func newSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Show skill progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, gateway, cleanup, err := openGateway()
			if err != nil {
				return err
			}
			defer cleanup()

			data := gateway.Load(ctx)

			out := cmd.OutOrStdout()
			for _, id := range model.SkillTypes {
				s := data.Skills[id]
				progress := fmt.Sprintf("%d/%d", s.Points, s.MaxPoints)
				if s.Level >= model.SkillMaxLevel {
					progress = "MAX"
				}
				fmt.Fprintf(out, "%s %s\tLv.%d\t%s\n", s.Emoji, s.Name, s.Level, progress)
			}

			return nil
		},
	}

	cmd.AddCommand(newSkillsResetCmd())
	return cmd
}

func newSkillsResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset every skill to level 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("resetting discards all skill progress; re-run with --yes to confirm")
			}

			ctx := context.Background()
			_, gateway, cleanup, err := openGateway()
			if err != nil {
				return err
			}
			defer cleanup()

			data := gateway.Load(ctx)
			skill.NewLedger().Reset(data)
			gateway.Save(ctx, data)

			fmt.Fprintln(cmd.OutOrStdout(), "skills reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
