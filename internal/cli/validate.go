package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mind-engage/selfcheck/internal/grading"
	"github.com/mind-engage/selfcheck/internal/quiz"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a quiz definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qz, err := quiz.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d questions, pass mark %s)\n", qz.ID, len(qz.Questions), grading.FormatPassMark(qz.PassMark))
			return nil
		},
	}
}
