package cli

import (
	"github.com/spf13/cobra"

	"github.com/mind-engage/selfcheck/internal/render"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the questions and options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			qz, err := resolveQuiz(cmd)
			if err != nil {
				return err
			}
			return render.Questions(cmd.OutOrStdout(), qz.Public())
		},
	}
}
