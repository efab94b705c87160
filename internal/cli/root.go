package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/selfcheck/internal/quiz"
)

// NewRootCmd builds the selfcheck command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "selfcheck",
		Short:         "Grade a short self-assessment quiz",
		Long:          "selfcheck grades the HTTP evolution self-assessment (or any quiz definition file) from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("quiz", "", "Path to a YAML quiz definition (overrides QUIZ_FILE env var)")

	root.AddCommand(newGradeCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newValidateCmd())
	return root
}

// Run executes the CLI and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// resolveQuiz returns the quiz from --quiz (highest priority), then the
// QUIZ_FILE env var, then the built-in quiz.
func resolveQuiz(cmd *cobra.Command) (quiz.Quiz, error) {
	if p, _ := cmd.Flags().GetString("quiz"); p != "" {
		return quiz.Load(p)
	}
	if p := os.Getenv("QUIZ_FILE"); p != "" {
		return quiz.Load(p)
	}
	return quiz.Builtin(), nil
}
