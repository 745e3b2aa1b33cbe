// Package cli implements the command-line interface of autoloanc.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	goversion "github.com/hashicorp/go-version"
	"github.com/replit/autoloanc/internal/config"
	"github.com/replit/autoloanc/internal/util"
	"github.com/spf13/cobra"
)

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling
// 'autoloanc --version'. Tags that parse as versions are normalized,
// so "v1.2.0" prints as "1.2.0".
func getVersion() string {
	if v, err := goversion.NewVersion(version); err == nil {
		return "autoloanc " + v.String()
	}
	return "autoloanc " + version
}

const longHelp = `autoloanc - A simple and fast auto loan calculator.

Supply the loan balance, annual percentage rate, and loan term as
command line arguments. The rate is a decimal fraction (0.029 for
2.9%) and the term is a whole number of months. The payment for the
full term is shown first, followed by terms one step (12 months by
default) shorter, down to the shortest positive term.

Tax, additional fees, trade-in and down payment are not taken into
account; incorporate them into the balance before running.

Example usage: autoloanc 25000.00 0.029 48`

const usageHint = "Use -h or --help for additional information on how to use this program."

// newRootCmd builds the command tree for one invocation, writing to
// the given streams.
func newRootCmd(rawArgs []string, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "autoloanc BALANCE APR TERM",
		Short:         "Compare monthly loan payments across terms",
		Long:          longHelp,
		Version:       getVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			// No arguments at all is a request for help.
			if len(args) == 0 || len(args) == len(parameterNames) {
				return nil
			}
			return &UsageError{Reason: fmt.Sprintf(
				"expected %d arguments, got %d", len(parameterNames), len(args),
			)}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			log := util.NewLogger(cfg.Verbosity, stderr)
			for i, arg := range rawArgs {
				log.Debug("ARGV", "index", i, "value", arg)
			}

			if err := cfg.Validate(); err != nil {
				return &UsageError{Reason: err.Error()}
			}

			params, err := parseParameters(args)
			if err != nil {
				return err
			}
			log.Info("loan parameters",
				"balance", params.Balance,
				"apr", params.APR,
				"term", params.Term,
			)

			return runSchedule(cfg, params, cmd.OutOrStdout(), log)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Reason: err.Error()}
	})

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(
		&cfg.Format, "format", "f", cfg.Format, `output format ("table", "json" or "yaml")`,
	)
	flags.IntVar(
		&cfg.Step, "step", cfg.Step, "months between compared terms",
	)
	flags.BoolVarP(
		&cfg.Summary, "summary", "s", false, "print the loan amount and rate above the table (table format only)",
	)
	flags.BoolVar(
		&cfg.Pager, "pager", false, "page wide tables through less when writing to a terminal",
	)
	flags.CountVar(
		&cfg.Verbosity, "verbose", "log progress to stderr (repeat for more detail)",
	)
	flags.BoolP(
		"help", "h", false, "display command-line usage",
	)
	flags.BoolP(
		"version", "v", false, "display command version",
	)

	return rootCmd
}

// reportError prints err to stderr and returns the matching exit code.
func reportError(stderr io.Writer, err error) int {
	var usageErr *UsageError
	var parseErr *ParseError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usageErr), errors.As(err, &parseErr):
		fmt.Fprintf(stderr, "Error: %s\n", err)
		fmt.Fprintln(stderr, "Please check your input and try again.")
		fmt.Fprintln(stderr, usageHint)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitError
	}
}

// Run executes autoloanc with the given arguments (excluding the
// program name) and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	// Spellings cobra doesn't know about.
	if len(args) >= 1 {
		switch args[0] {
		case "-help", "-?":
			args = append([]string{"--help"}, args[1:]...)
		case "-version", "-V":
			args = append([]string{"--version"}, args[1:]...)
		}
	}

	rootCmd := newRootCmd(args, stdout, stderr)
	rootCmd.SetArgs(args)
	return reportError(stderr, rootCmd.Execute())
}

// DoCLI reads the command-line arguments, runs the appropriate code,
// and exits the process with the resulting status.
func DoCLI() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
