package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/conduit-lang/lspcontract/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var noColor bool

// reportedError marks an error whose explanation was already written to the
// user, so Execute only needs to fail
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func reported(format string, args ...interface{}) error {
	return &reportedError{err: fmt.Errorf(format, args...)}
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lspcontract",
		Short: "Language Server Protocol method contracts",
		Long: color.CyanString(`lspcontract - LSP `+schema.Version+` method contracts

lspcontract knows the declared parameter, result and registration option
types of every Language Server Protocol method, and checks JSON payloads
against them.

Features:
  • Look up any method or structure
  • Check a payload from a file or stdin
  • Run a probe server that guards live editor traffic`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewMethodsCommand())
	rootCmd.AddCommand(NewDescribeCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewVerifyCommand())
	rootCmd.AddCommand(NewProbeCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the lspcontract version, Git commit, build date, Go version and LSP version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)
			if noColor {
				titleColor.DisableColor()
				valueColor.DisableColor()
			}

			out := cmd.OutOrStdout()
			for _, line := range [][2]string{
				{"lspcontract version: ", Version},
				{"Git commit: ", GitCommit},
				{"Build date: ", BuildDate},
				{"Go version: ", goVer},
				{"LSP version: ", schema.Version},
			} {
				titleColor.Fprint(out, line[0])
				valueColor.Fprintln(out, line[1])
			}
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		var rerr *reportedError
		if !errors.As(err, &rerr) {
			errorColor := color.New(color.FgRed, color.Bold)
			errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
