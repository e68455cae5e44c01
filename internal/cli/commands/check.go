package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/conduit-lang/lspcontract/internal/cli/config"
	"github.com/conduit-lang/lspcontract/internal/cli/ui"
	"github.com/conduit-lang/lspcontract/internal/methods"
	"github.com/conduit-lang/lspcontract/internal/schema"
	"github.com/conduit-lang/lspcontract/internal/validation"
	"github.com/conduit-lang/lspcontract/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	var part string
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "check <method> [file]",
		Short: "Check a JSON payload against a method's declared type",
		Long: `Check a JSON payload against the declared params, result or registration
options of a method. The payload is read from file, or from stdin when no file
is given. The command fails when the payload does not conform.

With --watch the file is checked again every time it is saved, until the
command is interrupted.`,
		Example: `  lspcontract check textDocument/hover request.json
  echo 'null' | lspcontract check textDocument/hover --part result
  lspcontract check textDocument/hover request.json --watch`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchFile {
				return runCheckWatch(cmd, args, part)
			}
			return runCheck(cmd, args, part)
		},
	}

	cmd.Flags().StringVar(&part, "part", methods.PartParams, "Part to check: "+strings.Join(methods.Parts(), ", "))
	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "Check the file again whenever it changes")

	return cmd
}

// checkTarget is the declared type a payload is checked against
type checkTarget struct {
	method    string
	part      string
	t         schema.Type
	validator *validation.Validator
}

func resolveTarget(cmd *cobra.Command, method, part string) (*checkTarget, error) {
	registry := methods.LSP()

	d, err := registry.Lookup(method)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.MethodNotFoundError(method, ui.FindSimilar(method, registry.Methods(), nil), noColor))
		return nil, &reportedError{err: err}
	}

	t, ok := d.Part(part)
	if !ok {
		if best := ui.FindBestMatch(part, methods.Parts(), nil); best != "" {
			return nil, fmt.Errorf("unknown part %q, did you mean %q?", part, best)
		}
		return nil, fmt.Errorf("unknown part %q: use %s", part, strings.Join(methods.Parts(), ", "))
	}
	if t == nil {
		return nil, fmt.Errorf("%s declares no %s type", method, part)
	}

	return &checkTarget{method: method, part: part, t: t, validator: validation.New(registry.Catalog())}, nil
}

// check validates data and reports the outcome
func (c *checkTarget) check(cmd *cobra.Command, data []byte) error {
	value, err := validation.Decode(data)
	if err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}

	if err := c.validator.Check(value, c.t); err != nil {
		if !validation.IsMismatch(err) {
			return err
		}
		fmt.Fprint(cmd.ErrOrStderr(), ui.ContractViolationError(c.method, c.part, err.Error(), noColor))
		return &reportedError{err: err}
	}

	ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s %s conforms to %s", c.method, c.part, c.t), noColor)
	return nil
}

func runCheck(cmd *cobra.Command, args []string, part string) error {
	target, err := resolveTarget(cmd, args[0], part)
	if err != nil {
		return err
	}

	data, err := readPayload(cmd, args[1:])
	if err != nil {
		return err
	}
	return target.check(cmd, data)
}

func runCheckWatch(cmd *cobra.Command, args []string, part string) error {
	if len(args) < 2 || args[1] == "-" {
		return fmt.Errorf("--watch needs a payload file")
	}
	path := args[1]

	target, err := resolveTarget(cmd, args[0], part)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), noColor))
		return &reportedError{err: err}
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// a failing check is reported and the watch goes on
	checkFile := func() {
		data, err := os.ReadFile(path)
		if err == nil {
			err = target.check(cmd, data)
		}
		var rerr *reportedError
		if err != nil && !errors.As(err, &rerr) {
			ui.WriteError(cmd.ErrOrStderr(), ui.ErrorOptions{Level: ui.ErrorLevelError, Problem: err.Error(), NoColor: noColor})
		}
	}

	watcher, err := watch.NewFileWatcher([]string{path}, watch.Options{Logger: logger}, func([]string) error {
		checkFile()
		return nil
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checkFile()
	if err := watcher.Start(); err != nil {
		return err
	}
	logger.Info("Watching payload", zap.String("file", path), zap.String("method", target.method), zap.String("part", part))

	<-ctx.Done()
	return nil
}

func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return data, nil
}

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify that every declared type resolves",
		Long: `Build the schema catalog and the method table from scratch and check that
every type they mention resolves. All problems are reported at once.`,
		Args: cobra.NoArgs,
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	catalog, err := schema.BuildLSP()
	if err != nil {
		return reportVerifyFailure(cmd, "schema catalog", err)
	}

	registry, err := methods.BuildLSP()
	if err != nil {
		return reportVerifyFailure(cmd, "method table", err)
	}

	ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("%d methods and %d schemas verify against LSP %s", registry.Len(), catalog.Len(), schema.Version), noColor)
	return nil
}

func reportVerifyFailure(cmd *cobra.Command, what string, err error) error {
	ui.WriteError(cmd.ErrOrStderr(), ui.ErrorOptions{
		Level:       ui.ErrorLevelError,
		Context:     "VERIFY FAILED",
		Problem:     fmt.Sprintf("The %s does not verify.", what),
		Consequence: err.Error(),
		NoColor:     noColor,
	})
	return &reportedError{err: err}
}
