// Package cli provides the Cobra command tree and output wiring for dangler.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dangledns/dangler/internal/config"
	"github.com/dangledns/dangler/internal/input"
	"github.com/dangledns/dangler/internal/output"
	"github.com/dangledns/dangler/internal/scan"
)

// Execute builds the root command and runs it with the given arguments.
// Configuration failures surface as the returned error; per-domain lookup
// failures never do, they end up in the report as verdicts.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// newRootCmd builds the top-level Cobra command. Callers must set
// stdin/stdout/stderr via cmd.SetIn / cmd.SetOut / cmd.SetErr before Execute.
func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "dangler [domains...]",
		Short: "Detect domains vulnerable to subdomain takeover",
		Long: `Dangler resolves each domain and classifies the outcome:

  Safe             no takeover signal
  MaybeVulnerable  the zone points at infrastructure that no longer answers for it
  LookupError      the lookup misbehaved at the protocol level

Domains are taken from the arguments, from --input-file, or from stdin.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, configFile, args)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "",
		"config file (default: $HOME/.config/dangler/config.yaml)")
	config.RegisterFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("color", "no-color")
	cmd.MarkFlagsMutuallyExclusive("nameserver", "doh")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runScan(cmd *cobra.Command, configFile string, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags(), os.UserConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.InputFile != "" && len(args) > 0 {
		return fmt.Errorf("--input-file and positional domains are mutually exclusive")
	}

	// The combined --json switch wins over --output and --color.
	if cfg.JSON {
		cfg.JSONInput = true
		cfg.Output = string(output.FormatJSON)
	}

	format := output.Format(cfg.Output)
	if !format.Valid() {
		return fmt.Errorf("invalid output format %q: must be \"text\", \"plain\", \"json\", or \"table\"", cfg.Output)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	switch {
	case cfg.NoColor:
		color.NoColor = true
	case cfg.Color:
		color.NoColor = false
	}

	domains, err := gatherDomains(cmd, cfg, args)
	if err != nil {
		return err
	}

	mode := scan.Sequential
	if cfg.Async {
		mode = scan.Concurrent
	}
	opts := scan.Options{
		Mode:       mode,
		NameServer: cfg.NameServer,
		DoH:        cfg.DoH,
		DoHURL:     cfg.DoHURL,
	}

	report, err := scan.Run(cmd.Context(), domains, opts, logger)
	if err != nil {
		return err
	}

	if err := output.Write(cmd.OutOrStdout(), format, report); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// gatherDomains returns positional args, the contents of --input-file, or
// non-empty lines from stdin. Returns an error if stdin is an interactive
// terminal with no other input source.
func gatherDomains(cmd *cobra.Command, cfg *config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		return readDomains(f, cfg.JSONInput)
	}
	r := cmd.InOrStdin()
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // uintptr→int is safe for file descriptors; they fit in int on all supported platforms
		return nil, fmt.Errorf("no input: pass domains, --input-file, or pipe stdin")
	}
	return readDomains(r, cfg.JSONInput)
}

func readDomains(r io.Reader, jsonInput bool) ([]string, error) {
	if jsonInput {
		return input.ReadJSON(r)
	}
	return input.Read(r)
}
