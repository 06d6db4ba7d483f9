// Package cli implements the prettydump command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/internal/decode"
	"github.com/bjaus/pretty/internal/logging"
)

// ErrTerminalInput is returned when no files are given and stdin is a
// terminal.
var ErrTerminalInput = errors.New("no input files and stdin is a terminal")

type flags struct {
	verbosity int
	config    string
}

// NewRootCmd builds the prettydump command.
func NewRootCmd() *cobra.Command {
	var f flags
	def := pretty.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "prettydump [flags] [file...]",
		Short: "Pretty-print JSON, YAML and TOML documents",
		Long: `prettydump decodes structured documents and prints them in a stable,
human readable layout: containers are bracketed and sorted, strings are
quoted and every nesting level is indented.

With no files it reads stdin, which defaults to YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.SetupLogger(cmd.ErrOrStderr(), f.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadSettings(f.config, cmd.Flags())
			if err != nil {
				return err
			}
			log.Debug().Interface("settings", s).Msg("settings loaded")
			if len(args) == 0 {
				return runStdin(cmd.InOrStdin(), cmd.OutOrStdout(), s)
			}
			return runFiles(cmd.Context(), cmd.OutOrStdout(), args, s)
		},
	}

	fl := cmd.Flags()
	fl.CountVarP(&f.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	fl.StringVar(&f.config, "config", "", "config file (default is $XDG_CONFIG_HOME/prettydump/config.yaml)")
	fl.String("format", "", "input format: json, yaml or toml (default from the file extension)")
	fl.Int("max-width", 0, "truncate strings wider than this many columns (0 for no limit)")
	fl.Int("jobs", 0, "files rendered in parallel (default the number of CPUs)")
	fl.String("indent", escape(def.Indent), "indentation unit per nesting level")
	fl.String("pre-item-spacing", escape(def.PreItemSpacing), "text after an opening bracket")
	fl.String("post-item-spacing", escape(def.PostItemSpacing), "text before a closing bracket")
	fl.String("pre-separator-spacing", escape(def.PreSeparatorSpacing), "text before each comma")
	fl.String("post-separator-spacing", escape(def.PostSeparatorSpacing), "text after each comma")
	fl.String("intra-group-spacing", escape(def.IntraGroupSpacing), "text inside empty brackets")

	return cmd
}

func runStdin(in io.Reader, out io.Writer, s Settings) error {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return ErrTerminalInput
	}
	format := decode.YAML
	if s.Format != "" {
		var err error
		if format, err = decode.ParseFormat(s.Format); err != nil {
			return err
		}
	}
	docs, err := decode.Decode(in, format)
	if err != nil {
		return fmt.Errorf("stdin: %w", err)
	}
	return pretty.WriteIter(out, slices.Values(docs), rendererOptions(s, "stdin")...)
}

func rendererOptions(s Settings, source string) []pretty.Option {
	return append(s.Options(), pretty.WithLogger(logging.GetLogger("render").With().Str("source", source).Logger()))
}
