package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathreplay/config"
	"github.com/katalvlaran/pathreplay/scene"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg   config.Config
	log   zerolog.Logger
	plain bool // stdout gets no colors
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "pathreplay",
		Short: "Compute shortest paths on a weighted graph and replay the search",
		Long: `pathreplay runs Dijkstra's algorithm on a scene file or a generated
graph and replays the order in which nodes were settled, one tick at a time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.resolve(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file (defaults apply when omitted)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "override log_level from the config")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newRunCmd(g), newWatchCmd(g), newValidateCmd(g), newConfigCmd(g))

	return root
}

// resolve loads the config file, applies overrides and builds the logger.
func (g *globalFlags) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	g.cfg = cfg
	g.plain = g.noColor || !isTerminal(cmd.OutOrStdout())
	if g.plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	g.log = newLogger(cmd.ErrOrStderr(), cfg.Level(), g.noColor || !isTerminal(cmd.ErrOrStderr()))

	return nil
}

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newValidateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scene.yaml]",
		Short: "Check a scene file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			g.log.Debug().Str("scene", args[0]).Msg("scene valid")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d nodes, %d edges)\n",
				args[0], s.Shape.Count()+len(s.Nodes), len(s.Edges))

			return nil
		},
	}
}

func newConfigCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(g.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}
