package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/natevvv/graph-pathfinder/pkg/config"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbosity  int
	logFormat  string
	navigator  string
	fmiFile    string
	nodesFile  string
	arcsFile   string

	cfg    config.Config
	logger *slog.Logger
	tracer *trace.Leveled

	rootCmd = &cobra.Command{
		Use:           "pathfinder",
		Short:         "Find shortest paths in weighted graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbosity") {
				cfg.Log.Verbosity = verbosity
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if cmd.Flags().Changed("navigator") {
				cfg.Search.Navigator = navigator
			}
			if cmd.Flags().Changed("fmi") {
				cfg.Graph.Fmi = fmiFile
			}
			if cmd.Flags().Changed("nodes") {
				cfg.Graph.Nodes = nodesFile
			}
			if cmd.Flags().Changed("arcs") {
				cfg.Graph.Arcs = arcsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
			tracer = trace.NewLeveled(logger, cfg.Log.Verbosity)
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file")
	flags.IntVarP(&verbosity, "verbosity", "v", 1, "trace verbosity (0 silences the search traces)")
	flags.StringVar(&logFormat, "log-format", "text", "log format, text or json")
	flags.StringVar(&fmiFile, "fmi", "", "graph in fmi format, used instead of the node and arc lists")
	flags.StringVar(&nodesFile, "nodes", "nodes.txt", "node list file")
	flags.StringVar(&arcsFile, "arcs", "arcs.txt", "arc list file")
	flags.StringVarP(&navigator, "navigator", "n", "astar", fmt.Sprintf("search algorithm, one of %v", config.Navigators))

	rootCmd.AddCommand(searchCmd, traverseCmd, heuristicsCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
