package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/flashpack/internal/config"
	"github.com/arcanaland/flashpack/internal/logging"
	"github.com/arcanaland/flashpack/internal/manifest"
	"github.com/arcanaland/flashpack/internal/packet"
)

var (
	configPath string
	inDir      string
	outDir     string
	verbose    bool
	noColor    bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "flashpack",
	Short: "Encode directories of flashcards into binary packets",
	Long: `Flashpack turns a directory tree of plain-text flashcards into a compact binary packet.
Each card file holds a question on its first line and one tip per following line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.ConfigureRuntime()
		if verbose {
			logging.SetLevel(zerolog.DebugLevel)
		}
		if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
		}
		config.ConfigPathOverride = configPath
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/flashpack/config.toml)")
	RootCmd.PersistentFlags().StringVar(&inDir, "in-dir", "", "Directory holding unencoded packet directories (overrides in_dir)")
	RootCmd.PersistentFlags().StringVar(&outDir, "out-dir", "", "Directory encoded packets are written to (overrides out_dir)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig loads the config file and applies command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if inDir != "" {
		cfg.InDir = inDir
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	return cfg, nil
}

// packetOptions returns the build options for a packet directory, with the
// overrides of its packet.toml applied
func packetOptions(cfg *config.Config, sourcePath string) (packet.Options, *manifest.Manifest, error) {
	m, err := manifest.LoadOptional(sourcePath)
	if err != nil {
		return packet.Options{}, nil, err
	}
	return m.Apply(cfg.Options(logging.Logger())), m, nil
}
