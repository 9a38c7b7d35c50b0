package main

import (
	"fmt"
	"os"

	figtypes "github.com/kataras/fig-types"
	"github.com/kataras/fig-types/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figtypes.Version

var (
	configPath   string
	allowUnknown bool
	quiet        bool

	cfg config.Config
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	cyan  = color.New(color.FgCyan)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fig-types",
		Short: "Validate, convert and describe design documents",
		Long: "A tool to validate design documents against the canonical schema, convert them between plain\n" +
			"and compressed JSON, fingerprint them, summarize their design tokens and generate the matching\n" +
			"TypeScript declarations.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default \""+config.FileName+"\" if present)")
	rootCmd.PersistentFlags().BoolVar(&allowUnknown, "allow-unknown", false, "Skip unknown fields instead of failing")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print results and errors")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fig-types version %s\n", version)
		},
	}

	rootCmd.AddCommand(
		validateCmd(),
		fingerprintCmd(),
		convertCmd(),
		outlineCmd(),
		reportCmd(),
		assetsCmd(),
		tsgenCmd(),
		versionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file; flags given on the command line
// are applied on top of it by each command.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, used, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if configPath != "" && used == "" {
		return fmt.Errorf("config file %s not found", configPath)
	}
	if !cmd.Flags().Changed("allow-unknown") {
		allowUnknown = c.AllowUnknownFields
	}
	cfg = c

	if used != "" {
		logger().Infof("Using config %s", used)
	}
	return nil
}

// logger returns the progress logger, silenced when --quiet is set.
func logger() figtypes.Logger {
	if quiet {
		return nopLogger{}
	}
	return &cliLogger{}
}

// cliLogger implements figtypes.Logger with colored terminal output on stderr,
// keeping stdout for command results.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
