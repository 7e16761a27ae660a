// Package commands implements the skillindex command line.
package commands

import (
	"context"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	buildinfo "github.com/thoreinstein/skillindex/cmd"
	"github.com/thoreinstein/skillindex/internal/config"
	"github.com/thoreinstein/skillindex/internal/errors"
	"github.com/thoreinstein/skillindex/internal/logging"
)

// jsonOutput holds the value of the --json flag.
var jsonOutput bool

// installDir locates the directory holding the executable. Tests replace it.
var installDir = config.InstallDir

// runConfig is resolved once per invocation before RunE.
var runConfig *config.Config

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"print the catalog as JSON instead of markdown")

	// --json may appear anywhere; anything else is ignored
	rootCmd.FParseErrWhitelist.UnknownFlags = true

	rootCmd.Version = buildinfo.Version
	rootCmd.SetVersionTemplate(versionTemplate())

	// main prints errors and picks the exit code
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "skillindex [--json]",
	Short: "List the skills defined next to this tool",
	Long: `skillindex scans the skills directory one level above its install
location for subdirectories containing a SKILL.md file, and prints a
catalog of their names, paths and descriptions.

Names, descriptions and when_to_use hints come from each document's YAML
frontmatter. Skills without a description are summarized from the first
lines of their body.

Every run also rewrites SKILLS_INDEX.md next to the skills directory.`,
	Example: `  # Print the markdown listing
  skillindex

  # Print the catalog as JSON
  skillindex --json`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// pflag stops at "--"; the flag still counts after it
		if n := cmd.ArgsLenAtDash(); n >= 0 && slices.Contains(args[n:], "--json") {
			jsonOutput = true
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		runConfig = cfg
		setupLogging(cmd, cfg.Logging)
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return Run(cmd.Context(), runConfig, cmd.OutOrStdout())
	},
}

// loadConfig resolves the catalog locations and logging settings.
func loadConfig() (*config.Config, error) {
	dir, err := installDir()
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	cfg := config.New(dir, jsonOutput)

	config.Init()
	l, err := config.LoadLogging()
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	cfg.Logging = l

	return cfg, nil
}

// setupLogging installs the stderr logger on the command context.
func setupLogging(cmd *cobra.Command, l config.Logging) {
	logger := logging.New(logging.Config{
		Level:  logging.LevelFromVerbosity(l.Verbosity),
		Format: logging.Format(l.Format),
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
}

func versionTemplate() string {
	return "skillindex version {{.Version}}\n" +
		"  commit: " + buildinfo.Commit + "\n" +
		"  built:  " + buildinfo.Date + "\n"
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
