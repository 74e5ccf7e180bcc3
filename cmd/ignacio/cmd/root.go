package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/client"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/config"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/session"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfgPath   string
	server    string
	apiKey    string
	verbose   bool
	loadedCfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ignacio",
	Short: "Chat with the Ignacio assistant about your projects",
	Long: `ignacio is the command line client for the Ignacio assistant.
It manages projects, conversations, prompt templates and attachments,
and opens a chat session that renders messages optimistically while
the backend confirms them.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")
		path := config.ResolveConfigPath(cfgPath, cmd.Flags().Changed("config"))
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if server != "" {
			cfg.Backend.BaseURL = server
		}
		if apiKey != "" {
			cfg.Backend.APIKey = apiKey
		}
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger.Init(level)
		loadedCfg = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&server, "server", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newAPIClient builds the backend client from the effective config.
func newAPIClient() (*client.Client, error) {
	return client.FromConfig(loadedCfg)
}

// newWorkspace builds the session workspace (client, caches, janitor).
func newWorkspace() (*session.Workspace, error) {
	api, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	return session.NewWorkspace(api, loadedCfg.Cache)
}
