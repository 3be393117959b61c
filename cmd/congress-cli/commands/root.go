package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"congressgov/lib/configutil"
	"congressgov/lib/congress"
	"congressgov/lib/restyutil"
	"congressgov/lib/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
}

var (
	apiKey    *string
	baseUrl   *string
	verbose   *bool
	debugHttp *string
)

var rootCmd = &cobra.Command{
	Use:   "congress-cli",
	Short: "congress-cli queries the congress.gov v3 API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
		tel, err := telemetry.SetupFromEnv(cmd.Context(), "congress-cli")
		if err != nil {
			fatal("failed to setup telemetry", err)
		}
		cobra.OnFinalize(func() {
			if err := tel.Shutdown(context.Background()); err != nil {
				slog.Warn("telemetry shutdown", "err", err)
			}
		})
	},
}

func init() {
	apiKey = rootCmd.PersistentFlags().String("api-key", "", "The congress.gov API key, overrides the config file.")
	baseUrl = rootCmd.PersistentFlags().String("base-url", "", "The API base url, overrides the config file.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	debugHttp = rootCmd.PersistentFlags().String("debug-http", "", "Dump raw HTTP exchanges to the given directory, requires --verbose.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err)
	os.Exit(1)
}

func newClient() *congress.Client {
	cfg, err := configutil.ReadConfig[Config]("congress.json5")
	if err != nil && !os.IsNotExist(err) {
		fatal("failed to read config", err)
	}
	if *apiKey != "" {
		cfg.ApiKey = *apiKey
	}
	if *baseUrl != "" {
		cfg.BaseUrl = *baseUrl
	}
	if cfg.ApiKey == "" {
		fatal("no API key", fmt.Errorf("set api_key in congress.json5 or pass --api-key"))
	}

	client := congress.NewClient(congress.ClientOptions{
		ApiKey:  cfg.ApiKey,
		BaseUrl: cfg.BaseUrl,
	})
	if *debugHttp != "" {
		output, err := restyutil.NewFilesystemOutput(*debugHttp)
		if err != nil {
			fatal("failed to create debug output", err)
		}
		client.SetDebugOutput(output)
	}
	return client
}
