package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/formcheck/internal/analysis"
	"github.com/abhisek/formcheck/internal/config"
	"github.com/abhisek/formcheck/internal/llm"
	"github.com/abhisek/formcheck/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "formcheck",
	Short: "Movement-quality assessment API",
	Long:  "FormCheck — HTTP service that scores human pose sequences for accuracy, coordination and stability via an LLM, with a local fallback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file (overrides the default lookup)")
	rootCmd.Flags().String("port", "", "Port to listen on (overrides PORT env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServer(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		cfg.Port = p
	}

	svc, status := buildService(cmd, cfg)

	fmt.Println(renderBanner())
	fmt.Printf("  listening on http://localhost:%s\n", cfg.Port)
	if svc.Configured() {
		fmt.Printf("  model: %s\n\n", status.Model)
	} else {
		fmt.Printf("  model: none (fallback assessment)\n\n")
	}

	return server.New(cfg, svc, status).Run()
}

// loadConfig reads process configuration, honoring the --env-file flag.
func loadConfig(cmd *cobra.Command) *config.Config {
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(envFile)
}

// buildService constructs the analysis service from the environment. A
// missing or failing provider is not fatal: the service runs on the
// fallback path and says so.
func buildService(cmd *cobra.Command, cfg *config.Config) (*analysis.Service, server.Status) {
	ctx := cmd.Context()

	llmCfg, found := llm.DiscoverConfig()
	status := server.Status{
		Available: found && llm.Supported(llmCfg.Provider),
	}
	if found {
		status.Model = modelFor(llmCfg)
	}

	var provider llm.Provider
	p, err := llm.NewProviderFromEnv(ctx)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		fmt.Fprintln(os.Stderr, "no completion provider configured, running with fallback assessment only")
	case err != nil:
		fmt.Fprintln(os.Stderr, "completion provider init failed:", err)
		fmt.Fprintln(os.Stderr, "running with fallback assessment only")
	default:
		provider = p
	}

	svcCfg := analysis.DefaultConfig()
	svcCfg.MaxTokens = cfg.MaxTokens
	return analysis.NewService(provider, svcCfg), status
}

// modelFor returns the model the selected provider would use.
func modelFor(cfg llm.Config) string {
	switch cfg.Provider {
	case "openai":
		return cfg.OpenAI.Model
	case "anthropic":
		return cfg.Anthropic.Model
	case "gemini":
		return cfg.Gemini.Model
	case "openrouter":
		return cfg.OpenRouter.Model
	case "mock":
		return "mock"
	}
	return ""
}
