package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/ayutaz/honyaku/internal/cli"
	"codeberg.org/ayutaz/honyaku/internal/logging"
	"codeberg.org/ayutaz/honyaku/internal/models"
	"codeberg.org/ayutaz/honyaku/internal/provider"
	"codeberg.org/ayutaz/honyaku/internal/textsource"
	"codeberg.org/ayutaz/honyaku/internal/translate"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}
	rootCmd.SilenceUsage = true

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(os.Stdout)
		return lister.ListAvailableModels()
	}

	id := provider.ID(flags.Provider)
	apiKey, err := apiKeyFor(id)
	if err != nil {
		return err
	}

	// Resolve where the text comes from: arguments, --file, or stdin
	source, fromFallback := textsource.Resolve(args, flags.File, os.Stdin)
	rawText, err := source.Text()
	if err != nil {
		return err
	}

	cfg := translate.DefaultConfig()
	cfg.OverallTimeout = flags.Timeout
	cfg.PerAttemptTimeout = flags.AttemptTimeout
	cfg.MaxRetryAttempts = flags.MaxAttempts

	translator := translate.New(cfg,
		translate.WithLogger(logging.New(flags.Verbose)),
		translate.WithProviderFactory(provider.NewCachingFactory()),
		translate.WithProgress(func(message string, usedFallbackSource bool) {
			if !flags.Verbose {
				return
			}
			if usedFallbackSource {
				message += " (text from stdin)"
			}
			fmt.Fprintln(os.Stderr, message)
		}),
	)

	result, err := translator.Translate(cmd.Context(), translate.Request{
		RawText:            rawText,
		APIKey:             apiKey,
		Provider:           id,
		Model:              flags.Model,
		FromFallbackSource: fromFallback,
	})
	if err != nil {
		if hint := translate.Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		return err
	}

	fmt.Println(result)
	return nil
}

func apiKeyFor(id provider.ID) (string, error) {
	switch id {
	case provider.Gemini:
		return cli.GetGeminiKey(), nil
	case provider.Groq:
		return cli.GetGroqKey(), nil
	}
	return "", fmt.Errorf("unknown provider %q (supported: gemini, groq)", id)
}
