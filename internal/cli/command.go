package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/ayutaz/honyaku/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "honyaku [text...]",
		Short: "Translate text to Japanese via LLM providers",
		Long: `honyaku translates arbitrary text to Japanese using LLM providers
(Gemini or Groq), retrying transparently around rate limits and falling
back to alternative models when a quota is exhausted.

Examples:
  honyaku Hello world                 # Translate arguments
  honyaku --file notes.txt            # Translate a file
  cat notes.txt | honyaku             # Translate standard input
  honyaku --provider groq "Hi there"  # Use Groq instead of Gemini`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.honyaku.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", flags.Provider, "LLM provider (gemini or groq)")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", "", "Model name (default: provider's default model)")
	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "Read the text to translate from a file")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Overall time budget for one translation, retries and fallbacks included")
	cmd.Flags().DurationVar(&flags.AttemptTimeout, "attempt-timeout", flags.AttemptTimeout, "Time budget for a single provider call")
	cmd.Flags().IntVar(&flags.MaxAttempts, "max-attempts", flags.MaxAttempts, "Attempts on the primary model before falling back (initial attempt included)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List known models per provider and exit")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log retry and fallback decisions to stderr")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("translate.attempt_timeout", cmd.Flags().Lookup("attempt-timeout"))
	viper.BindPFlag("translate.max_attempts", cmd.Flags().Lookup("max-attempts"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".honyaku" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".honyaku")
	}

	// Environment variables
	viper.SetEnvPrefix("HONYAKU")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.api_key")
}

// GetGroqKey retrieves the Groq API key from environment or config
func GetGroqKey() string {
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("groq.api_key")
}
