package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "honyaku [text...]" {
		t.Errorf("Expected Use to be 'honyaku [text...]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Japanese") {
		t.Errorf("Expected Short description to mention Japanese")
	}

	// Test that flags are set up
	flagTests := []string{
		"config",
		"provider",
		"model",
		"file",
		"timeout",
		"attempt-timeout",
		"max-attempts",
		"list-models",
		"verbose",
	}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	providerFlag := cmd.Flags().Lookup("provider")
	if providerFlag == nil {
		t.Fatal("provider flag not found")
	}
	if providerFlag.DefValue != "gemini" {
		t.Errorf("Expected default provider to be gemini, got %s", providerFlag.DefValue)
	}

	timeoutFlag := cmd.Flags().Lookup("timeout")
	if timeoutFlag == nil {
		t.Fatal("timeout flag not found")
	}
	if timeoutFlag.DefValue != (60 * time.Second).String() {
		t.Errorf("Expected default timeout to be 1m0s, got %s", timeoutFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `translate:
  provider: groq
gemini:
  api_key: test-key`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)

			InitConfig(cfgPath)

			// Test environment variable prefix
			os.Setenv("HONYAKU_TEST_VAR", "test-value")
			defer os.Unsetenv("HONYAKU_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestGetGeminiKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			if tt.envKey != "" {
				os.Setenv("GEMINI_API_KEY", tt.envKey)
				defer os.Unsetenv("GEMINI_API_KEY")
			} else {
				os.Unsetenv("GEMINI_API_KEY")
			}

			if tt.configKey != "" {
				viper.Set("gemini.api_key", tt.configKey)
			}

			got := GetGeminiKey()
			if got != tt.expected {
				t.Errorf("GetGeminiKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetGroqKey(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	os.Setenv("GROQ_API_KEY", "gsk_from_env")
	defer os.Unsetenv("GROQ_API_KEY")

	if got := GetGroqKey(); got != "gsk_from_env" {
		t.Errorf("GetGroqKey() = %v, want gsk_from_env", got)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("provider", "groq")
	cmd.Flags().Set("model", "llama-3.1-8b-instant")
	cmd.Flags().Set("max-attempts", "3")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("translate.provider") != "groq" {
		t.Errorf("Expected translate.provider to be groq, got %s", viper.GetString("translate.provider"))
	}

	if viper.GetString("translate.model") != "llama-3.1-8b-instant" {
		t.Errorf("Expected translate.model to be llama-3.1-8b-instant, got %s", viper.GetString("translate.model"))
	}

	if viper.GetInt("translate.max_attempts") != 3 {
		t.Errorf("Expected translate.max_attempts to be 3, got %d", viper.GetInt("translate.max_attempts"))
	}
}
