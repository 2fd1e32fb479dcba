package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kamik423/quadrant/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage quadrant configuration",
	Long: `Manage quadrant configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (QUADRANT_*)
3. Config file (~/.quadrant/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// Never echo secrets back to the terminal.
		redacted := *cfg
		redacted.Credentials.ClientSecret = "<redacted>"
		redacted.Credentials.Password = "<redacted>"
		redacted.LLM.APIKey = ""

		fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", viper.ConfigFileUsed())

		yamlData, err := yaml.Marshal(&redacted)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Println(string(yamlData))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a configuration file at ~/.quadrant/config.yaml with all options documented. Fill in the credentials and communities before running a survey.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := configDir()
		if err != nil {
			return err
		}
		configPath := filepath.Join(dir, "config.yaml")

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'quadrant config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}

		cfg := model.DefaultConfig()
		cfg.Credentials = model.Credentials{
			ClientID:     "your-app-client-id",
			ClientSecret: "your-app-client-secret",
			Username:     "your-username",
			Password:     "your-password",
			UserAgent:    "quadrant/0.1 by your-username",
		}
		cfg.Communities = []string{"PoliticalCompass", "PoliticalCompassMemes"}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}

		header := "# Quadrant configuration\n" +
			"#\n" +
			"# Configuration hierarchy (highest to lowest priority):\n" +
			"#   1. CLI flags\n" +
			"#   2. Environment variables (QUADRANT_*)\n" +
			"#   3. This config file\n" +
			"#   4. Built-in defaults\n" +
			"#\n" +
			"# All five credential fields are required. Create a script app at\n" +
			"# your account's app preferences to obtain client_id and client_secret.\n\n"

		if err := os.WriteFile(configPath, append([]byte(header), yamlData...), 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}

		fmt.Printf("✓ Created configuration: %s\n", configPath)
		fmt.Printf("\nEdit it with your credentials and communities, then run:\n")
		fmt.Printf("  quadrant\n\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
