package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kamik423/quadrant/internal/model"
)

var (
	cfgFile string
	verbose bool

	flagMode    string
	flagLimit   int
	flagOutput  string
	flagWorkers int
	flagWall    int
	noCache     bool
	llmEnabled  bool
	llmModel    string
)

// rootCmd runs the full survey when invoked without arguments.
var rootCmd = &cobra.Command{
	Use:   "quadrant",
	Short: "Quadrant - community compass survey plotter",
	Long: `Quadrant fetches posts and comments from configured communities,
places each item on a two-axis ideological grid, aggregates every
community into a weighted centroid with a dispersion measure, and
renders the result as a scatter-plot image.

Credentials and the community list live in the config file
(default: ~/.quadrant/config.yaml). Run 'quadrant config init' to
create one.`,
	Args:          cobra.NoArgs,
	RunE:          runSurvey,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quadrant v0.1.0")
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.quadrant/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Survey flags
	rootCmd.Flags().StringVar(&flagMode, "mode", model.ModeHot, "listing to survey (hot, top, comments)")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 100, "posts to fetch per community")
	rootCmd.Flags().StringVar(&flagOutput, "out", "quadrant.png", "output image path")
	rootCmd.Flags().IntVar(&flagWorkers, "concurrency", 4, "communities surveyed in parallel")
	rootCmd.Flags().IntVar(&flagWall, "wall-threshold", 100, "word count at which an item counts as a wall of text")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the listing cache (force fresh fetch)")
	rootCmd.Flags().BoolVar(&llmEnabled, "llm", false, "write an LLM commentary next to the image")
	rootCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// configDir returns ~/.quadrant, creating nothing.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".quadrant"), nil
}

// loadConfig reads the config file and environment, layers the changed
// flags on top, and validates. Failures are ConfigErrors: fatal, before
// any fetch.
func loadConfig(cmd *cobra.Command) (*model.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, &model.ConfigError{Reason: "config location", Err: err}
		}
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("QUADRANT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, &model.ConfigError{Reason: "read config file", Err: err}
	}
	if verbose {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	}

	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, &model.ConfigError{Reason: "parse config file", Err: err}
	}

	// Flags beat file and environment, but only when actually set.
	if cmd.Flags().Changed("mode") {
		cfg.Mode = flagMode
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = flagLimit
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = flagOutput
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Workers = flagWorkers
	}
	if cmd.Flags().Changed("wall-threshold") {
		cfg.WallThreshold = flagWall
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if llmEnabled {
		cfg.LLM.Enabled = true
		cfg.LLM.Model = llmModel
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return nil, &model.ConfigError{Reason: "llm enabled but OPENAI_API_KEY not set"}
		}
	}
	cfg.Verbose = cfg.Verbose || verbose

	if cfg.Cache.Dir == "" {
		dir, err := configDir()
		if err != nil {
			return nil, &model.ConfigError{Reason: "cache location", Err: err}
		}
		cfg.Cache.Dir = filepath.Join(dir, "cache")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
