// internal/cli/root.go
package lmdiff

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/lmdiff/internal/appconfig"
	"github.com/mwiater/lmdiff/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "lmdiff",
	Short: "lmdiff — token-level visual diff of paired LM evaluation logs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug", "strict"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		if err := cfg.Normalize(); err != nil {
			return err
		}
		currentConfig = &cfg

		return logging.Init(cfg.LogFile)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// --config (capital shorthand; -c selects the challenge)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("challenge", "c", appconfig.DefaultChallenge, "challenge to compare: completion, entropy, reranking or auto")
	rootCmd.PersistentFlags().Float64P("entropy-interval", "i", appconfig.DefaultEntropyInterval, "interval the entropy difference bands span (must be positive)")
	rootCmd.PersistentFlags().Bool("strict", false, "validate every log line against the record schema")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always or never")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("challenge", rootCmd.PersistentFlags().Lookup("challenge"))
	_ = viper.BindPFlag("entropyInterval", rootCmd.PersistentFlags().Lookup("entropy-interval"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("challenge", appconfig.DefaultChallenge)
	viper.SetDefault("entropyInterval", appconfig.DefaultEntropyInterval)
	viper.SetDefault("strict", false)
	viper.SetDefault("color", "auto")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// Helper accessors (reflect merged Viper state)
func DebugEnabled() bool { return viper.GetBool("debug") }
