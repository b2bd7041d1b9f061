// Package cmd wires up the planloom command tree.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/planloom/planloom/internal/cmd/plan"
	"github.com/planloom/planloom/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "planloom",
	Short: "Task graph tooling for phased work plans",
	Long: `Planloom turns phased plan documents into dependency-aware task
graphs: it parses the checklist format, computes safe execution
orderings, applies status changes with automatic unblocking, and
writes the document back without corrupting hand-edited content.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/planloom/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().String("plans-dir", "", "directory holding plan documents")
	_ = viper.BindPFlag("paths.plans_dir", rootCmd.PersistentFlags().Lookup("plans-dir"))

	plan.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/planloom")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PLANLOOM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., PLANLOOM_PATHS_PLANS_DIR for paths.plans_dir
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
