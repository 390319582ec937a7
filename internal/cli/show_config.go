// internal/cli/show_config.go
package lmdiff

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd prints the merged configuration, ensuring that the JSON
// config is loaded properly and overridden by flags accordingly.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := viper.ConfigFileUsed()
		if file == "" {
			fmt.Println("No config file loaded (using defaults).")
		} else {
			fmt.Printf("Config file: %s\n\n", file)
		}

		fmt.Println("Current configuration:")
		fmt.Printf("  Debug:            %v\n", viper.GetBool("debug"))
		fmt.Printf("  Challenge:        %v\n", viper.GetString("challenge"))
		fmt.Printf("  Entropy Interval: %v\n", viper.GetFloat64("entropyInterval"))
		fmt.Printf("  Strict:           %v\n", viper.GetBool("strict"))
		fmt.Printf("  Color:            %v\n", viper.GetString("color"))
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
