package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FlagOrViperString prefers an explicitly set flag over the config value.
func FlagOrViperString(cmd *cobra.Command, v *viper.Viper, flagName, key string) string {
	value, _ := cmd.Flags().GetString(flagName)
	if cmd.Flags().Changed(flagName) {
		return value
	}
	if key != "" && v.IsSet(key) {
		return v.GetString(key)
	}
	return value
}
