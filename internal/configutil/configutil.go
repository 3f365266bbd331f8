package configutil

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FlagOrViperString prefers an explicitly set flag, then the viper key, then
// the flag default. An empty viperKey skips the viper lookup.
func FlagOrViperString(cmd *cobra.Command, flagName, viperKey string) string {
	if flagChanged(cmd, flagName) {
		v, _ := cmd.Flags().GetString(flagName)
		return v
	}
	if viperKey != "" && viper.IsSet(viperKey) {
		return viper.GetString(viperKey)
	}
	if cmd != nil && cmd.Flags().Lookup(flagName) != nil {
		v, _ := cmd.Flags().GetString(flagName)
		return v
	}
	return ""
}

func FlagOrViperInt(cmd *cobra.Command, flagName, viperKey string) int {
	if flagChanged(cmd, flagName) {
		v, _ := cmd.Flags().GetInt(flagName)
		return v
	}
	if viperKey != "" && viper.IsSet(viperKey) {
		return viper.GetInt(viperKey)
	}
	if cmd != nil && cmd.Flags().Lookup(flagName) != nil {
		v, _ := cmd.Flags().GetInt(flagName)
		return v
	}
	return 0
}

func FlagOrViperBool(cmd *cobra.Command, flagName, viperKey string) bool {
	if flagChanged(cmd, flagName) {
		v, _ := cmd.Flags().GetBool(flagName)
		return v
	}
	if viperKey != "" && viper.IsSet(viperKey) {
		return viper.GetBool(viperKey)
	}
	if cmd != nil && cmd.Flags().Lookup(flagName) != nil {
		v, _ := cmd.Flags().GetBool(flagName)
		return v
	}
	return false
}

func flagChanged(cmd *cobra.Command, flagName string) bool {
	if cmd == nil || strings.TrimSpace(flagName) == "" {
		return false
	}
	f := cmd.Flags().Lookup(flagName)
	return f != nil && f.Changed
}
