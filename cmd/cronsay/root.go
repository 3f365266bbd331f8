package main

import (
	"fmt"
	"strings"

	"github.com/quailyquaily/cronsay/cmd/cronsay/describecmd"
	"github.com/quailyquaily/cronsay/cmd/cronsay/servecmd"
	"github.com/quailyquaily/cronsay/internal/configutil"
	"github.com/quailyquaily/cronsay/internal/logutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cronsay",
		Short:         "Explain cron expressions in plain English",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "Config file (yaml).")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug|info|warn|error.")
	cmd.PersistentFlags().String("log-format", "text", "Log format: text|json.")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output.")

	cmd.AddCommand(describecmd.NewCommand(describecmd.Dependencies{
		LoggerFromViper: logutil.LoggerFromViper,
	}))
	cmd.AddCommand(servecmd.NewCommand(servecmd.Dependencies{
		LoggerFromViper: logutil.LoggerFromViper,
	}))
	return cmd
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.no_color", false)
	viper.SetDefault("serve.listen", "127.0.0.1:9191")
	viper.SetDefault("serve.auth_token", "")
	viper.SetDefault("serve.history_max", 1000)
}

// initConfig wires viper: flags > CRONSAY_* env > config file > defaults.
func initConfig(cmd *cobra.Command) error {
	setDefaults()
	viper.SetEnvPrefix("CRONSAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	root := cmd.Root()
	if err := viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}
	if err := viper.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format")); err != nil {
		return err
	}

	path, _ := root.PersistentFlags().GetString("config")
	path = strings.TrimSpace(path)
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// color also honors NO_COLOR and non-tty output on its own.
	if configutil.FlagOrViperBool(cmd, "no-color", "output.no_color") {
		color.NoColor = true
	}
	return nil
}
