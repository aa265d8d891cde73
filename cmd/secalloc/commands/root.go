package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	dataFile string
	verbose  bool
	log      *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "secalloc",
		Short:         "Public-safety budget allocation analysis",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			}))
			slog.SetDefault(log)

			viper.SetEnvPrefix("secalloc")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
				log.Debug("config loaded", "file", viper.ConfigFileUsed())
			}
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if dataFile == "" {
				dataFile = viper.GetString("data")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml/json/toml)")
	root.PersistentFlags().StringVarP(&dataFile, "data", "d", "", "region dataset file (JSON)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		estimateCmd(),
		optimizeCmd(),
		sweepCmd(),
		tornadoCmd(),
		simulateCmd(),
		planCmd(),
		backtestCmd(),
		rankCmd(),
	)
	return root.Execute()
}
