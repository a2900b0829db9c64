package main

import (
	"github.com/npillmayer/csscascade/config"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	conf       *config.File
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cssdump",
		Short:         "cssdump parses, computes and animates CSS values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.configFile == "" {
				return nil
			}
			conf, err := config.Load(flags.configFile)
			if err != nil {
				return err
			}
			flags.conf = conf
			return config.SetupTracing(conf.Configuration())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Configuration file (YAML)")

	cmd.AddCommand(newValueCmd())
	cmd.AddCommand(newTransitionCmd())
	cmd.AddCommand(newStyleCmd(flags))

	return cmd
}
