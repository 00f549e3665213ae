package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRunOnceCmd(v *viper.Viper, logger *logrus.Entry) *cobra.Command {
	return &cobra.Command{
		Use:   "run-once",
		Short: "Run a single partitioning pass and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := newPartitionerService(cmd.Context(), v, cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}
			defer closeFn()

			return svc.RunOnce(cmd.Context())
		},
	}
}
