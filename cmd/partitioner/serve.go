package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mycok/uPartition/service"
)

func newServeCmd(v *viper.Viper, logger *logrus.Entry) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Periodically repartition the graph until interrupted",
		Long: "Serve runs a partitioning pass every update interval on the master node of the" +
			" application cluster. Cluster table changes in the config file apply to the next pass.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancelFn := context.WithCancel(cmd.Context())
			defer cancelFn()

			svc, closeFn, err := newPartitionerService(ctx, v, nil, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			if cfgFile := v.ConfigFileUsed(); cfgFile != "" {
				v.OnConfigChange(func(e fsnotify.Event) {
					clusters, err := readClusters(v)
					if err != nil {
						logger.WithField("err", err).Warn("ignoring invalid cluster table")

						return
					}

					svc.SetClusters(clusters)
					logger.WithField("file", e.Name).Info("reloaded cluster table")
				})
				v.WatchConfig()
			}

			// Launch a separate process to listen and respond to os signals
			// and trigger a graceful shutdown.
			go func() {
				signalChan := make(chan os.Signal, 1)
				signal.Notify(signalChan, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)

				select {
				case s := <-signalChan:
					logger.WithField("signal", s.String()).Info("shutting down due to os signal")
					cancelFn()
				case <-ctx.Done():
				}
			}()

			if err := (service.Group{svc}).Execute(ctx); err != nil {
				return err
			}

			logger.Info("shutdown complete")

			return nil
		},
	}
}
