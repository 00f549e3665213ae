package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mycok/uPartition/repartition"
	"github.com/mycok/uPartition/report"
)

func newRootCmd(v *viper.Viper, logger *logrus.Entry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "partitioner",
		Short: "Balanced partitioning of co-occurrence graphs",
		Long: "Partitioner groups the vertices of a co-occurrence graph into partitions of " +
			"bounded size so that items which are accessed together share a partition.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cmd.Flags()); err != nil {
				return err
			}

			if v.GetString("log-format") == "json" {
				logger.Logger.SetFormatter(new(logrus.JSONFormatter))
			}

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file holding the settings and the cluster table (toml, yaml or json)")
	flags.String("log-format", "text", "Log output format. Supported values are 'text' and 'json'")

	flags.String(
		"graph-uri", "in-memory://",
		"URI for connecting to a co-occurrence graph data store."+
			" [supported URI's: in-memory://, badger:///var/lib/cograph, postgresql://user@host:26257/cograph?sslmode=disable, grpc://host:8080]",
	)
	flags.String("graph-file", "", "Optional toml file whose vertices and edges are imported into the graph store before partitioning")
	flags.String(
		"partition-detection-mode", "single",
		"The partition detection mode to use. Supported values are"+
			" 'dns=HEADLESS_SERVICE_NAME' (k8s) and 'single' (local dev mode)",
	)
	flags.Duration("update-interval", time.Hour, "Time between subsequent partitioning passes")
	flags.Int("load-partitions", 1, "Number of UUID ranges the graph is loaded in")

	flags.Int("max-iterations", repartition.DefaultMaxIterations, "Maximum number of super steps after the setup super step")
	flags.Int("cluster-count", 0, "Number of partitions. Defaults to the number of configured clusters")
	flags.Float64(
		"acquire-label-probability", repartition.DefaultAcquireLabelProbability,
		"Probability of a vertex attempting to acquire the majority label of its neighborhood in each round",
	)
	flags.Bool("mocked-partitions", false, "Assign random initial labels instead of using the stored ones")
	flags.String("edge-label", repartition.DefaultEdgeLabel, "Label of the edges that carry co-occurrence counts")
	flags.Int("compute-workers", runtime.NumCPU(), "Number of workers for executing each super step")
	flags.Int64("seed", 0, "Seed for the per-vertex random sources. A time based seed is used when 0")

	flags.String("report-format", report.FormatText, "Report output format. Supported values are 'text', 'json' and 'toml'")
	flags.Bool("anonymize", false, "Omit item keys from reports and print vertex ids with a 'v:' prefix")

	rootCmd.AddCommand(
		newServeCmd(v, logger),
		newRunOnceCmd(v, logger),
	)

	return rootCmd
}

// loadConfig binds the command line flags to v and merges in the
// environment and the optional config file. Flags that were explicitly set
// take precedence over both.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix("PARTITIONER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}
