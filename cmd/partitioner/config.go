package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/cograph/store/api/rpc"
	"github.com/mycok/uPartition/cograph/store/api/rpc/cographproto"
	"github.com/mycok/uPartition/cograph/store/cdb"
	"github.com/mycok/uPartition/cograph/store/kv"
	"github.com/mycok/uPartition/cograph/store/memory"
	"github.com/mycok/uPartition/repartition"
	"github.com/mycok/uPartition/report"
	"github.com/mycok/uPartition/service/partition"
	"github.com/mycok/uPartition/service/partitioner"
)

const dialTimeout = 10 * time.Second

// clusterEntry is a row of the cluster table of the config file:
//
//	[[clusters]]
//	label = 0
//	capacity = 1000
//	usage = 420
type clusterEntry struct {
	Label               int64 `mapstructure:"label"`
	repartition.Cluster `mapstructure:",squash"`
}

// readClusters returns the cluster descriptors of the config file or nil
// if none are configured.
func readClusters(v *viper.Viper) (repartition.Clusters, error) {
	var entries []clusterEntry
	if err := v.UnmarshalKey("clusters", &entries); err != nil {
		return nil, fmt.Errorf("decode cluster table: %w", err)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	var err error
	clusters := make(repartition.Clusters, len(entries))
	for _, entry := range entries {
		if _, exists := clusters[entry.Label]; exists {
			err = multierror.Append(err, fmt.Errorf("cluster %d: duplicate entry", entry.Label))

			continue
		}

		clusters[entry.Label] = entry.Cluster
	}

	if err != nil {
		return nil, err
	}

	return clusters, nil
}

func partitioningConfig(v *viper.Viper) (repartition.Config, error) {
	clusters, err := readClusters(v)
	if err != nil {
		return repartition.Config{}, err
	}

	return repartition.Config{
		MaxIterations:           v.GetInt("max-iterations"),
		ClusterCount:            v.GetInt("cluster-count"),
		AcquireLabelProbability: v.GetFloat64("acquire-label-probability"),
		Clusters:                clusters,
		MockedPartitions:        v.GetBool("mocked-partitions"),
		EdgeLabel:               v.GetString("edge-label"),
		ComputeWorkers:          v.GetInt("compute-workers"),
		Seed:                    v.GetInt64("seed"),
	}, nil
}

// newPartitionerService assembles a partitioner service from the settings
// in v. The returned function releases the graph store connection.
func newPartitionerService(
	ctx context.Context, v *viper.Viper, out io.Writer, logger *logrus.Entry,
) (*partitioner.Service, func(), error) {
	partitioning, err := partitioningConfig(v)
	if err != nil {
		return nil, nil, err
	}

	detector, err := partition.FromMode(v.GetString("partition-detection-mode"))
	if err != nil {
		return nil, nil, err
	}

	g, closeFn, err := getGraph(ctx, v.GetString("graph-uri"), logger)
	if err != nil {
		return nil, nil, err
	}

	if graphFile := v.GetString("graph-file"); graphFile != "" {
		numOfVertices, numOfEdges, err := importGraph(g, graphFile, partitioning.EdgeLabel)
		if err != nil {
			closeFn()

			return nil, nil, err
		}

		logger.WithFields(logrus.Fields{
			"file":     graphFile,
			"vertices": numOfVertices,
			"edges":    numOfEdges,
		}).Info("imported graph file")
	}

	reporter, err := report.NewReporter(report.Config{
		Format:    v.GetString("report-format"),
		Anonymize: v.GetBool("anonymize"),
		Output:    out,
		Logger:    logger.WithField("service", "reporter"),
	})
	if err != nil {
		closeFn()

		return nil, nil, err
	}

	svcLogger := logger.WithField("service", "partitioner")
	partitioning.Logger = svcLogger

	svc, err := partitioner.New(partitioner.Config{
		GraphAPI:          g,
		Reporter:          reporter,
		PartitionDetector: detector,
		UpdateInterval:    v.GetDuration("update-interval"),
		LoadPartitions:    v.GetInt("load-partitions"),
		Partitioning:      partitioning,
		Logger:            svcLogger,
	})
	if err != nil {
		closeFn()

		return nil, nil, err
	}

	return svc, closeFn, nil
}

func getGraph(ctx context.Context, graphURI string, logger *logrus.Entry) (graph.Graph, func(), error) {
	if graphURI == "" {
		return nil, nil, fmt.Errorf("graph URI must be specified with --graph-uri")
	}

	uri, err := url.Parse(graphURI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse graph URI: %w", err)
	}

	switch uri.Scheme {
	case "in-memory":
		logger.Info("using in-memory graph store")

		return memory.NewInMemoryGraph(), func() {}, nil
	case "postgresql":
		logger.Info("using CDB graph store")

		g, err := cdb.NewCockroachDBGraph(graphURI)
		if err != nil {
			return nil, nil, err
		}

		return g, func() { _ = g.Close() }, nil
	case "badger":
		logger.WithField("path", uri.Path).Info("using badger graph store")

		g, err := kv.NewBadgerGraph(uri.Path, logger.WithField("store", "badger"))
		if err != nil {
			return nil, nil, err
		}

		return g, func() { _ = g.Close() }, nil
	case "grpc":
		logger.WithField("addr", uri.Host).Info("using gRPC graph store")

		dialCtx, cancelFn := context.WithTimeout(ctx, dialTimeout)
		defer cancelFn()

		conn, err := grpc.DialContext(
			dialCtx, uri.Host,
			grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to graph API: %w", err)
		}

		return rpc.NewGraphClient(ctx, cographproto.NewCoGraphClient(conn)), func() { _ = conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported graph URI scheme: %q", uri.Scheme)
	}
}
