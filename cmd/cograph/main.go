package main

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/cograph/store/cdb"
	"github.com/mycok/uPartition/cograph/store/kv"
	"github.com/mycok/uPartition/cograph/store/memory"
	"github.com/mycok/uPartition/service"
)

var (
	appName = "uPartition-cograph"
	appSHA  = "latest-app-git-sha" // Populated by the compiler at the linking stage.
	logger  *logrus.Entry
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSHA,
		"host": host,
	})

	if err := newApp().Run(os.Args); err != nil {
		logger.WithField("err", err).Error("shutting down due to an error")
		_ = os.Stderr.Sync()

		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    appName,
		Version: appSHA,
		Usage:   "Expose a co-occurrence graph store over gRPC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "graph-uri",
				Value:   "in-memory://",
				EnvVars: []string{"GRAPH_URI"},
				Usage:   "Graph store URI (in-memory://, badger:///var/lib/cograph or postgresql://user@host:26257/cograph?sslmode=disable)",
			},
			&cli.IntFlag{
				Name:    "grpc-port",
				Value:   8080,
				EnvVars: []string{"GRPC_PORT"},
				Usage:   "Port for the CoGraph gRPC endpoint",
			},
			&cli.IntFlag{
				Name:    "pprof-port",
				Value:   6060,
				EnvVars: []string{"PPROF_PORT"},
				Usage:   "Port for pprof endpoints, 0 disables them",
			},
		},
		Action: serveGraph,
	}
}

// serveGraph runs the gRPC endpoint, and optionally pprof, until a
// termination signal arrives or one of them fails.
func serveGraph(appCtx *cli.Context) error {
	g, closeFn, err := openGraph(appCtx.String("graph-uri"))
	if err != nil {
		return err
	}
	defer closeFn()

	group := service.Group{
		newGRPCService(fmt.Sprintf(":%d", appCtx.Int("grpc-port")), g, logger),
	}
	if port := appCtx.Int("pprof-port"); port > 0 {
		group = append(group, newPprofService(fmt.Sprintf(":%d", port), logger))
	}

	ctx, stop := signal.NotifyContext(appCtx.Context, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	defer stop()

	return group.Execute(ctx)
}

// openGraph returns the store addressed by graphURI along with a function
// that releases it.
func openGraph(graphURI string) (graph.Graph, func(), error) {
	if graphURI == "" {
		return nil, nil, fmt.Errorf("graph URI must be specified with --graph-uri")
	}

	uri, err := url.Parse(graphURI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse graph URI: %w", err)
	}

	switch uri.Scheme {
	case "in-memory":
		return memory.NewInMemoryGraph(), func() {}, nil
	case "postgresql":
		g, err := cdb.NewCockroachDBGraph(graphURI)
		if err != nil {
			return nil, nil, err
		}

		return g, func() { _ = g.Close() }, nil
	case "badger":
		g, err := kv.NewBadgerGraph(uri.Path, logger.WithField("store", "badger"))
		if err != nil {
			return nil, nil, err
		}

		return g, func() { _ = g.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported graph URI scheme: %q", uri.Scheme)
	}
}
