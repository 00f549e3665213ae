package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Service is a long running component of the partitioner application.
type Service interface {
	// Name returns the name of the service.
	Name() string

	// Run executes the service and blocks until the context gets cancelled
	// or an error occurs.
	Run(context.Context) error
}

// Group is a list of Service instances that execute concurrently.
type Group []Service

// Execute runs every service in the group and blocks until ctx is cancelled
// or any of the services fails. A failing service cancels the others; the
// errors of all failed services are returned together.
func (g Group) Execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	runCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	var wg sync.WaitGroup
	errChan := make(chan error, len(g))

	wg.Add(len(g))
	for _, s := range g {
		go func(s Service) {
			defer wg.Done()

			if err := s.Run(runCtx); err != nil {
				errChan <- fmt.Errorf("%s: %w", s.Name(), err)
				cancelFn()
			}
		}(s)
	}

	<-runCtx.Done()
	wg.Wait()
	close(errChan)

	var err error
	for svcErr := range errChan {
		err = multierror.Append(err, svcErr)
	}

	return err
}
