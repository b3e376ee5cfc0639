package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/Egor213/LogiGraph/internal/metrics"
	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Load bulk-loads one CSV or XLSX export and prints the outcome to out.
// The returned error is non-nil when the load did not complete.
func Load(path string, out io.Writer) error {
	// the CLI exits before anything could scrape its counters
	rt, err := setup(metrics.NewWithRegisterer(prometheus.NewRegistry()))
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := rt.services.Loader.Load(ctx, path)
	printResult(out, result, err)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func printResult(out io.Writer, result domain.LoadResult, err error) {
	if err != nil {
		fmt.Fprintf(out, "load %s failed after %d rows: %v\n", result.BatchID, result.Inserted, err)
		return
	}
	fmt.Fprintf(out, "load %s: %d rows from %s\n", result.BatchID, result.Inserted, result.Source)
}
