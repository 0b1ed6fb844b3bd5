package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/roster/internal/metrics"
	"github.com/ajitpratap0/roster/internal/models"
	"github.com/ajitpratap0/roster/internal/report"
	"github.com/ajitpratap0/roster/internal/store"
)

func reportCmd(seed seedFunc) *cobra.Command {
	var (
		status      string
		sortFields  []string
		dumpMetrics bool
	)

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer := newLogger(cmd)
			defer func() { _ = closer.Close() }()

			opts, err := reportOptions(status, sortFields)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}

			var (
				storeOpts []store.Option
				reg       *prometheus.Registry
			)
			if dumpMetrics {
				reg = prometheus.NewRegistry()
				m, metricsErr := metrics.New(reg)
				if metricsErr != nil {
					return fmt.Errorf("report: %w", metricsErr)
				}
				storeOpts = append(storeOpts, store.WithMetrics(m))
			}

			st, err := openStore(seed, logger, storeOpts...)
			if err != nil {
				return err
			}

			if err := report.New(st, cmd.OutOrStdout(), logger).Write(opts); err != nil {
				return err
			}

			if dumpMetrics {
				if err := metrics.WriteText(cmd.ErrOrStderr(), reg); err != nil {
					return fmt.Errorf("report: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "status to list (default from report.status)")
	cmd.Flags().StringSliceVar(&sortFields, "sort", nil, "fields to sort by, one section each (default from report.sort_fields)")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "write Prometheus metrics to stderr after the report")
	return cmd
}

// reportOptions merges flag values over the loaded configuration.
func reportOptions(status string, sortFields []string) (report.Options, error) {
	opts := report.DefaultOptions()
	if cfg != nil {
		opts.Status = models.Status(cfg.Report.Status)
		fields, err := cfg.Report.Fields()
		if err != nil {
			return opts, err
		}
		opts.SortFields = fields
	}

	if status != "" {
		opts.Status = models.Status(status)
	}
	if len(sortFields) > 0 {
		opts.SortFields = nil
		for _, name := range sortFields {
			f, err := models.ParseField(name)
			if err != nil {
				return opts, err
			}
			opts.SortFields = append(opts.SortFields, f)
		}
	}
	return opts, nil
}
