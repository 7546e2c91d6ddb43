package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/export"
	"github.com/ridwanfathin/shop-admin-service/internal/reporting"
	"github.com/ridwanfathin/shop-admin-service/internal/service"
)

// openServiceFunc provides the report service and a cleanup func to a report command.
type openServiceFunc func(ctx context.Context) (service.ReportService, func(), error)

func openDatabaseService(ctx context.Context) (service.ReportService, func(), error) {
	a, err := bootstrap(ctx)
	if err != nil {
		return nil, nil, err
	}
	return a.engine, a.Close, nil
}

func newReportCmd() *cobra.Command {
	return newReportCmdWith(openDatabaseService)
}

func newReportCmdWith(open openServiceFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute a report and print it as JSON",
	}
	cmd.AddCommand(newStatusReportCmd(open))
	cmd.AddCommand(newRevenueReportCmd(open))
	cmd.AddCommand(newTopProductsReportCmd(open))
	cmd.AddCommand(newCohortReportCmd(open))
	cmd.AddCommand(newSalesReportCmd(open))
	return cmd
}

// runReport opens the service, runs fn and prints its result as indented JSON.
func runReport(cmd *cobra.Command, open openServiceFunc, fn func(ctx context.Context, svc service.ReportService) (any, error)) error {
	svc, cleanup, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := fn(cmd.Context(), svc)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// dateFlags registers --start and --end on cmd.
func dateFlags(cmd *cobra.Command, start, end *string) {
	cmd.Flags().StringVar(start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(end, "end", "", "end date (YYYY-MM-DD)")
}

func parseDates(start, end string) (*domain.Date, *domain.Date, error) {
	parse := func(flag, value string) (*domain.Date, error) {
		if strings.TrimSpace(value) == "" {
			return nil, nil
		}
		d, err := domain.ParseDate(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		return &d, nil
	}
	s, err := parse("start", start)
	if err != nil {
		return nil, nil, err
	}
	e, err := parse("end", end)
	if err != nil {
		return nil, nil, err
	}
	return s, e, nil
}

func newStatusReportCmd(open openServiceFunc) *cobra.Command {
	var customerID int64
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Count invoices per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := reporting.StatusCountQuery{}
			if cmd.Flags().Changed("customer-id") {
				q.CustomerID = &customerID
			}
			return runReport(cmd, open, func(ctx context.Context, svc service.ReportService) (any, error) {
				return svc.StatusCounts(ctx, q)
			})
		},
	}
	cmd.Flags().Int64Var(&customerID, "customer-id", 0, "only count invoices of this customer")
	return cmd
}

func newRevenueReportCmd(open openServiceFunc) *cobra.Command {
	var (
		year        int
		granularity string
		start, end  string
	)
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Revenue of success invoices per month or day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, e, err := parseDates(start, end)
			if err != nil {
				return err
			}
			q := reporting.SeriesQuery{Year: year, Start: s, End: e, Granularity: domain.Granularity(granularity)}
			return runReport(cmd, open, func(ctx context.Context, svc service.ReportService) (any, error) {
				return svc.RevenueSeries(ctx, q)
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")
	cmd.Flags().StringVar(&granularity, "granularity", string(domain.GranularityMonth), "month or day")
	dateFlags(cmd, &start, &end)
	return cmd
}

func newTopProductsReportCmd(open openServiceFunc) *cobra.Command {
	var (
		limit      int
		groupBy    string
		start, end string
	)
	cmd := &cobra.Command{
		Use:   "top-products",
		Short: "Best sellers by quantity sold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, e, err := parseDates(start, end)
			if err != nil {
				return err
			}
			q := reporting.RankingQuery{Limit: limit, Start: s, End: e, GroupBy: domain.RankingGroup(groupBy)}
			return runReport(cmd, open, func(ctx context.Context, svc service.ReportService) (any, error) {
				return svc.TopProducts(ctx, q)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", reporting.DefaultTopLimit, "maximum entries")
	cmd.Flags().StringVar(&groupBy, "group-by", string(domain.RankByProduct), "product or category")
	dateFlags(cmd, &start, &end)
	return cmd
}

func newCohortReportCmd(open openServiceFunc) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "cohort",
		Short: "Monthly customer acquisition and retention",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, open, func(ctx context.Context, svc service.ReportService) (any, error) {
				return svc.Cohort(ctx, reporting.CohortQuery{Year: year})
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")
	return cmd
}

func newSalesReportCmd(open openServiceFunc) *cobra.Command {
	var (
		start, end string
		format     string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Sales summary of a date range",
		Long:  "Prints the sales summary as JSON, or writes it as an XLSX or PDF document with --format and --output.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, e, err := parseDates(start, end)
			if err != nil {
				return err
			}
			q := reporting.RangeQuery{Start: s, End: e}

			if format == "" || format == "json" {
				return runReport(cmd, open, func(ctx context.Context, svc service.ReportService) (any, error) {
					return svc.RangeSummary(ctx, q)
				})
			}

			docFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if output == "" {
				return fmt.Errorf("--output is required for --format %s", docFormat)
			}

			svc, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := svc.RangeSummary(cmd.Context(), q)
			if err != nil {
				return err
			}
			data, err := export.BuildSalesReport(docFormat, report, time.Now())
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(data))
			return nil
		},
	}
	dateFlags(cmd, &start, &end)
	cmd.Flags().StringVar(&format, "format", "json", "json, xlsx or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write xlsx or pdf output to")
	return cmd
}
