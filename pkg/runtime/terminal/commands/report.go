package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fuegovic/homebox-analytics/pkg/adapters"
	"github.com/fuegovic/homebox-analytics/pkg/models/store"
	"github.com/fuegovic/homebox-analytics/pkg/runtime/terminal/export"
	"github.com/fuegovic/homebox-analytics/pkg/services/analysis"
	"github.com/fuegovic/homebox-analytics/pkg/services/period"
	"github.com/fuegovic/homebox-analytics/pkg/services/registry"
	"github.com/fuegovic/homebox-analytics/pkg/store/csvfile"
	"github.com/fuegovic/homebox-analytics/pkg/store/homebox"
)

const fetchTimeout = 60 * time.Second

type ReportCmd struct {
	csvPath string
	profile string
	cfgPath string

	lastDays int
	month    string
	year     int
	from     string
	to       string

	format  string
	outPath string

	output io.Writer
	now    func() time.Time
}

func NewReportCmd(output io.Writer) *cobra.Command {
	rc := &ReportCmd{output: output, now: time.Now}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute a financial report over a date range",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.csvPath, "csv", "", "Path to a Homebox CSV export")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Connection profile name from the homeboxcfg file")
	cmd.Flags().StringVar(&rc.cfgPath, "homeboxcfg", defaultCfgPath(), "Path to the homeboxcfg profile file")

	cmd.Flags().IntVar(&rc.lastDays, "last", 0, "Trailing window in days (7, 30, 90, 365, ...)")
	cmd.Flags().StringVar(&rc.month, "month", "", "Calendar month to report on (YYYY-MM)")
	cmd.Flags().IntVar(&rc.year, "year", 0, "Calendar year to report on")
	cmd.Flags().StringVar(&rc.from, "from", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Custom range end (YYYY-MM-DD)")

	cmd.Flags().StringVar(&rc.format, "format", "summary", "Output format: summary or json")
	cmd.Flags().StringVar(&rc.outPath, "out", "", "Write output to a file instead of stdout")

	cmd.MarkFlagsMutuallyExclusive("csv", "profile")
	cmd.MarkFlagsMutuallyExclusive("last", "month", "year", "from")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	now := rc.now()

	reportRange, err := rc.resolveRange(now)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	rows, err := rc.loadItems(ctx)
	if err != nil {
		return err
	}

	items := adapters.MapStoreItemsToDomain(rows)
	result := analysis.ComputeReport(items, reportRange.Start, reportRange.End, now, analysis.DefaultSettings())

	writer := rc.output
	if rc.outPath != "" {
		f, err := os.Create(rc.outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch rc.format {
	case "summary":
		return export.NewSummaryReporter(writer).Handle(result)
	case "json":
		return export.NewJSONReporter(writer).Handle(result)
	default:
		return fmt.Errorf("unknown format %q, expected summary or json", rc.format)
	}
}

// resolveRange maps the range flags onto an inclusive day interval. Without
// any range flag the current calendar month is reported.
func (rc *ReportCmd) resolveRange(now time.Time) (period.Range, error) {
	switch {
	case rc.lastDays > 0:
		return period.LastDays(now, rc.lastDays), nil
	case rc.month != "":
		return period.ParseMonth(rc.month)
	case rc.year > 0:
		return period.Year(rc.year), nil
	case rc.from != "":
		from, err := time.ParseInLocation("2006-01-02", rc.from, time.UTC)
		if err != nil {
			return period.Range{}, fmt.Errorf("invalid --from date %q: %w", rc.from, err)
		}
		to, err := time.ParseInLocation("2006-01-02", rc.to, time.UTC)
		if err != nil {
			return period.Range{}, fmt.Errorf("invalid --to date %q: %w", rc.to, err)
		}
		if to.Before(from) {
			return period.Range{}, fmt.Errorf("--to %s is before --from %s", rc.to, rc.from)
		}
		return period.Custom(from, to), nil
	default:
		return period.Month(now.Year(), now.Month()), nil
	}
}

func (rc *ReportCmd) loadItems(ctx context.Context) ([]store.ItemRow, error) {
	if rc.csvPath != "" {
		f, err := os.Open(rc.csvPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open csv file: %w", err)
		}
		defer f.Close()
		return csvfile.ReadItems(f)
	}

	if rc.profile == "" {
		return nil, fmt.Errorf("either --csv or --profile is required")
	}

	reg, err := registry.NewRegistry(rc.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load homeboxcfg: %w", err)
	}
	profile, err := reg.GetProfile(ctx, rc.profile)
	if err != nil {
		return nil, err
	}
	return homebox.NewClient(profile).FetchItems(ctx)
}

func defaultCfgPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".homeboxcfg"
	}
	return home + "/.homeboxcfg"
}
