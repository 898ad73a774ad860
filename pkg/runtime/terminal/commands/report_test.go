package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuegovic/homebox-analytics/pkg/models/api"
	"github.com/fuegovic/homebox-analytics/pkg/services/period"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		cmd     ReportCmd
		want    period.Range
		wantErr bool
	}{
		{
			name: "trailing window",
			cmd:  ReportCmd{lastDays: 30},
			want: period.LastDays(now, 30),
		},
		{
			name: "calendar month",
			cmd:  ReportCmd{month: "2025-10"},
			want: period.Month(2025, time.October),
		},
		{
			name: "calendar year",
			cmd:  ReportCmd{year: 2024},
			want: period.Year(2024),
		},
		{
			name: "custom range",
			cmd:  ReportCmd{from: "2025-11-01", to: "2025-11-30"},
			want: period.Month(2025, time.November),
		},
		{
			name: "default is current month",
			cmd:  ReportCmd{},
			want: period.Month(2025, time.November),
		},
		{
			name:    "bad month",
			cmd:     ReportCmd{month: "November"},
			wantErr: true,
		},
		{
			name:    "bad custom date",
			cmd:     ReportCmd{from: "11/01/2025", to: "2025-11-30"},
			wantErr: true,
		},
		{
			name:    "custom range reversed",
			cmd:     ReportCmd{from: "2025-11-30", to: "2025-11-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.resolveRange(now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportCmd_CSVToJSON(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "export.csv")
	content := "HB.name,HB.location,HB.archived,HB.purchase_price,HB.purchase_time,HB.sold_price,HB.sold_time\n" +
		"camera,📦 Sold,true,100,2025-10-01,150,2025-11-10\n" +
		"gig,Other Income / November 2025,true,0,,200,2025-11-12\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o600))

	var buf bytes.Buffer
	cmd := NewReportCmd(&buf)
	cmd.SetArgs([]string{
		"--csv", csvPath,
		"--from", "2025-11-01", "--to", "2025-11-30",
		"--format", "json",
	})

	require.NoError(t, cmd.Execute())

	var report api.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "2025-11-01", report.Period.Start)
	assert.Equal(t, 1, report.ItemsSold)
	assert.Equal(t, 150.0, report.ProductRevenue)
	assert.Equal(t, 200.0, report.ServiceRevenue)
	assert.Equal(t, 350.0, report.TotalRevenue)
	assert.Equal(t, 250.0, report.TotalProfit)
}

func TestReportCmd_SummaryFormat(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("HB.name,HB.location\nwidget,Shelf\n"), 0o600))

	var buf bytes.Buffer
	cmd := NewReportCmd(&buf)
	cmd.SetArgs([]string{"--csv", csvPath, "--month", "2025-11"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Homebox Financial Summary")
	assert.Contains(t, buf.String(), "2025-11-01 to 2025-11-30")
}

func TestReportCmd_RequiresSource(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewReportCmd(&buf)
	cmd.SetArgs([]string{"--month", "2025-11"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	assert.Error(t, cmd.Execute())
}

func TestReportCmd_UnknownFormat(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("HB.name\nwidget\n"), 0o600))

	var buf bytes.Buffer
	cmd := NewReportCmd(&buf)
	cmd.SetArgs([]string{"--csv", csvPath, "--format", "xml"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	assert.Error(t, cmd.Execute())
}
