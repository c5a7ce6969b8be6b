package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/calculations"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tracing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, run(context.Background()))
	return out.String()
}

func TestScheduleCommand_JSON(t *testing.T) {
	out := execute(t, "schedule", "--json", "--bank", "BancoATLAS", "--term", "24")

	var resp tools.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "BancoATLAS", resp.Bank)
	assert.Len(t, resp.Result.Schedule, 24)
}

func TestBanksCommand(t *testing.T) {
	out := execute(t, "banks")

	assert.Contains(t, out, "BancoUENO (default)")
	assert.Contains(t, out, "14.9%")
}

func TestRenderSchedule_MarksReinforcement(t *testing.T) {
	result := calculations.Compute(calculations.LoanParameters{
		VehiclePrice:        65_000_000,
		DownPayment:         15_000_000,
		TermMonths:          24,
		AnnualReinforcement: 10_000_000,
		AnnualRate:          0.11,
	})

	var buf bytes.Buffer
	require.NoError(t, renderSchedule(&buf, result.Schedule))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 25)
	assert.Contains(t, lines[0], "Saldo inicial")
	assert.Contains(t, lines[12], "12*")
	assert.Contains(t, lines[12], "Gs. 10.000.000")
	assert.NotContains(t, lines[1], "*")
}

func TestRenderQuotes(t *testing.T) {
	resp := &tools.CompareResponse{
		Quotes: []calculations.BankQuote{
			{Bank: "BancoUENO", AnnualRate: 0.11, InitialPayment: 1_087_121, TotalInterest: 9_825_471},
			{Bank: "BancoITAU", AnnualRate: 0.125, InitialPayment: 1_124_887, TotalInterest: 11_300_000},
		},
		Cheapest: "BancoUENO",
		Savings:  1_474_529,
	}

	var buf bytes.Buffer
	require.NoError(t, renderQuotes(&buf, resp))
	assert.Contains(t, buf.String(), "Gs. 1.087.121")
	assert.Contains(t, buf.String(), "Más conveniente: BancoUENO (ahorro hasta Gs. 1.474.529)")
}

func TestRun_ShutsDownTracing(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	calls := 0
	orig := initTracing
	t.Cleanup(func() {
		initTracing = orig
		_ = scheduleCmd.Flags().Set("term", strconv.Itoa(defaultTermMonths))
	})
	initTracing = func(ctx context.Context, serviceName, endpoint string, log zerolog.Logger) (trace.Tracer, tracing.ShutdownFunc, error) {
		return noop.NewTracerProvider().Tracer("test"), func(context.Context) error {
			calls++
			return nil
		}, nil
	}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "success", args: []string{"banks"}},
		{name: "failed command", args: []string{"schedule", "--term", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = 0
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetArgs(tt.args)

			err := run(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, calls)
			assert.Nil(t, current)
		})
	}
}
