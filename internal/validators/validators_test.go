package validators

import (
	"math"
	"testing"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, interface{}) error
		value     interface{}
		wantError bool
	}{
		{
			name:      "valid vehicle price",
			validator: func(cfg *config.Config, v interface{}) error { return CheckVehiclePrice(cfg, v.(float64)) },
			value:     65000000.0,
			wantError: false,
		},
		{
			name:      "invalid vehicle price zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckVehiclePrice(cfg, v.(float64)) },
			value:     0.0,
			wantError: true,
		},
		{
			name:      "invalid vehicle price NaN",
			validator: func(cfg *config.Config, v interface{}) error { return CheckVehiclePrice(cfg, v.(float64)) },
			value:     math.NaN(),
			wantError: true,
		},
		{
			name:      "valid down payment",
			validator: func(cfg *config.Config, v interface{}) error { return CheckDownPayment(65000000, v.(float64)) },
			value:     15000000.0,
			wantError: false,
		},
		{
			name:      "invalid down payment equal to price",
			validator: func(cfg *config.Config, v interface{}) error { return CheckDownPayment(65000000, v.(float64)) },
			value:     65000000.0,
			wantError: true,
		},
		{
			name:      "invalid down payment negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckDownPayment(65000000, v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "valid term",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTermMonths(cfg, v.(int)) },
			value:     60,
			wantError: false,
		},
		{
			name:      "invalid term zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTermMonths(cfg, v.(int)) },
			value:     0,
			wantError: true,
		},
		{
			name:      "invalid term too long",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTermMonths(cfg, v.(int)) },
			value:     361,
			wantError: true,
		},
		{
			name:      "valid zero reinforcement",
			validator: func(cfg *config.Config, v interface{}) error { return CheckReinforcement(cfg, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:      "valid rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     0.11,
			wantError: false,
		},
		{
			name:      "valid zero rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:      "invalid rate negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     -0.01,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateLoanInput(t *testing.T) {
	cfg, _ := config.LoadConfig()

	valid := LoanInput{
		VehiclePrice:        65000000,
		DownPayment:         15000000,
		TermMonths:          60,
		AnnualReinforcement: 10000000,
		Bank:                "BancoUENO",
	}

	tests := []struct {
		name      string
		mutate    func(*LoanInput)
		wantError bool
	}{
		{name: "valid", mutate: func(*LoanInput) {}, wantError: false},
		{name: "down payment exceeds price", mutate: func(in *LoanInput) { in.DownPayment = 70000000 }, wantError: true},
		{name: "missing bank", mutate: func(in *LoanInput) { in.Bank = "" }, wantError: true},
		{name: "negative reinforcement", mutate: func(in *LoanInput) { in.AnnualReinforcement = -1 }, wantError: true},
		{name: "term above limit", mutate: func(in *LoanInput) { in.TermMonths = cfg.MaxTermMonths + 1 }, wantError: true},
		{name: "zero price", mutate: func(in *LoanInput) { in.VehiclePrice = 0; in.DownPayment = 0 }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidateLoanInput(cfg, in)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateLoanInput() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
