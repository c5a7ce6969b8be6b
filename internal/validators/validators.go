package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/config"
	"github.com/cloud-ru/mcp-vehicle-loan-go/pkg/utils"
)

// LoanInput параметры кредита, полученные от клиента
type LoanInput struct {
	VehiclePrice        float64 `json:"vehicle_price" validate:"gt=0"`
	DownPayment         float64 `json:"down_payment" validate:"gte=0,ltfield=VehiclePrice"`
	TermMonths          int     `json:"term_months" validate:"gte=1"`
	AnnualReinforcement float64 `json:"annual_reinforcement" validate:"gte=0"`
	Bank                string  `json:"bank" validate:"required"`
}

var validate = validator.New()

// ValidatePositiveNumber проверяет, что число положительное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %.0f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%.0f)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckVehiclePrice проверяет цену автомобиля
func CheckVehiclePrice(cfg *config.Config, price float64) error {
	return ValidatePositiveNumber("vehicle_price", price, 1, cfg.MaxVehiclePrice)
}

// CheckDownPayment проверяет первоначальный взнос: он не может покрывать всю цену
func CheckDownPayment(price, downPayment float64) error {
	if err := ValidatePositiveNumber("down_payment", downPayment, 0, price); err != nil {
		return err
	}
	if downPayment >= price {
		return fmt.Errorf("down_payment: взнос должен быть меньше цены автомобиля")
	}
	return nil
}

// CheckTermMonths проверяет срок в месяцах
func CheckTermMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("term_months", months, 1, cfg.MaxTermMonths)
}

// CheckReinforcement проверяет ежегодный досрочный взнос
func CheckReinforcement(cfg *config.Config, amount float64) error {
	return ValidatePositiveNumber("annual_reinforcement", amount, 0, cfg.MaxVehiclePrice)
}

// CheckRate проверяет годовую ставку (доля)
func CheckRate(cfg *config.Config, rate float64) error {
	if !utils.IsFinite(rate) {
		return fmt.Errorf("annual_rate: значение не является конечным числом")
	}
	if rate < 0 || rate > cfg.MaxRate {
		return fmt.Errorf("annual_rate: значение должно быть в диапазоне [0; %g]", cfg.MaxRate)
	}
	return nil
}

// ValidateLoanInput проверяет параметры кредита: сначала теги структуры,
// затем ограничения из конфигурации
func ValidateLoanInput(cfg *config.Config, in LoanInput) error {
	if err := validate.Struct(in); err != nil {
		return describe(err)
	}

	checks := []error{
		CheckVehiclePrice(cfg, in.VehiclePrice),
		CheckDownPayment(in.VehiclePrice, in.DownPayment),
		CheckTermMonths(cfg, in.TermMonths),
		CheckReinforcement(cfg, in.AnnualReinforcement),
	}
	return errors.Join(checks...)
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: нарушено правило %s", fieldName(fe.Field()), ruleName(fe)))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func ruleName(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func fieldName(field string) string {
	switch field {
	case "VehiclePrice":
		return "vehicle_price"
	case "DownPayment":
		return "down_payment"
	case "TermMonths":
		return "term_months"
	case "AnnualReinforcement":
		return "annual_reinforcement"
	case "Bank":
		return "bank"
	}
	return field
}
