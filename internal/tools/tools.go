package tools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/banks"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/calculations"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/config"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/metrics"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/validators"
	"github.com/cloud-ru/mcp-vehicle-loan-go/pkg/utils"
)

// Имена инструментов
const (
	ToolVehicleLoanSchedule = "vehicle_loan_schedule"
	ToolCompareBanks        = "compare_banks"
	ToolReinforcementImpact = "reinforcement_impact"
	ToolBankRates           = "bank_rates"
)

var (
	// ErrInvalidParameter параметр отсутствует или имеет неверный тип
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrValidation параметры не прошли проверку
	ErrValidation = errors.New("неверные параметры")
	// ErrUnknownBank банк отсутствует в таблице ставок
	ErrUnknownBank = banks.ErrUnknownBank
)

// ToolHandler представляет обработчик инструмента MCP
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Registry возвращает все инструменты по именам
func Registry(cfg *config.Config, rates banks.RateTable, tracer trace.Tracer) map[string]ToolHandler {
	return map[string]ToolHandler{
		ToolVehicleLoanSchedule: VehicleLoanScheduleHandler(cfg, rates, tracer),
		ToolCompareBanks:        CompareBanksHandler(cfg, rates, tracer),
		ToolReinforcementImpact: ReinforcementImpactHandler(cfg, rates, tracer),
		ToolBankRates:           BankRatesHandler(cfg, rates, tracer),
	}
}

// Names возвращает отсортированные имена инструментов
func Names(registry map[string]ToolHandler) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VehicleLoanScheduleHandler рассчитывает график автокредита по ставке выбранного банка
func VehicleLoanScheduleHandler(cfg *config.Config, rates banks.RateTable, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return instrument(ctx, tracer, ToolVehicleLoanSchedule, func(ctx context.Context, span trace.Span) (interface{}, error) {
			loan, rate, err := resolveLoan(cfg, rates, params, span, true)
			if err != nil {
				return nil, err
			}

			result := calculations.Compute(loan)
			metrics.SchedulePeriods.Observe(float64(len(result.Schedule)))

			span.SetAttributes(
				attribute.Float64("initial_payment", utils.RoundUnit(result.InitialPayment)),
				attribute.Float64("total_interest", utils.RoundUnit(result.TotalInterest)),
				attribute.Int("payoff_period", result.PayoffPeriod),
			)

			return &ScheduleResponse{
				Bank:       rate.Bank,
				AnnualRate: rate.AnnualRate,
				Parameters: loan,
				Result:     result,
				Summary:    summarize(result),
			}, nil
		})
	}
}

// CompareBanksHandler рассчитывает итоги кредита для всех банков таблицы
func CompareBanksHandler(cfg *config.Config, rates banks.RateTable, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return instrument(ctx, tracer, ToolCompareBanks, func(ctx context.Context, span trace.Span) (interface{}, error) {
			loan, _, err := resolveLoan(cfg, rates, params, span, false)
			if err != nil {
				return nil, err
			}

			if err := checkRates(cfg, rates); err != nil {
				return nil, err
			}

			quotes := calculations.CompareBanks(loan, rates)
			resp := &CompareResponse{Quotes: quotes}
			if len(quotes) > 0 {
				resp.Cheapest = quotes[0].Bank
				resp.Savings = utils.RoundUnit(quotes[len(quotes)-1].TotalInterest - quotes[0].TotalInterest)
			}
			span.SetAttributes(attribute.String("cheapest_bank", resp.Cheapest))

			return resp, nil
		})
	}
}

// ReinforcementImpactHandler показывает экономию от ежегодных досрочных взносов
func ReinforcementImpactHandler(cfg *config.Config, rates banks.RateTable, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return instrument(ctx, tracer, ToolReinforcementImpact, func(ctx context.Context, span trace.Span) (interface{}, error) {
			loan, rate, err := resolveLoan(cfg, rates, params, span, true)
			if err != nil {
				return nil, err
			}

			impact := calculations.ReinforcementImpact(loan)
			span.SetAttributes(
				attribute.Float64("interest_saved", utils.RoundUnit(impact.InterestSaved)),
				attribute.Int("months_saved", impact.MonthsSaved),
			)

			return &ImpactResponse{
				Bank:       rate.Bank,
				AnnualRate: rate.AnnualRate,
				Impact:     impact,
				Summary: ImpactSummary{
					InterestWith:    formatAmount(impact.WithReinforcement.TotalInterest),
					InterestWithout: formatAmount(impact.WithoutReinforcement.TotalInterest),
					InterestSaved:   formatAmount(impact.InterestSaved),
				},
			}, nil
		})
	}
}

// BankRatesHandler возвращает таблицу ставок
func BankRatesHandler(cfg *config.Config, rates banks.RateTable, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return instrument(ctx, tracer, ToolBankRates, func(ctx context.Context, span trace.Span) (interface{}, error) {
			list := rates.List()
			span.SetAttributes(attribute.Int("banks", len(list)))
			return &BankRatesResponse{DefaultBank: cfg.DefaultBank, Rates: list}, nil
		})
	}
}

// instrument оборачивает вызов инструмента спаном и метриками
func instrument(ctx context.Context, tracer trace.Tracer, toolName string,
	fn func(ctx context.Context, span trace.Span) (interface{}, error)) (interface{}, error) {

	ctx, span := tracer.Start(ctx, toolName)
	defer span.End()

	metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

	result, err := fn(ctx, span)
	if err != nil {
		errorType := "calculation"
		status := "error"
		if errors.Is(err, ErrInvalidParameter) || errors.Is(err, ErrValidation) || errors.Is(err, ErrUnknownBank) {
			errorType = "validation"
			status = "validation_error"
		}
		span.RecordError(err)
		span.SetAttributes(attribute.String("error", status))
		metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
		metrics.CalculationErrors.WithLabelValues(toolName, errorType).Inc()
		metrics.APICalls.WithLabelValues("mcp", toolName, "error").Inc()
		return nil, err
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()

	return result, nil
}

// resolveLoan извлекает и проверяет параметры кредита. Если withBank,
// ставка берется из таблицы по параметру bank (или банку по умолчанию).
func resolveLoan(cfg *config.Config, rates banks.RateTable, params map[string]interface{},
	span trace.Span, withBank bool) (calculations.LoanParameters, banks.Rate, error) {

	var loan calculations.LoanParameters
	var rate banks.Rate

	in, err := parseLoanInput(params)
	if err != nil {
		return loan, rate, err
	}
	if in.Bank == "" {
		in.Bank = cfg.DefaultBank
	}

	span.SetAttributes(
		attribute.Float64("vehicle_price", in.VehiclePrice),
		attribute.Float64("down_payment", in.DownPayment),
		attribute.Int("term_months", in.TermMonths),
		attribute.Float64("annual_reinforcement", in.AnnualReinforcement),
	)

	if err := validators.ValidateLoanInput(cfg, in); err != nil {
		return loan, rate, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	loan = calculations.LoanParameters{
		VehiclePrice:        in.VehiclePrice,
		DownPayment:         in.DownPayment,
		TermMonths:          in.TermMonths,
		AnnualReinforcement: in.AnnualReinforcement,
	}

	if !withBank {
		return loan, rate, nil
	}

	annualRate, err := rates.Lookup(in.Bank)
	if err != nil {
		return loan, rate, err
	}
	if err := validators.CheckRate(cfg, annualRate); err != nil {
		return loan, rate, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	span.SetAttributes(
		attribute.String("bank", in.Bank),
		attribute.Float64("annual_rate", annualRate),
	)

	loan.AnnualRate = annualRate
	rate = banks.Rate{Bank: in.Bank, AnnualRate: annualRate}
	return loan, rate, nil
}

// checkRates проверяет, что каждая ставка таблицы укладывается в MAX_RATE
func checkRates(cfg *config.Config, rates banks.RateTable) error {
	for _, r := range rates.List() {
		if err := validators.CheckRate(cfg, r.AnnualRate); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrValidation, r.Bank, err)
		}
	}
	return nil
}

func parseLoanInput(params map[string]interface{}) (validators.LoanInput, error) {
	var in validators.LoanInput
	var err error

	if in.VehiclePrice, err = floatParam(params, "vehicle_price", true); err != nil {
		return in, err
	}
	if in.DownPayment, err = floatParam(params, "down_payment", false); err != nil {
		return in, err
	}
	if in.AnnualReinforcement, err = floatParam(params, "annual_reinforcement", false); err != nil {
		return in, err
	}

	monthsFloat, err := floatParam(params, "term_months", true)
	if err != nil {
		return in, err
	}
	if monthsFloat != math.Trunc(monthsFloat) {
		return in, fmt.Errorf("%w: term_months must be a whole number", ErrInvalidParameter)
	}
	in.TermMonths = int(monthsFloat)

	if raw, ok := params["bank"]; ok && raw != nil {
		bank, ok := raw.(string)
		if !ok {
			return in, fmt.Errorf("%w: bank", ErrInvalidParameter)
		}
		in.Bank = bank
	}

	return in, nil
}

func floatParam(params map[string]interface{}, name string, required bool) (float64, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		if required {
			return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
		}
		return 0, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
	}
}
