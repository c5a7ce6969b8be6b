// Package banks хранит таблицу годовых ставок по банкам.
// Таблица является внешней конфигурацией: движок расчета получает уже
// выбранную ставку.
package banks

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownBank возвращается, если банк отсутствует в таблице
var ErrUnknownBank = errors.New("unknown bank")

// DefaultBank банк, выбранный по умолчанию
const DefaultBank = "BancoUENO"

// Rate ставка одного банка
type Rate struct {
	Bank       string  `json:"bank"`
	AnnualRate float64 `json:"annual_rate"`
}

// RateTable отображает идентификатор банка в годовую ставку (доля, 0.11 = 11%)
type RateTable map[string]float64

// DefaultRates возвращает стандартную таблицу ставок
func DefaultRates() RateTable {
	return RateTable{
		"BancoUENO":        0.110,
		"BancoITAU":        0.125,
		"BancoCONTINENTAL": 0.140,
		"BancoATLAS":       0.145,
		"BancoFAMILIAR":    0.149,
	}
}

// ParseRates разбирает строку вида "BancoUENO=0.11,BancoITAU=0.125".
// Пустая строка дает пустую таблицу.
func ParseRates(raw string) (RateTable, error) {
	table := RateTable{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		bank, value, ok := strings.Cut(item, "=")
		bank = strings.TrimSpace(bank)
		if !ok || bank == "" {
			return nil, fmt.Errorf("invalid bank rate entry %q: expected BANK=RATE", item)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", bank, err)
		}
		if rate < 0 {
			return nil, fmt.Errorf("invalid rate for %s: must be non-negative", bank)
		}
		table[bank] = rate
	}
	return table, nil
}

// Load возвращает стандартную таблицу, дополненную или переопределенную
// записями из overrides
func Load(overrides string) (RateTable, error) {
	table := DefaultRates()
	extra, err := ParseRates(overrides)
	if err != nil {
		return nil, err
	}
	for bank, rate := range extra {
		table[bank] = rate
	}
	return table, nil
}

// Lookup возвращает годовую ставку банка
func (t RateTable) Lookup(bank string) (float64, error) {
	rate, ok := t[bank]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}
	return rate, nil
}

// List возвращает ставки, отсортированные по идентификатору банка
func (t RateTable) List() []Rate {
	rates := make([]Rate, 0, len(t))
	for bank, rate := range t {
		rates = append(rates, Rate{Bank: bank, AnnualRate: rate})
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Bank < rates[j].Bank })
	return rates
}
