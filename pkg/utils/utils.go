package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol префикс денежных сумм в гуарани
const CurrencySymbol = "Gs."

// RoundUnit округляет сумму до целой единицы валюты (у гуарани нет дробной части)
func RoundUnit(value float64) float64 {
	return math.Round(value)
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FormatGs форматирует сумму как "Gs. 65.000.000": без дробной части,
// разряды разделены точкой. Нечисловые значения выводятся как "Gs. -".
func FormatGs(value float64) string {
	if !IsFinite(value) {
		return CurrencySymbol + " -"
	}

	d := decimal.NewFromFloat(value).Round(0)
	digits := d.Abs().String()

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}

	return CurrencySymbol + " " + b.String()
}
