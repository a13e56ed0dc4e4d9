package utils

import (
	"fmt"
	"time"
)

// PeriodLayout é o formato dos períodos mensais (YYYY-MM)
const PeriodLayout = "2006-01"

// ParsePeriod valida e converte um período "YYYY-MM" para o primeiro dia do mês
func ParsePeriod(period string) (time.Time, error) {
	if len(period) != len(PeriodLayout) {
		return time.Time{}, fmt.Errorf("período inválido %q: use o formato YYYY-MM", period)
	}

	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q: %w", period, err)
	}

	return t, nil
}

func IsValidPeriod(period string) bool {
	_, err := ParsePeriod(period)
	return err == nil
}

// ShiftPeriod desloca um período válido em n meses (negativo volta no tempo)
func ShiftPeriod(period string, months int) (string, error) {
	t, err := ParsePeriod(period)
	if err != nil {
		return "", err
	}

	return t.AddDate(0, months, 0).Format(PeriodLayout), nil
}

// PeriodRange lista os períodos de start até end, inclusive
func PeriodRange(start, end string) ([]string, error) {
	startDate, err := ParsePeriod(start)
	if err != nil {
		return nil, err
	}

	endDate, err := ParsePeriod(end)
	if err != nil {
		return nil, err
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("período final %s anterior ao inicial %s", end, start)
	}

	periods := make([]string, 0)
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 1, 0) {
		periods = append(periods, current.Format(PeriodLayout))
	}

	return periods, nil
}

// PeriodBounds retorna o primeiro e o último dia do mês do período
func PeriodBounds(period string) (time.Time, time.Time, error) {
	first, err := ParsePeriod(period)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return first, first.AddDate(0, 1, -1), nil
}
