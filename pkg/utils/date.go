package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateLenient aplica a política de leniência do painel: data ausente ou
// mal formada vira nil em vez de erro, e o registro é tratado como sem data.
func ParseDateLenient(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil
	}

	return &date
}

// StartOfDay normaliza o instante para meia-noite, preservando o fuso.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween conta dias inteiros entre duas datas já normalizadas.
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}

// SortableDate devolve a data ou o epoch quando ausente, para que registros
// sem data ordenem no fim de uma ordenação ascendente sem quebrar comparações.
func SortableDate(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
