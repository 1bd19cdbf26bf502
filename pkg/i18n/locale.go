// Package i18n concentra as decisões dependentes de idioma do painel.
// Toda formatação recebe o locale explicitamente; nenhuma rotina consulta o
// locale ambiente do processo, já que a SPA troca de idioma em runtime.
package i18n

import "time"

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHebrew  Locale = "he"
)

// DefaultLocale é usado quando o parâmetro de locale é ausente ou desconhecido.
const DefaultLocale = LocaleEnglish

// Parse normaliza uma tag de locale vinda da query string.
func Parse(tag string) Locale {
	switch tag {
	case string(LocaleHebrew):
		return LocaleHebrew
	case string(LocaleEnglish):
		return LocaleEnglish
	}
	return DefaultLocale
}

var monthNamesEnglish = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthNamesHebrew = [12]string{
	"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
	"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
}

// MonthName retorna o nome do mês no idioma do locale.
func (l Locale) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}

	if l == LocaleHebrew {
		return monthNamesHebrew[m-1]
	}
	return monthNamesEnglish[m-1]
}

// MonthYearLabel monta o rótulo "Mês Ano" usado nos agrupamentos temporais.
func (l Locale) MonthYearLabel(t time.Time) string {
	return l.MonthName(t.Month()) + " " + t.Format("2006")
}

// IsWeekend informa se o dia é fim de semana no calendário do locale:
// sexta/sábado para hebraico, sábado/domingo para inglês.
func (l Locale) IsWeekend(d time.Weekday) bool {
	if l == LocaleHebrew {
		return d == time.Friday || d == time.Saturday
	}
	return d == time.Saturday || d == time.Sunday
}

// Direction retorna a direção de texto ("ltr" ou "rtl") do locale.
func (l Locale) Direction() string {
	if l == LocaleHebrew {
		return "rtl"
	}
	return "ltr"
}

// TodayLabel é o rótulo do marcador de "hoje" no gráfico de Gantt.
func (l Locale) TodayLabel() string {
	if l == LocaleHebrew {
		return "היום"
	}
	return "Today"
}
