package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respondJSON serializa a resposta de sucesso; falha de serialização vira log,
// o status já foi enviado.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// localeFromRequest lê o parâmetro de localidade; valor ausente ou
// desconhecido cai no inglês.
func localeFromRequest(r *http.Request) i18n.Locale {
	return i18n.Parse(r.URL.Query().Get("locale"))
}

// criteriaFromRequest monta os critérios de filtro do painel a partir da
// query string. Parâmetro ausente significa "todos".
func criteriaFromRequest(r *http.Request) domain.FilterCriteria {
	query := r.URL.Query()
	criteria := domain.FilterCriteria{}

	if value := query.Get("project_id"); value != "" {
		criteria.ProjectID = &value
	}
	if value := query.Get("manager_id"); value != "" {
		if managerID, err := strconv.Atoi(value); err == nil {
			criteria.ManagerID = &managerID
		}
	}
	if value := query.Get("customer_id"); value != "" {
		criteria.CustomerID = &value
	}
	if value := query.Get("status_id"); value != "" {
		criteria.StatusID = &value
	}
	if value := query.Get("country_id"); value != "" {
		criteria.CountryID = &value
	}
	if value := query.Get("payment_status"); value != "" {
		status := domain.PaymentStatus(value)
		criteria.PaymentStatus = &status
	}
	if value := query.Get("has_payment"); value != "" {
		if hasPayment, err := strconv.ParseBool(value); err == nil {
			criteria.HasPayment = &hasPayment
		}
	}
	if value := query.Get("year"); value != "" {
		if year, err := strconv.Atoi(value); err == nil {
			criteria.Year = &year
		}
	}
	if value := query.Get("month"); value != "" {
		if monthNumber, err := strconv.Atoi(value); err == nil && monthNumber >= 1 && monthNumber <= 12 {
			month := time.Month(monthNumber)
			criteria.Month = &month
		}
	}
	criteria.SearchText = query.Get("search")

	return criteria
}
