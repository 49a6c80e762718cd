package mapping

import (
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		CurrencyCode: d.CurrencyCode,
		Rate:         d.Rate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		CurrencyCode: m.CurrencyCode,
		Rate:         m.Rate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencyRateSlice converts a slice of model CurrencyRates to domain CurrencyRates
func ToDomainCurrencyRateSlice(ms []models.CurrencyRate) []domain.CurrencyRate {
	ds := make([]domain.CurrencyRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyRate(m)
	}
	return ds
}
