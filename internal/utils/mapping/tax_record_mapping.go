package mapping

import (
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/SscSPs/tax_liability_app/internal/models"
)

// ToModelTaxRecord converts a domain TaxRecord to a model TaxRecord
func ToModelTaxRecord(d domain.TaxRecord) models.TaxRecord {
	return models.TaxRecord{
		TaxRecordID:   d.TaxRecordID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		FinancialYear: d.Period,
		TotalIncome:   d.TotalIncome,
		Deductions:    d.Deductions,
		TaxableIncome: d.TaxableIncome,
		TaxLiability:  d.TaxLiability,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTaxRecord converts a model TaxRecord to a domain TaxRecord
func ToDomainTaxRecord(m models.TaxRecord) domain.TaxRecord {
	return domain.TaxRecord{
		TaxRecordID:   m.TaxRecordID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Period:        m.FinancialYear,
		TotalIncome:   m.TotalIncome,
		Deductions:    m.Deductions,
		TaxableIncome: m.TaxableIncome,
		TaxLiability:  m.TaxLiability,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTaxRecordSlice converts a slice of model TaxRecords to a slice of domain TaxRecords
func ToDomainTaxRecordSlice(ms []models.TaxRecord) []domain.TaxRecord {
	ds := make([]domain.TaxRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTaxRecord(m)
	}
	return ds
}
