package mapping

import (
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/SscSPs/tax_liability_app/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		Name:          m.Name,
		MonthlyIncome: m.MonthlyIncome,
		Balance:       m.Balance,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
