package services

import (
	portsrepo "github.com/SscSPs/tax_liability_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_liability_app/internal/core/ports/services"
	"github.com/SscSPs/tax_liability_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Tax = NewTaxService(
		repos,
		WithTaxPolicy(cfg.TaxPolicy),
	)

	return container
}
