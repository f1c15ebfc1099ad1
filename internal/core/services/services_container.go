package services

import (
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	// Payment service first: the invoice service delegates its payment
	// endpoint to it.
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo, repos.ClientRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo, container.Payment)

	container.Communication = NewCommunicationService(repos.CommunicationRepo, repos.ClientRepo)
	container.Relance = NewRelanceService(
		repos.RelanceTemplateRepo,
		repos.RelanceRuleRepo,
		repos.InvoiceRepo,
		repos.ClientRepo,
		repos.CommunicationRepo,
	)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
