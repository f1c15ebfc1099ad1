package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool, clientRepo)
	paymentRepo := newPgxPaymentRepository(dbPool, clientRepo, invoiceRepo)
	relanceTemplateRepo := newPgxRelanceTemplateRepository(dbPool)
	relanceRuleRepo := newPgxRelanceRuleRepository(dbPool)
	communicationRepo := newPgxCommunicationRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:          clientRepo,
		InvoiceRepo:         invoiceRepo,
		PaymentRepo:         paymentRepo,
		RelanceTemplateRepo: relanceTemplateRepo,
		RelanceRuleRepo:     relanceRuleRepo,
		CommunicationRepo:   communicationRepo,
		UserRepo:            userRepo,
		ReportingRepo:       reportingRepo,
	}
}
