package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/events"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with all services initialized.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo),
		Category: NewCategoryService(repos.CategoryRepo,
			WithStrictParentType(cfg.CategoryStrictParentType)),
		Person:     NewPersonService(repos.PersonRepo),
		CostCenter: NewCostCenterService(repos.CostCenterRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo,
			WithPersonReader(repos.PersonRepo),
			WithCostCenterReader(repos.CostCenterRepo),
			WithTransactionEventPublisher(publisher)),
		Transfer: NewTransferService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo,
			WithTransferEventPublisher(publisher)),
		Dashboard: NewDashboardService(repos.AggregationRepo,
			WithLocation(cfg.Location())),
		Report:      NewReportService(repos.TransactionRepo),
		Identity:    NewIdentityService(repos.IdentityRepo, cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
