package services

import (
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// notifier may be nil, in which case claim events are not published.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.ClaimNotifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.ProjectRepo, cfg.DefaultAdminUser, cfg.DefaultAdminPIN)
	container.Project = NewProjectService(repos.ProjectRepo, repos.LedgerRepo)
	container.Balance = NewBalanceService(repos.LedgerRepo, repos.ProjectRepo)
	container.Transactions = NewTransactionService(repos.LedgerRepo, repos.ProjectRepo)
	container.Transfer = NewTransferService(repos.LedgerRepo, repos.ProjectRepo, repos.UserRepo)

	reimbursementOpts := []ReimbursementServiceOption{}
	if notifier != nil {
		reimbursementOpts = append(reimbursementOpts, WithClaimNotifier(notifier))
	}
	container.Reimbursement = NewReimbursementService(repos.ReimbursementRepo, reimbursementOpts...)

	container.Report = NewReportService(repos.UserRepo, repos.LedgerRepo, cfg.ReportConcurrency)
	container.TokenService = NewTokenService(cfg, container.User, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade          = (*userService)(nil)
	_ portssvc.TransferSvc            = (*transferService)(nil)
	_ portssvc.ReimbursementSvcFacade = (*reimbursementService)(nil)
)
