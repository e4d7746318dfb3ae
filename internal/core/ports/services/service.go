package services

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Balance       BalanceSvc
	Transactions  TransactionRecorderSvc
	Transfer      TransferSvc
	Reimbursement ReimbursementSvcFacade
	Project       ProjectSvcFacade
	User          UserSvcFacade
	Report        ReportSvc
	TokenService  TokenSvcFacade
}

// ClaimNotifier delivers claim status events to whoever is listening.
type ClaimNotifier interface {
	PublishClaimEvent(ctx context.Context, event domain.ClaimEvent) error
}
