package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/core/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReimbursementServiceTestSuite struct {
	suite.Suite
	repo     *MockReimbursementRepository
	notifier *MockClaimNotifier
	service  portssvc.ReimbursementSvcFacade
	now      time.Time
	admin    domain.Principal
	budi     domain.Principal
}

func (suite *ReimbursementServiceTestSuite) SetupTest() {
	suite.repo = new(MockReimbursementRepository)
	suite.notifier = new(MockClaimNotifier)
	suite.now = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewReimbursementService(suite.repo,
		services.WithClaimNotifier(suite.notifier),
		services.WithReimbursementClock(func() time.Time { return suite.now }),
	)
	suite.admin = domain.Principal{UserName: "Admin", IsAdmin: true}
	suite.budi = domain.Principal{UserName: "Budi"}
}

func (suite *ReimbursementServiceTestSuite) claim(id int64, status domain.ClaimStatus) *domain.ReimbursementClaim {
	return &domain.ReimbursementClaim{ClaimID: id, UserName: "Budi", Amount: 75000, Status: status}
}

func (suite *ReimbursementServiceTestSuite) TestSubmit_Pending() {
	ctx := context.Background()
	suite.repo.On("SaveClaim", ctx, mock.MatchedBy(func(c domain.ReimbursementClaim) bool {
		return c.Status == domain.ClaimPending && c.UserName == "Budi" && c.Amount == 75000 &&
			c.Category == "Transport" && c.Date.Equal(time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC))
	})).Return(int64(12), nil).Once()

	id, err := suite.service.Submit(ctx, suite.budi, dto.SubmitClaimRequest{
		Date: "2025-03-30", Category: "Transport", Description: "Taksi ke klien", Amount: "75.000",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(12), id)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestSubmit_Validation() {
	cases := map[string]dto.SubmitClaimRequest{
		"no date":        {Category: "c", Description: "d", Amount: "1"},
		"no category":    {Date: "2025-03-30", Description: "d", Amount: "1"},
		"no description": {Date: "2025-03-30", Category: "c", Amount: "1"},
		"zero amount":    {Date: "2025-03-30", Category: "c", Description: "d", Amount: "0"},
		"bad amount":     {Date: "2025-03-30", Category: "c", Description: "d", Amount: "lima"},
	}
	for name, req := range cases {
		_, err := suite.service.Submit(context.Background(), suite.budi, req)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.repo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestApprove_Pending() {
	ctx := context.Background()
	suite.repo.On("FindClaimByID", ctx, int64(1)).Return(suite.claim(1, domain.ClaimPending), nil).Once()
	suite.repo.On("TransitionClaim", ctx, domain.ClaimTransition{
		ClaimID: 1, From: domain.ClaimPending, To: domain.ClaimApproved,
		Notes: strPtr("ok"), ProcessedBy: "Admin", ProcessedAt: suite.now,
	}).Return(nil).Once()
	suite.notifier.On("PublishClaimEvent", ctx, domain.ClaimEvent{
		ClaimID: 1, UserName: "Budi", Amount: 75000, Status: domain.ClaimApproved, ProcessedBy: "Admin", OccurredAt: suite.now,
	}).Return(nil).Once()

	err := suite.service.Approve(ctx, suite.admin, 1, strPtr("  ok "))

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestApprove_AlreadyDecided() {
	for _, status := range []domain.ClaimStatus{domain.ClaimApproved, domain.ClaimRejected, domain.ClaimPaid} {
		ctx := context.Background()
		suite.repo.On("FindClaimByID", ctx, int64(2)).Return(suite.claim(2, status), nil).Once()

		err := suite.service.Approve(ctx, suite.admin, 2, nil)

		suite.ErrorIs(err, apperrors.ErrInvalidState, string(status))
	}
	suite.repo.AssertNotCalled(suite.T(), "TransitionClaim", mock.Anything, mock.Anything)
	suite.notifier.AssertNotCalled(suite.T(), "PublishClaimEvent", mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestReject_RequiresNotes() {
	err := suite.service.Reject(context.Background(), suite.admin, 3, "   ")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "FindClaimByID", mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestReject_Pending() {
	ctx := context.Background()
	suite.repo.On("FindClaimByID", ctx, int64(3)).Return(suite.claim(3, domain.ClaimPending), nil).Once()
	suite.repo.On("TransitionClaim", ctx, mock.MatchedBy(func(t domain.ClaimTransition) bool {
		return t.To == domain.ClaimRejected && t.Notes != nil && *t.Notes == "Tanpa nota"
	})).Return(nil).Once()
	suite.notifier.On("PublishClaimEvent", ctx, mock.Anything).Return(nil).Once()

	suite.NoError(suite.service.Reject(ctx, suite.admin, 3, "Tanpa nota"))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestMarkPaid_OnlyFromApproved() {
	ctx := context.Background()
	suite.repo.On("FindClaimByID", ctx, int64(4)).Return(suite.claim(4, domain.ClaimPending), nil).Once()

	err := suite.service.MarkPaid(ctx, suite.admin, 4)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *ReimbursementServiceTestSuite) TestMarkPaid_TwiceFailsSecondTime() {
	ctx := context.Background()
	suite.repo.On("FindClaimByID", ctx, int64(5)).Return(suite.claim(5, domain.ClaimApproved), nil).Once()
	suite.repo.On("TransitionClaim", ctx, mock.MatchedBy(func(t domain.ClaimTransition) bool {
		return t.From == domain.ClaimApproved && t.To == domain.ClaimPaid && t.Notes == nil
	})).Return(nil).Once()
	suite.notifier.On("PublishClaimEvent", ctx, mock.Anything).Return(nil).Once()
	suite.repo.On("FindClaimByID", ctx, int64(5)).Return(suite.claim(5, domain.ClaimPaid), nil).Once()

	suite.Require().NoError(suite.service.MarkPaid(ctx, suite.admin, 5))
	err := suite.service.MarkPaid(ctx, suite.admin, 5)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestMarkPaid_LostRace() {
	ctx := context.Background()
	suite.repo.On("FindClaimByID", ctx, int64(6)).Return(suite.claim(6, domain.ClaimApproved), nil).Once()
	suite.repo.On("TransitionClaim", ctx, mock.Anything).Return(apperrors.ErrInvalidState).Once()

	err := suite.service.MarkPaid(ctx, suite.admin, 6)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.notifier.AssertNotCalled(suite.T(), "PublishClaimEvent", mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestTransitions_AdminOnly() {
	ctx := context.Background()
	suite.ErrorIs(suite.service.Approve(ctx, suite.budi, 1, nil), apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.Reject(ctx, suite.budi, 1, "no"), apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.MarkPaid(ctx, suite.budi, 1), apperrors.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "FindClaimByID", mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestTransition_NotFound() {
	ctx := context.Background()
	suite.repo.On("FindClaimByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.Approve(ctx, suite.admin, 99, nil), apperrors.ErrNotFound)
}

func (suite *ReimbursementServiceTestSuite) TestPublishFailureDoesNotFailTransition() {
	ctx := context.Background()
	suite.repo.On("FindClaimByID", ctx, int64(7)).Return(suite.claim(7, domain.ClaimPending), nil).Once()
	suite.repo.On("TransitionClaim", ctx, mock.Anything).Return(nil).Once()
	suite.notifier.On("PublishClaimEvent", ctx, mock.Anything).Return(assert.AnError).Once()

	suite.NoError(suite.service.Approve(ctx, suite.admin, 7, nil))
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestListAndStatsScope() {
	ctx := context.Background()
	suite.repo.On("ListClaims", ctx, strPtr("Budi")).Return([]domain.ReimbursementClaim{*suite.claim(1, domain.ClaimPending)}, nil).Once()
	suite.repo.On("ListClaims", ctx, (*string)(nil)).Return([]domain.ReimbursementClaim{}, nil).Once()
	suite.repo.On("ClaimStats", ctx, strPtr("Budi")).Return(domain.ClaimStats{PendingCount: 1, PendingTotal: 75000}, nil).Once()

	claims, err := suite.service.ListClaims(ctx, suite.budi, nil)
	suite.Require().NoError(err)
	suite.Len(claims, 1)

	_, err = suite.service.ListClaims(ctx, suite.admin, strPtr(""))
	suite.Require().NoError(err)

	stats, err := suite.service.Stats(ctx, suite.admin, strPtr("Budi"))
	suite.Require().NoError(err)
	suite.Equal(int64(75000), stats.PendingTotal)

	_, err = suite.service.ListClaims(ctx, suite.budi, strPtr("Ani"))
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.repo.AssertExpectations(suite.T())
}

func TestReimbursementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReimbursementServiceTestSuite))
}

func TestReimbursement_NoNotifierConfigured(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReimbursementRepository)
	svc := services.NewReimbursementService(repo)

	repo.On("FindClaimByID", ctx, int64(1)).Return(&domain.ReimbursementClaim{ClaimID: 1, Status: domain.ClaimApproved}, nil).Once()
	repo.On("TransitionClaim", ctx, mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.MarkPaid(ctx, domain.Principal{UserName: "Admin", IsAdmin: true}, 1))
	repo.AssertExpectations(t)
}
