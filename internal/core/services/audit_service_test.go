package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo *MockAuditLogRepository
	service       portssvc.AuditSvcFacade
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewAuditService(suite.mockAuditRepo)
}

func (suite *AuditServiceTestSuite) TestRecord_Success() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(e domain.AuditLog) bool {
		return e.ExpenseID == expenseID &&
			e.PerformedBy == actorID &&
			e.Action == domain.ActionApproved &&
			e.AuditLogID != ""
	})).Return(nil).Once()

	entry, err := suite.service.Record(ctx, expenseID, actorID, domain.ActionApproved)

	suite.Require().NoError(err)
	suite.WithinDuration(time.Now().UTC(), entry.Timestamp, time.Second)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestRecord_MissingActor() {
	_, err := suite.service.Record(context.Background(), uuid.NewString(), "", domain.ActionCreated)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "SaveAuditLog")
}

func (suite *AuditServiceTestSuite) TestListForExpense_FiltersByExpense() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	entries := []domain.AuditLog{
		{AuditLogID: uuid.NewString(), ExpenseID: expenseID, Action: domain.ActionPaid},
		{AuditLogID: uuid.NewString(), ExpenseID: expenseID, Action: domain.ActionCreated},
	}

	suite.mockAuditRepo.On("ListAuditLogs", ctx, mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == expenseID
	})).Return(entries, nil).Once()

	got, err := suite.service.ListForExpense(ctx, expenseID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func (suite *AuditServiceTestSuite) TestListAll_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockAuditRepo.On("ListAuditLogs", ctx, (*string)(nil)).Return([]domain.AuditLog(nil), nil).Once()

	got, err := suite.service.ListAll(ctx, nil)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
