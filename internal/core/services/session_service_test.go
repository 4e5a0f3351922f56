package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo *MockSessionRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.SessionSvcFacade
	ttl             time.Duration
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.ttl = 24 * time.Hour
	identity := services.NewIdentityService(suite.mockUserRepo)
	suite.service = services.NewSessionService(suite.mockSessionRepo, identity, suite.ttl)
}

func (suite *SessionServiceTestSuite) TestSerialize_StoresRandomToken() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}
	suite.mockSessionRepo.On("CreateSession", ctx, mock.AnythingOfType("string"), user.UserID, suite.ttl).Return(nil).Twice()

	first, err := suite.service.Serialize(ctx, user)
	suite.Require().NoError(err)
	second, err := suite.service.Serialize(ctx, user)
	suite.Require().NoError(err)

	suite.Len(first, 64)
	suite.NotEqual(first, second)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestSerialize_StoreError() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}
	suite.mockSessionRepo.On("CreateSession", ctx, mock.Anything, user.UserID, suite.ttl).Return(assert.AnError).Once()

	token, err := suite.service.Serialize(ctx, user)
	suite.Empty(token)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *SessionServiceTestSuite) TestDeserialize_ActiveUser() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), IsActive: true}
	suite.mockSessionRepo.On("FindSessionUserID", ctx, "tok").Return(user.UserID, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.Deserialize(ctx, "tok")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "DeleteSession", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestDeserialize_UnknownToken() {
	ctx := context.Background()
	suite.mockSessionRepo.On("FindSessionUserID", ctx, "missing").Return("", apperrors.ErrNotFound).Once()

	got, err := suite.service.Deserialize(ctx, "missing")
	suite.NoError(err)
	suite.Nil(got)
}

func (suite *SessionServiceTestSuite) TestDeserialize_DeletedUserDropsSession() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockSessionRepo.On("FindSessionUserID", ctx, "tok").Return(userID, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSessionRepo.On("DeleteSession", ctx, "tok").Return(nil).Once()

	got, err := suite.service.Deserialize(ctx, "tok")

	suite.NoError(err)
	suite.Nil(got)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestDeserialize_InactiveUserDropsSession() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), IsActive: false}
	suite.mockSessionRepo.On("FindSessionUserID", ctx, "tok").Return(user.UserID, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockSessionRepo.On("DeleteSession", ctx, "tok").Return(nil).Once()

	got, err := suite.service.Deserialize(ctx, "tok")

	suite.NoError(err)
	suite.Nil(got)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestDeserialize_StoreError() {
	ctx := context.Background()
	suite.mockSessionRepo.On("FindSessionUserID", ctx, "tok").Return("", assert.AnError).Once()

	got, err := suite.service.Deserialize(ctx, "tok")
	suite.Nil(got)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *SessionServiceTestSuite) TestInvalidate() {
	ctx := context.Background()
	suite.mockSessionRepo.On("DeleteSession", ctx, "tok").Return(nil).Once()

	suite.NoError(suite.service.Invalidate(ctx, "tok"))
	suite.NoError(suite.service.Invalidate(ctx, ""))
	suite.mockSessionRepo.AssertNumberOfCalls(suite.T(), "DeleteSession", 1)
}

func (suite *SessionServiceTestSuite) TestTTL() {
	suite.Equal(24*time.Hour, suite.service.TTL())
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
