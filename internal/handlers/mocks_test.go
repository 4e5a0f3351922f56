package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) ResolveOAuth(ctx context.Context, profile domain.OAuthProfile) (*domain.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.IdentitySvcFacade = (*MockIdentityService)(nil)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Serialize(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *MockSessionService) Deserialize(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionService) Invalidate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockSessionService) TTL() time.Duration {
	return 24 * time.Hour
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock BookService ---
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookService) GetBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) CreateBook(ctx context.Context, req dto.BookRequest) (*domain.Book, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) UpdateBook(ctx context.Context, bookID string, req dto.BookRequest) (*domain.Book, error) {
	args := m.Called(ctx, bookID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) DeleteBook(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

var _ portssvc.BookSvcFacade = (*MockBookService)(nil)

// --- Mock ReviewService ---
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewService) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewService) CreateReview(ctx context.Context, userID string, req dto.ReviewRequest) (*domain.Review, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewService) AuthorizeMutation(ctx context.Context, reviewID, userID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewService) UpdateReview(ctx context.Context, reviewID, userID string, req dto.ReviewRequest) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID, userID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewService) MarkHelpful(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

var _ portssvc.ReviewSvcFacade = (*MockReviewService)(nil)

// --- Mock OAuth ---
type MockOAuthState struct {
	mock.Mock
}

func (m *MockOAuthState) Issue(provider domain.AuthProvider) (string, string, error) {
	args := m.Called(provider)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockOAuthState) Verify(provider domain.AuthProvider, state, nonce string) error {
	args := m.Called(provider, state, nonce)
	return args.Error(0)
}

type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) Name() domain.AuthProvider {
	return domain.ProviderGitHub
}
func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	return "https://github.example.com/authorize?state=" + state
}
func (m *MockOAuthProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockOAuthProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthProfile), args.Error(1)
}

var (
	_ portssvc.OAuthStateSvc = (*MockOAuthState)(nil)
	_ portssvc.OAuthProvider = (*MockOAuthProvider)(nil)
)
