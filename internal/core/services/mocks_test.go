package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) LinkProviderID(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string, at time.Time) (*domain.User, error) {
	args := m.Called(ctx, userID, provider, providerUserID, at)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- MockBookRepository ---
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) FindBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	var books []domain.Book
	if args.Get(0) != nil {
		books = args.Get(0).([]domain.Book)
	}
	return books, args.Error(1)
}

func (m *MockBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	var book *domain.Book
	if args.Get(0) != nil {
		book = args.Get(0).(*domain.Book)
	}
	return book, args.Error(1)
}

func (m *MockBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) UpdateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	args := m.Called(ctx, book)
	var updated *domain.Book
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Book)
	}
	return updated, args.Error(1)
}

func (m *MockBookRepository) DeleteBook(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	var book *domain.Book
	if args.Get(0) != nil {
		book = args.Get(0).(*domain.Book)
	}
	return book, args.Error(1)
}

// --- MockReviewRepository ---
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindReviews(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	return reviews, args.Error(1)
}

func (m *MockReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	var review *domain.Review
	if args.Get(0) != nil {
		review = args.Get(0).(*domain.Review)
	}
	return review, args.Error(1)
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, review domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, review domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	var review *domain.Review
	if args.Get(0) != nil {
		review = args.Get(0).(*domain.Review)
	}
	return review, args.Error(1)
}

func (m *MockReviewRepository) IncrementHelpfulVotes(ctx context.Context, reviewID string) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, token, userID string, ttl time.Duration) error {
	args := m.Called(ctx, token, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionUserID(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func stringPtr(s string) *string {
	return &s
}
