package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/internal/usecase"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/auth"
)

// Mock Repositories

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Insert(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepo) FetchAll(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepo) FetchRecent(ctx context.Context, limit int) ([]domain.ContactSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSummary), args.Error(1)
}

func (m *MockContactRepo) Search(ctx context.Context, query string, limit int) ([]domain.ContactSummary, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSummary), args.Error(1)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContactRepo) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockContactRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepo) FetchTimestamps(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Insert(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepo) FetchAll(ctx context.Context) ([]domain.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageRepo) SetRead(ctx context.Context, id string, read bool) error {
	return m.Called(ctx, id, read).Error(0)
}

func (m *MockMessageRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageRepo) FetchStats(ctx context.Context) ([]domain.MessageStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MessageStat), args.Error(1)
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

const testID = "7f1d6f0a-9c3e-4b5d-8a21-0f4c8e3b9d12"

func TestContactSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject missing fields", func(t *testing.T) {
		uc := usecase.NewContactUsecase(new(MockContactRepo))
		_, err := uc.Submit(ctx, &domain.ContactRequest{Nom: "Jean", CodePays: "  ", Numero: "600000000"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
	})

	t.Run("Should append name suffix and derive full number", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Contact")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Contact)
			c.ID = testID
			c.Timestamp = time.Now()
		})

		uc := usecase.NewContactUsecase(mockRepo)
		contact, err := uc.Submit(ctx, &domain.ContactRequest{Nom: "Jean", CodePays: "+33", Numero: "600000000"})
		assert.NoError(t, err)
		assert.Equal(t, "Jean (RXP)", contact.Nom)
		assert.Equal(t, "+33 600000000", contact.NumeroComplet)
		assert.Equal(t, testID, contact.ID)
	})

	t.Run("Should map duplicate number to 409", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Contact")).Return(domain.ErrDuplicateNumber)

		uc := usecase.NewContactUsecase(mockRepo)
		_, err := uc.Submit(ctx, &domain.ContactRequest{Nom: "Jean", CodePays: "+33", Numero: "600000000"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrorCode(t, err))
	})

	t.Run("Should map store failure to 500", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Contact")).Return(errors.New("connection reset"))

		uc := usecase.NewContactUsecase(mockRepo)
		_, err := uc.Submit(ctx, &domain.ContactRequest{Nom: "Jean", CodePays: "+33", Numero: "600000000"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, appErrorCode(t, err))
	})
}

func TestContactSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject queries shorter than two characters", func(t *testing.T) {
		uc := usecase.NewContactUsecase(new(MockContactRepo))
		_, err := uc.Search(ctx, "J")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
	})

	t.Run("Should cap results at ten rows", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Search", ctx, "Jean", 10).Return([]domain.ContactSummary{
			{Nom: "Jean (RXP)", NumeroComplet: "+33 600000000"},
		}, nil)

		uc := usecase.NewContactUsecase(mockRepo)
		contacts, err := uc.Search(ctx, "Jean")
		assert.NoError(t, err)
		assert.Len(t, contacts, 1)
		mockRepo.AssertCalled(t, "Search", ctx, "Jean", 10)
	})
}

func TestContactListRecent(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockContactRepo)
	mockRepo.On("FetchRecent", ctx, 5).Return([]domain.ContactSummary{
		{Nom: "Jean (RXP)", NumeroComplet: "+33 600000000"},
		{Nom: "Marie (RXP)", NumeroComplet: "+509 34000000"},
	}, nil)
	mockRepo.On("Count", ctx).Return(int64(42), nil)

	uc := usecase.NewContactUsecase(mockRepo)
	contacts, total, err := uc.ListRecent(ctx)
	assert.NoError(t, err)
	assert.Len(t, contacts, 2)
	assert.Equal(t, int64(42), total)
}

func TestContactUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should map duplicate number to 409", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Contact")).Return(domain.ErrDuplicateNumber)

		uc := usecase.NewContactUsecase(mockRepo)
		_, err := uc.Update(ctx, testID, &domain.ContactUpdateRequest{Nom: "Jean", CodePays: "+33", Numero: "600000000"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrorCode(t, err))
	})

	t.Run("Should map missing row to 404", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Contact")).Return(domain.ErrNotFound)

		uc := usecase.NewContactUsecase(mockRepo)
		_, err := uc.Update(ctx, testID, &domain.ContactUpdateRequest{Nom: "Jean", CodePays: "+33", Numero: "600000000"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})

	t.Run("Should treat a malformed id as missing", func(t *testing.T) {
		uc := usecase.NewContactUsecase(new(MockContactRepo))
		_, err := uc.Update(ctx, "not-a-uuid", &domain.ContactUpdateRequest{Nom: "Jean", CodePays: "+33", Numero: "600000000"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})

	t.Run("Should re-append suffix and stamp updated_at", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Contact")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Contact)
			assert.Equal(t, "Jean (RXP)", c.Nom)
			assert.Equal(t, "+33 612345678", c.NumeroComplet)
			assert.NotNil(t, c.UpdatedAt)
		})

		uc := usecase.NewContactUsecase(mockRepo)
		contact, err := uc.Update(ctx, testID, &domain.ContactUpdateRequest{Nom: "Jean", CodePays: "+33", Numero: "612345678"})
		assert.NoError(t, err)
		assert.Equal(t, testID, contact.ID)
	})
}

func TestContactDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be a no-op for a malformed id", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo)
		assert.NoError(t, uc.Delete(ctx, "definitely-not-a-uuid"))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should surface store failures as 500", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("Delete", ctx, testID).Return(errors.New("timeout"))

		uc := usecase.NewContactUsecase(mockRepo)
		err := uc.Delete(ctx, testID)
		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, appErrorCode(t, err))
	})
}

func TestMessageSubmit(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should reject missing required fields", func(t *testing.T) {
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), validate)
		_, err := uc.Submit(ctx, &domain.MessageRequest{Nom: "Jean", Email: "jean@example.com"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
	})

	t.Run("Should reject an invalid email", func(t *testing.T) {
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), validate)
		_, err := uc.Submit(ctx, &domain.MessageRequest{
			Nom: "Jean", Email: "not-an-email", Sujet: "Info", Message: "Bonjour",
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
	})

	t.Run("Should store blank telephone as absent and default to unread", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Message")).Return(nil).Run(func(args mock.Arguments) {
			m := args.Get(1).(*domain.Message)
			assert.Nil(t, m.Telephone)
			assert.False(t, m.Read)
			assert.Equal(t, domain.MessageStatusNew, m.Status)
			m.ID = testID
		})

		blank := "   "
		uc := usecase.NewMessageUsecase(mockRepo, validate)
		msg, err := uc.Submit(ctx, &domain.MessageRequest{
			Nom: "Jean", Email: "jean@example.com", Telephone: &blank, Sujet: "Info", Message: "Bonjour",
		})
		assert.NoError(t, err)
		assert.Equal(t, testID, msg.ID)
	})
}

func TestMessageSetReadState(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should map missing row to 404", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		mockRepo.On("SetRead", ctx, testID, true).Return(domain.ErrNotFound)

		uc := usecase.NewMessageUsecase(mockRepo, validate)
		err := uc.SetReadState(ctx, testID, true)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})

	t.Run("Should pass the flag through", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		mockRepo.On("SetRead", ctx, testID, false).Return(nil)

		uc := usecase.NewMessageUsecase(mockRepo, validate)
		assert.NoError(t, uc.SetReadState(ctx, testID, false))
		mockRepo.AssertCalled(t, "SetRead", ctx, testID, false)
	})
}

func TestStatsCompute(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	yesterday := now.Add(-48 * time.Hour)

	mockMessages := new(MockMessageRepo)
	mockMessages.On("FetchStats", ctx).Return([]domain.MessageStat{
		{Read: false, Timestamp: now},
		{Read: false, Timestamp: yesterday},
		{Read: true, Timestamp: yesterday},
	}, nil)

	mockContacts := new(MockContactRepo)
	mockContacts.On("FetchTimestamps", ctx).Return([]time.Time{now, yesterday}, nil)

	uc := usecase.NewStatsUsecase(mockMessages, mockContacts)
	stats, err := uc.Compute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMessages)
	assert.Equal(t, 2, stats.NewMessages)
	assert.Equal(t, 1, stats.ReadMessages)
	assert.Equal(t, 1, stats.TodayMessages)
	assert.Equal(t, 2, stats.TotalContacts)
	assert.Equal(t, 1, stats.TodayContacts)
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	credentials := auth.NewCredentialStore(map[string]string{"ralph": "ralph2025"})
	tokens := auth.NewTokenService("test-secret")
	uc := usecase.NewAuthUsecase(credentials, tokens)

	t.Run("Should reject unknown credentials", func(t *testing.T) {
		_, _, err := uc.Login(ctx, "ralph", "wrong")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
	})

	t.Run("Should issue a verifiable admin token", func(t *testing.T) {
		token, user, err := uc.Login(ctx, "ralph", "ralph2025")
		assert.NoError(t, err)
		assert.Equal(t, "ralph", user.Username)
		assert.Equal(t, domain.RoleAdmin, user.Role)

		claims, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "ralph", claims.Username)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})
}
