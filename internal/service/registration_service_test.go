package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kirojava/Arsenic/internal/errors"
	"github.com/Kirojava/Arsenic/internal/model"
	"github.com/Kirojava/Arsenic/internal/repository"
)

// MockRegistrationRepository is a mock implementation of RegistrationRepository.
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockRegistrationRepository) FindByID(ctx context.Context, id uint) (*model.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) FindByCode(ctx context.Context, code string) (*model.Registration, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (*model.Registration, error) {
	args := m.Called(ctx, id, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListWithUsers(ctx context.Context) ([]repository.RegistrationWithUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RegistrationWithUser), args.Error(1)
}

func newTestRegistrationService(repo *MockRegistrationRepository, userRepo *MockUserRepository) RegistrationService {
	return NewRegistrationService(repo, userRepo, NewCodeGenerator(), nil, decimal.RequireFromString("50.00"))
}

func TestRegistrationService_Create(t *testing.T) {
	delegate := &model.User{ID: 7, Email: "jane@x.com", FullName: "Jane Doe", Role: model.RoleDelegate}

	tests := []struct {
		name          string
		userID        uint
		input         CreateRegistrationInput
		setupMock     func(*MockRegistrationRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name:   "successful creation with defaults",
			userID: 7,
			input: CreateRegistrationInput{
				Preferences:      model.Preferences{Committee1: "UNSC", Committee2: "WHO", Committee3: "WHO"},
				EmergencyContact: "1234567890",
			},
			setupMock: func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {
				mUsers.On("FindByID", mock.Anything, uint(7)).Return(delegate, nil)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Registration")).Return(nil)
			},
		},
		{
			name:   "missing first committee preference",
			userID: 7,
			input:  CreateRegistrationInput{Preferences: model.Preferences{Committee2: "WHO"}},
			setupMock: func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {
			},
			expectedError: errors.ErrInvalidPreferences,
		},
		{
			name:   "unknown user",
			userID: 99,
			input:  CreateRegistrationInput{Preferences: model.Preferences{Committee1: "UNSC"}},
			setupMock: func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {
				mUsers.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRegistrationRepository)
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockRepo, mockUsers)

			svc := newTestRegistrationService(mockRepo, mockUsers)
			registration, err := svc.Create(context.Background(), tt.userID, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, registration)
			} else {
				require.NoError(t, err)
				require.NotNil(t, registration)
				assert.Equal(t, model.RegistrationStatusPending, registration.Status)
				assert.Equal(t, model.PaymentStatusUnpaid, registration.PaymentStatus)
				assert.Regexp(t, codePattern, registration.UniqueCode)
				assert.True(t, registration.FeeAmount.Equal(decimal.RequireFromString("50.00")))
				assert.Equal(t, tt.userID, registration.UserID)
			}

			mockRepo.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_Create_RetriesOnCodeCollision(t *testing.T) {
	mockRepo := new(MockRegistrationRepository)
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)

	// first insert trips the unique_code index, second succeeds
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Registration")).Return(gorm.ErrDuplicatedKey).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Registration")).Return(nil).Once()

	svc := newTestRegistrationService(mockRepo, mockUsers)
	registration, err := svc.Create(context.Background(), 1, CreateRegistrationInput{
		Preferences: model.Preferences{Committee1: "UNSC"},
	})

	require.NoError(t, err)
	assert.Regexp(t, codePattern, registration.UniqueCode)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestRegistrationService_Create_GivesUpAfterBoundedRetries(t *testing.T) {
	mockRepo := new(MockRegistrationRepository)
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Registration")).Return(gorm.ErrDuplicatedKey)

	svc := newTestRegistrationService(mockRepo, mockUsers)
	_, err := svc.Create(context.Background(), 1, CreateRegistrationInput{
		Preferences: model.Preferences{Committee1: "UNSC"},
	})

	assert.ErrorIs(t, err, errors.ErrCodeSpaceExhausted)
	mockRepo.AssertNumberOfCalls(t, "Create", maxCodeAttempts)
}

func TestRegistrationService_Verify(t *testing.T) {
	stored := &model.Registration{ID: 3, UserID: 7, UniqueCode: "ARX2YZ"}
	owner := &model.User{ID: 7, Email: "jane@x.com", FullName: "Jane Doe"}

	tests := []struct {
		name          string
		code          string
		setupMock     func(*MockRegistrationRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name: "resolves code to registration and user",
			code: "ARX2YZ",
			setupMock: func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {
				mRepo.On("FindByCode", mock.Anything, "ARX2YZ").Return(stored, nil)
				mUsers.On("FindByID", mock.Anything, uint(7)).Return(owner, nil)
			},
		},
		{
			name:          "wrong length rejected before store access",
			code:          "AR12",
			setupMock:     func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {},
			expectedError: errors.ErrRegistrationNotFound,
		},
		{
			name:          "over-long code rejected before store access",
			code:          "ARX2YZ9",
			setupMock:     func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {},
			expectedError: errors.ErrRegistrationNotFound,
		},
		{
			name: "never-issued code",
			code: "ZZZZZZ",
			setupMock: func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {
				mRepo.On("FindByCode", mock.Anything, "ZZZZZZ").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRegistrationNotFound,
		},
		{
			name: "dangling owner treated as not found",
			code: "ARX2YZ",
			setupMock: func(mRepo *MockRegistrationRepository, mUsers *MockUserRepository) {
				mRepo.On("FindByCode", mock.Anything, "ARX2YZ").Return(stored, nil)
				mUsers.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRegistrationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRegistrationRepository)
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockRepo, mockUsers)

			svc := newTestRegistrationService(mockRepo, mockUsers)
			result, err := svc.Verify(context.Background(), tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored.ID, result.Registration.ID)
				assert.Equal(t, owner.Email, result.User.Email)
			}

			// malformed codes must not reach the repository
			if len(tt.code) != codeLength {
				mockRepo.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
			}
			mockRepo.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_Update_OnlyMutableColumns(t *testing.T) {
	approved := model.RegistrationStatusApproved
	paid := model.PaymentStatusPaid
	committee := uint(2)

	mockRepo := new(MockRegistrationRepository)
	mockUsers := new(MockUserRepository)

	var captured map[string]interface{}
	updated := &model.Registration{ID: 3, UniqueCode: "ARX2YZ", Status: approved, PaymentStatus: paid}
	mockRepo.On("Update", mock.Anything, uint(3), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]interface{})
		}).
		Return(updated, nil)

	svc := newTestRegistrationService(mockRepo, mockUsers)
	result, err := svc.Update(context.Background(), 3, UpdateRegistrationInput{
		Status:        &approved,
		PaymentStatus: &paid,
		CommitteeID:   &committee,
	})

	require.NoError(t, err)
	assert.Equal(t, updated, result)

	assert.Equal(t, map[string]interface{}{
		"status":         approved,
		"payment_status": paid,
		"committee_id":   committee,
	}, captured)
	for _, immutable := range []string{"unique_code", "user_id", "created_at", "fee_amount"} {
		assert.NotContains(t, captured, immutable)
	}
	mockRepo.AssertExpectations(t)
}

func TestRegistrationService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRegistrationRepository)
	mockUsers := new(MockUserRepository)
	mockRepo.On("Update", mock.Anything, uint(42), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestRegistrationService(mockRepo, mockUsers)
	_, err := svc.Update(context.Background(), 42, UpdateRegistrationInput{})

	assert.ErrorIs(t, err, errors.ErrRegistrationNotFound)
}

func TestRegistrationService_List(t *testing.T) {
	mockRepo := new(MockRegistrationRepository)
	mockUsers := new(MockUserRepository)

	rows := []repository.RegistrationWithUser{
		{
			Registration: model.Registration{ID: 1, UserID: 7, UniqueCode: "ARX2YZ"},
			User:         model.User{ID: 7, Email: "jane@x.com"},
		},
	}
	mockRepo.On("ListWithUsers", mock.Anything).Return(rows, nil)

	svc := newTestRegistrationService(mockRepo, mockUsers)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
