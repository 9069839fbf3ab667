package user

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"testing"
	"time"

	"hrm/inner/common"
	"hrm/inner/validator"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/icrowley/fake"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

// Объявляем структуру мок-репозитория
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) FindById(ctx context.Context, id int64) (Entity, error) {
	args := m.Called(id)
	return args.Get(0).(Entity), args.Error(1)
}

func (m *MockRepo) FindByUsername(ctx context.Context, username string) (Entity, error) {
	args := m.Called(username)
	return args.Get(0).(Entity), args.Error(1)
}

func (m *MockRepo) FindAll(ctx context.Context) ([]Entity, error) {
	args := m.Called()
	return args.Get(0).([]Entity), args.Error(1)
}

func (m *MockRepo) Add(ctx context.Context, user *Entity) error {
	args := m.Called(user)
	user.Id = 7
	return args.Error(0)
}

func (m *MockRepo) DeleteById(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func newTestService(t *testing.T) (*Service, *MockRepo) {
	mockRepo := new(MockRepo)
	svc := NewService(mockRepo, validator.New(), &common.Logger{Logger: zaptest.NewLogger(t)})
	svc.cost = bcrypt.MinCost
	return svc, mockRepo
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores bcrypt hash", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("Add", mock.AnythingOfType("*user.Entity")).Return(nil)
		password := fake.Password(10, 20, true, true, false)

		user, err := svc.CreateUser(ctx, CreateRequest{Username: "hradmin", Password: password, Role: RoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.Id)
		assert.Equal(t, RoleAdmin, user.Role)

		stored := mockRepo.Calls[0].Arguments.Get(0).(*Entity)
		assert.NotEqual(t, password, stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)))
	})

	t.Run("Validation", func(t *testing.T) {
		tests := []struct {
			name    string
			request CreateRequest
		}{
			{"unknown role", CreateRequest{Username: "clerk", Password: "password1", Role: "ROOT"}},
			{"short password", CreateRequest{Username: "clerk", Password: "short", Role: RoleUser}},
			{"username with spaces", CreateRequest{Username: "john smith", Password: "password1", Role: RoleUser}},
			{"empty", CreateRequest{}},
			{"password over 72 bytes", CreateRequest{Username: "ivan123", Password: strings.Repeat("п", 40), Role: RoleUser}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, mockRepo := newTestService(t)

				_, err := svc.CreateUser(ctx, tt.request)

				assert.ErrorAs(t, err, &common.RequestValidationError{})
				mockRepo.AssertNotCalled(t, "Add", mock.Anything)
			})
		}
	})

	t.Run("Multibyte password within 72 bytes", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("Add", mock.AnythingOfType("*user.Entity")).Return(nil)

		_, err := svc.CreateUser(ctx, CreateRequest{Username: "ivan123", Password: strings.Repeat("п", 36), Role: RoleUser})

		assert.NoError(t, err)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("Add", mock.Anything).Return(&pq.Error{Code: "23505"})

		_, err := svc.CreateUser(ctx, CreateRequest{Username: "hradmin", Password: "password1", Role: RoleUser})

		assert.ErrorAs(t, err, &common.AlreadyExistsError{})
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	stored := Entity{Id: 3, Username: "sking", PasswordHash: hashed(t, "president1"), Role: RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("FindByUsername", "sking").Return(stored, nil)

		user, err := svc.Login(ctx, LoginRequest{Username: "sking", Password: "president1"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), user.Id)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("FindByUsername", "sking").Return(stored, nil)

		_, err := svc.Login(ctx, LoginRequest{Username: "sking", Password: "guess"})

		assert.ErrorAs(t, err, &common.UnauthorizedError{})
	})

	t.Run("Unknown user looks the same", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("FindByUsername", "nobody").Return(Entity{}, sql.ErrNoRows)

		_, err := svc.Login(ctx, LoginRequest{Username: "nobody", Password: "guess"})

		assert.ErrorAs(t, err, &common.UnauthorizedError{})
		assert.Equal(t, "invalid username or password", err.Error())
	})

	t.Run("Empty request", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Login(ctx, LoginRequest{})

		assert.ErrorAs(t, err, &common.RequestValidationError{})
	})
}

func TestService_FindAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo := newTestService(t)
	mockRepo.On("FindById", int64(1)).Return(Entity{Id: 1, Username: "nkochhar", PasswordHash: "secret", Role: RoleUser}, nil)
	mockRepo.On("FindById", int64(2)).Return(Entity{}, sql.ErrNoRows)
	mockRepo.On("FindAll").Return([]Entity{{Id: 1}, {Id: 2}}, nil)
	mockRepo.On("DeleteById", int64(2)).Return(sql.ErrNoRows)

	user, err := svc.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "nkochhar", user.Username)

	_, err = svc.FindById(ctx, 2)
	assert.ErrorAs(t, err, &common.NotFoundError{})

	users, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	assert.ErrorAs(t, svc.DeleteById(ctx, 2), &common.NotFoundError{})
}

func TestRepository_Users(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepository(sqlx.NewDb(db, "postgres"))
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at")).
		WithArgs("ahunold", "hash", RoleUser).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, created))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + columns + " FROM users WHERE username = $1")).
		WithArgs("ahunold").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow(4, "ahunold", "hash", RoleUser, created))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	user := Entity{Username: "ahunold", PasswordHash: "hash", Role: RoleUser}
	require.NoError(t, repo.Add(ctx, &user))
	assert.Equal(t, int64(4), user.Id)
	assert.Equal(t, created, user.CreatedAt)

	found, err := repo.FindByUsername(ctx, "ahunold")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	assert.ErrorIs(t, repo.DeleteById(ctx, 4), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
