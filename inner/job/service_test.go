package job

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"hrm/inner/common"
	"hrm/inner/validator"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) FindById(ctx context.Context, id int64) (Entity, error) {
	args := m.Called(id)
	return args.Get(0).(Entity), args.Error(1)
}

func (m *MockRepo) FindAll(ctx context.Context) ([]Entity, error) {
	args := m.Called()
	return args.Get(0).([]Entity), args.Error(1)
}

func (m *MockRepo) Add(ctx context.Context, job *Entity) error {
	args := m.Called(job)
	if id, ok := args.Get(0).(int64); ok {
		job.Id = id
	}
	return args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, job Entity) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockRepo) DeleteById(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, *MockRepo) {
	mockRepo := new(MockRepo)
	return NewService(mockRepo, validator.New(), &common.Logger{Logger: zaptest.NewLogger(t)}), mockRepo
}

func salary(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func TestService_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("Add", mock.AnythingOfType("*job.Entity")).Return(int64(19), nil)

		job, err := svc.CreateJob(ctx, CreateRequest{Title: "Programmer", MinSalary: salary(4000), MaxSalary: salary(10000)})

		require.NoError(t, err)
		assert.Equal(t, int64(19), job.Id)
		assert.Equal(t, "10000", job.MaxSalary.String())
	})

	t.Run("Max salary must exceed min salary", func(t *testing.T) {
		tests := []struct {
			name     string
			min, max int64
		}{
			{"Equal", 5000, 5000},
			{"Lower", 9000, 4000},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, mockRepo := newTestService(t)

				_, err := svc.CreateJob(ctx, CreateRequest{Title: "Clerk", MinSalary: salary(tt.min), MaxSalary: salary(tt.max)})

				require.Error(t, err)
				assert.IsType(t, common.RequestValidationError{}, err)
				assert.Contains(t, err.Error(), "must be greater than min salary")
				mockRepo.AssertNotCalled(t, "Add", mock.Anything)
			})
		}
	})

	t.Run("Only one bound set", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.On("Add", mock.Anything).Return(int64(20), nil)

		job, err := svc.CreateJob(ctx, CreateRequest{Title: "Intern", MaxSalary: salary(2000)})

		require.NoError(t, err)
		assert.Nil(t, job.MinSalary)
	})

	t.Run("Negative salary", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateJob(ctx, CreateRequest{Title: "Clerk", MinSalary: salary(-1)})

		assert.IsType(t, common.RequestValidationError{}, err)
	})
}

func TestService_UpdateJob_DoesNotCheckRange(t *testing.T) {
	svc, mockRepo := newTestService(t)
	request := UpdateRequest{Title: "Clerk", MinSalary: salary(9000), MaxSalary: salary(4000)}
	mockRepo.On("Update", request.ToEntity(3)).Return(nil)

	job, err := svc.UpdateJob(context.Background(), 3, request)

	require.NoError(t, err)
	assert.Equal(t, int64(3), job.Id)
}

func TestService_FindAndDelete(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.On("FindById", int64(1)).Return(Entity{}, sql.ErrNoRows)
	mockRepo.On("FindAll").Return([]Entity{{Id: 1, Title: "President"}}, nil)
	mockRepo.On("DeleteById", int64(9)).Return(&pq.Error{Code: "23503"})

	_, err := svc.FindById(context.Background(), 1)
	assert.IsType(t, common.NotFoundError{}, err)

	jobs, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Response{{Id: 1, Title: "President"}}, jobs)

	err = svc.DeleteById(context.Background(), 9)
	assert.IsType(t, common.RequestValidationError{}, err)
}

func TestRepository_Add(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	repo := NewJobRepository(sqlx.NewDb(db, "postgres"))
	sqlMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO jobs (title, min_salary, max_salary)")).
		WithArgs("Programmer", "4000", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	entity := Entity{Title: "Programmer", MinSalary: decimal.NewNullDecimal(decimal.NewFromInt(4000))}
	require.NoError(t, repo.Add(context.Background(), &entity))

	assert.Equal(t, int64(9), entity.Id)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_FindById(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	repo := NewJobRepository(sqlx.NewDb(db, "postgres"))
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "min_salary", "max_salary"}).
			AddRow(9, "Programmer", "4000.00", nil))

	job, err := repo.FindById(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, job.MinSalary.Valid)
	assert.False(t, job.MaxSalary.Valid)
}
