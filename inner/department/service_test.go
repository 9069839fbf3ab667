package department

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"hrm/inner/common"
	"hrm/inner/validator"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func (m *MockRepo) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	args := m.Called()
	var tx *sqlx.Tx
	if val := args.Get(0); val != nil {
		tx = val.(*sqlx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockRepo) FindByNameTx(ctx context.Context, tx *sqlx.Tx, name string) (bool, error) {
	args := m.Called(tx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) SaveTx(ctx context.Context, tx *sqlx.Tx, department Entity) (int64, error) {
	args := m.Called(tx, department)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, department Entity) error {
	args := m.Called(department)
	return args.Error(0)
}

func (m *MockRepo) DeleteById(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, *MockRepo) {
	mockRepo := new(MockRepo)
	logger := &common.Logger{Logger: zaptest.NewLogger(t)}
	return NewService(mockRepo, validator.New(), logger), mockRepo
}

func mockTx(t *testing.T, commit bool) (*sqlx.Tx, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	sqlMock.ExpectBegin()
	if commit {
		sqlMock.ExpectCommit()
	} else {
		sqlMock.ExpectRollback()
	}
	tx, err := sqlx.NewDb(db, "postgres").Beginx()
	require.NoError(t, err)
	return tx, sqlMock
}

func TestService_CreateDepartment(t *testing.T) {
	ctx := context.Background()
	locationId := int64(1700)
	request := CreateRequest{Name: "Shipping", LocationId: &locationId}

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		tx, sqlMock := mockTx(t, true)
		mockRepo.On("BeginTransaction").Return(tx, nil)
		mockRepo.On("FindByNameTx", tx, "Shipping").Return(false, nil)
		mockRepo.On("SaveTx", tx, request.ToEntity()).Return(int64(50), nil)

		id, err := svc.CreateDepartment(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, int64(50), id)
		mockRepo.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Name already taken", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		tx, sqlMock := mockTx(t, false)
		mockRepo.On("BeginTransaction").Return(tx, nil)
		mockRepo.On("FindByNameTx", tx, "Shipping").Return(true, nil)

		_, err := svc.CreateDepartment(ctx, request)

		assert.IsType(t, common.AlreadyExistsError{}, err)
		mockRepo.AssertNotCalled(t, "SaveTx", mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Unknown location", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		tx, _ := mockTx(t, false)
		mockRepo.On("BeginTransaction").Return(tx, nil)
		mockRepo.On("FindByNameTx", tx, "Shipping").Return(false, nil)
		mockRepo.On("SaveTx", tx, request.ToEntity()).Return(int64(0), &pq.Error{Code: "23503"})

		_, err := svc.CreateDepartment(ctx, request)

		assert.IsType(t, common.RequestValidationError{}, err)
	})

	t.Run("Empty name", func(t *testing.T) {
		svc, mockRepo := newTestService(t)

		_, err := svc.CreateDepartment(ctx, CreateRequest{})

		assert.IsType(t, common.RequestValidationError{}, err)
		mockRepo.AssertNotCalled(t, "BeginTransaction")
	})
}

func TestService_FindById(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.On("FindById", int64(60)).Return(Entity{Id: 60, Name: "IT"}, nil)
	mockRepo.On("FindById", int64(61)).Return(Entity{}, sql.ErrNoRows)
	mockRepo.On("FindById", int64(62)).Return(Entity{}, errors.New("db error"))

	found, err := svc.FindById(context.Background(), 60)
	require.NoError(t, err)
	assert.Equal(t, Response{Id: 60, Name: "IT"}, found)

	_, err = svc.FindById(context.Background(), 61)
	assert.IsType(t, common.NotFoundError{}, err)

	_, err = svc.FindById(context.Background(), 62)
	assert.Equal(t, 500, common.ErrorStatus(err))
}

func TestService_UpdateDepartment(t *testing.T) {
	svc, mockRepo := newTestService(t)
	request := UpdateRequest{Name: "Executive"}
	mockRepo.On("Update", request.ToEntity(90)).Return(nil)
	mockRepo.On("Update", request.ToEntity(91)).Return(sql.ErrNoRows)

	updated, err := svc.UpdateDepartment(context.Background(), 90, request)
	require.NoError(t, err)
	assert.Equal(t, "Executive", updated.Name)

	_, err = svc.UpdateDepartment(context.Background(), 91, request)
	assert.IsType(t, common.NotFoundError{}, err)
}

func TestService_DeleteById(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.On("DeleteById", int64(1)).Return(nil)
	mockRepo.On("DeleteById", int64(2)).Return(sql.ErrNoRows)
	mockRepo.On("DeleteById", int64(3)).Return(&pq.Error{Code: "23503"})

	assert.NoError(t, svc.DeleteById(context.Background(), 1))
	assert.IsType(t, common.NotFoundError{}, svc.DeleteById(context.Background(), 2))
	assert.IsType(t, common.RequestValidationError{}, svc.DeleteById(context.Background(), 3))
}

func TestRepository_CreateFlow(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	repo := NewDepartmentRepository(sqlx.NewDb(db, "postgres"))

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)")).
		WithArgs("IT").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	sqlMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO departments (name, manager_id, location_id)")).
		WithArgs("IT", nil, int64(1400)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(60))
	sqlMock.ExpectCommit()

	locationId := int64(1400)
	tx, err := repo.BeginTransaction(context.Background())
	require.NoError(t, err)
	exists, err := repo.FindByNameTx(context.Background(), tx, "IT")
	require.NoError(t, err)
	assert.False(t, exists)
	id, err := repo.SaveTx(context.Background(), tx, Entity{Name: "IT", LocationId: &locationId})
	require.NoError(t, err)
	assert.Equal(t, int64(60), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	repo := NewDepartmentRepository(sqlx.NewDb(db, "postgres"))
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM departments ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "manager_id", "location_id"}).
			AddRow(10, "Administration", 200, 1700).
			AddRow(20, "Marketing", nil, nil))

	departments, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, int64(200), *departments[0].ManagerId)
	assert.Nil(t, departments[1].LocationId)
}
