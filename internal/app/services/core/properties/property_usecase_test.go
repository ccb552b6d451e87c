package properties

import (
	"casalist-service/internal/app/config"
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockPropertyRepository struct {
	mock.Mock
}

func (m *mockPropertyRepository) CreateProperty(ctx context.Context, propertyModel *models.Property) (string, error) {
	args := m.Called(ctx, propertyModel)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, propertyID string) (*models.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *mockPropertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockPropertyRepository) FindPublished(ctx context.Context, limit, offset int) ([]models.Property, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockPropertyRepository) CountPublished(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyRepository) FindByUserID(ctx context.Context, userID string) ([]models.Property, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockPropertyRepository) FindByIDs(ctx context.Context, propertyIDs []string) ([]models.Property, error) {
	args := m.Called(ctx, propertyIDs)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockPropertyRepository) UpdateProperty(ctx context.Context, propertyModel *models.Property) error {
	args := m.Called(ctx, propertyModel)
	return args.Error(0)
}

func (m *mockPropertyRepository) DeleteByID(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *mockPropertyRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type mockReindexPublisher struct {
	mock.Mock
}

func (m *mockReindexPublisher) EnqueueReindex(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestPropertyUsecase(repo *mockPropertyRepository, storage *mockStorage, publisher *mockReindexPublisher) PropertyUsecase {
	internalConfig := &config.InternalConfig{
		App: config.App{ImageUrlExpiryTimeInHours: 24},
		Minio: config.AppMinio{
			BucketName:             "test-bucket",
			ImageMaxUploadSizeInMB: 6,
		},
	}
	return NewPropertyUsecase(repo, storage, publisher, internalConfig, zap.NewNop())
}

func TestDeleteProperty(t *testing.T) {
	stored := &models.Property{ID: "p1", UserID: "owner-1", Title: "Villa"}

	t.Run("non-owner is forbidden and nothing is deleted", func(t *testing.T) {
		repo := new(mockPropertyRepository)
		storage := new(mockStorage)
		publisher := new(mockReindexPublisher)
		usecase := newTestPropertyUsecase(repo, storage, publisher)

		repo.On("FindByID", mock.Anything, "p1").Return(stored, nil)

		err := usecase.DeleteProperty(context.Background(), authz.Principal{ID: "stranger", Role: constvars.RoleUser}, "p1")

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, "You are not authorized to delete this property.", customErr.ClientMessage)
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "EnqueueReindex", mock.Anything)
	})

	t.Run("owner deletes and a reindex is enqueued", func(t *testing.T) {
		repo := new(mockPropertyRepository)
		storage := new(mockStorage)
		publisher := new(mockReindexPublisher)
		usecase := newTestPropertyUsecase(repo, storage, publisher)

		repo.On("FindByID", mock.Anything, "p1").Return(stored, nil)
		repo.On("DeleteByID", mock.Anything, "p1").Return(nil)
		publisher.On("EnqueueReindex", mock.Anything).Return(nil)

		err := usecase.DeleteProperty(context.Background(), authz.Principal{ID: "owner-1", Role: constvars.RoleUser}, "p1")

		assert.NoError(t, err)
		repo.AssertCalled(t, "DeleteByID", mock.Anything, "p1")
		publisher.AssertCalled(t, "EnqueueReindex", mock.Anything)
	})

	t.Run("admin passes the gate", func(t *testing.T) {
		repo := new(mockPropertyRepository)
		storage := new(mockStorage)
		publisher := new(mockReindexPublisher)
		usecase := newTestPropertyUsecase(repo, storage, publisher)

		repo.On("FindByID", mock.Anything, "p1").Return(stored, nil)
		repo.On("DeleteByID", mock.Anything, "p1").Return(nil)
		publisher.On("EnqueueReindex", mock.Anything).Return(nil)

		err := usecase.DeleteProperty(context.Background(), authz.Principal{ID: "admin-1", Role: constvars.RoleAdmin}, "p1")

		assert.NoError(t, err)
		repo.AssertCalled(t, "DeleteByID", mock.Anything, "p1")
	})

	t.Run("publish failure does not fail the delete", func(t *testing.T) {
		repo := new(mockPropertyRepository)
		storage := new(mockStorage)
		publisher := new(mockReindexPublisher)
		usecase := newTestPropertyUsecase(repo, storage, publisher)

		repo.On("FindByID", mock.Anything, "p1").Return(stored, nil)
		repo.On("DeleteByID", mock.Anything, "p1").Return(nil)
		publisher.On("EnqueueReindex", mock.Anything).Return(errors.New("broker down"))

		err := usecase.DeleteProperty(context.Background(), authz.Principal{ID: "owner-1", Role: constvars.RoleUser}, "p1")

		assert.NoError(t, err)
	})
}

func TestUpdateProperty_NonOwnerForbidden(t *testing.T) {
	repo := new(mockPropertyRepository)
	storage := new(mockStorage)
	publisher := new(mockReindexPublisher)
	usecase := newTestPropertyUsecase(repo, storage, publisher)

	repo.On("FindByID", mock.Anything, "p1").Return(&models.Property{ID: "p1", UserID: "owner-1"}, nil)

	_, err := usecase.UpdateProperty(context.Background(), authz.Principal{ID: "stranger", Role: constvars.RoleUser}, "p1", &requests.UpdateProperty{
		Title: "Hijacked", Description: "d", Type: "house", Price: 1, City: "c", Address: "a", AreaSqm: 1,
	})

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	assert.Equal(t, "You are not authorized to update this property.", customErr.ClientMessage)
	repo.AssertNotCalled(t, "UpdateProperty", mock.Anything, mock.Anything)
}

func TestGetAllProperties_NonAdminUnauthorized(t *testing.T) {
	repo := new(mockPropertyRepository)
	storage := new(mockStorage)
	publisher := new(mockReindexPublisher)
	usecase := newTestPropertyUsecase(repo, storage, publisher)

	_, err := usecase.GetAllProperties(context.Background(), authz.Principal{ID: "u1", Role: constvars.RoleUser})

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientNotAuthorizedResource, customErr.ClientMessage)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestListPublishedProperties_Pagination(t *testing.T) {
	repo := new(mockPropertyRepository)
	storage := new(mockStorage)
	publisher := new(mockReindexPublisher)
	usecase := newTestPropertyUsecase(repo, storage, publisher)

	repo.On("FindPublished", mock.Anything, 10, 20).Return([]models.Property{{ID: "p1"}}, nil)
	repo.On("CountPublished", mock.Anything).Return(int64(21), nil)

	list, meta, err := usecase.ListPublishedProperties(context.Background(), requests.Pagination{Page: 3, PerPage: 10})

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(21), meta.Total)
}
