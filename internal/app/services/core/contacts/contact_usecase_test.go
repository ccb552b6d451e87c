package contacts

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) CreateContact(ctx context.Context, contactModel *models.Contact) (string, error) {
	args := m.Called(ctx, contactModel)
	return args.String(0), args.Error(1)
}

func (m *mockContactRepository) FindByID(ctx context.Context, contactID string) (*models.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *mockContactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *mockContactRepository) FindByUserID(ctx context.Context, userID string) ([]models.Contact, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *mockContactRepository) FindByPropertyID(ctx context.Context, propertyID string) ([]models.Contact, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *mockContactRepository) UpdateContact(ctx context.Context, contactModel *models.Contact) error {
	args := m.Called(ctx, contactModel)
	return args.Error(0)
}

func (m *mockContactRepository) DeleteByID(ctx context.Context, contactID string) error {
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

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

func TestContactOwnershipResolvesThroughProperty(t *testing.T) {
	contact := &models.Contact{ID: "c1", PropertyID: "p1", UserID: "visitor-1"}
	property := &models.Property{ID: "p1", UserID: "owner-1"}

	t.Run("property owner may delete", func(t *testing.T) {
		contactRepo := new(mockContactRepository)
		propertyRepo := new(mockPropertyRepository)
		usecase := NewContactUsecase(contactRepo, propertyRepo)

		contactRepo.On("FindByID", mock.Anything, "c1").Return(contact, nil)
		propertyRepo.On("FindByID", mock.Anything, "p1").Return(property, nil)
		contactRepo.On("DeleteByID", mock.Anything, "c1").Return(nil)

		err := usecase.DeleteContact(context.Background(), authz.Principal{ID: "owner-1", Role: constvars.RoleUser}, "c1")

		assert.NoError(t, err)
	})

	t.Run("contact author may not delete", func(t *testing.T) {
		// the visitor who left the contact does not own the property
		contactRepo := new(mockContactRepository)
		propertyRepo := new(mockPropertyRepository)
		usecase := NewContactUsecase(contactRepo, propertyRepo)

		contactRepo.On("FindByID", mock.Anything, "c1").Return(contact, nil)
		propertyRepo.On("FindByID", mock.Anything, "p1").Return(property, nil)

		err := usecase.DeleteContact(context.Background(), authz.Principal{ID: "visitor-1", Role: constvars.RoleUser}, "c1")

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, "You are not authorized to delete this contact.", customErr.ClientMessage)
		contactRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("admin may update", func(t *testing.T) {
		contactRepo := new(mockContactRepository)
		propertyRepo := new(mockPropertyRepository)
		usecase := NewContactUsecase(contactRepo, propertyRepo)

		stored := &models.Contact{ID: "c1", PropertyID: "p1", UserID: "visitor-1"}
		contactRepo.On("FindByID", mock.Anything, "c1").Return(stored, nil)
		propertyRepo.On("FindByID", mock.Anything, "p1").Return(property, nil)
		contactRepo.On("UpdateContact", mock.Anything, mock.Anything).Return(nil)

		updated, err := usecase.UpdateContact(context.Background(), authz.Principal{ID: "admin-1", Role: constvars.RoleAdmin}, "c1", &requests.UpdateContact{
			Name:        "New Name",
			Email:       "new@example.com",
			Phone:       "123",
			DesiredDate: "2024-07-01 10:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, "2024-07-01 10:00", updated.DesiredDate)
	})
}

func TestCreateContact_SetsRequestingUser(t *testing.T) {
	contactRepo := new(mockContactRepository)
	propertyRepo := new(mockPropertyRepository)
	usecase := NewContactUsecase(contactRepo, propertyRepo)

	propertyRepo.On("FindByID", mock.Anything, "p1").Return(&models.Property{ID: "p1", UserID: "owner-1"}, nil)
	contactRepo.On("CreateContact", mock.Anything, mock.MatchedBy(func(c *models.Contact) bool {
		return c.UserID == "visitor-1" && c.PropertyID == "p1"
	})).Return("c9", nil)
	contactRepo.On("FindByID", mock.Anything, "c9").Return(&models.Contact{ID: "c9", PropertyID: "p1", UserID: "visitor-1"}, nil)

	contact, err := usecase.CreateContact(context.Background(), authz.Principal{ID: "visitor-1", Role: constvars.RoleUser}, &requests.CreateContact{
		PropertyID:  "p1",
		Name:        "Visitor",
		Email:       "v@example.com",
		Phone:       "555",
		DesiredDate: "2024-07-01 10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "visitor-1", contact.UserID)
}

func TestCreateContact_UnknownPropertyFails(t *testing.T) {
	contactRepo := new(mockContactRepository)
	propertyRepo := new(mockPropertyRepository)
	usecase := NewContactUsecase(contactRepo, propertyRepo)

	propertyRepo.On("FindByID", mock.Anything, "missing").Return(nil, exceptions.ErrPropertyNotFound(errors.New("no rows")))

	_, err := usecase.CreateContact(context.Background(), authz.Principal{ID: "visitor-1", Role: constvars.RoleUser}, &requests.CreateContact{
		PropertyID:  "missing",
		Name:        "Visitor",
		Email:       "v@example.com",
		Phone:       "555",
		DesiredDate: "2024-07-01 10:00",
	})

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	contactRepo.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
}
