package users

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

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockSearchRepository struct {
	mock.Mock
}

func (m *mockSearchRepository) CreateSearch(ctx context.Context, searchModel *models.Search) (string, error) {
	args := m.Called(ctx, searchModel)
	return args.String(0), args.Error(1)
}

func (m *mockSearchRepository) FindByID(ctx context.Context, searchID string) (*models.Search, error) {
	args := m.Called(ctx, searchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Search), args.Error(1)
}

func (m *mockSearchRepository) FindByUserID(ctx context.Context, userID string) ([]models.Search, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Search), args.Error(1)
}

func (m *mockSearchRepository) UpdateSearch(ctx context.Context, searchModel *models.Search) error {
	args := m.Called(ctx, searchModel)
	return args.Error(0)
}

func (m *mockSearchRepository) DeleteByID(ctx context.Context, searchID string) error {
	args := m.Called(ctx, searchID)
	return args.Error(0)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) CreateFavorite(ctx context.Context, favoriteModel *models.Favorite) (string, error) {
	args := m.Called(ctx, favoriteModel)
	return args.String(0), args.Error(1)
}

func (m *mockFavoriteRepository) FindByID(ctx context.Context, favoriteID string) (*models.Favorite, error) {
	args := m.Called(ctx, favoriteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *mockFavoriteRepository) FindAll(ctx context.Context) ([]models.Favorite, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *mockFavoriteRepository) FindByUserID(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *mockFavoriteRepository) UpdateFavorite(ctx context.Context, favoriteModel *models.Favorite) error {
	args := m.Called(ctx, favoriteModel)
	return args.Error(0)
}

func (m *mockFavoriteRepository) DeleteByID(ctx context.Context, favoriteID string) error {
	args := m.Called(ctx, favoriteID)
	return args.Error(0)
}

func newTestUserUsecase(
	userRepo *mockUserRepository,
	propertyRepo *mockPropertyRepository,
	searchRepo *mockSearchRepository,
	contactRepo *mockContactRepository,
	favoriteRepo *mockFavoriteRepository,
) UserUsecase {
	return NewUserUsecase(userRepo, propertyRepo, searchRepo, contactRepo, favoriteRepo, zap.NewNop())
}

func TestFilterPassedContacts(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

	contacts := []models.Contact{
		{ID: "c1", DesiredDate: time.Date(2024, 6, 1, 12, 29, 0, 0, time.UTC)},
		{ID: "c2", DesiredDate: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)},
		{ID: "c3", DesiredDate: time.Date(2024, 6, 1, 12, 30, 10, 0, time.UTC)},
		{ID: "c4", DesiredDate: time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)},
	}

	passed := filterPassedContacts(contacts, now)

	// seconds are dropped: 12:30:xx compares against 12:30, so only
	// strictly earlier minutes pass
	assert.Len(t, passed, 1)
	assert.Equal(t, "c1", passed[0].ID)
}

func TestGetUserPropertiesContacts_FlattensInPropertyOrder(t *testing.T) {
	userRepo := new(mockUserRepository)
	propertyRepo := new(mockPropertyRepository)
	searchRepo := new(mockSearchRepository)
	contactRepo := new(mockContactRepository)
	favoriteRepo := new(mockFavoriteRepository)
	usecase := newTestUserUsecase(userRepo, propertyRepo, searchRepo, contactRepo, favoriteRepo)

	owner := authz.Principal{ID: "owner-1", Role: constvars.RoleUser}

	propertyRepo.On("FindByUserID", mock.Anything, "owner-1").Return([]models.Property{
		{ID: "p1", UserID: "owner-1"},
		{ID: "p2", UserID: "owner-1"},
	}, nil)
	contactRepo.On("FindByPropertyID", mock.Anything, "p1").Return([]models.Contact{
		{ID: "c1", PropertyID: "p1"},
		{ID: "c2", PropertyID: "p1"},
	}, nil)
	contactRepo.On("FindByPropertyID", mock.Anything, "p2").Return([]models.Contact{
		{ID: "c3", PropertyID: "p2"},
	}, nil)

	list, err := usecase.GetUserPropertiesContacts(context.Background(), owner, "owner-1")

	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "c2", list[1].ID)
	assert.Equal(t, "c3", list[2].ID)
}

func TestGetUserPropertiesContacts_OtherUserDenied(t *testing.T) {
	userRepo := new(mockUserRepository)
	propertyRepo := new(mockPropertyRepository)
	searchRepo := new(mockSearchRepository)
	contactRepo := new(mockContactRepository)
	favoriteRepo := new(mockFavoriteRepository)
	usecase := newTestUserUsecase(userRepo, propertyRepo, searchRepo, contactRepo, favoriteRepo)

	stranger := authz.Principal{ID: "stranger", Role: constvars.RoleUser}

	list, err := usecase.GetUserPropertiesContacts(context.Background(), stranger, "owner-1")

	assert.Nil(t, list)
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	assert.Equal(t, "message", customErr.BodyKey)
	assert.Equal(t, constvars.ErrClientNotAuthorizedView, customErr.ClientMessage)
	propertyRepo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

func TestGetUserPropertiesContacts_AdminAllowed(t *testing.T) {
	userRepo := new(mockUserRepository)
	propertyRepo := new(mockPropertyRepository)
	searchRepo := new(mockSearchRepository)
	contactRepo := new(mockContactRepository)
	favoriteRepo := new(mockFavoriteRepository)
	usecase := newTestUserUsecase(userRepo, propertyRepo, searchRepo, contactRepo, favoriteRepo)

	admin := authz.Principal{ID: "admin-1", Role: constvars.RoleAdmin}

	propertyRepo.On("FindByUserID", mock.Anything, "owner-1").Return([]models.Property{}, nil)

	list, err := usecase.GetUserPropertiesContacts(context.Background(), admin, "owner-1")

	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetUserPassedContacts_MinuteTruncation(t *testing.T) {
	userRepo := new(mockUserRepository)
	propertyRepo := new(mockPropertyRepository)
	searchRepo := new(mockSearchRepository)
	contactRepo := new(mockContactRepository)
	favoriteRepo := new(mockFavoriteRepository)
	usecase := newTestUserUsecase(userRepo, propertyRepo, searchRepo, contactRepo, favoriteRepo)

	owner := authz.Principal{ID: "u1", Role: constvars.RoleUser}

	contactRepo.On("FindByUserID", mock.Anything, "u1").Return([]models.Contact{
		{ID: "past", DesiredDate: time.Now().Add(-2 * time.Minute)},
		{ID: "future", DesiredDate: time.Now().Add(2 * time.Minute)},
	}, nil)

	list, err := usecase.GetUserPassedContacts(context.Background(), owner, "u1")

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "past", list[0].ID)
}

func TestCountNewUsers_AdminOnly(t *testing.T) {
	userRepo := new(mockUserRepository)
	propertyRepo := new(mockPropertyRepository)
	searchRepo := new(mockSearchRepository)
	contactRepo := new(mockContactRepository)
	favoriteRepo := new(mockFavoriteRepository)
	usecase := newTestUserUsecase(userRepo, propertyRepo, searchRepo, contactRepo, favoriteRepo)

	t.Run("non-admin gets unauthorized", func(t *testing.T) {
		_, err := usecase.CountNewUsers(context.Background(), authz.Principal{ID: "u1", Role: constvars.RoleUser})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNotAuthorizedResource, customErr.ClientMessage)
	})

	t.Run("admin counts the lookback window", func(t *testing.T) {
		userRepo.On("CountCreatedSince", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
			expected := time.Now().AddDate(0, 0, -constvars.NewRecordWindowInDays)
			return since.Sub(expected).Abs() < time.Minute
		})).Return(int64(7), nil)

		count, err := usecase.CountNewUsers(context.Background(), authz.Principal{ID: "a1", Role: constvars.RoleAdmin})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}

func TestUpdateUser_NeverTouchesRole(t *testing.T) {
	userRepo := new(mockUserRepository)
	propertyRepo := new(mockPropertyRepository)
	searchRepo := new(mockSearchRepository)
	contactRepo := new(mockContactRepository)
	favoriteRepo := new(mockFavoriteRepository)
	usecase := newTestUserUsecase(userRepo, propertyRepo, searchRepo, contactRepo, favoriteRepo)

	stored := &models.User{ID: "u1", Name: "Old", Email: "old@example.com", Role: constvars.RoleAdmin}
	userRepo.On("FindByID", mock.Anything, "u1").Return(stored, nil)
	userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, exceptions.ErrUserNotFound(errors.New("no rows")))
	userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "New" && u.Email == "new@example.com" && u.Role == constvars.RoleAdmin
	})).Return(nil)

	updated, err := usecase.UpdateUser(context.Background(), "u1", &requests.UpdateUser{Name: "New", Email: "new@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, constvars.RoleAdmin, updated.Role)
}
