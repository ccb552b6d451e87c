package properties

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockPropertyUsecase struct {
	mock.Mock
}

func (m *mockPropertyUsecase) ListPublishedProperties(ctx context.Context, pagination requests.Pagination) ([]responses.PropertyResponse, *responses.Meta, error) {
	args := m.Called(ctx, pagination)
	return args.Get(0).([]responses.PropertyResponse), args.Get(1).(*responses.Meta), args.Error(2)
}

func (m *mockPropertyUsecase) GetAllProperties(ctx context.Context, principal authz.Principal) ([]responses.PropertyResponse, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.PropertyResponse), args.Error(1)
}

func (m *mockPropertyUsecase) GetPropertyByID(ctx context.Context, propertyID string) (*responses.PropertyDetailResponse, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PropertyDetailResponse), args.Error(1)
}

func (m *mockPropertyUsecase) CreateProperty(ctx context.Context, principal authz.Principal, request *requests.CreateProperty, image *multipart.FileHeader) (*responses.PropertyResponse, error) {
	args := m.Called(ctx, principal, request, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PropertyResponse), args.Error(1)
}

func (m *mockPropertyUsecase) UpdateProperty(ctx context.Context, principal authz.Principal, propertyID string, request *requests.UpdateProperty) (*responses.PropertyResponse, error) {
	args := m.Called(ctx, principal, propertyID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PropertyResponse), args.Error(1)
}

func (m *mockPropertyUsecase) DeleteProperty(ctx context.Context, principal authz.Principal, propertyID string) error {
	args := m.Called(ctx, principal, propertyID)
	return args.Error(0)
}

func (m *mockPropertyUsecase) CountAllProperties(ctx context.Context, principal authz.Principal) (int64, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyUsecase) CountNewProperties(ctx context.Context, principal authz.Principal) (int64, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(int64), args.Error(1)
}

func newTestRouter(controller *PropertyController) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/properties/{property_id}", controller.Show)
	router.Delete("/properties/{property_id}", controller.Destroy)
	return router
}

func withSession(r *http.Request, session *models.Session) *http.Request {
	ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
	return r.WithContext(ctx)
}

func TestPropertyControllerShow_ReturnsCreatedStatus(t *testing.T) {
	usecase := new(mockPropertyUsecase)
	controller := NewPropertyController(usecase, zap.NewNop())
	router := newTestRouter(controller)

	detail := &responses.PropertyDetailResponse{
		PropertyResponse: responses.PropertyResponse{ID: "p1", Title: "Villa"},
		ImgURL:           "https://minio.local/presigned/villa.jpg",
	}
	usecase.On("GetPropertyByID", mock.Anything, "p1").Return(detail, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/properties/p1", nil))

	assert.Equal(t, constvars.StatusCreated, rec.Code)

	var body struct {
		Data responses.PropertyDetailResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "p1", body.Data.ID)
	assert.Equal(t, "https://minio.local/presigned/villa.jpg", body.Data.ImgURL)
}

func TestPropertyControllerDestroy(t *testing.T) {
	t.Run("without session responds not logged in", func(t *testing.T) {
		usecase := new(mockPropertyUsecase)
		controller := NewPropertyController(usecase, zap.NewNop())
		router := newTestRouter(controller)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/properties/p1", nil))

		assert.Equal(t, constvars.StatusUnauthorized, rec.Code)
		usecase.AssertNotCalled(t, "DeleteProperty", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-owner denial keeps the error key", func(t *testing.T) {
		usecase := new(mockPropertyUsecase)
		controller := NewPropertyController(usecase, zap.NewNop())
		router := newTestRouter(controller)

		usecase.On("DeleteProperty", mock.Anything, authz.Principal{ID: "stranger", Role: constvars.RoleUser}, "p1").
			Return(exceptions.ErrNotResourceOwner("delete", "property"))

		req := withSession(httptest.NewRequest("DELETE", "/properties/p1", nil), &models.Session{
			SessionID: "s1", UserID: "stranger", RoleName: constvars.RoleUser,
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusForbidden, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "You are not authorized to delete this property.", body["error"])
	})

	t.Run("owner delete responds no content", func(t *testing.T) {
		usecase := new(mockPropertyUsecase)
		controller := NewPropertyController(usecase, zap.NewNop())
		router := newTestRouter(controller)

		usecase.On("DeleteProperty", mock.Anything, authz.Principal{ID: "owner-1", Role: constvars.RoleUser}, "p1").
			Return(nil)

		req := withSession(httptest.NewRequest("DELETE", "/properties/p1", nil), &models.Session{
			SessionID: "s1", UserID: "owner-1", RoleName: constvars.RoleUser,
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
