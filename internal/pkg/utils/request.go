package utils

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// BuildPaginationRequest reads page and per_page from the query string,
// falling back to page 1 and the default page size on missing or
// unparseable values.
func BuildPaginationRequest(r *http.Request) requests.Pagination {
	pagination := requests.Pagination{
		Page:    1,
		PerPage: constvars.DefaultPageSize,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			pagination.Page = page
		}
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if perPage, err := strconv.Atoi(raw); err == nil && perPage > 0 {
			pagination.PerPage = perPage
		}
	}

	return pagination
}

func GetRequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok && session != nil
}

// GetPrincipalFromContext resolves the authenticated actor placed on the
// context by the auth middleware.
func GetPrincipalFromContext(ctx context.Context) (authz.Principal, error) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return authz.Principal{}, exceptions.ErrTokenMissing(nil)
	}
	return authz.FromSession(session), nil
}
