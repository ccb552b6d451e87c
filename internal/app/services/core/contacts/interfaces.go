package contacts

import (
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"context"
)

type ContactUsecase interface {
	GetAllContacts(ctx context.Context, principal authz.Principal) ([]responses.ContactResponse, error)
	GetContactByID(ctx context.Context, principal authz.Principal, contactID string) (*responses.ContactResponse, error)
	CreateContact(ctx context.Context, principal authz.Principal, request *requests.CreateContact) (*responses.ContactResponse, error)
	UpdateContact(ctx context.Context, principal authz.Principal, contactID string, request *requests.UpdateContact) (*responses.ContactResponse, error)
	DeleteContact(ctx context.Context, principal authz.Principal, contactID string) error
}
