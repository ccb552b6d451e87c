package contacts

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"time"
)

type contactUsecase struct {
	contactRepository  contracts.ContactRepository
	propertyRepository contracts.PropertyRepository
}

func NewContactUsecase(
	contactRepository contracts.ContactRepository,
	propertyRepository contracts.PropertyRepository,
) ContactUsecase {
	return &contactUsecase{
		contactRepository:  contactRepository,
		propertyRepository: propertyRepository,
	}
}

func (u *contactUsecase) GetAllContacts(ctx context.Context, principal authz.Principal) ([]responses.ContactResponse, error) {
	if !authz.AllowsAdmin(principal) {
		return nil, exceptions.ErrAdminOnly()
	}
	contacts, err := u.contactRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewContactListResponse(contacts), nil
}

func (u *contactUsecase) GetContactByID(ctx context.Context, principal authz.Principal, contactID string) (*responses.ContactResponse, error) {
	contactModel, err := u.contactRepository.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if err := u.allowsThroughProperty(ctx, principal, contactModel, "view"); err != nil {
		return nil, err
	}
	response := responses.NewContactResponse(contactModel)
	return &response, nil
}

func (u *contactUsecase) CreateContact(ctx context.Context, principal authz.Principal, request *requests.CreateContact) (*responses.ContactResponse, error) {
	if _, err := u.propertyRepository.FindByID(ctx, request.PropertyID); err != nil {
		return nil, err
	}

	desiredDate, err := time.Parse(constvars.PassedContactTimeLayout, request.DesiredDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	contactModel := &models.Contact{
		PropertyID:  request.PropertyID,
		UserID:      principal.ID,
		Name:        request.Name,
		Email:       request.Email,
		Phone:       request.Phone,
		Message:     request.Message,
		DesiredDate: desiredDate,
	}
	contactID, err := u.contactRepository.CreateContact(ctx, contactModel)
	if err != nil {
		return nil, err
	}

	created, err := u.contactRepository.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	response := responses.NewContactResponse(created)
	return &response, nil
}

func (u *contactUsecase) UpdateContact(ctx context.Context, principal authz.Principal, contactID string, request *requests.UpdateContact) (*responses.ContactResponse, error) {
	contactModel, err := u.contactRepository.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if err := u.allowsThroughProperty(ctx, principal, contactModel, "update"); err != nil {
		return nil, err
	}

	desiredDate, err := time.Parse(constvars.PassedContactTimeLayout, request.DesiredDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	contactModel.Name = request.Name
	contactModel.Email = request.Email
	contactModel.Phone = request.Phone
	contactModel.Message = request.Message
	contactModel.DesiredDate = desiredDate
	if err := u.contactRepository.UpdateContact(ctx, contactModel); err != nil {
		return nil, err
	}

	response := responses.NewContactResponse(contactModel)
	return &response, nil
}

func (u *contactUsecase) DeleteContact(ctx context.Context, principal authz.Principal, contactID string) error {
	contactModel, err := u.contactRepository.FindByID(ctx, contactID)
	if err != nil {
		return err
	}
	if err := u.allowsThroughProperty(ctx, principal, contactModel, "delete"); err != nil {
		return err
	}
	return u.contactRepository.DeleteByID(ctx, contactID)
}

// allowsThroughProperty resolves contact ownership through the property the
// contact was left on: the property owner, or an admin, may act on it.
func (u *contactUsecase) allowsThroughProperty(ctx context.Context, principal authz.Principal, contactModel *models.Contact, action string) error {
	propertyModel, err := u.propertyRepository.FindByID(ctx, contactModel.PropertyID)
	if err != nil {
		return err
	}
	if !authz.AllowsResource(principal, propertyModel) {
		return exceptions.ErrNotResourceOwner(action, "contact")
	}
	return nil
}
