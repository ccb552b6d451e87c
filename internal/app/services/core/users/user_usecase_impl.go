package users

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	userRepository     contracts.UserRepository
	propertyRepository contracts.PropertyRepository
	searchRepository   contracts.SearchRepository
	contactRepository  contracts.ContactRepository
	favoriteRepository contracts.FavoriteRepository
	log                *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	propertyRepository contracts.PropertyRepository,
	searchRepository contracts.SearchRepository,
	contactRepository contracts.ContactRepository,
	favoriteRepository contracts.FavoriteRepository,
	log *zap.Logger,
) UserUsecase {
	return &userUsecase{
		userRepository:     userRepository,
		propertyRepository: propertyRepository,
		searchRepository:   searchRepository,
		contactRepository:  contactRepository,
		favoriteRepository: favoriteRepository,
		log:                log,
	}
}

func (u *userUsecase) GetAllUsers(ctx context.Context, principal authz.Principal) ([]responses.UserResponse, error) {
	if !authz.AllowsAdmin(principal) {
		return nil, exceptions.ErrAdminOnly()
	}
	users, err := u.userRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewUserListResponse(users), nil
}

func (u *userUsecase) GetUserByID(ctx context.Context, principal authz.Principal, userID string) (*responses.UserResponse, error) {
	if !authz.AllowsAdmin(principal) {
		return nil, exceptions.ErrAdminOnly()
	}
	userModel, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := responses.NewUserResponse(userModel)
	return &response, nil
}

func (u *userUsecase) CreateUser(ctx context.Context, principal authz.Principal, request *requests.CreateUser) (*responses.UserResponse, error) {
	if !authz.AllowsAdmin(principal) {
		return nil, exceptions.ErrAdminOnly()
	}

	if existing, err := u.userRepository.FindByEmail(ctx, request.Email); err == nil && existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	userModel := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     request.Role,
	}
	userID, err := u.userRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	created, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := responses.NewUserResponse(created)
	return &response, nil
}

// UpdateUser is open to any authenticated caller and never touches the role
// column, matching the public API contract.
func (u *userUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.UserResponse, error) {
	userModel, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Email != userModel.Email {
		if existing, err := u.userRepository.FindByEmail(ctx, request.Email); err == nil && existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
	}

	userModel.Name = request.Name
	userModel.Email = request.Email
	if err := u.userRepository.UpdateUser(ctx, userModel); err != nil {
		return nil, err
	}

	updated, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := responses.NewUserResponse(updated)
	return &response, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, principal authz.Principal, userID string) error {
	if !authz.AllowsAdmin(principal) {
		return exceptions.ErrAdminOnly()
	}
	if _, err := u.userRepository.FindByID(ctx, userID); err != nil {
		return err
	}
	return u.userRepository.DeleteByID(ctx, userID)
}

func (u *userUsecase) CountAllUsers(ctx context.Context, principal authz.Principal) (int64, error) {
	if !authz.AllowsAdmin(principal) {
		return 0, exceptions.ErrAdminOnly()
	}
	return u.userRepository.CountAll(ctx)
}

func (u *userUsecase) CountNewUsers(ctx context.Context, principal authz.Principal) (int64, error) {
	if !authz.AllowsAdmin(principal) {
		return 0, exceptions.ErrAdminOnly()
	}
	since := time.Now().AddDate(0, 0, -constvars.NewRecordWindowInDays)
	return u.userRepository.CountCreatedSince(ctx, since)
}

func (u *userUsecase) GetUserContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error) {
	if !authz.AllowsUserScope(principal, userID) {
		return nil, exceptions.ErrNotAllowedToViewUserResource()
	}
	contacts, err := u.contactRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewContactListResponse(contacts), nil
}

func (u *userUsecase) GetUserPassedContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error) {
	if !authz.AllowsUserScope(principal, userID) {
		return nil, exceptions.ErrNotAllowedToViewUserResource()
	}
	contacts, err := u.contactRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewContactListResponse(filterPassedContacts(contacts, time.Now())), nil
}

func (u *userUsecase) GetUserFavorites(ctx context.Context, principal authz.Principal, userID string) ([]responses.FavoriteResponse, error) {
	if !authz.AllowsUserScope(principal, userID) {
		return nil, exceptions.ErrNotAllowedToViewUserResource()
	}
	favorites, err := u.favoriteRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewFavoriteListResponse(favorites), nil
}

func (u *userUsecase) GetUserProperties(ctx context.Context, principal authz.Principal, userID string) ([]responses.PropertyResponse, error) {
	if !authz.AllowsUserScope(principal, userID) {
		return nil, exceptions.ErrNotAllowedToViewUserResource()
	}
	properties, err := u.propertyRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewPropertyListResponse(properties), nil
}

func (u *userUsecase) GetUserSearches(ctx context.Context, principal authz.Principal, userID string) ([]responses.SearchResponse, error) {
	if !authz.AllowsUserScope(principal, userID) {
		return nil, exceptions.ErrNotAllowedToViewUserResource()
	}
	searches, err := u.searchRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewSearchListResponse(searches), nil
}

func (u *userUsecase) GetUserPropertiesContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error) {
	if !authz.AllowsUserScope(principal, userID) {
		return nil, exceptions.ErrNotAllowedToViewUserResource()
	}
	contacts, err := u.collectPropertiesContacts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewContactListResponse(contacts), nil
}

func (u *userUsecase) GetUserPropertiesPassedContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error) {
	if !authz.AllowsUserScope(principal, userID) {
		return nil, exceptions.ErrNotAllowedToViewUserResource()
	}
	contacts, err := u.collectPropertiesContacts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewContactListResponse(filterPassedContacts(contacts, time.Now())), nil
}

// collectPropertiesContacts flattens the contacts left on all of the user's
// properties: property order first, then each property's contact order. No
// dedup is applied.
func (u *userUsecase) collectPropertiesContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	properties, err := u.propertyRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	contacts := make([]models.Contact, 0)
	for i := range properties {
		propertyContacts, err := u.contactRepository.FindByPropertyID(ctx, properties[i].ID)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, propertyContacts...)
	}
	return contacts, nil
}

// filterPassedContacts keeps contacts whose desired date is strictly before
// now, compared at minute precision.
func filterPassedContacts(contacts []models.Contact, now time.Time) []models.Contact {
	cutoff := now.Truncate(time.Minute)
	passed := make([]models.Contact, 0)
	for i := range contacts {
		if contacts[i].DesiredDate.Before(cutoff) {
			passed = append(passed, contacts[i])
		}
	}
	return passed
}
