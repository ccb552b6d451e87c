package properties

import (
	"casalist-service/internal/app/config"
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/utils"
	"context"
	"mime/multipart"
	"time"

	"go.uber.org/zap"
)

type propertyUsecase struct {
	propertyRepository contracts.PropertyRepository
	storage            contracts.Storage
	reindexPublisher   contracts.ReindexPublisher
	internalConfig     *config.InternalConfig
	log                *zap.Logger
}

func NewPropertyUsecase(
	propertyRepository contracts.PropertyRepository,
	storage contracts.Storage,
	reindexPublisher contracts.ReindexPublisher,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) PropertyUsecase {
	return &propertyUsecase{
		propertyRepository: propertyRepository,
		storage:            storage,
		reindexPublisher:   reindexPublisher,
		internalConfig:     internalConfig,
		log:                log,
	}
}

func (u *propertyUsecase) ListPublishedProperties(ctx context.Context, pagination requests.Pagination) ([]responses.PropertyResponse, *responses.Meta, error) {
	properties, err := u.propertyRepository.FindPublished(ctx, pagination.PerPage, pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := u.propertyRepository.CountPublished(ctx)
	if err != nil {
		return nil, nil, err
	}
	meta := &responses.Meta{
		CurrentPage: pagination.Page,
		PerPage:     pagination.PerPage,
		Total:       total,
	}
	return responses.NewPropertyListResponse(properties), meta, nil
}

func (u *propertyUsecase) GetAllProperties(ctx context.Context, principal authz.Principal) ([]responses.PropertyResponse, error) {
	if !authz.AllowsAdmin(principal) {
		return nil, exceptions.ErrAdminOnly()
	}
	properties, err := u.propertyRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewPropertyListResponse(properties), nil
}

func (u *propertyUsecase) GetPropertyByID(ctx context.Context, propertyID string) (*responses.PropertyDetailResponse, error) {
	propertyModel, err := u.propertyRepository.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	imgURL := ""
	if propertyModel.ImagePath != "" {
		expiry := time.Duration(u.internalConfig.App.ImageUrlExpiryTimeInHours) * time.Hour
		imgURL, err = u.storage.GetObjectUrlWithExpiryTime(ctx, propertyModel.ImagePath, expiry)
		if err != nil {
			return nil, err
		}
	}

	response := responses.NewPropertyDetailResponse(propertyModel, imgURL)
	return &response, nil
}

func (u *propertyUsecase) CreateProperty(ctx context.Context, principal authz.Principal, request *requests.CreateProperty, image *multipart.FileHeader) (*responses.PropertyResponse, error) {
	propertyModel := &models.Property{
		UserID:      principal.ID,
		Title:       request.Title,
		Description: request.Description,
		Type:        request.Type,
		Price:       request.Price,
		City:        request.City,
		Address:     request.Address,
		Bedrooms:    request.Bedrooms,
		Bathrooms:   request.Bathrooms,
		AreaSqm:     request.AreaSqm,
		Published:   request.Published,
	}

	if image != nil {
		if err := utils.ValidateImageUpload(image, u.internalConfig.Minio.ImageMaxUploadSizeInMB); err != nil {
			return nil, err
		}
		file, err := image.Open()
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		defer file.Close()

		objectName := utils.GenerateImageObjectName(image.Filename, time.Now())
		contentType := image.Header.Get(constvars.HeaderContentType)
		imagePath, err := u.storage.UploadObject(ctx, objectName, file, image.Size, contentType)
		if err != nil {
			return nil, err
		}
		propertyModel.ImagePath = imagePath
	}

	propertyID, err := u.propertyRepository.CreateProperty(ctx, propertyModel)
	if err != nil {
		return nil, err
	}

	created, err := u.propertyRepository.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	u.enqueueReindex(ctx)

	response := responses.NewPropertyResponse(created)
	return &response, nil
}

func (u *propertyUsecase) UpdateProperty(ctx context.Context, principal authz.Principal, propertyID string, request *requests.UpdateProperty) (*responses.PropertyResponse, error) {
	propertyModel, err := u.propertyRepository.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !authz.AllowsResource(principal, propertyModel) {
		return nil, exceptions.ErrNotResourceOwner("update", "property")
	}

	propertyModel.Title = request.Title
	propertyModel.Description = request.Description
	propertyModel.Type = request.Type
	propertyModel.Price = request.Price
	propertyModel.City = request.City
	propertyModel.Address = request.Address
	propertyModel.Bedrooms = request.Bedrooms
	propertyModel.Bathrooms = request.Bathrooms
	propertyModel.AreaSqm = request.AreaSqm
	propertyModel.Published = request.Published

	if err := u.propertyRepository.UpdateProperty(ctx, propertyModel); err != nil {
		return nil, err
	}

	u.enqueueReindex(ctx)

	response := responses.NewPropertyResponse(propertyModel)
	return &response, nil
}

func (u *propertyUsecase) DeleteProperty(ctx context.Context, principal authz.Principal, propertyID string) error {
	propertyModel, err := u.propertyRepository.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if !authz.AllowsResource(principal, propertyModel) {
		return exceptions.ErrNotResourceOwner("delete", "property")
	}

	if err := u.propertyRepository.DeleteByID(ctx, propertyID); err != nil {
		return err
	}

	u.enqueueReindex(ctx)
	return nil
}

func (u *propertyUsecase) CountAllProperties(ctx context.Context, principal authz.Principal) (int64, error) {
	if !authz.AllowsAdmin(principal) {
		return 0, exceptions.ErrAdminOnly()
	}
	return u.propertyRepository.CountAll(ctx)
}

func (u *propertyUsecase) CountNewProperties(ctx context.Context, principal authz.Principal) (int64, error) {
	if !authz.AllowsAdmin(principal) {
		return 0, exceptions.ErrAdminOnly()
	}
	since := time.Now().AddDate(0, 0, -constvars.NewRecordWindowInDays)
	return u.propertyRepository.CountCreatedSince(ctx, since)
}

// enqueueReindex never fails the caller: losing one trigger only delays the
// next rebuild.
func (u *propertyUsecase) enqueueReindex(ctx context.Context) {
	if err := u.reindexPublisher.EnqueueReindex(ctx); err != nil {
		u.log.Error("propertyUsecase.enqueueReindex error", zap.Error(err))
	}
}
