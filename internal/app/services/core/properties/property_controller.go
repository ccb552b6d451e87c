package properties

import (
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/utils"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyController struct {
	propertyUsecase PropertyUsecase
	log             *zap.Logger
}

func NewPropertyController(propertyUsecase PropertyUsecase, log *zap.Logger) *PropertyController {
	return &PropertyController{
		propertyUsecase: propertyUsecase,
		log:             log,
	}
}

func (c *PropertyController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("PropertyController.Index called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	pagination := utils.BuildPaginationRequest(r)
	list, meta, err := c.propertyUsecase.ListPublishedProperties(ctx, pagination)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildListResponse(w, constvars.StatusOK, list, meta)
}

func (c *PropertyController) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("PropertyController.GetAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	list, err := c.propertyUsecase.GetAllProperties(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, list)
}

func (c *PropertyController) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	propertyID := chi.URLParam(r, "property_id")
	c.log.Info("PropertyController.Show called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPropertyIDKey, propertyID),
	)

	property, err := c.propertyUsecase.GetPropertyByID(ctx, propertyID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusCreated, property)
}

func (c *PropertyController) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("PropertyController.Store called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request, image, err := bindCreatePropertyForm(r)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	property, err := c.propertyUsecase.CreateProperty(ctx, principal, request, image)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.PropertyAddedSuccessMessage, property)
}

func (c *PropertyController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	propertyID := chi.URLParam(r, "property_id")
	c.log.Info("PropertyController.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPropertyIDKey, propertyID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.UpdateProperty)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	property, err := c.propertyUsecase.UpdateProperty(ctx, principal, propertyID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.PropertyUpdatedSuccessMessage, property)
}

func (c *PropertyController) Destroy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	propertyID := chi.URLParam(r, "property_id")
	c.log.Info("PropertyController.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPropertyIDKey, propertyID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := c.propertyUsecase.DeleteProperty(ctx, principal, propertyID); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildNoContentResponse(w)
}

func (c *PropertyController) CountAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("PropertyController.CountAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	count, err := c.propertyUsecase.CountAllProperties(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildCountResponse(w, count)
}

func (c *PropertyController) CountNew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("PropertyController.CountNew called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	count, err := c.propertyUsecase.CountNewProperties(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildCountResponse(w, count)
}

func bindCreatePropertyForm(r *http.Request) (*requests.CreateProperty, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.CreateProperty{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Type:        r.FormValue("type"),
		City:        r.FormValue("city"),
		Address:     r.FormValue("address"),
	}
	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		request.Price = price
	}
	if raw := r.FormValue("bedrooms"); raw != "" {
		bedrooms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		request.Bedrooms = bedrooms
	}
	if raw := r.FormValue("bathrooms"); raw != "" {
		bathrooms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		request.Bathrooms = bathrooms
	}
	if raw := r.FormValue("area_sqm"); raw != "" {
		areaSqm, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		request.AreaSqm = areaSqm
	}
	if raw := r.FormValue("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		request.Published = published
	}

	_, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return request, nil, nil
	}
	if err != nil {
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	return request, header, nil
}
