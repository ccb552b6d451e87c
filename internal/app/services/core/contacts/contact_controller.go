package contacts

import (
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContactController struct {
	contactUsecase ContactUsecase
	log            *zap.Logger
}

func NewContactController(contactUsecase ContactUsecase, log *zap.Logger) *ContactController {
	return &ContactController{
		contactUsecase: contactUsecase,
		log:            log,
	}
}

func (c *ContactController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("ContactController.Index called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	contacts, err := c.contactUsecase.GetAllContacts(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, contacts)
}

func (c *ContactController) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contactID := chi.URLParam(r, "contact_id")
	c.log.Info("ContactController.Show called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	contact, err := c.contactUsecase.GetContactByID(ctx, principal, contactID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, contact)
}

func (c *ContactController) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("ContactController.Store called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.CreateContact)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	contact, err := c.contactUsecase.CreateContact(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.ContactAddedSuccessMessage, contact)
}

func (c *ContactController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contactID := chi.URLParam(r, "contact_id")
	c.log.Info("ContactController.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.UpdateContact)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	contact, err := c.contactUsecase.UpdateContact(ctx, principal, contactID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.ContactUpdatedSuccessMessage, contact)
}

func (c *ContactController) Destroy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contactID := chi.URLParam(r, "contact_id")
	c.log.Info("ContactController.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := c.contactUsecase.DeleteContact(ctx, principal, contactID); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildNoContentResponse(w)
}
