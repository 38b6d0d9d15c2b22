package contact

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/softsell/site/backend/internal/model/contact"
	contactService "github.com/softsell/site/backend/internal/service/contact"
	"github.com/softsell/site/backend/pkg/utils"
)

// Handler serves the contact form endpoints.
type Handler struct {
	contactSvc *contactService.Service
	logger     *zap.Logger
}

// New creates a contact handler.
func New(contactSvc *contactService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{contactSvc: contactSvc, logger: logger}
}

// RegisterRoutes registers contact routes. writeMW wraps the submission route.
func (h *Handler) RegisterRoutes(r chi.Router, writeMW ...func(http.Handler) http.Handler) {
	r.Get("/contact/license-types", h.handleLicenseTypes)
	r.Post("/contact/validate", h.handleValidate)
	r.With(writeMW...).Post("/contact", h.handleSubmit)
}

type validationResponse struct {
	Valid    bool           `json:"valid"`
	Errors   contact.Errors `json:"errors"`
	Messages contact.Errors `json:"messages"`
}

type rejectedResponse struct {
	Errors   contact.Errors `json:"errors"`
	Messages contact.Errors `json:"messages"`
}

type acceptedResponse struct {
	Status     string             `json:"status"`
	Submission contact.Submission `json:"submission"`
}

func (h *Handler) handleLicenseTypes(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string][]string{"licenseTypes": contact.LicenseTypes()})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if err := utils.DecodeJSON(w, r, &form); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := h.contactSvc.Validate(form)
	utils.RespondJSON(w, http.StatusOK, validationResponse{
		Valid:    errs.Valid(),
		Errors:   errs,
		Messages: errs.Messages(),
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if err := utils.DecodeJSON(w, r, &form); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, errs, err := h.contactSvc.Submit(r.Context(), form)
	switch {
	case errors.Is(err, contactService.ErrInvalidForm):
		utils.RespondJSON(w, http.StatusUnprocessableEntity, rejectedResponse{Errors: errs, Messages: errs.Messages()})
	case err != nil:
		h.logger.Error("contact submission failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "could not store submission")
	default:
		utils.RespondJSON(w, http.StatusAccepted, acceptedResponse{Status: "accepted", Submission: sub})
	}
}
