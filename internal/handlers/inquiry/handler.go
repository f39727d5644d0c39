package inquiry

import (
	"net/http"
	"paradasia/infras/otel"
	"paradasia/internal/domains/inquiry/model"
	"paradasia/internal/domains/inquiry/model/dto"
	"paradasia/internal/domains/inquiry/service"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	"paradasia/shared/validator"
	"paradasia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInquiry)
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Patch("/{id}/status", handler.UpdateInquiryStatus)
		routerGroup.Delete("/{id}", handler.DeleteInquiry)
	})
}

// CreateInquiry records a contact-form submission. No account is required.
// @Summary Create an inquiry
// @Description Submit the contact form. Works without authentication.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} response.Data[dto.InquiryResponse] "Inquiry created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetInquiries lists inquiries for the admin dashboard.
// @Summary Get all inquiries
// @Description Retrieve all inquiries with optional status filtering and pagination.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetInquiriesResponse] "List of inquiries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)

	res, err := handler.service.GetAll(ctx, queryParams, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiries retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateInquiryStatus moves an inquiry through triage.
// @Summary Update inquiry status
// @Description Move an inquiry between new, in_progress and resolved.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateInquiryStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Inquiry status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/inquiries/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInquiryStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInquiryStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inquiry status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry status updated successfully")

	response.WithMessage(w, http.StatusOK, "Inquiry status updated successfully")
}

// DeleteInquiry removes an inquiry permanently.
// @Summary Delete an inquiry
// @Description Delete an inquiry by its unique identifier.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Message "Inquiry deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/inquiries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry deleted successfully")

	response.WithMessage(w, http.StatusOK, "Inquiry deleted successfully")
}
