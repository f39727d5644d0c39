package room

import (
	"net/http"
	"paradasia/infras/otel"
	"paradasia/internal/domains/room/model/dto"
	"paradasia/internal/domains/room/service"
	"paradasia/shared/constant"
	"paradasia/shared/validator"
	"paradasia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamCode = "code"

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Patch("/{code}/rate", handler.UpdateRoomRate)
	})
}

// GetRoomTypes lists the bookable room catalog.
// @Summary Get room types
// @Description Retrieve the active room types with their current rates.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "List of room types"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room types retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRoomRate changes the nightly rate of a room type. Existing bookings
// keep the rate they were priced at.
// @Summary Update a room rate
// @Description Update the nightly rate of a room type. Does not affect existing bookings.
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room type code"
// @Param request body dto.UpdateRateRequest true "Update Rate Request"
// @Success 200 {object} response.Message "Room rate updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{code}/rate [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomRate")
	defer scope.End()

	code := chi.URLParam(r, requestParamCode)

	req := dto.UpdateRateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRate(ctx, req, code); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room rate")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room rate updated successfully")

	response.WithMessage(w, http.StatusOK, "Room rate updated successfully")
}
