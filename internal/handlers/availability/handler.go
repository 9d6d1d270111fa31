package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"recanto/infras/otel"
	"recanto/internal/domains/availability/model/dto"
	"recanto/internal/domains/availability/service"
	"recanto/shared/constant"
	"recanto/shared/failure"
	"recanto/shared/timezone"
	"recanto/shared/validator"
	"recanto/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/property/{propertyId}", handler.GetAvailability)
		routerGroup.Put("/property/{propertyId}", handler.SetAvailability)
	})
}

// GetAvailability lists a property's availability overrides.
// @Summary Get property availability
// @Description Retrieve the availability overrides of a property, optionally bounded by a date range.
// @Tags Availability
// @Produce json
// @Param propertyId path string true "Property ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetAvailabilityResponse] "Availability overrides"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/property/{propertyId} [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamPropertyID)

	rng := dto.DateRange{}

	if from := r.URL.Query().Get(constant.RequestParamDateFrom); from != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, from)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD"))

			return
		}

		rng.From = parsed
	}

	if to := r.URL.Query().Get(constant.RequestParamDateTo); to != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, to)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD"))

			return
		}

		rng.To = parsed
	}

	res, err := handler.service.GetByProperty(ctx, propertyID, rng)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetAvailability upserts availability overrides for a property.
// @Summary Set property availability
// @Description Block, unblock, or reprice specific dates of a property. Only the owner or an admin may change availability.
// @Tags Availability
// @Accept json
// @Produce json
// @Param propertyId path string true "Property ID"
// @Param request body dto.SetAvailabilityRequest true "Set Availability Request"
// @Success 200 {object} response.Message "Availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/property/{propertyId} [put]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamPropertyID)

	req := dto.SetAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Set(ctx, propertyID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability updated for property " + propertyID)

	response.WithMessage(w, http.StatusOK, "Availability updated successfully")
}
