package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"recanto/infras/otel"
	"recanto/internal/domains/payment/model/dto"
	"recanto/internal/domains/payment/service"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/validator"
	"recanto/transport/http/response"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/mypayments", handler.GetMyPayments)
		routerGroup.Post("/premium", handler.Premium)
		routerGroup.Post("/premium/confirm", handler.PremiumConfirm)
		routerGroup.Post("/bookings/{bookingId}/deposit", handler.ProcessDeposit)
	})
}

// GetMyPayments lists the authenticated user's payments.
// @Summary Get my payments
// @Description Retrieve the payment history of the authenticated user.
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/mypayments [get]
// @Security BearerAuth
func (handler *Handler) GetMyPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.MyPayments(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Premium starts a premium upgrade payment.
// @Summary Request premium upgrade
// @Description Create a pending payment for upgrading the account to premium.
// @Tags Payment
// @Produce json
// @Success 201 {object} response.Data[dto.PaymentResponse] "Pending premium payment"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/premium [post]
// @Security BearerAuth
func (handler *Handler) Premium(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Premium")
	defer scope.End()

	res, err := handler.service.Premium(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create premium payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Premium payment created for user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// PremiumConfirm completes a pending premium upgrade.
// @Summary Confirm premium upgrade
// @Description Complete the pending premium payment and promote the account to owner.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.ConfirmPaymentRequest true "Confirm Payment Request"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Completed payment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/premium/confirm [post]
// @Security BearerAuth
func (handler *Handler) PremiumConfirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PremiumConfirm")
	defer scope.End()

	req := dto.ConfirmPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PremiumConfirm(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm premium payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Premium upgrade confirmed for user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// ProcessDeposit pays the security deposit for a booking.
// @Summary Pay booking deposit
// @Description Pay the security deposit for a booking. A pending booking moves to confirmed.
// @Tags Payment
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body dto.ConfirmPaymentRequest true "Confirm Payment Request"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Completed deposit payment"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/bookings/{bookingId}/deposit [post]
// @Security BearerAuth
func (handler *Handler) ProcessDeposit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessDeposit")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	req := dto.ConfirmPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ProcessDeposit(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process deposit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Deposit paid for booking " + bookingID)

	response.WithJSON(w, http.StatusOK, res)
}
