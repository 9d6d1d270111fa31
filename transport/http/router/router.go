package router

import (
	"github.com/go-chi/chi/v5"

	"recanto/internal/handlers/auth"
	"recanto/internal/handlers/availability"
	"recanto/internal/handlers/booking"
	"recanto/internal/handlers/notification"
	"recanto/internal/handlers/payment"
	"recanto/internal/handlers/property"
	"recanto/internal/handlers/review"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Property     property.Handler
	Booking      booking.Handler
	Payment      payment.Handler
	Review       review.Handler
	Availability availability.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
