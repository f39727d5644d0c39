package router

import (
	"paradasia/internal/handlers/auth"
	"paradasia/internal/handlers/booking"
	"paradasia/internal/handlers/inquiry"
	"paradasia/internal/handlers/payment"
	"paradasia/internal/handlers/review"
	"paradasia/internal/handlers/room"
	"paradasia/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Room    room.Handler
	Booking booking.Handler
	Payment payment.Handler
	Inquiry inquiry.Handler
	Review  review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
