package router

import (
	"hotelpos/internal/handlers/auth"
	"hotelpos/internal/handlers/order"
	"hotelpos/internal/handlers/product"
	"hotelpos/internal/handlers/report"
	"hotelpos/internal/handlers/reservation"
	"hotelpos/internal/handlers/room"
	"hotelpos/internal/handlers/stay"
	"hotelpos/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Room        room.Handler
	Reservation reservation.Handler
	Stay        stay.Handler
	Product     product.Handler
	Order       order.Handler
	Report      report.Handler
	User        user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Stay.Router(routerGroup)
		r.DomainHandlers.Product.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
