package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, couponController *controllers.CouponController, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListUpcomingEvents)
	mux.HandleFunc("GET /events/filter", eventController.FilterEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventDetails)

	// Coupons
	mux.HandleFunc("POST /events/{eventID}/coupons", couponController.AddCouponToEvent)
	mux.HandleFunc("GET /events/{eventID}/coupons", couponController.ListActiveCoupons)

	mux.Handle("GET /metrics", metricsHandler)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
