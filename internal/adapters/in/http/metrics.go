package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rentalAgreementsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rental_agreements_created_total",
		Help: "Total number of rental agreements created through the API",
	})

	vehicleReturnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vehicle_returns_total",
		Help: "Total number of successful vehicle return operations, repeated returns included",
	})
)
