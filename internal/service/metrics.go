package service

import "github.com/prometheus/client_golang/prometheus"

var vacationTransitions = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "vacation_transitions_total", Help: "Vacation request state changes"},
	[]string{"status"},
)

func init() { prometheus.MustRegister(vacationTransitions) }
