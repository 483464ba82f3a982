// Package metrics объявляет счётчики Prometheus для операций аутентификации.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignupAttempts считает попытки регистрации по результату:
	// success, conflict, invalid, error.
	SignupAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_signup_attempts_total",
		Help: "Total signup attempts by result.",
	}, []string{"result"})

	// LoginAttempts считает попытки входа по результату:
	// success, unauthorized, invalid, error.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_login_attempts_total",
		Help: "Total login attempts by result.",
	}, []string{"result"})
)
