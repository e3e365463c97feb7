package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	BookingsCreated       *prometheus.CounterVec
	BookingsCancelled     *prometheus.CounterVec
	WaitingListNotified   *prometheus.CounterVec
	WaitingListSubscribed *prometheus.CounterVec
	MailDeliveryFailures  *prometheus.CounterVec
}

// New регистрирует метрики в дефолтном регистре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном регистре (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"app": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"service", "operation", "status"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"service"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{"service"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"service"}),

		BookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created per date type",
			ConstLabels: constLabels,
		}, []string{"date_type"}),

		BookingsCancelled: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Bookings cancelled per date type and initiator",
			ConstLabels: constLabels,
		}, []string{"date_type", "by"}),

		WaitingListNotified: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "waiting_list_notifications_total",
			Help:        "Waiting list invite mails per date type and result",
			ConstLabels: constLabels,
		}, []string{"date_type", "result"}),

		WaitingListSubscribed: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "waiting_list_subscriptions_total",
			Help:        "Waiting list subscriptions per date type",
			ConstLabels: constLabels,
		}, []string{"date_type"}),

		MailDeliveryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "mail_delivery_failures_total",
			Help:        "Failed mail deliveries per template",
			ConstLabels: constLabels,
		}, []string{"template"}),
	}
}

// Методы ниже безопасны для nil receiver: если метрики выключены, вызовы ничего не делают

// BookingCreated учитывает созданное бронирование
func (m *Metrics) BookingCreated(dateType string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(dateType).Inc()
}

// BookingCancelled учитывает отмену бронирования (by = "user" | "admin")
func (m *Metrics) BookingCancelled(dateType, by string) {
	if m == nil {
		return
	}
	m.BookingsCancelled.WithLabelValues(dateType, by).Inc()
}

// WaitingListNotification учитывает отправку приглашения из листа ожидания
func (m *Metrics) WaitingListNotification(dateType string, ok bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !ok {
		result = "failed"
	}
	m.WaitingListNotified.WithLabelValues(dateType, result).Inc()
}

// WaitingListSubscription учитывает подписку на лист ожидания
func (m *Metrics) WaitingListSubscription(dateType string) {
	if m == nil {
		return
	}
	m.WaitingListSubscribed.WithLabelValues(dateType).Inc()
}

// MailFailed учитывает неудачную отправку письма
func (m *Metrics) MailFailed(template string) {
	if m == nil {
		return
	}
	m.MailDeliveryFailures.WithLabelValues(template).Inc()
}
