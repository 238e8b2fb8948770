package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics covers the order lifecycle, payment reconciliation and the
// outbound webhook path.
type OrderMetrics struct {
	OrdersCreatedTotal   prometheus.CounterVec
	OrdersDeliveredTotal prometheus.CounterVec
	OrdersCancelledTotal prometheus.CounterVec

	TransitionsTotal         prometheus.CounterVec
	TransitionConflictsTotal prometheus.Counter

	PaymentsRecordedTotal prometheus.CounterVec
	PaymentsVerifiedTotal prometheus.Counter
	SignatureFailures     prometheus.Counter

	OtpGeneratedTotal prometheus.Counter

	WebhookOutboundFailures prometheus.CounterVec
	WebhookInboundTotal     prometheus.CounterVec

	RequestDuration prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders placed by customers",
			},
			[]string{"time_slot"},
		),
		OrdersDeliveredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_delivered_total",
				Help: "Orders that reached delivered",
			},
			[]string{},
		),
		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Orders cancelled before dispatch completion",
			},
			[]string{"actor"},
		),
		TransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Successful status transitions by edge",
			},
			[]string{"from", "to"},
		),
		TransitionConflictsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "order_transition_conflicts_total",
				Help: "Compare-and-swap losers on the status column",
			},
		),
		PaymentsRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_recorded_total",
				Help: "Payment attempts recorded by method",
			},
			[]string{"method"},
		),
		PaymentsVerifiedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_verified_total",
				Help: "Gateway payments verified and completed",
			},
		),
		SignatureFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_signature_failures_total",
				Help: "Gateway signature verifications rejected",
			},
		),
		OtpGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "delivery_otp_generated_total",
				Help: "Delivery verification codes issued",
			},
		),
		WebhookOutboundFailures: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_outbound_failures_total",
				Help: "Best-effort outbound pushes that failed",
			},
			[]string{"target"},
		),
		WebhookInboundTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_inbound_total",
				Help: "Inbound driver webhook results",
			},
			[]string{"outcome"},
		),
		RequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Handler latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}
}
