package order

import "github.com/fueldash/fuel-order-service/internal/domain"

// Metrics may be nil in tests; every recorder guards for it.

func (uc *DefaultOrderUsecase) recordOrderCreatedMetrics(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCreatedTotal.WithLabelValues(order.ScheduledTime).Inc()
}

func (uc *DefaultOrderUsecase) recordTransitionMetrics(from, to domain.OrderStatus, actor string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
	if to == domain.StatusDelivered {
		uc.Metrics.OrdersDeliveredTotal.WithLabelValues().Inc()
	}
}

func (uc *DefaultOrderUsecase) recordTransitionConflict() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TransitionConflictsTotal.Inc()
}

func (uc *DefaultOrderUsecase) recordOrderCancelledMetrics(actor string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCancelledTotal.WithLabelValues(actor).Inc()
}

func (uc *DefaultOrderUsecase) recordWebhookFailure(target string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.WebhookOutboundFailures.WithLabelValues(target).Inc()
}
