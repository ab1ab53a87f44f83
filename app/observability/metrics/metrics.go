package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	OrdersCreatedTotal       prometheus.Counter
	OrderStatusAdvancesTotal *prometheus.CounterVec
	ChatRepliesTotal         *prometheus.CounterVec
	ChatEscalationsTotal     prometheus.Counter
	AuthAttemptsTotal        *prometheus.CounterVec
	StoreOpDurationSeconds   *prometheus.HistogramVec
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Get initializes the global metric instruments once and returns them.
func Get() *AppMetrics {
	once.Do(func() {
		appMetrics = &AppMetrics{
			OrdersCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "foodie_orders_created_total",
				Help: "Total number of orders created via checkout or seeding",
			}),
			OrderStatusAdvancesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "foodie_order_status_advances_total",
				Help: "Order status transitions applied, labelled by target status",
			}, []string{"status"}),
			ChatRepliesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "foodie_chat_replies_total",
				Help: "Chat engine replies, labelled by matched rule",
			}, []string{"rule"}),
			ChatEscalationsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "foodie_chat_escalations_total",
				Help: "Conversations escalated from the bot to a human flow",
			}),
			AuthAttemptsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "foodie_auth_attempts_total",
				Help: "Auth operations, labelled by operation and outcome",
			}, []string{"operation", "outcome"}),
			StoreOpDurationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "foodie_store_op_duration_seconds",
				Help:    "Duration of key-value store operations",
				Buckets: prometheus.DefBuckets,
			}, []string{"op"}),
		}
	})
	return appMetrics
}
