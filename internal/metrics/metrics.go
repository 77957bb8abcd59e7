package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Relay metrics. All series are unlabeled on purpose: per-player or per-room
// labels would hand an adversarial client unbounded cardinality.
var (
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "relay_connections_active",
		Help: "Currently registered connections",
	})

	RoomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "relay_rooms_active",
		Help: "Currently live rooms",
	})

	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_rooms_created_total",
		Help: "Total rooms created",
	})

	UpdatesRelayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_updates_relayed_total",
		Help: "Total player state updates fanned out",
	})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_events_dropped_total",
		Help: "Events dropped because a recipient buffer was full",
	})

	MessagesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_messages_rejected_total",
		Help: "Inbound envelopes rejected by the per-connection rate limit",
	})
)

// Handler exposes the Prometheus registry, mounted at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
