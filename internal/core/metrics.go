package core

import "github.com/prometheus/client_golang/prometheus"

var (
	ConnectedSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "linechat_connected_sessions",
		Help: "Number of currently connected sessions, authenticated or not",
	})

	CommandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linechat_commands_total",
		Help: "Total commands dispatched by keyword",
	}, []string{"command"})

	DeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linechat_deliveries_total",
		Help: "Total lines delivered to clients by kind",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(ConnectedSessions)
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(DeliveriesTotal)
}
