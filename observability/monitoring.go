package observability

import (
	"net/http"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/process"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"webconsole/contract"
	"webconsole/domain"
)

const (
	namespace = "webconsole"

	resultMatched = "matched"
	resultUnknown = "unknown"
)

// Subscriber is the part of a console the metrics listen to.
type Subscriber interface {
	AddMessageListener(listener contract.MessageListener) (uuid.UUID, error)
	AddConnectionOpenedListener(listener contract.ConnectionListener) (uuid.UUID, error)
	AddConnectionClosedListener(listener contract.ConnectionListener) (uuid.UUID, error)
}

// MonitoringStats is a point-in-time view of the console counters.
type MonitoringStats struct {
	MessagesReceived  uint64  `json:"messages_received"`
	ConnectionsOpened uint64  `json:"connections_opened"`
	ConnectionsClosed uint64  `json:"connections_closed"`
	CommandsMatched   uint64  `json:"commands_matched"`
	CommandsUnknown   uint64  `json:"commands_unknown"`
	HandlerFailures   uint64  `json:"handler_failures"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
	RSSBytes          uint64  `json:"rss_bytes"`
	CPUPercent        float64 `json:"cpu_percent"`
	PidStatus         string  `json:"pid_status"`
}

// Metrics counts console traffic. It is exported to Prometheus through its
// own registry and implements contract.DispatchObserver for the command
// registry.
type Metrics struct {
	registry *prometheus.Registry
	// nil when the process handle could not be opened
	self     *process.Process

	messagesReceived   prometheus.Counter
	connectionsOpened  prometheus.Counter
	connectionsClosed  prometheus.Counter
	connectionsActive  prometheus.Gauge
	commandsDispatched *prometheus.CounterVec
	handlerFailures    prometheus.Counter

	// Mirrors of the Prometheus counters, readable without scraping.
	messages atomic.Uint64
	opened   atomic.Uint64
	closed   atomic.Uint64
	matched  atomic.Uint64
	unknown  atomic.Uint64
	failures atomic.Uint64
}

var _ contract.DispatchObserver = (*Metrics)(nil)

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		messagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_received_total",
			Help:      "Total messages supplied to the console",
		}),
		connectionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_opened_total",
			Help:      "Total connections opened",
		}),
		connectionsClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_closed_total",
			Help:      "Total connections closed",
		}),
		connectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Number of live connections",
		}),
		commandsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_dispatched_total",
			Help:      "Commands dispatched, by result",
		}, []string{"result"}),
		handlerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Command handlers that returned an error or panicked",
		}),
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		m.self = p
	}
	m.registry.MustRegister(
		m.messagesReceived,
		m.connectionsOpened,
		m.connectionsClosed,
		m.connectionsActive,
		m.commandsDispatched,
		m.handlerFailures,
	)
	return m
}

// Attach subscribes the metrics to every event stream of console.
func (m *Metrics) Attach(console Subscriber) error {
	if _, err := console.AddMessageListener(contract.MessageListenerFunc(m.onMessage)); err != nil {
		return err
	}
	if _, err := console.AddConnectionOpenedListener(contract.ConnectionListenerFunc(m.onOpened)); err != nil {
		return err
	}
	_, err := console.AddConnectionClosedListener(contract.ConnectionListenerFunc(m.onClosed))
	return err
}

func (m *Metrics) onMessage(domain.Message) error {
	m.messagesReceived.Inc()
	m.messages.Add(1)
	return nil
}

func (m *Metrics) onOpened(domain.Connection) error {
	m.connectionsOpened.Inc()
	m.connectionsActive.Inc()
	m.opened.Add(1)
	return nil
}

func (m *Metrics) onClosed(domain.Connection) error {
	m.connectionsClosed.Inc()
	m.connectionsActive.Dec()
	m.closed.Add(1)
	return nil
}

// CommandDispatched only labels by result: unknown names come from clients
// and would make the label set unbounded.
func (m *Metrics) CommandDispatched(_ string, matched bool) {
	if matched {
		m.commandsDispatched.WithLabelValues(resultMatched).Inc()
		m.matched.Add(1)
		return
	}
	m.commandsDispatched.WithLabelValues(resultUnknown).Inc()
	m.unknown.Add(1)
}

func (m *Metrics) HandlerFailed(string, error) {
	m.handlerFailures.Inc()
	m.failures.Add(1)
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) GetLatest() MonitoringStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats := MonitoringStats{
		MessagesReceived:  m.messages.Load(),
		ConnectionsOpened: m.opened.Load(),
		ConnectionsClosed: m.closed.Load(),
		CommandsMatched:   m.matched.Load(),
		CommandsUnknown:   m.unknown.Load(),
		HandlerFailures:   m.failures.Load(),
		AllocMemMb:        mem.Alloc / 1024 / 1024,
		NumGC:             mem.NumGC,
	}
	if m.self != nil {
		// Process stats are best effort; a failed read leaves them zero.
		if rss, cpu, status, err := selfStats(m.self); err == nil {
			stats.RSSBytes, stats.CPUPercent, stats.PidStatus = rss, cpu, status
		}
	}
	return stats
}

// selfStats reads memory, CPU and OS status of the console process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
