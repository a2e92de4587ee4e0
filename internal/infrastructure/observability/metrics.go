// Package observability records session activity as Prometheus metrics.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/domain/values"
)

const namespace = "rigbook"

// Ensure interface compliance
var _ ports.InventoryMetrics = (*Metrics)(nil)

// Metrics holds the inventory counters of one process.
// It uses a custom registry to avoid polluting the global default.
type Metrics struct {
	Registry *prometheus.Registry

	DevicesAdded   *prometheus.CounterVec
	DevicesEdited  *prometheus.CounterVec
	DevicesDeleted *prometheus.CounterVec
	InputsRejected *prometheus.CounterVec
	InventoryItems prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered on
// a custom registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		DevicesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_added_total",
			Help:      "Total number of devices added.",
		}, []string{"kind"}),
		DevicesEdited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_edited_total",
			Help:      "Total number of devices edited.",
		}, []string{"kind"}),
		DevicesDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_deleted_total",
			Help:      "Total number of devices deleted.",
		}, []string{"kind"}),
		InputsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inputs_rejected_total",
			Help:      "Total number of device requests rejected, by offending field.",
		}, []string{"field"}),
		InventoryItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_items",
			Help:      "Current number of devices in the inventory.",
		}),
	}

	reg.MustRegister(
		m.DevicesAdded,
		m.DevicesEdited,
		m.DevicesDeleted,
		m.InputsRejected,
		m.InventoryItems,
	)

	return m
}

// DeviceAdded implements ports.InventoryMetrics.
func (m *Metrics) DeviceAdded(kind values.DeviceKind) {
	m.DevicesAdded.WithLabelValues(kind.String()).Inc()
}

// DeviceEdited implements ports.InventoryMetrics.
func (m *Metrics) DeviceEdited(kind values.DeviceKind) {
	m.DevicesEdited.WithLabelValues(kind.String()).Inc()
}

// DeviceDeleted implements ports.InventoryMetrics.
func (m *Metrics) DeviceDeleted(kind values.DeviceKind) {
	m.DevicesDeleted.WithLabelValues(kind.String()).Inc()
}

// InputRejected implements ports.InventoryMetrics.
func (m *Metrics) InputRejected(field string) {
	m.InputsRejected.WithLabelValues(field).Inc()
}

// InventorySize implements ports.InventoryMetrics.
func (m *Metrics) InventorySize(n int) {
	m.InventoryItems.Set(float64(n))
}

// Summary totals the counters across labels.
type Summary struct {
	Added     int
	Edited    int
	Deleted   int
	Rejected  int
	Inventory int
}

func (s Summary) String() string {
	return fmt.Sprintf("Session: %d added, %d edited, %d deleted, %d rejected; %d in inventory",
		s.Added, s.Edited, s.Deleted, s.Rejected, s.Inventory)
}

// Summary gathers the registry and totals each family.
func (m *Metrics) Summary() (Summary, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var s Summary
	for _, f := range families {
		total := int(sumFamily(f))
		switch f.GetName() {
		case namespace + "_devices_added_total":
			s.Added = total
		case namespace + "_devices_edited_total":
			s.Edited = total
		case namespace + "_devices_deleted_total":
			s.Deleted = total
		case namespace + "_inputs_rejected_total":
			s.Rejected = total
		case namespace + "_inventory_items":
			s.Inventory = total
		}
	}
	return s, nil
}

func sumFamily(f *dto.MetricFamily) float64 {
	var total float64
	for _, metric := range f.GetMetric() {
		switch f.GetType() {
		case dto.MetricType_COUNTER:
			total += metric.GetCounter().GetValue()
		case dto.MetricType_GAUGE:
			total += metric.GetGauge().GetValue()
		}
	}
	return total
}
