package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics holds the ledger counters on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	purchases    *prometheus.CounterVec
	ruleFailures *prometheus.CounterVec
	salesTotal   prometheus.Counter
	salesAmount  prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cafe_purchases_total",
			Help: "Purchase attempts by outcome.",
		}, []string{"outcome"}),
		ruleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cafe_rule_failures_total",
			Help: "Business rule failures by error kind.",
		}, []string{"kind"}),
		salesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cafe_sales_recorded_total",
			Help: "Sale records written, manual and from purchases.",
		}),
		salesAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cafe_sales_amount_total",
			Help: "Sum of recorded sale amounts.",
		}),
	}
	m.registry.MustRegister(m.purchases, m.ruleFailures, m.salesTotal, m.salesAmount)
	return m
}

func (m *Metrics) PurchaseOutcome(outcome string) {
	if m == nil {
		return
	}
	m.purchases.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RuleFailure(kind string) {
	if m == nil {
		return
	}
	m.ruleFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) SaleRecorded(amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.salesTotal.Inc()
	f, _ := amount.Float64()
	m.salesAmount.Add(f)
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
