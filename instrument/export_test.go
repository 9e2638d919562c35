package instrument

import "github.com/prometheus/client_golang/prometheus"

func (m *Metrics) PassesCounter() prometheus.Counter      { return m.passes }
func (m *Metrics) RelaxationsCounter() prometheus.Counter { return m.relaxations }
func (m *Metrics) LastEdgesGauge() prometheus.Gauge       { return m.lastEdges }
