package utils

import "time"

// Metric carries latency samples (microseconds) to the collectors in package metric.
type Metric struct {
	DatabaseRead  chan float64
	DatabaseWrite chan float64
	WebhookSend   chan float64
}

func NewMetric() *Metric {
	return &Metric{
		DatabaseRead:  make(chan float64, 64),
		DatabaseWrite: make(chan float64, 64),
		WebhookSend:   make(chan float64, 64),
	}
}

// Observe drops the sample when nobody is collecting.
func Observe(ch chan float64, d time.Duration) {
	select {
	case ch <- float64(d.Microseconds()):
	default:
	}
}
