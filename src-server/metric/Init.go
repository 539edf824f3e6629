package metric

import (
	"errors"
	"log/slog"
	"time"

	"huddle/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AttendeesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "huddle_attendees_created_total",
		Help: "Number of attendees registered",
	})
	GroupsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "huddle_groups_created_total",
		Help: "Number of groups created, by origin (manual or suggestion)",
	}, []string{"origin"})
	GroupsLocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "huddle_groups_locked_total",
		Help: "Number of lock requests that succeeded",
	})
	Assignments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "huddle_assignments_total",
		Help: "Number of attendees assigned to a group by hand",
	})
)

// register returns the gauge that ends up in the default registry, which is the
// existing one if a previous Init already registered the name.
func register(name string, gauge prometheus.Gauge) (prometheus.Gauge, bool) {
	if err := prometheus.Register(gauge); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			slog.Error("can't register metric", "metric", name, "error", err)
			return nil, false
		}
		existing, ok := are.ExistingCollector.(prometheus.Gauge)
		if !ok {
			slog.Error("metric registered with another type", "metric", name)
			return nil, false
		}
		gauge = existing
	}
	slog.Debug("metric registered", "metric", name)
	gauge.Set(0)
	return gauge, true
}

func unregister(name string, gauge prometheus.Gauge) {
	switch prometheus.Unregister(gauge) {
	case true:
		slog.Debug("metric unregistered", "metric", name)
	case false:
		slog.Warn("metric not registered", "metric", name)
	}
}

// latencyGauge shows the last sample received on ch and falls back to 0 when
// nothing arrives for clearInterval.
func latencyGauge(as *utils.AppState, name, help string, ch chan float64, clearInterval time.Duration) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	})
	gauge, ok := register(name, gauge)
	if !ok {
		return
	}
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		clearTicker := time.NewTicker(clearInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				unregister(name, gauge)
				return
			case latency := <-ch:
				gauge.Set(latency)
				clearTicker.Reset(clearInterval)
			case <-clearTicker.C:
				gauge.Set(0)
			}
		}
	}()
}

func databaseEmptyRead(as *utils.AppState, tickerInterval time.Duration) {
	name := "huddle_database_empty_read_microsec"
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: "The latency of an empty database read in microseconds",
	})
	gauge, ok := register(name, gauge)
	if !ok {
		return
	}
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				unregister(name, gauge)
				return
			case <-ticker.C:
				latency, err := database(as)
				if err != nil {
					slog.Error("can't get database latency", "error", err)
					continue
				}
				gauge.Set(float64(latency.Microseconds()))
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	databaseEmptyRead(as, tickerInterval)
	latencyGauge(as,
		"huddle_database_read_microsec",
		"The latency of a database read in microseconds",
		as.MetricChans.DatabaseRead, clearTickerInterval)
	latencyGauge(as,
		"huddle_database_write_microsec",
		"The latency of a database write in microseconds",
		as.MetricChans.DatabaseWrite, clearTickerInterval)
	latencyGauge(as,
		"huddle_webhook_send_microsec",
		"The latency of a lock notification webhook call in microseconds",
		as.MetricChans.WebhookSend, clearTickerInterval)
}
