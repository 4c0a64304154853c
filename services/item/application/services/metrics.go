package services

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type itemMetrics struct {
	created            metric.Int64Counter
	updated            metric.Int64Counter
	deleted            metric.Int64Counter
	validationFailures metric.Int64Counter
}

// newItemMetrics registers the item counters on meter. An instrument that
// fails to register is replaced by a no-op counter.
func newItemMetrics(meter metric.Meter) itemMetrics {
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit("{item}"))
		if err != nil {
			return noop.Int64Counter{}
		}
		return c
	}
	return itemMetrics{
		created:            counter("items.created", "Items created"),
		updated:            counter("items.updated", "Items updated"),
		deleted:            counter("items.deleted", "Items removed by delete"),
		validationFailures: counter("items.validation_failures", "Create requests rejected by validation"),
	}
}
