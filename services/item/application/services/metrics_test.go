package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/ghuser/itemregistry/services/item/infrastructure/persistence/memory"
)

// counterValues collects every int64 sum from reader, keyed by instrument name.
func counterValues(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}
	return out
}

func TestItemService_Metrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	ctx := context.Background()
	svc := NewItemService(memory.NewItemRepository(), WithMeter(mp.Meter("test")))

	created, err := svc.Create(ctx, "widget", 10)
	require.NoError(t, err)
	_, err = svc.Create(ctx, " ", 0)
	require.Error(t, err)
	_, err = svc.Update(ctx, created.ID, "gadget", 20)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))

	got := counterValues(t, reader)
	assert.Equal(t, int64(1), got["items.created"])
	assert.Equal(t, int64(1), got["items.updated"])
	assert.Equal(t, int64(1), got["items.deleted"], "deleting an absent id is not counted")
	assert.Equal(t, int64(1), got["items.validation_failures"])
}
