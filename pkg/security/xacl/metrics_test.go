package xacl

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMeterProvider() (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return mp, reader
}

// collectSums 按 "指标名/属性值" 汇总 Int64 Sum 数据点。
func collectSums(t *testing.T, reader *sdkmetric.ManualReader, key attribute.Key) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(key)
				out[m.Name+"/"+v.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestMetrics_Checks(t *testing.T) {
	mp, reader := newTestMeterProvider()
	defer func() { _ = mp.Shutdown(context.Background()) }()

	acl, err := New([]string{"10.0.0.0/8"}, WithLogger(discardLogger()), WithMeterProvider(mp))
	require.NoError(t, err)

	acl.Check("10.0.0.1", "10.0.0.2", "11.0.0.1", "garbage")
	acl.CheckAddr(netip.MustParseAddr("10.3.3.3"))

	sums := collectSums(t, reader, "result")
	assert.Equal(t, int64(3), sums[metricCheckAddresses+"/matched"])
	assert.Equal(t, int64(1), sums[metricCheckAddresses+"/unmatched"])
	assert.Equal(t, int64(1), sums[metricCheckAddresses+"/invalid"])
}

func TestMetrics_Ranges(t *testing.T) {
	mp, reader := newTestMeterProvider()
	defer func() { _ = mp.Shutdown(context.Background()) }()

	acl, err := New([]string{"10.0.0.0/8", "2001:db8::/32"}, WithLogger(discardLogger()), WithMeterProvider(mp))
	require.NoError(t, err)
	require.NoError(t, acl.Add("192.168", "172.16"))
	require.Error(t, acl.Add("::1", "bogus"))

	sums := collectSums(t, reader, "family")
	assert.Equal(t, int64(3), sums[metricRanges+"/ipv4"])
	assert.Equal(t, int64(1), sums[metricRanges+"/ipv6"])
}
