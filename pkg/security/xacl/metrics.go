package xacl

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/omeyang/ipacl/xacl"

	metricCheckAddresses = "ipacl.check.addresses"
	metricRanges         = "ipacl.ranges"
)

var (
	attrMatched   = metric.WithAttributes(attribute.String("result", "matched"))
	attrUnmatched = metric.WithAttributes(attribute.String("result", "unmatched"))
	attrInvalid   = metric.WithAttributes(attribute.String("result", "invalid"))
	attrIPv4      = metric.WithAttributes(attribute.String("family", "ipv4"))
	attrIPv6      = metric.WithAttributes(attribute.String("family", "ipv6"))
)

type metrics struct {
	checks metric.Int64Counter
	ranges metric.Int64UpDownCounter
}

func newMetrics(provider metric.MeterProvider) (*metrics, error) {
	meter := provider.Meter(instrumentationName)

	checks, err := meter.Int64Counter(
		metricCheckAddresses,
		metric.WithDescription("Addresses evaluated against the ACL, by result."),
		metric.WithUnit("{address}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xacl: create %s counter: %w", metricCheckAddresses, err)
	}
	ranges, err := meter.Int64UpDownCounter(
		metricRanges,
		metric.WithDescription("Ranges stored in the ACL, by address family."),
		metric.WithUnit("{range}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xacl: create %s counter: %w", metricRanges, err)
	}
	return &metrics{checks: checks, ranges: ranges}, nil
}

// checkTally 汇总一次 Check 调用的结果，调用结束后一次性上报。
type checkTally struct {
	matched, unmatched, invalid int64
}

func (m *metrics) recordChecks(ctx context.Context, t checkTally) {
	if t.matched > 0 {
		m.checks.Add(ctx, t.matched, attrMatched)
	}
	if t.unmatched > 0 {
		m.checks.Add(ctx, t.unmatched, attrUnmatched)
	}
	if t.invalid > 0 {
		m.checks.Add(ctx, t.invalid, attrInvalid)
	}
}

func (m *metrics) recordRanges(ctx context.Context, v4, v6 int64) {
	if v4 > 0 {
		m.ranges.Add(ctx, v4, attrIPv4)
	}
	if v6 > 0 {
		m.ranges.Add(ctx, v6, attrIPv6)
	}
}
