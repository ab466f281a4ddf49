// Package telemetry builds the otel meter provider used by the http metrics middleware
package telemetry

import (
	"context"
	"fmt"
	"time"

	"todos/internal/platform/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Config controls metric export
type Config struct {
	// Enabled turns on the OTLP push exporter; disabled still yields a working provider
	Enabled     bool
	Endpoint    string
	Interval    time.Duration
	ServiceName string
	Environment string
}

// FromEnv reads CORE_API_METRICS_* from c, LOG_SERVICE and APP_ENV from the root
func FromEnv(c config.Conf) Config {
	m := c.Prefix("CORE_API_METRICS_")
	return Config{
		Enabled:     c.MayBool("CORE_API_METRICS", false),
		Endpoint:    m.MayString("ENDPOINT", "http://localhost:4318"),
		Interval:    m.MayDuration("INTERVAL", 30*time.Second),
		ServiceName: c.MayString("LOG_SERVICE", "todos-api"),
		Environment: c.MayString("APP_ENV", "development"),
	}
}

// Resource describes this process to the collector
func (c Config) Resource() *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", c.ServiceName),
		attribute.String("deployment.environment", c.Environment),
	)
}

// NewMeterProvider builds the provider and installs it as the otel global.
// Extra options are appended, tests use them to attach a manual reader
func NewMeterProvider(ctx context.Context, cfg Config, opts ...sdkmetric.Option) (*sdkmetric.MeterProvider, error) {
	all := []sdkmetric.Option{sdkmetric.WithResource(cfg.Resource())}

	if cfg.Enabled {
		exp, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(cfg.Endpoint))
		if err != nil {
			return nil, fmt.Errorf("otlp metric exporter: %w", err)
		}
		interval := cfg.Interval
		if interval <= 0 {
			interval = 30 * time.Second
		}
		all = append(all, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))))
	}

	mp := sdkmetric.NewMeterProvider(append(all, opts...)...)
	otel.SetMeterProvider(mp)
	return mp, nil
}
