package config

// ObservabilityConfig holds OpenTelemetry bootstrap configuration shared
// by all three harnesses.
type ObservabilityConfig struct {
	OTelEnabled   bool   `env:"GROWPLAN_OTEL_ENABLED"`
	OTelCollector string `env:"GROWPLAN_OTEL_COLLECTOR"`
	ServiceName   string `env:"OTEL_SERVICE_NAME"`
}

// WithDefaults fills in zero-valued fields the harnesses need to boot a
// usable exporter even with an empty environment.
func (c ObservabilityConfig) WithDefaults(defaultServiceName string) ObservabilityConfig {
	if c.OTelCollector == "" {
		c.OTelCollector = "localhost:4317"
	}
	if c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}
	return c
}
