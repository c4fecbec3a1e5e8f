package configuration

// DefaultTraceFilterConfigPath is used when the descriptor names no trace filter file.
const DefaultTraceFilterConfigPath = "./etc/mw_com_trace_filter.json"

// TracingConfiguration holds the IPC tracing settings.
type TracingConfiguration struct {
	enabled               bool
	applicationInstanceID string
	traceFilterConfigPath string
}

// TracingOption customizes a TracingConfiguration.
type TracingOption func(*TracingConfiguration)

func WithTracingEnabled(enabled bool) TracingOption {
	return func(t *TracingConfiguration) { t.enabled = enabled }
}

func WithApplicationInstanceID(id string) TracingOption {
	return func(t *TracingConfiguration) { t.applicationInstanceID = id }
}

func WithTraceFilterConfigPath(path string) TracingOption {
	return func(t *TracingConfiguration) { t.traceFilterConfigPath = path }
}

// NewTracingConfiguration returns disabled tracing with the default filter
// path, with opts applied.
func NewTracingConfiguration(opts ...TracingOption) TracingConfiguration {
	t := TracingConfiguration{traceFilterConfigPath: DefaultTraceFilterConfigPath}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func (t TracingConfiguration) Enabled() bool {
	return t.enabled
}

func (t TracingConfiguration) ApplicationInstanceID() string {
	return t.applicationInstanceID
}

func (t TracingConfiguration) TraceFilterConfigPath() string {
	return t.traceFilterConfigPath
}
