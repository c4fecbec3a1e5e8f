package loader

import (
	"github.com/ajitpratap0/comconfig/pkg/configuration"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

// mapTracing maps the optional tracing section; without it the defaults apply.
func mapTracing(root *wire.ComConfiguration) (configuration.TracingConfiguration, error) {
	tracing := root.Tracing(nil)
	if tracing == nil {
		return configuration.NewTracingConfiguration(), nil
	}

	appID := tracing.ApplicationInstanceId()
	if appID == nil {
		return configuration.TracingConfiguration{}, requiredField("Tracing", "application_instance_id")
	}
	opts := []configuration.TracingOption{
		configuration.WithTracingEnabled(tracing.Enable()),
		configuration.WithApplicationInstanceID(string(appID)),
	}
	if path := tracing.TraceFilterConfigPath(); path != nil {
		opts = append(opts, configuration.WithTraceFilterConfigPath(string(path)))
	}
	return configuration.NewTracingConfiguration(opts...), nil
}
