// Package loader turns a FlatBuffer deployment descriptor on disk into a
// configuration.Configuration.
//
// The file is mapped read-only, verified structurally, and only then read
// through the generated accessors. Each root section is mapped by its own
// function into model values that own their memory, so the mapping is
// released before CreateConfiguration returns.
//
// A descriptor is produced at build time. A load that fails for any reason
// (I/O, integrity, missing required field, violated invariant) is a
// deployment defect: CreateConfiguration logs one fatal diagnostic and
// terminates the process. It never returns a partial configuration.
package loader

import (
	"context"

	"go.uber.org/zap"

	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
	"github.com/ajitpratap0/comconfig/pkg/configuration"
	"github.com/ajitpratap0/comconfig/pkg/logger"
	"github.com/ajitpratap0/comconfig/pkg/metrics"
	"github.com/ajitpratap0/comconfig/pkg/mmap"
	"github.com/ajitpratap0/comconfig/pkg/observability"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

// CreateConfiguration loads the descriptor at path or terminates the process.
func CreateConfiguration(path string) *configuration.Configuration {
	return CreateConfigurationContext(context.Background(), path)
}

// CreateConfigurationContext is CreateConfiguration with a parent context
// for the load span.
func CreateConfigurationContext(ctx context.Context, path string) *configuration.Configuration {
	timer := metrics.NewTimer("load")
	cfg, err := load(ctx, path)
	metrics.ObserveLoad(timer.Stop(), err)
	if err != nil {
		terminate(path, err)
		return nil
	}
	return cfg
}

func load(ctx context.Context, path string) (cfg *configuration.Configuration, err error) {
	_, span := observability.NewSpan(ctx, "CreateConfiguration")
	span.SetAttribute("path", path)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	buf := reader.Bytes()
	metrics.BufferBytes.Set(float64(len(buf)))
	logger.Debug("mapped descriptor file", zap.String("path", reader.Path()), zap.Int64("bytes", reader.Size()))

	root, err := readRoot(buf)
	if err != nil {
		return nil, err
	}

	serviceTypes, err := mapServiceTypes(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("mapped service types", zap.String("path", path), zap.Int("service_types", len(serviceTypes)))

	serviceInstances, err := mapServiceInstances(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("mapped service instances", zap.String("path", path), zap.Int("service_instances", len(serviceInstances)))

	global, err := mapGlobal(root)
	if err != nil {
		return nil, err
	}
	tracing, err := mapTracing(root)
	if err != nil {
		return nil, err
	}

	cfg = configuration.NewConfiguration(serviceTypes, serviceInstances, global, tracing)

	metrics.ObserveDeployments(len(serviceTypes), len(serviceInstances))
	span.SetAttribute("service_types", len(serviceTypes))
	span.SetAttribute("service_instances", len(serviceInstances))
	logger.Info("loaded configuration",
		zap.String("path", path),
		zap.Int("service_types", len(serviceTypes)),
		zap.Int("service_instances", len(serviceInstances)))
	return cfg, nil
}

// readRoot verifies buf and returns the typed root. The root must never be
// obtained from bytes that have not passed verification.
func readRoot(buf []byte) (*wire.ComConfiguration, error) {
	if err := wire.VerifyComConfigurationBuffer(buf); err != nil {
		return nil, cfgerrors.Wrap(err, cfgerrors.ErrorTypeIntegrity, "FlatBuffer verification failed")
	}
	if _, ok := wire.RootOffset(buf); !ok {
		return nil, cfgerrors.New(cfgerrors.ErrorTypeIntegrity, "failed to get ComConfiguration from buffer")
	}
	return wire.GetRootAsComConfiguration(buf, 0), nil
}
