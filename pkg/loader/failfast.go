package loader

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
	"github.com/ajitpratap0/comconfig/pkg/logger"
)

// terminate is the only place a load failure becomes process termination.
// It emits exactly one fatal line carrying the path, the error type and the
// identifiers of the offending entity, then exits.
func terminate(path string, err error) {
	fields := []zap.Field{
		zap.String("path", path),
		zap.String("error_type", string(cfgerrors.TypeOf(err))),
	}
	var cfgErr *cfgerrors.Error
	if errors.As(err, &cfgErr) {
		for _, key := range cfgErr.DetailKeys() {
			if key == "path" {
				continue
			}
			fields = append(fields, zap.Any(key, cfgErr.Details[key]))
		}
	}
	logger.Fatal(err.Error(), fields...)
	// Reached only if an installed fatal hook returns.
	os.Exit(1)
}

func invariant(format string, args ...interface{}) *cfgerrors.Error {
	return cfgerrors.Newf(cfgerrors.ErrorTypeInvariant, format, args...)
}

func requiredField(table, field string) *cfgerrors.Error {
	return cfgerrors.Newf(cfgerrors.ErrorTypeRequiredField, "required field %s.%s is missing", table, field).
		WithDetail("table", table).
		WithDetail("field", field)
}

// annotate attaches an entity identifier to a structured error. Inner
// mappers report what is wrong, outer ones add where.
func annotate(err error, key string, value interface{}) error {
	var cfgErr *cfgerrors.Error
	if errors.As(err, &cfgErr) {
		if _, ok := cfgErr.Details[key]; !ok {
			cfgErr.WithDetail(key, value)
		}
	}
	return err
}

// narrow converts a wire value to a model integer no wider than limit.
func narrow[T ~uint8 | ~uint16](raw, limit uint32, field string) (T, error) {
	if raw > limit {
		return 0, invariant("%s %d exceeds the maximum of %d", field, raw, limit).
			WithDetail("field", field).
			WithDetail("value", raw)
	}
	return T(raw), nil
}

// optional is narrow for fields where 0 means unset.
func optional[T ~uint8 | ~uint16](raw, limit uint32, field string) (*T, error) {
	if raw == 0 {
		return nil, nil
	}
	v, err := narrow[T](raw, limit, field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalSize(raw uint64) *uint64 {
	if raw == 0 {
		return nil
	}
	return &raw
}
