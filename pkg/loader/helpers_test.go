package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/comconfig/internal/fixture"
	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
	"github.com/ajitpratap0/comconfig/pkg/configuration"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

var radarID = configuration.NewServiceIdentifier("Radar", 1, 0)

// rootOf builds d and returns its verified root.
func rootOf(t *testing.T, d fixture.Descriptor) *wire.ComConfiguration {
	t.Helper()
	root, err := readRoot(d.Build())
	require.NoError(t, err)
	return root
}

func specifier(t *testing.T, s string) configuration.InstanceSpecifier {
	t.Helper()
	spec, err := configuration.NewInstanceSpecifier(s)
	require.NoError(t, err)
	return spec
}

// requireError asserts err is a structured error of type want and returns it.
func requireError(t *testing.T, err error, want cfgerrors.ErrorType) *cfgerrors.Error {
	t.Helper()
	require.Error(t, err)
	var cfgErr *cfgerrors.Error
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, want, cfgErr.Type, err.Error())
	return cfgErr
}

func expectedRadarTypes() map[configuration.ServiceIdentifier]configuration.ServiceTypeDeployment {
	return map[configuration.ServiceIdentifier]configuration.ServiceTypeDeployment{
		radarID: {Binding: configuration.LolaServiceTypeDeployment{
			ServiceID: 6432,
			Events:    map[string]configuration.LolaEventID{"Detections": 3},
			Fields:    map[string]configuration.LolaFieldID{},
			Methods:   map[string]configuration.LolaMethodID{},
		}},
	}
}

func expectedRadarInstances(t *testing.T) map[configuration.InstanceSpecifier]configuration.ServiceInstanceDeployment {
	spec := specifier(t, "abs/radar")
	return map[configuration.InstanceSpecifier]configuration.ServiceInstanceDeployment{
		spec: {
			Service:           radarID,
			AsilLevel:         configuration.QualityTypeASILB,
			InstanceSpecifier: spec,
			Binding: configuration.LolaServiceInstanceDeployment{
				Events: map[string]configuration.LolaEventInstanceDeployment{
					"Detections": {
						NumberOfSampleSlots: fixture.Ptr(uint16(4)),
						MaxSubscribers:      fixture.Ptr(uint8(2)),
						EnforceMaxSamples:   true,
					},
				},
				Fields:          map[string]configuration.LolaFieldInstanceDeployment{},
				Methods:         map[string]configuration.LolaMethodInstanceDeployment{},
				AllowedConsumer: map[configuration.QualityType][]uint32{},
				AllowedProvider: map[configuration.QualityType][]uint32{},
			},
		},
	}
}

// lolaInstance maps d and returns the SHM binding of its only instance.
func lolaInstance(t *testing.T, d fixture.Descriptor) configuration.LolaServiceInstanceDeployment {
	t.Helper()
	instances, err := mapServiceInstances(rootOf(t, d))
	require.NoError(t, err)
	require.Len(t, instances, 1)
	for _, inst := range instances {
		lola, ok := inst.Binding.(configuration.LolaServiceInstanceDeployment)
		require.True(t, ok)
		return lola
	}
	return configuration.LolaServiceInstanceDeployment{}
}
