package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/comconfig/internal/fixture"
	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
	"github.com/ajitpratap0/comconfig/pkg/configuration"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

func TestMapServiceTypesRadar(t *testing.T) {
	types, err := mapServiceTypes(rootOf(t, fixture.Radar()))
	require.NoError(t, err)
	assert.Equal(t, expectedRadarTypes(), types)
}

func TestMapServiceTypesAllElementKinds(t *testing.T) {
	d := fixture.Radar()
	d.ServiceTypes[0].Bindings[0] = fixture.TypeBinding{
		Binding:   wire.BindingTypeSHM,
		ServiceID: 65535,
		Events:    []fixture.NamedID{{Name: "Detections", ID: 1}, {Name: "Status", ID: 255}},
		Fields:    []fixture.NamedID{{Name: "Mode", ID: 2}},
		Methods:   []fixture.NamedID{{Name: "Reset", ID: 3}},
	}

	types, err := mapServiceTypes(rootOf(t, d))
	require.NoError(t, err)
	assert.Equal(t, configuration.LolaServiceTypeDeployment{
		ServiceID: 65535,
		Events:    map[string]configuration.LolaEventID{"Detections": 1, "Status": 255},
		Fields:    map[string]configuration.LolaFieldID{"Mode": 2},
		Methods:   map[string]configuration.LolaMethodID{"Reset": 3},
	}, types[radarID].Binding)
}

func TestMapServiceTypesUniqueness(t *testing.T) {
	t.Run("duplicate identifier", func(t *testing.T) {
		d := fixture.Radar()
		d.ServiceTypes = append(d.ServiceTypes, d.ServiceTypes[0])

		_, err := mapServiceTypes(rootOf(t, d))
		cfgErr := requireError(t, err, cfgerrors.ErrorTypeInvariant)
		assert.Contains(t, cfgErr.Message, "deployed twice")
		assert.Equal(t, "Radar v1.0", cfgErr.Details["service"])
		assert.Equal(t, 1, cfgErr.Details["index"])
	})

	t.Run("distinct versions", func(t *testing.T) {
		d := fixture.Radar()
		other := d.ServiceTypes[0]
		other.Version = &fixture.Version{Major: 1, Minor: 1}
		d.ServiceTypes = append(d.ServiceTypes, other)

		types, err := mapServiceTypes(rootOf(t, d))
		require.NoError(t, err)
		assert.Len(t, types, 2)
		assert.Contains(t, types, configuration.NewServiceIdentifier("Radar", 1, 1))
	})

	t.Run("distinct names", func(t *testing.T) {
		d := fixture.Radar()
		other := d.ServiceTypes[0]
		other.Name = "Lidar"
		d.ServiceTypes = append(d.ServiceTypes, other)

		types, err := mapServiceTypes(rootOf(t, d))
		require.NoError(t, err)
		assert.Len(t, types, 2)
	})
}

func TestMapServiceTypesRequiresVersion(t *testing.T) {
	d := fixture.Radar()
	d.ServiceTypes[0].Version = nil

	_, err := mapServiceTypes(rootOf(t, d))
	cfgErr := requireError(t, err, cfgerrors.ErrorTypeInvariant)
	assert.Equal(t, "Radar", cfgErr.Details["service_type_name"])
}

func TestMapServiceTypesBindingSelection(t *testing.T) {
	shm := fixture.TypeBinding{Binding: wire.BindingTypeSHM, ServiceID: 1}
	someIP := fixture.TypeBinding{Binding: wire.BindingTypeSOME_IP, ServiceID: 2}
	unknown := fixture.TypeBinding{Binding: wire.BindingType(7), ServiceID: 3}

	tests := []struct {
		name      string
		bindings  []fixture.TypeBinding
		serviceID configuration.LolaServiceID
		wantErr   string
	}{
		{name: "single SHM", bindings: []fixture.TypeBinding{shm}, serviceID: 1},
		{name: "first SHM wins", bindings: []fixture.TypeBinding{shm, {Binding: wire.BindingTypeSHM, ServiceID: 9}}, serviceID: 1},
		{name: "SHM before SOME/IP", bindings: []fixture.TypeBinding{shm, someIP}, serviceID: 1},
		{name: "SOME/IP before SHM", bindings: []fixture.TypeBinding{someIP, shm}, wantErr: "SOME/IP"},
		{name: "unknown kind", bindings: []fixture.TypeBinding{unknown, shm}, wantErr: "unknown binding"},
		{name: "no bindings", bindings: []fixture.TypeBinding{}, wantErr: "no SHM binding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fixture.Radar()
			d.ServiceTypes[0].Bindings = tt.bindings

			types, err := mapServiceTypes(rootOf(t, d))
			if tt.wantErr != "" {
				cfgErr := requireError(t, err, cfgerrors.ErrorTypeInvariant)
				assert.Contains(t, cfgErr.Message, tt.wantErr)
				assert.Equal(t, "Radar v1.0", cfgErr.Details["service"])
				return
			}
			require.NoError(t, err)
			lola := types[radarID].Binding.(configuration.LolaServiceTypeDeployment)
			assert.Equal(t, tt.serviceID, lola.ServiceID)
		})
	}
}

func TestMapServiceTypesRanges(t *testing.T) {
	tests := []struct {
		name    string
		binding fixture.TypeBinding
		field   string
	}{
		{
			name:    "service id",
			binding: fixture.TypeBinding{ServiceID: 65536},
			field:   "service_id",
		},
		{
			name:    "event id",
			binding: fixture.TypeBinding{Events: []fixture.NamedID{{Name: "Detections", ID: 256}}},
			field:   "event_id",
		},
		{
			name:    "field id",
			binding: fixture.TypeBinding{Fields: []fixture.NamedID{{Name: "Mode", ID: 1000}}},
			field:   "field_id",
		},
		{
			name:    "method id",
			binding: fixture.TypeBinding{Methods: []fixture.NamedID{{Name: "Reset", ID: 300}}},
			field:   "method_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fixture.Radar()
			d.ServiceTypes[0].Bindings = []fixture.TypeBinding{tt.binding}

			_, err := mapServiceTypes(rootOf(t, d))
			cfgErr := requireError(t, err, cfgerrors.ErrorTypeInvariant)
			assert.Equal(t, tt.field, cfgErr.Details["field"])
		})
	}
}

func TestMapServiceTypesDuplicateElementName(t *testing.T) {
	d := fixture.Radar()
	d.ServiceTypes[0].Bindings[0].Events = []fixture.NamedID{
		{Name: "Detections", ID: 1},
		{Name: "Detections", ID: 2},
	}

	_, err := mapServiceTypes(rootOf(t, d))
	cfgErr := requireError(t, err, cfgerrors.ErrorTypeInvariant)
	assert.Equal(t, "Detections", cfgErr.Details["event"])
}

func TestMapServiceTypesOwnsItsStrings(t *testing.T) {
	buf := fixture.Radar().Build()
	root, err := readRoot(buf)
	require.NoError(t, err)

	types, err := mapServiceTypes(root)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0
	}

	assert.Equal(t, expectedRadarTypes(), types)
}
