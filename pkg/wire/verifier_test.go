package wire_test

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/comconfig/internal/fixture"
	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

func requireIntegrityError(t *testing.T, err error) *cfgerrors.Error {
	t.Helper()
	require.Error(t, err)
	var cfgErr *cfgerrors.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfgerrors.ErrorTypeIntegrity, cfgErr.Type)
	return cfgErr
}

func TestVerifyAcceptsValidBuffer(t *testing.T) {
	buf := fixture.Radar().Build()
	require.NoError(t, wire.VerifyComConfigurationBuffer(buf))

	root := wire.GetRootAsComConfiguration(buf, 0)
	require.Equal(t, 1, root.ServiceTypesLength())

	var st wire.ServiceType
	require.True(t, root.ServiceTypes(&st, 0))
	assert.Equal(t, "Radar", string(st.ServiceTypeName()))
	assert.Equal(t, uint32(1), st.Version(nil).Major())

	var binding wire.ServiceTypeBinding
	require.True(t, st.Bindings(&binding, 0))
	assert.Equal(t, wire.BindingTypeSHM, binding.Binding())

	var event wire.EventId
	require.True(t, binding.Events(&event, 0))
	assert.Equal(t, "Detections", string(event.EventName()))
	assert.Equal(t, uint32(3), event.EventId())

	assert.Nil(t, root.Global(nil))
	assert.Nil(t, root.Tracing(nil))
}

func TestVerifyAcceptsAllSections(t *testing.T) {
	d := fixture.Radar()
	d.Global = &fixture.Global{
		AsilLevel:       wire.AsilLevelB,
		ApplicationID:   42,
		QueueSize:       &fixture.QueueSize{QMReceiver: 1, BReceiver: 2, BSender: 3},
		ShmSizeCalcMode: fixture.Ptr(wire.ShmSizeCalcModeESTIMATION),
	}
	d.Tracing = &fixture.Tracing{
		Enable:                true,
		ApplicationInstanceID: fixture.Ptr("radar_app"),
		TraceFilterConfigPath: fixture.Ptr("/etc/filter.json"),
	}
	inst := fixture.RadarInstance()
	inst.InstanceID = 7
	inst.ShmSize = 1 << 40
	inst.Methods = []fixture.MethodInstance{{Name: "Reset", QueueSize: 5}}
	inst.Fields = []fixture.ElementInstance{{Name: "Mode", EnforceMaxSamples: fixture.Ptr(false)}}
	inst.AllowedConsumer = &fixture.Permissions{QM: []uint32{100, 101}, B: []uint32{}}
	inst.AllowedProvider = &fixture.Permissions{B: []uint32{200}}
	buf := d.WithInstances(inst).Build()

	require.NoError(t, wire.VerifyComConfigurationBuffer(buf))

	root := wire.GetRootAsComConfiguration(buf, 0)
	global := root.Global(nil)
	require.NotNil(t, global)
	assert.True(t, global.HasShmSizeCalcMode())
	assert.Equal(t, wire.ShmSizeCalcModeESTIMATION, global.ShmSizeCalcMode())
	assert.Equal(t, uint32(3), global.QueueSize(nil).BSender())

	var si wire.ServiceInstance
	require.True(t, root.ServiceInstances(&si, 0))
	var instance wire.Instance
	require.True(t, si.Instances(&instance, 0))
	assert.Equal(t, uint64(1<<40), instance.ShmSize())

	consumer := instance.AllowedConsumer(nil)
	require.NotNil(t, consumer)
	assert.True(t, consumer.HasQm())
	assert.True(t, consumer.HasB())
	assert.Equal(t, 0, consumer.BLength())
	assert.Equal(t, uint32(101), consumer.Qm(1))

	provider := instance.AllowedProvider(nil)
	require.NotNil(t, provider)
	assert.False(t, provider.HasQm())
	assert.True(t, provider.HasB())

	var field wire.FieldInstance
	require.True(t, instance.Fields(&field, 0))
	assert.False(t, field.EnforceMaxSamples())

	var event wire.EventInstance
	require.True(t, instance.Events(&event, 0))
	assert.True(t, event.EnforceMaxSamples())
}

func TestVerifyRejectsShortBuffers(t *testing.T) {
	for _, buf := range [][]byte{nil, {}, {1, 2, 3}, {8, 0, 0, 0, 'M', 'W'}} {
		requireIntegrityError(t, wire.VerifyComConfigurationBuffer(buf))
	}
}

func TestVerifyRejectsTruncatedBuffer(t *testing.T) {
	buf := fixture.Radar().Build()
	requireIntegrityError(t, wire.VerifyComConfigurationBuffer(buf[:len(buf)/2]))
}

func TestVerifyRejectsWrongIdentifier(t *testing.T) {
	buf := append([]byte(nil), fixture.Radar().Build()...)
	copy(buf[4:8], "XXXX")

	err := requireIntegrityError(t, wire.VerifyComConfigurationBuffer(buf))
	assert.Contains(t, err.Error(), "file identifier")
}

func TestVerifyRejectsRootOutOfBounds(t *testing.T) {
	buf := append([]byte(nil), fixture.Radar().Build()...)
	flatbuffers.WriteUOffsetT(buf, flatbuffers.UOffsetT(len(buf)+64))

	requireIntegrityError(t, wire.VerifyComConfigurationBuffer(buf))
	_, ok := wire.RootOffset(buf)
	assert.False(t, ok)
}

func TestVerifyRejectsZeroRootOffset(t *testing.T) {
	buf := append([]byte(nil), fixture.Radar().Build()...)
	flatbuffers.WriteUOffsetT(buf, 0)

	requireIntegrityError(t, wire.VerifyComConfigurationBuffer(buf))
}

func TestVerifyRejectsMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		build func() fixture.Descriptor
		table string
		field string
	}{
		{
			name: "service types vector",
			build: func() fixture.Descriptor {
				d := fixture.Radar()
				d.ServiceTypes = nil
				return d
			},
			table: "ComConfiguration",
			field: "service_types",
		},
		{
			name: "service instances vector",
			build: func() fixture.Descriptor {
				d := fixture.Radar()
				d.ServiceInstances = nil
				return d
			},
			table: "ComConfiguration",
			field: "service_instances",
		},
		{
			name: "service type bindings",
			build: func() fixture.Descriptor {
				d := fixture.Radar()
				d.ServiceTypes[0].Bindings = nil
				return d
			},
			table: "ServiceType",
			field: "bindings",
		},
		{
			name: "service instance version",
			build: func() fixture.Descriptor {
				d := fixture.Radar()
				d.ServiceInstances[0].Version = nil
				return d
			},
			table: "ServiceInstance",
			field: "version",
		},
		{
			name: "tracing application instance id",
			build: func() fixture.Descriptor {
				d := fixture.Radar()
				d.Tracing = &fixture.Tracing{Enable: true}
				return d
			},
			table: "Tracing",
			field: "application_instance_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireIntegrityError(t, wire.VerifyComConfigurationBuffer(tt.build().Build()))
			assert.Equal(t, tt.table, err.Details["table"])
			assert.Equal(t, tt.field, err.Details["field"])
		})
	}
}

func TestVerifyRejectsMissingRequiredString(t *testing.T) {
	b := flatbuffers.NewBuilder(256)
	wire.EventIdStart(b)
	wire.EventIdAddEventId(b, 1)
	event := b.EndObject()

	wire.ServiceTypeBindingStartEventsVector(b, 1)
	b.PrependUOffsetT(event)
	events := b.EndVector(1)
	wire.ServiceTypeBindingStart(b)
	wire.ServiceTypeBindingAddEvents(b, events)
	binding := wire.ServiceTypeBindingEnd(b)

	wire.ServiceTypeStartBindingsVector(b, 1)
	b.PrependUOffsetT(binding)
	bindings := b.EndVector(1)
	name := b.CreateString("Radar")
	wire.ServiceTypeStart(b)
	wire.ServiceTypeAddServiceTypeName(b, name)
	wire.ServiceTypeAddBindings(b, bindings)
	st := wire.ServiceTypeEnd(b)

	wire.ComConfigurationStartServiceTypesVector(b, 1)
	b.PrependUOffsetT(st)
	types := b.EndVector(1)
	wire.ComConfigurationStartServiceInstancesVector(b, 0)
	instances := b.EndVector(0)
	wire.ComConfigurationStart(b)
	wire.ComConfigurationAddServiceTypes(b, types)
	wire.ComConfigurationAddServiceInstances(b, instances)
	wire.FinishComConfigurationBuffer(b, wire.ComConfigurationEnd(b))

	err := requireIntegrityError(t, wire.VerifyComConfigurationBuffer(b.FinishedBytes()))
	assert.Equal(t, "EventId", err.Details["table"])
	assert.Equal(t, "event_name", err.Details["field"])
}

func TestVerifyHonoursDepthLimit(t *testing.T) {
	buf := fixture.Radar().Build()
	require.NoError(t, wire.VerifyComConfigurationBuffer(buf, wire.WithMaxDepth(4)))

	err := requireIntegrityError(t, wire.VerifyComConfigurationBuffer(buf, wire.WithMaxDepth(1)))
	assert.Contains(t, err.Error(), "depth")
}

func TestVerifyHonoursTableLimit(t *testing.T) {
	buf := fixture.Radar().Build()
	err := requireIntegrityError(t, wire.VerifyComConfigurationBuffer(buf, wire.WithMaxTables(2)))
	assert.Contains(t, err.Error(), "tables")
}

func TestVerifyToleratesUnknownEnumValues(t *testing.T) {
	d := fixture.Radar()
	d.ServiceTypes[0].Bindings[0].Binding = wire.BindingType(9)
	assert.NoError(t, wire.VerifyComConfigurationBuffer(d.Build()))
}
