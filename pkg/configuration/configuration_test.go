package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
)

func TestNewInstanceSpecifier(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"abs/radar", true},
		{"radar", true},
		{"/abs/radar_front/0", true},
		{"Radar_2", true},
		{"", false},
		{"abs/", false},
		{"/", false},
		{"abs//radar", false},
		{"abs/radar-front", false},
		{"abs radar", false},
		{"abs.radar", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := NewInstanceSpecifier(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.input, spec.String())
				return
			}
			require.Error(t, err)
			assert.True(t, cfgerrors.IsType(err, cfgerrors.ErrorTypeInvariant))
			var cfgErr *cfgerrors.Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.input, cfgErr.Details["instance_specifier"])
		})
	}
}

func TestInstanceSpecifierIsComparable(t *testing.T) {
	a, err := NewInstanceSpecifier("abs/radar")
	require.NoError(t, err)
	b, err := NewInstanceSpecifier("abs/radar")
	require.NoError(t, err)

	m := map[InstanceSpecifier]int{a: 1}
	m[b] = 2
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[a])
}

func TestServiceIdentifierString(t *testing.T) {
	assert.Equal(t, "Radar v1.0", NewServiceIdentifier("Radar", 1, 0).String())
	assert.Equal(t, "Lidar v12.3", NewServiceIdentifier("Lidar", 12, 3).String())
}

func TestQualityTypeString(t *testing.T) {
	assert.Equal(t, "asil-qm", QualityTypeASILQM.String())
	assert.Equal(t, "asil-b", QualityTypeASILB.String())
	assert.Equal(t, "invalid", QualityTypeInvalid.String())
	assert.Equal(t, "invalid", QualityType(42).String())
}

func TestGlobalConfigurationDefaults(t *testing.T) {
	g := NewGlobalConfiguration()

	assert.Equal(t, QualityTypeASILQM, g.ProcessASILLevel())
	_, ok := g.ApplicationID()
	assert.False(t, ok)
	size, ok := g.ReceiverQueueSize(QualityTypeASILQM)
	assert.True(t, ok)
	assert.Equal(t, DefaultReceiverQueueSize, size)
	size, ok = g.ReceiverQueueSize(QualityTypeASILB)
	assert.True(t, ok)
	assert.Equal(t, DefaultReceiverQueueSize, size)
	_, ok = g.ReceiverQueueSize(QualityTypeInvalid)
	assert.False(t, ok)
	assert.Equal(t, DefaultSenderQueueSize, g.SenderQueueSize())
	assert.Equal(t, ShmSizeCalcModeSimulation, g.ShmSizeCalcMode())
}

func TestGlobalConfigurationOptions(t *testing.T) {
	g := NewGlobalConfiguration(
		WithProcessASILLevel(QualityTypeASILB),
		WithApplicationID(42),
		WithReceiverQueueSize(QualityTypeASILB, 7),
		WithSenderQueueSize(3),
	)

	assert.Equal(t, QualityTypeASILB, g.ProcessASILLevel())
	id, ok := g.ApplicationID()
	assert.True(t, ok)
	assert.Equal(t, uint32(42), id)
	assert.Equal(t, map[QualityType]int32{
		QualityTypeASILQM: DefaultReceiverQueueSize,
		QualityTypeASILB:  7,
	}, g.ReceiverQueueSizes())
	assert.Equal(t, int32(3), g.SenderQueueSize())

	sizes := g.ReceiverQueueSizes()
	sizes[QualityTypeASILQM] = 99
	size, _ := g.ReceiverQueueSize(QualityTypeASILQM)
	assert.Equal(t, DefaultReceiverQueueSize, size)
}

func TestTracingConfiguration(t *testing.T) {
	def := NewTracingConfiguration()
	assert.False(t, def.Enabled())
	assert.Empty(t, def.ApplicationInstanceID())
	assert.Equal(t, DefaultTraceFilterConfigPath, def.TraceFilterConfigPath())

	tr := NewTracingConfiguration(
		WithTracingEnabled(true),
		WithApplicationInstanceID("radar_app"),
		WithTraceFilterConfigPath("/etc/filter.json"),
	)
	assert.True(t, tr.Enabled())
	assert.Equal(t, "radar_app", tr.ApplicationInstanceID())
	assert.Equal(t, "/etc/filter.json", tr.TraceFilterConfigPath())
}

func TestNewConfigurationCopiesMaps(t *testing.T) {
	id := NewServiceIdentifier("Radar", 1, 0)
	spec, err := NewInstanceSpecifier("abs/radar")
	require.NoError(t, err)

	types := map[ServiceIdentifier]ServiceTypeDeployment{
		id: {Binding: LolaServiceTypeDeployment{ServiceID: 1}},
	}
	instances := map[InstanceSpecifier]ServiceInstanceDeployment{
		spec: {Service: id, AsilLevel: QualityTypeASILB, InstanceSpecifier: spec},
	}
	cfg := NewConfiguration(types, instances, NewGlobalConfiguration(), NewTracingConfiguration())

	delete(types, id)
	delete(instances, spec)
	require.Len(t, cfg.ServiceTypes(), 1)
	require.Len(t, cfg.ServiceInstances(), 1)

	got := cfg.ServiceTypes()
	delete(got, id)
	_, ok := cfg.ServiceType(id)
	assert.True(t, ok)

	inst, ok := cfg.ServiceInstance(spec)
	require.True(t, ok)
	assert.Equal(t, QualityTypeASILB, inst.AsilLevel)
}

func TestConfigurationIsDeeplyImmutable(t *testing.T) {
	id := NewServiceIdentifier("Radar", 1, 0)
	spec, err := NewInstanceSpecifier("abs/radar")
	require.NoError(t, err)
	slots := uint16(4)

	typeBinding := LolaServiceTypeDeployment{
		ServiceID: 6432,
		Events:    map[string]LolaEventID{"Detections": 3},
		Fields:    map[string]LolaFieldID{},
		Methods:   map[string]LolaMethodID{},
	}
	instanceBinding := LolaServiceInstanceDeployment{
		Events: map[string]LolaEventInstanceDeployment{
			"Detections": {NumberOfSampleSlots: &slots, EnforceMaxSamples: true},
		},
		Fields:          map[string]LolaFieldInstanceDeployment{},
		Methods:         map[string]LolaMethodInstanceDeployment{},
		AllowedConsumer: map[QualityType][]uint32{QualityTypeASILQM: {1000, 1001}},
		AllowedProvider: map[QualityType][]uint32{QualityTypeASILB: {}},
	}
	cfg := NewConfiguration(
		map[ServiceIdentifier]ServiceTypeDeployment{id: {Binding: typeBinding}},
		map[InstanceSpecifier]ServiceInstanceDeployment{spec: {Service: id, Binding: instanceBinding, InstanceSpecifier: spec}},
		NewGlobalConfiguration(),
		NewTracingConfiguration(),
	)

	// Inputs handed to the constructor.
	typeBinding.Events["Injected"] = 99
	instanceBinding.AllowedConsumer[QualityTypeASILQM][0] = 0
	slots = 1

	// Values returned by every getter.
	gotType := cfg.ServiceTypes()[id].Binding.(LolaServiceTypeDeployment)
	gotType.Events["Injected"] = 99
	lookedUpType, ok := cfg.ServiceType(id)
	require.True(t, ok)
	lookedUpType.Binding.(LolaServiceTypeDeployment).Methods["Reset"] = 1

	gotInstance := cfg.ServiceInstances()[spec].Binding.(LolaServiceInstanceDeployment)
	gotInstance.AllowedConsumer[QualityTypeASILQM][1] = 0
	gotInstance.AllowedConsumer[QualityTypeASILB] = []uint32{7}
	*gotInstance.Events["Detections"].NumberOfSampleSlots = 9
	lookedUpInstance, ok := cfg.ServiceInstance(spec)
	require.True(t, ok)
	lookedUpInstance.Binding.(LolaServiceInstanceDeployment).Fields["Mode"] = LolaFieldInstanceDeployment{}

	types := cfg.ServiceTypes()[id].Binding.(LolaServiceTypeDeployment)
	assert.Equal(t, map[string]LolaEventID{"Detections": 3}, types.Events)
	assert.Empty(t, types.Methods)

	instances := cfg.ServiceInstances()[spec].Binding.(LolaServiceInstanceDeployment)
	assert.Equal(t, map[QualityType][]uint32{QualityTypeASILQM: {1000, 1001}}, instances.AllowedConsumer)
	assert.Equal(t, map[QualityType][]uint32{QualityTypeASILB: {}}, instances.AllowedProvider)
	assert.NotNil(t, instances.AllowedProvider[QualityTypeASILB], "an empty allow-list stays distinct from none")
	assert.Equal(t, uint16(4), *instances.Events["Detections"].NumberOfSampleSlots)
	assert.Empty(t, instances.Fields)
}

func TestNewConfigurationWithNilMaps(t *testing.T) {
	cfg := NewConfiguration(nil, nil, NewGlobalConfiguration(), NewTracingConfiguration())

	assert.NotNil(t, cfg.ServiceTypes())
	assert.Empty(t, cfg.ServiceTypes())
	assert.NotNil(t, cfg.ServiceInstances())
	assert.Empty(t, cfg.ServiceInstances())
	assert.Equal(t, NewGlobalConfiguration(), cfg.Global())
	assert.Equal(t, NewTracingConfiguration(), cfg.Tracing())
}
