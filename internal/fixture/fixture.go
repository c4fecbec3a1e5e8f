// Package fixture builds deployment-descriptor buffers from plain Go values
// for tests. Slices follow FlatBuffers presence rules: a nil slice leaves the
// vector out of the buffer, a non-nil empty slice writes an empty vector.
package fixture

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/ajitpratap0/comconfig/pkg/wire"
)

// Descriptor is the root of a descriptor buffer.
type Descriptor struct {
	ServiceTypes     []ServiceType
	ServiceInstances []ServiceInstance
	Global           *Global
	Tracing          *Tracing
}

// Version is a service interface version.
type Version struct {
	Major uint32
	Minor uint32
}

// ServiceType describes one entry of service_types. Bindings is required by
// the schema, so a nil Bindings yields a buffer the verifier rejects.
type ServiceType struct {
	Name     string
	Version  *Version
	Bindings []TypeBinding
}

// TypeBinding describes a type-level binding.
type TypeBinding struct {
	Binding   wire.BindingType
	ServiceID uint32
	Events    []NamedID
	Fields    []NamedID
	Methods   []NamedID
}

// NamedID is a name→id pair of a type-level binding.
type NamedID struct {
	Name string
	ID   uint32
}

// ServiceInstance describes one entry of service_instances.
type ServiceInstance struct {
	InstanceSpecifier string
	Name              string
	Version           *Version
	Instances         []Instance
}

// Instance describes an instance-level binding record.
type Instance struct {
	InstanceID          uint32
	AsilLevel           wire.AsilLevel
	Binding             wire.BindingType
	Events              []ElementInstance
	Fields              []ElementInstance
	Methods             []MethodInstance
	ShmSize             uint64
	ControlAsilBShmSize uint64
	ControlQMShmSize    uint64
	AllowedConsumer     *Permissions
	AllowedProvider     *Permissions
	PermissionChecks    wire.PermissionCheckStrategy
}

// ElementInstance describes an event or field instance deployment.
// A nil EnforceMaxSamples leaves the schema default (true).
type ElementInstance struct {
	Name                    string
	NumberOfSampleSlots     uint32
	MaxSubscribers          uint32
	EnforceMaxSamples       *bool
	NumberOfIPCTracingSlots uint32
}

// MethodInstance describes a method instance deployment.
type MethodInstance struct {
	Name      string
	QueueSize uint32
}

// Permissions holds uid allow-lists per quality level.
type Permissions struct {
	QM []uint32
	B  []uint32
}

// Global describes the process-wide section.
type Global struct {
	AsilLevel       wire.AsilLevel
	ApplicationID   uint32
	QueueSize       *QueueSize
	ShmSizeCalcMode *wire.ShmSizeCalcMode
}

// QueueSize describes the message queue sizes.
type QueueSize struct {
	QMReceiver uint32
	BReceiver  uint32
	BSender    uint32
}

// Tracing describes the tracing section. ApplicationInstanceID is required
// by the schema; nil leaves it out.
type Tracing struct {
	Enable                bool
	ApplicationInstanceID *string
	TraceFilterConfigPath *string
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Build serializes d into a finished MWCC buffer.
func (d Descriptor) Build() []byte {
	b := flatbuffers.NewBuilder(1024)
	wire.FinishComConfigurationBuffer(b, d.build(b))
	return b.FinishedBytes()
}

func (d Descriptor) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	var serviceTypes, serviceInstances, global, tracing flatbuffers.UOffsetT
	if d.ServiceTypes != nil {
		offs := make([]flatbuffers.UOffsetT, len(d.ServiceTypes))
		for i, st := range d.ServiceTypes {
			offs[i] = st.build(b)
		}
		serviceTypes = offsetVector(b, wire.ComConfigurationStartServiceTypesVector, offs)
	}
	if d.ServiceInstances != nil {
		offs := make([]flatbuffers.UOffsetT, len(d.ServiceInstances))
		for i, si := range d.ServiceInstances {
			offs[i] = si.build(b)
		}
		serviceInstances = offsetVector(b, wire.ComConfigurationStartServiceInstancesVector, offs)
	}
	if d.Global != nil {
		global = d.Global.build(b)
	}
	if d.Tracing != nil {
		tracing = d.Tracing.build(b)
	}

	wire.ComConfigurationStart(b)
	wire.ComConfigurationAddServiceTypes(b, serviceTypes)
	wire.ComConfigurationAddServiceInstances(b, serviceInstances)
	wire.ComConfigurationAddGlobal(b, global)
	wire.ComConfigurationAddTracing(b, tracing)
	return wire.ComConfigurationEnd(b)
}

func (v *Version) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	wire.VersionStart(b)
	wire.VersionAddMajor(b, v.Major)
	wire.VersionAddMinor(b, v.Minor)
	return wire.VersionEnd(b)
}

func (st ServiceType) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	name := b.CreateString(st.Name)
	version := st.Version.build(b)
	var bindings flatbuffers.UOffsetT
	if st.Bindings != nil {
		offs := make([]flatbuffers.UOffsetT, len(st.Bindings))
		for i, binding := range st.Bindings {
			offs[i] = binding.build(b)
		}
		bindings = offsetVector(b, wire.ServiceTypeStartBindingsVector, offs)
	}

	wire.ServiceTypeStart(b)
	wire.ServiceTypeAddServiceTypeName(b, name)
	wire.ServiceTypeAddVersion(b, version)
	wire.ServiceTypeAddBindings(b, bindings)
	return wire.ServiceTypeEnd(b)
}

func (tb TypeBinding) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	events := namedIDs(b, tb.Events, func(name flatbuffers.UOffsetT, id uint32) flatbuffers.UOffsetT {
		wire.EventIdStart(b)
		wire.EventIdAddEventName(b, name)
		wire.EventIdAddEventId(b, id)
		return wire.EventIdEnd(b)
	}, wire.ServiceTypeBindingStartEventsVector)
	fields := namedIDs(b, tb.Fields, func(name flatbuffers.UOffsetT, id uint32) flatbuffers.UOffsetT {
		wire.FieldIdStart(b)
		wire.FieldIdAddFieldName(b, name)
		wire.FieldIdAddFieldId(b, id)
		return wire.FieldIdEnd(b)
	}, wire.ServiceTypeBindingStartFieldsVector)
	methods := namedIDs(b, tb.Methods, func(name flatbuffers.UOffsetT, id uint32) flatbuffers.UOffsetT {
		wire.MethodIdStart(b)
		wire.MethodIdAddMethodName(b, name)
		wire.MethodIdAddMethodId(b, id)
		return wire.MethodIdEnd(b)
	}, wire.ServiceTypeBindingStartMethodsVector)

	wire.ServiceTypeBindingStart(b)
	wire.ServiceTypeBindingAddBinding(b, tb.Binding)
	wire.ServiceTypeBindingAddServiceId(b, tb.ServiceID)
	wire.ServiceTypeBindingAddEvents(b, events)
	wire.ServiceTypeBindingAddFields(b, fields)
	wire.ServiceTypeBindingAddMethods(b, methods)
	return wire.ServiceTypeBindingEnd(b)
}

func namedIDs(
	b *flatbuffers.Builder,
	ids []NamedID,
	table func(name flatbuffers.UOffsetT, id uint32) flatbuffers.UOffsetT,
	start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT,
) flatbuffers.UOffsetT {
	if ids == nil {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(ids))
	for i, id := range ids {
		offs[i] = table(b.CreateString(id.Name), id.ID)
	}
	return offsetVector(b, start, offs)
}

func (si ServiceInstance) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	specifier := b.CreateString(si.InstanceSpecifier)
	name := b.CreateString(si.Name)
	version := si.Version.build(b)
	var instances flatbuffers.UOffsetT
	if si.Instances != nil {
		offs := make([]flatbuffers.UOffsetT, len(si.Instances))
		for i, inst := range si.Instances {
			offs[i] = inst.build(b)
		}
		instances = offsetVector(b, wire.ServiceInstanceStartInstancesVector, offs)
	}

	wire.ServiceInstanceStart(b)
	wire.ServiceInstanceAddInstanceSpecifier(b, specifier)
	wire.ServiceInstanceAddServiceTypeName(b, name)
	wire.ServiceInstanceAddVersion(b, version)
	wire.ServiceInstanceAddInstances(b, instances)
	return wire.ServiceInstanceEnd(b)
}

func (inst Instance) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	events := elementInstances(b, inst.Events, buildEventInstance, wire.InstanceStartEventsVector)
	fields := elementInstances(b, inst.Fields, buildFieldInstance, wire.InstanceStartFieldsVector)
	var methods flatbuffers.UOffsetT
	if inst.Methods != nil {
		offs := make([]flatbuffers.UOffsetT, len(inst.Methods))
		for i, m := range inst.Methods {
			name := b.CreateString(m.Name)
			wire.MethodInstanceStart(b)
			wire.MethodInstanceAddMethodName(b, name)
			wire.MethodInstanceAddQueueSize(b, m.QueueSize)
			offs[i] = wire.MethodInstanceEnd(b)
		}
		methods = offsetVector(b, wire.InstanceStartMethodsVector, offs)
	}
	var consumer, provider flatbuffers.UOffsetT
	if inst.AllowedConsumer != nil {
		qm := uint32Vector(b, wire.AllowedConsumerStartQmVector, inst.AllowedConsumer.QM)
		asilB := uint32Vector(b, wire.AllowedConsumerStartBVector, inst.AllowedConsumer.B)
		wire.AllowedConsumerStart(b)
		wire.AllowedConsumerAddQm(b, qm)
		wire.AllowedConsumerAddB(b, asilB)
		consumer = wire.AllowedConsumerEnd(b)
	}
	if inst.AllowedProvider != nil {
		qm := uint32Vector(b, wire.AllowedProviderStartQmVector, inst.AllowedProvider.QM)
		asilB := uint32Vector(b, wire.AllowedProviderStartBVector, inst.AllowedProvider.B)
		wire.AllowedProviderStart(b)
		wire.AllowedProviderAddQm(b, qm)
		wire.AllowedProviderAddB(b, asilB)
		provider = wire.AllowedProviderEnd(b)
	}

	wire.InstanceStart(b)
	wire.InstanceAddInstanceId(b, inst.InstanceID)
	wire.InstanceAddAsilLevel(b, inst.AsilLevel)
	wire.InstanceAddBinding(b, inst.Binding)
	wire.InstanceAddEvents(b, events)
	wire.InstanceAddFields(b, fields)
	wire.InstanceAddMethods(b, methods)
	wire.InstanceAddShmSize(b, inst.ShmSize)
	wire.InstanceAddControlAsilBShmSize(b, inst.ControlAsilBShmSize)
	wire.InstanceAddControlQmShmSize(b, inst.ControlQMShmSize)
	wire.InstanceAddAllowedConsumer(b, consumer)
	wire.InstanceAddAllowedProvider(b, provider)
	wire.InstanceAddPermissionChecks(b, inst.PermissionChecks)
	return wire.InstanceEnd(b)
}

func buildEventInstance(b *flatbuffers.Builder, e ElementInstance) flatbuffers.UOffsetT {
	name := b.CreateString(e.Name)
	wire.EventInstanceStart(b)
	wire.EventInstanceAddEventName(b, name)
	wire.EventInstanceAddNumberOfSampleSlots(b, e.NumberOfSampleSlots)
	wire.EventInstanceAddMaxSubscribers(b, e.MaxSubscribers)
	if e.EnforceMaxSamples != nil {
		wire.EventInstanceAddEnforceMaxSamples(b, *e.EnforceMaxSamples)
	}
	wire.EventInstanceAddNumberOfIpcTracingSlots(b, e.NumberOfIPCTracingSlots)
	return wire.EventInstanceEnd(b)
}

func buildFieldInstance(b *flatbuffers.Builder, f ElementInstance) flatbuffers.UOffsetT {
	name := b.CreateString(f.Name)
	wire.FieldInstanceStart(b)
	wire.FieldInstanceAddFieldName(b, name)
	wire.FieldInstanceAddNumberOfSampleSlots(b, f.NumberOfSampleSlots)
	wire.FieldInstanceAddMaxSubscribers(b, f.MaxSubscribers)
	if f.EnforceMaxSamples != nil {
		wire.FieldInstanceAddEnforceMaxSamples(b, *f.EnforceMaxSamples)
	}
	wire.FieldInstanceAddNumberOfIpcTracingSlots(b, f.NumberOfIPCTracingSlots)
	return wire.FieldInstanceEnd(b)
}

func elementInstances(
	b *flatbuffers.Builder,
	elems []ElementInstance,
	table func(*flatbuffers.Builder, ElementInstance) flatbuffers.UOffsetT,
	start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT,
) flatbuffers.UOffsetT {
	if elems == nil {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(elems))
	for i, e := range elems {
		offs[i] = table(b, e)
	}
	return offsetVector(b, start, offs)
}

func (g *Global) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	var queueSize flatbuffers.UOffsetT
	if g.QueueSize != nil {
		wire.QueueSizeStart(b)
		wire.QueueSizeAddQmReceiver(b, g.QueueSize.QMReceiver)
		wire.QueueSizeAddBReceiver(b, g.QueueSize.BReceiver)
		wire.QueueSizeAddBSender(b, g.QueueSize.BSender)
		queueSize = wire.QueueSizeEnd(b)
	}

	wire.GlobalStart(b)
	wire.GlobalAddAsilLevel(b, g.AsilLevel)
	wire.GlobalAddApplicationId(b, g.ApplicationID)
	wire.GlobalAddQueueSize(b, queueSize)
	if g.ShmSizeCalcMode != nil {
		// Written even when equal to the default so presence is observable.
		b.PrependInt8(int8(*g.ShmSizeCalcMode))
		b.Slot(3)
	}
	return wire.GlobalEnd(b)
}

func (tr *Tracing) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	var appID, filterPath flatbuffers.UOffsetT
	if tr.ApplicationInstanceID != nil {
		appID = b.CreateString(*tr.ApplicationInstanceID)
	}
	if tr.TraceFilterConfigPath != nil {
		filterPath = b.CreateString(*tr.TraceFilterConfigPath)
	}

	wire.TracingStart(b)
	wire.TracingAddEnable(b, tr.Enable)
	wire.TracingAddApplicationInstanceId(b, appID)
	wire.TracingAddTraceFilterConfigPath(b, filterPath)
	return wire.TracingEnd(b)
}

func offsetVector(b *flatbuffers.Builder, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	start(b, len(offs))
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

func uint32Vector(b *flatbuffers.Builder, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, vals []uint32) flatbuffers.UOffsetT {
	if vals == nil {
		return 0
	}
	start(b, len(vals))
	for i := len(vals) - 1; i >= 0; i-- {
		b.PrependUint32(vals[i])
	}
	return b.EndVector(len(vals))
}
