package loader

import (
	"math"

	"go.uber.org/zap"

	"github.com/ajitpratap0/comconfig/pkg/configuration"
	"github.com/ajitpratap0/comconfig/pkg/logger"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

type serviceInstances = map[configuration.InstanceSpecifier]configuration.ServiceInstanceDeployment

// mapServiceInstances maps the service_instances section. A repeated
// instance specifier replaces the earlier entry.
func mapServiceInstances(root *wire.ComConfiguration) (serviceInstances, error) {
	n := root.ServiceInstancesLength()
	out := make(serviceInstances, n)

	var si wire.ServiceInstance
	for i := 0; i < n; i++ {
		root.ServiceInstances(&si, i)
		deployment, err := mapServiceInstance(&si)
		if err != nil {
			return nil, annotate(err, "index", i)
		}
		if _, dup := out[deployment.InstanceSpecifier]; dup {
			logger.Debug("instance specifier deployed twice, keeping the last entry",
				zap.Stringer("instance_specifier", deployment.InstanceSpecifier),
				zap.Int("index", i))
		}
		out[deployment.InstanceSpecifier] = deployment
	}
	return out, nil
}

func mapServiceInstance(si *wire.ServiceInstance) (configuration.ServiceInstanceDeployment, error) {
	specifier, err := configuration.NewInstanceSpecifier(string(si.InstanceSpecifier()))
	if err != nil {
		return configuration.ServiceInstanceDeployment{}, err
	}

	version := si.Version(nil)
	if version == nil {
		return configuration.ServiceInstanceDeployment{},
			requiredField("ServiceInstance", "version").WithDetail("instance_specifier", specifier.String())
	}
	id := configuration.NewServiceIdentifier(string(si.ServiceTypeName()), version.Major(), version.Minor())

	shm, err := selectInstanceBinding(si)
	if err != nil {
		err = annotate(err, "service", id.String())
		return configuration.ServiceInstanceDeployment{}, annotate(err, "instance_specifier", specifier.String())
	}

	binding, err := mapLolaServiceInstance(shm)
	if err != nil {
		err = annotate(err, "service", id.String())
		return configuration.ServiceInstanceDeployment{}, annotate(err, "instance_specifier", specifier.String())
	}

	return configuration.ServiceInstanceDeployment{
		Service:           id,
		Binding:           binding,
		AsilLevel:         qualityType(shm.AsilLevel()),
		InstanceSpecifier: specifier,
	}, nil
}

// selectInstanceBinding returns the single SHM record. Every record must
// be SHM; a second one is a multi-binding deployment and not supported.
func selectInstanceBinding(si *wire.ServiceInstance) (*wire.Instance, error) {
	n := si.InstancesLength()
	if n == 0 {
		return nil, invariant("service instance has no deployment instances")
	}

	var shm *wire.Instance
	for i := 0; i < n; i++ {
		inst := new(wire.Instance)
		si.Instances(inst, i)
		switch kind := inst.Binding(); kind {
		case wire.BindingTypeSHM:
			if shm != nil {
				return nil, invariant("multiple SHM bindings, multi-binding is not supported")
			}
			shm = inst
		case wire.BindingTypeSOME_IP:
			return nil, invariant("SOME/IP binding is not supported").WithDetail("binding", kind.String())
		default:
			return nil, invariant("unknown binding type").WithDetail("binding", kind.String())
		}
	}
	if shm == nil {
		return nil, invariant("service instance has no SHM binding")
	}
	return shm, nil
}

func qualityType(level wire.AsilLevel) configuration.QualityType {
	if level == wire.AsilLevelB {
		return configuration.QualityTypeASILB
	}
	return configuration.QualityTypeASILQM
}

func mapLolaServiceInstance(inst *wire.Instance) (configuration.InstanceBinding, error) {
	instanceID, err := optional[configuration.LolaServiceInstanceID](inst.InstanceId(), math.MaxUint16, "instance_id")
	if err != nil {
		return nil, err
	}
	events, err := mapEventInstances(inst)
	if err != nil {
		return nil, err
	}
	fields, err := mapFieldInstances(inst)
	if err != nil {
		return nil, err
	}
	methods, err := mapMethodInstances(inst)
	if err != nil {
		return nil, err
	}

	return configuration.LolaServiceInstanceDeployment{
		InstanceID:             instanceID,
		Events:                 events,
		Fields:                 fields,
		Methods:                methods,
		StrictPermissions:      inst.PermissionChecks() == wire.PermissionCheckStrategySTRICT,
		AllowedConsumer:        consumerPermissions(inst.AllowedConsumer(nil)),
		AllowedProvider:        providerPermissions(inst.AllowedProvider(nil)),
		SharedMemorySize:       optionalSize(inst.ShmSize()),
		ControlAsilBMemorySize: optionalSize(inst.ControlAsilBShmSize()),
		ControlQMMemorySize:    optionalSize(inst.ControlQmShmSize()),
	}, nil
}

// elementParams are the per-instance parameters shared by events and fields.
type elementParams struct {
	slots   *uint16
	subs    *uint8
	enforce bool
	tracing uint8
}

func mapElementParams(kind, name string, slots, subs uint32, enforce bool, tracing uint32) (elementParams, error) {
	p := elementParams{enforce: enforce}
	var err error
	if p.slots, err = optional[uint16](slots, math.MaxUint16, "number_of_sample_slots"); err != nil {
		return p, annotate(err, kind, name)
	}
	if p.subs, err = optional[uint8](subs, math.MaxUint8, "max_subscribers"); err != nil {
		return p, annotate(err, kind, name)
	}
	if p.tracing, err = narrow[uint8](tracing, math.MaxUint8, "number_of_ipc_tracing_slots"); err != nil {
		return p, annotate(err, kind, name)
	}
	return p, nil
}

func mapEventInstances(inst *wire.Instance) (map[string]configuration.LolaEventInstanceDeployment, error) {
	out := make(map[string]configuration.LolaEventInstanceDeployment, inst.EventsLength())
	var e wire.EventInstance
	for i := 0; i < inst.EventsLength(); i++ {
		inst.Events(&e, i)
		name := string(e.EventName())
		if _, dup := out[name]; dup {
			return nil, invariant("event %q deployed twice", name).WithDetail("event", name)
		}
		p, err := mapElementParams("event", name, e.NumberOfSampleSlots(), e.MaxSubscribers(), e.EnforceMaxSamples(), e.NumberOfIpcTracingSlots())
		if err != nil {
			return nil, err
		}
		out[name] = configuration.LolaEventInstanceDeployment{
			NumberOfSampleSlots:  p.slots,
			MaxSubscribers:       p.subs,
			EnforceMaxSamples:    p.enforce,
			NumberOfTracingSlots: p.tracing,
		}
	}
	return out, nil
}

func mapFieldInstances(inst *wire.Instance) (map[string]configuration.LolaFieldInstanceDeployment, error) {
	out := make(map[string]configuration.LolaFieldInstanceDeployment, inst.FieldsLength())
	var f wire.FieldInstance
	for i := 0; i < inst.FieldsLength(); i++ {
		inst.Fields(&f, i)
		name := string(f.FieldName())
		if _, dup := out[name]; dup {
			return nil, invariant("field %q deployed twice", name).WithDetail("field", name)
		}
		p, err := mapElementParams("field", name, f.NumberOfSampleSlots(), f.MaxSubscribers(), f.EnforceMaxSamples(), f.NumberOfIpcTracingSlots())
		if err != nil {
			return nil, err
		}
		out[name] = configuration.LolaFieldInstanceDeployment{
			NumberOfSampleSlots:  p.slots,
			MaxSubscribers:       p.subs,
			EnforceMaxSamples:    p.enforce,
			NumberOfTracingSlots: p.tracing,
		}
	}
	return out, nil
}

func mapMethodInstances(inst *wire.Instance) (map[string]configuration.LolaMethodInstanceDeployment, error) {
	out := make(map[string]configuration.LolaMethodInstanceDeployment, inst.MethodsLength())
	var m wire.MethodInstance
	for i := 0; i < inst.MethodsLength(); i++ {
		inst.Methods(&m, i)
		name := string(m.MethodName())
		if _, dup := out[name]; dup {
			return nil, invariant("method %q deployed twice", name).WithDetail("method", name)
		}
		queueSize, err := optional[uint8](m.QueueSize(), math.MaxUint8, "queue_size")
		if err != nil {
			return nil, annotate(err, "method", name)
		}
		out[name] = configuration.LolaMethodInstanceDeployment{QueueSize: queueSize}
	}
	return out, nil
}

// uidList mirrors the generated accessors of AllowedConsumer and AllowedProvider.
type uidList interface {
	HasQm() bool
	QmLength() int
	Qm(j int) uint32
	HasB() bool
	BLength() int
	B(j int) uint32
}

func consumerPermissions(p *wire.AllowedConsumer) map[configuration.QualityType][]uint32 {
	if p == nil {
		return map[configuration.QualityType][]uint32{}
	}
	return permissions(p)
}

func providerPermissions(p *wire.AllowedProvider) map[configuration.QualityType][]uint32 {
	if p == nil {
		return map[configuration.QualityType][]uint32{}
	}
	return permissions(p)
}

// permissions builds an allow-list per quality level. An absent vector
// leaves the level out; a present empty one maps to an empty list.
func permissions(p uidList) map[configuration.QualityType][]uint32 {
	out := make(map[configuration.QualityType][]uint32, 2)
	if p.HasQm() {
		out[configuration.QualityTypeASILQM] = uids(p.QmLength(), p.Qm)
	}
	if p.HasB() {
		out[configuration.QualityTypeASILB] = uids(p.BLength(), p.B)
	}
	return out
}

func uids(n int, at func(int) uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = at(i)
	}
	return out
}
