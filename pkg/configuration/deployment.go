package configuration

import (
	"maps"
	"slices"
)

// TypeBinding is the binding-specific part of a service-type deployment.
// LolaServiceTypeDeployment is the only implementation.
type TypeBinding interface {
	isTypeBinding()
}

// InstanceBinding is the binding-specific part of a service-instance
// deployment. LolaServiceInstanceDeployment is the only implementation.
type InstanceBinding interface {
	isInstanceBinding()
}

// LolaServiceTypeDeployment is the shared-memory binding of a service type.
type LolaServiceTypeDeployment struct {
	ServiceID LolaServiceID           `json:"service_id" yaml:"service_id"`
	Events    map[string]LolaEventID  `json:"events" yaml:"events"`
	Fields    map[string]LolaFieldID  `json:"fields" yaml:"fields"`
	Methods   map[string]LolaMethodID `json:"methods" yaml:"methods"`
}

func (LolaServiceTypeDeployment) isTypeBinding() {}

// ServiceTypeDeployment binds a service type to its transport.
type ServiceTypeDeployment struct {
	Binding TypeBinding `json:"binding" yaml:"binding"`
}

// LolaEventInstanceDeployment holds the per-instance parameters of an event.
// Nil pointers are unset.
type LolaEventInstanceDeployment struct {
	NumberOfSampleSlots      *uint16 `json:"number_of_sample_slots,omitempty" yaml:"number_of_sample_slots,omitempty"`
	MaxSubscribers           *uint8  `json:"max_subscribers,omitempty" yaml:"max_subscribers,omitempty"`
	MaxConcurrentAllocations *uint8  `json:"max_concurrent_allocations,omitempty" yaml:"max_concurrent_allocations,omitempty"`
	EnforceMaxSamples        bool    `json:"enforce_max_samples" yaml:"enforce_max_samples"`
	NumberOfTracingSlots     uint8   `json:"number_of_tracing_slots" yaml:"number_of_tracing_slots"`
}

// LolaFieldInstanceDeployment holds the per-instance parameters of a field.
// Nil pointers are unset.
type LolaFieldInstanceDeployment struct {
	NumberOfSampleSlots      *uint16 `json:"number_of_sample_slots,omitempty" yaml:"number_of_sample_slots,omitempty"`
	MaxSubscribers           *uint8  `json:"max_subscribers,omitempty" yaml:"max_subscribers,omitempty"`
	MaxConcurrentAllocations *uint8  `json:"max_concurrent_allocations,omitempty" yaml:"max_concurrent_allocations,omitempty"`
	EnforceMaxSamples        bool    `json:"enforce_max_samples" yaml:"enforce_max_samples"`
	NumberOfTracingSlots     uint8   `json:"number_of_tracing_slots" yaml:"number_of_tracing_slots"`
}

// LolaMethodInstanceDeployment holds the per-instance parameters of a method.
type LolaMethodInstanceDeployment struct {
	QueueSize *uint8 `json:"queue_size,omitempty" yaml:"queue_size,omitempty"`
}

// LolaServiceInstanceDeployment is the shared-memory binding of a service
// instance. A quality level missing from AllowedConsumer or AllowedProvider
// has no allow-list; an empty slice is an explicit empty allow-list.
type LolaServiceInstanceDeployment struct {
	InstanceID             *LolaServiceInstanceID                  `json:"instance_id,omitempty" yaml:"instance_id,omitempty"`
	Events                 map[string]LolaEventInstanceDeployment  `json:"events" yaml:"events"`
	Fields                 map[string]LolaFieldInstanceDeployment  `json:"fields" yaml:"fields"`
	Methods                map[string]LolaMethodInstanceDeployment `json:"methods" yaml:"methods"`
	StrictPermissions      bool                                    `json:"strict_permissions" yaml:"strict_permissions"`
	AllowedConsumer        map[QualityType][]uint32                `json:"allowed_consumer" yaml:"allowed_consumer"`
	AllowedProvider        map[QualityType][]uint32                `json:"allowed_provider" yaml:"allowed_provider"`
	SharedMemorySize       *uint64                                 `json:"shared_memory_size,omitempty" yaml:"shared_memory_size,omitempty"`
	ControlAsilBMemorySize *uint64                                 `json:"control_asil_b_memory_size,omitempty" yaml:"control_asil_b_memory_size,omitempty"`
	ControlQMMemorySize    *uint64                                 `json:"control_qm_memory_size,omitempty" yaml:"control_qm_memory_size,omitempty"`
}

func (LolaServiceInstanceDeployment) isInstanceBinding() {}

// ServiceInstanceDeployment is one deployed instance of a service type.
type ServiceInstanceDeployment struct {
	Service           ServiceIdentifier `json:"service" yaml:"service"`
	Binding           InstanceBinding   `json:"binding" yaml:"binding"`
	AsilLevel         QualityType       `json:"asil_level" yaml:"asil_level"`
	InstanceSpecifier InstanceSpecifier `json:"instance_specifier" yaml:"instance_specifier"`
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (d LolaServiceTypeDeployment) clone() LolaServiceTypeDeployment {
	d.Events = maps.Clone(d.Events)
	d.Fields = maps.Clone(d.Fields)
	d.Methods = maps.Clone(d.Methods)
	return d
}

func (d ServiceTypeDeployment) clone() ServiceTypeDeployment {
	if lola, ok := d.Binding.(LolaServiceTypeDeployment); ok {
		d.Binding = lola.clone()
	}
	return d
}

func (e LolaEventInstanceDeployment) clone() LolaEventInstanceDeployment {
	e.NumberOfSampleSlots = clonePtr(e.NumberOfSampleSlots)
	e.MaxSubscribers = clonePtr(e.MaxSubscribers)
	e.MaxConcurrentAllocations = clonePtr(e.MaxConcurrentAllocations)
	return e
}

func (f LolaFieldInstanceDeployment) clone() LolaFieldInstanceDeployment {
	f.NumberOfSampleSlots = clonePtr(f.NumberOfSampleSlots)
	f.MaxSubscribers = clonePtr(f.MaxSubscribers)
	f.MaxConcurrentAllocations = clonePtr(f.MaxConcurrentAllocations)
	return f
}

func (m LolaMethodInstanceDeployment) clone() LolaMethodInstanceDeployment {
	m.QueueSize = clonePtr(m.QueueSize)
	return m
}

// cloneValues copies m and every value in it with cloneValue. A nil map
// stays nil.
func cloneValues[K comparable, V any](m map[K]V, cloneValue func(V) V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneUIDs(uids []uint32) []uint32 {
	return slices.Clone(uids)
}

func (d LolaServiceInstanceDeployment) clone() LolaServiceInstanceDeployment {
	d.InstanceID = clonePtr(d.InstanceID)
	d.Events = cloneValues(d.Events, LolaEventInstanceDeployment.clone)
	d.Fields = cloneValues(d.Fields, LolaFieldInstanceDeployment.clone)
	d.Methods = cloneValues(d.Methods, LolaMethodInstanceDeployment.clone)
	d.AllowedConsumer = cloneValues(d.AllowedConsumer, cloneUIDs)
	d.AllowedProvider = cloneValues(d.AllowedProvider, cloneUIDs)
	d.SharedMemorySize = clonePtr(d.SharedMemorySize)
	d.ControlAsilBMemorySize = clonePtr(d.ControlAsilBMemorySize)
	d.ControlQMMemorySize = clonePtr(d.ControlQMMemorySize)
	return d
}

func (d ServiceInstanceDeployment) clone() ServiceInstanceDeployment {
	if lola, ok := d.Binding.(LolaServiceInstanceDeployment); ok {
		d.Binding = lola.clone()
	}
	return d
}
