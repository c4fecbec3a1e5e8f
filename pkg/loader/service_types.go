package loader

import (
	"math"

	"github.com/ajitpratap0/comconfig/pkg/configuration"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

type serviceTypes = map[configuration.ServiceIdentifier]configuration.ServiceTypeDeployment

// mapServiceTypes maps the service_types section. Identifiers must be unique.
func mapServiceTypes(root *wire.ComConfiguration) (serviceTypes, error) {
	n := root.ServiceTypesLength()
	out := make(serviceTypes, n)

	var st wire.ServiceType
	for i := 0; i < n; i++ {
		root.ServiceTypes(&st, i)
		id, deployment, err := mapServiceType(&st)
		if err != nil {
			return nil, annotate(err, "index", i)
		}
		if _, dup := out[id]; dup {
			return nil, invariant("service type deployed twice").
				WithDetail("service", id.String()).
				WithDetail("index", i)
		}
		out[id] = deployment
	}
	return out, nil
}

func mapServiceType(st *wire.ServiceType) (configuration.ServiceIdentifier, configuration.ServiceTypeDeployment, error) {
	name := string(st.ServiceTypeName())
	version := st.Version(nil)
	if version == nil {
		return configuration.ServiceIdentifier{}, configuration.ServiceTypeDeployment{},
			invariant("service type is missing its version").WithDetail("service_type_name", name)
	}
	id := configuration.NewServiceIdentifier(name, version.Major(), version.Minor())

	binding, err := selectTypeBinding(st)
	if err != nil {
		return id, configuration.ServiceTypeDeployment{}, annotate(err, "service", id.String())
	}
	return id, configuration.ServiceTypeDeployment{Binding: binding}, nil
}

// selectTypeBinding returns the first SHM binding. Bindings before it must
// be understood; a SOME/IP or unknown kind is rejected rather than skipped.
func selectTypeBinding(st *wire.ServiceType) (configuration.TypeBinding, error) {
	var b wire.ServiceTypeBinding
	for i := 0; i < st.BindingsLength(); i++ {
		st.Bindings(&b, i)
		switch kind := b.Binding(); kind {
		case wire.BindingTypeSHM:
			return mapLolaServiceType(&b)
		case wire.BindingTypeSOME_IP:
			return nil, invariant("SOME/IP binding is not supported").WithDetail("binding", kind.String())
		default:
			return nil, invariant("unknown binding type").WithDetail("binding", kind.String())
		}
	}
	return nil, invariant("service type has no SHM binding")
}

func mapLolaServiceType(b *wire.ServiceTypeBinding) (configuration.TypeBinding, error) {
	serviceID, err := narrow[configuration.LolaServiceID](b.ServiceId(), math.MaxUint16, "service_id")
	if err != nil {
		return nil, err
	}
	deployment := configuration.LolaServiceTypeDeployment{
		ServiceID: serviceID,
		Events:    make(map[string]configuration.LolaEventID, b.EventsLength()),
		Fields:    make(map[string]configuration.LolaFieldID, b.FieldsLength()),
		Methods:   make(map[string]configuration.LolaMethodID, b.MethodsLength()),
	}

	var event wire.EventId
	for i := 0; i < b.EventsLength(); i++ {
		b.Events(&event, i)
		if err := putID(deployment.Events, "event", string(event.EventName()), event.EventId()); err != nil {
			return nil, err
		}
	}
	var field wire.FieldId
	for i := 0; i < b.FieldsLength(); i++ {
		b.Fields(&field, i)
		if err := putID(deployment.Fields, "field", string(field.FieldName()), field.FieldId()); err != nil {
			return nil, err
		}
	}
	var method wire.MethodId
	for i := 0; i < b.MethodsLength(); i++ {
		b.Methods(&method, i)
		if err := putID(deployment.Methods, "method", string(method.MethodName()), method.MethodId()); err != nil {
			return nil, err
		}
	}
	return deployment, nil
}

// putID inserts a name→id entry, rejecting duplicate names and ids that do
// not fit the model.
func putID[T ~uint8](m map[string]T, kind, name string, raw uint32) error {
	if _, dup := m[name]; dup {
		return invariant("%s %q declared twice", kind, name).WithDetail(kind, name)
	}
	id, err := narrow[T](raw, math.MaxUint8, kind+"_id")
	if err != nil {
		return annotate(err, kind, name)
	}
	m[name] = id
	return nil
}
