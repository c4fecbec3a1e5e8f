package fixture

import "github.com/ajitpratap0/comconfig/pkg/wire"

// Radar returns a descriptor with one SHM service type "Radar" v1.0 and
// one ASIL-B instance of it deployed as "abs/radar".
func Radar() Descriptor {
	return Descriptor{
		ServiceTypes: []ServiceType{{
			Name:    "Radar",
			Version: &Version{Major: 1, Minor: 0},
			Bindings: []TypeBinding{{
				Binding:   wire.BindingTypeSHM,
				ServiceID: 6432,
				Events:    []NamedID{{Name: "Detections", ID: 3}},
			}},
		}},
		ServiceInstances: []ServiceInstance{{
			InstanceSpecifier: "abs/radar",
			Name:              "Radar",
			Version:           &Version{Major: 1, Minor: 0},
			Instances: []Instance{{
				AsilLevel: wire.AsilLevelB,
				Binding:   wire.BindingTypeSHM,
				Events: []ElementInstance{{
					Name:                "Detections",
					NumberOfSampleSlots: 4,
					MaxSubscribers:      2,
				}},
			}},
		}},
	}
}

// RadarInstance returns the single SHM instance record of Radar for
// tests that vary one field of it.
func RadarInstance() Instance {
	return Radar().ServiceInstances[0].Instances[0]
}

// WithInstances replaces the instance records of the first service instance.
func (d Descriptor) WithInstances(instances ...Instance) Descriptor {
	sis := append([]ServiceInstance(nil), d.ServiceInstances...)
	sis[0].Instances = instances
	d.ServiceInstances = sis
	return d
}
