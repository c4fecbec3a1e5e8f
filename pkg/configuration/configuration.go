package configuration

// Configuration is the assembled deployment model.
type Configuration struct {
	serviceTypes     map[ServiceIdentifier]ServiceTypeDeployment
	serviceInstances map[InstanceSpecifier]ServiceInstanceDeployment
	global           GlobalConfiguration
	tracing          TracingConfiguration
}

// NewConfiguration composes the four mapped sections. The deployments are
// deep-copied, so later changes by the caller do not reach the Configuration.
func NewConfiguration(
	serviceTypes map[ServiceIdentifier]ServiceTypeDeployment,
	serviceInstances map[InstanceSpecifier]ServiceInstanceDeployment,
	global GlobalConfiguration,
	tracing TracingConfiguration,
) *Configuration {
	return &Configuration{
		serviceTypes:     cloneServiceTypes(serviceTypes),
		serviceInstances: cloneServiceInstances(serviceInstances),
		global:           global,
		tracing:          tracing,
	}
}

func cloneServiceTypes(m map[ServiceIdentifier]ServiceTypeDeployment) map[ServiceIdentifier]ServiceTypeDeployment {
	out := make(map[ServiceIdentifier]ServiceTypeDeployment, len(m))
	for id, d := range m {
		out[id] = d.clone()
	}
	return out
}

func cloneServiceInstances(m map[InstanceSpecifier]ServiceInstanceDeployment) map[InstanceSpecifier]ServiceInstanceDeployment {
	out := make(map[InstanceSpecifier]ServiceInstanceDeployment, len(m))
	for spec, d := range m {
		out[spec] = d.clone()
	}
	return out
}

// ServiceTypes returns a deep copy of the service-type mapping.
func (c *Configuration) ServiceTypes() map[ServiceIdentifier]ServiceTypeDeployment {
	return cloneServiceTypes(c.serviceTypes)
}

// ServiceInstances returns a deep copy of the service-instance mapping.
func (c *Configuration) ServiceInstances() map[InstanceSpecifier]ServiceInstanceDeployment {
	return cloneServiceInstances(c.serviceInstances)
}

// ServiceType looks up the deployment of one service type.
func (c *Configuration) ServiceType(id ServiceIdentifier) (ServiceTypeDeployment, bool) {
	d, ok := c.serviceTypes[id]
	return d.clone(), ok
}

// ServiceInstance looks up the deployment of one service instance.
func (c *Configuration) ServiceInstance(specifier InstanceSpecifier) (ServiceInstanceDeployment, bool) {
	d, ok := c.serviceInstances[specifier]
	return d.clone(), ok
}

func (c *Configuration) Global() GlobalConfiguration {
	return c.global
}

func (c *Configuration) Tracing() TracingConfiguration {
	return c.tracing
}
