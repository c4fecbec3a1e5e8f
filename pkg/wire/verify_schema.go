package wire

// Per-table verification for mw_com_config.fbs. The vtable offsets match the
// field order of the schema (field i lives at 4 + 2*i).

// VerifyComConfigurationBuffer verifies buf as a complete descriptor buffer
// carrying the MWCC file identifier.
func VerifyComConfigurationBuffer(buf []byte, opts ...VerifierOption) error {
	return NewVerifier(buf, opts...).buffer(ComConfigurationIdentifier, verifyComConfiguration)
}

func verifyComConfiguration(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "ComConfiguration", func(t table) []func() error {
		return []func() error{
			func() error { return v.tableVector(t, 4, "service_types", true, verifyServiceType) },
			func() error { return v.tableVector(t, 6, "service_instances", true, verifyServiceInstance) },
			func() error { return v.subTable(t, 8, "global", false, verifyGlobal) },
			func() error { return v.subTable(t, 10, "tracing", false, verifyTracing) },
		}
	})
}

func verifyVersion(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "Version", func(t table) []func() error {
		return []func() error{
			func() error { return v.scalar(t, 4, 4, "major") },
			func() error { return v.scalar(t, 6, 4, "minor") },
		}
	})
}

// verifyNamedID covers EventId, FieldId and MethodId.
func verifyNamedID(name, nameField, idField string) func(*Verifier, uint64) error {
	return func(v *Verifier, pos uint64) error {
		return v.verifyTable(pos, name, func(t table) []func() error {
			return []func() error{
				func() error { return v.str(t, 4, nameField, true) },
				func() error { return v.scalar(t, 6, 4, idField) },
			}
		})
	}
}

var (
	verifyEventID  = verifyNamedID("EventId", "event_name", "event_id")
	verifyFieldID  = verifyNamedID("FieldId", "field_name", "field_id")
	verifyMethodID = verifyNamedID("MethodId", "method_name", "method_id")
)

func verifyServiceTypeBinding(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "ServiceTypeBinding", func(t table) []func() error {
		return []func() error{
			func() error { return v.scalar(t, 4, 1, "binding") },
			func() error { return v.scalar(t, 6, 4, "service_id") },
			func() error { return v.tableVector(t, 8, "events", false, verifyEventID) },
			func() error { return v.tableVector(t, 10, "fields", false, verifyFieldID) },
			func() error { return v.tableVector(t, 12, "methods", false, verifyMethodID) },
		}
	})
}

func verifyServiceType(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "ServiceType", func(t table) []func() error {
		return []func() error{
			func() error { return v.str(t, 4, "service_type_name", true) },
			func() error { return v.subTable(t, 6, "version", false, verifyVersion) },
			func() error { return v.tableVector(t, 8, "bindings", true, verifyServiceTypeBinding) },
		}
	})
}

// verifyElementInstance covers EventInstance and FieldInstance.
func verifyElementInstance(name, nameField string) func(*Verifier, uint64) error {
	return func(v *Verifier, pos uint64) error {
		return v.verifyTable(pos, name, func(t table) []func() error {
			return []func() error{
				func() error { return v.str(t, 4, nameField, true) },
				func() error { return v.scalar(t, 6, 4, "number_of_sample_slots") },
				func() error { return v.scalar(t, 8, 4, "max_subscribers") },
				func() error { return v.scalar(t, 10, 1, "enforce_max_samples") },
				func() error { return v.scalar(t, 12, 4, "number_of_ipc_tracing_slots") },
			}
		})
	}
}

var (
	verifyEventInstance = verifyElementInstance("EventInstance", "event_name")
	verifyFieldInstance = verifyElementInstance("FieldInstance", "field_name")
)

func verifyMethodInstance(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "MethodInstance", func(t table) []func() error {
		return []func() error{
			func() error { return v.str(t, 4, "method_name", true) },
			func() error { return v.scalar(t, 6, 4, "queue_size") },
		}
	})
}

// verifyAllowedUsers covers AllowedConsumer and AllowedProvider.
func verifyAllowedUsers(name string) func(*Verifier, uint64) error {
	return func(v *Verifier, pos uint64) error {
		return v.verifyTable(pos, name, func(t table) []func() error {
			return []func() error{
				func() error { return v.scalarVector(t, 4, 4, "qm") },
				func() error { return v.scalarVector(t, 6, 4, "b") },
			}
		})
	}
}

var (
	verifyAllowedConsumer = verifyAllowedUsers("AllowedConsumer")
	verifyAllowedProvider = verifyAllowedUsers("AllowedProvider")
)

func verifyInstance(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "Instance", func(t table) []func() error {
		return []func() error{
			func() error { return v.scalar(t, 4, 4, "instance_id") },
			func() error { return v.scalar(t, 6, 1, "asil_level") },
			func() error { return v.scalar(t, 8, 1, "binding") },
			func() error { return v.tableVector(t, 10, "events", false, verifyEventInstance) },
			func() error { return v.tableVector(t, 12, "fields", false, verifyFieldInstance) },
			func() error { return v.tableVector(t, 14, "methods", false, verifyMethodInstance) },
			func() error { return v.scalar(t, 16, 8, "shm_size") },
			func() error { return v.scalar(t, 18, 8, "control_asil_b_shm_size") },
			func() error { return v.scalar(t, 20, 8, "control_qm_shm_size") },
			func() error { return v.subTable(t, 22, "allowed_consumer", false, verifyAllowedConsumer) },
			func() error { return v.subTable(t, 24, "allowed_provider", false, verifyAllowedProvider) },
			func() error { return v.scalar(t, 26, 1, "permission_checks") },
		}
	})
}

func verifyServiceInstance(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "ServiceInstance", func(t table) []func() error {
		return []func() error{
			func() error { return v.str(t, 4, "instance_specifier", true) },
			func() error { return v.str(t, 6, "service_type_name", true) },
			func() error { return v.subTable(t, 8, "version", true, verifyVersion) },
			func() error { return v.tableVector(t, 10, "instances", false, verifyInstance) },
		}
	})
}

func verifyQueueSize(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "QueueSize", func(t table) []func() error {
		return []func() error{
			func() error { return v.scalar(t, 4, 4, "qm_receiver") },
			func() error { return v.scalar(t, 6, 4, "b_receiver") },
			func() error { return v.scalar(t, 8, 4, "b_sender") },
		}
	})
}

func verifyGlobal(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "Global", func(t table) []func() error {
		return []func() error{
			func() error { return v.scalar(t, 4, 1, "asil_level") },
			func() error { return v.scalar(t, 6, 4, "application_id") },
			func() error { return v.subTable(t, 8, "queue_size", false, verifyQueueSize) },
			func() error { return v.scalar(t, 10, 1, "shm_size_calc_mode") },
		}
	})
}

func verifyTracing(v *Verifier, pos uint64) error {
	return v.verifyTable(pos, "Tracing", func(t table) []func() error {
		return []func() error{
			func() error { return v.scalar(t, 4, 1, "enable") },
			func() error { return v.str(t, 6, "application_instance_id", true) },
			func() error { return v.str(t, 8, "trace_filter_config_path", false) },
		}
	})
}
