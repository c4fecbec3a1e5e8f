package main

import (
	"slices"
	"strings"

	"github.com/ajitpratap0/comconfig/pkg/configuration"
)

// configurationView is the rendered form of a Configuration. Map sections
// become lists sorted by key so output is stable and every key type can be
// encoded.
type configurationView struct {
	ServiceTypes     []serviceTypeView     `json:"service_types" yaml:"service_types"`
	ServiceInstances []serviceInstanceView `json:"service_instances" yaml:"service_instances"`
	Global           globalView            `json:"global" yaml:"global"`
	Tracing          tracingView           `json:"tracing" yaml:"tracing"`
}

type serviceTypeView struct {
	Service configuration.ServiceIdentifier `json:"service" yaml:"service"`
	Binding configuration.TypeBinding       `json:"binding" yaml:"binding"`
}

type serviceInstanceView struct {
	InstanceSpecifier configuration.InstanceSpecifier `json:"instance_specifier" yaml:"instance_specifier"`
	Service           configuration.ServiceIdentifier `json:"service" yaml:"service"`
	AsilLevel         configuration.QualityType       `json:"asil_level" yaml:"asil_level"`
	Binding           configuration.InstanceBinding   `json:"binding" yaml:"binding"`
}

type globalView struct {
	ProcessASILLevel   configuration.QualityType           `json:"process_asil_level" yaml:"process_asil_level"`
	ApplicationID      *uint32                             `json:"application_id,omitempty" yaml:"application_id,omitempty"`
	ReceiverQueueSizes map[configuration.QualityType]int32 `json:"receiver_queue_sizes" yaml:"receiver_queue_sizes"`
	SenderQueueSize    int32                               `json:"sender_queue_size" yaml:"sender_queue_size"`
	ShmSizeCalcMode    configuration.ShmSizeCalcMode       `json:"shm_size_calc_mode" yaml:"shm_size_calc_mode"`
}

type tracingView struct {
	Enabled               bool   `json:"enabled" yaml:"enabled"`
	ApplicationInstanceID string `json:"application_instance_id" yaml:"application_instance_id"`
	TraceFilterConfigPath string `json:"trace_filter_config_path" yaml:"trace_filter_config_path"`
}

func newConfigurationView(cfg *configuration.Configuration) configurationView {
	view := configurationView{
		ServiceTypes:     []serviceTypeView{},
		ServiceInstances: []serviceInstanceView{},
	}
	for id, deployment := range cfg.ServiceTypes() {
		view.ServiceTypes = append(view.ServiceTypes, serviceTypeView{Service: id, Binding: deployment.Binding})
	}
	slices.SortFunc(view.ServiceTypes, func(a, b serviceTypeView) int {
		return strings.Compare(a.Service.String(), b.Service.String())
	})

	for _, deployment := range cfg.ServiceInstances() {
		view.ServiceInstances = append(view.ServiceInstances, serviceInstanceView{
			InstanceSpecifier: deployment.InstanceSpecifier,
			Service:           deployment.Service,
			AsilLevel:         deployment.AsilLevel,
			Binding:           deployment.Binding,
		})
	}
	slices.SortFunc(view.ServiceInstances, func(a, b serviceInstanceView) int {
		return strings.Compare(a.InstanceSpecifier.String(), b.InstanceSpecifier.String())
	})

	global := cfg.Global()
	view.Global = globalView{
		ProcessASILLevel:   global.ProcessASILLevel(),
		ReceiverQueueSizes: global.ReceiverQueueSizes(),
		SenderQueueSize:    global.SenderQueueSize(),
		ShmSizeCalcMode:    global.ShmSizeCalcMode(),
	}
	if id, ok := global.ApplicationID(); ok {
		view.Global.ApplicationID = &id
	}

	tracing := cfg.Tracing()
	view.Tracing = tracingView{
		Enabled:               tracing.Enabled(),
		ApplicationInstanceID: tracing.ApplicationInstanceID(),
		TraceFilterConfigPath: tracing.TraceFilterConfigPath(),
	}
	return view
}
