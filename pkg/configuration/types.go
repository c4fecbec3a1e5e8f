// Package configuration is the in-memory model of a LoLa deployment
// descriptor. A Configuration is assembled once by the loader and is
// read-only afterwards: it has getters only, and every value it exposes is
// owned by the model rather than by the buffer it was decoded from.
package configuration

import "fmt"

// QualityType is the safety-integrity level of a process or service instance.
type QualityType uint8

const (
	QualityTypeInvalid QualityType = iota
	QualityTypeASILQM
	QualityTypeASILB
)

// String returns the lower-case name of the quality level.
func (q QualityType) String() string {
	switch q {
	case QualityTypeASILQM:
		return "asil-qm"
	case QualityTypeASILB:
		return "asil-b"
	default:
		return "invalid"
	}
}

// MarshalText renders the quality level by name so it can key JSON and YAML maps.
func (q QualityType) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// ServiceVersion is the major/minor version of a service interface.
type ServiceVersion struct {
	Major uint32 `json:"major" yaml:"major"`
	Minor uint32 `json:"minor" yaml:"minor"`
}

// ServiceIdentifier identifies a service interface by name and version.
// It is comparable and keys Configuration.ServiceTypes.
type ServiceIdentifier struct {
	Name    string         `json:"name" yaml:"name"`
	Version ServiceVersion `json:"version" yaml:"version"`
}

// NewServiceIdentifier creates a ServiceIdentifier.
func NewServiceIdentifier(name string, major, minor uint32) ServiceIdentifier {
	return ServiceIdentifier{Name: name, Version: ServiceVersion{Major: major, Minor: minor}}
}

func (id ServiceIdentifier) String() string {
	return fmt.Sprintf("%s v%d.%d", id.Name, id.Version.Major, id.Version.Minor)
}

type (
	LolaServiceID         uint16
	LolaEventID           uint8
	LolaFieldID           uint8
	LolaMethodID          uint8
	LolaServiceInstanceID uint16
)

// ShmSizeCalcMode selects how shared-memory segment sizes are computed.
type ShmSizeCalcMode uint8

const (
	ShmSizeCalcModeSimulation ShmSizeCalcMode = iota
	ShmSizeCalcModeEstimation
)

func (m ShmSizeCalcMode) String() string {
	switch m {
	case ShmSizeCalcModeSimulation:
		return "simulation"
	case ShmSizeCalcModeEstimation:
		return "estimation"
	default:
		return fmt.Sprintf("ShmSizeCalcMode(%d)", uint8(m))
	}
}

// MarshalText renders the mode by name.
func (m ShmSizeCalcMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
