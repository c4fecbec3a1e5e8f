package configuration

import "maps"

const (
	DefaultReceiverQueueSize int32 = 10
	DefaultSenderQueueSize   int32 = 20
)

// GlobalConfiguration holds process-wide settings.
type GlobalConfiguration struct {
	processASILLevel  QualityType
	applicationID     *uint32
	receiverQueueSize map[QualityType]int32
	senderQueueSize   int32
	shmSizeCalcMode   ShmSizeCalcMode
}

// GlobalOption customizes a GlobalConfiguration.
type GlobalOption func(*GlobalConfiguration)

// WithProcessASILLevel sets the ASIL level of the process.
func WithProcessASILLevel(q QualityType) GlobalOption {
	return func(g *GlobalConfiguration) { g.processASILLevel = q }
}

// WithApplicationID sets the application id.
func WithApplicationID(id uint32) GlobalOption {
	return func(g *GlobalConfiguration) { g.applicationID = &id }
}

// WithReceiverQueueSize sets the receiver message queue size for one quality level.
func WithReceiverQueueSize(q QualityType, size int32) GlobalOption {
	return func(g *GlobalConfiguration) { g.receiverQueueSize[q] = size }
}

// WithSenderQueueSize sets the sender message queue size.
func WithSenderQueueSize(size int32) GlobalOption {
	return func(g *GlobalConfiguration) { g.senderQueueSize = size }
}

// WithShmSizeCalcMode sets the shared-memory size calculation mode.
func WithShmSizeCalcMode(m ShmSizeCalcMode) GlobalOption {
	return func(g *GlobalConfiguration) { g.shmSizeCalcMode = m }
}

// NewGlobalConfiguration returns the defaults (QM process, no application
// id, receiver queues of DefaultReceiverQueueSize, sender queue of
// DefaultSenderQueueSize, simulation mode) with opts applied.
func NewGlobalConfiguration(opts ...GlobalOption) GlobalConfiguration {
	g := GlobalConfiguration{
		processASILLevel: QualityTypeASILQM,
		receiverQueueSize: map[QualityType]int32{
			QualityTypeASILQM: DefaultReceiverQueueSize,
			QualityTypeASILB:  DefaultReceiverQueueSize,
		},
		senderQueueSize: DefaultSenderQueueSize,
		shmSizeCalcMode: ShmSizeCalcModeSimulation,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g GlobalConfiguration) ProcessASILLevel() QualityType {
	return g.processASILLevel
}

// ApplicationID returns the application id and whether it is set.
func (g GlobalConfiguration) ApplicationID() (uint32, bool) {
	if g.applicationID == nil {
		return 0, false
	}
	return *g.applicationID, true
}

// ReceiverQueueSize returns the receiver queue size for q.
func (g GlobalConfiguration) ReceiverQueueSize(q QualityType) (int32, bool) {
	size, ok := g.receiverQueueSize[q]
	return size, ok
}

// ReceiverQueueSizes returns a copy of all receiver queue sizes.
func (g GlobalConfiguration) ReceiverQueueSizes() map[QualityType]int32 {
	return maps.Clone(g.receiverQueueSize)
}

func (g GlobalConfiguration) SenderQueueSize() int32 {
	return g.senderQueueSize
}

func (g GlobalConfiguration) ShmSizeCalcMode() ShmSizeCalcMode {
	return g.shmSizeCalcMode
}
