package loader

import (
	"math"

	"go.uber.org/zap"

	"github.com/ajitpratap0/comconfig/pkg/configuration"
	"github.com/ajitpratap0/comconfig/pkg/logger"
	"github.com/ajitpratap0/comconfig/pkg/wire"
)

// mapGlobal maps the optional global section; without it the defaults apply.
func mapGlobal(root *wire.ComConfiguration) (configuration.GlobalConfiguration, error) {
	global := root.Global(nil)
	if global == nil {
		return configuration.NewGlobalConfiguration(), nil
	}

	opts := []configuration.GlobalOption{
		configuration.WithProcessASILLevel(qualityType(global.AsilLevel())),
	}
	if id := global.ApplicationId(); id != 0 {
		opts = append(opts, configuration.WithApplicationID(id))
	}
	if qs := global.QueueSize(nil); qs != nil {
		qmReceiver, err := queueSize(qs.QmReceiver(), "qm_receiver")
		if err != nil {
			return configuration.GlobalConfiguration{}, err
		}
		bReceiver, err := queueSize(qs.BReceiver(), "b_receiver")
		if err != nil {
			return configuration.GlobalConfiguration{}, err
		}
		bSender, err := queueSize(qs.BSender(), "b_sender")
		if err != nil {
			return configuration.GlobalConfiguration{}, err
		}
		opts = append(opts,
			configuration.WithReceiverQueueSize(configuration.QualityTypeASILQM, qmReceiver),
			configuration.WithReceiverQueueSize(configuration.QualityTypeASILB, bReceiver),
			configuration.WithSenderQueueSize(bSender),
		)
	}

	// Only simulation is implemented; an encoded estimation request is ignored.
	if global.HasShmSizeCalcMode() && global.ShmSizeCalcMode() != wire.ShmSizeCalcModeSIMULATION {
		logger.Warn("unsupported shm size calculation mode, using simulation",
			zap.Stringer("requested", global.ShmSizeCalcMode()))
	}
	opts = append(opts, configuration.WithShmSizeCalcMode(configuration.ShmSizeCalcModeSimulation))

	return configuration.NewGlobalConfiguration(opts...), nil
}

func queueSize(raw uint32, field string) (int32, error) {
	if raw > math.MaxInt32 {
		return 0, invariant("queue size %s %d exceeds the maximum of %d", field, raw, math.MaxInt32).
			WithDetail("field", field).
			WithDetail("value", raw)
	}
	return int32(raw), nil
}
