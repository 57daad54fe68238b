package notification

import (
	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

// Sink receives display-ready notifications for presentation. Sinks
// must tolerate duplicate deliveries; the Store is the dedup authority
// but a duplicate reaching a sink is not an error condition.
type Sink interface {
	Deliver(n domain.Display)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(n domain.Display)

func (f SinkFunc) Deliver(n domain.Display) {
	f(n)
}

// MultiSink fans a delivery out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Deliver(n domain.Display) {
	for _, s := range m {
		s.Deliver(n)
	}
}

// LogSink records deliveries at debug level. Used as the default sink
// when no presentation surface is attached.
type LogSink struct {
	logger logger.Interface
}

func NewLogSink(log logger.Interface) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Deliver(n domain.Display) {
	s.logger.Debugw("notification delivered",
		"id", n.ID,
		"kind", n.Kind,
		"link", n.Link,
	)
}
