package driver

import "time"

// Stage describes a front-end phase.
type Stage string

const (
	// StageTokenize is the scanning stage.
	StageTokenize Stage = "tokenize"
	// StageParse is the parsing stage.
	StageParse Stage = "parse"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file came out clean.
	StatusDone Status = "done"
	// StatusError indicates the file produced diagnostics.
	StatusError Status = "error"
	// StatusCached indicates a cache hit skipped the work.
	StatusCached Status = "cached"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events. Implementations must be safe for
// concurrent calls: check workers emit from their own goroutines.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink Sink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
