package player

import (
	"errors"
	"fmt"
)

var (
	// ErrOutputBlocked is returned when the audio device cannot be opened,
	// so playback cannot start without further user action.
	ErrOutputBlocked = errors.New("audio output unavailable")

	// ErrUnsupportedFormat is wrapped by load errors for sources this
	// player cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// ErrorKind classifies why a source could not be played.
type ErrorKind int

const (
	KindAborted ErrorKind = iota + 1
	KindNetwork
	KindDecode
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindAborted:
		return "aborted"
	case KindNetwork:
		return "network error"
	case KindDecode:
		return "decode error"
	case KindUnsupported:
		return "format not supported"
	default:
		return "unknown error"
	}
}

// LoadError reports a failure to load or start a source.
type LoadError struct {
	Kind ErrorKind
	Src  string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Src, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// KindOf returns the kind of a load error, or 0 when err is not one.
func KindOf(err error) ErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}
