package caster

import (
	"io"

	"github.com/rs/zerolog"
)

// Factory builds a working Caster from opts.
type Factory func(opts Options) (Caster, error)

// Options controls which Caster New returns. It is passed by value; New
// and the Factory each work on their own copy.
type Options struct {
	// Enabled is the "casting enabled" switch. When false New always
	// returns a NoOp.
	Enabled bool
	Factory Factory

	OnConnectChange      *ConnectChangeListener
	OnCastSessionUpdated SessionUpdatedListener

	Logger zerolog.Logger
	// LogOutput, when set, replaces Logger with a JSON logger writing to it.
	LogOutput io.Writer
}

// Log returns the logger New hands to the selected caster.
func (o Options) Log() zerolog.Logger {
	if o.LogOutput != nil {
		return zerolog.New(o.LogOutput).With().Timestamp().Logger()
	}
	return o.Logger
}

// New returns the Caster selected by opts. It falls back to a NoOp whenever
// casting is disabled or the factory cannot produce a caster, so the result
// is never nil. Listeners in opts are registered on whichever caster is
// returned.
func New(opts Options) Caster {
	opts.Logger = opts.Log()
	opts.LogOutput = nil

	c := pick(opts, &opts.Logger)
	c.SetOnConnectChangeListener(opts.OnConnectChange)
	c.SetOnCastSessionUpdatedListener(opts.OnCastSessionUpdated)
	return c
}

func pick(opts Options, log *zerolog.Logger) Caster {
	if !opts.Enabled {
		log.Debug().Str("Method", "New").Msg("casting disabled")
		return NewNoOp(WithLogger(*log))
	}

	if opts.Factory == nil {
		log.Debug().Str("Method", "New").Msg("casting enabled but no implementation registered")
		return NewNoOp(WithLogger(*log))
	}

	c, err := opts.Factory(opts)
	if err != nil {
		log.Warn().Str("Method", "New").Err(err).Msg("caster unavailable, falling back to no-op")
		return NewNoOp(WithLogger(*log))
	}
	if c == nil {
		log.Warn().Str("Method", "New").Msg("factory returned no caster, falling back to no-op")
		return NewNoOp(WithLogger(*log))
	}

	return c
}

// IsNoOp reports whether c is the null caster.
func IsNoOp(c Caster) bool {
	_, ok := c.(*NoOp)
	return ok
}
