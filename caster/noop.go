package caster

import (
	"time"

	"github.com/rs/zerolog"
)

// NoOp is the Caster used when casting is unavailable. It is never
// connected and ignores every call. The zero value is ready to use.
type NoOp struct {
	player PlayerNoOp
	logger zerolog.Logger
}

// NoOpOption configures a NoOp.
type NoOpOption func(*NoOp)

// WithLogger traces ignored calls to l at debug level.
func WithLogger(l zerolog.Logger) NoOpOption {
	return func(n *NoOp) {
		n.logger = l
	}
}

var (
	_ Caster = (*NoOp)(nil)
	_ Player = (*PlayerNoOp)(nil)
)

// NewNoOp returns a NoOp owning a single PlayerNoOp for its lifetime.
func NewNoOp(opts ...NoOpOption) *NoOp {
	n := &NoOp{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.player.logger = n.logger
	return n
}

func (n *NoOp) trace(method string) {
	n.logger.Debug().Str("Method", method).Msg("casting unavailable, ignoring")
}

// Player returns the same PlayerNoOp on every call.
func (n *NoOp) Player() Player {
	return &n.player
}

// IsConnected always returns false.
func (n *NoOp) IsConnected() bool {
	return false
}

// AddMediaRouteMenuItem leaves menu untouched.
func (n *NoOp) AddMediaRouteMenuItem(menu Menu, withIntroductionOverlay bool) {
	n.trace("AddMediaRouteMenuItem")
}

// SetupMediaRouteButton leaves button untouched.
func (n *NoOp) SetupMediaRouteButton(button RouteButton, withIntroduction bool) {
	n.trace("SetupMediaRouteButton")
}

func (n *NoOp) AddMiniController() {
	n.trace("AddMiniController")
}

func (n *NoOp) AddMiniControllerLayout(layoutID int) {
	n.trace("AddMiniControllerLayout")
}

// SetOnConnectChangeListener drops l. The connection state never changes,
// so there is nothing to report.
func (n *NoOp) SetOnConnectChangeListener(l *ConnectChangeListener) {
	n.trace("SetOnConnectChangeListener")
}

// SetOnCastSessionUpdatedListener drops l.
func (n *NoOp) SetOnCastSessionUpdatedListener(l SessionUpdatedListener) {
	n.trace("SetOnCastSessionUpdatedListener")
}

// PlayerNoOp is the Player owned by NoOp.
type PlayerNoOp struct {
	logger zerolog.Logger
}

func (p *PlayerNoOp) trace(method string) {
	p.logger.Debug().Str("Method", method).Msg("no cast target, ignoring")
}

func (p *PlayerNoOp) LoadMedia(m MediaData) error {
	p.trace("LoadMedia")
	return nil
}

func (p *PlayerNoOp) LoadMediaInBackground(m MediaData) error {
	p.trace("LoadMediaInBackground")
	return nil
}

func (p *PlayerNoOp) Play() error {
	p.trace("Play")
	return nil
}

func (p *PlayerNoOp) Pause() error {
	p.trace("Pause")
	return nil
}

func (p *PlayerNoOp) Stop() error {
	p.trace("Stop")
	return nil
}

func (p *PlayerNoOp) Seek(position time.Duration) error {
	p.trace("Seek")
	return nil
}

func (p *PlayerNoOp) TogglePlayPause() error {
	p.trace("TogglePlayPause")
	return nil
}

func (p *PlayerNoOp) IsPlaying() bool   { return false }
func (p *PlayerNoOp) IsPaused() bool    { return false }
func (p *PlayerNoOp) IsBuffering() bool { return false }

// Status always reports an idle player.
func (p *PlayerNoOp) Status() Status {
	return Status{PlayerState: StateIdle}
}
