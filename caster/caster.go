package caster

import "time"

// Caster is the casting capability a media player talks to. Real
// implementations discover cast targets and drive sessions on them; NoOp
// stands in when casting is unavailable or turned off.
type Caster interface {
	// Player returns the playback controller for the current cast target.
	Player() Player
	IsConnected() bool
	AddMediaRouteMenuItem(menu Menu, withIntroductionOverlay bool)
	SetupMediaRouteButton(button RouteButton, withIntroduction bool)
	AddMiniController()
	// AddMiniControllerLayout is AddMiniController with a caller supplied layout.
	AddMiniControllerLayout(layoutID int)
	// SetOnConnectChangeListener replaces the connection listener. A nil
	// listener clears it.
	SetOnConnectChangeListener(l *ConnectChangeListener)
	// SetOnCastSessionUpdatedListener replaces the session listener. A nil
	// listener clears it.
	SetOnCastSessionUpdatedListener(l SessionUpdatedListener)
}

// Player controls playback on a cast target.
type Player interface {
	// LoadMedia loads m and starts playback if m.Autoplay is set.
	LoadMedia(m MediaData) error
	// LoadMediaInBackground loads m without handing focus to the
	// expanded controller.
	LoadMediaInBackground(m MediaData) error
	Play() error
	Pause() error
	Stop() error
	// Seek seeks to position from the start of the media.
	Seek(position time.Duration) error
	TogglePlayPause() error
	IsPlaying() bool
	IsPaused() bool
	IsBuffering() bool
	Status() Status
}

// Menu is the menu widget owned by the UI layer.
type Menu interface {
	AddItem(title string) MenuItem
	Size() int
}

// MenuItem is a single entry of a Menu.
type MenuItem interface {
	SetVisible(visible bool)
}

// RouteButton is the route selection button owned by the UI layer.
type RouteButton interface {
	SetRouteSelector(selector string)
	SetVisible(visible bool)
}

// ConnectChangeListener observes connection changes. Either field may be nil.
type ConnectChangeListener struct {
	OnConnected    func()
	OnDisconnected func()
}

// SessionUpdatedListener observes cast session updates.
type SessionUpdatedListener func(s Session)

// Session identifies the target a cast session runs on.
type Session struct {
	DeviceName string
	DeviceAddr string
}

// Player states, as reported by cast receivers.
const (
	StatePlaying   = "PLAYING"
	StatePaused    = "PAUSED"
	StateBuffering = "BUFFERING"
	StateIdle      = "IDLE"
)

// Status is a snapshot of a Player. PlayerState holds one of the State
// constants; Volume is in the 0..1 range.
type Status struct {
	PlayerState string
	CurrentTime time.Duration
	Duration    time.Duration
	Volume      float32
	Muted       bool
}
