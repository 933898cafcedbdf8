package caster

import (
	"bytes"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// recordingCaster is a stand-in for a real caster that keeps whatever
// listeners it is given.
type recordingCaster struct {
	NoOp
	connect *ConnectChangeListener
	session SessionUpdatedListener
}

func (r *recordingCaster) IsConnected() bool { return true }

func (r *recordingCaster) SetOnConnectChangeListener(l *ConnectChangeListener) {
	r.connect = l
}

func (r *recordingCaster) SetOnCastSessionUpdatedListener(l SessionUpdatedListener) {
	r.session = l
}

func TestNewSelection(t *testing.T) {
	working := &recordingCaster{}

	tests := []struct {
		name     string
		opts     Options
		wantNoOp bool
	}{
		{
			name:     "disabled",
			opts:     Options{Enabled: false, Factory: func(Options) (Caster, error) { return working, nil }},
			wantNoOp: true,
		},
		{
			name:     "enabled without factory",
			opts:     Options{Enabled: true},
			wantNoOp: true,
		},
		{
			name: "factory error",
			opts: Options{Enabled: true, Factory: func(Options) (Caster, error) {
				return nil, errors.New("no cast framework")
			}},
			wantNoOp: true,
		},
		{
			name:     "factory returns nil",
			opts:     Options{Enabled: true, Factory: func(Options) (Caster, error) { return nil, nil }},
			wantNoOp: true,
		},
		{
			name:     "working factory",
			opts:     Options{Enabled: true, Factory: func(Options) (Caster, error) { return working, nil }},
			wantNoOp: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.opts)
			require.NotNil(t, c)
			assert.Equal(t, tt.wantNoOp, IsNoOp(c))
			if tt.wantNoOp {
				assert.False(t, c.IsConnected())
			}
		})
	}
}

func TestNewRegistersListeners(t *testing.T) {
	working := &recordingCaster{}
	connect := &ConnectChangeListener{OnConnected: func() {}}

	c := New(Options{
		Enabled:              true,
		Factory:              func(Options) (Caster, error) { return working, nil },
		OnConnectChange:      connect,
		OnCastSessionUpdated: func(Session) {},
	})

	require.Same(t, working, c)
	assert.Same(t, connect, working.connect)
	assert.NotNil(t, working.session)
}

func TestNewNoOpNeverCallsListeners(t *testing.T) {
	fired := false

	c := New(Options{
		OnConnectChange: &ConnectChangeListener{
			OnConnected:    func() { fired = true },
			OnDisconnected: func() { fired = true },
		},
		OnCastSessionUpdated: func(Session) { fired = true },
	})

	c.AddMiniController()
	c.AddMediaRouteMenuItem(&mockMenu{}, true)
	assert.False(t, fired)
}

func TestNewLogsFallback(t *testing.T) {
	var buf bytes.Buffer

	c := New(Options{
		Enabled:   true,
		LogOutput: &buf,
		Factory: func(Options) (Caster, error) {
			return nil, errors.New("no cast framework")
		},
	})

	assert.True(t, IsNoOp(c))
	assert.Contains(t, buf.String(), "falling back to no-op")
	assert.Contains(t, buf.String(), "no cast framework")
}

func TestNewSharedOptionsAcrossGoroutines(t *testing.T) {
	var buf safeBuffer
	opts := Options{Enabled: true, LogOutput: &buf}

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			if !IsNoOp(New(opts)) {
				return assert.AnError
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Same(t, &buf, opts.LogOutput, "New must not modify the caller's Options")
	assert.Contains(t, buf.String(), "no implementation registered")
}

// safeBuffer is a bytes.Buffer that tolerates concurrent writers.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
