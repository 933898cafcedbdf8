package caster

import (
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Stream types understood by cast receivers.
const (
	StreamTypeBuffered = "BUFFERED"
	StreamTypeLive     = "LIVE"
	StreamTypeNone     = "NONE"
)

var (
	// ErrMissingMediaURL - media metadata without a url.
	ErrMissingMediaURL = errors.New("DecodeMediaData: missing media url")
	// ErrUnknownStreamType - stream_type outside BUFFERED, LIVE and NONE.
	ErrUnknownStreamType = errors.New("DecodeMediaData: unknown stream type")
)

// MediaTrack is a side track carried with MediaData. Decoded metadata
// names them by the snake_case keys below; ContentID is where the receiver
// fetches the track from.
type MediaTrack struct {
	TrackID     int    `mapstructure:"track_id"`
	Type        string `mapstructure:"type"`
	SubType     string `mapstructure:"subtype"`
	ContentID   string `mapstructure:"content_id"`
	ContentType string `mapstructure:"content_type"`
	Name        string `mapstructure:"name"`
	Language    string `mapstructure:"language"`
}

// MediaData describes a piece of media to load on a Player.
type MediaData struct {
	URL         string        `mapstructure:"url"`
	ContentType string        `mapstructure:"content_type"`
	StreamType  string        `mapstructure:"stream_type"`
	Title       string        `mapstructure:"title"`
	Subtitle    string        `mapstructure:"subtitle"`
	ImageURLs   []string      `mapstructure:"image_urls"`
	Tracks      []MediaTrack  `mapstructure:"tracks"`
	Autoplay    bool          `mapstructure:"autoplay"`
	Position    time.Duration `mapstructure:"position"`
}

// NewSubtitleTrack returns a TEXT/SUBTITLES track served as WebVTT from url.
func NewSubtitleTrack(trackID int, url, name, language string) MediaTrack {
	return MediaTrack{
		TrackID:     trackID,
		Type:        "TEXT",
		SubType:     "SUBTITLES",
		ContentID:   url,
		ContentType: "text/vtt",
		Name:        name,
		Language:    language,
	}
}

// DecodeMediaData decodes loosely typed media metadata into a MediaData.
// Position accepts a duration string ("1m30s") or a number of nanoseconds.
func DecodeMediaData(raw map[string]any) (MediaData, error) {
	var m MediaData

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &m,
	})
	if err != nil {
		return MediaData{}, errors.Wrap(err, "DecodeMediaData decoder error")
	}

	if err := dec.Decode(raw); err != nil {
		return MediaData{}, errors.Wrap(err, "DecodeMediaData decode error")
	}

	if strings.TrimSpace(m.URL) == "" {
		return MediaData{}, ErrMissingMediaURL
	}

	m.StreamType = strings.ToUpper(strings.TrimSpace(m.StreamType))
	switch m.StreamType {
	case "":
		m.StreamType = StreamTypeBuffered
	case StreamTypeBuffered, StreamTypeLive, StreamTypeNone:
	default:
		return MediaData{}, errors.Wrapf(ErrUnknownStreamType, "%q", m.StreamType)
	}

	return m, nil
}
