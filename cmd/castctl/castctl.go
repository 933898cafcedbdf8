package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go2tv.app/caster/caster"
	"go2tv.app/caster/internal/config"
)

var (
	version    string
	build      string
	configArg  = flag.String("config", "", "Path to the settings file. (Defaults to the user config directory)")
	enablePtr  = flag.Bool("enable", false, "Enable casting and save the setting.")
	disablePtr = flag.Bool("disable", false, "Disable casting and save the setting.")
	statusPtr  = flag.Bool("status", false, "Print the selected caster and its state.")
	loadArg    = flag.String("load", "", "Media URL to hand to the caster's player. (Dry run with the no-op caster)")
	subsArg    = flag.String("subs", "", "WebVTT subtitles URL to attach to -load.")
	debugPtr   = flag.Bool("debug", false, "Enable debug logging on stderr.")
	versionPtr = flag.Bool("version", false, "Print version.")
)

func main() {
	flag.Parse()
	checkVerflag()

	conf, err := loadConfig()
	check(err)

	changed, err := checkToggleFlags(conf)
	check(err)
	if changed {
		check(errors.Wrap(conf.SaveAppConfig(), "save settings"))
	}

	if *statusPtr || !changed {
		opts := conf.Options()
		opts.Logger = newLogger(os.Stderr, conf)
		c := caster.New(opts)
		printStatus(os.Stdout, conf, c)

		if *loadArg != "" {
			check(loadMedia(os.Stdout, c, *loadArg, *subsArg))
		}
	}
}

func check(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if *configArg != "" {
		conf, err := config.Load(*configArg)
		return conf, errors.Wrap(err, "loadConfig error")
	}

	conf, err := config.GetAppConfig()
	return conf, errors.Wrap(err, "loadConfig error")
}

func checkToggleFlags(conf *config.Config) (bool, error) {
	if *enablePtr && *disablePtr {
		return false, errors.New("-enable and -disable can't be used together")
	}

	switch {
	case *enablePtr:
		conf.Casting = true
		return true, nil
	case *disablePtr:
		conf.Casting = false
		return true, nil
	}

	return false, nil
}

func newLogger(w io.Writer, conf *config.Config) zerolog.Logger {
	level := conf.Level()
	if *debugPtr {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().Timestamp().Logger()
}

func printStatus(w io.Writer, conf *config.Config, c caster.Caster) {
	kind := "real"
	reason := ""
	if caster.IsNoOp(c) {
		kind = "no-op"
		reason = " (casting disabled)"
		if conf.Casting {
			reason = " (no caster implementation available)"
		}
	}

	status := c.Player().Status()
	_, _ = fmt.Fprintf(w, "Casting enabled: %t\n", conf.Casting)
	_, _ = fmt.Fprintf(w, "Caster:          %s%s\n", kind, reason)
	_, _ = fmt.Fprintf(w, "Connected:       %t\n", c.IsConnected())
	_, _ = fmt.Fprintf(w, "Player state:    %s\n", status.PlayerState)
}

func loadMedia(w io.Writer, c caster.Caster, mediaURL, subsURL string) error {
	raw := map[string]any{
		"url":      mediaURL,
		"title":    path.Base(mediaURL),
		"autoplay": true,
	}
	if subsURL != "" {
		raw["tracks"] = []caster.MediaTrack{caster.NewSubtitleTrack(1, subsURL, "Subtitles", "en")}
	}

	media, err := caster.DecodeMediaData(raw)
	if err != nil {
		return errors.Wrap(err, "loadMedia error")
	}

	if err := c.Player().LoadMedia(media); err != nil {
		return errors.Wrap(err, "loadMedia error")
	}

	_, _ = fmt.Fprintf(w, "Loaded:          %s (%s, %d track(s))\n", media.Title, media.StreamType, len(media.Tracks))
	return nil
}

func checkVerflag() {
	if *versionPtr {
		fmt.Printf("castctl Version: %s, ", version)
		fmt.Printf("Build: %s\n", build)
		os.Exit(0)
	}
}
