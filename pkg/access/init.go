// Package access is a screen-reader layer for the game client: it keeps a
// spoken, keyboard-navigable model of the UI alongside the visual one. The
// pieces are a focus manager routing input to a stack of surfaces, linear
// menus, a scanner that discovers interactive controls in the live UI tree,
// and a section navigator over the game state.
//
// The layer runs inside the host process and never trusts it: every call
// into host-owned objects is wrapped so a dying object logs instead of
// crashing the game.
package access

import (
	"errors"
	"os"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/focus"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/internal"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

// Options configures New. Only Speaker is required; everything else has a
// sensible default or comes from the config file.
type Options struct {
	// Speaker receives every announcement, normally a text-to-speech
	// bridge. Required.
	Speaker speech.Speaker

	// ConfigPath points at a TOML config file. Empty skips loading and
	// runs on defaults.
	ConfigPath string

	// LogPath overrides the config's log file location.
	LogPath string

	// LogLevel overrides the config's log level.
	LogLevel string
}

// Layer is the assembled accessibility layer. The host's input hook feeds
// decoded keys to HandleInput; everything else hangs off the focus manager.
type Layer struct {
	Focus  *focus.Manager
	Speech *speech.Repeater
	Config Config
}

// New assembles a layer from opts. A broken config file is logged and
// replaced with defaults rather than refusing to start: the player losing
// speech over a typo is worse than losing their key remaps.
func New(opts Options) (*Layer, error) {
	if opts.Speaker == nil {
		return nil, errors.New("access: a speaker is required")
	}

	cfg := DefaultConfig()
	var cfgErr error
	if opts.ConfigPath != "" {
		cfg, cfgErr = LoadConfig(opts.ConfigPath)
	}

	logPath := cfg.Log.Path
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}
	if logPath != "" {
		internal.SetLogPath(logPath)
	}

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	internal.SetRawLogLevel(level)
	if os.Getenv(constants.VerboseEnvVar) != "" {
		internal.SetRawLogLevel("debug")
	}

	if cfgErr != nil {
		internal.GetLogger().Warn("config load failed, using defaults", "error", cfgErr)
	}

	sp := opts.Speaker
	if !cfg.Speech.Enabled {
		sp = speech.Null{}
	}
	rep := speech.NewRepeater(sp)

	return &Layer{
		Focus:  focus.NewManager(rep),
		Speech: rep,
		Config: cfg,
	}, nil
}

// HandleInput routes one decoded key through the layer. The repeat key is
// global and replays the last announcement; everything else goes to whatever
// holds focus.
func (l *Layer) HandleInput(k constants.Key) bool {
	if k == constants.KeyRepeat {
		l.Speech.Repeat()
		return true
	}
	return l.Focus.HandleInput(k)
}

// Close flushes and closes the log sink. Call it from the host's shutdown
// hook.
func (l *Layer) Close() {
	internal.CloseLogger()
}
