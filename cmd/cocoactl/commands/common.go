package commands

import (
	"cocoa/internal/backends"
	"cocoa/internal/exposure"
	"cocoa/internal/ports"
	"cocoa/internal/state"
	"cocoa/internal/types"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	log "github.com/sirupsen/logrus"
)

// CLI definition & global flags.
type CLI struct {
	Settings string           `short:"c" help:"Settings file path" default:"cocoa.yaml" env:"COCOA_SETTINGS"`
	Verbose  bool             `short:"v" help:"Enable verbose logging"`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit"`

	Migrate     MigrateCmd     `cmd:"" help:"Migrate a legacy snapshot into the stores and clear it"`
	Get         GetCmd         `cmd:"" help:"Print a regional field"`
	Set         SetCmd         `cmd:"" help:"Write a regional field"`
	AppendBg    AppendBgCmd    `cmd:"" name:"append-bg" help:"Record a background processing time in the rolling history"`
	Reset       ResetCmd       `cmd:"" help:"Forget exposure detection bookkeeping"`
	Exposures   ExposuresCmd   `cmd:"" help:"List exposure events inside the display window"`
	FetchConfig FetchConfigCmd `cmd:"" name:"fetch-config" help:"Download the exposure configuration"`
	Dump        DumpCmd        `cmd:"" help:"Print the debug report"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	if c.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// Global carries the opened stores to every command. The secure store is opened on first use,
// so commands that only touch preferences work without SECURE_KEY.
type Global struct {
	Settings types.Settings
	Prefs    ports.KeyValueStore
	State    *state.Store
	Out      io.Writer

	openSecure func() (ports.SecureStore, error)
	secure     ports.SecureStore
	records    *exposure.RecordStore
}

func NewGlobal(settings types.Settings, prefs ports.KeyValueStore, openSecure func() (ports.SecureStore, error), out io.Writer) *Global {
	return &Global{
		Settings:   settings,
		Prefs:      prefs,
		State:      state.NewStore(prefs),
		Out:        out,
		openSecure: openSecure,
	}
}

// OpenGlobal loads the settings file and opens the preference store selected by the environment.
func OpenGlobal(settingsPath string) (*Global, error) {
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	prefs, err := backends.PreferencesBackendFromEnv()
	if err != nil {
		return nil, err
	}
	return NewGlobal(settings, prefs, backends.SecureBackendFromEnv, os.Stdout), nil
}

// Records opens the secure store if needed and returns the exposure record store over it.
func (g *Global) Records() (*exposure.RecordStore, error) {
	if g.records != nil {
		return g.records, nil
	}
	if g.openSecure == nil {
		return nil, types.Err(types.ErrInvalidBackend, nil, "no secure store configured")
	}
	secure, err := g.openSecure()
	if err != nil {
		return nil, err
	}
	g.secure = secure
	g.records = exposure.NewRecordStore(secure)
	return g.records, nil
}

func (g *Global) Close() {
	closeStore(g.Prefs)
	if g.secure != nil {
		closeStore(g.secure)
	}
}

func closeStore(s any) {
	if c, ok := s.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("closing store failed")
		}
	}
}

// LoadSettings reads a YAML settings file on top of the defaults. A missing file yields the
// defaults.
func LoadSettings(path string) (types.Settings, error) {
	settings := types.DefaultSettings()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.WithField("path", path).Info("settings file not found, using defaults")
		return settings, nil
	case err != nil:
		return settings, types.Err(types.ErrInvalidSettings, err, "read %s", path)
	}
	if err := yaml.Unmarshal(b, &settings); err != nil {
		return settings, types.Err(types.ErrInvalidSettings, err, "parse %s", path)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func (g *Global) printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out, string(b))
	return err
}
