package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"pkt.systems/tmui/internal/terminal"
	"pkt.systems/tmui/internal/ui"
)

// Config is the root configuration for tmui.
type Config struct {
	Console ConsoleConfig `mapstructure:"console" yaml:"console"`
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Mirror  MirrorConfig  `mapstructure:"mirror" yaml:"mirror"`
}

// ConsoleConfig selects the driver and the console chrome.
type ConsoleConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Driver string `mapstructure:"driver" yaml:"driver"`
	// Width and Height size the memory driver; the ANSI driver asks the
	// terminal.
	Width    int    `mapstructure:"width" yaml:"width"`
	Height   int    `mapstructure:"height" yaml:"height"`
	DumpFile string `mapstructure:"dump_file" yaml:"dump_file"`
}

// ThemeConfig holds palette color names, see terminal.ParseColor.
type ThemeConfig struct {
	HeaderBG        string `mapstructure:"header_bg" yaml:"header_bg"`
	HeaderFG        string `mapstructure:"header_fg" yaml:"header_fg"`
	Background      string `mapstructure:"background" yaml:"background"`
	FooterBG        string `mapstructure:"footer_bg" yaml:"footer_bg"`
	FooterFG        string `mapstructure:"footer_fg" yaml:"footer_fg"`
	ObjectBG        string `mapstructure:"object_bg" yaml:"object_bg"`
	ObjectFG        string `mapstructure:"object_fg" yaml:"object_fg"`
	TitleFG         string `mapstructure:"title_fg" yaml:"title_fg"`
	ProgressChar    string `mapstructure:"progress_char" yaml:"progress_char"`
	ProgressBlankBG string `mapstructure:"progress_blank_bg" yaml:"progress_blank_bg"`
	ProgressBlankFG string `mapstructure:"progress_blank_fg" yaml:"progress_blank_fg"`
	ProgressFillBG  string `mapstructure:"progress_fill_bg" yaml:"progress_fill_bg"`
	ProgressFillFG  string `mapstructure:"progress_fill_fg" yaml:"progress_fill_fg"`
}

// LogConfig configures the log file. The terminal belongs to the UI, so
// logs never go to stdout or stderr while a console is open.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// MirrorConfig configures the read-only websocket mirror.
type MirrorConfig struct {
	Listen    string `mapstructure:"listen" yaml:"listen"`
	BasePath  string `mapstructure:"base" yaml:"base"`
	QR        bool   `mapstructure:"qr" yaml:"qr"`
	QueueSize int    `mapstructure:"queue_size" yaml:"queue_size"`

	// TLSBundle lists PEM files with the certificate chain and key. The
	// mirror serves wss when set.
	TLSBundle []string `mapstructure:"tls_bundle" yaml:"tls_bundle,omitempty"`
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	switch c.Console.Driver {
	case DriverANSI:
	case DriverMemory:
		if c.Console.Width <= 0 || c.Console.Height <= 0 {
			return fmt.Errorf("console: memory driver needs a positive width and height, got %dx%d", c.Console.Width, c.Console.Height)
		}
	default:
		return fmt.Errorf("console: unknown driver %q (want %s or %s)", c.Console.Driver, DriverANSI, DriverMemory)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve converts the color names into a ui.Theme. Empty fields keep the
// default theme value.
func (t ThemeConfig) Resolve() (ui.Theme, error) {
	theme := ui.DefaultTheme()
	colors := []struct {
		key   string
		value string
		dst   *terminal.Color
	}{
		{"header_bg", t.HeaderBG, &theme.HeaderBG},
		{"header_fg", t.HeaderFG, &theme.HeaderFG},
		{"background", t.Background, &theme.Background},
		{"footer_bg", t.FooterBG, &theme.FooterBG},
		{"footer_fg", t.FooterFG, &theme.FooterFG},
		{"object_bg", t.ObjectBG, &theme.ObjectBG},
		{"object_fg", t.ObjectFG, &theme.ObjectFG},
		{"title_fg", t.TitleFG, &theme.TitleFG},
		{"progress_blank_bg", t.ProgressBlankBG, &theme.ProgressBlankBG},
		{"progress_blank_fg", t.ProgressBlankFG, &theme.ProgressBlankFG},
		{"progress_fill_bg", t.ProgressFillBG, &theme.ProgressFillBG},
		{"progress_fill_fg", t.ProgressFillFG, &theme.ProgressFillFG},
	}
	for _, c := range colors {
		if strings.TrimSpace(c.value) == "" {
			continue
		}
		color, err := terminal.ParseColor(c.value)
		if err != nil {
			return ui.Theme{}, fmt.Errorf("theme.%s: %w", c.key, err)
		}
		*c.dst = color
	}
	if t.ProgressChar != "" {
		if len(t.ProgressChar) != 1 || !terminal.IsPrintable(t.ProgressChar[0]) {
			return ui.Theme{}, fmt.Errorf("theme.progress_char: want one printable ASCII character, got %q", t.ProgressChar)
		}
		theme.ProgressChar = t.ProgressChar[0]
	}
	return theme, nil
}

// Loader wraps Viper configuration loading for tmui.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with the standard search path and every
// default registered, so environment variables such as TMUI_CONSOLE_DRIVER
// override keys that appear in no config file.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("TMUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tmui")
	v.AddConfigPath("$HOME/.tmui")

	SetDefaults(v)
	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ConfigFileUsed returns the file the last Load read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// ReadInConfig reads configuration from file if available. A missing file
// in the search path is not an error; a missing explicit file is.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration, unmarshals and validates it.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Console.Driver = strings.ToLower(strings.TrimSpace(cfg.Console.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
