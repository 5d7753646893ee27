package tmui

import "pkt.systems/tmui/internal/config"

// Config mirrors the tmui configuration.
type Config = config.Config

// ConsoleConfig selects the driver and the console chrome.
type ConsoleConfig = config.ConsoleConfig

// ThemeConfig holds palette color names.
type ThemeConfig = config.ThemeConfig

// LogConfig configures the log file.
type LogConfig = config.LogConfig

// MirrorConfig configures the read-only websocket mirror.
type MirrorConfig = config.MirrorConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DriverANSI selects the terminal driver.
	DriverANSI = config.DriverANSI
	// DriverMemory selects the headless in-memory driver.
	DriverMemory = config.DriverMemory

	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName
	// DefaultDumpFileName is the suggested screen dump file name.
	DefaultDumpFileName = config.DefaultDumpFileName

	// DefaultTitle is the default header title.
	DefaultTitle = config.DefaultTitle
	// DefaultDriver is the default console driver.
	DefaultDriver = config.DefaultDriver
	// DefaultWidth is the default memory driver width.
	DefaultWidth = config.DefaultWidth
	// DefaultHeight is the default memory driver height.
	DefaultHeight = config.DefaultHeight
	// DefaultMirrorListen is the default mirror listen address.
	DefaultMirrorListen = config.DefaultMirrorListen
	// DefaultMirrorQueueSize is the default per-viewer queue length.
	DefaultMirrorQueueSize = config.DefaultMirrorQueueSize
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns default tmui configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}

// DefaultDumpPath returns the suggested screen dump path.
func DefaultDumpPath() string {
	return config.DefaultDumpPath()
}
