package config

// Driver names accepted by console.driver.
const (
	DriverANSI   = "ansi"
	DriverMemory = "memory"
)

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".tmui"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "tmui.log"
	// DefaultDumpFileName is the suggested screen dump file name.
	DefaultDumpFileName = "screen.dump"

	// DefaultTitle is the header shown when none is configured.
	DefaultTitle = "tmui"
	// DefaultDriver is the console driver used when none is configured.
	DefaultDriver = DriverANSI
	// DefaultWidth is the memory driver width.
	DefaultWidth = 80
	// DefaultHeight is the memory driver height.
	DefaultHeight = 25

	// DefaultMirrorListen is the mirror listen address.
	DefaultMirrorListen = "127.0.0.1:12850"
	// DefaultMirrorQueueSize is the number of flushes a viewer may lag.
	DefaultMirrorQueueSize = 256
)
