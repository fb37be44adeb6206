// Package config loads the toy's ambient configuration: timing, logging, and
// the SSH server. Gameplay rules are compiled in on purpose; only the
// plumbing around the simulation is configurable.
package config

// Config is the root configuration document.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// DisplayConfig covers simulation timing and on-screen extras.
type DisplayConfig struct {
	// TickMillis is the fixed simulation period in milliseconds.
	TickMillis int `yaml:"tick_millis"`
	// Debug enables the tick/camera overlay line.
	Debug bool `yaml:"debug"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// SSHConfig configures the remote-play server.
type SSHConfig struct {
	// Address is the host:port to listen on.
	Address string `yaml:"address"`
	// HostKeyPath is the host key file; empty means auto-generate at
	// ~/.paddle/host_key.
	HostKeyPath string `yaml:"host_key"`
	// IdleMinutes closes idle sessions after this many minutes.
	IdleMinutes int `yaml:"idle_minutes"`
}
