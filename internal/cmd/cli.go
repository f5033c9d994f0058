// Package cmd holds the kong command tree of the solitario binary.
package cmd

// CLI is the root of the command line. Flags may also come from JSON, YAML or
// TOML config files; flags win over file values.
type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a config file" env:"SOLITARIO_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Run    Run           `cmd:"" default:"withargs" help:"Run the game shell on this terminal"`
	Keys   Keys          `cmd:"" help:"Print the key translation table"`
	Replay Replay        `cmd:"" help:"Translate a scripted sequence of key events"`
	Config ConfigCommand `cmd:"" help:"Manage configuration files"`
}

// LogConfig selects where and how much the log router writes.
type LogConfig struct {
	Dir     string `help:"Directory for log files" default:"logs" env:"SOLITARIO_LOG_DIR"`
	Level   string `help:"Log level" enum:"trace,debug,info,warn,warning,error,critical" default:"info" env:"SOLITARIO_LOG_LEVEL"`
	Console bool   `help:"Also log to the console" env:"SOLITARIO_LOG_CONSOLE"`
	Raw     string `help:"Write a hex dump of raw terminal input to this file"`
}
