// Package cmd holds the kong command grammar for tt21100ctl.
package cmd

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log struct {
		Level   string `help:"Log level (trace|debug|info|warn|error)" default:"info" env:"TT21100_LOG_LEVEL"`
		File    string `help:"Write logs to this file instead of the console" env:"TT21100_LOG_FILE"`
		RawFile string `help:"Mirror raw bus frames to this file as hex lines" env:"TT21100_LOG_RAW_FILE"`
	} `embed:"" prefix:"log."`
	Config string `help:"Path to a configuration file" env:"TT21100_CONFIG"`

	Watch     Watch         `cmd:"" help:"Replay a frame capture through a full driver session"`
	Decode    Decode        `cmd:"" help:"Decode a single hex-encoded frame"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
