package config

// Data defaults
const (
	DefaultDataDirName = "must"
	DefaultDataFile    = "todo.txt"
	DefaultDataFormat  = FormatFlat
)

// Tasks defaults
const (
	DefaultIDPolicy   = "max"
	DefaultKeepSpaces = false
	DefaultList       = "inbox"
)

// Config file defaults
const (
	DefaultConfigName = "must"
	DefaultConfigFile = "must.yaml"
	EnvPrefix         = "MUST"
)

// Supported data file formats.
const (
	FormatFlat    = "flat"
	FormatGrouped = "grouped"
)
