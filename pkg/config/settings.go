package config

import (
	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// DefaultFormats are the document formats written by the report command.
var DefaultFormats = []string{"csv", "html", "json", "markdown", "ddl"}

// Settings holds CLI options resolved from flags, environment and the config
// file.
type Settings struct {
	Dictionary    string
	Rows          string
	Table         string
	Output        string
	OutputDir     string
	Formats       []string
	FailOnError   bool
	FailOnWarning bool
	CheckDDL      bool
	Destinations  []string
	Verbose       bool
	Debug         bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", OutputText)
	v.SetDefault("output-dir", "./data_dictionary_reports")
	v.SetDefault("formats", DefaultFormats)
	v.SetDefault("check-ddl", true)
}

// FromViper reads Settings from v.
func FromViper(v *viper.Viper) *Settings {
	return &Settings{
		Dictionary:    v.GetString("dictionary"),
		Rows:          v.GetString("rows"),
		Table:         v.GetString("table"),
		Output:        v.GetString("output"),
		OutputDir:     v.GetString("output-dir"),
		Formats:       v.GetStringSlice("formats"),
		FailOnError:   v.GetBool("fail-on-error"),
		FailOnWarning: v.GetBool("fail-on-warning"),
		CheckDDL:      v.GetBool("check-ddl"),
		Destinations:  v.GetStringSlice("destinations"),
		Verbose:       v.GetBool("verbose"),
		Debug:         v.GetBool("debug"),
	}
}
