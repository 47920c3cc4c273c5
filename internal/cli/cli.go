package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config. Flags given on the
// command line override values from --config.
func ParseArgs(args []string) (*Config, error) {
	flags := &Config{}
	var typesRaw, ignoreFieldsRaw string

	fs := pflag.NewFlagSet("gen-cfgdoc", pflag.ContinueOnError)
	fs.StringVarP(&typesRaw, "type", "t", "", "comma-separated type names (default: types marked //cfgdoc:generate)")
	fs.StringVarP(&flags.Output, "output", "o", "", "output file name (default: <package>_cfgdoc.go in the package directory)")
	fs.StringVar(&flags.Method, "method", DefaultMethod, "name of the generated method")
	fs.BoolVar(&flags.Pointer, "pointer-receiver", false, "generate methods with pointer receivers")
	fs.BoolVar(&flags.Values, "values", false, "render field values")
	fs.StringVar(&ignoreFieldsRaw, "ignore-fields", "", "comma-separated field names to ignore")
	fs.BoolVar(&flags.Preview, "preview", false, "print the rendered reference instead of writing code")
	fs.BoolVar(&flags.Debug, "debug", false, "dump the selected declarations")
	fs.StringVarP(&flags.ConfigFile, "config", "c", "", "YAML config file")
	fs.BoolVarP(&flags.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.ShowVersion {
		return flags, nil
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one package pattern, got %d", fs.NArg())
	}
	flags.Pattern = fs.Arg(0)
	flags.Types = splitCommaList(typesRaw)
	flags.IgnoreFields = splitCommaList(ignoreFieldsRaw)

	cfg := flags
	if flags.ConfigFile != "" {
		fileCfg, err := LoadFile(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = merge(fileCfg, flags, fs)
	}

	if cfg.Pattern == "" {
		cfg.Pattern = "."
	}
	if cfg.Method == "" {
		cfg.Method = DefaultMethod
	}
	return cfg, nil
}

// merge overlays the options set on the command line onto the file config.
func merge(file, flags *Config, fs *pflag.FlagSet) *Config {
	out := *file
	out.Preview = flags.Preview
	out.Debug = flags.Debug
	out.ConfigFile = flags.ConfigFile

	if flags.Pattern != "" {
		out.Pattern = flags.Pattern
	}
	if fs.Changed("type") {
		out.Types = flags.Types
	}
	if fs.Changed("output") {
		out.Output = flags.Output
	}
	if fs.Changed("method") {
		out.Method = flags.Method
	}
	if fs.Changed("pointer-receiver") {
		out.Pointer = flags.Pointer
	}
	if fs.Changed("values") {
		out.Values = flags.Values
	}
	if fs.Changed("ignore-fields") {
		out.IgnoreFields = flags.IgnoreFields
	}
	return &out
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
