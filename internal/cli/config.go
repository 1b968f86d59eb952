package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the TOML form of the generation flags. Every field is
// optional; unset fields leave the flag default alone.
//
//	step = 3
//	alpha = 10
//	mode = "outline"
//	seed = 42
//	format = "json"
//	size = 120.0
//	font = "fonts/Inter-Black.ttf"
type fileConfig struct {
	Step       *int     `toml:"step"`
	Alpha      *int     `toml:"alpha"`
	Mode       *string  `toml:"mode"`
	Seed       *uint32  `toml:"seed"`
	Iterations *int     `toml:"iterations"`
	Format     *string  `toml:"format"`
	Output     *string  `toml:"output"`
	Size       *float64 `toml:"size"`
	Padding    *int     `toml:"padding"`
	Font       *string  `toml:"font"`
	MaxSize    *int     `toml:"max-size"`
	Jobs       *int     `toml:"jobs"`
}

// loadConfig decodes the TOML file at path. Unknown keys are an error so
// that typos do not pass silently.
func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// applyGen copies config values into o for every flag not set explicitly on
// the command line. It reports whether the config supplied a seed.
func (c *fileConfig) applyGen(changed func(string) bool, o *genOpts) (seedSet bool) {
	setInt(changed, "step", c.Step, &o.step)
	setInt(changed, "alpha", c.Alpha, &o.alpha)
	setString(changed, "mode", c.Mode, &o.mode)
	setInt(changed, "iterations", c.Iterations, &o.iterations)
	setString(changed, "format", c.Format, &o.format)
	setString(changed, "output", c.Output, &o.output)
	if c.Seed != nil && !changed("seed") {
		o.seed = *c.Seed
		return true
	}
	return false
}

func setInt(changed func(string) bool, name string, v *int, dst *int) {
	if v != nil && !changed(name) {
		*dst = *v
	}
}

func setString(changed func(string) bool, name string, v *string, dst *string) {
	if v != nil && !changed(name) {
		*dst = *v
	}
}

func setFloat(changed func(string) bool, name string, v *float64, dst *float64) {
	if v != nil && !changed(name) {
		*dst = *v
	}
}
