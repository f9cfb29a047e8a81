package config

import "sort"

// Presets are the built-in machines, keyed by name.
var Presets = map[string]*Config{
	"adder": {
		Name:     "adder",
		Program:  []string{"oR0,oR2", "xL3,xR2", "oR4,xL3", "oR0,oR0"},
		Tape:     "xxoxx",
		MaxSteps: DefaultMaxSteps,
	},
	"busy-beaver-2": {
		Name:     "busy-beaver-2",
		Program:  []string{"xR2,xL2", "xL1,xR0"},
		Tape:     "o",
		MaxSteps: DefaultMaxSteps,
	},
	"wipe-right": {
		Name:     "wipe-right",
		Program:  []string{"oR0,oR1"},
		Tape:     "xxxxx",
		MaxSteps: DefaultMaxSteps,
	},
	"spinner": {
		// Never halts: exercises the step bound.
		Name:     "spinner",
		Program:  []string{"xR1,xR1"},
		Tape:     "o",
		MaxSteps: 1000,
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
