package model

import (
	"fmt"
	"strings"
)

// Config is an On/Off switch as written on the command line or in yaml.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":   On,
	"1":    On,
	"true": On,
	"yes":  On,

	"off":   Off,
	"0":     Off,
	"false": Off,
	"no":    Off,
}

// NewConfig reads s leniently; anything unrecognised is Off.
func NewConfig(s string) Config {
	return configName[strings.ToLower(strings.TrimSpace(s))]
}

func ParseConfig(s string) (Config, error) {
	c, ok := configName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Off, fmt.Errorf("invalid switch %q, want on or off", s)
	}
	return c, nil
}

func (c Config) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// Set makes *Config usable with flag.Var.
func (c *Config) Set(s string) (err error) {
	*c, err = ParseConfig(s)
	return
}
