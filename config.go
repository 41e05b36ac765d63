package main

import (
	"gopkg.in/ini.v1"
)

// Config is loaded from the config.ini file.
type Config struct {
	HTTPListen string
	RulesFile  string
}

func LoadConfig(sec *ini.Section) *Config {
	c := &Config{}
	c.HTTPListen = sec.Key("HTTPListen").String()
	c.RulesFile = sec.Key("RulesFile").String()

	if c.HTTPListen == "" {
		c.HTTPListen = "127.0.0.1:2205"
	}
	return c
}
