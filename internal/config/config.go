/*
 * config.go, part of ligan.
 *
 * Copyright 2024 The ligan Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package config loads the configuration of the ligan command line tool.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/goligan/ligan"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//envPrefix is the prefix of the environment variables, e.g. LIGAN_BONDS_TOLERANCE.
const envPrefix = "LIGAN"

//Config is the configuration of the tool.
type Config struct {
	Bonds    Bonds     `mapstructure:"bonds"`
	Log      Log       `mapstructure:"log"`
	Jobs     int       `mapstructure:"jobs"`
	Channels []Channel `mapstructure:"channels"`
	Plot     Plot      `mapstructure:"plot"`
}

//Bonds configures bond inference.
type Bonds struct {
	Tolerance float64 `mapstructure:"tolerance"` //Angstrom
}

//Log configures logging.
type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

//Channel is one channel of a custom vocabulary.
type Channel struct {
	Name    string  `mapstructure:"name"`
	Element string  `mapstructure:"element"`
	Radius  float64 `mapstructure:"radius"`
}

//Plot sets the size of the plots, in cm.
type Plot struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("bonds.tolerance", 0.4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("jobs", runtime.NumCPU())
	v.SetDefault("plot.width", 16.0)
	v.SetDefault("plot.height", 10.0)
	return v
}

//Load reads the YAML file at path, if path is not empty, merges the LIGAN_* environment
//variables and the defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: can't read config file %q: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: can't unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//Validate checks the values of the configuration.
func (c *Config) Validate() error {
	if c.Bonds.Tolerance < 0 {
		return fmt.Errorf("config: negative bond tolerance %g", c.Bonds.Tolerance)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("config: jobs must be at least 1, is %d", c.Jobs)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	seen := make(map[string]bool, len(c.Channels))
	for i, ch := range c.Channels {
		if ch.Name == "" {
			return fmt.Errorf("config: channel %d has no name", i)
		}
		if ch.Radius <= 0 {
			return fmt.Errorf("config: channel %s has non-positive radius %g", ch.Name, ch.Radius)
		}
		if seen[ch.Name] {
			return fmt.Errorf("config: channel %s appears twice", ch.Name)
		}
		seen[ch.Name] = true
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("config: plot size must be positive")
	}
	return nil
}

//Vocabulary returns the configured channels, or ligan.LigandChannels() if none is configured.
func (c *Config) Vocabulary() ligan.Channels {
	if len(c.Channels) == 0 {
		return ligan.LigandChannels()
	}
	ret := make(ligan.Channels, len(c.Channels))
	for i, ch := range c.Channels {
		ret[i] = ligan.Channel{Name: ch.Name, Element: ch.Element, AtomicRadius: ch.Radius}
	}
	return ret
}

//Logger builds a zap logger from the log configuration. Development loggers use the console
//encoder, the others JSON.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var zc zap.Config
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "ts"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: can't build logger: %w", err)
	}
	return l, nil
}
