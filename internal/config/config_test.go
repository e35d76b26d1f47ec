/*
 * config_test.go, part of ligan.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goligan/ligan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.4, cfg.Bonds.Tolerance)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.GreaterOrEqual(t, cfg.Jobs, 1)
	assert.Equal(t, ligan.LigandChannels(), cfg.Vocabulary())
	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ligan.yaml")
	yaml := `bonds:
  tolerance: 0.2
log:
  level: debug
  development: true
jobs: 3
channels:
  - name: C
    element: C
    radius: 0.77
  - name: O
    element: O
    radius: 0.73
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Bonds.Tolerance)
	assert.Equal(t, 3, cfg.Jobs)
	voc := cfg.Vocabulary()
	require.Equal(t, 2, voc.Len())
	assert.Equal(t, ligan.Channel{Name: "O", Element: "O", AtomicRadius: 0.73}, voc[1])
	_, err = cfg.Logger()
	require.NoError(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LIGAN_BONDS_TOLERANCE", "0.7")
	t.Setenv("LIGAN_JOBS", "2")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.Bonds.Tolerance)
	assert.Equal(t, 2, cfg.Jobs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Bonds: Bonds{Tolerance: 0.4}, Log: Log{Level: "info"}, Jobs: 1, Plot: Plot{Width: 1, Height: 1}}
	}
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"tolerance", func(c *Config) { c.Bonds.Tolerance = -1 }},
		{"jobs", func(c *Config) { c.Jobs = 0 }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"no name", func(c *Config) { c.Channels = []Channel{{Radius: 1}} }},
		{"radius", func(c *Config) { c.Channels = []Channel{{Name: "C"}} }},
		{"duplicate", func(c *Config) { c.Channels = []Channel{{Name: "C", Radius: 1}, {Name: "C", Radius: 1}} }},
		{"plot", func(c *Config) { c.Plot.Width = 0 }},
	}
	require.NoError(t, valid().Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mod(c)
			assert.Error(t, c.Validate())
		})
	}
}
