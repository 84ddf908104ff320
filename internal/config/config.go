/*
 * config.go, part of gomultipole
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package config reads the run configuration of the mpframe command.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

//Example is a commented configuration file with the default values.
const Example = `# mpframe configuration

[Kernel]
# Goroutines used by the kernels. 0 means one per logical CPU.
Workers = 0
# The number of sites is rounded up to a multiple of Padding in the
# fixed-point force and torque buffers.
Padding = 32

[Log]
# debug, info, warn or error
Level = info
# console or json
Format = console

[Metrics]
# Address to serve prometheus metrics on. Unset disables it.
# Addr = :9100

[Output]
# Compression for output files that don't name one in their suffix:
# none, zstd or gzip
Compression = none
`

//Kernel contains the kernel settings.
type Kernel struct {
	Workers int
	Padding int
}

//Log contains the logging settings.
type Log struct {
	Level  string
	Format string
}

//Metrics contains the metrics endpoint settings.
type Metrics struct {
	Addr string
}

//Output contains the output file settings.
type Output struct {
	Compression string
}

//Config is the whole configuration file.
type Config struct {
	Kernel  Kernel
	Log     Log
	Metrics Metrics
	Output  Output
}

//Default returns the default configuration.
func Default() *Config {
	return &Config{
		Kernel: Kernel{Workers: 0, Padding: 32},
		Log:    Log{Level: "info", Format: "console"},
		Output: Output{Compression: "none"},
	}
}

//Read reads the configuration file fname. Values not present in the
//file keep their defaults. The result is validated.
func Read(fname string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadFileInto(c, fname); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", fname, err)
	}
	return c, c.Validate()
}

//ReadString is like Read, but takes the contents of the file.
func ReadString(s string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(c, s); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

func oneOf(val string, allowed ...string) bool {
	for _, v := range allowed {
		if strings.EqualFold(val, v) {
			return true
		}
	}
	return false
}

//Validate checks that all values are within their allowed ranges.
func (c *Config) Validate() error {
	if c.Kernel.Workers < 0 {
		return fmt.Errorf("config: Workers must not be negative, got %d", c.Kernel.Workers)
	}
	if c.Kernel.Padding < 1 {
		return fmt.Errorf("config: Padding must be positive, got %d", c.Kernel.Padding)
	}
	if !oneOf(c.Log.Level, "debug", "info", "warn", "error") {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if !oneOf(c.Log.Format, "console", "json") {
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	if !oneOf(c.Output.Compression, "none", "zstd", "gzip") {
		return fmt.Errorf("config: unknown compression %q", c.Output.Compression)
	}
	return nil
}
