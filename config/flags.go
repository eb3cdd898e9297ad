// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"os"
	"path/filepath"
)

// Empty is the top level options for the command line parser, subcommands
// carry their own flags.
type Empty struct{}

// RootPathFlag is embedded by subcommands that operate on the node home
// directory.
type RootPathFlag struct {
	RootPath string `description:"Path of the root directory in which the configuration is located" long:"root-path" short:"r"`
}

// NewRootPathFlag returns the flag initialised with the default home.
func NewRootPathFlag() RootPathFlag {
	return RootPathFlag{
		RootPath: DefaultRootPath(),
	}
}

// DefaultRootPath returns the default directory for the configuration file.
func DefaultRootPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".solstice"
	}
	return filepath.Join(home, ".solstice")
}
