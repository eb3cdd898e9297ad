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

package main

import (
	"context"
	"fmt"
	"os"

	"code.solsticelabs.io/solstice/config"
	"code.solsticelabs.io/solstice/logging"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	config.RootPathFlag

	Force bool `short:"f" long:"force" description:"Overwrite an existing configuration at the specified path"`
}

var initCmd InitCmd

func (opts *InitCmd) Execute(_ []string) error {
	logger := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer logger.AtExit()

	cfgPath := config.ConfigFilePath(opts.RootPath)
	if _, err := os.Stat(cfgPath); err == nil && !opts.Force {
		return fmt.Errorf("configuration already exists at `%s` please remove it first or re-run using -f", cfgPath)
	}

	path, err := config.Write(opts.RootPath, config.NewDefaultConfig())
	if err != nil {
		return fmt.Errorf("couldn't save configuration file: %w", err)
	}

	logger.Info("configuration generated successfully", logging.String("path", path))
	return nil
}

func Init(_ context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{
		RootPathFlag: config.NewRootPathFlag(),
	}

	short := "Initializes a solstice node"
	long := "Generate the minimal configuration required for a solstice node to start"

	_, err := parser.AddCommand("init", short, long, &initCmd)
	return err
}
