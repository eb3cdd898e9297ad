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
	"bytes"
	"os"
	"path/filepath"

	"code.solsticelabs.io/solstice/broker"
	"code.solsticelabs.io/solstice/core/claims"
	"code.solsticelabs.io/solstice/core/collateral"
	"code.solsticelabs.io/solstice/core/emission"
	"code.solsticelabs.io/solstice/core/rewards"
	"code.solsticelabs.io/solstice/core/staking"
	"code.solsticelabs.io/solstice/logging"
	"code.solsticelabs.io/solstice/soltime"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configFileName = "config.toml"

// Config ties together the configuration of every engine.
type Config struct {
	Logging    logging.Config    `group:"Logging" namespace:"logging"`
	Broker     broker.Config     `group:"Broker" namespace:"broker"`
	Time       soltime.Config    `group:"Time" namespace:"time"`
	Collateral collateral.Config `group:"Collateral" namespace:"collateral"`
	Emission   emission.Config   `group:"Emission" namespace:"emission"`
	Rewards    rewards.Config    `group:"Rewards" namespace:"rewards"`
	Staking    staking.Config    `group:"Staking" namespace:"staking"`
	Claims     claims.Config     `group:"Claims" namespace:"claims"`
}

// NewDefaultConfig returns the default configuration of every engine.
func NewDefaultConfig() Config {
	return Config{
		Logging:    logging.NewDefaultConfig(),
		Broker:     broker.NewDefaultConfig(),
		Time:       soltime.NewDefaultConfig(),
		Collateral: collateral.NewDefaultConfig(),
		Emission:   emission.NewDefaultConfig(),
		Rewards:    rewards.NewDefaultConfig(),
		Staking:    staking.NewDefaultConfig(),
		Claims:     claims.NewDefaultConfig(),
	}
}

// ConfigFilePath returns the path of the configuration file under rootPath.
func ConfigFilePath(rootPath string) string {
	return filepath.Join(rootPath, configFileName)
}

// Read loads the configuration file under rootPath on top of the defaults.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read configuration file")
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode configuration file")
	}
	return &cfg, nil
}

// Write saves the configuration under rootPath, creating the directory if
// needed. Returns the path of the written file.
func Write(rootPath string, cfg Config) (string, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return "", errors.Wrap(err, "unable to create configuration directory")
	}
	buf := bytes.Buffer{}
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", errors.Wrap(err, "unable to encode configuration")
	}
	path := filepath.Join(rootPath, configFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(err, "unable to write configuration file")
	}
	return path, nil
}
