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
	"os/signal"
	"syscall"
	"time"

	"code.solsticelabs.io/solstice/broker"
	"code.solsticelabs.io/solstice/config"
	"code.solsticelabs.io/solstice/core/claims"
	"code.solsticelabs.io/solstice/core/collateral"
	"code.solsticelabs.io/solstice/core/emission"
	"code.solsticelabs.io/solstice/core/rewards"
	"code.solsticelabs.io/solstice/core/staking"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"
	"code.solsticelabs.io/solstice/soltime"

	"github.com/jessevdk/go-flags"
)

type NodeCmd struct {
	config.RootPathFlag

	InitialRate string `long:"initial-rate" default:"34255400000000" description:"Emission rate at period zero, in base token units per second"`
	DecayBps    uint16 `long:"decay-bps" default:"9000" description:"Per period decay factor in basis points"`
	VaultBps    uint16 `long:"vault-bps" default:"5000" description:"Share of the emission allocated to vault depositors, in basis points"`
}

var nodeCmd NodeCmd

func (cmd *NodeCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	confWatcher, err := config.NewFromFile(ctx, log, cmd.RootPath)
	if err != nil {
		return err
	}
	cfg := confWatcher.Get()

	rate, overflow := num.UintFromString(cmd.InitialRate)
	if overflow {
		return fmt.Errorf("invalid initial rate %q", cmd.InitialRate)
	}

	now := time.Now().UTC()
	timeService := soltime.New(cfg.Time, now)
	eventBroker := broker.New(log, cfg.Broker)
	col := collateral.New(log, cfg.Collateral)

	em, err := emission.New(log, cfg.Emission, eventBroker, timeService,
		types.EmissionState{
			StartTime:      now,
			PeriodLength:   time.Duration(types.MonthSeconds) * time.Second,
			DecayFactorBps: cmd.DecayBps,
			InitialRate:    rate,
		},
		types.AllocationWeights{VaultBps: cmd.VaultBps, StakingBps: types.WeightFraction - cmd.VaultBps},
	)
	if err != nil {
		return err
	}

	rew := rewards.New(log, cfg.Rewards, eventBroker, timeService, em, col, collateral.EmissionPoolOwner)
	em.NotifyOnReconfigure(rew.FlushAll)

	stk := staking.New(log, cfg.Staking, eventBroker, timeService, col, rew,
		collateral.StakeCustodyOwner, collateral.EmissionPoolOwner)

	clm := claims.New(log, cfg.Claims, eventBroker, rew, stk, col,
		collateral.EmissionPoolOwner, collateral.StakeCustodyOwner)

	confWatcher.OnConfigUpdate(func(cfg config.Config) {
		timeService.ReloadConf(cfg.Time)
		col.ReloadConf(cfg.Collateral)
		em.ReloadConf(cfg.Emission)
		rew.ReloadConf(cfg.Rewards)
		stk.ReloadConf(cfg.Staking)
		clm.ReloadConf(cfg.Claims)
	})
	timeService.NotifyOnTick(confWatcher.OnTimeUpdate)

	log.Info("solstice node started",
		logging.String("config", config.ConfigFilePath(cmd.RootPath)),
		logging.String("initial-rate", rate.String()),
		logging.Uint16("decay-bps", cmd.DecayBps),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case t := <-ticker.C:
			timeService.SetTimeNow(ctx, t.UTC())
		case sig := <-stop:
			log.Info("shutting down", logging.String("signal", sig.String()))
			return nil
		}
	}
}

func Node(_ context.Context, parser *flags.Parser) error {
	nodeCmd = NodeCmd{
		RootPathFlag: config.NewRootPathFlag(),
	}

	short := "Runs a solstice node"
	long := "Runs a solstice node as defined by the configuration file"

	_, err := parser.AddCommand("node", short, long, &nodeCmd)
	return err
}
