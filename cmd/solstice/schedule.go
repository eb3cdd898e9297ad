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
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"code.solsticelabs.io/solstice/core/emission"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"

	"github.com/jessevdk/go-flags"
)

type ScheduleCmd struct {
	InitialRate string `long:"initial-rate" default:"34255400000000" description:"Emission rate at period zero, in base token units per second"`
	DecayBps    uint16 `long:"decay-bps" default:"9000" description:"Per period decay factor in basis points"`
	Start       string `long:"start" description:"Schedule start time, RFC 3339, defaults to now"`
	Periods     int64  `long:"periods" default:"12" description:"Number of periods to print"`
}

var scheduleCmd ScheduleCmd

func (opts *ScheduleCmd) Execute(_ []string) error {
	rate, overflow := num.UintFromString(opts.InitialRate)
	if overflow {
		return fmt.Errorf("invalid initial rate %q", opts.InitialRate)
	}
	if opts.Periods <= 0 {
		return errors.New("periods must be positive")
	}

	start := time.Now().UTC().Truncate(time.Second)
	if opts.Start != "" {
		var err error
		if start, err = time.Parse(time.RFC3339, opts.Start); err != nil {
			return fmt.Errorf("invalid start time %q: %w", opts.Start, err)
		}
	}

	sched, err := emission.NewSchedule(types.EmissionState{
		StartTime:      start,
		PeriodLength:   time.Duration(types.MonthSeconds) * time.Second,
		DecayFactorBps: opts.DecayBps,
		InitialRate:    rate,
	})
	if err != nil {
		return err
	}

	periodLength := time.Duration(types.MonthSeconds) * time.Second
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tSTARTS\tRATE/SEC\tEMITTED")
	total := num.DecimalZero()
	for k := int64(0); k < opts.Periods; k++ {
		from := start.Add(time.Duration(k) * periodLength)
		to := from.Add(periodLength)
		emitted := sched.EmittedBetween(from, to)
		total = total.Add(emitted)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			k,
			from.Format(time.RFC3339),
			sched.RateAt(from.Add(time.Second)).String(),
			emitted.Floor().String(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("total emitted over %d periods: %s\n", opts.Periods, total.Floor().String())
	return nil
}

func Schedule(_ context.Context, parser *flags.Parser) error {
	scheduleCmd = ScheduleCmd{}

	short := "Inspect an emission schedule"
	long := "Print the per period rate and emission total of a step decay emission schedule"

	_, err := parser.AddCommand("schedule", short, long, &scheduleCmd)
	return err
}
