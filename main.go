package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/cmd"
	"github.com/timtadh/apriori/config"
)

func init() {
	cmd.UsageMessage = "apriori --help"
	cmd.ExtendedMessage = `
apriori - frequent item sets, closed and maximal item sets, association rules

$ apriori --support=<float> --confidence=<float> [Options] <transaction>...

Each <transaction> is one argument. Items are separated by commas or white
space unless -r is given, in which case every character is an item.
Transactions are numbered from 1 in the order they are given.

Options
    -h, --help                view this message
    -s, --support=<float>     minimum support, in (0, 1] (required)
    -c, --confidence=<float>  minimum confidence, in (0, 1] (required)
    -i, --items=<items>       the item universe, in mining order
                              (default: every item seen, sorted)
    -r, --runes               every character of a transaction is an item
    -p, --parallelism=<int>   workers counting support. 0 is serial,
                              -1 uses every cpu (default 0)
    --cache=<path>            keep the transaction index in this directory
                              (optional, default: anonymous memory map)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Example
    $ apriori -r -s .5 -c .5 ABC AB AC A

    $ apriori --skip-log=DEBUG -s .3 -c .6 -i bread,milk,eggs \
        milk,bread bread,milk,jam eggs bread
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hs:c:i:rp:",
		[]string{
			"help",
			"support=", "confidence=",
			"items=", "runes",
			"parallelism=",
			"cache=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	support := -1.0
	confidence := -1.0
	items := ""
	runes := false
	parallelism := 0
	cache := ""
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-s", "--support":
			support = cmd.ParseFloat(oa.Arg())
		case "-c", "--confidence":
			confidence = cmd.ParseFloat(oa.Arg())
		case "-i", "--items":
			items = oa.Arg()
		case "-r", "--runes":
			runes = true
		case "-p", "--parallelism":
			parallelism = cmd.ParseInt(oa.Arg())
		case "--cache":
			cache = cmd.AssertDir(oa.Arg())
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 || support > 1 {
		fmt.Fprintf(os.Stderr, "You must supply a support in (0, 1] (-s)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if confidence <= 0 || confidence > 1 {
		fmt.Fprintf(os.Stderr, "You must supply a confidence in (0, 1] (-c)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "You must supply at least one transaction\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:         cache,
		MinSupport:    support,
		MinConfidence: confidence,
		Parallelism:   parallelism,
	}
	universe, txs := cmd.Transactions(args, items, runes)
	return cmd.Main(conf, universe, txs)
}
