package cmd

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
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
	"unicode"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/apriori"
	"github.com/timtadh/apriori/config"
)

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	if urandom, err := os.Open("/dev/urandom"); err != nil {
		panic(err)
	} else {
		seed := make([]byte, 8)
		if _, err := urandom.Read(seed); err == nil {
			rand.Seed(int64(binary.BigEndian.Uint64(seed)))
		}
		urandom.Close()
	}
}

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"version":  2,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"baddir":   7,
	"mining":   8,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func AssertDir(dir string) string {
	dir = path.Clean(dir)
	fi, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			Usage(ErrorCodes["baddir"])
		}
		return dir
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["baddir"])
	}
	if !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was not a directory, %s\n", dir)
		Usage(ErrorCodes["baddir"])
	}
	return dir
}

func separator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Tokens splits a command line list of items. With runes every rune is an
// item ("ABC"), otherwise items are separated by commas or white space
// ("milk,bread").
func Tokens(arg string, runes bool) []string {
	if !runes {
		return strings.FieldsFunc(arg, separator)
	}
	toks := make([]string, 0, len(arg))
	for _, r := range arg {
		if separator(r) {
			continue
		}
		toks = append(toks, string(r))
	}
	return toks
}

// Transactions numbers the transaction arguments from 1. When items is empty
// the universe is every token seen, in code point order.
func Transactions(args []string, items string, runes bool) (universe []string, txs map[int][]string) {
	txs = make(map[int][]string, len(args))
	seen := set.NewSortedSet(len(args))
	for i, arg := range args {
		toks := Tokens(arg, runes)
		for _, tok := range toks {
			seen.Add(types.ByteSlice(tok))
		}
		txs[i+1] = toks
	}
	if items != "" {
		return Tokens(items, runes), txs
	}
	universe = make([]string, 0, seen.Size())
	for v, next := seen.Items()(); next != nil; v, next = next() {
		universe = append(universe, string(v.(types.ByteSlice)))
	}
	return universe, txs
}

// Main mines the transactions and writes the results to the log. It returns
// the process exit code.
func Main(conf *config.Config, universe []string, txs map[int][]string) int {
	errors.Logf("INFO", "mining %v transactions over %v items", len(txs), len(universe))
	r, err := apriori.New(conf).SolveTokens(universe, txs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ErrorCodes["mining"]
	}
	for _, e := range r.Frequent {
		errors.Logf("INFO", "frequent %v support %v", r.Dict.Key(e.Items), e.Support)
	}
	for _, e := range r.Frequent {
		key := r.Dict.Key(e.Items)
		if parents, has := r.ClosedItemSets[key]; has {
			errors.Logf("INFO", "closed %v parents %v", key, parents)
		}
	}
	for _, key := range r.MaximalItemSets {
		errors.Logf("INFO", "maximal %v", key)
	}
	for _, rule := range r.StrongRules {
		errors.Logf("INFO", "rule %v", rule)
	}
	errors.Logf("INFO", "Done!")
	return 0
}
