// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run", "replay", "r", "build", "b", "dump", "d", "balances", "bal", "height", "h":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (?)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  replay FILE                (r)      - apply the blocks in a JSON file, stop at a rejected block\n")
		fmt.Printf("\n")

		fmt.Printf("  build FILE                 (b)      - build blocks from a JSON file, drop rejected transactions\n")
		fmt.Printf("\n")

		fmt.Printf("  dump                       (d)      - print committed lock records as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  balances                   (bal)    - print committed balances as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  height                     (h)      - print the committed height\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open and the caches restored so these commands can
// access and/or change the committed state
func processDataCommand(log *logger.L, arguments []string, s *state) bool {

	command := "start"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "replay", "r", "build", "b":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name argument")
		}
		filename := arguments[0]
		if "" == filename {
			exitwithstatus.Message("missing file name")
		}
		build := "build" == command || "b" == command
		results, err := replay(log, s, filename, build)
		printJson(results)
		if nil != err {
			log.Errorf("replay: %q  error: %s", filename, err)
			exitwithstatus.Message("replay: %q  error: %s", filename, err)
		}

	case "dump", "d":
		printJson(s.locks.CreateView().Records())

	case "balances", "bal":
		printJson(s.balances.CreateView().Entries())

	case "height", "h":
		fmt.Printf("%d\n", s.processor.Height())

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJson(message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: printjson marshall error: %s", err)
	}
	fmt.Fprintf(os.Stdout, "%s\n", b)
}
