// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/handio/dio"
	"github.com/ezrec/handio/hands"
	"github.com/ezrec/handio/script"
)

func main() {
	var file string
	var gesture string
	var skipInit bool
	var unsupported bool
	var verbose bool

	flag.StringVar(&file, "f", "", ".star choreography file to run")
	flag.StringVar(&gesture, "g", "", "single gesture to run, by script name")
	flag.BoolVar(&skipInit, "n", false, "Skip DIO initialization")
	flag.BoolVar(&unsupported, "u", false, "Simulate a target without a DIO backend")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	port := &dio.Port{Unsupported: unsupported}

	h, err := hands.NewHands05(port)
	if err != nil {
		log.Fatal(err)
	}
	h.Writer.Verbose = verbose

	if !skipInit {
		if !h.InitDIO() {
			log.Fatal("init_dio: write failed")
		}
	}

	run := &script.Runner{Hands: h}

	if len(gesture) != 0 {
		err = run.Run("gesture", gesture+"()\n")
		if err != nil {
			log.Fatalf("%v: %v", gesture, err)
		}
	}

	if len(file) != 0 {
		err = run.Run(file, nil)
		if err != nil {
			log.Fatalf("%v: %v", file, err)
		}
	}

	state := make([]dio.Level, dio.DIO_WIDTH)
	for n := range state {
		state[n] = port.Channel(n + 1)
	}
	fmt.Printf("pins: %v\n", state)
	fmt.Printf("chan: %v\n", dio.Legend())
}
