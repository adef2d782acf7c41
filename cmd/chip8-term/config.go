package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	ROM            string // Path to the program image to load.
	CyclesPerFrame int    // Number of instruction cycles executed per video frame.
	FPS            int    // Target number of video frames per second.
	PrintTrace     bool   // Print instruction trace data?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.CyclesPerFrame = 10
	c.FPS = 60
	c.PrintTrace = false

	flag.Usage = func() {
		fmt.Printf("%s [options] <program image>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.CyclesPerFrame, "cycles", c.CyclesPerFrame, "Instruction cycles to execute per video frame.")
	flag.IntVar(&c.FPS, "fps", c.FPS, "Target video frames per second.")
	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.ROM = flag.Arg(0)
	return &c
}
