// Package main implements a 6502 CPU emulator for raw program images
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/m6502emu/internal/config"
	"github.com/retroenv/m6502emu/internal/cpu"
	"github.com/retroenv/m6502emu/internal/image"
	"github.com/retroenv/m6502emu/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts := readArguments()
	logger := config.CreateLogger(opts.Debug || opts.Trace, opts.Quiet)

	if !opts.Quiet {
		logger.Info("m6502emu - 6502 CPU emulator",
			log.String("version", buildinfo.Version(version, commit, date)))
	}

	if err := run(app.Context(), logger, opts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() options.Program {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.Program{}
	var vector string

	flags.UintVar(&opts.LoadAddress, "addr", 0x8000, "load address for images smaller than 64KB")
	flags.UintVar(&opts.Steps, "steps", 0, "number of instructions to execute, 0 runs until an illegal opcode")
	flags.StringVar(&vector, "vector", "", "override the reset vector stored in the image, e.g. 0x8000")
	flags.BoolVar(&opts.Trace, "trace", false, "print every executed instruction")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		fmt.Printf("usage: m6502emu [options] <program image>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	opts.Input = args[0]

	if opts.LoadAddress >= cpu.MemorySize {
		fmt.Printf("invalid load address 0x%X\n", opts.LoadAddress)
		os.Exit(1)
	}

	if vector != "" {
		value, err := strconv.ParseUint(vector, 0, 16)
		if err != nil {
			fmt.Printf("invalid reset vector '%s'\n", vector)
			os.Exit(1)
		}
		opts.ResetVector = uint(value)
		opts.HasVector = true
	}

	return opts
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	mem, err := image.LoadFile(opts.Input, uint16(opts.LoadAddress))
	if err != nil {
		return err
	}
	if opts.HasVector {
		image.SetResetVector(mem, uint16(opts.ResetVector))
	}

	var halted bool
	c := cpu.New(mem, cpu.Options{
		Logger: logger,
		Trace:  opts.Trace,
		OnEvent: func(event cpu.Event) {
			if event.Kind == cpu.EventIllegalOpcode {
				halted = true
			}
		},
	})

	var steps uint
	for !halted && (opts.Steps == 0 || steps < opts.Steps) {
		if err := ctx.Err(); err != nil {
			logger.Info("Operation cancelled")
			break
		}

		c.Step()
		steps++
	}

	logger.Info("Execution finished",
		log.Int("steps", int(steps)),
		log.Stringer("cpu", c))
	return nil
}
