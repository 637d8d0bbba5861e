// Package cpu implements a 6502 instruction execution core that operates
// on a flat 64KB memory image.
package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/log"
)

// MemorySize is the size of the flat address space.
const MemorySize = 0x10000

// Memory is the flat 64KB address space the CPU operates on. It is owned
// by the caller and borrowed by the CPU; it has to outlive the CPU and
// must not be accessed concurrently with Step.
type Memory [MemorySize]byte

// Status flag bits of the processor status register.
const (
	FlagC byte = 1 << 0 // carry
	FlagZ byte = 1 << 1 // zero
	FlagI byte = 1 << 2 // interrupt disable
	FlagD byte = 1 << 3 // decimal, not used by any handler
	FlagB byte = 1 << 4 // break, not used by any handler
	FlagV byte = 1 << 6 // overflow
	FlagN byte = 1 << 7 // negative
)

// initialStackPointer is the conventional stack pointer value after reset.
// The stack itself is not emulated, the register only holds this value.
const initialStackPointer = 0xFD

// Options configures a CPU instance.
type Options struct {
	Logger *log.Logger // defaults to a logger with default configuration

	// OnEvent receives every diagnostic event raised during Step.
	OnEvent func(Event)

	// Trace logs every executed instruction at debug level.
	Trace bool
}

// CPU is the register file and execution state of a 6502 core.
type CPU struct {
	A, X, Y byte   // accumulator and index registers
	PC      uint16 // program counter
	SP      byte   // stack pointer register, no stack operations are implemented
	Flags   byte   // processor status register
	Cycles  uint32 // cycles consumed since New or Reset

	mem     *Memory
	logger  *log.Logger
	onEvent func(Event)
	trace   bool
}

// New returns a CPU executing from the given memory image. The image must
// already contain the program and its reset vector. Registers are cleared,
// the interrupt disable flag is set and PC is loaded from the reset vector.
func New(mem *Memory, opts Options) *CPU {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}

	c := &CPU{
		mem:     mem,
		logger:  logger,
		onEvent: opts.OnEvent,
		trace:   opts.Trace,
	}
	c.Reset()
	return c
}

// Reset restores the power-on register state and reloads PC from the reset
// vector at 0xFFFC/0xFFFD. The memory image is left untouched.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = initialStackPointer
	c.Flags = FlagI
	c.PC = c.readWord(m6502.ResetAddress)
	c.Cycles = 0
}

// Step fetches, decodes and executes a single instruction and accumulates
// its cycle cost. An illegal opcode consumes only the opcode byte, costs
// no cycles and is reported as a diagnostic event.
func (c *CPU) Step() {
	fetchPC := c.PC
	opcode := c.Read(fetchPC)
	c.PC++

	op := opcodes[opcode]
	if !op.Legal() {
		c.emit(Event{
			Kind:       EventIllegalOpcode,
			Opcode:     opcode,
			Addressing: op.Addressing,
			PC:         fetchPC,
		})
		return
	}

	cycles := op.handler(c, op)
	c.Cycles += uint32(cycles)

	if c.trace {
		c.traceStep(fetchPC, op)
	}
}

// Read returns the byte at addr.
func (c *CPU) Read(addr uint16) byte {
	return c.mem[addr]
}

// Write stores val at addr.
func (c *CPU) Write(addr uint16, val byte) {
	c.mem[addr] = val
}

// readWord reads a little-endian word at addr.
func (c *CPU) readWord(addr uint16) uint16 {
	low := uint16(c.Read(addr))
	high := uint16(c.Read(addr + 1))
	return high<<8 | low
}

// String returns a register dump of the current state.
func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X CYC:%d",
		c.A, c.X, c.Y, c.Flags, c.SP, c.PC, c.Cycles)
}
