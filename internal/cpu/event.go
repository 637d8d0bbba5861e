package cpu

import (
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/log"
)

// EventKind classifies diagnostic events raised during execution.
type EventKind uint8

const (
	// EventIllegalOpcode is raised when an opcode without a table handler
	// is fetched. The opcode byte is consumed and no cycles are charged.
	EventIllegalOpcode EventKind = iota

	// EventUnsupportedAddressing is raised when an instruction is
	// dispatched with an addressing mode that has no resolver. No operand
	// bytes are consumed, so following fetches will misinterpret the
	// unread operand bytes as opcodes.
	EventUnsupportedAddressing
)

func (k EventKind) String() string {
	switch k {
	case EventIllegalOpcode:
		return "illegal opcode"
	case EventUnsupportedAddressing:
		return "unsupported addressing mode"
	default:
		return "unknown"
	}
}

// Event is a diagnostic raised during Step. Events do not abort execution,
// they are reported to the configured handler and logged.
type Event struct {
	Kind       EventKind
	Opcode     byte
	Addressing m6502.AddressingMode
	PC         uint16 // program counter at fetch time
}

func (c *CPU) emit(event Event) {
	c.logger.Warn(event.Kind.String(),
		log.Hex("opcode", event.Opcode),
		log.Hex("pc", event.PC))

	if c.onEvent != nil {
		c.onEvent(event)
	}
}
