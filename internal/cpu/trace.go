package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/log"
)

// traceStep logs the instruction that was executed at pc together with the
// resulting register state.
func (c *CPU) traceStep(pc uint16, op Opcode) {
	c.logger.Debug("step",
		log.String("pc", fmt.Sprintf("%04X", pc)),
		log.String("instruction", c.formatInstruction(pc, op)),
		log.Stringer("cpu", c))
}

// formatInstruction renders the instruction at pc in assembler notation,
// reading the operand bytes directly from memory.
func (c *CPU) formatInstruction(pc uint16, op Opcode) string {
	switch op.Addressing {
	case m6502.ImmediateAddressing:
		return fmt.Sprintf("%s #$%02X", op.Name, c.Read(pc+1))
	case m6502.ZeroPageAddressing:
		return fmt.Sprintf("%s $%02X", op.Name, c.Read(pc+1))
	case m6502.ZeroPageXAddressing:
		return fmt.Sprintf("%s $%02X,X", op.Name, c.Read(pc+1))
	case m6502.ZeroPageYAddressing:
		return fmt.Sprintf("%s $%02X,Y", op.Name, c.Read(pc+1))
	case m6502.AbsoluteAddressing:
		return fmt.Sprintf("%s $%04X", op.Name, c.readWord(pc+1))
	case m6502.AbsoluteXAddressing:
		return fmt.Sprintf("%s $%04X,X", op.Name, c.readWord(pc+1))
	case m6502.AbsoluteYAddressing:
		return fmt.Sprintf("%s $%04X,Y", op.Name, c.readWord(pc+1))
	case m6502.IndirectAddressing:
		return fmt.Sprintf("%s ($%04X)", op.Name, c.readWord(pc+1))
	case m6502.IndirectXAddressing:
		return fmt.Sprintf("%s ($%02X,X)", op.Name, c.Read(pc+1))
	case m6502.IndirectYAddressing:
		return fmt.Sprintf("%s ($%02X),Y", op.Name, c.Read(pc+1))
	default:
		return op.Name
	}
}
