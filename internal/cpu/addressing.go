package cpu

import "github.com/retroenv/retrogolib/arch/cpu/m6502"

// resolveOperand computes the effective operand address for the given
// addressing mode, consuming the operand bytes following the opcode and
// advancing PC accordingly. pageCrossed reports whether indexing moved the
// address into another 256 byte page, which costs an extra cycle. ok is
// false for modes that have no resolver in this core; no bytes are
// consumed in that case.
func (c *CPU) resolveOperand(mode m6502.AddressingMode) (addr uint16, pageCrossed, ok bool) {
	switch mode {
	case m6502.ImmediateAddressing:
		// the operand byte itself lives at PC, its address is the result
		addr = c.PC
		c.PC++
		return addr, false, true

	case m6502.ZeroPageAddressing:
		return uint16(c.fetch()), false, true

	case m6502.ZeroPageXAddressing:
		return uint16(c.fetch() + c.X), false, true

	case m6502.AbsoluteAddressing:
		return c.fetchWord(), false, true

	case m6502.AbsoluteXAddressing:
		base := c.fetchWord()
		addr = base + uint16(c.X)
		return addr, pageCross(base, addr), true

	case m6502.AbsoluteYAddressing:
		base := c.fetchWord()
		addr = base + uint16(c.Y)
		return addr, pageCross(base, addr), true

	case m6502.IndirectXAddressing:
		ptr := c.fetch() + c.X
		return c.readWordZeroPage(ptr), false, true

	case m6502.IndirectYAddressing:
		base := c.readWordZeroPage(c.fetch())
		addr = base + uint16(c.Y)
		return addr, pageCross(base, addr), true

	default:
		return 0, false, false
	}
}

// fetch reads the next operand byte and advances PC.
func (c *CPU) fetch() byte {
	b := c.Read(c.PC)
	c.PC++
	return b
}

// fetchWord reads the next two operand bytes as a little-endian word.
func (c *CPU) fetchWord() uint16 {
	low := uint16(c.fetch())
	high := uint16(c.fetch())
	return high<<8 | low
}

// readWordZeroPage reads a little-endian word from the zero page, the high
// byte fetch wraps around inside the page.
func (c *CPU) readWordZeroPage(ptr byte) uint16 {
	low := uint16(c.Read(uint16(ptr)))
	high := uint16(c.Read(uint16(ptr + 1)))
	return high<<8 | low
}

// pageCross reports whether two addresses lie in different 256 byte pages.
func pageCross(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
