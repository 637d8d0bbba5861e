package cpu

// lda loads a byte from memory into the accumulator and updates the zero
// and negative flags.
func (c *CPU) lda(op Opcode) byte {
	value, cycles, ok := c.loadOperand(op)
	if !ok {
		return 0
	}

	c.A = value
	c.setZN(value)
	return cycles
}

// ldx loads a byte from memory into the X register and updates the zero
// and negative flags.
func (c *CPU) ldx(op Opcode) byte {
	value, cycles, ok := c.loadOperand(op)
	if !ok {
		return 0
	}

	c.X = value
	c.setZN(value)
	return cycles
}

// adc adds the operand and the carry flag to the accumulator. Zero and
// negative follow the result byte, carry is set on a carry out of bit 7
// and overflow is set if both operands share a sign that the result does
// not have.
func (c *CPU) adc(op Opcode) byte {
	value, cycles, ok := c.loadOperand(op)
	if !ok {
		return 0
	}

	var carryIn uint16
	if c.Flags&FlagC != 0 {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	result := byte(sum)

	c.setZN(result)
	c.setFlag(FlagV, ^(c.A^value)&(c.A^result)&0x80 != 0)
	c.setFlag(FlagC, sum > 0xFF)

	c.A = result
	return cycles
}

// loadOperand resolves the operand address for the instruction and reads
// the operand byte. The returned cycle cost is the table base cost plus
// the page crossing penalty. ok is false if the addressing mode has no
// resolver; a diagnostic event is emitted in that case, no state is
// changed and no operand bytes are consumed.
func (c *CPU) loadOperand(op Opcode) (value, cycles byte, ok bool) {
	fetchPC := c.PC - 1
	addr, pageCrossed, ok := c.resolveOperand(op.Addressing)
	if !ok {
		c.emit(Event{
			Kind:       EventUnsupportedAddressing,
			Opcode:     c.Read(fetchPC),
			Addressing: op.Addressing,
			PC:         fetchPC,
		})
		return 0, 0, false
	}

	cycles = op.Cycles
	if pageCrossed {
		cycles++
	}
	return c.Read(addr), cycles, true
}

// setZN updates the zero and negative flags for a result byte.
func (c *CPU) setZN(value byte) {
	c.setFlag(FlagZ, value == 0)
	c.setFlag(FlagN, value&0x80 != 0)
}

func (c *CPU) setFlag(flag byte, set bool) {
	if set {
		c.Flags |= flag
	} else {
		c.Flags &^= flag
	}
}
