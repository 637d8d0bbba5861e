package cpu

import "github.com/retroenv/retrogolib/arch/cpu/m6502"

// Opcode describes a single entry of the instruction table.
type Opcode struct {
	Name       string
	Addressing m6502.AddressingMode
	Cycles     byte // base cost, page crossing penalties are added by the handler

	handler func(*CPU, Opcode) byte
}

// Legal reports whether the opcode is part of the implemented instruction set.
func (o Opcode) Legal() bool {
	return o.handler != nil
}

// opcodes maps every opcode byte to its instruction table entry. The table
// is built once and never mutated.
var opcodes = buildOpcodeTable()

// Opcodes returns a copy of the instruction table.
func Opcodes() [256]Opcode {
	return opcodes
}

// buildOpcodeTable returns the 256 entry instruction table. Entries not
// assigned below stay the illegal sentinel.
func buildOpcodeTable() [256]Opcode {
	var table [256]Opcode
	for i := range table {
		table[i] = Opcode{Name: "???", Addressing: m6502.ImpliedAddressing}
	}

	lda := (*CPU).lda
	ldx := (*CPU).ldx
	adc := (*CPU).adc

	table[0xA9] = Opcode{"LDA", m6502.ImmediateAddressing, 2, lda}
	table[0xA5] = Opcode{"LDA", m6502.ZeroPageAddressing, 3, lda}
	table[0xAD] = Opcode{"LDA", m6502.AbsoluteAddressing, 4, lda}
	table[0xB5] = Opcode{"LDA", m6502.ZeroPageXAddressing, 4, lda}
	table[0xBD] = Opcode{"LDA", m6502.AbsoluteXAddressing, 4, lda}
	table[0xB9] = Opcode{"LDA", m6502.AbsoluteYAddressing, 4, lda}
	table[0xA1] = Opcode{"LDA", m6502.IndirectXAddressing, 6, lda}
	table[0xB1] = Opcode{"LDA", m6502.IndirectYAddressing, 6, lda}

	table[0xA2] = Opcode{"LDX", m6502.ImmediateAddressing, 2, ldx}
	table[0xA6] = Opcode{"LDX", m6502.ZeroPageAddressing, 3, ldx}
	table[0xAE] = Opcode{"LDX", m6502.AbsoluteAddressing, 4, ldx}

	table[0x69] = Opcode{"ADC", m6502.ImmediateAddressing, 2, adc}
	table[0x65] = Opcode{"ADC", m6502.ZeroPageAddressing, 3, adc}
	table[0x6D] = Opcode{"ADC", m6502.AbsoluteAddressing, 4, adc}

	return table
}
