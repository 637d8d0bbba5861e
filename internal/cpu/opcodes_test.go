package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/assert"
)

func TestOpcodeTable(t *testing.T) {
	assigned := map[byte]struct {
		name       string
		addressing m6502.AddressingMode
		cycles     byte
	}{
		0xA9: {"LDA", m6502.ImmediateAddressing, 2},
		0xA5: {"LDA", m6502.ZeroPageAddressing, 3},
		0xAD: {"LDA", m6502.AbsoluteAddressing, 4},
		0xB5: {"LDA", m6502.ZeroPageXAddressing, 4},
		0xBD: {"LDA", m6502.AbsoluteXAddressing, 4},
		0xB9: {"LDA", m6502.AbsoluteYAddressing, 4},
		0xA1: {"LDA", m6502.IndirectXAddressing, 6},
		0xB1: {"LDA", m6502.IndirectYAddressing, 6},
		0xA2: {"LDX", m6502.ImmediateAddressing, 2},
		0xA6: {"LDX", m6502.ZeroPageAddressing, 3},
		0xAE: {"LDX", m6502.AbsoluteAddressing, 4},
		0x69: {"ADC", m6502.ImmediateAddressing, 2},
		0x65: {"ADC", m6502.ZeroPageAddressing, 3},
		0x6D: {"ADC", m6502.AbsoluteAddressing, 4},
	}

	legal := 0
	for i := 0; i < 256; i++ {
		op := opcodes[i]
		want, ok := assigned[byte(i)]
		if !ok {
			assert.False(t, op.Legal(), "opcode 0x%02X should be illegal", i)
			assert.Equal(t, "???", op.Name)
			assert.Equal(t, m6502.ImpliedAddressing, op.Addressing)
			assert.Equal(t, byte(0), op.Cycles)
			continue
		}

		legal++
		assert.True(t, op.Legal(), "opcode 0x%02X should be legal", i)
		assert.Equal(t, want.name, op.Name)
		assert.Equal(t, want.addressing, op.Addressing)
		assert.Equal(t, want.cycles, op.Cycles)
	}

	assert.Equal(t, len(assigned), legal)
}

func TestOpcodeTableBuildIsDeterministic(t *testing.T) {
	t1 := buildOpcodeTable()
	t2 := buildOpcodeTable()

	for i := 0; i < 256; i++ {
		assert.Equal(t, t1[i].Name, t2[i].Name)
		assert.Equal(t, t1[i].Addressing, t2[i].Addressing)
		assert.Equal(t, t1[i].Cycles, t2[i].Cycles)
		assert.Equal(t, t1[i].Legal(), t2[i].Legal())
	}
}

func TestOpcodesReturnsCopy(t *testing.T) {
	table := Opcodes()
	table[0xA9] = Opcode{}

	assert.Equal(t, "LDA", opcodes[0xA9].Name)
	assert.True(t, opcodes[0xA9].Legal())
}
