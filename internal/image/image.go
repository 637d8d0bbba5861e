// Package image loads raw program images into a flat 64KB memory buffer.
package image

import (
	"fmt"
	"os"

	"github.com/retroenv/m6502emu/internal/cpu"
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

// Load places a raw program image into a new memory buffer. An image of
// the full 64KB is used as is, a smaller image is copied to the load
// address. The image must fit into the address space.
func Load(data []byte, loadAddress uint16) (*cpu.Memory, error) {
	mem := &cpu.Memory{}

	switch {
	case len(data) > cpu.MemorySize:
		return nil, fmt.Errorf("image of %d bytes exceeds the %d byte address space",
			len(data), cpu.MemorySize)

	case len(data) == cpu.MemorySize:
		copy(mem[:], data)

	case int(loadAddress)+len(data) > cpu.MemorySize:
		return nil, fmt.Errorf("image of %d bytes does not fit at load address 0x%04X",
			len(data), loadAddress)

	default:
		copy(mem[loadAddress:], data)
	}

	return mem, nil
}

// LoadFile reads a raw program image from a file.
func LoadFile(path string, loadAddress uint16) (*cpu.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file '%s': %w", path, err)
	}

	mem, err := Load(data, loadAddress)
	if err != nil {
		return nil, fmt.Errorf("loading image '%s': %w", path, err)
	}
	return mem, nil
}

// SetResetVector writes addr to the reset vector in little-endian order.
func SetResetVector(mem *cpu.Memory, addr uint16) {
	mem[m6502.ResetAddress] = byte(addr)
	mem[m6502.ResetAddress+1] = byte(addr >> 8)
}
