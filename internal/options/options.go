// Package options contains the program options.
package options

// Program options of the emulator.
type Program struct {
	Input string

	LoadAddress uint // load address for images smaller than 64KB
	ResetVector uint
	HasVector   bool // ResetVector overrides the vector stored in the image
	Steps       uint // 0 runs until an illegal opcode is hit

	Debug bool
	Quiet bool
	Trace bool
}
