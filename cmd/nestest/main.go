// Command nestest runs the nestest ROM headless from $C000 and prints
// the canonical per-instruction log for diffing against the reference.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meadori/dotnes/bus"
)

func main() {
	romPath := flag.String("rom", "nestest.nes", "Path to nestest.nes")
	maxInstructions := flag.Int("n", 9000, "Maximum instructions to execute")
	flag.Parse()

	data, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	b, err := bus.NewFromROM(data)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}
	c := b.CPU()

	// Burn the reset sequence, then enter the automated test at $C000.
	for !c.Idle() {
		b.Clock()
	}
	c.PC = 0xC000

	for i := 0; i < *maxInstructions; i++ {
		printState(b)
		b.StepInstruction()

		// The automated run parks in a spin loop when finished.
		if c.PC == 0xC66E {
			break
		}
	}

	fmt.Printf("result codes: $02=%02X $03=%02X\n", b.Read(0x0002), b.Read(0x0003))
}

func printState(b *bus.Bus) {
	c := b.CPU()
	pc := c.PC
	opcode := b.Read(pc)
	instr := c.Opcode(opcode)
	mode := c.ModeName(opcode)

	op1 := b.Read(pc + 1)
	op2 := b.Read(pc + 2)

	var rawBytes string
	var operand string
	switch mode {
	case "imp", "acc":
		rawBytes = fmt.Sprintf("%02X", opcode)
		operand = ""
	case "imm":
		rawBytes = fmt.Sprintf("%02X %02X", opcode, op1)
		operand = fmt.Sprintf("#$%02X", op1)
	case "zp0":
		rawBytes = fmt.Sprintf("%02X %02X", opcode, op1)
		operand = fmt.Sprintf("$%02X", op1)
	case "zpx":
		rawBytes = fmt.Sprintf("%02X %02X", opcode, op1)
		operand = fmt.Sprintf("$%02X,X", op1)
	case "zpy":
		rawBytes = fmt.Sprintf("%02X %02X", opcode, op1)
		operand = fmt.Sprintf("$%02X,Y", op1)
	case "rel":
		target := pc + 2 + uint16(int8(op1))
		rawBytes = fmt.Sprintf("%02X %02X", opcode, op1)
		operand = fmt.Sprintf("$%04X", target)
	case "izx":
		rawBytes = fmt.Sprintf("%02X %02X", opcode, op1)
		operand = fmt.Sprintf("($%02X,X)", op1)
	case "izy":
		rawBytes = fmt.Sprintf("%02X %02X", opcode, op1)
		operand = fmt.Sprintf("($%02X),Y", op1)
	case "ind":
		rawBytes = fmt.Sprintf("%02X %02X %02X", opcode, op1, op2)
		operand = fmt.Sprintf("($%04X)", uint16(op2)<<8|uint16(op1))
	case "abx":
		rawBytes = fmt.Sprintf("%02X %02X %02X", opcode, op1, op2)
		operand = fmt.Sprintf("$%04X,X", uint16(op2)<<8|uint16(op1))
	case "aby":
		rawBytes = fmt.Sprintf("%02X %02X %02X", opcode, op1, op2)
		operand = fmt.Sprintf("$%04X,Y", uint16(op2)<<8|uint16(op1))
	default: // abs
		rawBytes = fmt.Sprintf("%02X %02X %02X", opcode, op1, op2)
		operand = fmt.Sprintf("$%04X", uint16(op2)<<8|uint16(op1))
	}

	disasm := instr.Name
	if operand != "" {
		disasm += " " + operand
	}

	fmt.Printf("%04X  %-8s  %-14s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n",
		pc, rawBytes, disasm,
		c.A, c.X, c.Y, c.P, c.SP,
		b.PPU.Scanline, b.PPU.Dot, c.TotalCycles)
}
