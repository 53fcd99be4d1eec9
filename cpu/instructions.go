package cpu

// Addressing modes.
const (
	modeAbsolute byte = iota + 1
	modeAbsoluteX
	modeAbsoluteY
	modeAccumulator
	modeImmediate
	modeImplied
	modeIndexedIndirect
	modeIndirect
	modeIndirectIndexed
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
)

// modeSize returns the instruction length in bytes for a mode.
func modeSize(mode byte) byte {
	switch mode {
	case modeAccumulator, modeImplied:
		return 1
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 3
	default:
		return 2
	}
}

// modeNames is indexed by mode for disassembly output.
var modeNames = [...]string{"", "abs", "abx", "aby", "acc", "imm", "imp", "izx", "ind", "izy", "rel", "zp0", "zpx", "zpy"}

// ModeName returns the short addressing-mode mnemonic for an opcode.
func (c *CPU) ModeName(opcode byte) string {
	return modeNames[c.lookup[opcode].Mode]
}

// Instruction describes one opcode: mnemonic, addressing mode, base
// cycle count, the page-cross adder, and whether the indexed address
// computation always performs the partially-added read (stores and
// read-modify-write operations do, loads only on a page cross).
type Instruction struct {
	Name       string
	Mode       byte
	Cycles     byte
	PageCycles byte
	DummyRead  bool
	fn         func(addr, pc uint16)
}

// Opcode returns the table entry for an opcode byte.
func (c *CPU) Opcode(op byte) Instruction {
	return c.lookup[op]
}

// dummyReadOps are the mnemonics whose indexed forms always read from
// the partially-indexed address before the real access.
var dummyReadOps = map[string]bool{
	"STA": true, "STX": true, "STY": true, "SAX": true,
	"SHX": true, "SHY": true, "AHX": true, "TAS": true,
	"ASL": true, "LSR": true, "ROL": true, "ROR": true,
	"INC": true, "DEC": true,
	"SLO": true, "RLA": true, "SRE": true, "RRA": true,
	"DCP": true, "ISB": true,
}

func (c *CPU) createLookupTable() [256]Instruction {
	e := func(name string, fn func(addr, pc uint16), mode, cycles, pageCycles byte) Instruction {
		return Instruction{
			Name:       name,
			Mode:       mode,
			Cycles:     cycles,
			PageCycles: pageCycles,
			DummyRead:  dummyReadOps[name],
			fn:         fn,
		}
	}

	return [256]Instruction{
		0x00: e("BRK", c.brk, modeImplied, 7, 0),
		0x01: e("ORA", c.ora, modeIndexedIndirect, 6, 0),
		0x02: e("KIL", c.kil, modeImplied, 2, 0),
		0x03: e("SLO", c.slo, modeIndexedIndirect, 8, 0),
		0x04: e("NOP", c.nop, modeZeroPage, 3, 0),
		0x05: e("ORA", c.ora, modeZeroPage, 3, 0),
		0x06: e("ASL", c.asl, modeZeroPage, 5, 0),
		0x07: e("SLO", c.slo, modeZeroPage, 5, 0),
		0x08: e("PHP", c.php, modeImplied, 3, 0),
		0x09: e("ORA", c.ora, modeImmediate, 2, 0),
		0x0A: e("ASL", c.asl, modeAccumulator, 2, 0),
		0x0B: e("ANC", c.anc, modeImmediate, 2, 0),
		0x0C: e("NOP", c.nop, modeAbsolute, 4, 0),
		0x0D: e("ORA", c.ora, modeAbsolute, 4, 0),
		0x0E: e("ASL", c.asl, modeAbsolute, 6, 0),
		0x0F: e("SLO", c.slo, modeAbsolute, 6, 0),

		0x10: e("BPL", c.bpl, modeRelative, 2, 1),
		0x11: e("ORA", c.ora, modeIndirectIndexed, 5, 1),
		0x12: e("KIL", c.kil, modeImplied, 2, 0),
		0x13: e("SLO", c.slo, modeIndirectIndexed, 8, 0),
		0x14: e("NOP", c.nop, modeZeroPageX, 4, 0),
		0x15: e("ORA", c.ora, modeZeroPageX, 4, 0),
		0x16: e("ASL", c.asl, modeZeroPageX, 6, 0),
		0x17: e("SLO", c.slo, modeZeroPageX, 6, 0),
		0x18: e("CLC", c.clc, modeImplied, 2, 0),
		0x19: e("ORA", c.ora, modeAbsoluteY, 4, 1),
		0x1A: e("NOP", c.nop, modeImplied, 2, 0),
		0x1B: e("SLO", c.slo, modeAbsoluteY, 7, 0),
		0x1C: e("NOP", c.nop, modeAbsoluteX, 4, 1),
		0x1D: e("ORA", c.ora, modeAbsoluteX, 4, 1),
		0x1E: e("ASL", c.asl, modeAbsoluteX, 7, 0),
		0x1F: e("SLO", c.slo, modeAbsoluteX, 7, 0),

		0x20: e("JSR", c.jsr, modeAbsolute, 6, 0),
		0x21: e("AND", c.and, modeIndexedIndirect, 6, 0),
		0x22: e("KIL", c.kil, modeImplied, 2, 0),
		0x23: e("RLA", c.rla, modeIndexedIndirect, 8, 0),
		0x24: e("BIT", c.bit, modeZeroPage, 3, 0),
		0x25: e("AND", c.and, modeZeroPage, 3, 0),
		0x26: e("ROL", c.rol, modeZeroPage, 5, 0),
		0x27: e("RLA", c.rla, modeZeroPage, 5, 0),
		0x28: e("PLP", c.plp, modeImplied, 4, 0),
		0x29: e("AND", c.and, modeImmediate, 2, 0),
		0x2A: e("ROL", c.rol, modeAccumulator, 2, 0),
		0x2B: e("ANC", c.anc, modeImmediate, 2, 0),
		0x2C: e("BIT", c.bit, modeAbsolute, 4, 0),
		0x2D: e("AND", c.and, modeAbsolute, 4, 0),
		0x2E: e("ROL", c.rol, modeAbsolute, 6, 0),
		0x2F: e("RLA", c.rla, modeAbsolute, 6, 0),

		0x30: e("BMI", c.bmi, modeRelative, 2, 1),
		0x31: e("AND", c.and, modeIndirectIndexed, 5, 1),
		0x32: e("KIL", c.kil, modeImplied, 2, 0),
		0x33: e("RLA", c.rla, modeIndirectIndexed, 8, 0),
		0x34: e("NOP", c.nop, modeZeroPageX, 4, 0),
		0x35: e("AND", c.and, modeZeroPageX, 4, 0),
		0x36: e("ROL", c.rol, modeZeroPageX, 6, 0),
		0x37: e("RLA", c.rla, modeZeroPageX, 6, 0),
		0x38: e("SEC", c.sec, modeImplied, 2, 0),
		0x39: e("AND", c.and, modeAbsoluteY, 4, 1),
		0x3A: e("NOP", c.nop, modeImplied, 2, 0),
		0x3B: e("RLA", c.rla, modeAbsoluteY, 7, 0),
		0x3C: e("NOP", c.nop, modeAbsoluteX, 4, 1),
		0x3D: e("AND", c.and, modeAbsoluteX, 4, 1),
		0x3E: e("ROL", c.rol, modeAbsoluteX, 7, 0),
		0x3F: e("RLA", c.rla, modeAbsoluteX, 7, 0),

		0x40: e("RTI", c.rti, modeImplied, 6, 0),
		0x41: e("EOR", c.eor, modeIndexedIndirect, 6, 0),
		0x42: e("KIL", c.kil, modeImplied, 2, 0),
		0x43: e("SRE", c.sre, modeIndexedIndirect, 8, 0),
		0x44: e("NOP", c.nop, modeZeroPage, 3, 0),
		0x45: e("EOR", c.eor, modeZeroPage, 3, 0),
		0x46: e("LSR", c.lsr, modeZeroPage, 5, 0),
		0x47: e("SRE", c.sre, modeZeroPage, 5, 0),
		0x48: e("PHA", c.pha, modeImplied, 3, 0),
		0x49: e("EOR", c.eor, modeImmediate, 2, 0),
		0x4A: e("LSR", c.lsr, modeAccumulator, 2, 0),
		0x4B: e("ALR", c.alr, modeImmediate, 2, 0),
		0x4C: e("JMP", c.jmp, modeAbsolute, 3, 0),
		0x4D: e("EOR", c.eor, modeAbsolute, 4, 0),
		0x4E: e("LSR", c.lsr, modeAbsolute, 6, 0),
		0x4F: e("SRE", c.sre, modeAbsolute, 6, 0),

		0x50: e("BVC", c.bvc, modeRelative, 2, 1),
		0x51: e("EOR", c.eor, modeIndirectIndexed, 5, 1),
		0x52: e("KIL", c.kil, modeImplied, 2, 0),
		0x53: e("SRE", c.sre, modeIndirectIndexed, 8, 0),
		0x54: e("NOP", c.nop, modeZeroPageX, 4, 0),
		0x55: e("EOR", c.eor, modeZeroPageX, 4, 0),
		0x56: e("LSR", c.lsr, modeZeroPageX, 6, 0),
		0x57: e("SRE", c.sre, modeZeroPageX, 6, 0),
		0x58: e("CLI", c.cli, modeImplied, 2, 0),
		0x59: e("EOR", c.eor, modeAbsoluteY, 4, 1),
		0x5A: e("NOP", c.nop, modeImplied, 2, 0),
		0x5B: e("SRE", c.sre, modeAbsoluteY, 7, 0),
		0x5C: e("NOP", c.nop, modeAbsoluteX, 4, 1),
		0x5D: e("EOR", c.eor, modeAbsoluteX, 4, 1),
		0x5E: e("LSR", c.lsr, modeAbsoluteX, 7, 0),
		0x5F: e("SRE", c.sre, modeAbsoluteX, 7, 0),

		0x60: e("RTS", c.rts, modeImplied, 6, 0),
		0x61: e("ADC", c.adc, modeIndexedIndirect, 6, 0),
		0x62: e("KIL", c.kil, modeImplied, 2, 0),
		0x63: e("RRA", c.rra, modeIndexedIndirect, 8, 0),
		0x64: e("NOP", c.nop, modeZeroPage, 3, 0),
		0x65: e("ADC", c.adc, modeZeroPage, 3, 0),
		0x66: e("ROR", c.ror, modeZeroPage, 5, 0),
		0x67: e("RRA", c.rra, modeZeroPage, 5, 0),
		0x68: e("PLA", c.pla, modeImplied, 4, 0),
		0x69: e("ADC", c.adc, modeImmediate, 2, 0),
		0x6A: e("ROR", c.ror, modeAccumulator, 2, 0),
		0x6B: e("ARR", c.arr, modeImmediate, 2, 0),
		0x6C: e("JMP", c.jmp, modeIndirect, 5, 0),
		0x6D: e("ADC", c.adc, modeAbsolute, 4, 0),
		0x6E: e("ROR", c.ror, modeAbsolute, 6, 0),
		0x6F: e("RRA", c.rra, modeAbsolute, 6, 0),

		0x70: e("BVS", c.bvs, modeRelative, 2, 1),
		0x71: e("ADC", c.adc, modeIndirectIndexed, 5, 1),
		0x72: e("KIL", c.kil, modeImplied, 2, 0),
		0x73: e("RRA", c.rra, modeIndirectIndexed, 8, 0),
		0x74: e("NOP", c.nop, modeZeroPageX, 4, 0),
		0x75: e("ADC", c.adc, modeZeroPageX, 4, 0),
		0x76: e("ROR", c.ror, modeZeroPageX, 6, 0),
		0x77: e("RRA", c.rra, modeZeroPageX, 6, 0),
		0x78: e("SEI", c.sei, modeImplied, 2, 0),
		0x79: e("ADC", c.adc, modeAbsoluteY, 4, 1),
		0x7A: e("NOP", c.nop, modeImplied, 2, 0),
		0x7B: e("RRA", c.rra, modeAbsoluteY, 7, 0),
		0x7C: e("NOP", c.nop, modeAbsoluteX, 4, 1),
		0x7D: e("ADC", c.adc, modeAbsoluteX, 4, 1),
		0x7E: e("ROR", c.ror, modeAbsoluteX, 7, 0),
		0x7F: e("RRA", c.rra, modeAbsoluteX, 7, 0),

		0x80: e("NOP", c.nop, modeImmediate, 2, 0),
		0x81: e("STA", c.sta, modeIndexedIndirect, 6, 0),
		0x82: e("NOP", c.nop, modeImmediate, 2, 0),
		0x83: e("SAX", c.sax, modeIndexedIndirect, 6, 0),
		0x84: e("STY", c.sty, modeZeroPage, 3, 0),
		0x85: e("STA", c.sta, modeZeroPage, 3, 0),
		0x86: e("STX", c.stx, modeZeroPage, 3, 0),
		0x87: e("SAX", c.sax, modeZeroPage, 3, 0),
		0x88: e("DEY", c.dey, modeImplied, 2, 0),
		0x89: e("NOP", c.nop, modeImmediate, 2, 0),
		0x8A: e("TXA", c.txa, modeImplied, 2, 0),
		0x8B: e("XAA", c.xaa, modeImmediate, 2, 0),
		0x8C: e("STY", c.sty, modeAbsolute, 4, 0),
		0x8D: e("STA", c.sta, modeAbsolute, 4, 0),
		0x8E: e("STX", c.stx, modeAbsolute, 4, 0),
		0x8F: e("SAX", c.sax, modeAbsolute, 4, 0),

		0x90: e("BCC", c.bcc, modeRelative, 2, 1),
		0x91: e("STA", c.sta, modeIndirectIndexed, 6, 0),
		0x92: e("KIL", c.kil, modeImplied, 2, 0),
		0x93: e("AHX", c.ahx, modeIndirectIndexed, 6, 0),
		0x94: e("STY", c.sty, modeZeroPageX, 4, 0),
		0x95: e("STA", c.sta, modeZeroPageX, 4, 0),
		0x96: e("STX", c.stx, modeZeroPageY, 4, 0),
		0x97: e("SAX", c.sax, modeZeroPageY, 4, 0),
		0x98: e("TYA", c.tya, modeImplied, 2, 0),
		0x99: e("STA", c.sta, modeAbsoluteY, 5, 0),
		0x9A: e("TXS", c.txs, modeImplied, 2, 0),
		0x9B: e("TAS", c.tas, modeAbsoluteY, 5, 0),
		0x9C: e("SHY", c.shy, modeAbsoluteX, 5, 0),
		0x9D: e("STA", c.sta, modeAbsoluteX, 5, 0),
		0x9E: e("SHX", c.shx, modeAbsoluteY, 5, 0),
		0x9F: e("AHX", c.ahx, modeAbsoluteY, 5, 0),

		0xA0: e("LDY", c.ldy, modeImmediate, 2, 0),
		0xA1: e("LDA", c.lda, modeIndexedIndirect, 6, 0),
		0xA2: e("LDX", c.ldx, modeImmediate, 2, 0),
		0xA3: e("LAX", c.lax, modeIndexedIndirect, 6, 0),
		0xA4: e("LDY", c.ldy, modeZeroPage, 3, 0),
		0xA5: e("LDA", c.lda, modeZeroPage, 3, 0),
		0xA6: e("LDX", c.ldx, modeZeroPage, 3, 0),
		0xA7: e("LAX", c.lax, modeZeroPage, 3, 0),
		0xA8: e("TAY", c.tay, modeImplied, 2, 0),
		0xA9: e("LDA", c.lda, modeImmediate, 2, 0),
		0xAA: e("TAX", c.tax, modeImplied, 2, 0),
		0xAB: e("LAX", c.lax, modeImmediate, 2, 0),
		0xAC: e("LDY", c.ldy, modeAbsolute, 4, 0),
		0xAD: e("LDA", c.lda, modeAbsolute, 4, 0),
		0xAE: e("LDX", c.ldx, modeAbsolute, 4, 0),
		0xAF: e("LAX", c.lax, modeAbsolute, 4, 0),

		0xB0: e("BCS", c.bcs, modeRelative, 2, 1),
		0xB1: e("LDA", c.lda, modeIndirectIndexed, 5, 1),
		0xB2: e("KIL", c.kil, modeImplied, 2, 0),
		0xB3: e("LAX", c.lax, modeIndirectIndexed, 5, 1),
		0xB4: e("LDY", c.ldy, modeZeroPageX, 4, 0),
		0xB5: e("LDA", c.lda, modeZeroPageX, 4, 0),
		0xB6: e("LDX", c.ldx, modeZeroPageY, 4, 0),
		0xB7: e("LAX", c.lax, modeZeroPageY, 4, 0),
		0xB8: e("CLV", c.clv, modeImplied, 2, 0),
		0xB9: e("LDA", c.lda, modeAbsoluteY, 4, 1),
		0xBA: e("TSX", c.tsx, modeImplied, 2, 0),
		0xBB: e("LAS", c.las, modeAbsoluteY, 4, 1),
		0xBC: e("LDY", c.ldy, modeAbsoluteX, 4, 1),
		0xBD: e("LDA", c.lda, modeAbsoluteX, 4, 1),
		0xBE: e("LDX", c.ldx, modeAbsoluteY, 4, 1),
		0xBF: e("LAX", c.lax, modeAbsoluteY, 4, 1),

		0xC0: e("CPY", c.cpy, modeImmediate, 2, 0),
		0xC1: e("CMP", c.cmp, modeIndexedIndirect, 6, 0),
		0xC2: e("NOP", c.nop, modeImmediate, 2, 0),
		0xC3: e("DCP", c.dcp, modeIndexedIndirect, 8, 0),
		0xC4: e("CPY", c.cpy, modeZeroPage, 3, 0),
		0xC5: e("CMP", c.cmp, modeZeroPage, 3, 0),
		0xC6: e("DEC", c.dec, modeZeroPage, 5, 0),
		0xC7: e("DCP", c.dcp, modeZeroPage, 5, 0),
		0xC8: e("INY", c.iny, modeImplied, 2, 0),
		0xC9: e("CMP", c.cmp, modeImmediate, 2, 0),
		0xCA: e("DEX", c.dex, modeImplied, 2, 0),
		0xCB: e("AXS", c.axs, modeImmediate, 2, 0),
		0xCC: e("CPY", c.cpy, modeAbsolute, 4, 0),
		0xCD: e("CMP", c.cmp, modeAbsolute, 4, 0),
		0xCE: e("DEC", c.dec, modeAbsolute, 6, 0),
		0xCF: e("DCP", c.dcp, modeAbsolute, 6, 0),

		0xD0: e("BNE", c.bne, modeRelative, 2, 1),
		0xD1: e("CMP", c.cmp, modeIndirectIndexed, 5, 1),
		0xD2: e("KIL", c.kil, modeImplied, 2, 0),
		0xD3: e("DCP", c.dcp, modeIndirectIndexed, 8, 0),
		0xD4: e("NOP", c.nop, modeZeroPageX, 4, 0),
		0xD5: e("CMP", c.cmp, modeZeroPageX, 4, 0),
		0xD6: e("DEC", c.dec, modeZeroPageX, 6, 0),
		0xD7: e("DCP", c.dcp, modeZeroPageX, 6, 0),
		0xD8: e("CLD", c.cld, modeImplied, 2, 0),
		0xD9: e("CMP", c.cmp, modeAbsoluteY, 4, 1),
		0xDA: e("NOP", c.nop, modeImplied, 2, 0),
		0xDB: e("DCP", c.dcp, modeAbsoluteY, 7, 0),
		0xDC: e("NOP", c.nop, modeAbsoluteX, 4, 1),
		0xDD: e("CMP", c.cmp, modeAbsoluteX, 4, 1),
		0xDE: e("DEC", c.dec, modeAbsoluteX, 7, 0),
		0xDF: e("DCP", c.dcp, modeAbsoluteX, 7, 0),

		0xE0: e("CPX", c.cpx, modeImmediate, 2, 0),
		0xE1: e("SBC", c.sbc, modeIndexedIndirect, 6, 0),
		0xE2: e("NOP", c.nop, modeImmediate, 2, 0),
		0xE3: e("ISB", c.isb, modeIndexedIndirect, 8, 0),
		0xE4: e("CPX", c.cpx, modeZeroPage, 3, 0),
		0xE5: e("SBC", c.sbc, modeZeroPage, 3, 0),
		0xE6: e("INC", c.inc, modeZeroPage, 5, 0),
		0xE7: e("ISB", c.isb, modeZeroPage, 5, 0),
		0xE8: e("INX", c.inx, modeImplied, 2, 0),
		0xE9: e("SBC", c.sbc, modeImmediate, 2, 0),
		0xEA: e("NOP", c.nop, modeImplied, 2, 0),
		0xEB: e("SBC", c.sbc, modeImmediate, 2, 0),
		0xEC: e("CPX", c.cpx, modeAbsolute, 4, 0),
		0xED: e("SBC", c.sbc, modeAbsolute, 4, 0),
		0xEE: e("INC", c.inc, modeAbsolute, 6, 0),
		0xEF: e("ISB", c.isb, modeAbsolute, 6, 0),

		0xF0: e("BEQ", c.beq, modeRelative, 2, 1),
		0xF1: e("SBC", c.sbc, modeIndirectIndexed, 5, 1),
		0xF2: e("KIL", c.kil, modeImplied, 2, 0),
		0xF3: e("ISB", c.isb, modeIndirectIndexed, 8, 0),
		0xF4: e("NOP", c.nop, modeZeroPageX, 4, 0),
		0xF5: e("SBC", c.sbc, modeZeroPageX, 4, 0),
		0xF6: e("INC", c.inc, modeZeroPageX, 6, 0),
		0xF7: e("ISB", c.isb, modeZeroPageX, 6, 0),
		0xF8: e("SED", c.sed, modeImplied, 2, 0),
		0xF9: e("SBC", c.sbc, modeAbsoluteY, 4, 1),
		0xFA: e("NOP", c.nop, modeImplied, 2, 0),
		0xFB: e("ISB", c.isb, modeAbsoluteY, 7, 0),
		0xFC: e("NOP", c.nop, modeAbsoluteX, 4, 1),
		0xFD: e("SBC", c.sbc, modeAbsoluteX, 4, 1),
		0xFE: e("INC", c.inc, modeAbsoluteX, 7, 0),
		0xFF: e("ISB", c.isb, modeAbsoluteX, 7, 0),
	}
}

// ---- Arithmetic ----

func (c *CPU) addWithCarry(value byte) {
	a := c.A
	carry := byte(0)
	if c.getFlag(FlagC) {
		carry = 1
	}
	c.A = a + value + carry
	c.setZN(c.A)
	c.setFlag(FlagC, int(a)+int(value)+int(carry) > 0xFF)
	c.setFlag(FlagV, (a^value)&0x80 == 0 && (a^c.A)&0x80 != 0)
}

func (c *CPU) adc(addr, pc uint16) {
	c.addWithCarry(c.bus.Read(addr))
}

func (c *CPU) sbc(addr, pc uint16) {
	c.addWithCarry(^c.bus.Read(addr))
}

func (c *CPU) cmp(addr, pc uint16) { c.compare(c.A, c.bus.Read(addr)) }
func (c *CPU) cpx(addr, pc uint16) { c.compare(c.X, c.bus.Read(addr)) }
func (c *CPU) cpy(addr, pc uint16) { c.compare(c.Y, c.bus.Read(addr)) }

// ---- Logic ----

func (c *CPU) and(addr, pc uint16) {
	c.A &= c.bus.Read(addr)
	c.setZN(c.A)
}

func (c *CPU) ora(addr, pc uint16) {
	c.A |= c.bus.Read(addr)
	c.setZN(c.A)
}

func (c *CPU) eor(addr, pc uint16) {
	c.A ^= c.bus.Read(addr)
	c.setZN(c.A)
}

func (c *CPU) bit(addr, pc uint16) {
	value := c.bus.Read(addr)
	c.setFlag(FlagV, value&0x40 != 0)
	c.setFlag(FlagN, value&0x80 != 0)
	c.setFlag(FlagZ, value&c.A == 0)
}

// ---- Shifts and rotates ----

func (c *CPU) aslValue(v byte) byte {
	c.setFlag(FlagC, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) asl(addr, pc uint16) {
	if c.addrMode == modeAccumulator {
		c.A = c.aslValue(c.A)
	} else {
		c.rmw(addr, c.aslValue)
	}
}

func (c *CPU) lsrValue(v byte) byte {
	c.setFlag(FlagC, v&1 != 0)
	v >>= 1
	c.setZN(v)
	return v
}

func (c *CPU) lsr(addr, pc uint16) {
	if c.addrMode == modeAccumulator {
		c.A = c.lsrValue(c.A)
	} else {
		c.rmw(addr, c.lsrValue)
	}
}

func (c *CPU) rolValue(v byte) byte {
	carryIn := byte(0)
	if c.getFlag(FlagC) {
		carryIn = 1
	}
	c.setFlag(FlagC, v&0x80 != 0)
	v = v<<1 | carryIn
	c.setZN(v)
	return v
}

func (c *CPU) rol(addr, pc uint16) {
	if c.addrMode == modeAccumulator {
		c.A = c.rolValue(c.A)
	} else {
		c.rmw(addr, c.rolValue)
	}
}

func (c *CPU) rorValue(v byte) byte {
	carryIn := byte(0)
	if c.getFlag(FlagC) {
		carryIn = 0x80
	}
	c.setFlag(FlagC, v&1 != 0)
	v = v>>1 | carryIn
	c.setZN(v)
	return v
}

func (c *CPU) ror(addr, pc uint16) {
	if c.addrMode == modeAccumulator {
		c.A = c.rorValue(c.A)
	} else {
		c.rmw(addr, c.rorValue)
	}
}

// ---- Increment and decrement ----

func (c *CPU) inc(addr, pc uint16) {
	c.rmw(addr, func(v byte) byte {
		v++
		c.setZN(v)
		return v
	})
}

func (c *CPU) dec(addr, pc uint16) {
	c.rmw(addr, func(v byte) byte {
		v--
		c.setZN(v)
		return v
	})
}

func (c *CPU) inx(addr, pc uint16) { c.X++; c.setZN(c.X) }
func (c *CPU) iny(addr, pc uint16) { c.Y++; c.setZN(c.Y) }
func (c *CPU) dex(addr, pc uint16) { c.X--; c.setZN(c.X) }
func (c *CPU) dey(addr, pc uint16) { c.Y--; c.setZN(c.Y) }

// ---- Loads and stores ----

func (c *CPU) lda(addr, pc uint16) { c.A = c.bus.Read(addr); c.setZN(c.A) }
func (c *CPU) ldx(addr, pc uint16) { c.X = c.bus.Read(addr); c.setZN(c.X) }
func (c *CPU) ldy(addr, pc uint16) { c.Y = c.bus.Read(addr); c.setZN(c.Y) }

func (c *CPU) sta(addr, pc uint16) { c.bus.Write(addr, c.A) }
func (c *CPU) stx(addr, pc uint16) { c.bus.Write(addr, c.X) }
func (c *CPU) sty(addr, pc uint16) { c.bus.Write(addr, c.Y) }

// ---- Register transfers ----

func (c *CPU) tax(addr, pc uint16) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) tay(addr, pc uint16) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) txa(addr, pc uint16) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) tya(addr, pc uint16) { c.A = c.Y; c.setZN(c.A) }
func (c *CPU) tsx(addr, pc uint16) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) txs(addr, pc uint16) { c.SP = c.X }

// ---- Stack ----

func (c *CPU) pha(addr, pc uint16) { c.push(c.A) }

func (c *CPU) php(addr, pc uint16) {
	// B and U always read as set in pushed copies.
	c.push(c.P | FlagB | FlagU)
}

func (c *CPU) pla(addr, pc uint16) {
	c.A = c.pull()
	c.setZN(c.A)
}

func (c *CPU) plp(addr, pc uint16) {
	c.P = c.pull()&^FlagB | FlagU
}

// ---- Jumps and subroutines ----

func (c *CPU) jmp(addr, pc uint16) { c.PC = addr }

func (c *CPU) jsr(addr, pc uint16) {
	c.push16(pc - 1)
	c.PC = addr
}

func (c *CPU) rts(addr, pc uint16) {
	c.PC = c.pull16() + 1
}

func (c *CPU) rti(addr, pc uint16) {
	c.P = c.pull()&^FlagB | FlagU
	c.PC = c.pull16()
}

func (c *CPU) brk(addr, pc uint16) {
	// The padding byte after BRK is fetched and discarded, so the
	// pushed return address is PC+2.
	c.bus.Read(c.PC)
	c.PC++
	c.push16(c.PC)
	c.push(c.P | FlagB | FlagU)
	c.P |= FlagI

	// An NMI edge during BRK hijacks the vector fetch.
	vector := vectorIRQ
	if c.nmiPending {
		c.nmiPending = false
		vector = vectorNMI
	}
	c.PC = c.read16(vector)
}

// ---- Branches ----

func (c *CPU) bcc(addr, pc uint16) {
	if !c.getFlag(FlagC) {
		c.branch(addr, pc)
	}
}

func (c *CPU) bcs(addr, pc uint16) {
	if c.getFlag(FlagC) {
		c.branch(addr, pc)
	}
}

func (c *CPU) beq(addr, pc uint16) {
	if c.getFlag(FlagZ) {
		c.branch(addr, pc)
	}
}

func (c *CPU) bne(addr, pc uint16) {
	if !c.getFlag(FlagZ) {
		c.branch(addr, pc)
	}
}

func (c *CPU) bmi(addr, pc uint16) {
	if c.getFlag(FlagN) {
		c.branch(addr, pc)
	}
}

func (c *CPU) bpl(addr, pc uint16) {
	if !c.getFlag(FlagN) {
		c.branch(addr, pc)
	}
}

func (c *CPU) bvc(addr, pc uint16) {
	if !c.getFlag(FlagV) {
		c.branch(addr, pc)
	}
}

func (c *CPU) bvs(addr, pc uint16) {
	if c.getFlag(FlagV) {
		c.branch(addr, pc)
	}
}

// ---- Flag operations ----

func (c *CPU) clc(addr, pc uint16) { c.setFlag(FlagC, false) }
func (c *CPU) cld(addr, pc uint16) { c.setFlag(FlagD, false) }
func (c *CPU) cli(addr, pc uint16) { c.setFlag(FlagI, false) }
func (c *CPU) clv(addr, pc uint16) { c.setFlag(FlagV, false) }
func (c *CPU) sec(addr, pc uint16) { c.setFlag(FlagC, true) }
func (c *CPU) sed(addr, pc uint16) { c.setFlag(FlagD, true) }
func (c *CPU) sei(addr, pc uint16) { c.setFlag(FlagI, true) }

// ---- NOP family ----

// nop still performs the operand read for the modes that have one;
// $04/$44/$64-style NOPs are visible to memory-mapped hardware.
func (c *CPU) nop(addr, pc uint16) {
	if c.addrMode != modeImplied && c.addrMode != modeAccumulator {
		c.bus.Read(addr)
	}
}

func (c *CPU) kil(addr, pc uint16) {
	c.jammed = true
	c.PC -= 1
	// Collapse to the boundary so callers stepping by instruction see
	// a halted, idle core rather than spinning forever.
	c.cycles = 1
}

// ---- Unofficial opcodes ----

func (c *CPU) lax(addr, pc uint16) {
	v := c.bus.Read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
}

func (c *CPU) sax(addr, pc uint16) {
	c.bus.Write(addr, c.A&c.X)
}

func (c *CPU) dcp(addr, pc uint16) {
	v := c.rmw(addr, func(v byte) byte { return v - 1 })
	c.compare(c.A, v)
}

func (c *CPU) isb(addr, pc uint16) {
	v := c.rmw(addr, func(v byte) byte { return v + 1 })
	c.addWithCarry(^v)
}

func (c *CPU) slo(addr, pc uint16) {
	v := c.rmw(addr, c.aslValue)
	c.A |= v
	c.setZN(c.A)
}

func (c *CPU) rla(addr, pc uint16) {
	v := c.rmw(addr, c.rolValue)
	c.A &= v
	c.setZN(c.A)
}

func (c *CPU) sre(addr, pc uint16) {
	v := c.rmw(addr, c.lsrValue)
	c.A ^= v
	c.setZN(c.A)
}

func (c *CPU) rra(addr, pc uint16) {
	v := c.rmw(addr, c.rorValue)
	c.addWithCarry(v)
}

func (c *CPU) anc(addr, pc uint16) {
	c.A &= c.bus.Read(addr)
	c.setZN(c.A)
	c.setFlag(FlagC, c.A&0x80 != 0)
}

func (c *CPU) alr(addr, pc uint16) {
	c.A &= c.bus.Read(addr)
	c.A = c.lsrValue(c.A)
}

func (c *CPU) arr(addr, pc uint16) {
	c.A &= c.bus.Read(addr)
	carryIn := byte(0)
	if c.getFlag(FlagC) {
		carryIn = 0x80
	}
	c.A = c.A>>1 | carryIn
	c.setZN(c.A)
	c.setFlag(FlagC, c.A&0x40 != 0)
	c.setFlag(FlagV, (c.A>>6^c.A>>5)&1 != 0)
}

func (c *CPU) axs(addr, pc uint16) {
	v := c.bus.Read(addr)
	ax := c.A & c.X
	c.X = ax - v
	c.setFlag(FlagC, ax >= v)
	c.setZN(c.X)
}

func (c *CPU) las(addr, pc uint16) {
	v := c.bus.Read(addr) & c.SP
	c.A = v
	c.X = v
	c.SP = v
	c.setZN(v)
}

func (c *CPU) xaa(addr, pc uint16) {
	c.A = c.X & c.bus.Read(addr)
	c.setZN(c.A)
}

// The SHA/SHX/SHY group stores reg & (high byte of target + 1).

func (c *CPU) ahx(addr, pc uint16) {
	c.bus.Write(addr, c.A&c.X&(byte(addr>>8)+1))
}

func (c *CPU) shx(addr, pc uint16) {
	c.bus.Write(addr, c.X&(byte(addr>>8)+1))
}

func (c *CPU) shy(addr, pc uint16) {
	c.bus.Write(addr, c.Y&(byte(addr>>8)+1))
}

func (c *CPU) tas(addr, pc uint16) {
	c.SP = c.A & c.X
	c.bus.Write(addr, c.SP&(byte(addr>>8)+1))
}
