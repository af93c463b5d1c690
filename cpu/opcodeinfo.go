package cpu

// AddressingMode identifies the operand-fetch shape of an opcode, for the
// benefit of callers (disasm) that need to render an instruction rather
// than execute it. The Decoder never looks at these values itself --
// decode.go's seq* builders encode addressing mode as micro-op shape
// directly.
type AddressingMode int

const (
	ModeImplied AddressingMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// OpcodeInfo is everything a disassembler needs to render one instruction:
// its mnemonic, its addressing mode, and its total length in bytes
// (opcode included).
type OpcodeInfo struct {
	Mnemonic string
	Mode     AddressingMode
	Length   int
}

// mnemonics maps each instrID to its three-letter name. instrNone has no
// entry; it never appears in opcodeInfoTable.
var mnemonics = map[instrID]string{
	instrLDA: "LDA", instrLDX: "LDX", instrLDY: "LDY",
	instrAND: "AND", instrORA: "ORA", instrEOR: "EOR",
	instrADC: "ADC", instrSBC: "SBC",
	instrCMP: "CMP", instrCPX: "CPX", instrCPY: "CPY", instrBIT: "BIT",
	instrSTA: "STA", instrSTX: "STX", instrSTY: "STY",
	instrASL: "ASL", instrLSR: "LSR", instrROL: "ROL", instrROR: "ROR",
	instrINC: "INC", instrDEC: "DEC",
	instrTAX: "TAX", instrTAY: "TAY", instrTXA: "TXA", instrTYA: "TYA",
	instrTSX: "TSX", instrTXS: "TXS",
	instrINX: "INX", instrINY: "INY", instrDEX: "DEX", instrDEY: "DEY",
	instrCLC: "CLC", instrSEC: "SEC", instrCLI: "CLI", instrSEI: "SEI",
	instrCLD: "CLD", instrSED: "SED", instrCLV: "CLV", instrNOP: "NOP",
	instrBCC: "BCC", instrBCS: "BCS", instrBEQ: "BEQ", instrBNE: "BNE",
	instrBPL: "BPL", instrBMI: "BMI", instrBVC: "BVC", instrBVS: "BVS",
	instrJMP: "JMP", instrJMPIndirect: "JMP", instrJSR: "JSR", instrRTS: "RTS",
	instrBRK: "BRK", instrRTI: "RTI",
	instrPHA: "PHA", instrPHP: "PHP", instrPLA: "PLA", instrPLP: "PLP",
}

var opcodeInfoTable = buildOpcodeInfoTable()

func buildOpcodeInfoTable() map[byte]OpcodeInfo {
	t := make(map[byte]OpcodeInfo, 151)

	reg := func(op byte, instr instrID, mode AddressingMode, length int) {
		t[op] = OpcodeInfo{Mnemonic: mnemonics[instr], Mode: mode, Length: length}
	}

	type row struct {
		op     byte
		instr  instrID
		mode   AddressingMode
		length int
	}

	for _, r := range []row{
		// Read class
		{0xA9, instrLDA, ModeImmediate, 2}, {0xA5, instrLDA, ModeZeroPage, 2},
		{0xB5, instrLDA, ModeZeroPageX, 2}, {0xAD, instrLDA, ModeAbsolute, 3},
		{0xBD, instrLDA, ModeAbsoluteX, 3}, {0xB9, instrLDA, ModeAbsoluteY, 3},
		{0xA1, instrLDA, ModeIndirectX, 2}, {0xB1, instrLDA, ModeIndirectY, 2},

		{0xA2, instrLDX, ModeImmediate, 2}, {0xA6, instrLDX, ModeZeroPage, 2},
		{0xB6, instrLDX, ModeZeroPageY, 2}, {0xAE, instrLDX, ModeAbsolute, 3},
		{0xBE, instrLDX, ModeAbsoluteY, 3},

		{0xA0, instrLDY, ModeImmediate, 2}, {0xA4, instrLDY, ModeZeroPage, 2},
		{0xB4, instrLDY, ModeZeroPageX, 2}, {0xAC, instrLDY, ModeAbsolute, 3},
		{0xBC, instrLDY, ModeAbsoluteX, 3},

		{0x29, instrAND, ModeImmediate, 2}, {0x25, instrAND, ModeZeroPage, 2},
		{0x35, instrAND, ModeZeroPageX, 2}, {0x2D, instrAND, ModeAbsolute, 3},
		{0x3D, instrAND, ModeAbsoluteX, 3}, {0x39, instrAND, ModeAbsoluteY, 3},
		{0x21, instrAND, ModeIndirectX, 2}, {0x31, instrAND, ModeIndirectY, 2},

		{0x09, instrORA, ModeImmediate, 2}, {0x05, instrORA, ModeZeroPage, 2},
		{0x15, instrORA, ModeZeroPageX, 2}, {0x0D, instrORA, ModeAbsolute, 3},
		{0x1D, instrORA, ModeAbsoluteX, 3}, {0x19, instrORA, ModeAbsoluteY, 3},
		{0x01, instrORA, ModeIndirectX, 2}, {0x11, instrORA, ModeIndirectY, 2},

		{0x49, instrEOR, ModeImmediate, 2}, {0x45, instrEOR, ModeZeroPage, 2},
		{0x55, instrEOR, ModeZeroPageX, 2}, {0x4D, instrEOR, ModeAbsolute, 3},
		{0x5D, instrEOR, ModeAbsoluteX, 3}, {0x59, instrEOR, ModeAbsoluteY, 3},
		{0x41, instrEOR, ModeIndirectX, 2}, {0x51, instrEOR, ModeIndirectY, 2},

		{0x69, instrADC, ModeImmediate, 2}, {0x65, instrADC, ModeZeroPage, 2},
		{0x75, instrADC, ModeZeroPageX, 2}, {0x6D, instrADC, ModeAbsolute, 3},
		{0x7D, instrADC, ModeAbsoluteX, 3}, {0x79, instrADC, ModeAbsoluteY, 3},
		{0x61, instrADC, ModeIndirectX, 2}, {0x71, instrADC, ModeIndirectY, 2},

		{0xE9, instrSBC, ModeImmediate, 2}, {0xE5, instrSBC, ModeZeroPage, 2},
		{0xF5, instrSBC, ModeZeroPageX, 2}, {0xED, instrSBC, ModeAbsolute, 3},
		{0xFD, instrSBC, ModeAbsoluteX, 3}, {0xF9, instrSBC, ModeAbsoluteY, 3},
		{0xE1, instrSBC, ModeIndirectX, 2}, {0xF1, instrSBC, ModeIndirectY, 2},

		{0xC9, instrCMP, ModeImmediate, 2}, {0xC5, instrCMP, ModeZeroPage, 2},
		{0xD5, instrCMP, ModeZeroPageX, 2}, {0xCD, instrCMP, ModeAbsolute, 3},
		{0xDD, instrCMP, ModeAbsoluteX, 3}, {0xD9, instrCMP, ModeAbsoluteY, 3},
		{0xC1, instrCMP, ModeIndirectX, 2}, {0xD1, instrCMP, ModeIndirectY, 2},

		{0xE0, instrCPX, ModeImmediate, 2}, {0xE4, instrCPX, ModeZeroPage, 2}, {0xEC, instrCPX, ModeAbsolute, 3},
		{0xC0, instrCPY, ModeImmediate, 2}, {0xC4, instrCPY, ModeZeroPage, 2}, {0xCC, instrCPY, ModeAbsolute, 3},

		{0x24, instrBIT, ModeZeroPage, 2}, {0x2C, instrBIT, ModeAbsolute, 3},

		// Write class
		{0x85, instrSTA, ModeZeroPage, 2}, {0x95, instrSTA, ModeZeroPageX, 2},
		{0x8D, instrSTA, ModeAbsolute, 3}, {0x9D, instrSTA, ModeAbsoluteX, 3},
		{0x99, instrSTA, ModeAbsoluteY, 3}, {0x81, instrSTA, ModeIndirectX, 2},
		{0x91, instrSTA, ModeIndirectY, 2},

		{0x86, instrSTX, ModeZeroPage, 2}, {0x96, instrSTX, ModeZeroPageY, 2}, {0x8E, instrSTX, ModeAbsolute, 3},
		{0x84, instrSTY, ModeZeroPage, 2}, {0x94, instrSTY, ModeZeroPageX, 2}, {0x8C, instrSTY, ModeAbsolute, 3},

		// Read-modify-write class
		{0x0A, instrASL, ModeAccumulator, 1}, {0x06, instrASL, ModeZeroPage, 2},
		{0x16, instrASL, ModeZeroPageX, 2}, {0x0E, instrASL, ModeAbsolute, 3}, {0x1E, instrASL, ModeAbsoluteX, 3},

		{0x4A, instrLSR, ModeAccumulator, 1}, {0x46, instrLSR, ModeZeroPage, 2},
		{0x56, instrLSR, ModeZeroPageX, 2}, {0x4E, instrLSR, ModeAbsolute, 3}, {0x5E, instrLSR, ModeAbsoluteX, 3},

		{0x2A, instrROL, ModeAccumulator, 1}, {0x26, instrROL, ModeZeroPage, 2},
		{0x36, instrROL, ModeZeroPageX, 2}, {0x2E, instrROL, ModeAbsolute, 3}, {0x3E, instrROL, ModeAbsoluteX, 3},

		{0x6A, instrROR, ModeAccumulator, 1}, {0x66, instrROR, ModeZeroPage, 2},
		{0x76, instrROR, ModeZeroPageX, 2}, {0x6E, instrROR, ModeAbsolute, 3}, {0x7E, instrROR, ModeAbsoluteX, 3},

		{0xE6, instrINC, ModeZeroPage, 2}, {0xF6, instrINC, ModeZeroPageX, 2},
		{0xEE, instrINC, ModeAbsolute, 3}, {0xFE, instrINC, ModeAbsoluteX, 3},

		{0xC6, instrDEC, ModeZeroPage, 2}, {0xD6, instrDEC, ModeZeroPageX, 2},
		{0xCE, instrDEC, ModeAbsolute, 3}, {0xDE, instrDEC, ModeAbsoluteX, 3},

		// Implied/register class
		{0xAA, instrTAX, ModeImplied, 1}, {0xA8, instrTAY, ModeImplied, 1},
		{0x8A, instrTXA, ModeImplied, 1}, {0x98, instrTYA, ModeImplied, 1},
		{0xBA, instrTSX, ModeImplied, 1}, {0x9A, instrTXS, ModeImplied, 1},
		{0xE8, instrINX, ModeImplied, 1}, {0xC8, instrINY, ModeImplied, 1},
		{0xCA, instrDEX, ModeImplied, 1}, {0x88, instrDEY, ModeImplied, 1},
		{0x18, instrCLC, ModeImplied, 1}, {0x38, instrSEC, ModeImplied, 1},
		{0x58, instrCLI, ModeImplied, 1}, {0x78, instrSEI, ModeImplied, 1},
		{0xD8, instrCLD, ModeImplied, 1}, {0xF8, instrSED, ModeImplied, 1},
		{0xB8, instrCLV, ModeImplied, 1}, {0xEA, instrNOP, ModeImplied, 1},

		// Branches
		{0x90, instrBCC, ModeRelative, 2}, {0xB0, instrBCS, ModeRelative, 2},
		{0xF0, instrBEQ, ModeRelative, 2}, {0xD0, instrBNE, ModeRelative, 2},
		{0x10, instrBPL, ModeRelative, 2}, {0x30, instrBMI, ModeRelative, 2},
		{0x50, instrBVC, ModeRelative, 2}, {0x70, instrBVS, ModeRelative, 2},

		// Jumps, subroutine linkage, stack, software interrupt
		{0x4C, instrJMP, ModeAbsolute, 3}, {0x6C, instrJMPIndirect, ModeIndirect, 3},
		{0x20, instrJSR, ModeAbsolute, 3}, {0x60, instrRTS, ModeImplied, 1},
		{0x00, instrBRK, ModeImplied, 1}, {0x40, instrRTI, ModeImplied, 1},
		{0x48, instrPHA, ModeImplied, 1}, {0x08, instrPHP, ModeImplied, 1},
		{0x68, instrPLA, ModeImplied, 1}, {0x28, instrPLP, ModeImplied, 1},
	} {
		reg(r.op, r.instr, r.mode, r.length)
	}

	return t
}

// LookupOpcode returns the mnemonic, addressing mode and byte length for
// op, or ok=false if op has no entry in the decode table (an unofficial
// opcode, out of scope here same as in the Decoder).
func LookupOpcode(op byte) (info OpcodeInfo, ok bool) {
	info, ok = opcodeInfoTable[op]
	return info, ok
}
