// Package disasm renders a byte slice as a static 6502 instruction
// listing, reading mnemonics, addressing modes and lengths from cpu's
// opcode metadata (cpu.LookupOpcode) rather than keeping its own table.
package disasm

import (
	"fmt"
	"strings"

	"nescycle/cpu"
)

// Line is one disassembled instruction: its address, raw bytes, and
// rendered text.
type Line struct {
	Addr  uint16
	Bytes []byte
	Text  string
}

// Step disassembles the single instruction at code[offset:], returning
// its Line and the offset of the following instruction. addr is the PC
// value code[offset] is assumed to sit at, used for both display and
// relative-branch target computation. If the opcode has no entry in
// cpu's decode table, Step renders it as a one-byte ".byte $xx" and
// advances by one.
func Step(code []byte, offset int, addr uint16) (Line, int) {
	op := code[offset]
	info, ok := cpu.LookupOpcode(op)
	if !ok {
		return Line{
			Addr:  addr,
			Bytes: code[offset : offset+1],
			Text:  fmt.Sprintf(".byte $%02X", op),
		}, offset + 1
	}

	length := info.Length
	if offset+length > len(code) {
		length = len(code) - offset
	}
	raw := code[offset : offset+length]

	return Line{
		Addr:  addr,
		Bytes: raw,
		Text:  render(info, raw, addr),
	}, offset + length
}

func render(info cpu.OpcodeInfo, raw []byte, addr uint16) string {
	m := info.Mnemonic
	switch info.Mode {
	case cpu.ModeImplied:
		return m
	case cpu.ModeAccumulator:
		return m + " A"
	case cpu.ModeImmediate:
		return fmt.Sprintf("%s #$%02X", m, operandByte(raw, 1))
	case cpu.ModeZeroPage:
		return fmt.Sprintf("%s $%02X", m, operandByte(raw, 1))
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("%s $%02X,X", m, operandByte(raw, 1))
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", m, operandByte(raw, 1))
	case cpu.ModeAbsolute:
		return fmt.Sprintf("%s $%04X", m, operandWord(raw))
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("%s $%04X,X", m, operandWord(raw))
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", m, operandWord(raw))
	case cpu.ModeIndirect:
		return fmt.Sprintf("%s ($%04X)", m, operandWord(raw))
	case cpu.ModeIndirectX:
		return fmt.Sprintf("%s ($%02X,X)", m, operandByte(raw, 1))
	case cpu.ModeIndirectY:
		return fmt.Sprintf("%s ($%02X),Y", m, operandByte(raw, 1))
	case cpu.ModeRelative:
		target := addr + uint16(len(raw)) + uint16(int16(int8(operandByte(raw, 1))))
		return fmt.Sprintf("%s $%04X", m, target)
	default:
		return m
	}
}

func operandByte(raw []byte, i int) byte {
	if i >= len(raw) {
		return 0
	}
	return raw[i]
}

func operandWord(raw []byte) uint16 {
	if len(raw) < 3 {
		return 0
	}
	return uint16(raw[1]) | uint16(raw[2])<<8
}

// Listing disassembles code in full, starting at startAddr, and returns
// one Line per instruction until code is exhausted.
func Listing(code []byte, startAddr uint16) []Line {
	var lines []Line
	addr := startAddr
	offset := 0
	for offset < len(code) {
		line, next := Step(code, offset, addr)
		lines = append(lines, line)
		addr += uint16(next - offset)
		offset = next
	}
	return lines
}

// String renders l the way a disassembler listing traditionally reads:
// address, raw bytes, mnemonic.
func (l Line) String() string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-8s  %s", l.Addr, strings.Join(hex, " "), l.Text)
}
