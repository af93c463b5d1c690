package cpu

// decodeTable maps an opcode byte to the micro-op sequence the Executor
// enqueues once it has fetched that byte. The sequence never includes the
// fetch cycle itself -- that is accounted for by fetchAndDecode's own read
// of the opcode. An opcode's cycle count is the Executor's running total
// (1 for the fetch, plus len(sequence), plus any page-cross or branch
// cycles spliced in at run time), cross-checked against the authoritative
// per-opcode timings used throughout the 6502 reverse-engineering
// literature.
//
// Unofficial/undocumented opcodes have no entry here and decode as
// *UnimplementedOpcodeError, per scope.
var decodeTable = buildDecodeTable()

func buildDecodeTable() map[byte][]microOp {
	t := make(map[byte][]microOp, 256)

	// --- Read class: LDA, LDX, LDY, AND, ORA, EOR, ADC, SBC, CMP, CPX, CPY, BIT ---

	t[0xA9] = seqImm(instrLDA)
	t[0xA5] = seqZP(instrLDA)
	t[0xB5] = seqZPX(instrLDA)
	t[0xAD] = seqAbs(instrLDA)
	t[0xBD] = seqAbsX(instrLDA)
	t[0xB9] = seqAbsY(instrLDA)
	t[0xA1] = seqIndX(instrLDA)
	t[0xB1] = seqIndY(instrLDA)

	t[0xA2] = seqImm(instrLDX)
	t[0xA6] = seqZP(instrLDX)
	t[0xB6] = seqZPY(instrLDX)
	t[0xAE] = seqAbs(instrLDX)
	t[0xBE] = seqAbsY(instrLDX)

	t[0xA0] = seqImm(instrLDY)
	t[0xA4] = seqZP(instrLDY)
	t[0xB4] = seqZPX(instrLDY)
	t[0xAC] = seqAbs(instrLDY)
	t[0xBC] = seqAbsX(instrLDY)

	t[0x29] = seqImm(instrAND)
	t[0x25] = seqZP(instrAND)
	t[0x35] = seqZPX(instrAND)
	t[0x2D] = seqAbs(instrAND)
	t[0x3D] = seqAbsX(instrAND)
	t[0x39] = seqAbsY(instrAND)
	t[0x21] = seqIndX(instrAND)
	t[0x31] = seqIndY(instrAND)

	t[0x09] = seqImm(instrORA)
	t[0x05] = seqZP(instrORA)
	t[0x15] = seqZPX(instrORA)
	t[0x0D] = seqAbs(instrORA)
	t[0x1D] = seqAbsX(instrORA)
	t[0x19] = seqAbsY(instrORA)
	t[0x01] = seqIndX(instrORA)
	t[0x11] = seqIndY(instrORA)

	t[0x49] = seqImm(instrEOR)
	t[0x45] = seqZP(instrEOR)
	t[0x55] = seqZPX(instrEOR)
	t[0x4D] = seqAbs(instrEOR)
	t[0x5D] = seqAbsX(instrEOR)
	t[0x59] = seqAbsY(instrEOR)
	t[0x41] = seqIndX(instrEOR)
	t[0x51] = seqIndY(instrEOR)

	t[0x69] = seqImm(instrADC)
	t[0x65] = seqZP(instrADC)
	t[0x75] = seqZPX(instrADC)
	t[0x6D] = seqAbs(instrADC)
	t[0x7D] = seqAbsX(instrADC)
	t[0x79] = seqAbsY(instrADC)
	t[0x61] = seqIndX(instrADC)
	t[0x71] = seqIndY(instrADC)

	t[0xE9] = seqImm(instrSBC)
	t[0xE5] = seqZP(instrSBC)
	t[0xF5] = seqZPX(instrSBC)
	t[0xED] = seqAbs(instrSBC)
	t[0xFD] = seqAbsX(instrSBC)
	t[0xF9] = seqAbsY(instrSBC)
	t[0xE1] = seqIndX(instrSBC)
	t[0xF1] = seqIndY(instrSBC)

	t[0xC9] = seqImm(instrCMP)
	t[0xC5] = seqZP(instrCMP)
	t[0xD5] = seqZPX(instrCMP)
	t[0xCD] = seqAbs(instrCMP)
	t[0xDD] = seqAbsX(instrCMP)
	t[0xD9] = seqAbsY(instrCMP)
	t[0xC1] = seqIndX(instrCMP)
	t[0xD1] = seqIndY(instrCMP)

	t[0xE0] = seqImm(instrCPX)
	t[0xE4] = seqZP(instrCPX)
	t[0xEC] = seqAbs(instrCPX)

	t[0xC0] = seqImm(instrCPY)
	t[0xC4] = seqZP(instrCPY)
	t[0xCC] = seqAbs(instrCPY)

	t[0x24] = seqZP(instrBIT)
	t[0x2C] = seqAbs(instrBIT)

	// --- Write class: STA, STX, STY ---

	t[0x85] = seqZPWrite(instrSTA)
	t[0x95] = seqZPXWrite(instrSTA)
	t[0x8D] = seqAbsWrite(instrSTA)
	t[0x9D] = seqAbsXWrite(instrSTA)
	t[0x99] = seqAbsYWrite(instrSTA)
	t[0x81] = seqIndXWrite(instrSTA)
	t[0x91] = seqIndYWrite(instrSTA)

	t[0x86] = seqZPWrite(instrSTX)
	t[0x96] = seqZPYWrite(instrSTX)
	t[0x8E] = seqAbsWrite(instrSTX)

	t[0x84] = seqZPWrite(instrSTY)
	t[0x94] = seqZPXWrite(instrSTY)
	t[0x8C] = seqAbsWrite(instrSTY)

	// --- Read-modify-write class: ASL, LSR, ROL, ROR, INC, DEC ---

	t[0x0A] = seqAccumulator(instrASL)
	t[0x06] = seqZPRMW(instrASL)
	t[0x16] = seqZPXRMW(instrASL)
	t[0x0E] = seqAbsRMW(instrASL)
	t[0x1E] = seqAbsXRMW(instrASL)

	t[0x4A] = seqAccumulator(instrLSR)
	t[0x46] = seqZPRMW(instrLSR)
	t[0x56] = seqZPXRMW(instrLSR)
	t[0x4E] = seqAbsRMW(instrLSR)
	t[0x5E] = seqAbsXRMW(instrLSR)

	t[0x2A] = seqAccumulator(instrROL)
	t[0x26] = seqZPRMW(instrROL)
	t[0x36] = seqZPXRMW(instrROL)
	t[0x2E] = seqAbsRMW(instrROL)
	t[0x3E] = seqAbsXRMW(instrROL)

	t[0x6A] = seqAccumulator(instrROR)
	t[0x66] = seqZPRMW(instrROR)
	t[0x76] = seqZPXRMW(instrROR)
	t[0x6E] = seqAbsRMW(instrROR)
	t[0x7E] = seqAbsXRMW(instrROR)

	t[0xE6] = seqZPRMW(instrINC)
	t[0xF6] = seqZPXRMW(instrINC)
	t[0xEE] = seqAbsRMW(instrINC)
	t[0xFE] = seqAbsXRMW(instrINC)

	t[0xC6] = seqZPRMW(instrDEC)
	t[0xD6] = seqZPXRMW(instrDEC)
	t[0xCE] = seqAbsRMW(instrDEC)
	t[0xDE] = seqAbsXRMW(instrDEC)

	// --- Implied / register class ---

	t[0xAA] = seqImplied(instrTAX)
	t[0xA8] = seqImplied(instrTAY)
	t[0x8A] = seqImplied(instrTXA)
	t[0x98] = seqImplied(instrTYA)
	t[0xBA] = seqImplied(instrTSX)
	t[0x9A] = seqImplied(instrTXS)
	t[0xE8] = seqImplied(instrINX)
	t[0xC8] = seqImplied(instrINY)
	t[0xCA] = seqImplied(instrDEX)
	t[0x88] = seqImplied(instrDEY)
	t[0x18] = seqImplied(instrCLC)
	t[0x38] = seqImplied(instrSEC)
	t[0x58] = seqImplied(instrCLI)
	t[0x78] = seqImplied(instrSEI)
	t[0xD8] = seqImplied(instrCLD)
	t[0xF8] = seqImplied(instrSED)
	t[0xB8] = seqImplied(instrCLV)
	t[0xEA] = seqImplied(instrNOP)

	// --- Branches ---

	t[0x90] = seqBranch(instrBCC)
	t[0xB0] = seqBranch(instrBCS)
	t[0xF0] = seqBranch(instrBEQ)
	t[0xD0] = seqBranch(instrBNE)
	t[0x10] = seqBranch(instrBPL)
	t[0x30] = seqBranch(instrBMI)
	t[0x50] = seqBranch(instrBVC)
	t[0x70] = seqBranch(instrBVS)

	// --- Jumps, subroutine linkage, stack, software interrupt ---

	t[0x4C] = []microOp{{kind: opFetchLow}, {kind: opFetchHighAndJump}}
	t[0x6C] = []microOp{{kind: opFetchLow}, {kind: opFetchHigh}, {kind: opReadIndirectLow}, {kind: opReadIndirectHighAndJump}}
	t[0x20] = []microOp{{kind: opFetchLow}, {kind: opDummy}, {kind: opPushPCH}, {kind: opPushPCL}, {kind: opFetchHighAndJumpPC}}
	t[0x60] = []microOp{{kind: opDummy}, {kind: opIncrementSP}, {kind: opPullByte}, {kind: opPullPCHBuildAddr}, {kind: opIncrementPCFromAddr}}
	t[0x00] = []microOp{
		{kind: opIncrementPCOnly},
		{kind: opPushPCH},
		{kind: opPushPCL},
		{kind: opPushStatusForBRK},
		{kind: opFetchVectorLow, vectorAddr: BRKVector},
		{kind: opFetchVectorHighAndJump, vectorAddr: BRKVector},
	}
	t[0x40] = []microOp{{kind: opDummy}, {kind: opIncrementSP}, {kind: opPullStatusAdvance}, {kind: opPullByte}, {kind: opPullPCHFinalRTI}}

	t[0x48] = []microOp{{kind: opDummy}, {kind: opPushA}}
	t[0x08] = []microOp{{kind: opDummy}, {kind: opPushStatusForPHP}}
	t[0x68] = []microOp{{kind: opDummy}, {kind: opIncrementSP}, {kind: opPullAFinal}}
	t[0x28] = []microOp{{kind: opDummy}, {kind: opIncrementSP}, {kind: opPullStatusFinalPLP}}

	return t
}

func seqImm(instr instrID) []microOp {
	return []microOp{{kind: opFetchImmediateAndExecRead, instr: instr}}
}

func seqZP(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opExecRead, instr: instr}}
}

func seqZPX(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opAddXToZP}, {kind: opExecRead, instr: instr}}
}

func seqZPY(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opAddYToZP}, {kind: opExecRead, instr: instr}}
}

func seqAbs(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opFetchHigh}, {kind: opExecRead, instr: instr}}
}

func seqAbsX(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opFetchHighX}, {kind: opExecRead, instr: instr}}
}

func seqAbsY(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opFetchHighY}, {kind: opExecRead, instr: instr}}
}

func seqIndX(instr instrID) []microOp {
	return []microOp{
		{kind: opFetchLow}, {kind: opAddXToPtr}, {kind: opFetchPtrLowIndexed},
		{kind: opFetchPtrHighIndexed}, {kind: opExecRead, instr: instr},
	}
}

func seqIndY(instr instrID) []microOp {
	return []microOp{
		{kind: opFetchLow}, {kind: opFetchPtrLowIndirect}, {kind: opFetchPtrHighIndirectY},
		{kind: opExecRead, instr: instr},
	}
}

func seqZPWrite(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opExecWrite, instr: instr}}
}

func seqZPXWrite(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opAddXToZP}, {kind: opExecWrite, instr: instr}}
}

func seqZPYWrite(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opAddYToZP}, {kind: opExecWrite, instr: instr}}
}

func seqAbsWrite(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opFetchHigh}, {kind: opExecWrite, instr: instr}}
}

func seqAbsXWrite(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opFetchHighXFixed}, {kind: opDummy}, {kind: opExecWrite, instr: instr}}
}

func seqAbsYWrite(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opFetchHighYFixed}, {kind: opDummy}, {kind: opExecWrite, instr: instr}}
}

func seqIndXWrite(instr instrID) []microOp {
	return []microOp{
		{kind: opFetchLow}, {kind: opAddXToPtr}, {kind: opFetchPtrLowIndexed},
		{kind: opFetchPtrHighIndexed}, {kind: opExecWrite, instr: instr},
	}
}

func seqIndYWrite(instr instrID) []microOp {
	return []microOp{
		{kind: opFetchLow}, {kind: opFetchPtrLowIndirect}, {kind: opFetchPtrHighIndirectYFixed},
		{kind: opDummy}, {kind: opExecWrite, instr: instr},
	}
}

func seqZPRMW(instr instrID) []microOp {
	return []microOp{{kind: opFetchLow}, {kind: opReadAddr}, {kind: opExecRMW, instr: instr}, {kind: opWriteAddr}}
}

func seqZPXRMW(instr instrID) []microOp {
	return []microOp{
		{kind: opFetchLow}, {kind: opAddXToZP}, {kind: opReadAddr},
		{kind: opExecRMW, instr: instr}, {kind: opWriteAddr},
	}
}

func seqAbsRMW(instr instrID) []microOp {
	return []microOp{
		{kind: opFetchLow}, {kind: opFetchHigh}, {kind: opReadAddr},
		{kind: opExecRMW, instr: instr}, {kind: opWriteAddr},
	}
}

func seqAbsXRMW(instr instrID) []microOp {
	return []microOp{
		{kind: opFetchLow}, {kind: opFetchHighXFixed}, {kind: opDummy}, {kind: opReadAddr},
		{kind: opExecRMW, instr: instr}, {kind: opWriteAddr},
	}
}

func seqAccumulator(instr instrID) []microOp {
	return []microOp{{kind: opExecAccumulatorRMW, instr: instr}}
}

func seqImplied(instr instrID) []microOp {
	return []microOp{{kind: opExecImplied, instr: instr}}
}

func seqBranch(instr instrID) []microOp {
	return []microOp{{kind: opFetchRelative, instr: instr}}
}
