package cpu

// A microOp is one atomic sub-cycle of work: the tagged-union abstraction
// spec.md §9 calls for in place of the "mutate the front of the queue to
// carry a value forward" pattern. Every variant is a case in the kind enum
// below, dispatched by a single switch in exec.go -- no per-op function
// pointers, so the hot path is one table lookup plus one switch, not a
// chain of virtual calls.
//
// Scratch state travels between micro-ops exclusively through the Cpu's
// own latches (tempAddr, tempVal, tempPtr, pageCrossed), never through the
// microOp value itself. The only payload a microOp carries is the
// instruction identity (for the addressing-mode-independent exec* kinds)
// and, for the two BRK/vector-fetch kinds, the vector address.
type microOpKind int

const (
	// Addressing-mode construction. These only ever touch the scratch
	// latches and PC; they never read an "effective address" as data.
	opFetchLow microOpKind = iota // tempAddr = read(PC); PC++ (ZeroPage operand, or Absolute's low byte)
	opAddXToZP                    // tempAddr = (tempAddr+X) & 0xFF
	opAddYToZP                    // tempAddr = (tempAddr+Y) & 0xFF
	opFetchHigh                   // tempAddr = read(PC)<<8 | tempAddr&0xFF; PC++
	opFetchHighX                  // as opFetchHigh, + X; if it crosses a page, dynamically inserts opDummy
	opFetchHighY                  // as opFetchHigh, + Y; if it crosses a page, dynamically inserts opDummy
	opFetchHighXFixed             // as opFetchHighX, but never inserts a dummy (paired with a static one in the table)
	opFetchHighYFixed             // as opFetchHighY, but never inserts a dummy (paired with a static one in the table)
	opDummy                       // consumes a cycle; no effect
	opAddXToPtr                   // tempPtr = (tempAddr+X) & 0xFF
	opFetchPtrLowIndexed          // tempAddr = read(tempPtr)            -- (Indirect,X)
	opFetchPtrHighIndexed         // tempAddr |= read((tempPtr+1)&0xFF)<<8 -- (Indirect,X)
	opFetchPtrLowIndirect         // tempPtr = read(tempAddr&0xFF)       -- (Indirect),Y
	opFetchPtrHighIndirectY       // tempAddr = (read((tempAddr&0xFF)+1 &0xFF)<<8|tempPtr) + Y; if it crosses a page, dynamically inserts opDummy
	opFetchPtrHighIndirectYFixed  // as opFetchPtrHighIndirectY, but never inserts a dummy

	// RMW read/write-back phases; operate on tempAddr/tempVal.
	opReadAddr  // tempVal = read(tempAddr)
	opWriteAddr // write(tempAddr, tempVal)

	// Instruction execution. instr identifies which mnemonic to run;
	// the actual semantics live in instr.go's apply* switches.
	opFetchImmediateAndExecRead // value := read(PC); PC++; applyRead(instr, value)
	opExecRead                  // value := read(tempAddr); applyRead(instr, value)
	opExecWrite                 // write(tempAddr, applyWrite(instr))
	opExecRMW                   // tempVal = applyRMW(instr, tempVal)
	opExecAccumulatorRMW        // A = applyRMW(instr, A)
	opExecImplied                // applyImplied(instr)

	// Branches.
	opFetchRelative // reads offset, computes tempAddr, conditionally enqueues opTakeBranch
	opTakeBranch     // PC = tempAddr; conditionally enqueues opDummy for a page-cross

	// Jumps.
	opFetchHighAndJump      // JMP absolute: tempAddr's high byte fetched and PC jumps, same cycle
	opReadIndirectLow       // JMP indirect: tempVal = read(tempAddr)   (tempAddr holds the pointer)
	opReadIndirectHighAndJump // JMP indirect: applies the page-wrap bug, then PC jumps

	// JSR / RTS / BRK / RTI stack discipline.
	opPushPCH              // push(PC >> 8)
	opPushPCL              // push(PC & 0xFF)
	opFetchHighAndJumpPC   // JSR's final cycle: read PC's high byte and jump (no increment folded in)
	opIncrementSP          // SP++
	opPullByte             // v := read(stack); SP++; tempVal = v  (a pull with one more pull to follow)
	opPullStatusAdvance    // v := read(stack); SP++; loadStatus(v)  (RTI's status pull; one more pull follows)
	opPullPCHBuildAddr     // hi := read(stack); tempAddr = hi<<8|tempVal        -- RTS, PC not yet set
	opIncrementPCFromAddr  // PC = tempAddr + 1                                  -- RTS's final cycle
	opPullPCHFinalRTI      // hi := read(stack); PC = hi<<8|tempVal  (no +1)
	opPushStatusForBRK     // push(statusForPush())
	opIncrementPCOnly      // PC++ (BRK's padding-byte skip)
	opFetchVectorLow       // tempVal = read(vectorAddr)
	opFetchVectorHighAndJump // hi := read(vectorAddr+1); PC = hi<<8|tempVal; running = false

	// PHA / PHP / PLA / PLP.
	opPushA
	opPushStatusForPHP
	opPullAFinal      // v := read(stack); A = v; SetZN(v)
	opPullStatusFinalPLP
)

// microOp is the queue's element type. instr and vectorAddr are the only
// payload fields any kind needs.
type microOp struct {
	kind       microOpKind
	instr      instrID
	vectorAddr uint16
}
