package cpu

import "fmt"

// Tick advances the Cpu by exactly one clock cycle: either it executes the
// micro-op at the front of the queue, or, when the queue has just drained,
// it fires the instruction-boundary hook and fetches + decodes the next
// opcode (itself the instruction's first cycle).
func (c *Cpu) Tick() {
	if !c.running {
		return
	}
	if c.queue.empty() {
		if c.hook != nil {
			c.hook(c)
		}
		c.fetchAndDecode()
		return
	}
	c.run(c.queue.popFront())
}

// fetchAndDecode reads the opcode at PC, advances PC past it, and enqueues
// the micro-op sequence the decoder built for it. An opcode with no decode
// table entry is fatal: it panics with *UnimplementedOpcodeError rather
// than silently treating the byte as a NOP.
func (c *Cpu) fetchAndDecode() {
	opcode := c.Mem.Read(c.PC)
	c.currentOpcode = opcode
	c.PC++

	seq, ok := decodeTable[opcode]
	if !ok {
		panic(&UnimplementedOpcodeError{Opcode: opcode, PC: c.PC - 1})
	}
	for _, op := range seq {
		c.queue.pushBack(op)
	}
}

// run executes a single micro-op. This is the one place addressing-mode
// and instruction semantics meet; every case is self-contained and touches
// only the scratch latches, registers, PC, memory, and (for page-cross and
// taken-branch cycles) the micro-op queue.
func (c *Cpu) run(op microOp) {
	switch op.kind {
	case opFetchLow:
		c.tempAddr = uint16(c.Mem.Read(c.PC))
		c.PC++
	case opAddXToZP:
		c.tempAddr = uint16(byte(c.tempAddr) + c.X)
	case opAddYToZP:
		c.tempAddr = uint16(byte(c.tempAddr) + c.Y)
	case opFetchHigh:
		hi := c.Mem.Read(c.PC)
		c.PC++
		c.tempAddr = uint16(hi)<<8 | (c.tempAddr & 0xFF)
	case opFetchHighX:
		c.fetchHighIndexed(c.X, true)
	case opFetchHighY:
		c.fetchHighIndexed(c.Y, true)
	case opFetchHighXFixed:
		c.fetchHighIndexed(c.X, false)
	case opFetchHighYFixed:
		c.fetchHighIndexed(c.Y, false)
	case opDummy:
		// consumes a cycle, nothing else
	case opAddXToPtr:
		c.tempPtr = uint16(byte(c.tempAddr) + c.X)
	case opFetchPtrLowIndexed:
		c.tempAddr = uint16(c.Mem.Read(c.tempPtr))
	case opFetchPtrHighIndexed:
		hiAddr := (c.tempPtr + 1) & 0xFF
		hi := c.Mem.Read(hiAddr)
		c.tempAddr |= uint16(hi) << 8
	case opFetchPtrLowIndirect:
		ptr := uint16(byte(c.tempAddr))
		c.tempPtr = uint16(c.Mem.Read(ptr))
	case opFetchPtrHighIndirectY:
		c.fetchPtrHighIndirectY(true)
	case opFetchPtrHighIndirectYFixed:
		c.fetchPtrHighIndirectY(false)
	case opReadAddr:
		c.tempVal = c.Mem.Read(c.tempAddr)
	case opWriteAddr:
		c.Mem.Write(c.tempAddr, c.tempVal)
	case opFetchImmediateAndExecRead:
		v := c.Mem.Read(c.PC)
		c.PC++
		c.applyRead(op.instr, v)
	case opExecRead:
		v := c.Mem.Read(c.tempAddr)
		c.applyRead(op.instr, v)
	case opExecWrite:
		c.Mem.Write(c.tempAddr, c.applyWrite(op.instr))
	case opExecRMW:
		c.tempVal = c.applyRMW(op.instr, c.tempVal)
	case opExecAccumulatorRMW:
		c.A = c.applyRMW(op.instr, c.A)
	case opExecImplied:
		c.applyImplied(op.instr)
	case opFetchRelative:
		c.fetchRelative(op.instr)
	case opTakeBranch:
		c.takeBranch()
	case opFetchHighAndJump:
		hi := c.Mem.Read(c.PC)
		c.PC++
		c.PC = uint16(hi)<<8 | (c.tempAddr & 0xFF)
	case opReadIndirectLow:
		c.tempVal = c.Mem.Read(c.tempAddr)
	case opReadIndirectHighAndJump:
		var hiAddr uint16
		if byte(c.tempAddr) == 0xFF {
			hiAddr = c.tempAddr & 0xFF00
		} else {
			hiAddr = c.tempAddr + 1
		}
		hi := c.Mem.Read(hiAddr)
		c.PC = uint16(hi)<<8 | uint16(c.tempVal)
	case opPushPCH:
		c.push(byte(c.PC >> 8))
	case opPushPCL:
		c.push(byte(c.PC & 0xFF))
	case opFetchHighAndJumpPC:
		hi := c.Mem.Read(c.PC)
		c.PC = uint16(hi)<<8 | (c.tempAddr & 0xFF)
	case opIncrementSP:
		c.SP++
	case opPullByte:
		c.tempVal = c.Mem.Read(StackBase | uint16(c.SP))
		c.SP++
	case opPullStatusAdvance:
		v := c.Mem.Read(StackBase | uint16(c.SP))
		c.SP++
		c.loadStatus(v)
	case opPullPCHBuildAddr:
		hi := c.Mem.Read(StackBase | uint16(c.SP))
		c.tempAddr = uint16(hi)<<8 | uint16(c.tempVal)
	case opIncrementPCFromAddr:
		c.PC = c.tempAddr + 1
	case opPullPCHFinalRTI:
		hi := c.Mem.Read(StackBase | uint16(c.SP))
		c.PC = uint16(hi)<<8 | uint16(c.tempVal)
	case opPushStatusForBRK:
		c.push(c.statusForPush())
	case opIncrementPCOnly:
		c.PC++
	case opFetchVectorLow:
		c.tempVal = c.Mem.Read(op.vectorAddr)
	case opFetchVectorHighAndJump:
		hi := c.Mem.Read(op.vectorAddr + 1)
		c.PC = uint16(hi)<<8 | uint16(c.tempVal)
		c.running = false
	case opPushA:
		c.push(c.A)
	case opPushStatusForPHP:
		c.push(c.statusForPush())
	case opPullAFinal:
		v := c.Mem.Read(StackBase | uint16(c.SP))
		c.A = v
		c.SetZN(v)
	case opPullStatusFinalPLP:
		v := c.Mem.Read(StackBase | uint16(c.SP))
		c.loadStatus(v)
	default:
		panic(fmt.Sprintf("cpu: unhandled micro-op kind %d", op.kind))
	}
}

// fetchHighIndexed builds an indexed absolute effective address
// from the high byte at PC plus the low byte already latched in tempAddr.
// When dynamic is true (Read-class addressing), a page-crossing carry
// splices an extra cycle in front of the queue right now; when false
// (Write/RMW-class), the caller's decode sequence already has a static
// dummy cycle for that case and this must not add a second one.
func (c *Cpu) fetchHighIndexed(index byte, dynamic bool) {
	hi := c.Mem.Read(c.PC)
	c.PC++
	base := uint16(hi)<<8 | (c.tempAddr & 0xFF)
	newAddr := base + uint16(index)
	c.pageCrossed = (newAddr & 0xFF00) != (base & 0xFF00)
	c.tempAddr = newAddr
	if dynamic && c.pageCrossed {
		c.queue.pushFront(microOp{kind: opDummy})
	}
	// The penalty cycle this just enqueued is what actually consumes the
	// crossing -- the latch itself only needed to live long enough to
	// decide that. Per invariant I3, clear it here rather than leaving a
	// stale true visible to ScratchState() for the rest of the instruction.
	c.pageCrossed = false
}

// fetchPtrHighIndirectY finishes building the (Indirect),Y effective
// address: the zero-page pointer lives in tempAddr's low byte, its fetched
// low byte of the target in tempPtr.
func (c *Cpu) fetchPtrHighIndirectY(dynamic bool) {
	ptr := uint16(byte(c.tempAddr))
	hiAddr := (ptr + 1) & 0xFF
	hi := c.Mem.Read(hiAddr)
	base := uint16(hi)<<8 | c.tempPtr
	newAddr := base + uint16(c.Y)
	c.pageCrossed = (newAddr & 0xFF00) != (base & 0xFF00)
	c.tempAddr = newAddr
	if dynamic && c.pageCrossed {
		c.queue.pushFront(microOp{kind: opDummy})
	}
	c.pageCrossed = false
}

// fetchRelative reads a branch's signed offset and latches the target
// address in tempAddr, then enqueues the cycle that actually takes the
// branch only if its condition currently holds -- the not-taken case ends
// the instruction in 2 cycles flat.
func (c *Cpu) fetchRelative(instr instrID) {
	offset := int8(c.Mem.Read(c.PC))
	c.PC++
	c.tempAddr = uint16(int32(c.PC) + int32(offset))
	if c.branchTaken(instr) {
		c.queue.pushBack(microOp{kind: opTakeBranch})
	}
}

// takeBranch commits PC to the branch target latched by fetchRelative, and
// splices in one more cycle if doing so crosses a page boundary.
func (c *Cpu) takeBranch() {
	oldPC := c.PC
	c.PC = c.tempAddr
	if (oldPC & 0xFF00) != (c.PC & 0xFF00) {
		c.queue.pushFront(microOp{kind: opDummy})
	}
}
