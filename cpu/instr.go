package cpu

import "fmt"

// instrID names a mnemonic independently of its addressing mode. decode.go
// pairs an instrID with a micro-op sequence built for a particular
// addressing mode; the apply* switches below give each Read/Write/RMW/
// Implied instrID its semantics. Branches and the stack-discipline
// instructions (JSR/RTS/BRK/RTI/JMP/PHx/PLx) don't go through apply* at
// all -- their micro-op kinds already encode the full behavior.
type instrID int

const (
	instrNone instrID = iota

	// Read class
	instrLDA
	instrLDX
	instrLDY
	instrAND
	instrORA
	instrEOR
	instrADC
	instrSBC
	instrCMP
	instrCPX
	instrCPY
	instrBIT

	// Write class
	instrSTA
	instrSTX
	instrSTY

	// Read-modify-write class
	instrASL
	instrLSR
	instrROL
	instrROR
	instrINC
	instrDEC

	// Implied/register class
	instrTAX
	instrTAY
	instrTXA
	instrTYA
	instrTSX
	instrTXS
	instrINX
	instrINY
	instrDEX
	instrDEY
	instrCLC
	instrSEC
	instrCLI
	instrSEI
	instrCLD
	instrSED
	instrCLV
	instrNOP

	// Branches (condition tested by branchTaken)
	instrBCC
	instrBCS
	instrBEQ
	instrBNE
	instrBPL
	instrBMI
	instrBVC
	instrBVS

	// Control transfer / stack, handled directly by dedicated micro-ops
	instrJMP
	instrJMPIndirect
	instrJSR
	instrRTS
	instrBRK
	instrRTI
	instrPHA
	instrPHP
	instrPLA
	instrPLP
)

// applyRead executes a Read-class instruction against a value already
// fetched from memory (or from the instruction stream, for immediate mode).
func (c *Cpu) applyRead(instr instrID, value byte) {
	switch instr {
	case instrLDA:
		c.A = value
		c.SetZN(c.A)
	case instrLDX:
		c.X = value
		c.SetZN(c.X)
	case instrLDY:
		c.Y = value
		c.SetZN(c.Y)
	case instrAND:
		c.A &= value
		c.SetZN(c.A)
	case instrORA:
		c.A |= value
		c.SetZN(c.A)
	case instrEOR:
		c.A ^= value
		c.SetZN(c.A)
	case instrADC:
		c.A = c.adc(c.A, value)
	case instrSBC:
		c.A = c.sbc(c.A, value)
	case instrCMP:
		c.compare(c.A, value)
	case instrCPX:
		c.compare(c.X, value)
	case instrCPY:
		c.compare(c.Y, value)
	case instrBIT:
		c.bit(c.A, value)
	default:
		panic(fmt.Sprintf("cpu: %d is not a Read-class instruction", instr))
	}
}

// applyWrite computes the value a Write-class instruction sends to memory.
func (c *Cpu) applyWrite(instr instrID) byte {
	switch instr {
	case instrSTA:
		return c.A
	case instrSTX:
		return c.X
	case instrSTY:
		return c.Y
	default:
		panic(fmt.Sprintf("cpu: %d is not a Write-class instruction", instr))
	}
}

// applyRMW computes the new value a read-modify-write instruction writes
// back, updating flags as a side effect.
func (c *Cpu) applyRMW(instr instrID, value byte) byte {
	switch instr {
	case instrASL:
		return c.asl(value)
	case instrLSR:
		return c.lsr(value)
	case instrROL:
		return c.rol(value)
	case instrROR:
		return c.ror(value)
	case instrINC:
		result := value + 1
		c.SetZN(result)
		return result
	case instrDEC:
		result := value - 1
		c.SetZN(result)
		return result
	default:
		panic(fmt.Sprintf("cpu: %d is not an RMW-class instruction", instr))
	}
}

// applyImplied executes an instruction that needs no addressing mode at all.
func (c *Cpu) applyImplied(instr instrID) {
	switch instr {
	case instrTAX:
		c.X = c.A
		c.SetZN(c.X)
	case instrTAY:
		c.Y = c.A
		c.SetZN(c.Y)
	case instrTXA:
		c.A = c.X
		c.SetZN(c.A)
	case instrTYA:
		c.A = c.Y
		c.SetZN(c.A)
	case instrTSX:
		c.X = c.SP
		c.SetZN(c.X)
	case instrTXS:
		c.SP = c.X
	case instrINX:
		c.X++
		c.SetZN(c.X)
	case instrINY:
		c.Y++
		c.SetZN(c.Y)
	case instrDEX:
		c.X--
		c.SetZN(c.X)
	case instrDEY:
		c.Y--
		c.SetZN(c.Y)
	case instrCLC:
		c.SetCarry(false)
	case instrSEC:
		c.SetCarry(true)
	case instrCLI:
		c.SetInterrupt(false)
	case instrSEI:
		c.SetInterrupt(true)
	case instrCLD:
		c.SetDecimal(false)
	case instrSED:
		c.SetDecimal(true)
	case instrCLV:
		c.SetOverflow(false)
	case instrNOP:
		// no effect
	default:
		panic(fmt.Sprintf("cpu: %d is not an Implied-class instruction", instr))
	}
}

// branchTaken reports whether a branch instruction's condition currently
// holds.
func (c *Cpu) branchTaken(instr instrID) bool {
	switch instr {
	case instrBCC:
		return !c.Carry()
	case instrBCS:
		return c.Carry()
	case instrBEQ:
		return c.Zero()
	case instrBNE:
		return !c.Zero()
	case instrBPL:
		return !c.Negative()
	case instrBMI:
		return c.Negative()
	case instrBVC:
		return !c.Overflow()
	case instrBVS:
		return c.Overflow()
	default:
		panic(fmt.Sprintf("cpu: %d is not a branch instruction", instr))
	}
}
