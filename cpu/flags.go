package cpu

import "nescycle/mask"

// Status register bit layout (mask.I1 is the MSB, mask.I8 the LSB):
//
//	bit:  7 6 5 4 3 2 1 0
//	flag: N V - B D I Z C
//
// Bit 5 is unused; real hardware always reads it as 1, but spec.md §3
// explicitly allows leaving the live in-register copy at 0, which is the
// choice made here (see DESIGN.md Open Question decisions). PHP and BRK
// set it to 1 in the byte they push, via statusForPush below.
var (
	flagN      = mask.I1
	flagV      = mask.I2
	flagUnused = mask.I3
	flagB      = mask.I4
	flagD      = mask.I5
	flagI      = mask.I6
	flagZ      = mask.I7
	flagC      = mask.I8
)

func (c *Cpu) Carry() bool     { return mask.IsSet(c.P, flagC) }
func (c *Cpu) Zero() bool      { return mask.IsSet(c.P, flagZ) }
func (c *Cpu) Interrupt() bool { return mask.IsSet(c.P, flagI) }
func (c *Cpu) Decimal() bool   { return mask.IsSet(c.P, flagD) }
func (c *Cpu) Break() bool     { return mask.IsSet(c.P, flagB) }
func (c *Cpu) Overflow() bool  { return mask.IsSet(c.P, flagV) }
func (c *Cpu) Negative() bool  { return mask.IsSet(c.P, flagN) }

func (c *Cpu) SetCarry(v bool) {
	c.P = mask.Unset(c.P, flagC, flagC)
	if v {
		c.P = mask.Set(c.P, flagC, 1)
	}
}

func (c *Cpu) SetZero(v bool) {
	c.P = mask.Unset(c.P, flagZ, flagZ)
	if v {
		c.P = mask.Set(c.P, flagZ, 1)
	}
}

func (c *Cpu) SetInterrupt(v bool) {
	c.P = mask.Unset(c.P, flagI, flagI)
	if v {
		c.P = mask.Set(c.P, flagI, 1)
	}
}

func (c *Cpu) SetDecimal(v bool) {
	c.P = mask.Unset(c.P, flagD, flagD)
	if v {
		c.P = mask.Set(c.P, flagD, 1)
	}
}

func (c *Cpu) SetBreak(v bool) {
	c.P = mask.Unset(c.P, flagB, flagB)
	if v {
		c.P = mask.Set(c.P, flagB, 1)
	}
}

func (c *Cpu) SetOverflow(v bool) {
	c.P = mask.Unset(c.P, flagV, flagV)
	if v {
		c.P = mask.Set(c.P, flagV, 1)
	}
}

func (c *Cpu) SetNegative(v bool) {
	c.P = mask.Unset(c.P, flagN, flagN)
	if v {
		c.P = mask.Set(c.P, flagN, 1)
	}
}

// SetZN sets the Zero flag when value is 0x00 and the Negative flag from
// bit 7 of value, clearing the opposite case in each -- the shared flag
// update used by nearly every load/transfer/arithmetic instruction.
func (c *Cpu) SetZN(value byte) {
	c.SetZero(value == 0)
	c.SetNegative(value&0x80 != 0)
}

// statusForPush returns P with bit 5 and the B flag forced to 1, the byte
// actually written to the stack by PHP and BRK. The live c.P is untouched.
func (c *Cpu) statusForPush() byte {
	p := c.P
	p = mask.Set(p, flagUnused, 1)
	p = mask.Set(p, flagB, 1)
	return p
}

// loadStatus installs a status byte pulled from the stack (PLP, RTI),
// clearing bit 5 and the B flag so the live register keeps the convention
// described atop this file regardless of what was pushed.
func (c *Cpu) loadStatus(v byte) {
	v = mask.Unset(v, flagUnused, flagUnused)
	v = mask.Unset(v, flagB, flagB)
	c.P = v
}
