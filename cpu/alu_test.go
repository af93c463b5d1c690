package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nescycle/mem"
)

func newTestCpu() *Cpu {
	c := New(mem.New())
	c.Reset()
	return c
}

func TestAdcSetsCarryAndOverflow(t *testing.T) {
	for _, tt := range []struct {
		name           string
		a, m           byte
		carryIn        bool
		wantSum        byte
		wantCarry      bool
		wantOverflow   bool
	}{
		{"no overflow", 0x10, 0x20, false, 0x30, false, false},
		{"unsigned carry, no signed overflow", 0xFF, 0x01, false, 0x00, true, false},
		{"signed overflow, positive+positive", 0x50, 0x50, false, 0xA0, false, true},
		{"signed overflow, negative+negative", 0x90, 0x90, false, 0x20, true, true},
		{"carry in propagates", 0x01, 0x01, true, 0x03, false, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCpu()
			c.SetCarry(tt.carryIn)
			got := c.adc(tt.a, tt.m)
			assert.Equal(t, tt.wantSum, got)
			assert.Equal(t, tt.wantCarry, c.Carry())
			assert.Equal(t, tt.wantOverflow, c.Overflow())
		})
	}
}

func TestSbcIsAdcWithComplement(t *testing.T) {
	c := newTestCpu()
	c.SetCarry(true) // no borrow
	got := c.sbc(0x50, 0x10)
	assert.Equal(t, byte(0x40), got)
	assert.True(t, c.Carry())
}

func TestCompareSetsCarryOnGreaterOrEqual(t *testing.T) {
	c := newTestCpu()
	c.compare(0x10, 0x10)
	assert.True(t, c.Carry())
	assert.True(t, c.Zero())

	c.compare(0x05, 0x10)
	assert.False(t, c.Carry())
	assert.False(t, c.Zero())
}

func TestAslShiftsAndSetsCarryFromBit7(t *testing.T) {
	c := newTestCpu()
	got := c.asl(0x81)
	assert.Equal(t, byte(0x02), got)
	assert.True(t, c.Carry())
}

func TestLsrShiftsAndSetsCarryFromBit0(t *testing.T) {
	c := newTestCpu()
	got := c.lsr(0x03)
	assert.Equal(t, byte(0x01), got)
	assert.True(t, c.Carry())
}

func TestRolRotatesThroughCarry(t *testing.T) {
	c := newTestCpu()
	c.SetCarry(true)
	got := c.rol(0x80)
	assert.Equal(t, byte(0x01), got)
	assert.True(t, c.Carry())
}

func TestRorRotatesThroughCarry(t *testing.T) {
	c := newTestCpu()
	c.SetCarry(true)
	got := c.ror(0x01)
	assert.Equal(t, byte(0x80), got)
	assert.True(t, c.Carry())
}

func TestBitSetsZNVFromOperandNotResult(t *testing.T) {
	c := newTestCpu()
	c.bit(0x0F, 0xC0)
	assert.True(t, c.Zero())
	assert.True(t, c.Negative())
	assert.True(t, c.Overflow())
}
