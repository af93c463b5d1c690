package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescycle/mem"
)

// S1 -- Load/transfer/increment: A9 C0 AA E8 00.
func TestScenarioS1LoadTransferIncrement(t *testing.T) {
	c := newLoadedCpu(t, []byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00})
	c.Run()
	assert.Equal(t, byte(0xC0), c.A)
	assert.Equal(t, byte(0xC1), c.X)
	assert.True(t, c.Negative())
	assert.False(t, c.Zero())
}

// S2 -- LDA absolute,X page cross: BD FF 30 00, X=1, mem[0x3100]=0x55.
// Expect A=0x55, total cycles = 5 (4 + page-cross penalty).
func TestScenarioS2LdaAbsoluteXPageCross(t *testing.T) {
	c := newLoadedCpu(t, []byte{0xBD, 0xFF, 0x30, 0x00})
	c.X = 0x01
	c.Mem.Write(0x3100, 0x55)

	cycles := tickCount(t, c)
	assert.Equal(t, byte(0x55), c.A)
	assert.Equal(t, 5, cycles)
}

// S3 -- Zero-page wrap: F6 FF 00 (INC $FF,X), X=2, mem[0x01]=0x10.
// Expect mem[0x01]=0x11.
func TestScenarioS3ZeroPageWrap(t *testing.T) {
	c := newLoadedCpu(t, []byte{0xF6, 0xFF, 0x00})
	c.X = 0x02
	c.Mem.Write(0x01, 0x10)
	c.Run()
	assert.Equal(t, byte(0x11), c.Mem.Read(0x01))
}

// S4 -- Indexed indirect load: A1 50 00, X=2, mem[0x52]=0x23, mem[0x53]=0x65,
// mem[0x6523]=0x69. Expect A=0x69.
func TestScenarioS4IndexedIndirectLoad(t *testing.T) {
	c := newLoadedCpu(t, []byte{0xA1, 0x50, 0x00})
	c.X = 0x02
	c.Mem.Write(0x52, 0x23)
	c.Mem.Write(0x53, 0x65)
	c.Mem.Write(0x6523, 0x69)
	c.Run()
	assert.Equal(t, byte(0x69), c.A)
}

// S5 -- Indirect-indexed page cross: B1 50 00, Y=1, mem[0x50]=0xFF,
// mem[0x51]=0x12, mem[0x1300]=0xAB. Expect A=0xAB, cycle count = 6 (5 + 1).
func TestScenarioS5IndirectIndexedPageCross(t *testing.T) {
	c := newLoadedCpu(t, []byte{0xB1, 0x50, 0x00})
	c.Y = 0x01
	c.Mem.Write(0x50, 0xFF)
	c.Mem.Write(0x51, 0x12)
	c.Mem.Write(0x1300, 0xAB)

	cycles := tickCount(t, c)
	assert.Equal(t, byte(0xAB), c.A)
	assert.Equal(t, 6, cycles)
}

// S6 -- JSR/RTS round trip: a program at $0600 calls a subroutine that
// writes $42 to $0200 and returns; after RTS, PC is the instruction
// following JSR and SP is unchanged from before the call.
func TestScenarioS6JsrRtsRoundTrip(t *testing.T) {
	c := New(mem.New())

	// $0600: JSR $0610
	// $0603: BRK
	// $0610: LDA #$42 ; STA $0200 ; RTS
	LoadAt(c.Mem, 0x0600, []byte{0x20, 0x10, 0x06, 0x00})
	LoadAt(c.Mem, 0x0610, []byte{0xA9, 0x42, 0x8D, 0x00, 0x02, 0x60})
	WriteU16(c.Mem, ResetVector, 0x0600)
	c.Reset()

	spBeforeCall := c.SP

	// Run until the subroutine's RTS has retired and we're back at $0603,
	// the instruction right after JSR, but before BRK has fired.
	for c.PC != 0x0603 {
		require.True(t, c.Running())
		c.Tick()
	}

	assert.Equal(t, uint16(0x0603), c.PC)
	assert.Equal(t, spBeforeCall, c.SP)
	assert.Equal(t, byte(0x42), c.Mem.Read(0x0200))
}
