package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	m := New()
	m.Write(0x0200, 0x42)
	assert.Equal(t, byte(0x42), m.Read(0x0200))
	assert.Equal(t, byte(0), m.Read(0x0201))
}

func TestU16RoundTrip(t *testing.T) {
	m := New()
	m.WriteU16(0xFFFC, 0x8000)
	assert.Equal(t, byte(0x00), m.Read(0xFFFC))
	assert.Equal(t, byte(0x80), m.Read(0xFFFD))
	assert.Equal(t, uint16(0x8000), m.ReadU16(0xFFFC))
}

func TestU16WrapsAtTopOfAddressSpace(t *testing.T) {
	m := New()
	m.Write(0xFFFF, 0x34)
	m.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), m.ReadU16(0xFFFF))
}

func TestLoadAt(t *testing.T) {
	m := New()
	m.LoadAt(0x8000, []byte{0xA9, 0xC0, 0xAA})
	assert.Equal(t, byte(0xA9), m.Read(0x8000))
	assert.Equal(t, byte(0xC0), m.Read(0x8001))
	assert.Equal(t, byte(0xAA), m.Read(0x8002))
}

func TestZeroInitialized(t *testing.T) {
	m := New()
	for _, addr := range []uint16{0, 0x1234, 0xFFFF} {
		assert.Equal(t, byte(0), m.Read(addr))
	}
}
