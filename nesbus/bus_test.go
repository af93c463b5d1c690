package nesbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescycle/ines"
)

func nromROM(prg []byte) *ines.ROM {
	return &ines.ROM{Mapper: 0, PRG: prg}
}

func TestRamMirrorsAcrossFourBanks(t *testing.T) {
	b, err := New(nromROM(make([]byte, 0x4000)))
	require.NoError(t, err)

	b.Write(0x0001, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0801))
	assert.Equal(t, byte(0x42), b.Read(0x1001))
	assert.Equal(t, byte(0x42), b.Read(0x1801))
}

func TestPPURegisterReadReturnsZeroAndRecordsError(t *testing.T) {
	b, err := New(nromROM(make([]byte, 0x4000)))
	require.NoError(t, err)

	assert.Nil(t, b.LastPPUError())
	got := b.Read(0x2002)
	assert.Equal(t, byte(0), got)
	assert.ErrorIs(t, b.LastPPUError(), ErrPPUUnimplemented)
}

func TestPRGReadMirrorsA16KiBImageAcrossBothBanks(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xEA
	b, err := New(nromROM(prg))
	require.NoError(t, err)

	assert.Equal(t, byte(0xEA), b.Read(0x8000))
	assert.Equal(t, byte(0xEA), b.Read(0xC000))
}

func TestPRGReadDoesNotMirrorA32KiBImage(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0] = 0x11
	prg[0x4000] = 0x22
	b, err := New(nromROM(prg))
	require.NoError(t, err)

	assert.Equal(t, byte(0x11), b.Read(0x8000))
	assert.Equal(t, byte(0x22), b.Read(0xC000))
}

func TestNewRejectsUnsupportedMapper(t *testing.T) {
	_, err := New(&ines.ROM{Mapper: 4, PRG: make([]byte, 0x4000)})
	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}

func TestWriteToSRAMAndIORegionsAreIgnored(t *testing.T) {
	b, err := New(nromROM(make([]byte, 0x4000)))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		b.Write(0x4000, 0xFF)
		b.Write(0x6000, 0xFF)
	})
	assert.Equal(t, byte(0), b.Read(0x4000))
	assert.Equal(t, byte(0), b.Read(0x6000))
}
