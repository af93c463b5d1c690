package ines

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(flags6, flags7, prgBlocks, chrBlocks byte) []byte {
	h := make([]byte, headerSize)
	copy(h[0:4], magic[:])
	h[4] = prgBlocks
	h[5] = chrBlocks
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := header(0, 0, 1, 1)
	data[0] = 'X'
	_, err := Load(bytes.NewReader(append(data, make([]byte, prgBlockSize+chrBlockSize)...)))
	assert.ErrorIs(t, err, ErrNotINES)
}

func TestLoadRejectsNES20(t *testing.T) {
	data := header(0, flagNES2Value, 1, 1)
	_, err := Load(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrNES20Unsupported)
}

func TestLoadParsesPrgAndChrBanks(t *testing.T) {
	data := header(0, 0, 2, 1)
	prg := bytes.Repeat([]byte{0xAA}, prgBlockSize*2)
	chr := bytes.Repeat([]byte{0xBB}, chrBlockSize)
	data = append(data, prg...)
	data = append(data, chr...)

	rom, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, rom.PRG, prgBlockSize*2)
	assert.Len(t, rom.CHR, chrBlockSize)
	assert.Equal(t, byte(0xAA), rom.PRG[0])
	assert.Equal(t, byte(0xBB), rom.CHR[0])
}

func TestLoadHandlesCHRRAM(t *testing.T) {
	data := header(0, 0, 1, 0)
	data = append(data, make([]byte, prgBlockSize)...)

	rom, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, rom.CHR)
}

func TestLoadReadsTrainerWhenPresent(t *testing.T) {
	data := header(flagTrainer, 0, 1, 0)
	trainer := bytes.Repeat([]byte{0xCC}, trainerSize)
	data = append(data, trainer...)
	data = append(data, make([]byte, prgBlockSize)...)

	rom, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rom.Trainer, trainerSize)
	assert.Equal(t, byte(0xCC), rom.Trainer[0])
}

func TestMirroringPrecedence(t *testing.T) {
	for _, tt := range []struct {
		name   string
		flags6 byte
		want   Mirroring
	}{
		{"horizontal by default", 0, MirrorHorizontal},
		{"vertical bit set", flagMirrorVertical, MirrorVertical},
		{"four-screen wins over vertical", flagFourScreen | flagMirrorVertical, MirrorFourScreen},
		{"four-screen alone", flagFourScreen, MirrorFourScreen},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data := header(tt.flags6, 0, 1, 0)
			data = append(data, make([]byte, prgBlockSize)...)
			rom, err := Load(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rom.Mirroring)
		})
	}
}

func TestMapperNumberSplitsAcrossBothFlagBytes(t *testing.T) {
	data := header(0x10, 0x40, 1, 0) // low nibble from flags6>>4, high nibble from flags7&0xF0
	data = append(data, make([]byte, prgBlockSize)...)
	rom, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x41), rom.Mapper)
}
