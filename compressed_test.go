package rvcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmmilewski/rvcodec"
)

// S2 from spec.md §8.
func TestDecodeCompressedScenarios(t *testing.T) {
	t.Run("S2 c.addi sp", func(t *testing.T) {
		inst, err := rvcodec.DecodeCompressed(0x1101, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, rvcodec.NewAddi(rvcodec.Sp, rvcodec.Sp, rvcodec.NewImm(-32)), inst)
	})
}

func TestDecodeCompressedQuadrants(t *testing.T) {
	cases := []struct {
		name string
		word uint16
		xlen rvcodec.XLEN
		want rvcodec.Inst
	}{
		{"c.lw", 0x4000, rvcodec.Rv32, rvcodec.NewLw(rvcodec.X8, rvcodec.X8, rvcodec.NewImm(0))},
		{"c.li", 0x4505, rvcodec.Rv32, rvcodec.NewAddi(rvcodec.X10, rvcodec.Zero, rvcodec.NewImm(1))},
		{"c.mv", 0x852e, rvcodec.Rv32, rvcodec.NewAdd(rvcodec.X10, rvcodec.Zero, rvcodec.X11)},
		{"c.jr", 0x8082, rvcodec.Rv32, rvcodec.NewJalr(rvcodec.Zero, rvcodec.Ra, rvcodec.ImmZero)},
		{"c.ebreak", 0x9002, rvcodec.Rv32, rvcodec.NewEbreak()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rvcodec.DecodeCompressed(c.word, c.xlen)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDecodeCompressedNullIsIllegal(t *testing.T) {
	_, err := rvcodec.DecodeCompressed(0x0000, rvcodec.Rv32)
	require.Error(t, err)
	var de *rvcodec.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "null instruction", de.Field)
}

func TestDecodeCompressedRV64OnlyRejectedOnRV32(t *testing.T) {
	_, err := rvcodec.DecodeCompressed(0x6000, rvcodec.Rv32) // c.ld
	require.Error(t, err)
}

func TestDecodeCompressedJalRV32VsAddiwRV64(t *testing.T) {
	// Quadrant 01, funct3=001: C.JAL on RV32, C.ADDIW on RV64.
	word := uint16(0x2005)

	rv32, err := rvcodec.DecodeCompressed(word, rvcodec.Rv32)
	require.NoError(t, err)
	assert.Equal(t, rvcodec.KindJal, rv32.Kind())

	rv64, err := rvcodec.DecodeCompressed(word, rvcodec.Rv64)
	require.NoError(t, err)
	assert.Equal(t, rvcodec.KindAddiw, rv64.Kind())
}

func TestDecodeCompressedReservedAddi4spnZero(t *testing.T) {
	// rd'=X9, all immediate source bits zero: nonzero word, reserved all-zero uimm.
	_, err := rvcodec.DecodeCompressed(0x0004, rvcodec.Rv32)
	require.Error(t, err)
	var de *rvcodec.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "uimm=0 for C.ADDISPN is reserved", de.Field)
}
