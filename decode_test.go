package rvcodec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmmilewski/rvcodec"
)

// Scenarios S1, S3, S4, S8 from spec.md §8, asserted literally.
func TestDecodeNormalScenarios(t *testing.T) {
	t.Run("S1 nop", func(t *testing.T) {
		inst, err := rvcodec.DecodeNormal(0x00000013, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, rvcodec.NewAddi(rvcodec.X0, rvcodec.X0, rvcodec.ImmZero), inst)
		assert.Equal(t, "nop", inst.String())
	})

	t.Run("S3 auipc", func(t *testing.T) {
		inst, err := rvcodec.DecodeNormal(0x0000a317, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, rvcodec.NewAuipc(rvcodec.T1, rvcodec.NewUImm(0x0000a000)), inst)
		assert.False(t, rvcodec.FirstByteIsCompressed(0x17))
	})

	t.Run("S4 ret", func(t *testing.T) {
		inst, err := rvcodec.DecodeNormal(0x00008067, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, rvcodec.NewJalr(rvcodec.X0, rvcodec.Ra, rvcodec.ImmZero), inst)
		assert.Equal(t, "ret", inst.String())
	})

	t.Run("S8 unimp is illegal", func(t *testing.T) {
		_, err := rvcodec.DecodeNormal(0xC0001073, rvcodec.Rv32)
		require.Error(t, err)
		var de *rvcodec.DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "unimp instruction", de.Field)
	})
}

func TestDecodeNormalBaseFamilies(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		xlen rvcodec.XLEN
		want rvcodec.Inst
	}{
		{"add", 0x003100b3, rvcodec.Rv32, rvcodec.NewAdd(rvcodec.X1, rvcodec.X2, rvcodec.X3)},
		{"sub", 0x403100b3, rvcodec.Rv32, rvcodec.NewSub(rvcodec.X1, rvcodec.X2, rvcodec.X3)},
		{"mul", 0x023100b3, rvcodec.Rv32, rvcodec.NewMul(rvcodec.X1, rvcodec.X2, rvcodec.X3)},
		{"and", 0x003170b3, rvcodec.Rv32, rvcodec.NewAnd(rvcodec.X1, rvcodec.X2, rvcodec.X3)},
		{"beq", 0x00208463, rvcodec.Rv32, rvcodec.NewBeq(rvcodec.X1, rvcodec.X2, rvcodec.NewImm(8))},
		{"lw", 0x0040a083, rvcodec.Rv32, rvcodec.NewLw(rvcodec.X1, rvcodec.X1, rvcodec.NewImm(4))},
		{"sw", 0x0020a223, rvcodec.Rv32, rvcodec.NewSw(rvcodec.X2, rvcodec.X1, rvcodec.NewImm(4))},
		{"ecall", 0x00000073, rvcodec.Rv32, rvcodec.NewEcall()},
		{"ebreak", 0x00100073, rvcodec.Rv32, rvcodec.NewEbreak()},
		{"csrrw", 0x34111073, rvcodec.Rv32, rvcodec.NewCsrrw(rvcodec.X0, rvcodec.Mepc, rvcodec.X2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rvcodec.DecodeNormal(c.word, c.xlen)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDecodeNormalErrors(t *testing.T) {
	cases := []struct {
		name      string
		word      uint32
		wantField string
	}{
		{"bad opcode", 0x00000000, "opcode"},
		{"jalr bad funct3", 0x00009067, "JALR funct3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := rvcodec.DecodeNormal(c.word, rvcodec.Rv32)
			require.Error(t, err)
			var de *rvcodec.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, c.wantField, de.Field)
		})
	}
}

func TestDecodeAutoDetectsWidth(t *testing.T) {
	_, isCompressed, err := rvcodec.Decode(0x00000013, rvcodec.Rv32)
	require.NoError(t, err)
	assert.Equal(t, rvcodec.Uncompressed, isCompressed)

	_, isCompressed, err = rvcodec.Decode(0x00000001, rvcodec.Rv32)
	require.NoError(t, err)
	assert.Equal(t, rvcodec.Compressed, isCompressed)
}

func TestDecodeRV64OnlyRejectedOnRV32(t *testing.T) {
	_, err := rvcodec.DecodeNormal(0x0000b083, rvcodec.Rv32) // ld x1, 0(x1)
	require.Error(t, err)
}

func TestLuiImmediateIsPreShifted(t *testing.T) {
	// lui t1, 0xa -> raw imm bits 0xa, stored shifted by 12 (P4).
	inst, err := rvcodec.DecodeNormal(0x0000a337, rvcodec.Rv32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xa), inst.Imm().AsU32()>>12)
}

// Decoding a short instruction stream should produce exactly the
// expected listing; cmp.Diff gives a readable field-level diff on
// mismatch instead of testify's single pass/fail.
func TestDecodeNormalListing(t *testing.T) {
	words := []uint32{0x00000013, 0x0000a317, 0x00008067, 0x003100b3}
	want := []rvcodec.Inst{
		rvcodec.NewAddi(rvcodec.X0, rvcodec.X0, rvcodec.ImmZero),
		rvcodec.NewAuipc(rvcodec.T1, rvcodec.NewUImm(0x0000a000)),
		rvcodec.NewJalr(rvcodec.X0, rvcodec.Ra, rvcodec.ImmZero),
		rvcodec.NewAdd(rvcodec.X1, rvcodec.X2, rvcodec.X3),
	}

	got := make([]rvcodec.Inst, len(words))
	for i, w := range words {
		inst, err := rvcodec.DecodeNormal(w, rvcodec.Rv32)
		require.NoError(t, err)
		got[i] = inst
	}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(rvcodec.Inst{})); diff != "" {
		t.Errorf("decoded listing mismatch (-want +got):\n%s", diff)
	}
}
