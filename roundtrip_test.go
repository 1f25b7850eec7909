package rvcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lmmilewski/rvcodec"
)

// Known-good words, independently verified against DecodeNormal in
// decode_test.go: re-encoding what they decode to must reproduce the
// exact same word (spec.md §8 P2, canonical subspace).
func TestEncodeNormalInvertsDecodeNormal(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		xlen rvcodec.XLEN
	}{
		{"nop", 0x00000013, rvcodec.Rv32},
		{"auipc", 0x0000a317, rvcodec.Rv32},
		{"ret", 0x00008067, rvcodec.Rv32},
		{"add", 0x003100b3, rvcodec.Rv32},
		{"sub", 0x403100b3, rvcodec.Rv32},
		{"mul", 0x023100b3, rvcodec.Rv32},
		{"and", 0x003170b3, rvcodec.Rv32},
		{"beq", 0x00208463, rvcodec.Rv32},
		{"lw", 0x0040a083, rvcodec.Rv32},
		{"sw", 0x0020a223, rvcodec.Rv32},
		{"ecall", 0x00000073, rvcodec.Rv32},
		{"ebreak", 0x00100073, rvcodec.Rv32},
		{"csrrw", 0x34111073, rvcodec.Rv32},
		{"ld", 0x0000b083, rvcodec.Rv64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inst, err := rvcodec.DecodeNormal(c.word, c.xlen)
			require.NoError(t, err)
			assert.Equal(t, c.word, rvcodec.EncodeNormal(inst, c.xlen))
		})
	}
}

// One representative Inst per format, built via a public constructor,
// checked for encode -> decode -> equal Inst (the direction a codec
// consumer actually exercises: build, encode, ship, decode).
func TestRoundTripThroughEncodeDecode(t *testing.T) {
	cases := []struct {
		name string
		xlen rvcodec.XLEN
		inst rvcodec.Inst
	}{
		{"r-type", rvcodec.Rv32, rvcodec.NewAdd(rvcodec.X5, rvcodec.X6, rvcodec.X7)},
		{"i-type", rvcodec.Rv32, rvcodec.NewAddi(rvcodec.X5, rvcodec.X6, rvcodec.NewImm(-17))},
		{"load", rvcodec.Rv32, rvcodec.NewLb(rvcodec.X5, rvcodec.X6, rvcodec.NewImm(-4))},
		{"store", rvcodec.Rv32, rvcodec.NewSh(rvcodec.X5, rvcodec.X6, rvcodec.NewImm(100))},
		{"branch", rvcodec.Rv32, rvcodec.NewBlt(rvcodec.X5, rvcodec.X6, rvcodec.NewImm(-400))},
		{"u-type", rvcodec.Rv32, rvcodec.NewLui(rvcodec.X5, rvcodec.NewUImm(0xffffffffabcde000))},
		{"j-type", rvcodec.Rv32, rvcodec.NewJal(rvcodec.X5, rvcodec.NewImm(-1048576))},
		{"jalr", rvcodec.Rv32, rvcodec.NewJalr(rvcodec.X5, rvcodec.X6, rvcodec.NewImm(-2048))},
		{"slli rv32", rvcodec.Rv32, rvcodec.NewSlli(rvcodec.X5, rvcodec.X6, rvcodec.NewUImm(31))},
		{"slli rv64", rvcodec.Rv64, rvcodec.NewSlli(rvcodec.X5, rvcodec.X6, rvcodec.NewUImm(63))},
		{"addiw", rvcodec.Rv64, rvcodec.NewAddiw(rvcodec.X5, rvcodec.X6, rvcodec.NewImm(-5))},
		{"csrreg", rvcodec.Rv32, rvcodec.NewCsrrs(rvcodec.X5, rvcodec.Mcause, rvcodec.X6)},
		{"csrimm", rvcodec.Rv32, rvcodec.NewCsrrwi(rvcodec.X5, rvcodec.Mepc, 0x1f)},
		{"amo lr", rvcodec.Rv32, rvcodec.NewLrW(rvcodec.X5, rvcodec.X6, rvcodec.Relaxed)},
		{"amo sc", rvcodec.Rv32, rvcodec.NewScW(rvcodec.X5, rvcodec.X6, rvcodec.X7, rvcodec.SeqCst)},
		{"amo op", rvcodec.Rv32, rvcodec.NewAmoW(rvcodec.X5, rvcodec.X6, rvcodec.X7, rvcodec.Relaxed, rvcodec.AmoAdd)},
		{"fload", rvcodec.Rv32, rvcodec.NewFlw(rvcodec.F1, rvcodec.X6, rvcodec.NewImm(16))},
		{"fstore", rvcodec.Rv32, rvcodec.NewFsd(rvcodec.F1, rvcodec.X6, rvcodec.NewImm(-16))},
		{"fma", rvcodec.Rv32, rvcodec.NewFmaddS(rvcodec.F1, rvcodec.F2, rvcodec.F3, rvcodec.F4, rvcodec.Dynamic)},
		{"fr2", rvcodec.Rv32, rvcodec.NewFaddD(rvcodec.F1, rvcodec.F2, rvcodec.F3, rvcodec.RNE)},
		{"fr1", rvcodec.Rv32, rvcodec.NewFsqrtS(rvcodec.F1, rvcodec.F2, rvcodec.RTZ)},
		{"fsgnj", rvcodec.Rv32, rvcodec.NewFsgnjS(rvcodec.F1, rvcodec.F2, rvcodec.F3)},
		{"fcmp", rvcodec.Rv32, rvcodec.NewFeqD(rvcodec.X5, rvcodec.F2, rvcodec.F3)},
		{"fclass", rvcodec.Rv32, rvcodec.NewFclassS(rvcodec.X5, rvcodec.F2)},
		{"fcvt to int", rvcodec.Rv32, rvcodec.NewFcvtWS(rvcodec.X5, rvcodec.F2, rvcodec.RDN)},
		{"fcvt to float", rvcodec.Rv32, rvcodec.NewFcvtSW(rvcodec.F1, rvcodec.X6, rvcodec.RUP)},
		{"fcvt f-f", rvcodec.Rv32, rvcodec.NewFcvtDS(rvcodec.F1, rvcodec.F2, rvcodec.Dynamic)},
		{"fmv to int", rvcodec.Rv32, rvcodec.NewFmvXW(rvcodec.X5, rvcodec.F2)},
		{"fmv to float", rvcodec.Rv32, rvcodec.NewFmvWX(rvcodec.F1, rvcodec.X6)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			word := rvcodec.EncodeNormal(c.inst, c.xlen)
			got, err := rvcodec.DecodeNormal(word, c.xlen)
			require.NoError(t, err)
			assert.Equal(t, c.inst, got)
		})
	}
}

// P1: DecodeNormal never panics across the full 32-bit input space.
func TestDecodeNormalNeverPanics(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		word := rapid.Uint32().Draw(rt, "word")
		xlen := rvcodec.Rv32
		if rapid.Bool().Draw(rt, "rv64") {
			xlen = rvcodec.Rv64
		}
		assert.NotPanics(t, func() {
			_, _ = rvcodec.DecodeNormal(word, xlen)
		})
	})
}

// P1: DecodeCompressed never panics across the full 16-bit input space.
func TestDecodeCompressedNeverPanics(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		word := uint16(rapid.Uint32Range(0, 0xffff).Draw(rt, "word"))
		xlen := rvcodec.Rv32
		if rapid.Bool().Draw(rt, "rv64") {
			xlen = rvcodec.Rv64
		}
		assert.NotPanics(t, func() {
			_, _ = rvcodec.DecodeCompressed(word, xlen)
		})
	})
}

// P2: every R-type ALU instruction round-trips for arbitrary registers.
func TestRTypeRoundTripProperty(t *testing.T) {
	ctors := []func(rvcodec.Reg, rvcodec.Reg, rvcodec.Reg) rvcodec.Inst{
		rvcodec.NewAdd, rvcodec.NewSub, rvcodec.NewSll, rvcodec.NewSlt,
		rvcodec.NewSltu, rvcodec.NewXor, rvcodec.NewSrl, rvcodec.NewSra,
		rvcodec.NewOr, rvcodec.NewAnd, rvcodec.NewMul, rvcodec.NewDiv,
	}
	rapid.Check(t, func(rt *rapid.T) {
		ctor := ctors[rapid.IntRange(0, len(ctors)-1).Draw(rt, "ctor")]
		rd := rvcodec.Reg(rapid.IntRange(0, 31).Draw(rt, "rd"))
		rs1 := rvcodec.Reg(rapid.IntRange(0, 31).Draw(rt, "rs1"))
		rs2 := rvcodec.Reg(rapid.IntRange(0, 31).Draw(rt, "rs2"))
		inst := ctor(rd, rs1, rs2)

		word := rvcodec.EncodeNormal(inst, rvcodec.Rv32)
		got, err := rvcodec.DecodeNormal(word, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, inst, got)
	})
}

// P2: branch instructions round-trip for any even, in-range offset.
func TestBranchRoundTripProperty(t *testing.T) {
	ctors := []func(rvcodec.Reg, rvcodec.Reg, rvcodec.Imm) rvcodec.Inst{
		rvcodec.NewBeq, rvcodec.NewBne, rvcodec.NewBlt,
		rvcodec.NewBge, rvcodec.NewBltu, rvcodec.NewBgeu,
	}
	rapid.Check(t, func(rt *rapid.T) {
		ctor := ctors[rapid.IntRange(0, len(ctors)-1).Draw(rt, "ctor")]
		rs1 := rvcodec.Reg(rapid.IntRange(0, 31).Draw(rt, "rs1"))
		rs2 := rvcodec.Reg(rapid.IntRange(0, 31).Draw(rt, "rs2"))
		raw := rapid.IntRange(-4096, 4094).Draw(rt, "offset")
		off := rvcodec.NewImm(int64(raw) &^ 1)
		inst := ctor(rs1, rs2, off)

		word := rvcodec.EncodeNormal(inst, rvcodec.Rv32)
		got, err := rvcodec.DecodeNormal(word, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, inst, got)
	})
}

// P2: JAL round-trips for any even, 21-bit-signed-range offset.
func TestJalRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rd := rvcodec.Reg(rapid.IntRange(0, 31).Draw(rt, "rd"))
		raw := rapid.IntRange(-1048576, 1048574).Draw(rt, "offset")
		off := rvcodec.NewImm(int64(raw) &^ 1)
		inst := rvcodec.NewJal(rd, off)

		word := rvcodec.EncodeNormal(inst, rvcodec.Rv32)
		got, err := rvcodec.DecodeNormal(word, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, inst, got)
	})
}

// P4: LUI immediates are stored and round-tripped pre-shifted, always
// a multiple of 0x1000.
func TestUTypeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rd := rvcodec.Reg(rapid.IntRange(0, 31).Draw(rt, "rd"))
		hi20 := rapid.Uint32Range(0, 0xfffff).Draw(rt, "hi20")
		// DecodeNormal sign-extends the stored U-immediate into bits
		// 63..32, so the expected value must match, not just the low 32 bits.
		uimm := rvcodec.NewImm(int64(int32(hi20 << 12)))
		inst := rvcodec.NewLui(rd, uimm)

		word := rvcodec.EncodeNormal(inst, rvcodec.Rv32)
		got, err := rvcodec.DecodeNormal(word, rvcodec.Rv32)
		require.NoError(t, err)
		assert.Equal(t, inst, got)
		assert.Zero(t, got.Imm().AsU32()&0xfff)
	})
}
