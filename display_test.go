package rvcodec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmmilewski/rvcodec"
)

func TestStringPseudoInstructions(t *testing.T) {
	cases := []struct {
		name string
		inst rvcodec.Inst
		want string
	}{
		{"nop", rvcodec.NewAddi(rvcodec.X0, rvcodec.X0, rvcodec.ImmZero), "nop"},
		{"li", rvcodec.NewAddi(rvcodec.A0, rvcodec.X0, rvcodec.NewImm(42)), "li a0, 42"},
		{"mv", rvcodec.NewAddi(rvcodec.A0, rvcodec.A1, rvcodec.ImmZero), "mv a0, a1"},
		{"addi", rvcodec.NewAddi(rvcodec.A0, rvcodec.A1, rvcodec.NewImm(3)), "addi a0, a1, 3"},
		{"sext.w", rvcodec.NewAddiw(rvcodec.A0, rvcodec.A1, rvcodec.ImmZero), "sext.w a0, a1"},
		{"addiw", rvcodec.NewAddiw(rvcodec.A0, rvcodec.A1, rvcodec.NewImm(3)), "addiw a0, a1, 3"},
		{"j", rvcodec.NewJal(rvcodec.X0, rvcodec.NewImm(16)), "j 16"},
		{"jal", rvcodec.NewJal(rvcodec.Ra, rvcodec.NewImm(16)), "jal ra, 16"},
		{"ret", rvcodec.NewJalr(rvcodec.X0, rvcodec.Ra, rvcodec.ImmZero), "ret"},
		{"jalr", rvcodec.NewJalr(rvcodec.Ra, rvcodec.A0, rvcodec.NewImm(4)), "jalr ra, 4(a0)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.inst.String())
		})
	}
}

func TestStringFence(t *testing.T) {
	cases := []struct {
		name string
		f    rvcodec.Fence
		want string
	}{
		{"tso", rvcodec.Fence{FM: 0b1000, Pred: rvcodec.FenceSet{R: true, W: true}, Succ: rvcodec.FenceSet{R: true, W: true}}, "fence.tso"},
		{"pause", rvcodec.Fence{Pred: rvcodec.FenceSet{W: true}, Succ: rvcodec.FenceSet{}}, "pause"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, rvcodec.NewFence(c.f).String())
		})
	}
}

func TestStringFormats(t *testing.T) {
	cases := []struct {
		name string
		inst rvcodec.Inst
		want string
	}{
		{
			"r-type",
			rvcodec.NewAdd(rvcodec.A0, rvcodec.A1, rvcodec.A2),
			fmt.Sprintf("add %s, %s, %s", rvcodec.A0, rvcodec.A1, rvcodec.A2),
		},
		{
			"u-type",
			rvcodec.NewLui(rvcodec.A0, rvcodec.NewUImm(0x1000)),
			fmt.Sprintf("lui %s, %#x", rvcodec.A0, 1),
		},
		{
			"load",
			rvcodec.NewLw(rvcodec.A0, rvcodec.A1, rvcodec.NewImm(-8)),
			fmt.Sprintf("lw %s, -8(%s)", rvcodec.A0, rvcodec.A1),
		},
		{
			"store",
			rvcodec.NewSw(rvcodec.A0, rvcodec.A1, rvcodec.NewImm(8)),
			fmt.Sprintf("sw %s, 8(%s)", rvcodec.A0, rvcodec.A1),
		},
		{
			"branch",
			rvcodec.NewBeq(rvcodec.A0, rvcodec.A1, rvcodec.NewImm(-4)),
			fmt.Sprintf("beq %s, %s, -4", rvcodec.A0, rvcodec.A1),
		},
		{
			"csr reg",
			rvcodec.NewCsrrw(rvcodec.A0, rvcodec.Mepc, rvcodec.A1),
			fmt.Sprintf("csrrw %s, mepc, %s", rvcodec.A0, rvcodec.A1),
		},
		{
			"csr imm",
			rvcodec.NewCsrrwi(rvcodec.A0, rvcodec.Mepc, 5),
			fmt.Sprintf("csrrwi %s, mepc, 5", rvcodec.A0),
		},
		{
			"amo lr",
			rvcodec.NewLrW(rvcodec.A0, rvcodec.A1, rvcodec.Relaxed),
			fmt.Sprintf("lr.w %s, (%s)", rvcodec.A0, rvcodec.A1),
		},
		{
			"amo op with ordering",
			rvcodec.NewAmoW(rvcodec.A0, rvcodec.A1, rvcodec.A2, rvcodec.SeqCst, rvcodec.AmoAdd),
			fmt.Sprintf("amoadd.w.aqrl %s, %s, (%s)", rvcodec.A0, rvcodec.A2, rvcodec.A1),
		},
		{
			"fload",
			rvcodec.NewFlw(rvcodec.Fa0, rvcodec.A1, rvcodec.NewImm(4)),
			fmt.Sprintf("flw %s, 4(%s)", rvcodec.Fa0, rvcodec.A1),
		},
		{
			"fcvt to int with rm",
			rvcodec.NewFcvtWS(rvcodec.A0, rvcodec.Fa1, rvcodec.RTZ),
			fmt.Sprintf("fcvt.w.s %s, %s, rtz", rvcodec.A0, rvcodec.Fa1),
		},
		{
			"fcvt to int dynamic elides rm",
			rvcodec.NewFcvtWS(rvcodec.A0, rvcodec.Fa1, rvcodec.Dynamic),
			fmt.Sprintf("fcvt.w.s %s, %s", rvcodec.A0, rvcodec.Fa1),
		},
		{
			"fmv to int",
			rvcodec.NewFmvXW(rvcodec.A0, rvcodec.Fa1),
			fmt.Sprintf("fmv.x.w %s, %s", rvcodec.A0, rvcodec.Fa1),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.inst.String())
		})
	}
}
