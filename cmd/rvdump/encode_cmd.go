package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmmilewski/rvcodec"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <mnemonic> <operands...>",
		Short: "Encode an assembler-style instruction into a hex word",
		Long: "Encode a single instruction given as a mnemonic followed by comma-separated\n" +
			"operands, e.g. `rvdump encode addi a0, a1, 10` or `rvdump encode lw a0, 4(sp)`.\n" +
			"Accepts the base integer loads, stores, branches, jumps and ALU ops\n" +
			"(addiw is the only RV64 *w form), the RV32M mnemonics, ecall, ebreak,\n" +
			"fence.i, and the nop/ret/mv/li aliases. A-extension, Zicsr, F/D and\n" +
			"fence mnemonics are not accepted.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xlen, err := parseXLEN(xlenStr)
			if err != nil {
				return err
			}
			inst, err := parseInst(strings.ToLower(args[0]), strings.Join(args[1:], " "))
			if err != nil {
				logger.Warn("encode failed", "mnemonic", args[0], "err", err)
				return err
			}
			word := rvcodec.EncodeNormal(inst, xlen)
			fmt.Fprintf(cmd.OutOrStdout(), "%#010x\n", word)
			return nil
		},
	}
	return cmd
}

func operands(rest string) []string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func reg(s string) (rvcodec.Reg, error) {
	r, ok := rvcodec.ParseReg(strings.TrimSpace(s))
	if !ok {
		return 0, fmt.Errorf("unrecognized integer register %q", s)
	}
	return r, nil
}

func imm(s string) (rvcodec.Imm, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("parse immediate %q: %w", s, err)
	}
	return rvcodec.NewImm(v), nil
}

// offsetBase parses the loads/stores "imm(base)" syntax.
func offsetBase(s string) (rvcodec.Imm, rvcodec.Reg, error) {
	open := strings.IndexByte(s, '(')
	shut := strings.IndexByte(s, ')')
	if open < 0 || shut < open {
		return 0, 0, fmt.Errorf("expected imm(base), got %q", s)
	}
	off, err := imm(s[:open])
	if err != nil {
		return 0, 0, err
	}
	base, err := reg(strings.TrimSpace(s[open+1 : shut]))
	if err != nil {
		return 0, 0, err
	}
	return off, base, nil
}

func parseInst(mnemonic, rest string) (rvcodec.Inst, error) {
	ops := operands(rest)

	r3 := func(ctor func(rvcodec.Reg, rvcodec.Reg, rvcodec.Reg) rvcodec.Inst) (rvcodec.Inst, error) {
		if len(ops) != 3 {
			return rvcodec.Inst{}, fmt.Errorf("%s wants 3 operands, got %d", mnemonic, len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		rs1, err := reg(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		rs2, err := reg(ops[2])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return ctor(rd, rs1, rs2), nil
	}
	rImm := func(ctor func(rvcodec.Reg, rvcodec.Reg, rvcodec.Imm) rvcodec.Inst) (rvcodec.Inst, error) {
		if len(ops) != 3 {
			return rvcodec.Inst{}, fmt.Errorf("%s wants 3 operands, got %d", mnemonic, len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		rs1, err := reg(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		i, err := imm(ops[2])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return ctor(rd, rs1, i), nil
	}
	load := func(ctor func(rvcodec.Reg, rvcodec.Reg, rvcodec.Imm) rvcodec.Inst) (rvcodec.Inst, error) {
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("%s wants 2 operands, got %d", mnemonic, len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		off, base, err := offsetBase(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return ctor(rd, base, off), nil
	}
	store := func(ctor func(rvcodec.Reg, rvcodec.Reg, rvcodec.Imm) rvcodec.Inst) (rvcodec.Inst, error) {
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("%s wants 2 operands, got %d", mnemonic, len(ops))
		}
		rs2, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		off, base, err := offsetBase(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return ctor(rs2, base, off), nil
	}
	branch := func(ctor func(rvcodec.Reg, rvcodec.Reg, rvcodec.Imm) rvcodec.Inst) (rvcodec.Inst, error) {
		if len(ops) != 3 {
			return rvcodec.Inst{}, fmt.Errorf("%s wants 3 operands, got %d", mnemonic, len(ops))
		}
		rs1, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		rs2, err := reg(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		off, err := imm(ops[2])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return ctor(rs1, rs2, off), nil
	}

	switch mnemonic {
	case "nop":
		return rvcodec.NewAddi(rvcodec.X0, rvcodec.X0, rvcodec.ImmZero), nil
	case "ret":
		return rvcodec.NewJalr(rvcodec.X0, rvcodec.Ra, rvcodec.ImmZero), nil
	case "mv":
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("mv wants 2 operands, got %d", len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		rs, err := reg(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return rvcodec.NewAddi(rd, rs, rvcodec.ImmZero), nil
	case "li":
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("li wants 2 operands, got %d", len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		v, err := imm(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return rvcodec.NewAddi(rd, rvcodec.X0, v), nil

	case "addi":
		return rImm(rvcodec.NewAddi)
	case "slti":
		return rImm(rvcodec.NewSlti)
	case "sltiu":
		return rImm(rvcodec.NewSltiu)
	case "xori":
		return rImm(rvcodec.NewXori)
	case "ori":
		return rImm(rvcodec.NewOri)
	case "andi":
		return rImm(rvcodec.NewAndi)
	case "slli":
		return rImm(rvcodec.NewSlli)
	case "srli":
		return rImm(rvcodec.NewSrli)
	case "srai":
		return rImm(rvcodec.NewSrai)
	case "addiw":
		return rImm(rvcodec.NewAddiw)

	case "add":
		return r3(rvcodec.NewAdd)
	case "sub":
		return r3(rvcodec.NewSub)
	case "sll":
		return r3(rvcodec.NewSll)
	case "slt":
		return r3(rvcodec.NewSlt)
	case "sltu":
		return r3(rvcodec.NewSltu)
	case "xor":
		return r3(rvcodec.NewXor)
	case "srl":
		return r3(rvcodec.NewSrl)
	case "sra":
		return r3(rvcodec.NewSra)
	case "or":
		return r3(rvcodec.NewOr)
	case "and":
		return r3(rvcodec.NewAnd)
	case "mul":
		return r3(rvcodec.NewMul)
	case "mulh":
		return r3(rvcodec.NewMulh)
	case "mulhsu":
		return r3(rvcodec.NewMulhsu)
	case "mulhu":
		return r3(rvcodec.NewMulhu)
	case "div":
		return r3(rvcodec.NewDiv)
	case "divu":
		return r3(rvcodec.NewDivu)
	case "rem":
		return r3(rvcodec.NewRem)
	case "remu":
		return r3(rvcodec.NewRemu)

	case "lb":
		return load(rvcodec.NewLb)
	case "lh":
		return load(rvcodec.NewLh)
	case "lw":
		return load(rvcodec.NewLw)
	case "lbu":
		return load(rvcodec.NewLbu)
	case "lhu":
		return load(rvcodec.NewLhu)
	case "lwu":
		return load(rvcodec.NewLwu)
	case "ld":
		return load(rvcodec.NewLd)

	case "sb":
		return store(rvcodec.NewSb)
	case "sh":
		return store(rvcodec.NewSh)
	case "sw":
		return store(rvcodec.NewSw)
	case "sd":
		return store(rvcodec.NewSd)

	case "beq":
		return branch(rvcodec.NewBeq)
	case "bne":
		return branch(rvcodec.NewBne)
	case "blt":
		return branch(rvcodec.NewBlt)
	case "bge":
		return branch(rvcodec.NewBge)
	case "bltu":
		return branch(rvcodec.NewBltu)
	case "bgeu":
		return branch(rvcodec.NewBgeu)

	case "lui":
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("lui wants 2 operands, got %d", len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		v, err := imm(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return rvcodec.NewLui(rd, rvcodec.NewUImm(uint64(v.AsI64())<<12)), nil
	case "auipc":
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("auipc wants 2 operands, got %d", len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		v, err := imm(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return rvcodec.NewAuipc(rd, rvcodec.NewUImm(uint64(v.AsI64())<<12)), nil
	case "jal":
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("jal wants 2 operands, got %d", len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		off, err := imm(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return rvcodec.NewJal(rd, off), nil
	case "jalr":
		if len(ops) != 2 {
			return rvcodec.Inst{}, fmt.Errorf("jalr wants 2 operands, got %d", len(ops))
		}
		rd, err := reg(ops[0])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		off, base, err := offsetBase(ops[1])
		if err != nil {
			return rvcodec.Inst{}, err
		}
		return rvcodec.NewJalr(rd, base, off), nil

	case "ecall":
		return rvcodec.NewEcall(), nil
	case "ebreak":
		return rvcodec.NewEbreak(), nil
	case "fence.i":
		return rvcodec.NewFenceI(), nil

	default:
		return rvcodec.Inst{}, fmt.Errorf("unsupported mnemonic %q", mnemonic)
	}
}
