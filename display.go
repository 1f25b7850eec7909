package rvcodec

import "fmt"

// String renders inst in RISC-V assembler syntax, recognising the
// canonical pseudo-instruction aliases the ISA manual defines.
func (i Inst) String() string {
	switch i.Kind() {
	case KindAddi:
		dest, src1, imm := i.Dest(), i.Src1(), i.Imm()
		switch {
		case dest == X0 && src1 == X0 && imm.AsI64() == 0:
			return "nop"
		case src1 == X0:
			return fmt.Sprintf("li %s, %d", dest, imm.AsI64())
		case imm.AsI64() == 0:
			return fmt.Sprintf("mv %s, %s", dest, src1)
		}
		return fmt.Sprintf("addi %s, %s, %d", dest, src1, imm.AsI64())

	case KindAddiw:
		dest, src1, imm := i.Dest(), i.Src1(), i.Imm()
		if imm.AsI64() == 0 {
			return fmt.Sprintf("sext.w %s, %s", dest, src1)
		}
		return fmt.Sprintf("addiw %s, %s, %d", dest, src1, imm.AsI64())

	case KindJal:
		dest, off := i.Dest(), i.Imm()
		if dest == X0 {
			return fmt.Sprintf("j %d", off.AsI64())
		}
		return fmt.Sprintf("jal %s, %d", dest, off.AsI64())

	case KindJalr:
		dest, base, off := i.Dest(), i.Base(), i.Imm()
		if dest == X0 && base == Ra && off.AsI64() == 0 {
			return "ret"
		}
		return fmt.Sprintf("jalr %s, %d(%s)", dest, off.AsI64(), base)

	case KindFence:
		f := i.Fence()
		if f.IsFenceTSO() {
			return "fence.tso"
		}
		if f.IsPause() {
			return "pause"
		}
		return fmt.Sprintf("fence %s, %s", f.Pred, f.Succ)
	}

	switch i.Kind().format() {
	case fUType:
		return fmt.Sprintf("%s %s, %#x", i.Kind(), i.Dest(), i.Imm().AsU32()>>12)
	case fJType:
		return fmt.Sprintf("%s %s, %d", i.Kind(), i.Dest(), i.Imm().AsI64())
	case fIType:
		return fmt.Sprintf("%s %s, %s, %d", i.Kind(), i.Dest(), i.Src1(), i.Imm().AsI64())
	case fLoad:
		return fmt.Sprintf("%s %s, %d(%s)", i.Kind(), i.Dest(), i.Imm().AsI64(), i.Base())
	case fStore:
		return fmt.Sprintf("%s %s, %d(%s)", i.Kind(), i.Src(), i.Imm().AsI64(), i.Base())
	case fBranch:
		return fmt.Sprintf("%s %s, %s, %d", i.Kind(), i.Src1(), i.Src2(), i.Imm().AsI64())
	case fRType:
		return fmt.Sprintf("%s %s, %s, %s", i.Kind(), i.Dest(), i.Src1(), i.Src2())
	case fNoOperand:
		return i.Kind().String()
	case fCsrReg:
		return fmt.Sprintf("%s %s, %s, %s", i.Kind(), i.Dest(), i.CSR(), i.CsrSrc())
	case fCsrImm:
		return fmt.Sprintf("%s %s, %s, %d", i.Kind(), i.Dest(), i.CSR(), i.Zimm())
	case fAmo:
		return fmt.Sprintf("%s%s %s, (%s)", i.Kind(), i.Ordering(), i.Dest(), i.Base())
	case fAmoRMW:
		if i.Kind() == KindScW {
			return fmt.Sprintf("sc.w%s %s, %s, (%s)", i.Ordering(), i.Dest(), i.Src(), i.Base())
		}
		return fmt.Sprintf("%s%s %s, %s, (%s)", i.AmoOp(), i.Ordering(), i.Dest(), i.Src(), i.Base())
	case fFLoad:
		return fmt.Sprintf("%s %s, %d(%s)", i.Kind(), i.FDest(), i.Imm().AsI64(), i.Base())
	case fFStore:
		return fmt.Sprintf("%s %s, %d(%s)", i.Kind(), i.FSrc(), i.Imm().AsI64(), i.Base())
	case fFR3:
		return fmt.Sprintf("%s %s, %s, %s, %s%s", i.Kind(), i.FDest(), i.FSrc1(), i.FSrc2(), i.FSrc3(), rmSuffix(i.RM()))
	case fFR2:
		return fmt.Sprintf("%s %s, %s, %s%s", i.Kind(), i.FDest(), i.FSrc1(), i.FSrc2(), rmSuffix(i.RM()))
	case fFR1:
		return fmt.Sprintf("%s %s, %s%s", i.Kind(), i.FDest(), i.FSrc1(), rmSuffix(i.RM()))
	case fFSgnjMinMax:
		return fmt.Sprintf("%s %s, %s, %s", i.Kind(), i.FDest(), i.FSrc1(), i.FSrc2())
	case fFCmp:
		return fmt.Sprintf("%s %s, %s, %s", i.Kind(), i.Dest(), i.FSrc1(), i.FSrc2())
	case fFClass:
		return fmt.Sprintf("%s %s, %s", i.Kind(), i.Dest(), i.FSrc1())
	case fFCvtToInt:
		return fmt.Sprintf("%s %s, %s%s", i.Kind(), i.Dest(), i.FSrc1(), rmSuffix(i.RM()))
	case fFCvtToFloat:
		return fmt.Sprintf("%s %s, %s%s", i.Kind(), i.FDest(), i.IntSrc(), rmSuffix(i.RM()))
	case fFCvtFF:
		return fmt.Sprintf("%s %s, %s%s", i.Kind(), i.FDest(), i.FSrc1(), rmSuffix(i.RM()))
	case fFMvToInt:
		return fmt.Sprintf("%s %s, %s", i.Kind(), i.Dest(), i.FSrc1())
	case fFMvToFloat:
		return fmt.Sprintf("%s %s, %s", i.Kind(), i.FDest(), i.IntSrc())
	default:
		return i.Kind().String()
	}
}

// rmSuffix renders the trailing ", rm" token, eliding it entirely when
// rm is Dynamic (the assembler default, per spec).
func rmSuffix(rm RoundingMode) string {
	if rm == Dynamic {
		return ""
	}
	return ", " + rm.String()
}
