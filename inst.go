package rvcodec

// Inst is the codec's external instruction value: a closed tagged
// union over every decodable kind, kept to exactly 16 bytes by reusing
// the same fields across kinds rather than boxing each variant behind
// an interface (see DESIGN.md / SPEC_FULL.md §4 for why). Field meaning
// is documented per format in kind.go; callers use the typed accessor
// methods below, never the raw fields.
type Inst struct {
	kind Kind
	rd   uint8 // dest / frd / csr write-back dest, per format
	rs1  uint8 // src1 / frs1 / base / addr / 5-bit csr zimm, per format
	rs2  uint8 // src2 / frs2 / src (store, amo rmw), per format
	rs3  uint8 // frs3, FMA only
	mode uint8 // rm, or amo (op<<2 | ordering)
	csr  Csr
	imm  Imm // immediate/offset, or packed fence fm/pred/succ when kind==KindFence
}

// Kind returns the instruction's tag.
func (i Inst) Kind() Kind { return i.kind }

func mustFormat(i Inst, accessor string, want ...format) {
	f := i.kind.format()
	for _, w := range want {
		if f == w {
			return
		}
	}
	panic("rvcodec: " + accessor + " called on " + i.kind.String())
}

// Dest returns the integer destination register. Valid for every
// format that writes an integer register.
func (i Inst) Dest() Reg {
	mustFormat(i, "Dest", fUType, fJType, fIType, fLoad, fRType, fCsrReg, fCsrImm,
		fAmo, fAmoRMW, fFCmp, fFClass, fFCvtToInt, fFMvToInt)
	return Reg(i.rd)
}

// FDest returns the floating-point destination register.
func (i Inst) FDest() FReg {
	mustFormat(i, "FDest", fFLoad, fFR3, fFR2, fFR1, fFSgnjMinMax, fFCvtToFloat, fFCvtFF, fFMvToFloat)
	return FReg(i.rd)
}

// Src1 returns the first integer source register. For fIType kinds
// this doubles as the arithmetic source / jalr base.
func (i Inst) Src1() Reg {
	mustFormat(i, "Src1", fIType, fRType, fBranch, fAmoRMW)
	return Reg(i.rs1)
}

// Base returns the integer base register of a load, store, jalr, or
// atomic address.
func (i Inst) Base() Reg {
	mustFormat(i, "Base", fLoad, fStore, fIType, fAmo, fAmoRMW, fFLoad, fFStore)
	return Reg(i.rs1)
}

// Src2 returns the second integer source register.
func (i Inst) Src2() Reg {
	mustFormat(i, "Src2", fRType, fBranch)
	return Reg(i.rs2)
}

// Src returns the integer value stored by a store instruction or the
// register operand of an atomic read-modify-write.
func (i Inst) Src() Reg {
	mustFormat(i, "Src", fStore, fAmoRMW)
	return Reg(i.rs2)
}

// FSrc1 returns the first FP source register.
func (i Inst) FSrc1() FReg {
	mustFormat(i, "FSrc1", fFR3, fFR2, fFR1, fFSgnjMinMax, fFCmp, fFClass, fFCvtToInt, fFCvtFF, fFMvToInt)
	return FReg(i.rs1)
}

// FSrc2 returns the second FP source register.
func (i Inst) FSrc2() FReg {
	mustFormat(i, "FSrc2", fFR3, fFR2, fFSgnjMinMax, fFCmp)
	return FReg(i.rs2)
}

// FSrc3 returns the third FP source register (FMA only).
func (i Inst) FSrc3() FReg {
	mustFormat(i, "FSrc3", fFR3)
	return FReg(i.rs3)
}

// FSrc returns the FP register stored by an FP store.
func (i Inst) FSrc() FReg {
	mustFormat(i, "FSrc", fFStore)
	return FReg(i.rs2)
}

// IntSrc returns the integer source register of an int->float
// conversion or bit-pattern move.
func (i Inst) IntSrc() Reg {
	mustFormat(i, "IntSrc", fFCvtToFloat, fFMvToFloat)
	return Reg(i.rs1)
}

// Imm returns the instruction's semantic immediate or offset.
func (i Inst) Imm() Imm {
	mustFormat(i, "Imm", fUType, fJType, fIType, fLoad, fStore, fBranch, fFLoad, fFStore)
	return i.imm
}

// Offset is an alias for Imm, used where "offset" reads more naturally
// (jalr/branches/loads/stores).
func (i Inst) Offset() Imm { return i.Imm() }

// CSR returns the 12-bit CSR address a Zicsr instruction targets.
func (i Inst) CSR() Csr {
	mustFormat(i, "CSR", fCsrReg, fCsrImm)
	return i.csr
}

// CsrSrc returns the integer register a register-form CSR instruction
// reads its operand from.
func (i Inst) CsrSrc() Reg {
	mustFormat(i, "CsrSrc", fCsrReg)
	return Reg(i.rs1)
}

// Zimm returns the 5-bit immediate operand of an immediate-form CSR
// instruction.
func (i Inst) Zimm() uint8 {
	mustFormat(i, "Zimm", fCsrImm)
	return i.rs1
}

// RM returns the FP rounding-mode field.
func (i Inst) RM() RoundingMode {
	mustFormat(i, "RM", fFR3, fFR2, fFR1, fFCvtToInt, fFCvtToFloat, fFCvtFF)
	return RoundingMode(i.mode)
}

// Ordering returns the atomic-access ordering of an LR/SC/AMO
// instruction.
func (i Inst) Ordering() AmoOrdering {
	mustFormat(i, "Ordering", fAmo, fAmoRMW)
	return AmoOrdering(i.mode & 0x3)
}

// AmoOp returns the read-modify-write operation of an AMO instruction.
// Not meaningful for LR.W/SC.W.
func (i Inst) AmoOp() AmoOp {
	if i.kind != KindAmoW {
		panic("rvcodec: AmoOp called on " + i.kind.String())
	}
	return AmoOp(i.mode >> 2)
}

// Fence returns the decoded FENCE instruction's fields.
func (i Inst) Fence() Fence {
	if i.kind != KindFence {
		panic("rvcodec: Fence called on " + i.kind.String())
	}
	v := i.imm.AsU64()
	return Fence{
		FM:   uint8((v >> 8) & 0xF),
		Pred: fenceSetFromBits(uint32((v >> 4) & 0xF)),
		Succ: fenceSetFromBits(uint32(v & 0xF)),
		Rd:   Reg(i.rd),
		Rs1:  Reg(i.rs1),
	}
}

func fenceImm(f Fence) Imm {
	v := uint64(f.FM&0xF)<<8 | uint64(f.Pred.bits()&0xF)<<4 | uint64(f.Succ.bits()&0xF)
	return NewUImm(v)
}

// --- constructors ---
// Each mirrors the shape of the Rust original's enum variant
// constructors, one per instruction kind family.

func newRType(k Kind, dest, src1, src2 Reg) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), rs2: uint8(src2)}
}

func newIType(k Kind, dest, src1 Reg, imm Imm) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), imm: imm}
}

func newLoad(k Kind, dest, base Reg, offset Imm) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(base), imm: offset}
}

func newStore(k Kind, src, base Reg, offset Imm) Inst {
	return Inst{kind: k, rs2: uint8(src), rs1: uint8(base), imm: offset}
}

func newBranch(k Kind, src1, src2 Reg, offset Imm) Inst {
	return Inst{kind: k, rs1: uint8(src1), rs2: uint8(src2), imm: offset}
}

func newUType(k Kind, dest Reg, uimm Imm) Inst {
	return Inst{kind: k, rd: uint8(dest), imm: uimm}
}

func newJType(k Kind, dest Reg, offset Imm) Inst {
	return Inst{kind: k, rd: uint8(dest), imm: offset}
}

func newCsrReg(k Kind, dest Reg, csr Csr, src Reg) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src), csr: csr}
}

func newCsrImm(k Kind, dest Reg, csr Csr, zimm uint8) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: zimm, csr: csr}
}

func newAmo(k Kind, dest, addr Reg, order AmoOrdering) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(addr), mode: uint8(order)}
}

func newAmoRMW(k Kind, dest, addr, src Reg, order AmoOrdering, op AmoOp) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(addr), rs2: uint8(src), mode: uint8(op)<<2 | uint8(order)}
}

func newFLoad(k Kind, dest FReg, base Reg, offset Imm) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(base), imm: offset}
}

func newFStore(k Kind, src FReg, base Reg, offset Imm) Inst {
	return Inst{kind: k, rs2: uint8(src), rs1: uint8(base), imm: offset}
}

func newFR3(k Kind, dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), rs2: uint8(src2), rs3: uint8(src3), mode: uint8(rm)}
}

func newFR2(k Kind, dest, src1, src2 FReg, rm RoundingMode) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), rs2: uint8(src2), mode: uint8(rm)}
}

func newFR1(k Kind, dest, src1 FReg, rm RoundingMode) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), mode: uint8(rm)}
}

func newFSgnjMinMax(k Kind, dest, src1, src2 FReg) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), rs2: uint8(src2)}
}

func newFCmp(k Kind, dest Reg, src1, src2 FReg) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), rs2: uint8(src2)}
}

func newFClass(k Kind, dest Reg, src1 FReg) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1)}
}

func newFCvtToInt(k Kind, dest Reg, src1 FReg, rm RoundingMode) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), mode: uint8(rm)}
}

func newFCvtToFloat(k Kind, dest FReg, src1 Reg, rm RoundingMode) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), mode: uint8(rm)}
}

func newFCvtFF(k Kind, dest, src1 FReg, rm RoundingMode) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1), mode: uint8(rm)}
}

func newFMvToInt(k Kind, dest Reg, src1 FReg) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1)}
}

func newFMvToFloat(k Kind, dest FReg, src1 Reg) Inst {
	return Inst{kind: k, rd: uint8(dest), rs1: uint8(src1)}
}

func newFence(f Fence) Inst {
	return Inst{kind: KindFence, rd: uint8(f.Rd), rs1: uint8(f.Rs1), imm: fenceImm(f)}
}

func newNoOperand(k Kind) Inst { return Inst{kind: k} }

// --- public constructors, one family per exported instruction ---

func NewLui(dest Reg, uimm Imm) Inst     { return newUType(KindLui, dest, uimm) }
func NewAuipc(dest Reg, uimm Imm) Inst   { return newUType(KindAuipc, dest, uimm) }
func NewJal(dest Reg, offset Imm) Inst   { return newJType(KindJal, dest, offset) }
func NewJalr(dest, base Reg, offset Imm) Inst {
	return Inst{kind: KindJalr, rd: uint8(dest), rs1: uint8(base), imm: offset}
}

func NewBeq(src1, src2 Reg, offset Imm) Inst  { return newBranch(KindBeq, src1, src2, offset) }
func NewBne(src1, src2 Reg, offset Imm) Inst  { return newBranch(KindBne, src1, src2, offset) }
func NewBlt(src1, src2 Reg, offset Imm) Inst  { return newBranch(KindBlt, src1, src2, offset) }
func NewBge(src1, src2 Reg, offset Imm) Inst  { return newBranch(KindBge, src1, src2, offset) }
func NewBltu(src1, src2 Reg, offset Imm) Inst { return newBranch(KindBltu, src1, src2, offset) }
func NewBgeu(src1, src2 Reg, offset Imm) Inst { return newBranch(KindBgeu, src1, src2, offset) }

func NewLb(dest, base Reg, offset Imm) Inst  { return newLoad(KindLb, dest, base, offset) }
func NewLh(dest, base Reg, offset Imm) Inst  { return newLoad(KindLh, dest, base, offset) }
func NewLw(dest, base Reg, offset Imm) Inst  { return newLoad(KindLw, dest, base, offset) }
func NewLbu(dest, base Reg, offset Imm) Inst { return newLoad(KindLbu, dest, base, offset) }
func NewLhu(dest, base Reg, offset Imm) Inst { return newLoad(KindLhu, dest, base, offset) }
func NewLwu(dest, base Reg, offset Imm) Inst { return newLoad(KindLwu, dest, base, offset) }
func NewLd(dest, base Reg, offset Imm) Inst  { return newLoad(KindLd, dest, base, offset) }

func NewSb(src, base Reg, offset Imm) Inst { return newStore(KindSb, src, base, offset) }
func NewSh(src, base Reg, offset Imm) Inst { return newStore(KindSh, src, base, offset) }
func NewSw(src, base Reg, offset Imm) Inst { return newStore(KindSw, src, base, offset) }
func NewSd(src, base Reg, offset Imm) Inst { return newStore(KindSd, src, base, offset) }

func NewAddi(dest, src1 Reg, imm Imm) Inst  { return newIType(KindAddi, dest, src1, imm) }
func NewSlti(dest, src1 Reg, imm Imm) Inst  { return newIType(KindSlti, dest, src1, imm) }
func NewSltiu(dest, src1 Reg, imm Imm) Inst { return newIType(KindSltiu, dest, src1, imm) }
func NewXori(dest, src1 Reg, imm Imm) Inst  { return newIType(KindXori, dest, src1, imm) }
func NewOri(dest, src1 Reg, imm Imm) Inst   { return newIType(KindOri, dest, src1, imm) }
func NewAndi(dest, src1 Reg, imm Imm) Inst  { return newIType(KindAndi, dest, src1, imm) }
func NewSlli(dest, src1 Reg, shamt Imm) Inst { return newIType(KindSlli, dest, src1, shamt) }
func NewSrli(dest, src1 Reg, shamt Imm) Inst { return newIType(KindSrli, dest, src1, shamt) }
func NewSrai(dest, src1 Reg, shamt Imm) Inst { return newIType(KindSrai, dest, src1, shamt) }

func NewAddiw(dest, src1 Reg, imm Imm) Inst  { return newIType(KindAddiw, dest, src1, imm) }
func NewSlliw(dest, src1 Reg, shamt Imm) Inst { return newIType(KindSlliw, dest, src1, shamt) }
func NewSrliw(dest, src1 Reg, shamt Imm) Inst { return newIType(KindSrliw, dest, src1, shamt) }
func NewSraiw(dest, src1 Reg, shamt Imm) Inst { return newIType(KindSraiw, dest, src1, shamt) }

func NewAdd(dest, src1, src2 Reg) Inst  { return newRType(KindAdd, dest, src1, src2) }
func NewSub(dest, src1, src2 Reg) Inst  { return newRType(KindSub, dest, src1, src2) }
func NewSll(dest, src1, src2 Reg) Inst  { return newRType(KindSll, dest, src1, src2) }
func NewSlt(dest, src1, src2 Reg) Inst  { return newRType(KindSlt, dest, src1, src2) }
func NewSltu(dest, src1, src2 Reg) Inst { return newRType(KindSltu, dest, src1, src2) }
func NewXor(dest, src1, src2 Reg) Inst  { return newRType(KindXor, dest, src1, src2) }
func NewSrl(dest, src1, src2 Reg) Inst  { return newRType(KindSrl, dest, src1, src2) }
func NewSra(dest, src1, src2 Reg) Inst  { return newRType(KindSra, dest, src1, src2) }
func NewOr(dest, src1, src2 Reg) Inst   { return newRType(KindOr, dest, src1, src2) }
func NewAnd(dest, src1, src2 Reg) Inst  { return newRType(KindAnd, dest, src1, src2) }

func NewAddw(dest, src1, src2 Reg) Inst { return newRType(KindAddw, dest, src1, src2) }
func NewSubw(dest, src1, src2 Reg) Inst { return newRType(KindSubw, dest, src1, src2) }
func NewSllw(dest, src1, src2 Reg) Inst { return newRType(KindSllw, dest, src1, src2) }
func NewSrlw(dest, src1, src2 Reg) Inst { return newRType(KindSrlw, dest, src1, src2) }
func NewSraw(dest, src1, src2 Reg) Inst { return newRType(KindSraw, dest, src1, src2) }

func NewFence(f Fence) Inst   { return newFence(f) }
func NewFenceI() Inst         { return newNoOperand(KindFenceI) }
func NewEcall() Inst          { return newNoOperand(KindEcall) }
func NewEbreak() Inst         { return newNoOperand(KindEbreak) }

func NewCsrrw(dest Reg, csr Csr, src Reg) Inst  { return newCsrReg(KindCsrrw, dest, csr, src) }
func NewCsrrs(dest Reg, csr Csr, src Reg) Inst  { return newCsrReg(KindCsrrs, dest, csr, src) }
func NewCsrrc(dest Reg, csr Csr, src Reg) Inst  { return newCsrReg(KindCsrrc, dest, csr, src) }
func NewCsrrwi(dest Reg, csr Csr, zimm uint8) Inst { return newCsrImm(KindCsrrwi, dest, csr, zimm) }
func NewCsrrsi(dest Reg, csr Csr, zimm uint8) Inst { return newCsrImm(KindCsrrsi, dest, csr, zimm) }
func NewCsrrci(dest Reg, csr Csr, zimm uint8) Inst { return newCsrImm(KindCsrrci, dest, csr, zimm) }

func NewMul(dest, src1, src2 Reg) Inst    { return newRType(KindMul, dest, src1, src2) }
func NewMulh(dest, src1, src2 Reg) Inst   { return newRType(KindMulh, dest, src1, src2) }
func NewMulhsu(dest, src1, src2 Reg) Inst { return newRType(KindMulhsu, dest, src1, src2) }
func NewMulhu(dest, src1, src2 Reg) Inst  { return newRType(KindMulhu, dest, src1, src2) }
func NewDiv(dest, src1, src2 Reg) Inst    { return newRType(KindDiv, dest, src1, src2) }
func NewDivu(dest, src1, src2 Reg) Inst   { return newRType(KindDivu, dest, src1, src2) }
func NewRem(dest, src1, src2 Reg) Inst    { return newRType(KindRem, dest, src1, src2) }
func NewRemu(dest, src1, src2 Reg) Inst   { return newRType(KindRemu, dest, src1, src2) }

func NewMulw(dest, src1, src2 Reg) Inst  { return newRType(KindMulw, dest, src1, src2) }
func NewDivw(dest, src1, src2 Reg) Inst  { return newRType(KindDivw, dest, src1, src2) }
func NewDivuw(dest, src1, src2 Reg) Inst { return newRType(KindDivuw, dest, src1, src2) }
func NewRemw(dest, src1, src2 Reg) Inst  { return newRType(KindRemw, dest, src1, src2) }
func NewRemuw(dest, src1, src2 Reg) Inst { return newRType(KindRemuw, dest, src1, src2) }

func NewLrW(dest, addr Reg, order AmoOrdering) Inst { return newAmo(KindLrW, dest, addr, order) }
func NewScW(dest, addr, src Reg, order AmoOrdering) Inst {
	return newAmoRMW(KindScW, dest, addr, src, order, 0)
}
func NewAmoW(dest, addr, src Reg, order AmoOrdering, op AmoOp) Inst {
	return newAmoRMW(KindAmoW, dest, addr, src, order, op)
}

func NewFlw(dest FReg, base Reg, offset Imm) Inst { return newFLoad(KindFlw, dest, base, offset) }
func NewFld(dest FReg, base Reg, offset Imm) Inst { return newFLoad(KindFld, dest, base, offset) }
func NewFsw(src FReg, base Reg, offset Imm) Inst  { return newFStore(KindFsw, src, base, offset) }
func NewFsd(src FReg, base Reg, offset Imm) Inst  { return newFStore(KindFsd, src, base, offset) }

func NewFmaddS(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFmaddS, dest, src1, src2, src3, rm)
}
func NewFmsubS(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFmsubS, dest, src1, src2, src3, rm)
}
func NewFnmsubS(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFnmsubS, dest, src1, src2, src3, rm)
}
func NewFnmaddS(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFnmaddS, dest, src1, src2, src3, rm)
}
func NewFmaddD(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFmaddD, dest, src1, src2, src3, rm)
}
func NewFmsubD(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFmsubD, dest, src1, src2, src3, rm)
}
func NewFnmsubD(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFnmsubD, dest, src1, src2, src3, rm)
}
func NewFnmaddD(dest, src1, src2, src3 FReg, rm RoundingMode) Inst {
	return newFR3(KindFnmaddD, dest, src1, src2, src3, rm)
}

func NewFaddS(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFaddS, dest, src1, src2, rm) }
func NewFsubS(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFsubS, dest, src1, src2, rm) }
func NewFmulS(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFmulS, dest, src1, src2, rm) }
func NewFdivS(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFdivS, dest, src1, src2, rm) }
func NewFaddD(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFaddD, dest, src1, src2, rm) }
func NewFsubD(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFsubD, dest, src1, src2, rm) }
func NewFmulD(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFmulD, dest, src1, src2, rm) }
func NewFdivD(dest, src1, src2 FReg, rm RoundingMode) Inst { return newFR2(KindFdivD, dest, src1, src2, rm) }

func NewFsqrtS(dest, src1 FReg, rm RoundingMode) Inst { return newFR1(KindFsqrtS, dest, src1, rm) }
func NewFsqrtD(dest, src1 FReg, rm RoundingMode) Inst { return newFR1(KindFsqrtD, dest, src1, rm) }

func NewFsgnjS(dest, src1, src2 FReg) Inst  { return newFSgnjMinMax(KindFsgnjS, dest, src1, src2) }
func NewFsgnjnS(dest, src1, src2 FReg) Inst { return newFSgnjMinMax(KindFsgnjnS, dest, src1, src2) }
func NewFsgnjxS(dest, src1, src2 FReg) Inst { return newFSgnjMinMax(KindFsgnjxS, dest, src1, src2) }
func NewFminS(dest, src1, src2 FReg) Inst   { return newFSgnjMinMax(KindFminS, dest, src1, src2) }
func NewFmaxS(dest, src1, src2 FReg) Inst   { return newFSgnjMinMax(KindFmaxS, dest, src1, src2) }
func NewFsgnjD(dest, src1, src2 FReg) Inst  { return newFSgnjMinMax(KindFsgnjD, dest, src1, src2) }
func NewFsgnjnD(dest, src1, src2 FReg) Inst { return newFSgnjMinMax(KindFsgnjnD, dest, src1, src2) }
func NewFsgnjxD(dest, src1, src2 FReg) Inst { return newFSgnjMinMax(KindFsgnjxD, dest, src1, src2) }
func NewFminD(dest, src1, src2 FReg) Inst   { return newFSgnjMinMax(KindFminD, dest, src1, src2) }
func NewFmaxD(dest, src1, src2 FReg) Inst   { return newFSgnjMinMax(KindFmaxD, dest, src1, src2) }

func NewFeqS(dest Reg, src1, src2 FReg) Inst { return newFCmp(KindFeqS, dest, src1, src2) }
func NewFltS(dest Reg, src1, src2 FReg) Inst { return newFCmp(KindFltS, dest, src1, src2) }
func NewFleS(dest Reg, src1, src2 FReg) Inst { return newFCmp(KindFleS, dest, src1, src2) }
func NewFeqD(dest Reg, src1, src2 FReg) Inst { return newFCmp(KindFeqD, dest, src1, src2) }
func NewFltD(dest Reg, src1, src2 FReg) Inst { return newFCmp(KindFltD, dest, src1, src2) }
func NewFleD(dest Reg, src1, src2 FReg) Inst { return newFCmp(KindFleD, dest, src1, src2) }

func NewFclassS(dest Reg, src1 FReg) Inst { return newFClass(KindFclassS, dest, src1) }
func NewFclassD(dest Reg, src1 FReg) Inst { return newFClass(KindFclassD, dest, src1) }

func NewFcvtWS(dest Reg, src1 FReg, rm RoundingMode) Inst  { return newFCvtToInt(KindFcvtWS, dest, src1, rm) }
func NewFcvtWuS(dest Reg, src1 FReg, rm RoundingMode) Inst { return newFCvtToInt(KindFcvtWuS, dest, src1, rm) }
func NewFcvtLS(dest Reg, src1 FReg, rm RoundingMode) Inst  { return newFCvtToInt(KindFcvtLS, dest, src1, rm) }
func NewFcvtLuS(dest Reg, src1 FReg, rm RoundingMode) Inst { return newFCvtToInt(KindFcvtLuS, dest, src1, rm) }
func NewFcvtWD(dest Reg, src1 FReg, rm RoundingMode) Inst  { return newFCvtToInt(KindFcvtWD, dest, src1, rm) }
func NewFcvtWuD(dest Reg, src1 FReg, rm RoundingMode) Inst { return newFCvtToInt(KindFcvtWuD, dest, src1, rm) }
func NewFcvtLD(dest Reg, src1 FReg, rm RoundingMode) Inst  { return newFCvtToInt(KindFcvtLD, dest, src1, rm) }
func NewFcvtLuD(dest Reg, src1 FReg, rm RoundingMode) Inst { return newFCvtToInt(KindFcvtLuD, dest, src1, rm) }

func NewFcvtSW(dest FReg, src1 Reg, rm RoundingMode) Inst  { return newFCvtToFloat(KindFcvtSW, dest, src1, rm) }
func NewFcvtSWu(dest FReg, src1 Reg, rm RoundingMode) Inst { return newFCvtToFloat(KindFcvtSWu, dest, src1, rm) }
func NewFcvtSL(dest FReg, src1 Reg, rm RoundingMode) Inst  { return newFCvtToFloat(KindFcvtSL, dest, src1, rm) }
func NewFcvtSLu(dest FReg, src1 Reg, rm RoundingMode) Inst { return newFCvtToFloat(KindFcvtSLu, dest, src1, rm) }
func NewFcvtDW(dest FReg, src1 Reg, rm RoundingMode) Inst  { return newFCvtToFloat(KindFcvtDW, dest, src1, rm) }
func NewFcvtDWu(dest FReg, src1 Reg, rm RoundingMode) Inst { return newFCvtToFloat(KindFcvtDWu, dest, src1, rm) }
func NewFcvtDL(dest FReg, src1 Reg, rm RoundingMode) Inst  { return newFCvtToFloat(KindFcvtDL, dest, src1, rm) }
func NewFcvtDLu(dest FReg, src1 Reg, rm RoundingMode) Inst { return newFCvtToFloat(KindFcvtDLu, dest, src1, rm) }

func NewFcvtSD(dest, src1 FReg, rm RoundingMode) Inst { return newFCvtFF(KindFcvtSD, dest, src1, rm) }
func NewFcvtDS(dest, src1 FReg, rm RoundingMode) Inst { return newFCvtFF(KindFcvtDS, dest, src1, rm) }

func NewFmvXW(dest Reg, src1 FReg) Inst { return newFMvToInt(KindFmvXW, dest, src1) }
func NewFmvXD(dest Reg, src1 FReg) Inst { return newFMvToInt(KindFmvXD, dest, src1) }
func NewFmvWX(dest FReg, src1 Reg) Inst { return newFMvToFloat(KindFmvWX, dest, src1) }
func NewFmvDX(dest FReg, src1 Reg) Inst { return newFMvToFloat(KindFmvDX, dest, src1) }
