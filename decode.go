package rvcodec

// Uncompressed-instruction opcode families (bits 6..0). Naming follows
// the RISC-V base ISA manual's own section titles.
const (
	opLoad      = 0b0000011
	opLoadFP    = 0b0000111
	opMiscMem   = 0b0001111
	opOpImm     = 0b0010011
	opAuipc     = 0b0010111
	opOpImm32   = 0b0011011
	opStore     = 0b0100011
	opStoreFP   = 0b0100111
	opAmo       = 0b0101111
	opOp        = 0b0110011
	opLui       = 0b0110111
	opOp32      = 0b0111011
	opMadd      = 0b1000011
	opMsub      = 0b1000111
	opNmsub     = 0b1001011
	opNmadd     = 0b1001111
	opOpFP      = 0b1010011
	opBranch    = 0b1100011
	opJalr      = 0b1100111
	opJal       = 0b1101111
	opSystem    = 0b1110011
)

var iImm = []Mapping{{31, 20, 0}}
var sImm = []Mapping{{31, 25, 5}, {11, 7, 0}}
var bImm = []Mapping{{31, 31, 12}, {7, 7, 11}, {30, 25, 5}, {11, 8, 1}}
var uImm = []Mapping{{31, 12, 12}}
var jImm = []Mapping{{31, 31, 20}, {19, 12, 12}, {20, 20, 11}, {30, 21, 1}}

func iImmOf(w uint32) Imm { return Imm(GatherSigned(w, iImm)) }
func sImmOf(w uint32) Imm { return Imm(GatherSigned(w, sImm)) }
func bImmOf(w uint32) Imm { return Imm(GatherSigned(w, bImm)) }
func uImmOf(w uint32) Imm { return Imm(GatherSigned(w, uImm)) }
func jImmOf(w uint32) Imm { return Imm(GatherSigned(w, jImm)) }

func fOpcode(w uint32) uint32 { return Extract(w, 6, 0) }
func fRd(w uint32) Reg        { return Reg(Extract(w, 11, 7)) }
func fFunct3(w uint32) uint32 { return Extract(w, 14, 12) }
func fRs1(w uint32) Reg       { return Reg(Extract(w, 19, 15)) }
func fRs2(w uint32) Reg       { return Reg(Extract(w, 24, 20)) }
func fFunct7(w uint32) uint32 { return Extract(w, 31, 25) }
func fFrd(w uint32) FReg      { return FReg(Extract(w, 11, 7)) }
func fFrs1(w uint32) FReg     { return FReg(Extract(w, 19, 15)) }
func fFrs2(w uint32) FReg     { return FReg(Extract(w, 24, 20)) }
func fFrs3(w uint32) FReg     { return FReg(Extract(w, 31, 27)) }
func fFmt(w uint32) uint32    { return Extract(w, 26, 25) }

// FirstByteIsCompressed inspects the low two bits of an instruction
// stream's first byte to tell a caller whether it needs to read two or
// four bytes before calling Decode/DecodeNormal/DecodeCompressed.
func FirstByteIsCompressed(b byte) bool {
	return b&0x3 != 0b11
}

// Decode auto-detects instruction width from word's low two bits and
// dispatches to DecodeCompressed or DecodeNormal. When the result is
// compressed, only the low 16 bits of word are inspected.
func Decode(word uint32, xlen XLEN) (Inst, IsCompressed, error) {
	if word&0x3 != 0b11 {
		inst, err := DecodeCompressed(uint16(word), xlen)
		return inst, Compressed, err
	}
	inst, err := DecodeNormal(word, xlen)
	return inst, Uncompressed, err
}

// IsCompressed tags whether a decode consumed 2 or 4 bytes.
type IsCompressed bool

const (
	Uncompressed IsCompressed = false
	Compressed   IsCompressed = true
)

// DecodeNormal decodes a 32-bit word, assuming (unchecked) that it is
// in fact a 4-byte instruction.
func DecodeNormal(w uint32, xlen XLEN) (Inst, error) {
	switch fOpcode(w) {
	case opLui:
		return NewLui(fRd(w), uImmOf(w)), nil
	case opAuipc:
		return NewAuipc(fRd(w), uImmOf(w)), nil
	case opJal:
		return NewJal(fRd(w), jImmOf(w)), nil
	case opJalr:
		if fFunct3(w) != 0 {
			return Inst{}, errf(w, "JALR funct3")
		}
		return NewJalr(fRd(w), fRs1(w), iImmOf(w)), nil
	case opBranch:
		return decodeBranch(w)
	case opLoad:
		return decodeLoad(w, xlen)
	case opStore:
		return decodeStore(w, xlen)
	case opOpImm:
		return decodeOpImm(w, xlen)
	case opOpImm32:
		return decodeOpImm32(w, xlen)
	case opOp:
		return decodeOp(w)
	case opOp32:
		return decodeOp32(w, xlen)
	case opMiscMem:
		return decodeMiscMem(w)
	case opSystem:
		return decodeSystem(w)
	case opAmo:
		return decodeAmo(w, xlen)
	case opLoadFP:
		return decodeLoadFP(w, xlen)
	case opStoreFP:
		return decodeStoreFP(w, xlen)
	case opMadd:
		return decodeFMA(w, KindFmaddS, KindFmaddD)
	case opMsub:
		return decodeFMA(w, KindFmsubS, KindFmsubD)
	case opNmsub:
		return decodeFMA(w, KindFnmsubS, KindFnmsubD)
	case opNmadd:
		return decodeFMA(w, KindFnmaddS, KindFnmaddD)
	case opOpFP:
		return decodeOpFP(w, xlen)
	default:
		return Inst{}, errf(w, "opcode")
	}
}

func decodeBranch(w uint32) (Inst, error) {
	src1, src2, off := fRs1(w), fRs2(w), bImmOf(w)
	switch fFunct3(w) {
	case 0b000:
		return NewBeq(src1, src2, off), nil
	case 0b001:
		return NewBne(src1, src2, off), nil
	case 0b100:
		return NewBlt(src1, src2, off), nil
	case 0b101:
		return NewBge(src1, src2, off), nil
	case 0b110:
		return NewBltu(src1, src2, off), nil
	case 0b111:
		return NewBgeu(src1, src2, off), nil
	default:
		return Inst{}, errf(w, "BRANCH funct3")
	}
}

func decodeLoad(w uint32, xlen XLEN) (Inst, error) {
	dest, base, off := fRd(w), fRs1(w), iImmOf(w)
	switch fFunct3(w) {
	case 0b000:
		return NewLb(dest, base, off), nil
	case 0b001:
		return NewLh(dest, base, off), nil
	case 0b010:
		return NewLw(dest, base, off), nil
	case 0b100:
		return NewLbu(dest, base, off), nil
	case 0b101:
		return NewLhu(dest, base, off), nil
	case 0b011:
		if xlen.Is32() {
			return Inst{}, errf(w, "LD is not supported on RV32")
		}
		return NewLd(dest, base, off), nil
	case 0b110:
		if xlen.Is32() {
			return Inst{}, errf(w, "LWU is not supported on RV32")
		}
		return NewLwu(dest, base, off), nil
	default:
		return Inst{}, errf(w, "LOAD funct3")
	}
}

func decodeStore(w uint32, xlen XLEN) (Inst, error) {
	src, base, off := fRs2(w), fRs1(w), sImmOf(w)
	switch fFunct3(w) {
	case 0b000:
		return NewSb(src, base, off), nil
	case 0b001:
		return NewSh(src, base, off), nil
	case 0b010:
		return NewSw(src, base, off), nil
	case 0b011:
		if xlen.Is32() {
			return Inst{}, errf(w, "SD is not supported on RV32")
		}
		return NewSd(src, base, off), nil
	default:
		return Inst{}, errf(w, "STORE funct3")
	}
}

// shiftShamt extracts and validates a shift-immediate's shamt field,
// whose width depends on XLEN: 5 bits (24..20) on RV32 requiring the
// top 7 bits to be a recognised pattern, 6 bits (25..20) on RV64
// requiring the top 6 bits to be recognised.
func shiftShamt(w uint32, xlen XLEN, arithmetic bool) (uint32, error) {
	if xlen.Is32() {
		hi := Extract(w, 31, 25)
		want := uint32(0)
		if arithmetic {
			want = 0b0100000
		}
		if hi != want {
			return 0, errf(w, "shift shamt upper bits")
		}
		return Extract(w, 24, 20), nil
	}
	hi := Extract(w, 31, 26)
	want := uint32(0)
	if arithmetic {
		want = 0b010000
	}
	if hi != want {
		return 0, errf(w, "shift shamt upper bits")
	}
	return Extract(w, 25, 20), nil
}

func decodeOpImm(w uint32, xlen XLEN) (Inst, error) {
	dest, src1, imm := fRd(w), fRs1(w), iImmOf(w)
	switch fFunct3(w) {
	case 0b000:
		return NewAddi(dest, src1, imm), nil
	case 0b010:
		return NewSlti(dest, src1, imm), nil
	case 0b011:
		return NewSltiu(dest, src1, imm), nil
	case 0b100:
		return NewXori(dest, src1, imm), nil
	case 0b110:
		return NewOri(dest, src1, imm), nil
	case 0b111:
		return NewAndi(dest, src1, imm), nil
	case 0b001:
		sh, err := shiftShamt(w, xlen, false)
		if err != nil {
			return Inst{}, errf(w, "slli shift overflow")
		}
		return NewSlli(dest, src1, NewUImm(uint64(sh))), nil
	case 0b101:
		if sh, err := shiftShamt(w, xlen, false); err == nil {
			return NewSrli(dest, src1, NewUImm(uint64(sh))), nil
		}
		if sh, err := shiftShamt(w, xlen, true); err == nil {
			return NewSrai(dest, src1, NewUImm(uint64(sh))), nil
		}
		return Inst{}, errf(w, "srai/srli upper bits")
	default:
		return Inst{}, errf(w, "OP-IMM funct3")
	}
}

func decodeOpImm32(w uint32, xlen XLEN) (Inst, error) {
	if xlen.Is32() {
		return Inst{}, errf(w, "OP-IMM-32 only on RV64")
	}
	dest, src1, imm := fRd(w), fRs1(w), iImmOf(w)
	switch fFunct3(w) {
	case 0b000:
		return NewAddiw(dest, src1, imm), nil
	case 0b001:
		if Extract(w, 31, 25) != 0 {
			return Inst{}, errf(w, "SLLIW funct7")
		}
		return NewSlliw(dest, src1, NewUImm(uint64(Extract(w, 24, 20)))), nil
	case 0b101:
		shamt := Extract(w, 24, 20)
		switch Extract(w, 31, 25) {
		case 0b0000000:
			return NewSrliw(dest, src1, NewUImm(uint64(shamt))), nil
		case 0b0100000:
			return NewSraiw(dest, src1, NewUImm(uint64(shamt))), nil
		default:
			return Inst{}, errf(w, "OP-IMM-32 funct7")
		}
	default:
		return Inst{}, errf(w, "OP-IMM-32 funct3")
	}
}

func decodeOp(w uint32) (Inst, error) {
	dest, src1, src2 := fRd(w), fRs1(w), fRs2(w)
	funct7 := fFunct7(w)
	if funct7 == 0b0000001 {
		return decodeMulDiv(w, dest, src1, src2)
	}
	switch fFunct3(w) {
	case 0b000:
		switch funct7 {
		case 0b0000000:
			return NewAdd(dest, src1, src2), nil
		case 0b0100000:
			return NewSub(dest, src1, src2), nil
		}
	case 0b001:
		if funct7 == 0 {
			return NewSll(dest, src1, src2), nil
		}
	case 0b010:
		if funct7 == 0 {
			return NewSlt(dest, src1, src2), nil
		}
	case 0b011:
		if funct7 == 0 {
			return NewSltu(dest, src1, src2), nil
		}
	case 0b100:
		if funct7 == 0 {
			return NewXor(dest, src1, src2), nil
		}
	case 0b101:
		switch funct7 {
		case 0b0000000:
			return NewSrl(dest, src1, src2), nil
		case 0b0100000:
			return NewSra(dest, src1, src2), nil
		}
	case 0b110:
		if funct7 == 0 {
			return NewOr(dest, src1, src2), nil
		}
	case 0b111:
		if funct7 == 0 {
			return NewAnd(dest, src1, src2), nil
		}
	}
	return Inst{}, errf(w, "OP funct3/funct7")
}

func decodeMulDiv(w uint32, dest, src1, src2 Reg) (Inst, error) {
	switch fFunct3(w) {
	case 0b000:
		return NewMul(dest, src1, src2), nil
	case 0b001:
		return NewMulh(dest, src1, src2), nil
	case 0b010:
		return NewMulhsu(dest, src1, src2), nil
	case 0b011:
		return NewMulhu(dest, src1, src2), nil
	case 0b100:
		return NewDiv(dest, src1, src2), nil
	case 0b101:
		return NewDivu(dest, src1, src2), nil
	case 0b110:
		return NewRem(dest, src1, src2), nil
	case 0b111:
		return NewRemu(dest, src1, src2), nil
	default:
		return Inst{}, errf(w, "OP funct3/funct7")
	}
}

func decodeOp32(w uint32, xlen XLEN) (Inst, error) {
	if xlen.Is32() {
		return Inst{}, errf(w, "OP-32 only on RV64")
	}
	dest, src1, src2 := fRd(w), fRs1(w), fRs2(w)
	funct7 := fFunct7(w)
	if funct7 == 0b0000001 {
		switch fFunct3(w) {
		case 0b000:
			return NewMulw(dest, src1, src2), nil
		case 0b100:
			return NewDivw(dest, src1, src2), nil
		case 0b101:
			return NewDivuw(dest, src1, src2), nil
		case 0b110:
			return NewRemw(dest, src1, src2), nil
		case 0b111:
			return NewRemuw(dest, src1, src2), nil
		default:
			return Inst{}, errf(w, "OP-32 funct3/funct7")
		}
	}
	switch fFunct3(w) {
	case 0b000:
		switch funct7 {
		case 0b0000000:
			return NewAddw(dest, src1, src2), nil
		case 0b0100000:
			return NewSubw(dest, src1, src2), nil
		}
	case 0b001:
		if funct7 == 0 {
			return NewSllw(dest, src1, src2), nil
		}
	case 0b101:
		switch funct7 {
		case 0b0000000:
			return NewSrlw(dest, src1, src2), nil
		case 0b0100000:
			return NewSraw(dest, src1, src2), nil
		}
	}
	return Inst{}, errf(w, "OP-32 funct3/funct7")
}

func decodeMiscMem(w uint32) (Inst, error) {
	switch fFunct3(w) {
	case 0b000:
		return NewFence(Fence{
			FM:   uint8(Extract(w, 31, 28)),
			Pred: fenceSetFromBits(Extract(w, 27, 24)),
			Succ: fenceSetFromBits(Extract(w, 23, 20)),
			Rd:   fRd(w),
			Rs1:  fRs1(w),
		}), nil
	case 0b001:
		return NewFenceI(), nil
	default:
		return Inst{}, errf(w, "MISC-MEM funct3")
	}
}

func decodeSystem(w uint32) (Inst, error) {
	if w == 0xC0001073 {
		return Inst{}, errf(w, "unimp instruction")
	}
	funct3 := fFunct3(w)
	dest, src1 := fRd(w), fRs1(w)
	csr := Csr(Extract(w, 31, 20))
	switch funct3 {
	case 0b000:
		if dest != X0 {
			return Inst{}, errf(w, "SYSTEM rd")
		}
		if src1 != X0 {
			return Inst{}, errf(w, "SYSTEM rs1")
		}
		switch Extract(w, 31, 20) {
		case 0:
			return NewEcall(), nil
		case 1:
			return NewEbreak(), nil
		default:
			return Inst{}, errf(w, "SYSTEM imm")
		}
	case 0b001:
		return NewCsrrw(dest, csr, src1), nil
	case 0b010:
		return NewCsrrs(dest, csr, src1), nil
	case 0b011:
		return NewCsrrc(dest, csr, src1), nil
	case 0b101:
		return NewCsrrwi(dest, csr, uint8(src1)), nil
	case 0b110:
		return NewCsrrsi(dest, csr, uint8(src1)), nil
	case 0b111:
		return NewCsrrci(dest, csr, uint8(src1)), nil
	default:
		return Inst{}, errf(w, "SYSTEM funct3")
	}
}

func decodeAmo(w uint32, _ XLEN) (Inst, error) {
	if fFunct3(w) != 0b010 {
		return Inst{}, errf(w, "AMO width funct3")
	}
	dest, addr, src := fRd(w), fRs1(w), fRs2(w)
	aq := Extract(w, 26, 26) != 0
	rl := Extract(w, 25, 25) != 0
	order := AmoOrderingFromAqRl(aq, rl)
	funct5 := Extract(w, 31, 27)
	switch funct5 {
	case 0b00010:
		if src != X0 {
			return Inst{}, errf(w, "AMO.LR rs2")
		}
		return NewLrW(dest, addr, order), nil
	case 0b00011:
		return NewScW(dest, addr, src, order), nil
	default:
		op, ok := funct7ToAmoOp[funct5]
		if !ok {
			return Inst{}, errf(w, "AMO op funct7")
		}
		return NewAmoW(dest, addr, src, order, op), nil
	}
}

func decodeLoadFP(w uint32, xlen XLEN) (Inst, error) {
	base, off := fRs1(w), iImmOf(w)
	switch fFunct3(w) {
	case 0b010:
		return NewFlw(fFrd(w), base, off), nil
	case 0b011:
		return NewFld(fFrd(w), base, off), nil
	default:
		return Inst{}, errf(w, "LOAD-FP funct3")
	}
}

func decodeStoreFP(w uint32, xlen XLEN) (Inst, error) {
	base, off := fRs1(w), sImmOf(w)
	switch fFunct3(w) {
	case 0b010:
		return NewFsw(fFrs2(w), base, off), nil
	case 0b011:
		return NewFsd(fFrs2(w), base, off), nil
	default:
		return Inst{}, errf(w, "STORE-FP funct3")
	}
}

func decodeRM(w uint32) (RoundingMode, error) {
	rm, ok := validRoundingMode(fFunct3(w))
	if !ok {
		return 0, errf(w, "invalid rounding mode")
	}
	return rm, nil
}

func decodeFMA(w uint32, single, double Kind) (Inst, error) {
	fmt := fFmt(w)
	rm, err := decodeRM(w)
	if err != nil {
		return Inst{}, err
	}
	dest, src1, src2, src3 := fFrd(w), fFrs1(w), fFrs2(w), fFrs3(w)
	switch fmt {
	case 0b00:
		return newFR3(single, dest, src1, src2, src3, rm), nil
	case 0b01:
		return newFR3(double, dest, src1, src2, src3, rm), nil
	default:
		return Inst{}, errf(w, "FMA fmt")
	}
}

func decodeOpFP(w uint32, xlen XLEN) (Inst, error) {
	funct7 := fFunct7(w)
	dest, src1, src2 := fFrd(w), fFrs1(w), fFrs2(w)
	idest, isrc1 := fRd(w), fRs1(w)

	fp2 := func(k Kind) (Inst, error) {
		rm, err := decodeRM(w)
		if err != nil {
			return Inst{}, err
		}
		return newFR2(k, dest, src1, src2, rm), nil
	}
	fp1 := func(k Kind) (Inst, error) {
		if src2 != F0 {
			return Inst{}, errf(w, "FSQRT rs2")
		}
		rm, err := decodeRM(w)
		if err != nil {
			return Inst{}, err
		}
		return newFR1(k, dest, src1, rm), nil
	}
	sgnj := func(kinds [3]Kind) (Inst, error) {
		if int(fFunct3(w)) >= len(kinds) {
			return Inst{}, errf(w, "OP-FP funct3")
		}
		return newFSgnjMinMax(kinds[fFunct3(w)], dest, src1, src2), nil
	}
	minMax := func(kinds [2]Kind) (Inst, error) {
		if int(fFunct3(w)) >= len(kinds) {
			return Inst{}, errf(w, "OP-FP funct3")
		}
		return newFSgnjMinMax(kinds[fFunct3(w)], dest, src1, src2), nil
	}
	cvtToInt := func(kinds [4]Kind) (Inst, error) {
		if int(src2) >= len(kinds) {
			return Inst{}, errf(w, "FCVT rs2")
		}
		k := kinds[src2]
		if k.IsRV64Only() && xlen.Is32() {
			return Inst{}, errf(w, "FCVT.*.* RV64-only")
		}
		rm, err := decodeRM(w)
		if err != nil {
			return Inst{}, err
		}
		return newFCvtToInt(k, idest, src1, rm), nil
	}
	cvtToFloat := func(kinds [4]Kind) (Inst, error) {
		if int(src2) >= len(kinds) {
			return Inst{}, errf(w, "FCVT rs2")
		}
		k := kinds[src2]
		if k.IsRV64Only() && xlen.Is32() {
			return Inst{}, errf(w, "FCVT.*.* RV64-only")
		}
		rm, err := decodeRM(w)
		if err != nil {
			return Inst{}, err
		}
		return newFCvtToFloat(k, dest, isrc1, rm), nil
	}
	cmp := func(kinds [3]Kind) (Inst, error) {
		if int(fFunct3(w)) >= len(kinds) {
			return Inst{}, errf(w, "OP-FP funct3")
		}
		return newFCmp(kinds[fFunct3(w)], idest, src1, src2), nil
	}

	switch funct7 {
	case 0b0000000:
		return fp2(KindFaddS)
	case 0b0000001:
		return fp2(KindFaddD)
	case 0b0000100:
		return fp2(KindFsubS)
	case 0b0000101:
		return fp2(KindFsubD)
	case 0b0001000:
		return fp2(KindFmulS)
	case 0b0001001:
		return fp2(KindFmulD)
	case 0b0001100:
		return fp2(KindFdivS)
	case 0b0001101:
		return fp2(KindFdivD)
	case 0b0101100:
		return fp1(KindFsqrtS)
	case 0b0101101:
		return fp1(KindFsqrtD)
	case 0b0010000:
		return sgnj([3]Kind{KindFsgnjS, KindFsgnjnS, KindFsgnjxS})
	case 0b0010001:
		return sgnj([3]Kind{KindFsgnjD, KindFsgnjnD, KindFsgnjxD})
	case 0b0010100:
		return minMax([2]Kind{KindFminS, KindFmaxS})
	case 0b0010101:
		return minMax([2]Kind{KindFminD, KindFmaxD})
	case 0b1100000:
		return cvtToInt([4]Kind{KindFcvtWS, KindFcvtWuS, KindFcvtLS, KindFcvtLuS})
	case 0b1100001:
		return cvtToInt([4]Kind{KindFcvtWD, KindFcvtWuD, KindFcvtLD, KindFcvtLuD})
	case 0b1101000:
		return cvtToFloat([4]Kind{KindFcvtSW, KindFcvtSWu, KindFcvtSL, KindFcvtSLu})
	case 0b1101001:
		return cvtToFloat([4]Kind{KindFcvtDW, KindFcvtDWu, KindFcvtDL, KindFcvtDLu})
	case 0b1010000:
		return cmp([3]Kind{KindFleS, KindFltS, KindFeqS})
	case 0b1010001:
		return cmp([3]Kind{KindFleD, KindFltD, KindFeqD})
	case 0b1110000:
		if src2 != F0 {
			return Inst{}, errf(w, "FMV.X.W/FCLASS.S rs2")
		}
		switch fFunct3(w) {
		case 0b000:
			return newFMvToInt(KindFmvXW, idest, src1), nil
		case 0b001:
			return newFClass(KindFclassS, idest, src1), nil
		default:
			return Inst{}, errf(w, "FMV.X.W/FCLASS.S funct3")
		}
	case 0b1110001:
		if src2 != F0 {
			return Inst{}, errf(w, "FMV.X.D/FCLASS.D rs2")
		}
		if xlen.Is32() && fFunct3(w) == 0 {
			return Inst{}, errf(w, "FMV.X.D is not supported on RV32")
		}
		switch fFunct3(w) {
		case 0b000:
			return newFMvToInt(KindFmvXD, idest, src1), nil
		case 0b001:
			return newFClass(KindFclassD, idest, src1), nil
		default:
			return Inst{}, errf(w, "FMV.X.D/FCLASS.D funct3")
		}
	case 0b1111000:
		if src2 != F0 || fFunct3(w) != 0 {
			return Inst{}, errf(w, "FMV.W.X")
		}
		return newFMvToFloat(KindFmvWX, dest, isrc1), nil
	case 0b1111001:
		if xlen.Is32() {
			return Inst{}, errf(w, "FMV.D.X is not supported on RV32")
		}
		if src2 != F0 || fFunct3(w) != 0 {
			return Inst{}, errf(w, "FMV.D.X")
		}
		return newFMvToFloat(KindFmvDX, dest, isrc1), nil
	case 0b0100000:
		if src2 != F1 {
			return Inst{}, errf(w, "FCVT.S.D rs2")
		}
		rm, err := decodeRM(w)
		if err != nil {
			return Inst{}, err
		}
		return newFCvtFF(KindFcvtSD, dest, src1, rm), nil
	case 0b0100001:
		if src2 != F0 {
			return Inst{}, errf(w, "FCVT.D.S rs2")
		}
		rm, err := decodeRM(w)
		if err != nil {
			return Inst{}, err
		}
		return newFCvtFF(KindFcvtDS, dest, src1, rm), nil
	default:
		return Inst{}, errf(w, "OP-FP funct7")
	}
}
