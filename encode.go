package rvcodec

// EncodeNormal is the mechanical inverse of DecodeNormal: it rebuilds
// the 32-bit word for inst under xlen. There is no error path — every
// value reachable through the decoder encodes to a word that decodes
// back to an equal Inst. A value built with a New* constructor does so
// only when its operands are in the form the decoder produces (e.g. a
// U-type immediate sign-extended from bit 31); see spec §8 P2 for the
// canonical-subspace round-trip guarantee.
func EncodeNormal(inst Inst, xlen XLEN) uint32 {
	switch inst.Kind() {
	case KindLui:
		return buildU(opLui, inst.Dest(), inst.Imm())
	case KindAuipc:
		return buildU(opAuipc, inst.Dest(), inst.Imm())
	case KindJal:
		return buildJ(opJal, inst.Dest(), inst.Imm())
	case KindJalr:
		return buildI(opJalr, 0, inst.Dest(), inst.Base(), inst.Offset())

	case KindBeq:
		return buildB(opBranch, 0b000, inst.Src1(), inst.Src2(), inst.Offset())
	case KindBne:
		return buildB(opBranch, 0b001, inst.Src1(), inst.Src2(), inst.Offset())
	case KindBlt:
		return buildB(opBranch, 0b100, inst.Src1(), inst.Src2(), inst.Offset())
	case KindBge:
		return buildB(opBranch, 0b101, inst.Src1(), inst.Src2(), inst.Offset())
	case KindBltu:
		return buildB(opBranch, 0b110, inst.Src1(), inst.Src2(), inst.Offset())
	case KindBgeu:
		return buildB(opBranch, 0b111, inst.Src1(), inst.Src2(), inst.Offset())

	case KindLb:
		return buildI(opLoad, 0b000, inst.Dest(), inst.Base(), inst.Offset())
	case KindLh:
		return buildI(opLoad, 0b001, inst.Dest(), inst.Base(), inst.Offset())
	case KindLw:
		return buildI(opLoad, 0b010, inst.Dest(), inst.Base(), inst.Offset())
	case KindLbu:
		return buildI(opLoad, 0b100, inst.Dest(), inst.Base(), inst.Offset())
	case KindLhu:
		return buildI(opLoad, 0b101, inst.Dest(), inst.Base(), inst.Offset())
	case KindLwu:
		return buildI(opLoad, 0b110, inst.Dest(), inst.Base(), inst.Offset())
	case KindLd:
		return buildI(opLoad, 0b011, inst.Dest(), inst.Base(), inst.Offset())

	case KindSb:
		return buildS(opStore, 0b000, inst.Src(), inst.Base(), inst.Offset())
	case KindSh:
		return buildS(opStore, 0b001, inst.Src(), inst.Base(), inst.Offset())
	case KindSw:
		return buildS(opStore, 0b010, inst.Src(), inst.Base(), inst.Offset())
	case KindSd:
		return buildS(opStore, 0b011, inst.Src(), inst.Base(), inst.Offset())

	case KindAddi:
		return buildI(opOpImm, 0b000, inst.Dest(), inst.Src1(), inst.Imm())
	case KindSlti:
		return buildI(opOpImm, 0b010, inst.Dest(), inst.Src1(), inst.Imm())
	case KindSltiu:
		return buildI(opOpImm, 0b011, inst.Dest(), inst.Src1(), inst.Imm())
	case KindXori:
		return buildI(opOpImm, 0b100, inst.Dest(), inst.Src1(), inst.Imm())
	case KindOri:
		return buildI(opOpImm, 0b110, inst.Dest(), inst.Src1(), inst.Imm())
	case KindAndi:
		return buildI(opOpImm, 0b111, inst.Dest(), inst.Src1(), inst.Imm())
	case KindSlli:
		return buildShift(opOpImm, 0b001, inst.Dest(), inst.Src1(), inst.Imm(), xlen, false)
	case KindSrli:
		return buildShift(opOpImm, 0b101, inst.Dest(), inst.Src1(), inst.Imm(), xlen, false)
	case KindSrai:
		return buildShift(opOpImm, 0b101, inst.Dest(), inst.Src1(), inst.Imm(), xlen, true)

	case KindAddiw:
		return buildI(opOpImm32, 0b000, inst.Dest(), inst.Src1(), inst.Imm())
	case KindSlliw:
		return buildShamt32(0b001, 0, inst.Dest(), inst.Src1(), inst.Imm())
	case KindSrliw:
		return buildShamt32(0b101, 0, inst.Dest(), inst.Src1(), inst.Imm())
	case KindSraiw:
		return buildShamt32(0b101, 0b0100000, inst.Dest(), inst.Src1(), inst.Imm())

	case KindAdd:
		return buildR(opOp, 0b000, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSub:
		return buildR(opOp, 0b000, 0b0100000, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSll:
		return buildR(opOp, 0b001, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSlt:
		return buildR(opOp, 0b010, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSltu:
		return buildR(opOp, 0b011, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindXor:
		return buildR(opOp, 0b100, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSrl:
		return buildR(opOp, 0b101, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSra:
		return buildR(opOp, 0b101, 0b0100000, inst.Dest(), inst.Src1(), inst.Src2())
	case KindOr:
		return buildR(opOp, 0b110, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindAnd:
		return buildR(opOp, 0b111, 0, inst.Dest(), inst.Src1(), inst.Src2())

	case KindAddw:
		return buildR(opOp32, 0b000, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSubw:
		return buildR(opOp32, 0b000, 0b0100000, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSllw:
		return buildR(opOp32, 0b001, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSrlw:
		return buildR(opOp32, 0b101, 0, inst.Dest(), inst.Src1(), inst.Src2())
	case KindSraw:
		return buildR(opOp32, 0b101, 0b0100000, inst.Dest(), inst.Src1(), inst.Src2())

	case KindMul:
		return buildR(opOp, 0b000, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindMulh:
		return buildR(opOp, 0b001, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindMulhsu:
		return buildR(opOp, 0b010, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindMulhu:
		return buildR(opOp, 0b011, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindDiv:
		return buildR(opOp, 0b100, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindDivu:
		return buildR(opOp, 0b101, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindRem:
		return buildR(opOp, 0b110, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindRemu:
		return buildR(opOp, 0b111, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())

	case KindMulw:
		return buildR(opOp32, 0b000, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindDivw:
		return buildR(opOp32, 0b100, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindDivuw:
		return buildR(opOp32, 0b101, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindRemw:
		return buildR(opOp32, 0b110, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())
	case KindRemuw:
		return buildR(opOp32, 0b111, 0b0000001, inst.Dest(), inst.Src1(), inst.Src2())

	case KindFence:
		return encodeFence(inst.Fence())
	case KindFenceI:
		return buildI(opMiscMem, 0b001, X0, X0, ImmZero)
	case KindEcall:
		return buildI(opSystem, 0, X0, X0, ImmZero)
	case KindEbreak:
		return buildI(opSystem, 0, X0, X0, NewImm(1))

	case KindCsrrw:
		return buildCsr(0b001, inst.Dest(), inst.CSR(), uint32(inst.CsrSrc()))
	case KindCsrrs:
		return buildCsr(0b010, inst.Dest(), inst.CSR(), uint32(inst.CsrSrc()))
	case KindCsrrc:
		return buildCsr(0b011, inst.Dest(), inst.CSR(), uint32(inst.CsrSrc()))
	case KindCsrrwi:
		return buildCsr(0b101, inst.Dest(), inst.CSR(), uint32(inst.Zimm()))
	case KindCsrrsi:
		return buildCsr(0b110, inst.Dest(), inst.CSR(), uint32(inst.Zimm()))
	case KindCsrrci:
		return buildCsr(0b111, inst.Dest(), inst.CSR(), uint32(inst.Zimm()))

	case KindLrW:
		return encodeAmo(0b00010, inst.Dest(), inst.Base(), X0, inst.Ordering())
	case KindScW:
		return encodeAmo(0b00011, inst.Dest(), inst.Base(), inst.Src(), inst.Ordering())
	case KindAmoW:
		return encodeAmo(amoOpFunct7[inst.AmoOp()], inst.Dest(), inst.Base(), inst.Src(), inst.Ordering())

	case KindFlw:
		return buildFI(opLoadFP, 0b010, inst.FDest(), inst.Base(), inst.Offset())
	case KindFld:
		return buildFI(opLoadFP, 0b011, inst.FDest(), inst.Base(), inst.Offset())
	case KindFsw:
		return buildFS(opStoreFP, 0b010, inst.FSrc(), inst.Base(), inst.Offset())
	case KindFsd:
		return buildFS(opStoreFP, 0b011, inst.FSrc(), inst.Base(), inst.Offset())

	case KindFmaddS:
		return buildFR3(opMadd, 0b00, inst)
	case KindFmaddD:
		return buildFR3(opMadd, 0b01, inst)
	case KindFmsubS:
		return buildFR3(opMsub, 0b00, inst)
	case KindFmsubD:
		return buildFR3(opMsub, 0b01, inst)
	case KindFnmsubS:
		return buildFR3(opNmsub, 0b00, inst)
	case KindFnmsubD:
		return buildFR3(opNmsub, 0b01, inst)
	case KindFnmaddS:
		return buildFR3(opNmadd, 0b00, inst)
	case KindFnmaddD:
		return buildFR3(opNmadd, 0b01, inst)

	case KindFaddS:
		return buildOpFP(0b0000000, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFaddD:
		return buildOpFP(0b0000001, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFsubS:
		return buildOpFP(0b0000100, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFsubD:
		return buildOpFP(0b0000101, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFmulS:
		return buildOpFP(0b0001000, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFmulD:
		return buildOpFP(0b0001001, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFdivS:
		return buildOpFP(0b0001100, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFdivD:
		return buildOpFP(0b0001101, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), uint32(inst.RM()))
	case KindFsqrtS:
		return buildOpFP(0b0101100, inst.FDest(), inst.FSrc1(), 0, uint32(inst.RM()))
	case KindFsqrtD:
		return buildOpFP(0b0101101, inst.FDest(), inst.FSrc1(), 0, uint32(inst.RM()))

	case KindFsgnjS:
		return buildOpFP(0b0010000, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b000)
	case KindFsgnjnS:
		return buildOpFP(0b0010000, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b001)
	case KindFsgnjxS:
		return buildOpFP(0b0010000, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b010)
	case KindFsgnjD:
		return buildOpFP(0b0010001, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b000)
	case KindFsgnjnD:
		return buildOpFP(0b0010001, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b001)
	case KindFsgnjxD:
		return buildOpFP(0b0010001, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b010)
	case KindFminS:
		return buildOpFP(0b0010100, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b000)
	case KindFmaxS:
		return buildOpFP(0b0010100, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b001)
	case KindFminD:
		return buildOpFP(0b0010101, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b000)
	case KindFmaxD:
		return buildOpFP(0b0010101, inst.FDest(), inst.FSrc1(), uint32(inst.FSrc2()), 0b001)

	case KindFcvtWS:
		return buildFCvtToInt(0b1100000, 0b00000, inst)
	case KindFcvtWuS:
		return buildFCvtToInt(0b1100000, 0b00001, inst)
	case KindFcvtLS:
		return buildFCvtToInt(0b1100000, 0b00010, inst)
	case KindFcvtLuS:
		return buildFCvtToInt(0b1100000, 0b00011, inst)
	case KindFcvtWD:
		return buildFCvtToInt(0b1100001, 0b00000, inst)
	case KindFcvtWuD:
		return buildFCvtToInt(0b1100001, 0b00001, inst)
	case KindFcvtLD:
		return buildFCvtToInt(0b1100001, 0b00010, inst)
	case KindFcvtLuD:
		return buildFCvtToInt(0b1100001, 0b00011, inst)

	case KindFcvtSW:
		return buildFCvtToFloat(0b1101000, 0b00000, inst)
	case KindFcvtSWu:
		return buildFCvtToFloat(0b1101000, 0b00001, inst)
	case KindFcvtSL:
		return buildFCvtToFloat(0b1101000, 0b00010, inst)
	case KindFcvtSLu:
		return buildFCvtToFloat(0b1101000, 0b00011, inst)
	case KindFcvtDW:
		return buildFCvtToFloat(0b1101001, 0b00000, inst)
	case KindFcvtDWu:
		return buildFCvtToFloat(0b1101001, 0b00001, inst)
	case KindFcvtDL:
		return buildFCvtToFloat(0b1101001, 0b00010, inst)
	case KindFcvtDLu:
		return buildFCvtToFloat(0b1101001, 0b00011, inst)

	case KindFcvtSD:
		return buildOpFP(0b0100000, inst.FDest(), inst.FSrc1(), 1, uint32(inst.RM()))
	case KindFcvtDS:
		return buildOpFP(0b0100001, inst.FDest(), inst.FSrc1(), 0, uint32(inst.RM()))

	case KindFeqS:
		return buildOpFPInt(0b1010000, 0b010, inst.Dest(), inst.FSrc1(), inst.FSrc2())
	case KindFltS:
		return buildOpFPInt(0b1010000, 0b001, inst.Dest(), inst.FSrc1(), inst.FSrc2())
	case KindFleS:
		return buildOpFPInt(0b1010000, 0b000, inst.Dest(), inst.FSrc1(), inst.FSrc2())
	case KindFeqD:
		return buildOpFPInt(0b1010001, 0b010, inst.Dest(), inst.FSrc1(), inst.FSrc2())
	case KindFltD:
		return buildOpFPInt(0b1010001, 0b001, inst.Dest(), inst.FSrc1(), inst.FSrc2())
	case KindFleD:
		return buildOpFPInt(0b1010001, 0b000, inst.Dest(), inst.FSrc1(), inst.FSrc2())

	case KindFclassS:
		return buildOpFPInt(0b1110000, 0b001, inst.Dest(), inst.FSrc1(), F0)
	case KindFclassD:
		return buildOpFPInt(0b1110001, 0b001, inst.Dest(), inst.FSrc1(), F0)
	case KindFmvXW:
		return buildOpFPInt(0b1110000, 0b000, inst.Dest(), inst.FSrc1(), F0)
	case KindFmvXD:
		return buildOpFPInt(0b1110001, 0b000, inst.Dest(), inst.FSrc1(), F0)

	case KindFmvWX:
		return buildFMvToFloat(0b1111000, inst.FDest(), inst.IntSrc())
	case KindFmvDX:
		return buildFMvToFloat(0b1111001, inst.FDest(), inst.IntSrc())

	default:
		panic("rvcodec: EncodeNormal: unhandled kind " + inst.Kind().String())
	}
}

func buildR(opcode uint32, funct3, funct7 uint32, rd, rs1, rs2 Reg) uint32 {
	w := opcode
	w = Insert(w, 11, 7, uint32(rd))
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(rs1))
	w = Insert(w, 24, 20, uint32(rs2))
	w = Insert(w, 31, 25, funct7)
	return w
}

func buildI(opcode uint32, funct3 uint32, rd, rs1 Reg, imm Imm) uint32 {
	w := opcode
	w = Insert(w, 11, 7, uint32(rd))
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(rs1))
	w = Scatter(w, iImm, imm.AsU32())
	return w
}

func buildShift(opcode, funct3 uint32, rd, rs1 Reg, shamt Imm, xlen XLEN, arithmetic bool) uint32 {
	w := opcode
	w = Insert(w, 11, 7, uint32(rd))
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(rs1))
	if xlen.Is32() {
		w = Insert(w, 24, 20, shamt.AsU32())
		if arithmetic {
			w = Insert(w, 31, 25, 0b0100000)
		}
	} else {
		w = Insert(w, 25, 20, shamt.AsU32())
		if arithmetic {
			w = Insert(w, 31, 26, 0b010000)
		}
	}
	return w
}

func buildShamt32(funct3, funct7 uint32, rd, rs1 Reg, shamt Imm) uint32 {
	w := uint32(opOpImm32)
	w = Insert(w, 11, 7, uint32(rd))
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(rs1))
	w = Insert(w, 24, 20, shamt.AsU32())
	w = Insert(w, 31, 25, funct7)
	return w
}

func buildS(opcode, funct3 uint32, src, base Reg, offset Imm) uint32 {
	w := opcode
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(base))
	w = Insert(w, 24, 20, uint32(src))
	w = Scatter(w, sImm, offset.AsU32())
	return w
}

func buildB(opcode, funct3 uint32, src1, src2 Reg, offset Imm) uint32 {
	w := opcode
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(src1))
	w = Insert(w, 24, 20, uint32(src2))
	w = Scatter(w, bImm, offset.AsU32())
	return w
}

func buildU(opcode uint32, rd Reg, uimm Imm) uint32 {
	w := opcode
	w = Insert(w, 11, 7, uint32(rd))
	w = Scatter(w, uImm, uimm.AsU32())
	return w
}

func buildJ(opcode uint32, rd Reg, offset Imm) uint32 {
	w := opcode
	w = Insert(w, 11, 7, uint32(rd))
	w = Scatter(w, jImm, offset.AsU32())
	return w
}

func buildCsr(funct3 uint32, dest Reg, csr Csr, src uint32) uint32 {
	w := uint32(opSystem)
	w = Insert(w, 11, 7, uint32(dest))
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, src)
	w = Insert(w, 31, 20, uint32(csr))
	return w
}

func encodeFence(f Fence) uint32 {
	w := uint32(opMiscMem)
	w = Insert(w, 11, 7, uint32(f.Rd))
	w = Insert(w, 19, 15, uint32(f.Rs1))
	w = Insert(w, 23, 20, f.Succ.bits())
	w = Insert(w, 27, 24, f.Pred.bits())
	w = Insert(w, 31, 28, uint32(f.FM))
	return w
}

func encodeAmo(funct5 uint32, dest, addr, src Reg, order AmoOrdering) uint32 {
	aq, rl := order.AqRl()
	w := uint32(opAmo)
	w = Insert(w, 14, 12, 0b010)
	w = Insert(w, 11, 7, uint32(dest))
	w = Insert(w, 19, 15, uint32(addr))
	w = Insert(w, 24, 20, uint32(src))
	if aq {
		w = Insert(w, 26, 26, 1)
	}
	if rl {
		w = Insert(w, 25, 25, 1)
	}
	w = Insert(w, 31, 27, funct5)
	return w
}

func buildFI(opcode, funct3 uint32, fdest FReg, base Reg, offset Imm) uint32 {
	w := opcode
	w = Insert(w, 11, 7, uint32(fdest))
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(base))
	w = Scatter(w, iImm, offset.AsU32())
	return w
}

func buildFS(opcode, funct3 uint32, fsrc FReg, base Reg, offset Imm) uint32 {
	w := opcode
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(base))
	w = Insert(w, 24, 20, uint32(fsrc))
	w = Scatter(w, sImm, offset.AsU32())
	return w
}

func buildFR3(opcode, fmt uint32, inst Inst) uint32 {
	w := opcode
	w = Insert(w, 11, 7, uint32(inst.FDest()))
	w = Insert(w, 14, 12, uint32(inst.RM()))
	w = Insert(w, 19, 15, uint32(inst.FSrc1()))
	w = Insert(w, 24, 20, uint32(inst.FSrc2()))
	w = Insert(w, 26, 25, fmt)
	w = Insert(w, 31, 27, uint32(inst.FSrc3()))
	return w
}

func buildOpFP(funct7 uint32, fdest, fsrc1 FReg, rs2 uint32, rm uint32) uint32 {
	w := uint32(opOpFP)
	w = Insert(w, 11, 7, uint32(fdest))
	w = Insert(w, 14, 12, rm)
	w = Insert(w, 19, 15, uint32(fsrc1))
	w = Insert(w, 24, 20, rs2)
	w = Insert(w, 31, 25, funct7)
	return w
}

func buildFMvToFloat(funct7 uint32, fdest FReg, src Reg) uint32 {
	w := uint32(opOpFP)
	w = Insert(w, 11, 7, uint32(fdest))
	w = Insert(w, 19, 15, uint32(src))
	w = Insert(w, 31, 25, funct7)
	return w
}

func buildOpFPInt(funct7, funct3 uint32, dest Reg, fsrc1, fsrc2 FReg) uint32 {
	w := uint32(opOpFP)
	w = Insert(w, 11, 7, uint32(dest))
	w = Insert(w, 14, 12, funct3)
	w = Insert(w, 19, 15, uint32(fsrc1))
	w = Insert(w, 24, 20, uint32(fsrc2))
	w = Insert(w, 31, 25, funct7)
	return w
}

func buildFCvtToInt(funct7, rs2 uint32, inst Inst) uint32 {
	w := uint32(opOpFP)
	w = Insert(w, 11, 7, uint32(inst.Dest()))
	w = Insert(w, 14, 12, uint32(inst.RM()))
	w = Insert(w, 19, 15, uint32(inst.FSrc1()))
	w = Insert(w, 24, 20, rs2)
	w = Insert(w, 31, 25, funct7)
	return w
}

func buildFCvtToFloat(funct7, rs1sel uint32, inst Inst) uint32 {
	w := uint32(opOpFP)
	w = Insert(w, 11, 7, uint32(inst.FDest()))
	w = Insert(w, 14, 12, uint32(inst.RM()))
	w = Insert(w, 19, 15, uint32(inst.IntSrc()))
	w = Insert(w, 24, 20, rs1sel)
	w = Insert(w, 31, 25, funct7)
	return w
}
