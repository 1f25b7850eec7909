package rvcodec

// Register field width for the compressed "short" register encodings
// (rs1', rs2', rd'): 3 bits, mapped onto x8..x15.
const rvcRegOffset = 8

func cShortReg(bits uint32) Reg { return Reg(rvcRegOffset + bits) }

func cQuadrant(w uint16) uint32  { return Extract(uint32(w), 1, 0) }
func cFunct3(w uint16) uint32    { return Extract(uint32(w), 15, 13) }
func cRd(w uint16) Reg           { return Reg(Extract(uint32(w), 11, 7)) }
func cRs2(w uint16) Reg          { return Reg(Extract(uint32(w), 6, 2)) }
func cRs1Short(w uint16) Reg     { return cShortReg(Extract(uint32(w), 9, 7)) }
func cRs2Short(w uint16) Reg     { return cShortReg(Extract(uint32(w), 4, 2)) }
func cBit(w uint16, bit uint8) uint32 { return Extract(uint32(w), bit, bit) }
func cFunct2High(w uint16) uint32     { return Extract(uint32(w), 11, 10) }
func cFunct2Low(w uint16) uint32      { return Extract(uint32(w), 6, 5) }

func cGatherU(w uint16, ms []Mapping) Imm { return NewUImm(uint64(GatherUnsigned(uint32(w), ms))) }
func cGatherS(w uint16, ms []Mapping) Imm { return Imm(GatherSigned(uint32(w), ms)) }

// DecodeCompressed decodes a 16-bit compressed instruction, mapping it
// to the semantically equivalent uncompressed Inst. The all-zero word
// is the canonical illegal instruction.
func DecodeCompressed(w uint16, xlen XLEN) (Inst, error) {
	word := uint32(w)
	if w == 0 {
		return Inst{}, errf(word, "null instruction")
	}

	switch cQuadrant(w) {
	case 0b00:
		return decodeC0(w, xlen)
	case 0b01:
		return decodeC1(w, xlen)
	case 0b10:
		return decodeC2(w, xlen)
	default:
		return Inst{}, errf(word, "instruction is not compressed")
	}
}

func decodeC0(w uint16, xlen XLEN) (Inst, error) {
	word := uint32(w)
	switch cFunct3(w) {
	case 0b000: // C.ADDI4SPN
		imm := cGatherU(w, []Mapping{{5, 5, 3}, {6, 6, 2}, {10, 7, 6}, {12, 11, 4}})
		if imm.AsU32() == 0 {
			return Inst{}, errf(word, "uimm=0 for C.ADDISPN is reserved")
		}
		return NewAddi(cRs2Short(w), Sp, imm), nil
	case 0b010: // C.LW
		off := cGatherU(w, []Mapping{{12, 10, 3}, {5, 5, 6}, {6, 6, 2}})
		return NewLw(cRs2Short(w), cRs1Short(w), off), nil
	case 0b110: // C.SW
		off := cGatherU(w, []Mapping{{12, 10, 3}, {5, 5, 6}, {6, 6, 2}})
		return NewSw(cRs2Short(w), cRs1Short(w), off), nil
	case 0b011, 0b111:
		return decodeC0Rv64(w, xlen)
	default:
		return Inst{}, errf(word, "C0 funct3")
	}
}

func decodeC0Rv64(w uint16, xlen XLEN) (Inst, error) {
	word := uint32(w)
	switch cFunct3(w) {
	case 0b011: // C.LD
		if xlen.Is32() {
			return Inst{}, errf(word, "C.LD is not allowed on RV32")
		}
		off := cGatherU(w, []Mapping{{12, 10, 3}, {6, 5, 6}})
		return NewLd(cRs2Short(w), cRs1Short(w), off), nil
	case 0b111: // C.SD
		if xlen.Is32() {
			return Inst{}, errf(word, "C.SD is not allowed on RV32")
		}
		off := cGatherU(w, []Mapping{{12, 10, 3}, {6, 5, 6}})
		return NewSd(cRs2Short(w), cRs1Short(w), off), nil
	default:
		return Inst{}, errf(word, "C0 funct3")
	}
}

func decodeC1(w uint16, xlen XLEN) (Inst, error) {
	word := uint32(w)
	jImm := []Mapping{
		{2, 2, 5}, {5, 3, 1}, {6, 6, 7}, {7, 7, 6},
		{8, 8, 10}, {10, 9, 8}, {11, 11, 4}, {12, 12, 11},
	}
	switch cFunct3(w) {
	case 0b000: // C.ADDI
		imm := cGatherS(w, []Mapping{{6, 2, 0}, {12, 12, 5}})
		return NewAddi(cRd(w), cRd(w), imm), nil
	case 0b001: // C.JAL on RV32, C.ADDIW on RV64
		if xlen.Is64() {
			imm := cGatherS(w, []Mapping{{6, 2, 0}, {12, 12, 5}})
			return NewAddiw(cRd(w), cRd(w), imm), nil
		}
		return NewJal(Ra, cGatherS(w, jImm)), nil
	case 0b010: // C.LI
		imm := cGatherS(w, []Mapping{{6, 2, 0}, {12, 12, 5}})
		return NewAddi(cRd(w), Zero, imm), nil
	case 0b100:
		return decodeC1Arith(w)
	case 0b101: // C.J
		return NewJal(Zero, cGatherS(w, jImm)), nil
	case 0b011:
		return decodeC1LuiAddi16sp(w)
	case 0b110: // C.BEQZ
		off := cGatherS(w, []Mapping{{2, 2, 5}, {4, 3, 1}, {6, 5, 6}, {11, 10, 3}, {12, 12, 8}})
		return NewBeq(cRs1Short(w), Zero, off), nil
	case 0b111: // C.BNEZ
		off := cGatherS(w, []Mapping{{2, 2, 5}, {4, 3, 1}, {6, 5, 6}, {11, 10, 3}, {12, 12, 8}})
		return NewBne(cRs1Short(w), Zero, off), nil
	default:
		return Inst{}, errf(word, "C1 funct3")
	}
}

func decodeC1Arith(w uint16) (Inst, error) {
	word := uint32(w)
	bit12 := cBit(w, 12)
	switch cFunct2High(w) {
	case 0b00: // C.SRLI
		if bit12 != 0 {
			return Inst{}, errf(word, "C.SRLI imm")
		}
		imm := cGatherU(w, []Mapping{{6, 2, 0}, {12, 12, 5}})
		return NewSrli(cRs1Short(w), cRs1Short(w), imm), nil
	case 0b01: // C.SRAI
		if bit12 != 0 {
			return Inst{}, errf(word, "C.SRLI imm")
		}
		imm := cGatherU(w, []Mapping{{6, 2, 0}, {12, 12, 5}})
		return NewSrai(cRs1Short(w), cRs1Short(w), imm), nil
	case 0b10: // C.ANDI
		imm := cGatherS(w, []Mapping{{6, 2, 0}, {12, 12, 5}})
		return NewAndi(cRs1Short(w), cRs1Short(w), imm), nil
	case 0b11:
		if bit12 != 0 {
			return Inst{}, errf(word, "C1 Arith bit 12")
		}
		dest, src2 := cRs1Short(w), cRs2Short(w)
		switch cFunct2Low(w) {
		case 0b00:
			return NewSub(dest, dest, src2), nil
		case 0b01:
			return NewXor(dest, dest, src2), nil
		case 0b10:
			return NewOr(dest, dest, src2), nil
		case 0b11:
			return NewAnd(dest, dest, src2), nil
		}
	}
	return Inst{}, errf(word, "C1 funct=100 inst")
}

func decodeC1LuiAddi16sp(w uint16) (Inst, error) {
	word := uint32(w)
	if cRd(w) == Sp {
		imm := cGatherS(w, []Mapping{
			{2, 2, 5}, {4, 3, 7}, {5, 5, 6}, {6, 6, 4}, {12, 12, 9},
		})
		return NewAddi(Sp, Sp, imm), nil
	}
	uimm := cGatherS(w, []Mapping{{6, 2, 12}, {12, 12, 17}})
	if uimm.AsU32() == 0 {
		return Inst{}, errf(word, "C.LUI zero immediate")
	}
	return NewLui(cRd(w), uimm), nil
}

func decodeC2(w uint16, xlen XLEN) (Inst, error) {
	word := uint32(w)
	switch cFunct3(w) {
	case 0b000: // C.SLLI
		if cBit(w, 12) != 0 {
			return Inst{}, errf(word, "C.SLLI shift amount must be zero")
		}
		imm := cGatherU(w, []Mapping{{6, 2, 0}, {12, 12, 5}})
		return NewSlli(cRd(w), cRd(w), imm), nil
	case 0b010: // C.LWSP
		dest := cRd(w)
		if dest == X0 {
			return Inst{}, errf(word, "C.LWSP rd must not be zero")
		}
		off := cGatherU(w, []Mapping{{12, 12, 5}, {6, 4, 2}, {3, 2, 6}})
		return NewLw(dest, Sp, off), nil
	case 0b011: // C.LDSP
		if xlen.Is32() {
			return Inst{}, errf(word, "C.LDSP is not allowed on RV32")
		}
		dest := cRd(w)
		if dest == X0 {
			return Inst{}, errf(word, "C.LWSP rd must not be zero")
		}
		off := cGatherU(w, []Mapping{{12, 12, 5}, {6, 5, 3}, {4, 2, 6}})
		return NewLd(dest, Sp, off), nil
	case 0b100:
		return decodeC2Reg(w)
	case 0b110: // C.SWSP
		off := cGatherU(w, []Mapping{{8, 7, 6}, {12, 9, 2}})
		return NewSw(cRs2(w), Sp, off), nil
	case 0b111: // C.SDSP
		if xlen.Is32() {
			return Inst{}, errf(word, "C.SDSP is not allowed on RV32")
		}
		off := cGatherU(w, []Mapping{{9, 7, 6}, {12, 10, 3}})
		return NewSd(cRs2(w), Sp, off), nil
	default:
		return Inst{}, errf(word, "C2 funct3")
	}
}

func decodeC2Reg(w uint16) (Inst, error) {
	word := uint32(w)
	bit := cBit(w, 12)
	rs2 := cRs2(w)
	rdRs1 := cRd(w)
	switch {
	case bit == 0 && rs2 == X0: // C.JR
		if rdRs1 == X0 {
			return Inst{}, errf(word, "C.JR rs1 must not be zero")
		}
		return NewJalr(Zero, rdRs1, ImmZero), nil
	case bit == 0: // C.MV
		return NewAdd(cRd(w), Zero, rs2), nil
	case bit == 1 && rdRs1 == X0 && rs2 == X0: // C.EBREAK
		return NewEbreak(), nil
	case bit == 1 && rs2 == X0 && rdRs1 != X0: // C.JALR
		return NewJalr(Ra, rdRs1, ImmZero), nil
	case bit == 1: // C.ADD
		return NewAdd(rdRs1, rdRs1, rs2), nil
	default:
		return Inst{}, errf(word, "C2 funct=100 inst")
	}
}
