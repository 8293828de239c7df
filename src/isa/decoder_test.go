package isa_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gemminiTrace/src/isa"
)

func opcodeWord(op uint64) isa.Register {
	reg, err := isa.NewRegister(op<<25, isa.OpcodeWordWidth)
	Expect(err).NotTo(HaveOccurred())
	return reg
}

func operand(value uint64) isa.Register {
	reg, err := isa.NewRegister(value, isa.OperandWidth)
	Expect(err).NotTo(HaveOccurred())
	return reg
}

// packed builds the row/col/address layout shared by mvin, mvout, compute and
// preload operands.
func packed(rows uint64, cols uint64, addr uint64) uint64 {
	return rows<<48 | cols<<32 | addr
}

var _ = Describe("Decoder", func() {
	Describe("Family dispatch", func() {
		DescribeTable("maps every known opcode to its family",
			func(op uint64, family isa.Family, mnemonic string) {
				inst, err := isa.Decode(opcodeWord(op), operand(0), operand(0))

				Expect(err).NotTo(HaveOccurred())
				Expect(inst.Family()).To(Equal(family))
				Expect(inst.Mnemonic()).To(Equal(mnemonic))
			},
			Entry("config", uint64(0), isa.FamilyConfig, "config_ex"),
			Entry("mvin opcode 1", uint64(1), isa.FamilyMvin, "mvin2"),
			Entry("mvin opcode 2", uint64(2), isa.FamilyMvin, "mvin1"),
			Entry("mvout", uint64(3), isa.FamilyMvout, "mvout"),
			Entry("compute_and_flip", uint64(4), isa.FamilyCompute, "compute_and_flip"),
			Entry("compute_and_stay", uint64(5), isa.FamilyCompute, "compute_and_stay"),
			Entry("preload", uint64(6), isa.FamilyPreload, "preload"),
			Entry("flush", uint64(7), isa.FamilyFlush, "flush"),
			Entry("mvin opcode 14", uint64(14), isa.FamilyMvin, "mvin3"),
		)

		DescribeTable("rejects opcodes outside the command set",
			func(op uint64) {
				inst, err := isa.Decode(opcodeWord(op), operand(0), operand(0))

				Expect(inst).To(BeNil())
				Expect(err).To(MatchError(isa.ErrUnrecognizedOpcode))
			},
			Entry("8", uint64(8)),
			Entry("13", uint64(13)),
			Entry("15", uint64(15)),
			Entry("127", uint64(127)),
		)

		It("ignores the low 25 bits of the opcode word", func() {
			word, err := isa.NewRegister(3<<25|0x1abcde, isa.OpcodeWordWidth)
			Expect(err).NotTo(HaveOccurred())

			inst, err := isa.Decode(word, operand(0), operand(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Family()).To(Equal(isa.FamilyMvout))
		})

		It("is a pure function of its inputs", func() {
			rs1 := operand(0x123456789abcdef0)
			rs2 := operand(packed(16, 8, 0x80))

			first, err := isa.Decode(opcodeWord(4), rs1, rs2)
			Expect(err).NotTo(HaveOccurred())
			second, err := isa.Decode(opcodeWord(4), rs1, rs2)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})

		It("rejects registers of the wrong width", func() {
			_, err := isa.Decode(operand(0), operand(0), operand(0))
			Expect(err).To(MatchError(isa.ErrInvalidWidth))
		})
	})

	Describe("Config", func() {
		It("decodes config_ex", func() {
			rs1 := operand(7<<16 | 1<<8 | 1<<3 | 1<<2)

			inst, err := isa.Decode(opcodeWord(0), rs1, operand(0))

			Expect(err).NotTo(HaveOccurred())
			Expect(inst).To(Equal(isa.Config{
				Kind:       isa.ConfigEx,
				Dataflow:   1,
				Activation: 1,
				ATranspose: 1,
				BTranspose: 0,
				SpadStride: 7,
			}))
			Expect(inst.Fields()).To(Equal([]isa.Field{
				{Key: "dataflow", Value: "1"},
				{Key: "act", Value: "1"},
				{Key: "A_T", Value: "1"},
				{Key: "B_T", Value: "0"},
				{Key: "spad_stride", Value: "7"},
			}))
		})

		It("decodes config_mvin with its load type", func() {
			rs1 := operand(5<<16 | 2<<3 | 1)
			rs2 := operand(0xffffffff00000040)

			inst, err := isa.Decode(opcodeWord(0), rs1, rs2)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Mnemonic()).To(Equal("config_mvin2"))
			Expect(inst).To(Equal(isa.Config{
				Kind:       isa.ConfigLoad,
				LoadType:   2,
				SpadStride: 5,
				DramStride: 64,
			}))
		})

		It("decodes config_mvout", func() {
			inst, err := isa.Decode(opcodeWord(0), operand(2), operand(128))

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Mnemonic()).To(Equal("config_mvout"))
			Expect(inst.Fields()).To(Equal([]isa.Field{{Key: "dram_stride", Value: "128"}}))
		})

		It("falls back to config_norm", func() {
			inst, err := isa.Decode(opcodeWord(0), operand(3), operand(0))

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Mnemonic()).To(Equal("config_norm"))
			Expect(inst.Fields()).To(BeEmpty())
		})
	})

	Describe("Mvin and Mvout", func() {
		It("extracts addresses and sizes", func() {
			inst, err := isa.Decode(opcodeWord(2), operand(0x123456789abcdef0), operand(packed(16, 8, 0x80)))

			Expect(err).NotTo(HaveOccurred())
			Expect(inst).To(Equal(isa.Mvin{
				Variant:  isa.Mvin1,
				DramAddr: 0x123456789abcdef0,
				SpadAddr: 0x80,
				NumCol:   8,
				NumRow:   16,
			}))
			Expect(inst.Fields()).To(Equal([]isa.Field{
				{Key: "dram_addr", Value: "0x123456789abcdef0"},
				{Key: "spad_addr", Value: "0x80"},
				{Key: "num_col", Value: "8"},
				{Key: "num_row", Value: "16"},
			}))
		})

		It("shares the layout with mvout", func() {
			inst, err := isa.Decode(opcodeWord(3), operand(0x1000), operand(packed(4, 4, 0xc0000000)))

			Expect(err).NotTo(HaveOccurred())
			Expect(inst).To(Equal(isa.Mvout{
				DramAddr: 0x1000,
				SpadAddr: 0xc0000000,
				NumCol:   4,
				NumRow:   4,
			}))
		})
	})

	Describe("Compute and Preload", func() {
		It("splits A and BD operands", func() {
			inst, err := isa.Decode(opcodeWord(5), operand(packed(1, 2, 0x10)), operand(packed(3, 4, 0x20)))

			Expect(err).NotTo(HaveOccurred())
			Expect(inst).To(Equal(isa.Compute{
				Flip:       false,
				SpadAddrA:  0x10,
				NumColA:    2,
				NumRowA:    1,
				SpadAddrBD: 0x20,
				NumColBD:   4,
				NumRowBD:   3,
			}))
		})

		It("splits D and C operands", func() {
			inst, err := isa.Decode(opcodeWord(6), operand(packed(16, 16, 0x200)), operand(packed(16, 16, 0x80000000)))

			Expect(err).NotTo(HaveOccurred())
			Expect(inst).To(Equal(isa.Preload{
				SpadAddrD: 0x200,
				NumColD:   16,
				NumRowD:   16,
				SpadAddrC: 0x80000000,
				NumColC:   16,
				NumRowC:   16,
			}))
			Expect(inst.Fields()[3]).To(Equal(isa.Field{Key: "spad_addr_C", Value: "0x80000000"}))
		})
	})

	Describe("DecodeRaw", func() {
		It("decodes decimal strings", func() {
			raw := isa.RawCommand{
				Inst: strconv.FormatUint(1<<25, 10),
				Rs1:  "4611686018427387904",
				Rs2:  "17592186044416",
			}

			inst, err := isa.DecodeRaw(raw)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst).To(Equal(isa.Mvin{
				Variant:  isa.Mvin2,
				DramAddr: 0x4000000000000000,
				NumCol:   4096,
			}))
		})

		It("reports oversized register values", func() {
			raw := isa.RawCommand{Inst: "4294967296", Rs1: "0", Rs2: "0"}

			_, err := isa.DecodeRaw(raw)
			Expect(err).To(MatchError(isa.ErrInvalidWidth))

			raw = isa.RawCommand{Inst: "0", Rs1: "0", Rs2: "99999999999999999999"}
			_, err = isa.DecodeRaw(raw)
			Expect(err).To(MatchError(isa.ErrInvalidWidth))
		})

		It("treats a small opcode word as config", func() {
			inst, err := isa.DecodeRaw(isa.RawCommand{Inst: "1", Rs1: "0", Rs2: "0"})

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Family()).To(Equal(isa.FamilyConfig))
		})
	})
})
