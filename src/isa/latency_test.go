package isa_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gemminiTrace/src/isa"
	"gemminiTrace/src/stage"
)

var _ = Describe("Classify", func() {
	var everyStage *stage.Cycles

	BeforeEach(func() {
		everyStage = stage.NewCycles()
		for id, name := range stage.Names() {
			everyStage.Set(name, int64(10*id))
		}
	})

	It("measures mvin from LD_CTRL_EXECUTE to LEAVE_LD_CTRL", func() {
		stages := stage.FromMap(map[stage.Name]int64{
			stage.LdCtrlExecute: 100,
			stage.LeaveLdCtrl:   150,
		})

		interval, ok, err := isa.Classify(isa.Mvin{Variant: isa.Mvin1}, stages)

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(interval).To(Equal(isa.Interval{WorkType: isa.WorkTypeMemory, Start: 100, Duration: 50}))
	})

	It("measures mvout from ST_CTRL_EXECUTE to ROB_COMPLETE", func() {
		stages := stage.FromMap(map[stage.Name]int64{
			stage.StCtrlExecute: 200,
			stage.RobComplete:   260,
		})

		interval, ok, err := isa.Classify(isa.Mvout{}, stages)

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(interval).To(Equal(isa.Interval{WorkType: isa.WorkTypeMemory, Start: 200, Duration: 60}))
		Expect(interval.End()).To(Equal(int64(260)))
	})

	It("measures compute between the execute controller events", func() {
		stages := stage.FromMap(map[stage.Name]int64{
			stage.EnterExCtrl: 300,
			stage.LeaveExCtrl: 342,
		})

		interval, ok, err := isa.Classify(isa.Compute{Flip: true}, stages)

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(interval).To(Equal(isa.Interval{WorkType: isa.WorkTypeCompute, Start: 300, Duration: 42}))
	})

	It("measures flush across the reorder buffer without a work type", func() {
		stages := stage.FromMap(map[stage.Name]int64{
			stage.RobAlloc:    10,
			stage.RobComplete: 40,
		})

		interval, ok, err := isa.Classify(isa.Flush{}, stages)

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(interval).To(Equal(isa.Interval{WorkType: isa.WorkTypeNone, Start: 10, Duration: 30}))
	})

	DescribeTable("never draws config and preload",
		func(instr isa.Instruction) {
			interval, ok, err := isa.Classify(instr, everyStage)

			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(interval).To(Equal(isa.Interval{}))

			_, ok, err = isa.Classify(instr, stage.NewCycles())
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		},
		Entry("config", isa.Config{Kind: isa.ConfigEx}),
		Entry("preload", isa.Preload{}),
	)

	It("reports a missing endpoint as recoverable", func() {
		stages := stage.FromMap(map[stage.Name]int64{stage.LdCtrlExecute: 100})

		_, ok, err := isa.Classify(isa.Mvin{}, stages)

		Expect(ok).To(BeFalse())
		Expect(err).To(MatchError(isa.ErrMissingStageEvent))
		Expect(err.Error()).To(ContainSubstring("LEAVE_LD_CTRL"))
	})

	It("passes negative durations through", func() {
		stages := stage.FromMap(map[stage.Name]int64{
			stage.EnterExCtrl: 500,
			stage.LeaveExCtrl: 450,
		})

		interval, ok, err := isa.Classify(isa.Compute{}, stages)

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(interval.Duration).To(Equal(int64(-50)))
	})

	It("exposes the endpoints per family", func() {
		workType, begin, end, ok := isa.Endpoints(isa.FamilyMvout)

		Expect(ok).To(BeTrue())
		Expect(workType).To(Equal(isa.WorkTypeMemory))
		Expect(begin).To(Equal(stage.StCtrlExecute))
		Expect(end).To(Equal(stage.RobComplete))

		_, _, _, ok = isa.Endpoints(isa.FamilyPreload)
		Expect(ok).To(BeFalse())
	})
})
