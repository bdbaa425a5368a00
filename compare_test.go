package sift_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sift"
	"sift/internal/probe"
	"sift/internal/testutil"
)

var _ = Describe("Compare", func() {
	Describe("Equal", func() {
		It("Should be reflexive", func() {
			in := []int{1, 2, 2, 3}
			Expect(sift.Equal(testutil.Seq(in...), testutil.Seq(in...))).To(BeTrue())
		})
		It("Should be true for two empty sequences", func() {
			Expect(sift.Equal(testutil.Seq[int](), testutil.Seq[int]())).To(BeTrue())
		})
		It("Should be false for an empty and a non-empty sequence", func() {
			Expect(sift.Equal(testutil.Seq[int](), testutil.Seq(1))).To(BeFalse())
			Expect(sift.Equal(testutil.Seq(1), testutil.Seq[int]())).To(BeFalse())
		})
		It("Should be false when the first sequence is a proper prefix", func() {
			Expect(sift.Equal(testutil.Seq(1, 2), testutil.Seq(1, 2, 3))).To(BeFalse())
		})
		It("Should be false when the second sequence is a proper prefix", func() {
			Expect(sift.Equal(testutil.Seq(1, 2, 3), testutil.Seq(1, 2))).To(BeFalse())
		})
		It("Should stop the traversal at the first mismatch", func() {
			p := probe.New("equal")
			c := probe.NewCounter(p, "visits")
			first := testutil.CountedSeq(c, testutil.Seq(1, 9, 3, 4))
			Expect(sift.Equal(first, testutil.Seq(1, 2, 3, 4))).To(BeFalse())
			Expect(c.Count()).To(Equal(2))
		})
		It("Should visit each single-use source at most once", func() {
			Expect(sift.Equal(testutil.OneShot(1, 2), testutil.OneShot(1, 2))).To(BeTrue())
		})
	})
	Describe("EqualBy", func() {
		It("Should compare case-insensitively under Fold", func() {
			first := testutil.Seq("a", "B", "c")
			second := testutil.Seq("A", "b", "C")
			Expect(sift.EqualBy(first, second, sift.Fold())).To(BeTrue())
		})
		It("Should fail at a pairwise mismatch even with equal lengths", func() {
			first := testutil.Seq("a", "b")
			second := testutil.Seq("b", "a")
			Expect(sift.EqualBy(first, second, sift.Fold())).To(BeFalse())
		})
	})
})
