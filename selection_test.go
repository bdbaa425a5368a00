package sift_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sift"
	"sift/internal/probe"
	"sift/internal/testutil"
)

var _ = Describe("Selection", func() {
	Describe("ElementAt", func() {
		It("Should return the element at the index in visitation order", func() {
			v, err := sift.ElementAt(testutil.Seq("a", "b", "c"), 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("b"))
		})
		It("Should return the only element of a singleton at index zero", func() {
			v, err := sift.ElementAt(testutil.Seq("a"), 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("a"))
		})
		It("Should fail with ErrIndexOutOfRange on an empty sequence", func() {
			_, err := sift.ElementAt(testutil.Seq[int](), 0)
			Expect(sift.IsErrorOfType(err, sift.ErrIndexOutOfRange)).To(BeTrue())
		})
		It("Should fail with ErrIndexOutOfRange on a negative index", func() {
			_, err := sift.ElementAt(testutil.Seq(1, 2), -1)
			Expect(sift.IsErrorOfType(err, sift.ErrIndexOutOfRange)).To(BeTrue())
		})
		It("Should fail with ErrIndexOutOfRange past the end", func() {
			_, err := sift.ElementAt(testutil.Seq(1, 2), 2)
			Expect(sift.IsErrorOfType(err, sift.ErrIndexOutOfRange)).To(BeTrue())
		})
		It("Should visit no elements past the index", func() {
			p := probe.New("elementAt")
			c := probe.NewCounter(p, "visits")
			seq := testutil.CountedSeq(c, testutil.SeqInts(100))
			v, err := sift.ElementAt(seq, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(2))
			Expect(c.Count()).To(Equal(3))
		})
	})
	Describe("First", func() {
		It("Should return the first element satisfying the predicate", func() {
			v, err := sift.First(testutil.Seq(1, 2, 2, 3), func(x int) bool { return x == 2 })
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(2))
		})
		It("Should fail with ErrNoMatch when nothing satisfies the predicate", func() {
			_, err := sift.First(testutil.Seq(1, 3), func(x int) bool { return x == 2 })
			Expect(sift.IsErrorOfType(err, sift.ErrNoMatch)).To(BeTrue())
		})
		It("Should fail with ErrNoMatch on an empty sequence", func() {
			_, err := sift.First(testutil.Seq[int](), func(int) bool { return true })
			Expect(sift.IsErrorOfType(err, sift.ErrNoMatch)).To(BeTrue())
		})
		It("Should stop the traversal at the match", func() {
			p := probe.New("first")
			c := probe.NewCounter(p, "pred")
			pred := testutil.Counted(c, func(x int) bool { return x >= 3 })
			v, err := sift.First(testutil.Seq(1, 2, 3, 4, 5), pred)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(3))
			Expect(c.Count()).To(Equal(3))
		})
	})
	Describe("Last", func() {
		It("Should return the last element satisfying the predicate", func() {
			v, err := sift.Last(testutil.Seq(1, 2, 2, 3), func(x int) bool { return x == 2 })
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(2))
		})
		It("Should keep matching past a non-matching run", func() {
			v, err := sift.Last(testutil.Seq(2, 9, 9, 2, 9), func(x int) bool { return x == 2 })
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(2))
		})
		It("Should visit the entire sequence", func() {
			p := probe.New("last")
			c := probe.NewCounter(p, "pred")
			pred := testutil.Counted(c, func(x int) bool { return x == 1 })
			_, err := sift.Last(testutil.Seq(1, 2, 3, 4), pred)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Count()).To(Equal(4))
		})
		It("Should fail with ErrNoMatch when nothing satisfies the predicate", func() {
			_, err := sift.Last(testutil.Seq[int](), func(int) bool { return true })
			Expect(sift.IsErrorOfType(err, sift.ErrNoMatch)).To(BeTrue())
		})
	})
	Describe("Single", func() {
		It("Should return the unique element satisfying the predicate", func() {
			v, err := sift.Single(testutil.Seq("a", "b"), func(s string) bool { return s == "a" })
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("a"))
		})
		It("Should fail with ErrNoMatch on an empty sequence", func() {
			_, err := sift.Single(testutil.Seq[string](), func(string) bool { return true })
			Expect(sift.IsErrorOfType(err, sift.ErrNoMatch)).To(BeTrue())
		})
		It("Should fail with ErrMultipleMatches when two elements match", func() {
			_, err := sift.Single(testutil.Seq("a", "a"), func(s string) bool { return s == "a" })
			Expect(sift.IsErrorOfType(err, sift.ErrMultipleMatches)).To(BeTrue())
		})
		It("Should fail the moment a second match is found", func() {
			p := probe.New("single")
			c := probe.NewCounter(p, "pred")
			pred := testutil.Counted(c, func(x int) bool { return x == 2 })
			_, err := sift.Single(testutil.Seq(2, 2, 3, 4), pred)
			Expect(sift.IsErrorOfType(err, sift.ErrMultipleMatches)).To(BeTrue())
			Expect(c.Count()).To(Equal(2))
		})
		It("Should scan past the first match before returning success", func() {
			p := probe.New("single")
			c := probe.NewCounter(p, "pred")
			pred := testutil.Counted(c, func(x int) bool { return x == 1 })
			v, err := sift.Single(testutil.Seq(1, 2, 3), pred)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(1))
			Expect(c.Count()).To(Equal(3))
		})
	})
	Describe("Failure values", func() {
		It("Should be inspectable with errors.Is", func() {
			_, err := sift.First(testutil.Seq[int](), func(int) bool { return true })
			Expect(errors.Is(err, sift.Error{Type: sift.ErrNoMatch})).To(BeTrue())
			Expect(errors.Is(err, sift.Error{Type: sift.ErrMultipleMatches})).To(BeFalse())
		})
		It("Should survive wrapping", func() {
			_, err := sift.ElementAt(testutil.Seq[int](), 3)
			wrapped := errors.Wrap(err, "rendering sample")
			Expect(sift.IsErrorOfType(wrapped, sift.ErrIndexOutOfRange)).To(BeTrue())
		})
	})
})
