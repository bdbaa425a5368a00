// Command siftdemo drives every operation in the sift catalogue over sample
// integer and text sequences, a custom single-use event stream, and both
// plain and case-insensitive equality rules. It exists to exercise the
// library from the outside; all rendering happens here - the library itself
// never prints.
package main

import (
	"flag"
	"iter"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sift"
)

// event is a sample record keyed by a unique ID. Two events are the same
// event when their IDs match, regardless of payload.
type event struct {
	ID      uuid.UUID
	Payload string
}

func byID() sift.Rule[event] {
	return sift.NewRule(
		func(a, b event) bool { return a.ID == b.ID },
		func(v event) any { return v.ID },
	)
}

// eventStream produces its events exactly once. A second traversal yields
// nothing, which is the weakest sequence contract sift supports.
type eventStream struct {
	events []event
	spent  bool
}

func (s *eventStream) Seq() iter.Seq[event] {
	return func(yield func(event) bool) {
		if s.spent {
			return
		}
		s.spent = true
		for _, e := range s.events {
			if !yield(e) {
				return
			}
		}
	}
}

func ints(values ...int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func texts(values ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func main() {
	nEvents := flag.Int("events", 4, "number of sample events in the single-use stream")
	flag.Parse()
	log.SetLevel(log.InfoLevel)

	numbers := []int{1, 2, 2, 3, 4}
	others := []int{3, 4, 4, 5}
	words := []string{"a", "b", "B", "c"}

	// |||||| QUANTIFIERS ||||||

	log.Infof("all positive: %v", sift.All(ints(numbers...), func(x int) bool { return x > 0 }))
	log.Infof("any equal to 2: %v", sift.Any(ints(numbers...), func(x int) bool { return x == 2 }))
	log.Infof("count of 'b' (case-insensitive): %d",
		sift.Count(texts(words...), func(s string) bool { return strings.EqualFold(s, "b") }))
	log.Infof("contains 3: %v", sift.Contains(ints(numbers...), 3))
	log.Infof("contains 'B' under fold: %v", sift.ContainsBy(texts(words...), "B", sift.Fold()))

	// |||||| SET ALGEBRA ||||||

	log.Infof("distinct: %v", sift.Distinct(ints(numbers...)))
	log.Infof("distinct words under fold: %v", sift.DistinctBy(texts(words...), sift.Fold()))
	log.Infof("except: %v", sift.Except(ints(numbers...), ints(others...)))
	log.Infof("intersect: %v", sift.Intersect(ints(numbers...), ints(others...)))
	log.Infof("union: %v", sift.Union(ints(numbers...), ints(others...)))

	// |||||| SELECTION ||||||

	if v, err := sift.ElementAt(ints(numbers...), 2); err == nil {
		log.Infof("element at 2: %d", v)
	}
	if _, err := sift.ElementAt(ints(numbers...), 40); sift.IsErrorOfType(err, sift.ErrIndexOutOfRange) {
		log.Warnf("element at 40: %v", err)
	}
	if v, err := sift.First(ints(numbers...), func(x int) bool { return x >= 3 }); err == nil {
		log.Infof("first >= 3: %d", v)
	}
	if v, err := sift.Last(ints(numbers...), func(x int) bool { return x == 2 }); err == nil {
		log.Infof("last == 2: %d", v)
	}
	if _, err := sift.Single(ints(numbers...), func(x int) bool { return x == 2 }); sift.IsErrorOfType(err, sift.ErrMultipleMatches) {
		log.Warnf("single == 2: %v", err)
	}
	if v, err := sift.Single(ints(numbers...), func(x int) bool { return x == 4 }); err == nil {
		log.Infof("single == 4: %d", v)
	}

	// |||||| FILTERING ||||||

	log.Infof("skip while < 3: %v", sift.SkipWhile(ints(numbers...), func(x int) bool { return x < 3 }))
	log.Infof("where >= 3: %v", sift.Where(ints(numbers...), func(x int) bool { return x >= 3 }))

	// |||||| COMPARISON ||||||

	log.Infof("equal to itself: %v", sift.Equal(ints(numbers...), ints(numbers...)))
	log.Infof("fold-equal to upper-cased self: %v",
		sift.EqualBy(texts("a", "b"), texts("A", "B"), sift.Fold()))

	// |||||| SINGLE-USE STREAM ||||||

	events := make([]event, *nEvents)
	for i := range events {
		events[i] = event{ID: uuid.New(), Payload: "payload"}
	}
	// Duplicate an ID so the by-ID rule has something to collapse.
	if len(events) > 1 {
		events[len(events)-1].ID = events[0].ID
	}
	stream := &eventStream{events: events}
	distinct := sift.DistinctBy(stream.Seq(), byID())
	log.Infof("distinct events by ID: %d of %d", len(distinct), len(events))
}
