package orderedset

import (
	"math/rand"
	"sort"
	"testing"
)

func collect(s *Set[int]) []int {
	var got []int
	for x := range s.Iterate() {
		got = append(got, x)
	}
	return got
}

func TestAddContainsRemove(t *testing.T) {
	s := Natural[int](4)
	for _, x := range []int{5, 3, 8, 1, 9, 2} {
		if err := s.Add(x); err != nil {
			t.Fatalf("Add(%d): %v", x, err)
		}
	}
	if s.Count() != 6 {
		t.Fatalf("Count() = %d, want 6", s.Count())
	}
	if !s.Contains(8) {
		t.Fatal("expected Contains(8) = true")
	}
	if s.Contains(100) {
		t.Fatal("expected Contains(100) = false")
	}
	removed, err := s.Remove(8)
	if err != nil || !removed {
		t.Fatalf("Remove(8) = (%v, %v), want (true, nil)", removed, err)
	}
	if s.Contains(8) {
		t.Fatal("8 still present after Remove")
	}
}

func TestDuplicateKeyRejectedByDefault(t *testing.T) {
	s := Natural[int](4)
	if err := s.Add(1); err != nil {
		t.Fatalf("Add(1): %v", err)
	}
	if err := s.Add(1); err == nil {
		t.Fatal("expected duplicate Add to fail")
	}
}

func TestScenarioRemoveSequence(t *testing.T) {
	s := Natural[int](3)
	for i := 1; i <= 9; i++ {
		if err := s.Add(i); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	if _, err := s.Remove(3); err != nil {
		t.Fatalf("Remove(3): %v", err)
	}
	if err := s.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt(0): %v", err)
	}
	want := []int{2, 4, 5, 6, 7, 8, 9}
	got := collect(s)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAtMatchesForwardIterationOrder(t *testing.T) {
	s := Natural[int](5)
	for i := 0; i < 500; i++ {
		_ = s.Add(rand.Intn(2000))
	}
	i := 0
	for x := range s.Iterate() {
		at, err := s.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if at != x {
			t.Fatalf("At(%d) = %d, iteration yielded %d", i, at, x)
		}
		i++
	}
}

func TestWhereGreaterOrEqualAndLessOrEqualBackwards(t *testing.T) {
	s := Natural[int](4)
	vals := []int{10, 20, 30, 40, 50}
	for _, v := range vals {
		_ = s.Add(v)
	}

	var ge []int
	for x := range s.WhereGreaterOrEqual(25) {
		ge = append(ge, x)
	}
	wantGE := []int{30, 40, 50}
	if !equalInts(ge, wantGE) {
		t.Fatalf("WhereGreaterOrEqual(25) = %v, want %v", ge, wantGE)
	}

	var le []int
	for x := range s.WhereLessOrEqualBackwards(25) {
		le = append(le, x)
	}
	wantLE := []int{20, 10}
	if !equalInts(le, wantLE) {
		t.Fatalf("WhereLessOrEqualBackwards(25) = %v, want %v", le, wantLE)
	}
}

func TestWhereInRange(t *testing.T) {
	s := Natural[int](4)
	for i := 0; i < 10; i++ {
		_ = s.Add(i * 10)
	}
	seq, err := s.WhereInRange(15, 65)
	if err != nil {
		t.Fatalf("WhereInRange: %v", err)
	}
	var got []int
	for x := range seq {
		got = append(got, x)
	}
	want := []int{20, 30, 40, 50, 60}
	if !equalInts(got, want) {
		t.Fatalf("WhereInRange(15,65) = %v, want %v", got, want)
	}

	if _, err := s.WhereInRange(10, 5); err == nil {
		t.Fatal("expected ErrInvalidRange for hi < lo")
	}
}

func TestDuplicatesAllowedWithBias(t *testing.T) {
	s := Natural[int](4)
	if err := s.SetAllowDuplicates(true); err != nil {
		t.Fatalf("SetAllowDuplicates(true): %v", err)
	}
	s.SetInsertBias(BiasTail)
	for i := 0; i < 50; i++ {
		if err := s.Add(5); err != nil {
			t.Fatalf("Add(5) #%d: %v", i, err)
		}
	}
	if s.Count() != 50 {
		t.Fatalf("Count() = %d, want 50", s.Count())
	}
	if err := s.SetAllowDuplicates(false); err == nil {
		t.Fatal("expected disabling duplicates on a non-empty set to fail")
	}
}

func TestClearThenRebuildMatchesFreshBuild(t *testing.T) {
	vals := make([]int, 200)
	for i := range vals {
		vals[i] = rand.Intn(5000)
	}

	built := Natural[int](6)
	for _, v := range vals {
		_ = built.Add(v)
	}

	reused := Natural[int](6)
	for i := 0; i < 1000; i++ {
		_ = reused.Add(i)
	}
	_ = reused.Clear()
	for _, v := range vals {
		_ = reused.Add(v)
	}

	a, b := collect(built), collect(reused)
	if !equalInts(a, b) {
		t.Fatalf("cleared+rebuilt set diverges from a fresh build:\n%v\n%v", a, b)
	}
}

func TestRemoveAtRandomScheduleMatchesReference(t *testing.T) {
	n := 300
	s := Natural[int](5)
	for i := 0; i < n; i++ {
		_ = s.Add(i)
	}
	ref := make([]int, n)
	for i := range ref {
		ref[i] = i
	}

	for len(ref) > 0 {
		i := rand.Intn(len(ref))
		if err := s.RemoveAt(i); err != nil {
			t.Fatalf("RemoveAt(%d): %v", i, err)
		}
		ref = append(ref[:i], ref[i+1:]...)
		if got := collect(s); !equalInts(got, ref) {
			t.Fatalf("after removing rank %d: got %v, want %v", i, got, ref)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Scenario 3 from the container's spec (boundary-index half): with
// duplicates allowed and a key k known to be absent from the set,
// firstIndexWhereGreaterThan(k) and lastIndexWhereLessThan(k) must locate
// the surrounding gap exactly, since the not-found path needs no
// duplicate-run adjustment.
func TestFirstLastIndexAroundAbsentKey(t *testing.T) {
	s := Natural[int](10)
	_ = s.SetAllowDuplicates(true)
	vals := []int{10, 10, 10, 20, 20, 30, 40, 40, 40, 40}
	for _, v := range vals {
		_ = s.Add(v)
	}

	// 25 is absent, strictly between the run of 20s and the single 30.
	first := s.FirstIndexWhereGreaterThan(25)
	last := s.LastIndexWhereLessThan(25)
	if last != 4 {
		t.Fatalf("LastIndexWhereLessThan(25) = %d, want 4", last)
	}
	if first != 5 {
		t.Fatalf("FirstIndexWhereGreaterThan(25) = %d, want 5", first)
	}
	got, _ := s.At(last)
	if got != 20 {
		t.Fatalf("At(LastIndexWhereLessThan(25)) = %d, want 20", got)
	}
	got, _ = s.At(first)
	if got != 30 {
		t.Fatalf("At(FirstIndexWhereGreaterThan(25)) = %d, want 30", got)
	}
}

// Scenario 3, duplicate-dense case: with ~10 copies of every distinct key
// (as in the container's own 10,000-values/1,000-keys setup),
// firstIndexWhereGreaterThan(k-10) must land on the first copy of k, and
// lastIndexWhereLessThan(k+10) must land on the last copy of k — skipping
// the neighbor key's entire run, not just one element of it.
func TestFirstLastIndexSkipsWholeDuplicateRun(t *testing.T) {
	s := Natural[int](6)
	_ = s.SetAllowDuplicates(true)
	s.SetInsertBias(BiasTail)
	// Keys 0,10,...,990, each inserted 10 times, in shuffled order.
	var vals []int
	for k := 0; k < 100; k++ {
		for i := 0; i < 10; i++ {
			vals = append(vals, k*10)
		}
	}
	for i := len(vals) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		vals[i], vals[j] = vals[j], vals[i]
	}
	for _, v := range vals {
		_ = s.Add(v)
	}

	for _, k := range []int{0, 250, 500, 990} {
		first := s.FirstIndexWhereGreaterThan(k - 10)
		last := s.LastIndexWhereLessThan(k + 10)

		gotFirst, err := s.At(first)
		if err != nil || gotFirst != k {
			t.Fatalf("k=%d: At(FirstIndexWhereGreaterThan(k-10)) = (%d, %v), want %d", k, gotFirst, err, k)
		}
		gotLast, err := s.At(last)
		if err != nil || gotLast != k {
			t.Fatalf("k=%d: At(LastIndexWhereLessThan(k+10)) = (%d, %v), want %d", k, gotLast, err, k)
		}
		if last-first != 9 {
			t.Fatalf("k=%d: run bounds [%d,%d] don't span exactly 10 entries", k, first, last)
		}
	}
}

func TestNaturalSortsAscending(t *testing.T) {
	s := Natural[int](4)
	vals := rand.Perm(100)
	for _, v := range vals {
		_ = s.Add(v)
	}
	got := collect(s)
	if !sort.IntsAreSorted(got) {
		t.Fatalf("natural order set not sorted: %v", got)
	}
}
