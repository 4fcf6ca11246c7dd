package orderedset

// BulkLoad adds every element of items in order, reporting progress after
// each insertion through progress (processed count, total count). progress
// may be nil.
func (s *Set[T]) BulkLoad(items []T, progress func(processed, total int)) error {
	for i, x := range items {
		if err := s.Add(x); err != nil {
			return err
		}
		if progress != nil {
			progress(i+1, len(items))
		}
	}
	return nil
}
