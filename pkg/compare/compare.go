package compare

// NilCheck handles the nil cases of comparing two pointers.
//
// Returns (equal, needsMoreChecks) where:
//   - equal: true if both are nil, false if only one is nil
//   - needsMoreChecks: true if both pointers are non-nil and their fields still need comparing
//
// Example:
//
//	func (s *DeleteStatement) Equal(other *DeleteStatement) bool {
//	    if eq, needsMoreChecks := compare.NilCheck(s, other); !needsMoreChecks {
//	        return eq
//	    }
//	    return s.Table == other.Table && ast.EqualExpressions(s.Where, other.Where)
//	}
func NilCheck[T any](a, b *T) (equal bool, needsMoreChecks bool) {
	if a == nil && b == nil {
		return true, false
	}
	if a == nil || b == nil {
		return false, false
	}
	return false, true
}

// Pointers compares the values behind two pointers.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	return compare.Pointers(s.Limit, other.Limit) && compare.Pointers(s.Offset, other.Offset)
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// Slices compares two slices element by element using equalFunc.
// Returns true if both slices have the same length and all corresponding elements are equal.
// A nil slice equals an empty one.
//
// Example:
//
//	return compare.Slices(c.GroupBy, other.GroupBy, ast.EqualExpressions)
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SlicesUnordered compares two slices regardless of order.
// Returns true if every element of a can be matched to a distinct element of b.
//
// Example:
//
//	return compare.SlicesUnordered(s.Fields, other.Fields, ast.SetField.Equal)
func SlicesUnordered[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}

	matched := make([]bool, len(b))

	for _, aElem := range a {
		found := false
		for j, bElem := range b {
			if !matched[j] && equalFunc(aElem, bElem) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
