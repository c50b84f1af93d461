// Package compare provides the generic helpers behind the structural Equal methods of
// the syntax tree.
//
// Syntax tree nodes hold optional pointers (LIMIT, OFFSET), ordered child lists
// (projections, ON expressions), and unordered ones (UPDATE assignments). Each shape
// gets one helper so that Equal methods read as a single boolean expression:
//
//	func (s *SelectStatement) Equal(other *SelectStatement) bool {
//	    if eq, needsMoreChecks := compare.NilCheck(s, other); !needsMoreChecks {
//	        return eq
//	    }
//	    return s.Body.Equal(other.Body) &&
//	        compare.Slices(s.OrderBy, other.OrderBy, OrderBy.Equal) &&
//	        compare.Pointers(s.Limit, other.Limit) &&
//	        compare.Pointers(s.Offset, other.Offset)
//	}
package compare
