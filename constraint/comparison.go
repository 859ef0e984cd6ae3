package constraint

//go:generate go tool stringer -linecomment -type=Comparison

// Comparison is the relation between the left and right side of a
// Constraint.
type Comparison int

const (
	CMP_INVALID Comparison = iota // invalid
	CMP_EQ                        // ==
	CMP_NE                        // !=
	CMP_LT                        // <
	CMP_GT                        // >
	CMP_GE                        // >=
	CMP_LE                        // <=
)

// negation maps each comparison to its complement.
var negation = [...]Comparison{
	CMP_INVALID: CMP_INVALID,
	CMP_EQ:      CMP_NE,
	CMP_NE:      CMP_EQ,
	CMP_LT:      CMP_GE,
	CMP_GT:      CMP_LE,
	CMP_GE:      CMP_LT,
	CMP_LE:      CMP_GT,
}

// Valid returns true if the comparison is a known relation other than
// CMP_INVALID.
func (cmp Comparison) Valid() bool {
	return cmp > CMP_INVALID && int(cmp) < len(negation)
}

// Negate returns the complement of the comparison, as used for the
// untaken side of a branch. CMP_INVALID negates to itself.
func (cmp Comparison) Negate() Comparison {
	if !cmp.Valid() {
		return CMP_INVALID
	}
	return negation[cmp]
}
