package models

// Int64 is a lenient integer field. It accepts a JSON number, a numeric string
// or null; anything unparsable reads as zero.
type Int64 int64

func (n *Int64) UnmarshalJSON(b []byte) error {
	var q Quantity
	_ = q.UnmarshalJSON(b)
	*n = Int64(q.Value().IntPart())
	return nil
}
