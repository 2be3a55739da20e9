package deal

// Normalize guarantees the five numeric-ish attributes are text so every
// scoring function can run them through ParseNumeric. Numbers become their
// display text and nulls become "". Everything else passes through.
func Normalize(f Fields) Fields {
	out := f
	for _, s := range []*Scalar{
		&out.AbsoluteRent,
		&out.RentGrowth,
		&out.Acreage,
		&out.BoxSize,
		&out.NationalLocations,
	} {
		*s = s.AsText()
	}
	return out
}
