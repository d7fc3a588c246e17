package census

// Derive appends the proportion columns. It expects imputation to have run
// already, so no numeric cell is missing; a zero TotalPop yields zero
// proportions rather than dividing by zero.
func Derive(ds *Dataset) {
	for i := range ds.Rows {
		r := &ds.Rows[i]
		if r.TotalPop == 0 {
			r.FemaleProportion = 0
			r.MaleProportion = 0
			continue
		}
		r.FemaleProportion = r.Female / r.TotalPop
		r.MaleProportion = r.Male / r.TotalPop
	}
	ds.Derived = true
}
