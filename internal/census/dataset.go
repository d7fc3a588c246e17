package census

import "math"

// Column names as they appear in the raw input files.
const (
	ColState     = "State"
	ColTotalPop  = "TotalPop"
	ColHispanic  = "Hispanic"
	ColWhite     = "White"
	ColBlack     = "Black"
	ColNative    = "Native"
	ColAsian     = "Asian"
	ColPacific   = "Pacific"
	ColIncome    = "Income"
	ColGenderPop = "GenderPop"
	ColMale      = "Male"
	ColFemale    = "Female"

	ColFemaleProportion = "FemaleProportion"
	ColMaleProportion   = "MaleProportion"
)

// InputColumns are the columns every input file must provide, in canonical order.
var InputColumns = []string{
	ColState, ColTotalPop, ColHispanic, ColWhite, ColBlack, ColNative,
	ColAsian, ColPacific, ColIncome, ColGenderPop,
}

// ShareColumns are the demographic percentage columns.
var ShareColumns = []string{
	ColHispanic, ColWhite, ColBlack, ColNative, ColAsian, ColPacific,
}

// OutputColumns is the cleaned column order before derived columns.
var OutputColumns = []string{
	ColState, ColTotalPop, ColHispanic, ColWhite, ColBlack, ColNative,
	ColAsian, ColPacific, ColIncome, ColMale, ColFemale,
}

// DerivedColumns are appended by Derive in this order.
var DerivedColumns = []string{ColFemaleProportion, ColMaleProportion}

// Row is one state's aggregate demographic/economic record. Numeric cells use
// NaN as the missing marker until imputation fills them.
type Row struct {
	State    string
	TotalPop float64
	Hispanic float64
	White    float64
	Black    float64
	Native   float64
	Asian    float64
	Pacific  float64
	Income   float64
	Male     float64
	Female   float64

	FemaleProportion float64
	MaleProportion   float64
}

// Dataset is the rectangular table flowing through the pipeline, one Row per
// census record.
type Dataset struct {
	Rows    []Row
	Derived bool
}

type numericColumn struct {
	name string
	get  func(*Row) *float64
}

// numericColumns enumerates the imputable numeric columns. Derived columns are
// excluded: they are computed after imputation and can never be missing.
var numericColumns = []numericColumn{
	{ColTotalPop, func(r *Row) *float64 { return &r.TotalPop }},
	{ColHispanic, func(r *Row) *float64 { return &r.Hispanic }},
	{ColWhite, func(r *Row) *float64 { return &r.White }},
	{ColBlack, func(r *Row) *float64 { return &r.Black }},
	{ColNative, func(r *Row) *float64 { return &r.Native }},
	{ColAsian, func(r *Row) *float64 { return &r.Asian }},
	{ColPacific, func(r *Row) *float64 { return &r.Pacific }},
	{ColIncome, func(r *Row) *float64 { return &r.Income }},
	{ColMale, func(r *Row) *float64 { return &r.Male }},
	{ColFemale, func(r *Row) *float64 { return &r.Female }},
}

// NumericColumns returns the names of the imputable numeric columns in
// canonical order.
func NumericColumns() []string {
	out := make([]string, len(numericColumns))
	for i, c := range numericColumns {
		out[i] = c.name
	}
	return out
}

// Column returns the values of a numeric column, including NaNs for missing
// cells. The derived columns are available only after Derive has run.
func (d *Dataset) Column(name string) []float64 {
	var get func(*Row) *float64
	switch name {
	case ColFemaleProportion:
		get = func(r *Row) *float64 { return &r.FemaleProportion }
	case ColMaleProportion:
		get = func(r *Row) *float64 { return &r.MaleProportion }
	default:
		for _, c := range numericColumns {
			if c.name == name {
				get = c.get
				break
			}
		}
	}
	if get == nil {
		return nil
	}
	out := make([]float64, len(d.Rows))
	for i := range d.Rows {
		out[i] = *get(&d.Rows[i])
	}
	return out
}

// MissingCounts reports missing (NaN) cells per numeric column, omitting
// columns with none.
func (d *Dataset) MissingCounts() map[string]int {
	out := map[string]int{}
	for _, c := range numericColumns {
		n := 0
		for i := range d.Rows {
			if math.IsNaN(*c.get(&d.Rows[i])) {
				n++
			}
		}
		if n > 0 {
			out[c.name] = n
		}
	}
	return out
}

// States returns the number of distinct state names.
func (d *Dataset) States() int {
	seen := make(map[string]struct{}, len(d.Rows))
	for i := range d.Rows {
		seen[d.Rows[i].State] = struct{}{}
	}
	return len(seen)
}

// TotalPopulation sums TotalPop across rows, skipping missing cells.
func (d *Dataset) TotalPopulation() float64 {
	var sum float64
	for i := range d.Rows {
		if v := d.Rows[i].TotalPop; !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// Columns returns the column names of the dataset in output order, including
// derived columns once Derive has run.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(OutputColumns))
	copy(cols, OutputColumns)
	if d.Derived {
		cols = append(cols, DerivedColumns...)
	}
	return cols
}
