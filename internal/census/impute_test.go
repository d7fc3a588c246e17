package census

import (
	"math"
	"testing"
)

func nanRow(state string) Row {
	return Row{
		State:    state,
		TotalPop: math.NaN(), Hispanic: math.NaN(), White: math.NaN(),
		Black: math.NaN(), Native: math.NaN(), Asian: math.NaN(),
		Pacific: math.NaN(), Income: math.NaN(), Male: math.NaN(), Female: math.NaN(),
	}
}

func TestImpute_MeanFillsColumnMeans(t *testing.T) {
	a := nanRow("A")
	a.Income = 40000
	a.White = 60
	b := nanRow("B")
	b.Income = 60000
	b.White = 80
	c := nanRow("C") // Income and White missing

	ds := &Dataset{Rows: []Row{a, b, c}}
	st, err := Impute(ds, StrategyMean)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	if got := ds.Rows[2].Income; math.Abs(got-50000) > 1e-9 {
		t.Errorf("imputed Income = %v, want 50000", got)
	}
	if got := ds.Rows[2].White; math.Abs(got-70) > 1e-9 {
		t.Errorf("imputed White = %v, want 70", got)
	}
	if st.Filled[ColIncome] != 1 || st.Filled[ColWhite] != 1 {
		t.Errorf("filled = %v", st.Filled)
	}
	// No NaN survives imputation.
	for _, name := range NumericColumns() {
		for i, v := range ds.Column(name) {
			if math.IsNaN(v) {
				t.Errorf("column %s row %d still NaN", name, i)
			}
		}
	}
}

func TestImpute_AllMissingColumnFilledWithZero(t *testing.T) {
	ds := &Dataset{Rows: []Row{nanRow("A"), nanRow("B")}}
	st, err := Impute(ds, StrategyMean)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	if ds.Rows[0].Income != 0 {
		t.Errorf("Income = %v, want 0", ds.Rows[0].Income)
	}
	if len(st.Warnings) == 0 {
		t.Error("expected warnings for all-missing columns")
	}
}

func TestImpute_RemainderFillsSingleMissingShare(t *testing.T) {
	r := Row{
		State: "Hawaii", TotalPop: 1406299,
		Hispanic: 9.5, White: 25.0, Black: 1.9, Native: 0.2, Asian: math.NaN(), Pacific: 9.9,
		Income: 69515, Male: 704178, Female: 702121,
	}
	other := Row{
		State: "Idaho", TotalPop: 1616547,
		Hispanic: 11.9, White: 82.0, Black: 0.6, Native: 1.3, Asian: 1.2, Pacific: 0.2,
		Income: 48275, Male: 809577, Female: 806970,
	}
	ds := &Dataset{Rows: []Row{r, other}}
	st, err := Impute(ds, StrategyRemainder)
	if err != nil {
		t.Fatalf("Impute: %v", err)
	}
	want := 100 - (9.5 + 25.0 + 1.9 + 0.2 + 9.9)
	if got := ds.Rows[0].Asian; math.Abs(got-want) > 1e-9 {
		t.Errorf("Asian = %v, want %v (remainder)", got, want)
	}
	if st.Filled[ColAsian] != 1 {
		t.Errorf("filled = %v", st.Filled)
	}
}

func TestImpute_RemainderFallsBackToMeanForMultipleMissing(t *testing.T) {
	r := Row{
		State: "A", TotalPop: 100,
		Hispanic: math.NaN(), White: math.NaN(), Black: 10, Native: 1, Asian: 2, Pacific: 0.5,
		Income: 50000, Male: 50, Female: 50,
	}
	other := Row{
		State: "B", TotalPop: 200,
		Hispanic: 20, White: 60, Black: 12, Native: 2, Asian: 3, Pacific: 1,
		Income: 52000, Male: 100, Female: 100,
	}
	ds := &Dataset{Rows: []Row{r, other}}
	if _, err := Impute(ds, StrategyRemainder); err != nil {
		t.Fatalf("Impute: %v", err)
	}
	// Two shares missing in the row: both fall back to the column mean,
	// which with a single observed value is that value.
	if got := ds.Rows[0].Hispanic; math.Abs(got-20) > 1e-9 {
		t.Errorf("Hispanic = %v, want column mean 20", got)
	}
	if got := ds.Rows[0].White; math.Abs(got-60) > 1e-9 {
		t.Errorf("White = %v, want column mean 60", got)
	}
}

func TestImpute_RejectsUnknownStrategy(t *testing.T) {
	ds := &Dataset{}
	if _, err := Impute(ds, "mode"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
