package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/datachores/censusprep/internal/census"
)

func reportDataset() *census.Dataset {
	ds := &census.Dataset{Rows: []census.Row{
		{State: "Alabama", TotalPop: 4830620, Hispanic: 3.75, White: 61.88, Black: 31.25, Native: 0.45, Asian: 1.05, Pacific: 0.03, Income: 43296, Male: 2341093, Female: 2489527},
		{State: "Alaska", TotalPop: 733375, Hispanic: 5.91, White: 60.91, Black: 2.85, Native: 16.39, Asian: 5.45, Pacific: 1.06, Income: 70354, Male: 384160, Female: 349215},
		{State: "Arizona", TotalPop: 6641928, Hispanic: 29.57, White: 57.12, Black: 3.85, Native: 4.36, Asian: 2.88, Pacific: 0.17, Income: 54207, Male: 3299088, Female: 3342840},
	}}
	census.Derive(ds)
	return ds
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, reportDataset(), 2)
	out := buf.String()

	if !strings.Contains(out, "Rows: 3") || !strings.Contains(out, "States: 3") {
		t.Errorf("missing shape line:\n%s", out)
	}
	if !strings.Contains(out, "Income") || !strings.Contains(out, "FemaleProportion") {
		t.Errorf("describe table missing columns:\n%s", out)
	}
	if !strings.Contains(out, "Top 2 states by income") {
		t.Errorf("missing top-N section:\n%s", out)
	}
	// Alaska has the highest income; it must appear before Arizona.
	ak := strings.Index(out, "Alaska")
	az := strings.Index(out, "Arizona")
	top := strings.Index(out, "Top 2")
	if ak < top || az < top || ak > az {
		t.Errorf("top-income ordering wrong (Alaska@%d, Arizona@%d, section@%d)", ak, az, top)
	}
	if strings.Contains(out[top:], "Alabama") {
		t.Errorf("Alabama should not make the top 2:\n%s", out[top:])
	}
}

func TestWriteMissing(t *testing.T) {
	var buf bytes.Buffer
	ds := reportDataset()
	WriteMissing(&buf, ds)
	if !strings.Contains(buf.String(), "No missing numeric cells") {
		t.Errorf("clean dataset should report no missing cells:\n%s", buf.String())
	}
}
