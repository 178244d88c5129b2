package timecurve

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ----------------------------------------------------------------------------
// Curve data
// ----------------------------------------------------------------------------

func TestExportImportData_RoundTrip(t *testing.T) {
	ed := New(WithTotalDuration(100))

	ed.mu.Lock()
	ed.addPointOnCurve(20, 80)
	ed.addPointOnCurve(60, 10)
	ed.points[1].Kind = Bezier
	ed.mu.Unlock()

	blob := ed.ExportData()

	other := New(WithTotalDuration(100))
	if !other.ImportData(&blob) {
		t.Fatal("import rejected a blob produced by ExportData")
	}
	if diff := cmp.Diff(ed.Points(), other.Points()); diff != "" {
		t.Errorf("round-tripped points mismatch (-want +got):\n%s", diff)
	}
}

func TestImportData_Rejects(t *testing.T) {
	tests := []struct {
		name string
		blob *Data
	}{
		{"nil blob", nil},
		{"empty points", &Data{}},
		{"single point", &Data{Points: []PointData{{Time: 0, Value: 5}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := New()
			want := ed.Points()
			if ed.ImportData(tt.blob) {
				t.Error("import accepted, want rejection")
			}
			if diff := cmp.Diff(want, ed.Points()); diff != "" {
				t.Errorf("rejected import mutated the curve (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImportData_MissingTypeDecodesLinear(t *testing.T) {
	raw := []byte(`{"points":[{"time":0,"value":10},{"time":5,"value":20,"type":1},{"time":9,"value":30,"type":7}]}`)
	var blob Data
	if err := json.Unmarshal(raw, &blob); err != nil {
		t.Fatal(err)
	}

	ed := New(WithTotalDuration(10))
	if !ed.ImportData(&blob) {
		t.Fatal("import rejected")
	}
	got := ed.Points()
	kinds := []SegmentKind{got[0].Kind, got[1].Kind, got[2].Kind}
	want := []SegmentKind{Linear, Bezier, Linear}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("segment kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestImportData_SortsByTime(t *testing.T) {
	blob := &Data{Points: []PointData{
		{Time: 50, Value: 1},
		{Time: 0, Value: 2},
		{Time: 25, Value: 3},
	}}
	ed := New(WithTotalDuration(100))
	if !ed.ImportData(blob) {
		t.Fatal("import rejected")
	}
	got := ed.Points()
	for i := 1; i < len(got); i++ {
		if got[i].Time < got[i-1].Time {
			t.Fatalf("points not sorted by time: %v", got)
		}
	}
	if got[0].Value != 2 || got[1].Value != 3 || got[2].Value != 1 {
		t.Errorf("sorted order mismatch: %v", got)
	}
}

// ----------------------------------------------------------------------------
// Markers
// ----------------------------------------------------------------------------

func TestExportImportMarkers_RoundTripSorted(t *testing.T) {
	ed := New(WithTotalDuration(100))
	if !ed.ImportMarkers(&MarkerData{Markers: []float64{7, 2, 3}}) {
		t.Fatal("import rejected")
	}
	got := ed.ExportMarkers()
	if diff := cmp.Diff([]float64{2, 3, 7}, got.Markers); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}
}

func TestImportMarkers_Rejects(t *testing.T) {
	ed := New(WithTotalDuration(100))
	ed.AddMarker(5)

	if ed.ImportMarkers(nil) {
		t.Error("nil blob accepted")
	}
	if ed.ImportMarkers(&MarkerData{}) {
		t.Error("blob with nil marker array accepted")
	}
	if diff := cmp.Diff([]float64{5}, ed.Markers()); diff != "" {
		t.Errorf("rejected import mutated markers (-want +got):\n%s", diff)
	}
}

func TestImportMarkers_EmptyArrayClears(t *testing.T) {
	ed := New(WithTotalDuration(100))
	ed.AddMarker(5)
	if !ed.ImportMarkers(&MarkerData{Markers: []float64{}}) {
		t.Fatal("empty marker array rejected, want accept")
	}
	if got := ed.Markers(); len(got) != 0 {
		t.Errorf("Markers() = %v, want empty", got)
	}
}
