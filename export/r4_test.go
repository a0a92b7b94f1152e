package export

import (
	"testing"

	"github.com/gofhir/vcl"
	"github.com/gofhir/vcl/compose"
)

func TestRoundTrip(t *testing.T) {
	src, err := vcl.ParseAndAssignID("(http://snomed.info/sct)195967001;29857009-(74400008)")
	if err != nil {
		t.Fatalf("ParseAndAssignID() error = %v", err)
	}

	r4vs, err := ToR4(src)
	if err != nil {
		t.Fatalf("ToR4() error = %v", err)
	}

	back, err := FromR4(r4vs)
	if err != nil {
		t.Fatalf("FromR4() error = %v", err)
	}

	if back.URL != src.URL {
		t.Errorf("URL after round trip = %q; want %q", back.URL, src.URL)
	}
	if back.Compose == nil {
		t.Fatal("Compose lost in round trip")
	}
	if got, want := len(back.Compose.Include), len(src.Compose.Include); got != want {
		t.Fatalf("include rules = %d; want %d", got, want)
	}
	if got, want := len(back.Compose.Exclude), len(src.Compose.Exclude); got != want {
		t.Fatalf("exclude rules = %d; want %d", got, want)
	}
	if got := back.Compose.Include[0]; got.System != "http://snomed.info/sct" || len(got.Concept) == 0 {
		t.Errorf("include[0] = %+v; want the qualified concept rule preserved", got)
	}
	if got := back.Compose.Exclude[0].Concept; len(got) != 1 || got[0].Code != "74400008" {
		t.Errorf("exclude[0].Concept = %+v; want the excluded code preserved", got)
	}
	if !compose.IsCompatible(back) {
		t.Error("round-tripped composition failed the compatibility check")
	}
}

func TestRoundTripFilters(t *testing.T) {
	src, err := vcl.Parse("concept<<30460011")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	r4vs, err := ToR4(src)
	if err != nil {
		t.Fatalf("ToR4() error = %v", err)
	}
	back, err := FromR4(r4vs)
	if err != nil {
		t.Fatalf("FromR4() error = %v", err)
	}

	filters := back.Compose.Include[0].Filter
	if len(filters) != 1 {
		t.Fatalf("filters = %d; want 1", len(filters))
	}
	f := filters[0]
	if f.Property != "concept" || f.Op != compose.OpIsA || f.Value != "30460011" {
		t.Errorf("filter = %+v; want concept is-a 30460011 preserved through r4", f)
	}
}

func TestToR4Nil(t *testing.T) {
	if _, err := ToR4(nil); err == nil {
		t.Error("ToR4(nil) succeeded; want error")
	}
	if _, err := FromR4(nil); err == nil {
		t.Error("FromR4(nil) succeeded; want error")
	}
}
