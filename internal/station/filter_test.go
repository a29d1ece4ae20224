package station

import (
	"math"
	"testing"
)

func dieselStation(name string, min float64) Station {
	s := Station{Name: name}
	if !math.IsInf(min, 1) {
		s.Preise.Diesel = PriceMap{"as24": {Value: min, Valid: true}}
	}
	return s
}

func TestSelect_QueryMatchesNameOrAddress(t *testing.T) {
	all := []Station{
		{Name: "Shell Autohof", Adresse: "Hauptstr. 1"},
		{Name: "Aral", Adresse: "Shellweg 9"},
		{Name: "Esso", Adresse: "Bahnhofstr. 2"},
	}

	got := Select(all, "  SHELL ", false, SortNone)
	if len(got) != 2 {
		t.Fatalf("got %d stations, want 2", len(got))
	}
	if got[0].Name != "Shell Autohof" || got[1].Name != "Aral" {
		t.Errorf("wrong subset: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestSelect_QueryIdempotent(t *testing.T) {
	all := []Station{
		{Name: "Shell Autohof"},
		{Name: "Aral"},
	}

	once := Select(all, "shell", false, SortNone)
	twice := Select(once, "shell", false, SortNone)
	if len(once) != len(twice) {
		t.Fatalf("filtering not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Name != twice[i].Name {
			t.Errorf("station %d differs: %q vs %q", i, once[i].Name, twice[i].Name)
		}
	}
}

func TestSelect_OnlyOpen(t *testing.T) {
	all := []Station{
		{Name: "A", Oeffnungszeiten: "24/7"},
		{Name: "B", Oeffnungszeiten: "08:00-20:00"},
		{Name: "C"}, // no hours given — excluded
	}

	got := Select(all, "", true, SortNone)
	if len(got) != 1 || got[0].Name != "A" {
		t.Fatalf("onlyOpen kept %d stations, want just A", len(got))
	}
}

func TestSelect_SortByNameGermanCollation(t *testing.T) {
	all := []Station{
		{Name: "Zebra"},
		{Name: "Äcker"},
		{Name: "Apfel"},
	}

	got := Select(all, "", false, SortNameAsc)
	// German collation puts Ä with A, not after Z.
	if got[2].Name != "Zebra" {
		t.Fatalf("order = %q,%q,%q — Zebra must sort last", got[0].Name, got[1].Name, got[2].Name)
	}
	if got[0].Name == "Zebra" || got[1].Name == "Zebra" {
		t.Errorf("byte-order sorting detected")
	}
}

func TestSelect_SortByDieselPrice(t *testing.T) {
	all := []Station{
		dieselStation("mid", 1.529),
		dieselStation("none", NoPrice),
		dieselStation("cheap", 1.419),
	}

	got := Select(all, "", false, SortDieselAsc)
	if got[0].Name != "cheap" {
		t.Errorf("first = %q, want cheap", got[0].Name)
	}
	if got[2].Name != "none" {
		t.Errorf("last = %q, want none (no-price sentinel sorts last)", got[2].Name)
	}
}

func TestSelect_UnspecifiedModeKeepsOrder(t *testing.T) {
	all := []Station{{Name: "B"}, {Name: "A"}, {Name: "C"}}

	got := Select(all, "", false, SortNone)
	for i := range all {
		if got[i].Name != all[i].Name {
			t.Fatalf("order changed at %d: %q", i, got[i].Name)
		}
	}
}

func TestSelect_DoesNotMutateSource(t *testing.T) {
	all := []Station{{Name: "Zebra"}, {Name: "Apfel"}}

	Select(all, "", false, SortNameAsc)
	if all[0].Name != "Zebra" || all[1].Name != "Apfel" {
		t.Fatalf("source list mutated: %q, %q", all[0].Name, all[1].Name)
	}
}
