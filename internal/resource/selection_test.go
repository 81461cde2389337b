package resource

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hatsmod/hats/internal/tabula"
)

func loadedHandler(t *testing.T, names ...string) *Handler {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		writeHat(t, filepath.Join(dir, name+tabula.Extension), hatDoc(tabula.CurrentVersion, 4))
	}
	handler, _ := newTestHandler(t, dir)
	if count := handler.LoadAll(); count != len(names) {
		t.Fatalf("Expected %d hats loaded, got %d", len(names), count)
	}
	return handler
}

func TestSplitDetails(t *testing.T) {
	tests := []struct {
		details  string
		expected []string
	}{
		{"", nil},
		{":::", nil},
		{"   ", nil},
		{"dragonhat", []string{"dragonhat"}},
		{"dragonhat:wing:horn", []string{"dragonhat", "wing", "horn"}},
		{"a::b", []string{"a", "b"}},
		{" a : b ", []string{"a", "b"}},
		{"a:b:a:b", []string{"a", "b", "a", "b"}},
		{":lead:", []string{"lead"}},
	}

	for _, test := range tests {
		result := SplitDetails(test.details)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("SplitDetails(%q) = %v, expected %v", test.details, result, test.expected)
		}
	}
}

func TestGetAndSetAccessories_RoundTrip(t *testing.T) {
	handler := loadedHandler(t, "dragonhat", "crown")

	info, ok := handler.GetAndSetAccessories("dragonhat:wing:horn")
	if !ok {
		t.Fatal("Expected dragonhat to be found")
	}
	if info.Name != "dragonhat" {
		t.Errorf("Expected dragonhat entry, got %s", info.Name)
	}
	if acc := info.Accessories(); !reflect.DeepEqual(acc, []string{"wing", "horn"}) {
		t.Errorf("Accessories = %v, expected [wing horn]", acc)
	}

	// The registry entry itself was mutated
	stored, _ := handler.GetHat("dragonhat")
	if stored != info {
		t.Error("Decode should return the registered entry")
	}
	if details := stored.Details(); details != "dragonhat:wing:horn" {
		t.Errorf("Details() = %s, expected dragonhat:wing:horn", details)
	}
}

func TestGetAndSetAccessories_ReplacesState(t *testing.T) {
	handler := loadedHandler(t, "dragonhat")

	handler.GetAndSetAccessories("dragonhat:wing:horn")
	info, ok := handler.GetAndSetAccessories("dragonhat:tail:tail")
	if !ok {
		t.Fatal("Expected dragonhat to be found")
	}
	if acc := info.Accessories(); !reflect.DeepEqual(acc, []string{"tail", "tail"}) {
		t.Errorf("Accessories = %v, expected [tail tail]", acc)
	}

	info, _ = handler.GetAndSetAccessories("dragonhat")
	if acc := info.Accessories(); len(acc) != 0 {
		t.Errorf("Bare name should clear accessories, got %v", acc)
	}
}

func TestGetAndSetAccessories_Absent(t *testing.T) {
	handler := loadedHandler(t, "dragonhat")
	handler.GetAndSetAccessories("dragonhat:wing")

	tests := []string{"", "::", "  ", "unknownname:foo", "unknownname", "DRAGONHAT:wing"}
	for _, details := range tests {
		if info, ok := handler.GetAndSetAccessories(details); ok || info != nil {
			t.Errorf("GetAndSetAccessories(%q) = %v, %v, expected absent", details, info, ok)
		}
	}

	// Failed lookups leave existing state alone
	stored, _ := handler.GetHat("dragonhat")
	if acc := stored.Accessories(); !reflect.DeepEqual(acc, []string{"wing"}) {
		t.Errorf("Accessories = %v, expected [wing]", acc)
	}
}

func TestGetAndSetAccessories_EmptyTokensIgnored(t *testing.T) {
	handler := loadedHandler(t, "a")

	first, _ := handler.GetAndSetAccessories("a::b")
	withEmpty := first.Accessories()
	second, _ := handler.GetAndSetAccessories("a:b")

	if first != second {
		t.Error("Both selections should resolve to the same entry")
	}
	if !reflect.DeepEqual(withEmpty, second.Accessories()) {
		t.Errorf("a::b gave %v, a:b gave %v", withEmpty, second.Accessories())
	}
}
