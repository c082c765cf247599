package profin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/canvaproptk-png/ProFin-Management/stamp"
)

func TestFileGatewayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profin.json")
	gw := NewFileGateway(path)

	s := Seed(stamp.MustParse("2024-05-01T12:00:00Z"))
	if err := gw.Save(&s); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, ok, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("load: slot should not be empty after save")
	}
	if !back.Equal(s) {
		t.Error("file round trip lost data")
	}
}

func TestFileGatewayMissingSlot(t *testing.T) {
	gw := NewFileGateway(filepath.Join(t.TempDir(), "absent.json"))
	_, ok, err := gw.Load()
	if err != nil {
		t.Fatalf("a missing slot is not an error, got %v", err)
	}
	if ok {
		t.Error("a missing slot must report ok=false")
	}
}

func TestFileGatewayMalformedSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profin.json")
	if err := os.WriteFile(path, []byte("{corrupt"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := NewFileGateway(path).Load(); err == nil {
		t.Error("a corrupt slot must surface an error so the caller can seed")
	}
}

func TestFileGatewaySaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profin.json")
	gw := NewFileGateway(path)

	s := Seed(stamp.MustParse("2024-05-01T12:00:00Z"))
	if err := gw.Save(&s); err != nil {
		t.Fatal(err)
	}
	s.Expenses = append(s.Expenses, Expense{ID: "3", Description: "Travel", Amount: M(120), Date: stamp.MustParse("2024-05-02T08:00:00Z")})
	if err := gw.Save(&s); err != nil {
		t.Fatal(err)
	}
	back, _, err := gw.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Expenses) != 3 {
		t.Errorf("save must fully overwrite the slot, got %d expenses", len(back.Expenses))
	}
}

func TestNewStoreSeedsOnEmptyAndCorruptSlot(t *testing.T) {
	// empty slot
	s := NewStore(&MemoryGateway{})
	snap := s.Snapshot()
	if len(snap.Projects) != 2 || len(snap.Incomes) != 2 || len(snap.Expenses) != 2 {
		t.Errorf("empty slot must seed 2/2/2 records, got %d/%d/%d", len(snap.Projects), len(snap.Incomes), len(snap.Expenses))
	}
	if snap.Profile.BusinessName != "Lumina Studios" {
		t.Errorf("seed profile: got %+v", snap.Profile)
	}

	// corrupt slot
	path := filepath.Join(t.TempDir(), "profin.json")
	if err := os.WriteFile(path, []byte("][ nope"), 0644); err != nil {
		t.Fatal(err)
	}
	s = NewStore(NewFileGateway(path))
	if got := s.Snapshot(); len(got.Projects) != 2 {
		t.Error("corrupt slot must fall back to the seed snapshot, not fail")
	}
}
