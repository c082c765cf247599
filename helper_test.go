package profin

import (
	"fmt"

	"github.com/canvaproptk-png/ProFin-Management/stamp"
)

// sequentialIDs returns an IDFunc yielding "id-1", "id-2", ...
func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// fixedClock returns a ClockFunc stuck on the given instant.
func fixedClock(str string) ClockFunc {
	at := stamp.MustParse(str)
	return func() stamp.Stamp { return at }
}

// emptySnapshot is a snapshot with no records and a minimal profile.
func emptySnapshot() Snapshot {
	s := Snapshot{Profile: Profile{Currency: "USD", Theme: ThemeLight, PrimaryColor: "indigo"}}
	s.normalize()
	return s
}

// testStore builds a store over a MemoryGateway with deterministic ids and
// clock, starting from the given snapshot.
func testStore(start Snapshot) *Store {
	gw := &MemoryGateway{}
	if err := gw.Save(&start); err != nil {
		panic(err)
	}
	return newStore(gw, sequentialIDs(), fixedClock("2024-05-01T12:00:00Z"))
}

// failingGateway loads fine but refuses every save.
type failingGateway struct {
	inner MemoryGateway
}

func (g *failingGateway) Load() (*Snapshot, bool, error) { return g.inner.Load() }
func (g *failingGateway) Save(*Snapshot) error           { return fmt.Errorf("disk full") }
