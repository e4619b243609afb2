package schedule

import (
	"context"
	"sync"
)

// memoryRepository is an in-memory Repository used by the service tests.
// It mirrors the seeding and query semantics of the pgx implementation.
type memoryRepository struct {
	mu         sync.Mutex
	facilities []FacilitySeed
	slots      []*Slot
	nextID     int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Seed(_ context.Context, seeds []FacilitySeed, dates []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.facilities) > 0 {
		return 0, nil
	}
	r.facilities = append(r.facilities, seeds...)

	inserted := 0
	for i, seed := range seeds {
		facilityID := int64(i + 1)
		for _, date := range dates {
			for _, gridTime := range GridTimes {
				for court := 1; court <= seed.CourtCount; court++ {
					r.nextID++
					r.slots = append(r.slots, &Slot{
						ID:           r.nextID,
						FacilityID:   facilityID,
						FacilityName: seed.Name,
						CourtNumber:  court,
						Date:         date,
						Time:         gridTime,
					})
					inserted++
				}
			}
		}
	}
	return inserted, nil
}

func (r *memoryRepository) ListOpen(_ context.Context, facilityID int64) ([]*Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var open []*Slot
	for _, s := range r.slots {
		if s.FacilityID == facilityID && !s.IsBooked {
			copied := *s
			open = append(open, &copied)
		}
	}
	return open, nil
}

func (r *memoryRepository) BookedCells(_ context.Context, facilityID int64, date string) ([]Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cells []Cell
	for _, s := range r.slots {
		if s.FacilityID == facilityID && s.Date == date && s.IsBooked {
			cells = append(cells, Cell{CourtNumber: s.CourtNumber, Time: s.Time})
		}
	}
	return cells, nil
}

// book marks a cell occupied, bypassing the reservation flow.
func (r *memoryRepository) book(facilityID int64, court int, date, slotTime string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.slots {
		if s.FacilityID == facilityID && s.CourtNumber == court && s.Date == date && s.Time == slotTime {
			s.IsBooked = true
			return true
		}
	}
	return false
}
