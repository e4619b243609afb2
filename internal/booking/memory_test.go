package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memorySlot tracks occupancy of one grid cell.
type memorySlot struct {
	booked bool
}

// memoryRepository is an in-memory Repository for the service tests.
// A single mutex serializes Reserve and Cancel, giving the same
// exclusivity contract the pgx implementation gets from row locks.
type memoryRepository struct {
	mu       sync.Mutex
	slots    map[string]*memorySlot
	bookings map[string]*Booking
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		slots:    make(map[string]*memorySlot),
		bookings: make(map[string]*Booking),
	}
}

func cellKey(facilityID int64, court int, date, slotTime string) string {
	return fmt.Sprintf("%d|%d|%s|%s", facilityID, court, date, slotTime)
}

// addSlot seeds one unbooked grid cell.
func (r *memoryRepository) addSlot(facilityID int64, court int, date, slotTime string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[cellKey(facilityID, court, date, slotTime)] = &memorySlot{}
}

func (r *memoryRepository) slotBooked(facilityID int64, court int, date, slotTime string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[cellKey(facilityID, court, date, slotTime)]
	return ok && s.booked
}

func (r *memoryRepository) Reserve(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[cellKey(b.FacilityID, b.CourtNumber, b.Date, b.Time)]
	if !ok {
		return ErrSlotNotFound
	}
	if slot.booked {
		return ErrSlotAlreadyBooked
	}

	slot.booked = true
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memoryRepository) Cancel(_ context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	if b.UserID != userID {
		return ErrPermissionDenied
	}

	if slot, ok := r.slots[cellKey(b.FacilityID, b.CourtNumber, b.Date, b.Time)]; ok {
		slot.booked = false
	}
	delete(r.bookings, id)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			copied := *b
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].Time < bookings[j].Time
	})
	return bookings, nil
}
