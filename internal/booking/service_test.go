package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrec/facility-booking-backend/internal/facility"
	"github.com/campusrec/facility-booking-backend/internal/schedule"
)

// staticCatalog implements facility.Service over a fixed facility list.
type staticCatalog struct {
	facilities []*facility.Facility
}

func (c *staticCatalog) List(context.Context) ([]*facility.Facility, error) {
	return c.facilities, nil
}

func (c *staticCatalog) GetByID(_ context.Context, id int64) (*facility.Facility, error) {
	for _, f := range c.facilities {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, facility.ErrNotFound
}

func (c *staticCatalog) ListBySport(_ context.Context, sport string) ([]*facility.Facility, error) {
	var matches []*facility.Facility
	for _, f := range c.facilities {
		if f.Sport == sport {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

func (c *staticCatalog) Sports(context.Context) ([]facility.SportCount, error) {
	counts := make(map[string]int)
	for _, f := range c.facilities {
		counts[f.Sport]++
	}
	var sports []facility.SportCount
	for sport, n := range counts {
		sports = append(sports, facility.SportCount{Sport: sport, FacilityCount: n})
	}
	return sports, nil
}

func (c *staticCatalog) ResolveSport(ctx context.Context, sport string) (*facility.Facility, error) {
	matches, err := c.ListBySport(ctx, sport)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, facility.ErrNotFound
	}
	return matches[0], nil
}

const (
	basketballID = int64(3)
	testDate     = "2025-06-02"
)

// newTestService builds a reservation service over an in-memory grid with
// a one-court basketball facility seeded for a 7-day window.
func newTestService(t *testing.T) (Service, *memoryRepository) {
	t.Helper()

	repo := newMemoryRepository()
	catalog := &staticCatalog{facilities: []*facility.Facility{
		{ID: basketballID, Name: "Basketball Court", Sport: "Basketball", CourtCount: 1},
		{ID: 8, Name: "Table Tennis Table", Sport: "Table Tennis", CourtCount: 2},
	}}

	for _, date := range []string{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04",
		"2025-06-05", "2025-06-06", "2025-06-07",
	} {
		for _, gridTime := range schedule.GridTimes {
			repo.addSlot(basketballID, 1, date, gridTime)
			repo.addSlot(8, 1, date, gridTime)
			repo.addSlot(8, 2, date, gridTime)
		}
	}

	return NewService(repo, catalog), repo
}

func reserveReq(court int, date, slotTime string) ReserveRequest {
	return ReserveRequest{
		UserID:      "11111111-1111-1111-1111-111111111111",
		Username:    "alice",
		FacilityID:  basketballID,
		CourtNumber: court,
		Date:        date,
		Time:        slotTime,
	}
}

func TestReserveSuccess(t *testing.T) {
	svc, repo := newTestService(t)

	b, err := svc.Reserve(context.Background(), reserveReq(1, testDate, "2:00 PM"))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "alice", b.Username)
	assert.Equal(t, "Basketball Court", b.FacilityName)
	assert.Equal(t, "14:00", b.Time, "stored time must be canonical 24-hour")
	assert.Equal(t, "2025-06-02 at 2:00 PM (Court 1)", b.FormattedSlot)
	assert.True(t, repo.slotBooked(basketballID, 1, testDate, "14:00"))

	bookings, err := svc.ListByUser(context.Background(), b.UserID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, b.ID, bookings[0].ID)
}

func TestReserveValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, reserveReq(1, testDate, "quarter past three"))
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeFormat)

	_, err = svc.Reserve(ctx, reserveReq(1, "02/06/2025", "14:00"))
	assert.ErrorIs(t, err, schedule.ErrInvalidDateFormat)

	_, err = svc.Reserve(ctx, reserveReq(2, testDate, "14:00"))
	assert.ErrorIs(t, err, ErrInvalidCourt, "basketball has a single court")

	req := reserveReq(1, testDate, "14:00")
	req.FacilityID = 99
	_, err = svc.Reserve(ctx, req)
	assert.ErrorIs(t, err, facility.ErrNotFound)

	// In range for the facility but outside the seeded grid.
	_, err = svc.Reserve(ctx, reserveReq(1, "2025-07-01", "14:00"))
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = svc.Reserve(ctx, reserveReq(1, testDate, "13:00"))
	assert.ErrorIs(t, err, ErrSlotNotFound, "13:00 is not a grid time")
}

func TestReserveConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, reserveReq(1, testDate, "09:00"))
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, reserveReq(1, testDate, "09:00"))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// The 12-hour form addresses the same cell.
	_, err = svc.Reserve(ctx, reserveReq(1, testDate, "9:00 AM"))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestReserveConcurrentExclusivity(t *testing.T) {
	svc, _ := newTestService(t)

	const attempts = 16
	var (
		wg        sync.WaitGroup
		successes int
		conflicts int
		mu        sync.Mutex
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(context.Background(), reserveReq(1, testDate, "10:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, ErrSlotAlreadyBooked):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "exactly one concurrent reservation must win")
	assert.Equal(t, attempts-1, conflicts)
}

func TestReserveCancelReserve(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	req := reserveReq(1, testDate, "16:00")

	first, err := svc.Reserve(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, req.UserID, first.ID))
	assert.False(t, repo.slotBooked(basketballID, 1, testDate, "16:00"),
		"cancel must return the cell to its unbooked state")

	bookings, err := svc.ListByUser(ctx, req.UserID)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	second, err := svc.Reserve(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.FormattedSlot, second.FormattedSlot,
		"the display string is a deterministic function of the cell")
}

func TestCancelStrictness(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := reserveReq(1, testDate, "17:00")
	b, err := svc.Reserve(ctx, req)
	require.NoError(t, err)

	err = svc.Cancel(ctx, req.UserID, "22222222-2222-2222-2222-222222222222")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Cancel(ctx, "33333333-3333-3333-3333-333333333333", b.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// The booking survives both failed cancels.
	bookings, err := svc.ListByUser(ctx, req.UserID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
}

func TestCancelRemovesOnlyTargetBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Reserve(ctx, reserveReq(1, testDate, "09:00"))
	require.NoError(t, err)
	second, err := svc.Reserve(ctx, reserveReq(1, testDate, "10:00"))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, first.UserID, first.ID))

	bookings, err := svc.ListByUser(ctx, first.UserID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, second.ID, bookings[0].ID)
}

func TestReserveFullGridThenOneMore(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dates := []string{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04",
		"2025-06-05", "2025-06-06", "2025-06-07",
	}

	total := 0
	for _, date := range dates {
		for _, gridTime := range schedule.GridTimes {
			_, err := svc.Reserve(ctx, reserveReq(1, date, gridTime))
			require.NoError(t, err)
			total++
		}
	}
	require.Equal(t, 63, total)

	_, err := svc.Reserve(ctx, reserveReq(1, dates[3], schedule.GridTimes[4]))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestListByUserOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, reserveReq(1, "2025-06-05", "09:00"))
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, reserveReq(1, "2025-06-01", "18:00"))
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, reserveReq(1, "2025-06-01", "11:00"))
	require.NoError(t, err)

	bookings, err := svc.ListByUser(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	assert.Equal(t, "2025-06-01", bookings[0].Date)
	assert.Equal(t, "11:00", bookings[0].Time)
	assert.Equal(t, "2025-06-01", bookings[1].Date)
	assert.Equal(t, "18:00", bookings[1].Time)
	assert.Equal(t, "2025-06-05", bookings[2].Date)
}
