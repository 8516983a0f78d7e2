package reservation

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	bookingRepo "bookexpert/database/repository/booking"
	expertRepo "bookexpert/database/repository/expert"
	"bookexpert/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testExpertID  = "64a0b1c2d3e4f5a6b7c8d9e0"
	otherExpertID = "64a0b1c2d3e4f5a6b7c8d9e1"
)

// memExpertStore is an in-memory ExpertStore whose MarkSlotBooked has the
// same check-and-set atomicity as the Mongo conditional update.
type memExpertStore struct {
	mu      sync.Mutex
	experts map[string]*models.Expert
	reads   int
	writes  int
}

func newMemExpertStore(experts ...*models.Expert) *memExpertStore {
	s := &memExpertStore{experts: make(map[string]*models.Expert)}
	for _, e := range experts {
		s.experts[e.ID] = e
	}
	return s
}

func (s *memExpertStore) GetByID(_ context.Context, id string) (*models.Expert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	e, ok := s.experts[id]
	if !ok {
		return nil, expertRepo.ErrNotFound
	}
	// Snapshot semantics: callers must not observe later writes.
	cp := *e
	cp.TimeSlots = append([]models.TimeSlot(nil), e.TimeSlots...)
	return &cp, nil
}

func (s *memExpertStore) MarkSlotBooked(_ context.Context, expertID, slotID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	e, ok := s.experts[expertID]
	if !ok {
		return false, nil
	}
	slot := e.SlotByID(slotID)
	if slot == nil || slot.IsBooked {
		return false, nil
	}
	slot.IsBooked = true
	return true, nil
}

func (s *memExpertStore) FreeSlot(_ context.Context, expertID, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	e, ok := s.experts[expertID]
	if !ok {
		return expertRepo.ErrNotFound
	}
	slot := e.SlotByID(slotID)
	if slot == nil {
		return expertRepo.ErrNotFound
	}
	slot.IsBooked = false
	return nil
}

func (s *memExpertStore) slot(t *testing.T, expertID, slotID string) models.TimeSlot {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.experts[expertID]
	require.True(t, ok, "expert %s missing", expertID)
	slot := e.SlotByID(slotID)
	require.NotNil(t, slot, "slot %s missing", slotID)
	return *slot
}

func (s *memExpertStore) accesses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads + s.writes
}

// memBookingStore is an in-memory BookingStore.
type memBookingStore struct {
	mu         sync.Mutex
	byID       map[string]models.Booking
	failCreate bool
	creates    int
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{byID: make(map[string]models.Booking)}
}

func (s *memBookingStore) Create(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.failCreate {
		return assert.AnError
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	b.UpdatedAt = b.CreatedAt
	s.byID[b.ID] = *b
	return nil
}

func (s *memBookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (s *memBookingStore) UpdateStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	s.byID[id] = b
	return nil
}

func (s *memBookingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *memBookingStore) FindByEmail(_ context.Context, email string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Booking
	for _, b := range s.byID {
		if b.UserEmail == email {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memBookingStore) activeForSlot(expertID, slotID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.byID {
		if b.ExpertID == expertID && b.SlotID == slotID && b.Active() {
			n++
		}
	}
	return n
}

// fakeNotifier records published events.
type fakeNotifier struct {
	mu     sync.Mutex
	events []models.SlotEvent
}

func (n *fakeNotifier) PublishSlotBooked(expertID, slotID string) {
	n.record(models.SlotEvent{Event: models.EventSlotBooked, ExpertID: expertID, SlotID: slotID})
}

func (n *fakeNotifier) PublishSlotAvailable(expertID, slotID string) {
	n.record(models.SlotEvent{Event: models.EventSlotAvailable, ExpertID: expertID, SlotID: slotID})
}

func (n *fakeNotifier) record(ev models.SlotEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *fakeNotifier) all() []models.SlotEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.SlotEvent(nil), n.events...)
}

func testExpert(id string) *models.Expert {
	return &models.Expert{
		ID:     id,
		Name:   "Dr. Sarah Mitchell",
		Rating: 4.9,
		TimeSlots: []models.TimeSlot{
			{ID: "slot-1", Date: "2026-03-14", Time: "10:00 AM"},
			{ID: "slot-2", Date: "2026-03-14", Time: "11:00 AM"},
		},
	}
}

func validRequest(slotID string) models.BookingRequest {
	return models.BookingRequest{
		SlotID:    slotID,
		UserName:  "Ann",
		UserEmail: "ann@x.com",
		UserPhone: "5551234567",
	}
}

func newTestService(experts ...*models.Expert) (*DefaultReservationService, *memExpertStore, *memBookingStore, *fakeNotifier) {
	if len(experts) == 0 {
		experts = []*models.Expert{testExpert(testExpertID)}
	}
	es := newMemExpertStore(experts...)
	bs := newMemBookingStore()
	nt := &fakeNotifier{}
	return &DefaultReservationService{Experts: es, Bookings: bs, Notifier: nt}, es, bs, nt
}

func TestBookCreatesPendingBookingAndMarksSlot(t *testing.T) {
	svc, es, _, nt := newTestService()

	booking, err := svc.Book(context.Background(), testExpertID, validRequest("slot-1"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, testExpertID, booking.ExpertID)
	assert.Equal(t, "Dr. Sarah Mitchell", booking.ExpertName)
	assert.Equal(t, "2026-03-14", booking.Date)
	assert.Equal(t, "10:00 AM", booking.Time)
	assert.Regexp(t, "^[0-9a-f]{24}$", booking.ID)

	assert.True(t, es.slot(t, testExpertID, "slot-1").IsBooked)
	assert.False(t, es.slot(t, testExpertID, "slot-2").IsBooked)

	events := nt.all()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventSlotBooked, events[0].Event)
	assert.Equal(t, "slot-1", events[0].SlotID)
}

func TestBookSameSlotTwiceConflicts(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Book(ctx, testExpertID, validRequest("slot-1"))
	require.NoError(t, err)

	_, err = svc.Book(ctx, testExpertID, validRequest("slot-1"))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "slot-1", cErr.SlotID)
}

func TestBookValidationShortCircuitsBeforeStorage(t *testing.T) {
	cases := []struct {
		name string
		id   string
		req  models.BookingRequest
	}{
		{"empty name", testExpertID, models.BookingRequest{SlotID: "slot-1", UserName: "", UserEmail: "ann@x.com", UserPhone: "5551234567"}},
		{"bad email", testExpertID, models.BookingRequest{SlotID: "slot-1", UserName: "Ann", UserEmail: "bad", UserPhone: "5551234567"}},
		{"short phone", testExpertID, models.BookingRequest{SlotID: "slot-1", UserName: "Ann", UserEmail: "ann@x.com", UserPhone: "123"}},
		{"malformed expert id", "not-hex", validRequest("slot-1")},
		{"missing slot id", testExpertID, models.BookingRequest{UserName: "Ann", UserEmail: "ann@x.com", UserPhone: "5551234567"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, es, bs, _ := newTestService()

			_, err := svc.Book(context.Background(), tc.id, tc.req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)

			assert.Zero(t, es.accesses(), "validation must fail before any storage access")
			assert.Zero(t, bs.creates)
			assert.False(t, es.slot(t, testExpertID, "slot-1").IsBooked)
		})
	}
}

func TestBookPhoneDigitsStripped(t *testing.T) {
	svc, _, _, _ := newTestService()
	req := validRequest("slot-1")
	req.UserPhone = "(555) 123-4567"

	_, err := svc.Book(context.Background(), testExpertID, req)
	require.NoError(t, err)
}

func TestBookUnknownExpertOrSlot(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Book(ctx, otherExpertID, validRequest("slot-1"))
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "expert", nfErr.Resource)

	_, err = svc.Book(ctx, testExpertID, validRequest("slot-99"))
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "slot", nfErr.Resource)
}

func TestConcurrentBookSingleWinner(t *testing.T) {
	svc, es, bs, _ := newTestService()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book(context.Background(), testExpertID, validRequest("slot-1"))
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			var cErr *ConflictError
			require.ErrorAs(t, err, &cErr)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent booking must win")
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, bs.activeForSlot(testExpertID, "slot-1"))
	assert.True(t, es.slot(t, testExpertID, "slot-1").IsBooked)
}

func TestBookFreesSlotWhenLedgerInsertFails(t *testing.T) {
	svc, es, bs, nt := newTestService()
	bs.failCreate = true

	_, err := svc.Book(context.Background(), testExpertID, validRequest("slot-1"))
	require.Error(t, err)

	assert.False(t, es.slot(t, testExpertID, "slot-1").IsBooked, "flag must be released when the insert fails")
	assert.Empty(t, nt.all())
}

func TestSetStatusCompletedFreesExactlyThatSlot(t *testing.T) {
	svc, es, _, nt := newTestService()
	ctx := context.Background()

	b1, err := svc.Book(ctx, testExpertID, validRequest("slot-1"))
	require.NoError(t, err)
	_, err = svc.Book(ctx, testExpertID, validRequest("slot-2"))
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, b1.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	assert.False(t, es.slot(t, testExpertID, "slot-1").IsBooked)
	assert.True(t, es.slot(t, testExpertID, "slot-2").IsBooked, "completion must not touch other slots")

	events := nt.all()
	last := events[len(events)-1]
	assert.Equal(t, models.EventSlotAvailable, last.Event)
	assert.Equal(t, "slot-1", last.SlotID)
}

func TestSetStatusConfirmedKeepsSlotBooked(t *testing.T) {
	svc, es, _, _ := newTestService()
	ctx := context.Background()

	b, err := svc.Book(ctx, testExpertID, validRequest("slot-1"))
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, b.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.True(t, es.slot(t, testExpertID, "slot-1").IsBooked)
}

func TestSetStatusRejectsUnknownValues(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.SetStatus(context.Background(), testExpertID, "Cancelled")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSetStatusMissingBooking(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.SetStatus(context.Background(), otherExpertID, models.StatusConfirmed)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "booking", nfErr.Resource)
}

func TestDeleteFreesSlotRegardlessOfStatus(t *testing.T) {
	for _, status := range []string{models.StatusPending, models.StatusConfirmed, models.StatusCompleted} {
		t.Run(status, func(t *testing.T) {
			svc, es, _, _ := newTestService()
			ctx := context.Background()

			b, err := svc.Book(ctx, testExpertID, validRequest("slot-1"))
			require.NoError(t, err)
			if status != models.StatusPending {
				_, err = svc.SetStatus(ctx, b.ID, status)
				require.NoError(t, err)
			}

			require.NoError(t, svc.Delete(ctx, b.ID))
			assert.False(t, es.slot(t, testExpertID, "slot-1").IsBooked)

			err = svc.Delete(ctx, b.ID)
			var nfErr *NotFoundError
			require.ErrorAs(t, err, &nfErr)
		})
	}
}

func TestListByEmailNewestFirst(t *testing.T) {
	svc, _, bs, _ := newTestService()
	ctx := context.Background()

	b1, err := svc.Book(ctx, testExpertID, validRequest("slot-1"))
	require.NoError(t, err)
	b2, err := svc.Book(ctx, testExpertID, validRequest("slot-2"))
	require.NoError(t, err)

	// Force distinct creation times; the fake stamps both in the same
	// nanosecond window otherwise.
	bs.mu.Lock()
	older := bs.byID[b1.ID]
	older.CreatedAt = older.CreatedAt.Add(-time.Minute)
	bs.byID[b1.ID] = older
	bs.mu.Unlock()

	bookings, err := svc.ListByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, b2.ID, bookings[0].ID)
	assert.Equal(t, b1.ID, bookings[1].ID)
}

func TestListByEmailStillReturnsCompleted(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	b, err := svc.Book(ctx, testExpertID, validRequest("slot-1"))
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, b.ID, models.StatusCompleted)
	require.NoError(t, err)

	bookings, err := svc.ListByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.StatusCompleted, bookings[0].Status)
}

func TestListByEmailValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := svc.ListByEmail(context.Background(), email)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "email %q", email)
	}
}

// The occupancy invariant: after any serial sequence of operations, a slot is
// flagged booked exactly when an active booking references it.
func TestOccupancyInvariantAfterSerialSequence(t *testing.T) {
	svc, es, bs, _ := newTestService()
	ctx := context.Background()

	checkInvariant := func() {
		t.Helper()
		for _, slotID := range []string{"slot-1", "slot-2"} {
			flagged := es.slot(t, testExpertID, slotID).IsBooked
			active := bs.activeForSlot(testExpertID, slotID)
			assert.LessOrEqual(t, active, 1, "slot %s held by more than one active booking", slotID)
			assert.Equal(t, flagged, active == 1, "slot %s flag and ledger disagree", slotID)
		}
	}

	b1, err := svc.Book(ctx, testExpertID, validRequest("slot-1"))
	require.NoError(t, err)
	checkInvariant()

	b2, err := svc.Book(ctx, testExpertID, validRequest("slot-2"))
	require.NoError(t, err)
	checkInvariant()

	_, err = svc.SetStatus(ctx, b1.ID, models.StatusConfirmed)
	require.NoError(t, err)
	checkInvariant()

	_, err = svc.SetStatus(ctx, b1.ID, models.StatusCompleted)
	require.NoError(t, err)
	checkInvariant()

	require.NoError(t, svc.Delete(ctx, b2.ID))
	checkInvariant()

	// Re-book the freed slot.
	_, err = svc.Book(ctx, testExpertID, validRequest("slot-1"))
	require.NoError(t, err)
	checkInvariant()
}
