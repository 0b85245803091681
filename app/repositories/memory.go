package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

// In-memory implementations of the repository interfaces. They back the
// usecase and handler tests and mirror the Postgres semantics, including
// the overlap re-check on insert.

type MemoryBookingRepository struct {
	nextID   int
	bookings []*entities.Booking
	sync.Mutex
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{nextID: 1}
}

func (m *MemoryBookingRepository) ActiveForResource(resourceID int) ([]entities.Booking, error) {
	m.Lock()
	defer m.Unlock()

	var active []entities.Booking
	for _, b := range m.bookings {
		if b.ResourceID != resourceID || !entities.IsActiveBookingStatus(b.Status) {
			continue
		}
		active = append(active, *b)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Start.Before(active[j].Start) })
	return active, nil
}

func (m *MemoryBookingRepository) Create(booking entities.Booking) (entities.Booking, error) {
	m.Lock()
	defer m.Unlock()

	for _, b := range m.bookings {
		if b.ResourceID != booking.ResourceID || !entities.IsActiveBookingStatus(b.Status) {
			continue
		}
		if b.Start.Before(booking.End) && booking.Start.Before(b.End) {
			return entities.Booking{}, ErrBookingConflict
		}
	}

	now := time.Now()
	booking.ID = m.nextID
	booking.CreatedAt = now
	booking.UpdatedAt = now
	m.nextID++

	stored := booking
	m.bookings = append(m.bookings, &stored)
	return booking, nil
}

func (m *MemoryBookingRepository) GetByID(id int) (entities.Booking, error) {
	m.Lock()
	defer m.Unlock()

	for _, b := range m.bookings {
		if b.ID == id {
			return *b, nil
		}
	}
	return entities.Booking{}, ErrNotFound
}

func (m *MemoryBookingRepository) ListForRequester(userID int) ([]entities.Booking, error) {
	m.Lock()
	defer m.Unlock()

	var mine []entities.Booking
	for _, b := range m.bookings {
		if b.RequesterID == userID {
			mine = append(mine, *b)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].Start.After(mine[j].Start) })
	return mine, nil
}

func (m *MemoryBookingRepository) UpdateStatus(id int, status string) error {
	m.Lock()
	defer m.Unlock()

	for _, b := range m.bookings {
		if b.ID == id {
			b.Status = status
			b.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryBookingRepository) CompleteEnded(now time.Time) (int64, error) {
	m.Lock()
	defer m.Unlock()

	var changed int64
	for _, b := range m.bookings {
		if b.Status == entities.BookingStatusApproved && !b.End.After(now) {
			b.Status = entities.BookingStatusCompleted
			b.UpdatedAt = now
			changed++
		}
	}
	return changed, nil
}

type MemoryResourceRepository struct {
	nextID    int
	resources map[int]*entities.Resource
	sync.Mutex
}

func NewMemoryResourceRepository() *MemoryResourceRepository {
	return &MemoryResourceRepository{nextID: 1, resources: make(map[int]*entities.Resource)}
}

// Put stores a resource with a fixed id and status, bypassing the draft
// default. Test seeding helper.
func (m *MemoryResourceRepository) Put(res entities.Resource) {
	m.Lock()
	defer m.Unlock()

	stored := res
	m.resources[res.ID] = &stored
	if res.ID >= m.nextID {
		m.nextID = res.ID + 1
	}
}

func (m *MemoryResourceRepository) Create(ownerID int, req entities.ResourceRequest) (entities.Resource, error) {
	m.Lock()
	defer m.Unlock()

	mode := req.AdmissionMode
	if mode == "" {
		mode = entities.AdmissionModeOpen
	}

	now := time.Now()
	res := entities.Resource{
		ID:            m.nextID,
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		Capacity:      req.Capacity,
		AdmissionMode: mode,
		Status:        entities.ResourceStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.nextID++

	stored := res
	m.resources[res.ID] = &stored
	return res, nil
}

func (m *MemoryResourceRepository) GetByID(id int) (entities.Resource, error) {
	m.Lock()
	defer m.Unlock()

	res, ok := m.resources[id]
	if !ok {
		return entities.Resource{}, ErrNotFound
	}
	return *res, nil
}

func (m *MemoryResourceRepository) List(category, location string, capacity, limit, offset int) ([]entities.Resource, int, error) {
	m.Lock()
	defer m.Unlock()

	var matched []entities.Resource
	for _, res := range m.resources {
		if res.Status != entities.ResourceStatusPublished {
			continue
		}
		if category != "" && res.Category != category {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(res.Location), strings.ToLower(location)) {
			continue
		}
		if capacity > 0 && res.Capacity < capacity {
			continue
		}
		matched = append(matched, *res)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *MemoryResourceRepository) Update(id int, req entities.ResourceRequest) error {
	m.Lock()
	defer m.Unlock()

	res, ok := m.resources[id]
	if !ok {
		return ErrNotFound
	}
	res.Title = req.Title
	res.Description = req.Description
	res.Category = req.Category
	res.Location = req.Location
	res.Capacity = req.Capacity
	if req.AdmissionMode != "" {
		res.AdmissionMode = req.AdmissionMode
	}
	res.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryResourceRepository) UpdateStatus(id int, status string) error {
	m.Lock()
	defer m.Unlock()

	res, ok := m.resources[id]
	if !ok {
		return ErrNotFound
	}
	res.Status = status
	res.UpdatedAt = time.Now()
	return nil
}

type MemoryWaitlistRepository struct {
	entries []entities.WaitlistEntry
	sync.Mutex
}

func NewMemoryWaitlistRepository() *MemoryWaitlistRepository {
	return &MemoryWaitlistRepository{}
}

func (m *MemoryWaitlistRepository) Enroll(entry entities.WaitlistEntry) error {
	m.Lock()
	defer m.Unlock()

	for _, e := range m.entries {
		if e.ResourceID == entry.ResourceID && e.UserID == entry.UserID {
			return ErrAlreadyEnrolled
		}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryWaitlistRepository) ListFor(resourceID int) ([]entities.WaitlistEntry, error) {
	m.Lock()
	defer m.Unlock()

	var entries []entities.WaitlistEntry
	for _, e := range m.entries {
		if e.ResourceID == resourceID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

func (m *MemoryWaitlistRepository) Remove(resourceID, userID int) (bool, error) {
	m.Lock()
	defer m.Unlock()

	for i, e := range m.entries {
		if e.ResourceID == resourceID && e.UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
