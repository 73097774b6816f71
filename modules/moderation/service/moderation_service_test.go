package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"community-events-api/core/constants"
	coreEntity "community-events-api/core/entity"
	"community-events-api/core/errors"
	"community-events-api/core/params"
	"community-events-api/core/utils"
	"community-events-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo implements the event store contract in memory with the same
// atomicity: UpdateStatus is a compare-and-set under one lock.
type fakeEventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uuid.UUID]*entity.Event{}}
}

func (f *fakeEventRepo) addPending() uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.events[id] = &entity.Event{
		BaseEntity:  coreEntity.BaseEntity{ID: id, CreatedAt: time.Now()},
		OrganizerID: uuid.New(),
		Title:       "Beach cleanup",
		Status:      entity.EventStatusPending,
		StartDate:   time.Now().Add(48 * time.Hour),
	}
	return id
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *entity.Event) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := *event
	e.ID = uuid.New()
	e.Status = entity.EventStatusPending
	e.CreatedAt = time.Now()
	f.events[e.ID] = &e
	return &e, nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) GetEventBySlug(_ context.Context, slug string) (*entity.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListEventsByStatus(_ context.Context, status *entity.EventStatus, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []entity.Event
	for _, e := range f.events {
		if status == nil || e.Status == *status {
			items = append(items, *e)
		}
	}
	return &entity.PaginatedEventEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (f *fakeEventRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.EventStatus) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok || e.Status != entity.EventStatusPending {
		return nil, nil
	}
	e.Status = status
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) UpdateDetails(_ context.Context, event *entity.Event) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[event.ID]
	if !ok || e.Status != entity.EventStatusPending {
		return false, nil
	}
	f.events[event.ID] = event
	return true, nil
}

func (f *fakeEventRepo) DeleteEvent(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return false, nil
	}
	delete(f.events, id)
	return true, nil
}

func (f *fakeEventRepo) CountRegistrations(_ context.Context, _ uuid.UUID) (int, error) {
	return 0, nil
}

type fakeEnqueuer struct {
	mu       sync.Mutex
	statuses []string
}

func (f *fakeEnqueuer) EnqueueEventStatusChanged(_ context.Context, _ uuid.UUID, _ uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeEnqueuer) EnqueueEventDeleted(_ context.Context, _ uuid.UUID) error {
	return nil
}

func admin() *utils.TokenClaims {
	return &utils.TokenClaims{UserID: uuid.New(), Role: constants.RoleAdmin}
}

func TestApproveTransitionsPendingEvent(t *testing.T) {
	repo := newFakeEventRepo()
	tasks := &fakeEnqueuer{}
	svc := NewModerationService(repo, tasks)
	id := repo.addPending()

	result, appErr := svc.Approve(context.Background(), id, admin())
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventStatusApproved), result.Status)
	assert.Equal(t, []string{"approved"}, tasks.statuses)
}

func TestModerationIsTerminalAndIdempotent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewModerationService(repo, &fakeEnqueuer{})
	id := repo.addPending()

	first, appErr := svc.Reject(context.Background(), id, admin())
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventStatusRejected), first.Status)

	// A later approve must not flip the decision; it reports the actual
	// status as a successful no-op.
	second, appErr := svc.Approve(context.Background(), id, admin())
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventStatusRejected), second.Status)

	// And a retried reject behaves the same way.
	third, appErr := svc.Reject(context.Background(), id, admin())
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventStatusRejected), third.Status)
}

func TestModerationRequiresAdminRole(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewModerationService(repo, &fakeEnqueuer{})
	id := repo.addPending()

	volunteer := &utils.TokenClaims{UserID: uuid.New(), Role: constants.RoleVolunteer}
	_, appErr := svc.Approve(context.Background(), id, volunteer)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	// The event is untouched.
	e, _ := repo.GetEventByID(context.Background(), id)
	assert.Equal(t, entity.EventStatusPending, e.Status)
}

func TestModerationMissingEvent(t *testing.T) {
	svc := NewModerationService(newFakeEventRepo(), &fakeEnqueuer{})

	_, appErr := svc.Approve(context.Background(), uuid.New(), admin())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestConcurrentApproveRejectExactlyOneWins(t *testing.T) {
	for i := 0; i < 50; i++ {
		repo := newFakeEventRepo()
		tasks := &fakeEnqueuer{}
		svc := NewModerationService(repo, tasks)
		id := repo.addPending()

		var wg sync.WaitGroup
		results := make([]string, 2)

		wg.Add(2)
		go func() {
			defer wg.Done()
			r, appErr := svc.Approve(context.Background(), id, admin())
			if assert.Nil(t, appErr) {
				results[0] = r.Status
			}
		}()
		go func() {
			defer wg.Done()
			r, appErr := svc.Reject(context.Background(), id, admin())
			if assert.Nil(t, appErr) {
				results[1] = r.Status
			}
		}()
		wg.Wait()

		// Both callers observe the same final status, and it is terminal.
		assert.Equal(t, results[0], results[1])
		final, _ := repo.GetEventByID(context.Background(), id)
		assert.Contains(t, []entity.EventStatus{entity.EventStatusApproved, entity.EventStatusRejected}, final.Status)
		assert.Equal(t, string(final.Status), results[0])

		// Only the winning transition was announced.
		assert.Len(t, tasks.statuses, 1)
	}
}

func TestListPendingReturnsQueue(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewModerationService(repo, &fakeEnqueuer{})
	repo.addPending()
	repo.addPending()
	approved := repo.addPending()
	_, appErr := svc.Approve(context.Background(), approved, admin())
	require.Nil(t, appErr)

	page, appErr := svc.ListPending(context.Background(), params.QueryParams{PageNumber: 1, PageSize: 20})
	require.Nil(t, appErr)
	assert.Equal(t, 2, page.TotalItems)
	for _, item := range page.Items {
		assert.Equal(t, string(entity.EventStatusPending), item.Status)
	}
}
