package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"community-events-api/core/constants"
	"community-events-api/core/errors"
	"community-events-api/core/params"
	"community-events-api/core/utils"
	engEntity "community-events-api/modules/engagement/entity"
	"community-events-api/modules/event/dto"
	"community-events-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	mu            sync.Mutex
	events        map[uuid.UUID]*entity.Event
	registrations map[uuid.UUID]int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:        map[uuid.UUID]*entity.Event{},
		registrations: map[uuid.UUID]int{},
	}
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *entity.Event) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := *event
	e.ID = uuid.New()
	e.Status = entity.EventStatusPending
	e.CreatedAt = time.Now()
	f.events[e.ID] = &e
	copied := e
	return &copied, nil
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
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.Slug == slug {
			copied := *e
			return &copied, nil
		}
	}
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
	copied := *event
	f.events[event.ID] = &copied
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

func (f *fakeEventRepo) CountRegistrations(_ context.Context, id uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registrations[id], nil
}

type fakeEngagementReader struct {
	likes    map[uuid.UUID]int
	comments map[uuid.UUID][]engEntity.Comment
}

func (f *fakeEngagementReader) CountLikes(_ context.Context, eventID uuid.UUID) (int, error) {
	return f.likes[eventID], nil
}

func (f *fakeEngagementReader) ListComments(_ context.Context, eventID uuid.UUID) ([]engEntity.Comment, error) {
	return f.comments[eventID], nil
}

type fakeEnqueuer struct {
	mu      sync.Mutex
	deleted []uuid.UUID
}

func (f *fakeEnqueuer) EnqueueEventStatusChanged(_ context.Context, _ uuid.UUID, _ uuid.UUID, _ string) error {
	return nil
}

func (f *fakeEnqueuer) EnqueueEventDeleted(_ context.Context, eventID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, eventID)
	return nil
}

func newService(repo *fakeEventRepo) (*EventService, *fakeEnqueuer) {
	tasks := &fakeEnqueuer{}
	return &EventService{
		repo:       repo,
		engagement: &fakeEngagementReader{likes: map[uuid.UUID]int{}, comments: map[uuid.UUID][]engEntity.Comment{}},
		tasks:      tasks,
		now:        time.Now,
	}, tasks
}

func createRequest(start time.Time) *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:            "River Cleanup Day",
		ShortDescription: "Morning cleanup along the east bank",
		Location:         "East bank pier",
		StartDate:        start,
	}
}

func organizer(id uuid.UUID) *utils.TokenClaims {
	return &utils.TokenClaims{UserID: id, Role: constants.RoleOrganizer}
}

func TestCreateEventStartsPending(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	created, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventStatusPending), created.Status)
	assert.True(t, strings.HasPrefix(created.Slug, "river-cleanup-day-"))
	assert.False(t, created.Timing.Expired)
	assert.NotNil(t, created.Requirements)
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	start := time.Now().Add(48 * time.Hour)
	end := start.Add(-time.Hour)
	req := createRequest(start)
	req.EndDate = &end

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestSlugsDifferForSameTitle(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	first, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)
	second, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)

	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestListEventsAnnotatesTiming(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(-time.Hour)))
	require.Nil(t, appErr)
	_, appErr = svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)

	page, appErr := svc.ListEvents(context.Background(), nil, params.QueryParams{PageNumber: 1, PageSize: 20})
	require.Nil(t, appErr)
	require.Len(t, page.Items, 2)

	var expired, live int
	for _, item := range page.Items {
		if item.Timing.Expired {
			expired++
		} else {
			live++
			assert.Greater(t, item.Timing.Days+item.Timing.Hours+item.Timing.Minutes+item.Timing.Seconds, 0)
		}
	}
	assert.Equal(t, 1, expired)
	assert.Equal(t, 1, live)
}

func TestGetEventDetailAssemblesAggregates(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	created, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)
	eventID := uuid.MustParse(created.ID)

	reader := svc.engagement.(*fakeEngagementReader)
	reader.likes[eventID] = 4
	reader.comments[eventID] = []engEntity.Comment{
		{ID: uuid.New(), EventID: eventID, AuthorID: uuid.New(), AuthorName: "Mika", Body: "Count me in", CreatedAt: time.Now()},
	}
	repo.mu.Lock()
	repo.registrations[eventID] = 7
	repo.mu.Unlock()

	detail, appErr := svc.GetEventDetail(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, 4, detail.LikeCount)
	assert.Equal(t, 7, detail.RegistrationCount)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Count me in", detail.Comments[0].Body)
}

func TestGetEventBySlugResolvesDetail(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	created, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)

	detail, appErr := svc.GetEventBySlug(context.Background(), created.Slug)
	require.Nil(t, appErr)
	assert.Equal(t, created.ID, detail.ID)

	_, appErr = svc.GetEventBySlug(context.Background(), "no-such-slug")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetEventDetailMissing(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	_, appErr := svc.GetEventDetail(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUpdateEventOnlyWhilePending(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)
	organizerID := uuid.New()

	created, appErr := svc.CreateEvent(context.Background(), organizerID, createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)
	eventID := uuid.MustParse(created.ID)

	updated, appErr := svc.UpdateEvent(context.Background(), eventID, organizer(organizerID),
		&dto.UpdateEventRequest{Location: "West bank pier"})
	require.Nil(t, appErr)
	assert.Equal(t, "West bank pier", updated.Location)

	// Once approved the event is frozen for organizer edits.
	_, err := repo.UpdateStatus(context.Background(), eventID, entity.EventStatusApproved)
	require.NoError(t, err)

	_, appErr = svc.UpdateEvent(context.Background(), eventID, organizer(organizerID),
		&dto.UpdateEventRequest{Location: "North dock"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestUpdateEventForbiddenForOtherUsers(t *testing.T) {
	repo := newFakeEventRepo()
	svc, _ := newService(repo)

	created, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)
	eventID := uuid.MustParse(created.ID)

	_, appErr = svc.UpdateEvent(context.Background(), eventID, organizer(uuid.New()),
		&dto.UpdateEventRequest{Location: "Elsewhere"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	// An admin may edit any pending event.
	admin := &utils.TokenClaims{UserID: uuid.New(), Role: constants.RoleAdmin}
	updated, appErr := svc.UpdateEvent(context.Background(), eventID, admin,
		&dto.UpdateEventRequest{Location: "Elsewhere"})
	require.Nil(t, appErr)
	assert.Equal(t, "Elsewhere", updated.Location)
}

func TestDeleteEventEnqueuesCleanup(t *testing.T) {
	repo := newFakeEventRepo()
	svc, tasks := newService(repo)
	organizerID := uuid.New()

	created, appErr := svc.CreateEvent(context.Background(), organizerID, createRequest(time.Now().Add(48*time.Hour)))
	require.Nil(t, appErr)
	eventID := uuid.MustParse(created.ID)

	appErr = svc.DeleteEvent(context.Background(), eventID, organizer(organizerID))
	require.Nil(t, appErr)
	assert.Equal(t, []uuid.UUID{eventID}, tasks.deleted)

	appErr = svc.DeleteEvent(context.Background(), eventID, organizer(organizerID))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
