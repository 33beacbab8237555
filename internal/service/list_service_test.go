package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/store"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

func newCourseList(courses ...models.Course) (*ListService[models.Course, dto.CoursePayload], *fakeSource[models.Course], *Notifier, *recordingAudit) {
	src := newFakeSource(courses...)
	notices := NewNotifier(10)
	audit := &recordingAudit{}
	st := store.NewListStore[models.Course]("courses", src, "Failed to fetch courses", nil)
	svc := NewListService[models.Course, dto.CoursePayload](ListConfig{Resource: "courses", Noun: "Course"}, st, CourseFilters(), nil, notices, audit, nil)
	return svc, src, notices, audit
}

func sampleCourses() []models.Course {
	return []models.Course{
		{ID: "c1", Title: "NEET Foundation", Category: "Medical", IsPublished: true},
		{ID: "c2", Title: "JEE Advanced", Category: "Engineering", IsPublished: true},
		{ID: "c3", Title: "NEET Crash Course", Category: "medical"},
	}
}

func ids[T store.Keyed](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Key())
	}
	return out
}

func TestDraftFiltersDoNotChangeVisibleItems(t *testing.T) {
	svc, _, _, _ := newCourseList(sampleCourses()...)
	svc.Mount(context.Background())

	view, err := svc.SetDraft("category", "Medical")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids(view.Items))
	assert.Equal(t, "Medical", view.Meta.Draft["category"])
	assert.Empty(t, view.Meta.Applied)

	view = svc.ApplyFilters()
	assert.Equal(t, []string{"c1", "c3"}, ids(view.Items))
	assert.Equal(t, 3, view.Meta.Total)
	assert.Equal(t, 2, view.Meta.Visible)

	view, err = svc.SetDraft("isPublished", "true")
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)

	view = svc.RevertFilters()
	assert.NotContains(t, view.Meta.Draft, "isPublished")

	view = svc.ClearFilters()
	assert.Len(t, view.Items, 3)
	assert.Empty(t, view.Meta.Draft)
}

func TestMountClearsFilters(t *testing.T) {
	svc, src, _, _ := newCourseList(sampleCourses()...)
	svc.Mount(context.Background())
	_, err := svc.SetDraft("title", "neet")
	require.NoError(t, err)
	svc.ApplyFilters()

	view := svc.Mount(context.Background())

	assert.Len(t, view.Items, 3)
	assert.Equal(t, 2, src.lists)
}

func TestUnknownFilterFieldIsRejected(t *testing.T) {
	svc, _, _, _ := newCourseList(sampleCourses()...)

	_, err := svc.SetDraft("price", "10")

	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestViewLoadsLazily(t *testing.T) {
	svc, src, _, _ := newCourseList(sampleCourses()...)

	svc.View(context.Background())
	view := svc.View(context.Background())

	assert.Equal(t, 1, src.lists)
	assert.Equal(t, string(models.LoadStatusReady), view.Meta.Status)
	assert.Equal(t, []string{"category", "isPublished", "title"}, view.Meta.Fields)
}

func TestFetchFailureShowsInlineMessage(t *testing.T) {
	svc, src, _, _ := newCourseList()
	src.listErr = appErrors.ErrUpstreamUnavailable

	view := svc.Mount(context.Background())

	assert.Empty(t, view.Items)
	assert.Equal(t, string(models.LoadStatusFailed), view.Meta.Status)
	assert.Equal(t, "Failed to fetch courses", view.Meta.Error)
}

func TestCreateValidatesBeforeCallingUpstream(t *testing.T) {
	svc, src, notices, audit := newCourseList(sampleCourses()...)
	svc.Mount(context.Background())

	_, err := svc.Create(context.Background(), dto.CoursePayload{Category: "Medical", SuccessRate: 120})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "title is required")
	assert.Equal(t, 1, src.lists)
	assert.Zero(t, notices.Pending())
	assert.Empty(t, audit.calls)
}

func TestCreateReloadsAndNotifies(t *testing.T) {
	svc, src, notices, audit := newCourseList(sampleCourses()...)
	svc.Mount(context.Background())
	src.nextID = func() string { return "c4" }

	created, err := svc.Create(context.Background(), dto.CoursePayload{Title: "Boards Prep", Category: "School", SuccessRate: 90})

	require.NoError(t, err)
	assert.Equal(t, "c4", created.ID)
	view := svc.View(context.Background())
	assert.Len(t, view.Items, 4)
	assert.Equal(t, 2, src.lists)
	drained := notices.Drain()
	require.Len(t, drained, 1)
	assert.Equal(t, "Course created successfully", drained[0].Message)
	assert.Equal(t, auditCall{action: models.AuditActionCreate, resource: "courses", id: "c4", message: "Course created successfully"}, audit.calls[0])
}

func TestUpdateFailureKeepsList(t *testing.T) {
	svc, src, notices, _ := newCourseList(sampleCourses()...)
	svc.Mount(context.Background())
	src.writeErr = appErrors.ErrUpstream

	_, err := svc.Update(context.Background(), "c2", dto.CoursePayload{Title: "JEE Mains", Category: "Engineering"})

	require.Error(t, err)
	view := svc.View(context.Background())
	assert.Equal(t, "JEE Advanced", view.Items[1].Title)
	assert.Equal(t, "Failed to update course", notices.Drain()[0].Message)
}

func TestDeleteRemovesItemAfterReload(t *testing.T) {
	svc, _, notices, _ := newCourseList(sampleCourses()...)
	svc.Mount(context.Background())

	require.NoError(t, svc.Delete(context.Background(), "c1"))

	view := svc.View(context.Background())
	assert.Equal(t, []string{"c2", "c3"}, ids(view.Items))
	assert.Equal(t, "Course deleted successfully", notices.Drain()[0].Message)
}

func TestUserCreateRequiresPassword(t *testing.T) {
	src := newFakeSource[models.User]()
	st := store.NewListStore[models.User]("users", src, "Failed to fetch users", nil)
	svc := NewListService[models.User, dto.UserPayload](ListConfig{Resource: "users", Noun: "User"}, st, UserFilters(), nil, nil, nil, nil)
	payload := dto.UserPayload{Name: "Asha", Email: "asha@example.com", Role: "telecaller"}

	_, err := svc.Create(context.Background(), payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")

	src.items = []models.User{{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: models.RoleTelecaller}}
	updated, err := svc.Update(context.Background(), "u1", payload)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTelecaller, updated.Role)
}

func TestReadOnlyListRejectsMutationsQuietly(t *testing.T) {
	src := &ordersOnly{items: []models.Order{{ID: "o1", PaymentStatus: "paid"}}}
	notices := NewNotifier(10)
	st := store.NewListStore[models.Order]("orders", src, "Failed to fetch orders", nil)
	svc := NewListService[models.Order, dto.NoPayload](ListConfig{Resource: "orders", Noun: "Order"}, st, OrderFilters(), nil, notices, nil, nil)

	err := svc.Delete(context.Background(), "o1")

	assert.ErrorIs(t, err, appErrors.ErrUnsupported)
	assert.Zero(t, notices.Pending())
}

type ordersOnly struct {
	items []models.Order
}

func (o *ordersOnly) List(ctx context.Context) ([]models.Order, error) {
	return o.items, nil
}
