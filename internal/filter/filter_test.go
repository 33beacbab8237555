package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-console/internal/models"
)

func inquiryFilters() *List[models.Inquiry] {
	return New(
		Text("status", KindExact, func(i models.Inquiry) string { return string(i.Status) }),
		Text("course", KindExact, func(i models.Inquiry) string { return i.CourseInterest }),
		Timestamp("date", func(i models.Inquiry) time.Time { return i.CreatedAt }),
	)
}

func inquiries() []models.Inquiry {
	day := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	return []models.Inquiry{
		{ID: "1", Status: models.InquiryStatusApproved, CourseInterest: "NEET", CreatedAt: day},
		{ID: "2", Status: models.InquiryStatusPending, CourseInterest: "JEE", CreatedAt: day.Add(24 * time.Hour)},
		{ID: "3", Status: models.InquiryStatusApproved, CourseInterest: "JEE", CreatedAt: day},
	}
}

func ids(items []models.Inquiry) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestApplyStatusThenClear(t *testing.T) {
	l := inquiryFilters()
	source := inquiries()

	require.NoError(t, l.SetDraft("status", "approved"))
	l.Apply()
	assert.Equal(t, []string{"1", "3"}, ids(l.Visible(source)))

	l.Clear()
	assert.Len(t, l.Visible(source), 3)
}

func TestDraftDoesNotAffectVisible(t *testing.T) {
	l := inquiryFilters()
	source := inquiries()

	require.NoError(t, l.SetDraft("course", "JEE"))

	assert.Len(t, l.Visible(source), 3)
	assert.Equal(t, Values{"course": "JEE"}, l.Draft())
	assert.Empty(t, l.Applied())
}

func TestDraftThenClearKeepsVisible(t *testing.T) {
	l := inquiryFilters()
	source := inquiries()
	before := ids(l.Visible(source))

	require.NoError(t, l.SetDraft("status", "approved"))
	require.NoError(t, l.SetDraft("date", "2025-03-10"))
	l.Clear()

	assert.Equal(t, before, ids(l.Visible(source)))
	assert.Empty(t, l.Draft())
}

func TestClearIsIdempotent(t *testing.T) {
	l := inquiryFilters()
	require.NoError(t, l.SetDraft("status", "approved"))
	l.Apply()

	l.Clear()
	draft, applied := l.Draft(), l.Applied()
	l.Clear()

	assert.Equal(t, draft, l.Draft())
	assert.Equal(t, applied, l.Applied())
}

func TestFieldsCombineWithAnd(t *testing.T) {
	l := inquiryFilters()
	require.NoError(t, l.SetDraft("status", "approved"))
	require.NoError(t, l.SetDraft("course", "JEE"))
	l.Apply()

	assert.Equal(t, []string{"3"}, ids(l.Visible(inquiries())))
}

func TestDateFieldTruncatesTimestamps(t *testing.T) {
	l := inquiryFilters()
	require.NoError(t, l.SetDraft("date", "2025-03-11"))
	l.Apply()

	assert.Equal(t, []string{"2"}, ids(l.Visible(inquiries())))
}

func TestSetDraftValidation(t *testing.T) {
	l := inquiryFilters()

	assert.Error(t, l.SetDraft("unknown", "x"))
	assert.Error(t, l.SetDraft("date", "11/03/2025"))

	require.NoError(t, l.SetDraft("status", "approved"))
	require.NoError(t, l.SetDraft("status", ""))
	assert.Empty(t, l.Draft())
}

func TestContainsMatchesAnyValue(t *testing.T) {
	l := New(
		Field[models.Media]{Name: "search", Kind: KindContains, Values: func(m models.Media) []string {
			return append([]string{m.Title}, m.Tags...)
		}},
		Text("type", KindFold, func(m models.Media) string { return m.Type }),
	)
	media := []models.Media{
		{ID: "a", Title: "Campus Tour", Type: "Video", Tags: []string{"campus"}},
		{ID: "b", Title: "Brochure", Type: "pdf", Tags: []string{"neet", "2025"}},
	}

	require.NoError(t, l.SetDraft("search", "NEET"))
	l.Apply()
	got := l.Visible(media)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	l.Clear()
	require.NoError(t, l.SetDraft("type", "video"))
	l.Apply()
	got = l.Visible(media)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestRevertRestoresAppliedIntoDraft(t *testing.T) {
	l := inquiryFilters()
	require.NoError(t, l.SetDraft("status", "approved"))
	l.Apply()
	require.NoError(t, l.SetDraft("course", "JEE"))

	l.Revert()

	assert.Equal(t, Values{"status": "approved"}, l.Draft())
	assert.Equal(t, Values{"status": "approved"}, l.Applied())
}

func TestCustomFieldUsesMatch(t *testing.T) {
	l := New(Custom("even", func(i models.Inquiry, want string) bool {
		return (i.ID == "2") == (want == "yes")
	}))

	require.NoError(t, l.SetDraft("even", "yes"))
	l.Apply()

	assert.Equal(t, []string{"2"}, ids(l.Visible(inquiries())))
}
