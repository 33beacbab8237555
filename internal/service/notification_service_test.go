package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

func TestNotifierDropsOldestWhenFull(t *testing.T) {
	n := NewNotifier(2)

	n.Success("courses", models.AuditActionCreate, "first")
	n.Success("courses", models.AuditActionCreate, "second")
	n.Success("courses", models.AuditActionCreate, "third")

	drained := n.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "second", drained[0].Message)
	assert.Equal(t, "third", drained[1].Message)
	assert.NotEmpty(t, drained[0].ID)
	assert.Empty(t, n.Drain())
}

func TestFailurePrefersUpstreamReason(t *testing.T) {
	n := NewNotifier(0)
	remote := appErrors.Wrap(&upstream.RemoteError{Status: 400, Message: "Slug already exists"}, appErrors.ErrValidation.Code, 400, "Slug already exists")

	withReason := n.Failure("courses", models.AuditActionCreate, remote, "Failed to create course")
	withoutReason := n.Failure("courses", models.AuditActionCreate, errors.New("dial tcp: refused"), "Failed to create course")

	assert.Equal(t, models.NoticeError, withReason.Level)
	assert.Equal(t, "Slug already exists", withReason.Message)
	assert.Equal(t, "Failed to create course", withoutReason.Message)
	assert.Equal(t, 2, n.Pending())
}

func TestMutationMessages(t *testing.T) {
	m := mutationMessages{noun: "Announcement"}

	assert.Equal(t, "Announcement created successfully", m.success(models.AuditActionCreate))
	assert.Equal(t, "Announcement updated successfully", m.success(models.AuditActionUpdate))
	assert.Equal(t, "Failed to delete announcement", m.failure(models.AuditActionDelete))
	assert.Equal(t, "Failed to update announcement", m.failure(models.AuditActionStatusSave))
}
