package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/internal/shared/errors"
)

func TestNewRequestValidation(t *testing.T) {
	t.Run("valid text request", func(t *testing.T) {
		r, err := NewRequest(1, "Satellite orbit parameters", TypeText, "orbit data...", "")
		require.NoError(t, err)
		assert.Equal(t, StatusPending, r.Status())
		assert.Equal(t, uint(1), r.AdminID())
		assert.Nil(t, r.DecisionBy())
		assert.Nil(t, r.DecisionAt())
	})

	t.Run("title too short", func(t *testing.T) {
		_, err := NewRequest(1, "abcd", TypeText, "content", "")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("title too long", func(t *testing.T) {
		long := make([]byte, TitleMaxLen+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := NewRequest(1, string(long), TypeText, "content", "")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("invalid content type", func(t *testing.T) {
		_, err := NewRequest(1, "A valid title", ContentType("video"), "content", "")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("description too long", func(t *testing.T) {
		long := make([]byte, DescriptionMaxLen+1)
		for i := range long {
			long[i] = 'd'
		}
		_, err := NewRequest(1, "A valid title", TypeText, "content", string(long))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("link must be a well-formed URL", func(t *testing.T) {
		_, err := NewRequest(1, "A valid title", TypeLink, "not-a-url", "")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))

		r, err := NewRequest(1, "A valid title", TypeLink, "https://example.org/doc", "")
		require.NoError(t, err)
		assert.Equal(t, TypeLink, r.ContentType())
	})

	t.Run("missing content", func(t *testing.T) {
		_, err := NewRequest(1, "A valid title", TypeText, "", "")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("pdf via NewRequest is rejected", func(t *testing.T) {
		_, err := NewRequest(1, "A valid title", TypePDF, "whatever", "")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestNewPDFRequest(t *testing.T) {
	r, err := NewPDFRequest(7, "Quarterly launch report", "", "kb-1-42.pdf", "/var/lib/curator/uploads/kb-1-42.pdf")
	require.NoError(t, err)

	assert.Equal(t, TypePDF, r.ContentType())
	assert.Equal(t, "PDF:kb-1-42.pdf", r.Content())
	assert.Equal(t, "kb-1-42.pdf", r.AttachmentFilename())
	assert.Equal(t, "/var/lib/curator/uploads/kb-1-42.pdf", r.FilePath())

	_, err = NewPDFRequest(7, "Quarterly launch report", "", "", "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDecisionTransitions(t *testing.T) {
	newPending := func(t *testing.T) *Request {
		r, err := NewRequest(3, "A valid title", TypeText, "content", "")
		require.NoError(t, err)
		return r
	}

	t.Run("approve stamps decider and time", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Approve(9))

		assert.Equal(t, StatusApproved, r.Status())
		require.NotNil(t, r.DecisionBy())
		assert.Equal(t, uint(9), *r.DecisionBy())
		assert.NotNil(t, r.DecisionAt())
	})

	t.Run("reject stamps decider and time", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Reject(9))
		assert.Equal(t, StatusRejected, r.Status())
	})

	t.Run("re-deciding a decided request conflicts", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Approve(9))

		err := r.Reject(10)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.Equal(t, StatusApproved, r.Status())
	})
}

func TestParseDecision(t *testing.T) {
	status, err := ParseDecision("approve")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)

	status, err = ParseDecision("reject")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, status)

	_, err = ParseDecision("archive")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestIsOwnedBy(t *testing.T) {
	r, err := NewRequest(3, "A valid title", TypeText, "content", "")
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(3))
	assert.False(t, r.IsOwnedBy(4))
}
