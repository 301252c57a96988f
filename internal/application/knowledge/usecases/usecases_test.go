package usecases

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/internal/domain/knowledge"
	"curator/internal/infrastructure/storage"
	"curator/internal/shared/errors"
)

type fakeKnowledgeRepo struct {
	nextID uint
	rows   map[uint]*knowledge.Request
}

func newFakeKnowledgeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{nextID: 1, rows: map[uint]*knowledge.Request{}}
}

func (r *fakeKnowledgeRepo) Create(_ context.Context, req *knowledge.Request) error {
	if err := req.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.rows[req.ID()] = req
	return nil
}

func (r *fakeKnowledgeRepo) ListByOwner(_ context.Context, adminID uint) ([]*knowledge.Request, error) {
	var out []*knowledge.Request
	for _, req := range r.rows {
		if req.IsOwnedBy(adminID) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out, nil
}

func (r *fakeKnowledgeRepo) ListPending(_ context.Context) ([]knowledge.PendingItem, error) {
	var items []knowledge.PendingItem
	for _, req := range r.rows {
		if req.Status() == knowledge.StatusPending {
			items = append(items, knowledge.PendingItem{
				ID:        req.ID(),
				Title:     req.Title(),
				Type:      req.ContentType().String(),
				Content:   req.Content(),
				CreatedAt: req.CreatedAt(),
			})
		}
	}
	return items, nil
}

func (r *fakeKnowledgeRepo) DecideIfPending(_ context.Context, id uint, status knowledge.Status, deciderID uint, _ time.Time) (string, error) {
	req, ok := r.rows[id]
	if !ok {
		return "", errors.NewNotFoundError("request not found")
	}
	var err error
	if status == knowledge.StatusApproved {
		err = req.Approve(deciderID)
	} else {
		err = req.Reject(deciderID)
	}
	if err != nil {
		return "", err
	}
	return req.FilePath(), nil
}

func (r *fakeKnowledgeRepo) GetOwnerIDByContent(_ context.Context, contentTag string) (uint, error) {
	for _, req := range r.rows {
		if req.Content() == contentTag {
			return req.AdminID(), nil
		}
	}
	return 0, errors.NewNotFoundError("request not found")
}

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "uploads"), "", 1)
	require.NoError(t, err)
	return store
}

func TestSubmitTextRequest(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	uc := NewSubmitRequestUseCase(repo, newTestStore(t))

	out, err := uc.Execute(context.Background(), SubmitRequestInput{
		AdminID:     1,
		Title:       "Password reset guide",
		ContentType: "text",
		Content:     "Use the self-service portal.",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Status)

	own, err := NewListOwnRequestsUseCase(repo).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "pending", own[0].Status)
	require.NotNil(t, own[0].Content)
	assert.Equal(t, "Use the self-service portal.", *own[0].Content)
}

func TestSubmitSanitizesMarkup(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	uc := NewSubmitRequestUseCase(repo, newTestStore(t))

	_, err := uc.Execute(context.Background(), SubmitRequestInput{
		AdminID:     1,
		Title:       "Guide <script>alert(1)</script>",
		ContentType: "text",
		Content:     "<b>bold</b> text",
	})
	require.NoError(t, err)

	own, err := NewListOwnRequestsUseCase(repo).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.NotContains(t, own[0].Title, "<script>")
	assert.NotContains(t, *own[0].Content, "<b>")
}

func TestSubmitValidationFailures(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	uc := NewSubmitRequestUseCase(repo, newTestStore(t))
	ctx := context.Background()

	cases := []struct {
		name  string
		input SubmitRequestInput
	}{
		{"pdf without file", SubmitRequestInput{AdminID: 1, Title: "Valid title", ContentType: "pdf"}},
		{"bad url", SubmitRequestInput{AdminID: 1, Title: "Valid title", ContentType: "link", Content: "not a url"}},
		{"short title", SubmitRequestInput{AdminID: 1, Title: "abcd", ContentType: "text", Content: "content"}},
		{"unknown type", SubmitRequestInput{AdminID: 1, Title: "Valid title", ContentType: "video", Content: "content"}},
		{"non-pdf upload", SubmitRequestInput{AdminID: 1, Title: "Valid title", ContentType: "pdf", FileName: "doc.exe", File: strings.NewReader("x")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.input)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestSubmitPDFRequestStoresBlob(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	store := newTestStore(t)
	uc := NewSubmitRequestUseCase(repo, store)

	_, err := uc.Execute(context.Background(), SubmitRequestInput{
		AdminID:     1,
		Title:       "Employee handbook",
		ContentType: "pdf",
		FileName:    "handbook.pdf",
		File:        strings.NewReader("%PDF-1.4 data"),
	})
	require.NoError(t, err)

	own, err := NewListOwnRequestsUseCase(repo).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Nil(t, own[0].Content)
	assert.True(t, strings.HasPrefix(own[0].FileURL, "/api/knowledge-files/kb-"))

	// The blob is already promoted and retrievable by its owner.
	filename := strings.TrimPrefix(own[0].FileURL, "/api/knowledge-files/")
	att, err := NewGetAttachmentUseCase(repo, store).Execute(context.Background(), GetAttachmentInput{
		Filename: filename,
		UserID:   1,
	})
	require.NoError(t, err)
	data, err := os.ReadFile(att.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(data))
}

func TestGetAttachmentEnforcesOwnership(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	store := newTestStore(t)
	submit := NewSubmitRequestUseCase(repo, store)

	_, err := submit.Execute(context.Background(), SubmitRequestInput{
		AdminID:     1,
		Title:       "Employee handbook",
		ContentType: "pdf",
		FileName:    "handbook.pdf",
		File:        strings.NewReader("%PDF-1.4 data"),
	})
	require.NoError(t, err)

	own, err := NewListOwnRequestsUseCase(repo).Execute(context.Background(), 1)
	require.NoError(t, err)
	filename := strings.TrimPrefix(own[0].FileURL, "/api/knowledge-files/")

	uc := NewGetAttachmentUseCase(repo, store)

	_, err = uc.Execute(context.Background(), GetAttachmentInput{Filename: filename, UserID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), GetAttachmentInput{Filename: "kb-0-0.pdf", UserID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDecideRequestLifecycle(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	submit := NewSubmitRequestUseCase(repo, newTestStore(t))
	decide := NewDecideRequestUseCase(repo)
	ctx := context.Background()

	out, err := submit.Execute(ctx, SubmitRequestInput{
		AdminID:     1,
		Title:       "Password reset guide",
		ContentType: "text",
		Content:     "content",
	})
	require.NoError(t, err)

	decided, err := decide.Execute(ctx, DecideRequestInput{RequestID: out.ID, Action: "approve", DeciderID: 9})
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	assert.Empty(t, decided.FilePath)

	// Terminal states reject further decisions.
	_, err = decide.Execute(ctx, DecideRequestInput{RequestID: out.ID, Action: "reject", DeciderID: 9})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	// And it has left the review queue.
	pending, err := NewListPendingRequestsUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDecideRequestRejectsUnknownAction(t *testing.T) {
	decide := NewDecideRequestUseCase(newFakeKnowledgeRepo())

	_, err := decide.Execute(context.Background(), DecideRequestInput{RequestID: 1, Action: "archive", DeciderID: 9})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDecideRequestMissingRow(t *testing.T) {
	decide := NewDecideRequestUseCase(newFakeKnowledgeRepo())

	_, err := decide.Execute(context.Background(), DecideRequestInput{RequestID: 42, Action: "approve", DeciderID: 9})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRejectRemovesAttachment(t *testing.T) {
	repo := newFakeKnowledgeRepo()
	store := newTestStore(t)
	submit := NewSubmitRequestUseCase(repo, store)
	ctx := context.Background()

	out, err := submit.Execute(ctx, SubmitRequestInput{
		AdminID:     1,
		Title:       "Employee handbook",
		ContentType: "pdf",
		FileName:    "handbook.pdf",
		File:        strings.NewReader("%PDF-1.4 data"),
	})
	require.NoError(t, err)

	decided, err := NewDecideRequestUseCase(repo).Execute(ctx, DecideRequestInput{
		RequestID: out.ID, Action: "reject", DeciderID: 9,
	})
	require.NoError(t, err)
	// The decision reports where the attachment was stored.
	assert.True(t, strings.Contains(decided.FilePath, "kb-"), "expected stored path, got %q", decided.FilePath)

	own, err := NewListOwnRequestsUseCase(repo).Execute(ctx, 1)
	require.NoError(t, err)
	filename := strings.TrimPrefix(own[0].FileURL, "/api/knowledge-files/")
	_, err = store.Resolve(filename)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
