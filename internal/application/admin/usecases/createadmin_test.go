package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/internal/domain/user"
	"curator/internal/infrastructure/auth"
	"curator/internal/shared/errors"
)

type fakeUserRepo struct {
	nextID uint
	users  map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[string]*user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.Email()]; ok {
		return errors.NewConflictError("email already registered")
	}
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.users[u.Email()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) GetActiveByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := r.users[email]
	if !ok || !u.IsActive() {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func newCreateAdminUC(domain string) (*CreateAdminUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewCreateAdminUseCase(repo, auth.NewBcryptPasswordHasher(4), domain), repo
}

func TestCreateAdminSucceeds(t *testing.T) {
	uc, repo := newCreateAdminUC("")

	summary, err := uc.Execute(context.Background(), CreateAdminInput{
		Email:    "New.Admin@Example.com",
		Password: "Sup3rSecret!",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.admin@example.com", summary.Email)
	assert.Equal(t, "admin", summary.Role)
	assert.NotZero(t, summary.ID)

	stored, err := repo.GetActiveByEmail(context.Background(), "new.admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	// The stored credential is a hash, never the plaintext.
	assert.NotEqual(t, "Sup3rSecret!", stored.PasswordHash())
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	uc, _ := newCreateAdminUC("")
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateAdminInput{Email: "a@example.com", Password: "Sup3rSecret!", Role: "admin"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateAdminInput{Email: "A@example.com", Password: "Sup3rSecret!", Role: "admin"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateAdminEnforcesPasswordComplexity(t *testing.T) {
	uc, _ := newCreateAdminUC("")
	ctx := context.Background()

	for _, password := range []string{"short1A", "alllowercase1!", "ALLUPPERCASE1!", "NoDigitsHere!", "NoSpecial1A"} {
		_, err := uc.Execute(ctx, CreateAdminInput{Email: "a@example.com", Password: password, Role: "admin"})
		assert.True(t, errors.IsValidationError(err), "password %q should be rejected", password)
	}
}

func TestCreateAdminEnforcesEmailDomain(t *testing.T) {
	uc, _ := newCreateAdminUC("example.com")
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateAdminInput{Email: "a@elsewhere.com", Password: "Sup3rSecret!", Role: "admin"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, CreateAdminInput{Email: "a@example.com", Password: "Sup3rSecret!", Role: "superadmin"})
	assert.NoError(t, err)
}

func TestCreateAdminRejectsUnknownRole(t *testing.T) {
	uc, _ := newCreateAdminUC("")

	_, err := uc.Execute(context.Background(), CreateAdminInput{Email: "a@example.com", Password: "Sup3rSecret!", Role: "root"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
