package services

import (
	"context"
	"testing"

	"agenda.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserService, *fakeUserRepo, *fakeFileRepo) {
	users := newFakeUserRepo()
	files := newFakeFileRepo()
	return &UserService{users: users, files: files}, users, files
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	service, users, _ := newUserFixture()

	user, err := service.Register(context.Background(), RegisterInput{
		Name:     "  Ana Souza  ",
		Email:    " Ana@Example.COM ",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.False(t, user.Provider)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, user.CheckPassword("secret1"))

	stored, err := users.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterValidation(t *testing.T) {
	service, _, _ := newUserFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Name: "", Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Register(ctx, RegisterInput{Name: "Ana", Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Register(ctx, RegisterInput{Name: "Ana", Email: "a@b.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _, _ := newUserFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	// case-insensitive: the address normalizes to the same row
	_, err = service.Register(ctx, RegisterInput{Name: "Other", Email: "ANA@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	service, _, _ := newUserFixture()
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := service.Authenticate(ctx, "Ana@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = service.Authenticate(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown address reads the same as a bad password
	_, err = service.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileNameAndEmail(t *testing.T) {
	service, users, _ := newUserFixture()
	ctx := context.Background()

	user := users.add(models.User{Name: "Ana", Email: "ana@example.com"})
	users.add(models.User{Name: "Bruno", Email: "bruno@example.com"})

	updated, err := service.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		Name:  "Ana Clara",
		Email: "ana.clara@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Clara", updated.Name)
	assert.Equal(t, "ana.clara@example.com", updated.Email)

	_, err = service.UpdateProfile(ctx, user.ID, UpdateProfileInput{Email: "bruno@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// keeping your own address is not a conflict
	_, err = service.UpdateProfile(ctx, user.ID, UpdateProfileInput{Email: "ana.clara@example.com"})
	assert.NoError(t, err)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	service, _, _ := newUserFixture()
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = service.UpdateProfile(ctx, user.ID, UpdateProfileInput{Password: "newsecret"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = service.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		OldPassword: "wrong", Password: "newsecret",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = service.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		OldPassword: "secret1", Password: "newsecret",
	})
	require.NoError(t, err)

	_, err = service.Authenticate(ctx, "ana@example.com", "newsecret")
	assert.NoError(t, err)
	_, err = service.Authenticate(ctx, "ana@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileAvatar(t *testing.T) {
	service, users, files := newUserFixture()
	ctx := context.Background()

	user := users.add(models.User{Name: "Ana", Email: "ana@example.com"})

	file := &models.File{Name: "photo.png", Path: "abc.png"}
	require.NoError(t, files.Create(ctx, file))

	updated, err := service.UpdateProfile(ctx, user.ID, UpdateProfileInput{AvatarID: &file.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.AvatarID)
	assert.Equal(t, file.ID, *updated.AvatarID)

	missing := uint(999)
	_, err = service.UpdateProfile(ctx, user.ID, UpdateProfileInput{AvatarID: &missing})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListProviders(t *testing.T) {
	service, users, _ := newUserFixture()

	users.add(models.User{Name: "Ana", Email: "ana@example.com"})
	users.add(models.User{Name: "João", Email: "joao@example.com", Provider: true})
	users.add(models.User{Name: "Maria", Email: "maria@example.com", Provider: true})

	providers, err := service.ListProviders(context.Background())
	require.NoError(t, err)
	assert.Len(t, providers, 2)
	for _, p := range providers {
		assert.True(t, p.Provider)
	}
}
