package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-pro/internal/application/auth"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error                         { return nil }

func buildAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "pos-pro-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register / Login
// ──────────────────────────────────────────────────────────────────────────────

// Sin rol explícito, la cuenta se aprovisiona como cashier en el registro.
// No hay creación perezosa en otro punto del sistema.
func TestRegister_RolPorDefectoEsCajero(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@tienda.co",
		Password: "secreto-largo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, out.Role)
	assert.True(t, out.Active, "las cuentas nuevas nacen activas")
	assert.ElementsMatch(t, rbac.PermissionsFor(entity.RoleCashier), out.Permissions)
}

func TestRegister_RolDesconocidoRechazado(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "x@tienda.co",
		Password: "secreto-largo",
		Role:     "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dup@tienda.co", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "dup@tienda.co", Password: "otro-secreto"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidasEmitenTokenConPermisos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "caja@tienda.co",
		Password: "secreto-largo",
		Role:     entity.RoleCashier,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "caja@tienda.co", Password: "secreto-largo"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleCashier, out.User.Role)
	assert.Contains(t, out.User.Permissions, rbac.PermPOSAccess)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "u@tienda.co", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "u@tienda.co", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "baja@tienda.co", Password: "secreto-largo"})
	require.NoError(t, err)

	repo.byID[out.ID].Active = false

	_, err = uc.Login(dto.LoginRequest{Email: "baja@tienda.co", Password: "secreto-largo"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Superuser es una marca de identidad: el conjunto efectivo de permisos es el
// universo completo sin importar el rol.
func TestToUserResponse_SuperuserRecibeTodosLosPermisos(t *testing.T) {
	u := &entity.User{
		ID:        "u-1",
		Email:     "root@tienda.co",
		Role:      entity.RoleCashier,
		Superuser: true,
		Active:    true,
	}
	out := auth.ToUserResponse(u)
	assert.ElementsMatch(t, rbac.AllPermissions(), out.Permissions)
}
