package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jgarciandiav/ventas-backend/internal/application/dto"
	"github.com/jgarciandiav/ventas-backend/internal/application/sales"
	"github.com/jgarciandiav/ventas-backend/internal/domain"
	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	pkgjwt "github.com/jgarciandiav/ventas-backend/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

var testJWTCfg = JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "test"}

func registerReq(username, email string) dto.RegisterRequest {
	return dto.RegisterRequest{Username: username, Email: email, Password: "clave-segura-123"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaRolUsuario(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	out, err := uc.Register(registerReq("maria", "maria@tienda.pe"))
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUsuario, out.Role,
		"el registro público siempre crea rol usuario")
	assert.True(t, out.Active)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Register(registerReq("maria", "maria@tienda.pe"))
	require.NoError(t, err)

	_, err = uc.Register(registerReq("maria", "otra@tienda.pe"))
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Register(registerReq("maria", "maria@tienda.pe"))
	require.NoError(t, err)

	_, err = uc.Register(registerReq("otra", "maria@tienda.pe"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_NoPersisteElPasswordEnClaro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg)

	out, err := uc.Register(registerReq("maria", "maria@tienda.pe"))
	require.NoError(t, err)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura-123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura-123")))
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterStaff
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterStaff_SoloAdmin(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)
	in := dto.RegisterStaffRequest{
		Username: "bodega1", Email: "bodega1@tienda.pe",
		Password: "clave-segura-123", Role: entity.RoleAlmacenero,
	}

	_, err := uc.RegisterStaff(sales.Actor{Username: "alm", Role: entity.RoleAlmacenero}, in)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un almacenero no puede dar de alta personal")

	out, err := uc.RegisterStaff(sales.Actor{Username: "jefa", Role: entity.RoleAdmin}, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAlmacenero, out.Role)
}

func TestRegisterStaff_RolUsuarioRechazado(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterStaff(sales.Actor{Role: entity.RoleAdmin}, dto.RegisterStaffRequest{
		Username: "x", Email: "x@tienda.pe", Password: "clave-segura-123", Role: entity.RoleUsuario,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"register-staff solo acepta admin o almacenero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.RegisterStaff(sales.Actor{Role: entity.RoleAdmin}, dto.RegisterStaffRequest{
		Username: "jefa", Email: "jefa@tienda.pe", Password: "clave-segura-123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "jefa", Password: "clave-segura-123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, username, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "jefa", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Register(registerReq("maria", "maria@tienda.pe"))
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTCfg)

	out, err := uc.Register(registerReq("maria", "maria@tienda.pe"))
	require.NoError(t, err)

	stored, _ := repo.GetByID(out.ID)
	stored.Active = false
	require.NoError(t, repo.Update(stored))

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
