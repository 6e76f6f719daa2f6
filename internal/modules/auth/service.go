package auth

import (
	jwtsvc "radioreg/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"

	LabelAdmin  = "Администратор"
	LabelViewer = "Наблюдатель"
)

// Service implements the password-gated two-role login. There are no
// user accounts: whichever configured password matches decides the role,
// and the role's display label is what maintenance records are journaled
// under.
type Service struct {
	adminHash  []byte
	viewerHash []byte
	jwt        *jwtsvc.Service
}

func NewService(adminPassword, viewerPassword string, jwt *jwtsvc.Service) (*Service, error) {
	// configured passwords are hashed once at startup so plaintext is not
	// kept around for the process lifetime
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	viewerHash, err := bcrypt.GenerateFromPassword([]byte(viewerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{adminHash: adminHash, viewerHash: viewerHash, jwt: jwt}, nil
}

// Login exchanges a password for a signed token. The admin password is
// checked first so identical admin/viewer passwords grant admin.
func (s *Service) Login(password string) (token, role string, err error) {
	switch {
	case bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil:
		role = RoleAdmin
		token, err = s.jwt.GenerateToken(RoleAdmin, LabelAdmin)
	case bcrypt.CompareHashAndPassword(s.viewerHash, []byte(password)) == nil:
		role = RoleViewer
		token, err = s.jwt.GenerateToken(RoleViewer, LabelViewer)
	default:
		return "", "", ErrInvalidCredentials
	}
	if err != nil {
		return "", "", err
	}
	return token, role, nil
}
