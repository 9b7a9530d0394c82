package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrUserDisabled        = errors.New("usuário desativado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrUserAlreadyExists   = errors.New("usuário já existe")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidRole         = errors.New("perfil de usuário inválido")
	ErrWeakPassword        = errors.New("senha fraca")
	ErrWrongPassword       = errors.New("senha atual incorreta")
	ErrSamePassword        = errors.New("nova senha deve ser diferente da atual")
)

// Agrupamentos usados por quem precisa diferenciar falha de login de falha de sessão
var (
	credentialErrors = []error{ErrInvalidCredentials, ErrUserDisabled, ErrUserNotFound}
	sessionErrors    = []error{ErrInvalidToken, ErrExpiredToken}
)

// AuthError carrega o código da API e o usuário envolvido, quando conhecido
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return NewUserAuthError(baseErr, code, 0, details)
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}

// IsCredentialsError indica falha de login (usuário ausente, desativado ou senha errada)
func IsCredentialsError(err error) bool {
	return isAny(err, credentialErrors)
}

// IsSessionError indica token ausente de validade
func IsSessionError(err error) bool {
	return isAny(err, sessionErrors)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
