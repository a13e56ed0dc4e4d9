package middleware

import (
	"net/http"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
)

const (
	RoleMaster   = 1 // importa, sincroniza e altera configurações
	RoleOperator = 2 // importa vendas e revisa candidatos
	RoleViewer   = 3 // apenas relatórios
)

// RoleMiddleware libera a rota só para os perfis informados
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	allowed := make(map[int]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("auth: acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if _, ok := allowed[claims.UserRoleID]; !ok {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":         r.URL.Path,
					"user_role_id": claims.UserRoleID,
				}).Warn("auth: perfil sem permissão para a rota")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func MasterOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleMaster)
}

// MasterOrOperator permite acesso a quem pode alterar o livro de vendas
func MasterOrOperator() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleMaster, RoleOperator)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleMaster, RoleOperator, RoleViewer)
}
