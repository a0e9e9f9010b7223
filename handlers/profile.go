// handlers/profile.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
	"github.com/raywall/vfs-tracker-services/pkg/authz"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

// UpdateProfile atualiza os sub-campos do perfil do próprio usuário.
//
// O apelido pertence ao provedor de identidade: qualquer "nickname" enviado
// no body é ignorado em silêncio, e a resposta sempre carrega o apelido
// derivado das claims do token.
//
// Input: path /{userId}, body {profile}. Output: registro atualizado.
func (s *Service) UpdateProfile(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error) {
	caller, err := s.identity(req)
	if err != nil {
		return 0, nil, err
	}

	userID, err := transport.PathParam(req, "userId")
	if err != nil {
		return 0, nil, err
	}

	if err := authz.CheckOwner(userID, caller.UserID); err != nil {
		return 0, nil, err
	}

	var body struct {
		Profile map[string]interface{} `json:"profile"`
	}
	if err := transport.ParseBody(req, &body); err != nil {
		return 0, nil, err
	}
	if body.Profile == nil {
		return 0, nil, apperr.Validation("campo obrigatório ausente: profile")
	}

	delete(body.Profile, "nickname")

	updated, err := s.profiles.UpdateProfile(ctx, userID, body.Profile, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, nil, apperr.Dependency("falha ao atualizar perfil", err)
	}

	updated.Nickname = caller.Nickname
	return http.StatusOK, updated, nil
}
