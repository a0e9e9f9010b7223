// storage/sessions.go
package storage

import (
	"context"
	"errors"

	"github.com/raywall/vfs-tracker-services/dynstore"
	"github.com/raywall/vfs-tracker-services/models"
	"github.com/raywall/vfs-tracker-services/pkg/authz"
)

// SessionRepository resolve o dono de sessões de voice-test. Implementa
// authz.SessionResolver.
type SessionRepository struct {
	store dynstore.Store[models.VoiceSession]
}

func NewSessionRepository(client dynstore.DynamoDBClient, table string) *SessionRepository {
	return &SessionRepository{
		store: dynstore.New[models.VoiceSession](client, dynstore.TableConfig{
			TableName: table,
			HashKey:   "sessionId",
		}),
	}
}

// OwnerOf devolve o userId dono da sessão. Sessão inexistente vira
// ErrUnknownSession — a checagem de posse trata como negação.
func (r *SessionRepository) OwnerOf(ctx context.Context, sessionID string) (string, error) {
	session, err := r.store.Get(ctx, sessionID, nil)
	if err != nil {
		if errors.Is(err, dynstore.ErrNotFound) {
			return "", authz.ErrUnknownSession
		}
		return "", err
	}
	if session.UserID == "" {
		return "", authz.ErrUnknownSession
	}
	return session.UserID, nil
}
