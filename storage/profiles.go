// storage/profiles.go
package storage

import (
	"context"

	"github.com/raywall/vfs-tracker-services/dynstore"
	"github.com/raywall/vfs-tracker-services/models"
)

type ProfileRepository struct {
	store dynstore.Store[models.UserProfile]
}

func NewProfileRepository(client dynstore.DynamoDBClient, table string) *ProfileRepository {
	return &ProfileRepository{
		store: dynstore.New[models.UserProfile](client, dynstore.TableConfig{
			TableName: table,
			HashKey:   "userId",
		}),
	}
}

// UpdateProfile substitui os sub-campos do perfil e devolve o registro como
// ficou. O perfil pode não existir ainda (criação implícita no signup):
// nesse caso o UpdateItem cria o item com a própria chave.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, userID string, profile map[string]interface{}, updatedAt string) (*models.UserProfile, error) {
	return r.store.Update(ctx, userID, nil, map[string]any{
		"profile":   profile,
		"updatedAt": updatedAt,
	})
}
