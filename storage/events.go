// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package storage implementa os repositórios de domínio sobre o dynstore.
package storage

import (
	"context"

	"github.com/raywall/vfs-tracker-services/dynstore"
	"github.com/raywall/vfs-tracker-services/models"
)

// publicFeedLimit limita o feed público a uma página única; o dashboard
// agrega, não pagina.
const publicFeedLimit = 100

type EventRepository struct {
	store           dynstore.Store[models.VoiceEvent]
	createdAtIndex  string
	statusDateIndex string
}

func NewEventRepository(client dynstore.DynamoDBClient, table, createdAtIndex, statusDateIndex string) *EventRepository {
	return &EventRepository{
		store: dynstore.New[models.VoiceEvent](client, dynstore.TableConfig{
			TableName: table,
			HashKey:   "userId",
			SortKey:   "eventId",
		}),
		createdAtIndex:  createdAtIndex,
		statusDateIndex: statusDateIndex,
	}
}

// ListByUser lista os eventos do usuário, mais recente primeiro (por
// createdAt, via GSI).
func (r *EventRepository) ListByUser(ctx context.Context, userID string) ([]models.VoiceEvent, error) {
	events, _, err := r.store.Query().
		Index(r.createdAtIndex).
		KeyEqual("userId", userID).
		ScanForward(false).
		Exec(ctx)
	return events, err
}

// ListApproved lista os eventos aprovados para o feed público, mais recente
// primeiro (por date, via GSI).
func (r *EventRepository) ListApproved(ctx context.Context) ([]models.VoiceEvent, error) {
	events, _, err := r.store.Query().
		Index(r.statusDateIndex).
		KeyEqual("status", string(models.StatusApproved)).
		ScanForward(false).
		Limit(publicFeedLimit).
		Exec(ctx)
	return events, err
}

// Create grava um evento novo (upsert por userId+eventId).
func (r *EventRepository) Create(ctx context.Context, event models.VoiceEvent) error {
	return r.store.Put(ctx, event)
}
