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

// Package handlers implementa as capacidades expostas pelos Lambdas do VFS
// Tracker. Cada handler é uma passada linear: claims -> autorização -> uma
// chamada externa -> resposta JSON.
package handlers

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/raywall/vfs-tracker-services/models"
	"github.com/raywall/vfs-tracker-services/pkg/authz"
	"github.com/raywall/vfs-tracker-services/pkg/claims"
	"github.com/raywall/vfs-tracker-services/pkg/config"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
	"github.com/raywall/vfs-tracker-services/s3sign"
)

// Tempos de vida das URLs pré-assinadas.
const (
	fileURLTTL   = time.Hour
	avatarURLTTL = 24 * time.Hour
	uploadURLTTL = 15 * time.Minute
)

// EventStore é a visão dos handlers sobre o repositório de eventos.
type EventStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.VoiceEvent, error)
	ListApproved(ctx context.Context) ([]models.VoiceEvent, error)
	Create(ctx context.Context, event models.VoiceEvent) error
}

// ProfileStore é a visão dos handlers sobre o repositório de perfis.
type ProfileStore interface {
	UpdateProfile(ctx context.Context, userID string, profile map[string]interface{}, updatedAt string) (*models.UserProfile, error)
}

// URLSigner é a visão dos handlers sobre o emissor de URLs pré-assinadas.
type URLSigner interface {
	DownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	UploadURL(ctx context.Context, key, contentType string, metadata map[string]string, expiry time.Duration) (string, error)
}

// Service agrega as dependências compartilhadas pelos handlers. A
// configuração entra explicitamente pelo construtor — nada de estado
// ambiente dentro dos handlers.
type Service struct {
	cfg      *config.Config
	events   EventStore
	profiles ProfileStore
	sessions authz.SessionResolver
	signer   URLSigner
	validate *validator.Validate

	// Injetáveis para teste
	now   func() time.Time
	newID func() string
}

func NewService(cfg *config.Config, events EventStore, profiles ProfileStore, sessions authz.SessionResolver, signer URLSigner) *Service {
	return &Service{
		cfg:      cfg,
		events:   events,
		profiles: profiles,
		sessions: sessions,
		signer:   signer,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// identity resolve a identidade do chamador: claims já verificadas pelo
// authorizer quando presentes, senão o decode do header bearer.
func (s *Service) identity(req events.APIGatewayProxyRequest) (*claims.Verified, error) {
	if raw, ok := req.RequestContext.Authorizer["claims"]; ok {
		if preverified, ok := raw.(map[string]interface{}); ok && len(preverified) > 0 {
			return claims.From(preverified, "")
		}
	}

	bearer, err := transport.Bearer(req)
	if err != nil {
		return nil, err
	}
	return claims.From(nil, bearer)
}

// rewriteCDN aplica o alias de CDN da região do chamador à URL assinada.
func (s *Service) rewriteCDN(req events.APIGatewayProxyRequest, signedURL string) string {
	return s3sign.Rewrite(signedURL, transport.ForwardedHost(req), s.cfg.CDN.DefaultHost, s.cfg.CDN.CNHost)
}
