// handlers/events.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"

	"github.com/raywall/vfs-tracker-services/models"
	"github.com/raywall/vfs-tracker-services/pkg/apperr"
	"github.com/raywall/vfs-tracker-services/pkg/authz"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

// ListEvents lista os eventos do próprio usuário, mais recente primeiro.
// A checagem de posse roda antes da query: negação não toca o banco.
//
// Input: path /{userId}. Output: {events}.
func (s *Service) ListEvents(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error) {
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

	list, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return 0, nil, apperr.Dependency("falha ao listar eventos", err)
	}
	if list == nil {
		list = make([]models.VoiceEvent, 0)
	}

	return http.StatusOK, map[string]interface{}{"events": list}, nil
}

// PublicEvents devolve o feed do dashboard público: só eventos aprovados,
// na projeção pública (sem anexos, status, updatedAt ou identidade crua).
// Não há autenticação — o feed é aberto.
func (s *Service) PublicEvents(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error) {
	approved, err := s.events.ListApproved(ctx)
	if err != nil {
		return 0, nil, apperr.Dependency("falha ao listar eventos públicos", err)
	}

	feed := make([]models.PublicEvent, 0, len(approved))
	for _, event := range approved {
		// O índice já filtra por status; o IsPublic segura qualquer item
		// fora do gate que venha de uma projeção inconsistente.
		if event.IsPublic() {
			feed = append(feed, event.PublicView())
		}
	}

	return http.StatusOK, map[string]interface{}{"events": feed}, nil
}

// CreateEvent registra um evento novo do próprio chamador. O servidor
// decide id, timestamps, status inicial (pending_approval) e o snapshot do
// apelido — nada disso vem do cliente.
//
// Input: body CreateEventInput. Output: {event}, 201.
func (s *Service) CreateEvent(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error) {
	caller, err := s.identity(req)
	if err != nil {
		return 0, nil, err
	}

	var input models.CreateEventInput
	if err := transport.ParseBody(req, &input); err != nil {
		return 0, nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			e := fieldErrors[0]
			return 0, nil, apperr.Validation("campo '%s' falhou na regra '%s'", e.Field(), e.Tag())
		}
		return 0, nil, apperr.Validation("payload inválido: %v", err)
	}

	// Anexos só podem apontar para chaves do próprio chamador
	for _, attachment := range input.Attachments {
		if err := authz.CheckUploadKey(attachment, caller.UserID); err != nil {
			return 0, nil, err
		}
	}

	now := s.now().UTC().Format(time.RFC3339)
	event := models.VoiceEvent{
		UserID:      caller.UserID,
		EventID:     s.newID(),
		Type:        input.Type,
		Date:        input.Date,
		Status:      models.StatusPendingApproval,
		Nickname:    caller.Nickname,
		Details:     input.Details,
		Attachments: input.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return 0, nil, apperr.Dependency(fmt.Sprintf("falha ao gravar evento %s", event.EventID), err)
	}

	return http.StatusCreated, map[string]interface{}{"event": event}, nil
}
