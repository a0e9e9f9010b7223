// models/event.go
package models

// EventType enumera os tipos de evento de saúde vocal aceitos.
type EventType string

const (
	EventSelfTest     EventType = "self_test"
	EventSurgery      EventType = "surgery"
	EventTraining     EventType = "training"
	EventHospitalTest EventType = "hospital_test"
	EventFeelingLog   EventType = "feeling_log"
)

// EventStatus controla a visibilidade no dashboard público.
type EventStatus string

const (
	StatusApproved        EventStatus = "approved"
	StatusPendingApproval EventStatus = "pending_approval"
)

// VoiceEvent é um evento do timeline pessoal do usuário.
//
// Tabela: PK userId, SK eventId. O GSI createdAt-index (userId, createdAt)
// serve a listagem pessoal mais-recente-primeiro; o GSI status-date-index
// (status, date) serve o feed público.
type VoiceEvent struct {
	UserID  string    `dynamodbav:"userId" json:"userId"`
	EventID string    `dynamodbav:"eventId" json:"eventId"`
	Type    EventType `dynamodbav:"type" json:"type"`
	// Date é a data do evento em si (YYYY-MM-DD), distinta de CreatedAt.
	Date   string      `dynamodbav:"date" json:"date"`
	Status EventStatus `dynamodbav:"status" json:"status"`
	// Nickname é um snapshot do apelido do dono no momento da criação; é o
	// único identificador que a projeção pública expõe.
	Nickname    string                 `dynamodbav:"nickname" json:"nickname,omitempty"`
	Details     map[string]interface{} `dynamodbav:"details,omitempty" json:"details,omitempty"`
	Attachments []string               `dynamodbav:"attachments,omitempty" json:"attachments,omitempty"`
	CreatedAt   string                 `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   string                 `dynamodbav:"updatedAt" json:"updatedAt"`
}

// PublicEvent é a projeção de um evento aprovado para o dashboard público:
// sem attachments, sem status, sem updatedAt e sem identidade crua — só o
// apelido no lugar do userId.
type PublicEvent struct {
	EventID   string                 `json:"eventId"`
	Type      EventType              `json:"type"`
	Date      string                 `json:"date"`
	Nickname  string                 `json:"nickname"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt string                 `json:"createdAt"`
}

// IsPublic diz se o evento pode aparecer no dashboard público.
func (e VoiceEvent) IsPublic() bool {
	return e.Status == StatusApproved
}

// PublicView devolve a projeção pública do evento.
func (e VoiceEvent) PublicView() PublicEvent {
	return PublicEvent{
		EventID:   e.EventID,
		Type:      e.Type,
		Date:      e.Date,
		Nickname:  e.Nickname,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
}

// CreateEventInput é o payload aceito na criação de evento.
type CreateEventInput struct {
	Type        EventType              `json:"type" validate:"required,oneof=self_test surgery training hospital_test feeling_log"`
	Date        string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Details     map[string]interface{} `json:"details"`
	Attachments []string               `json:"attachments" validate:"omitempty,dive,required"`
}
