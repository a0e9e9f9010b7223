package models_test

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/vfs-tracker-services/models"
)

func TestPublicView_StripsPrivateFields(t *testing.T) {
	t.Parallel()

	event := models.VoiceEvent{
		UserID:      "u1",
		EventID:     "ev-1",
		Type:        models.EventSelfTest,
		Date:        "2026-08-01",
		Status:      models.StatusApproved,
		Nickname:    "Ana",
		Details:     map[string]interface{}{"pitch": 220.0},
		Attachments: []string{"attachments/u1/rec.wav"},
		CreatedAt:   "2026-08-01T10:00:00Z",
		UpdatedAt:   "2026-08-02T10:00:00Z",
	}

	raw, err := json.Marshal(event.PublicView())
	require.NoError(t, err)

	var projected map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &projected))

	assert.Equal(t, "Ana", projected["nickname"])
	assert.Equal(t, "ev-1", projected["eventId"])
	assert.NotContains(t, projected, "userId")
	assert.NotContains(t, projected, "attachments")
	assert.NotContains(t, projected, "status")
	assert.NotContains(t, projected, "updatedAt")
}

func TestIsPublic(t *testing.T) {
	t.Parallel()

	assert.True(t, models.VoiceEvent{Status: models.StatusApproved}.IsPublic())
	assert.False(t, models.VoiceEvent{Status: models.StatusPendingApproval}.IsPublic())
	assert.False(t, models.VoiceEvent{}.IsPublic())
}

func TestCreateEventInput_Validation(t *testing.T) {
	t.Parallel()

	v := validator.New()

	tests := []struct {
		name    string
		input   models.CreateEventInput
		wantErr bool
	}{
		{"válido", models.CreateEventInput{Type: models.EventSelfTest, Date: "2026-08-01"}, false},
		{"tipo desconhecido", models.CreateEventInput{Type: "karaoke", Date: "2026-08-01"}, true},
		{"sem tipo", models.CreateEventInput{Date: "2026-08-01"}, true},
		{"data fora do formato", models.CreateEventInput{Type: models.EventSurgery, Date: "01/08/2026"}, true},
		{"attachment vazio", models.CreateEventInput{Type: models.EventSurgery, Date: "2026-08-01", Attachments: []string{""}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := v.Struct(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserProfile_NicknameNotPersisted(t *testing.T) {
	t.Parallel()

	// A tag dynamodbav:"-" garante que o apelido nunca vai para a tabela;
	// aqui validamos só a serialização JSON da resposta.
	profile := models.UserProfile{UserID: "u1", Nickname: "Ana", Profile: map[string]interface{}{"pronouns": "she/her"}}

	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"nickname":"Ana"`)
}
