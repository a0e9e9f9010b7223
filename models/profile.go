// models/profile.go
package models

// UserProfile é o registro de perfil do usuário.
//
// O apelido nunca é persistido aqui: ele pertence ao provedor de identidade
// e só é re-injetado na resposta a partir das claims do token — por isso o
// dynamodbav:"-".
type UserProfile struct {
	UserID    string                 `dynamodbav:"userId" json:"userId"`
	Profile   map[string]interface{} `dynamodbav:"profile" json:"profile"`
	Nickname  string                 `dynamodbav:"-" json:"nickname,omitempty"`
	UpdatedAt string                 `dynamodbav:"updatedAt" json:"updatedAt"`
}
