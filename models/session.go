// models/session.go
package models

// VoiceSession vincula uma sessão de voice-test gerada pelo sistema ao seu
// dono. As chaves voice-tests/<sessionId>/... não carregam o userId, então a
// posse passa por este registro.
type VoiceSession struct {
	SessionID string `dynamodbav:"sessionId" json:"sessionId"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	// ExpiresAt é o TTL da tabela (epoch); sessões antigas somem sozinhas.
	ExpiresAt int64 `dynamodbav:"expiresAt,omitempty" json:"-"`
}
