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

// Package claims extrai a identidade normalizada do chamador a partir do ID
// token.
//
// PRECONDIÇÃO: a assinatura do token já foi verificada pelo
// authorizer/gateway upstream. Este pacote apenas decodifica o payload — por
// isso o tipo Verified só pode ser construído pelas funções desta fronteira,
// nunca montado à mão pelos handlers.
package claims

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
)

// Verified é o registro de identidade normalizado do chamador.
type Verified struct {
	UserID   string
	Email    string
	Username string
	Nickname string
}

// payload mapeia as claims de interesse do ID token (Cognito).
type payload struct {
	Sub             string `json:"sub"`
	Email           string `json:"email"`
	TokenUse        string `json:"token_use"`
	Nickname        string `json:"nickname"`
	Name            string `json:"name"`
	CognitoUsername string `json:"cognito:username"`
}

// From resolve a identidade do chamador. Quando o authorizer upstream já
// injetou as claims verificadas no evento, elas são usadas diretamente (sem
// re-decodificar); caso contrário o header bearer é decodificado.
func From(preverified map[string]interface{}, bearer string) (*Verified, error) {
	if len(preverified) > 0 {
		return fromClaimMap(preverified)
	}
	return DecodeIDToken(bearer)
}

// DecodeIDToken decodifica o payload de um ID token bearer.
//
// Não há verificação criptográfica aqui: a fronteira de confiança é o
// gateway. O que se valida é a forma (três segmentos, base64url, JSON) e o
// discriminador token_use — access tokens não carregam as claims de perfil
// que o sistema precisa.
func DecodeIDToken(bearer string) (*Verified, error) {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(bearer), "Bearer"))
	if token == "" {
		return nil, apperr.Auth("authorization token ausente", nil)
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, apperr.Auth("token malformado: esperados 3 segmentos", nil)
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(segments[1], "="))
	if err != nil {
		return nil, apperr.Auth("payload do token não é base64 válido", err)
	}

	var p payload
	if err := json.Unmarshal(decoded, &p); err != nil {
		return nil, apperr.Auth("payload do token não é JSON válido", err)
	}

	if p.TokenUse != "id" {
		return nil, apperr.Auth(fmt.Sprintf("esperado ID token, recebido token_use=%q", p.TokenUse), nil)
	}

	return normalize(p)
}

func fromClaimMap(m map[string]interface{}) (*Verified, error) {
	return normalize(payload{
		Sub:             str(m["sub"]),
		Email:           str(m["email"]),
		TokenUse:        "id",
		Nickname:        str(m["nickname"]),
		Name:            str(m["name"]),
		CognitoUsername: str(m["cognito:username"]),
	})
}

func normalize(p payload) (*Verified, error) {
	if p.Sub == "" {
		return nil, apperr.Auth("token sem claim 'sub'", nil)
	}

	return &Verified{
		UserID:   p.Sub,
		Email:    p.Email,
		Username: p.CognitoUsername,
		Nickname: nicknameOf(p),
	}, nil
}

// nicknameOf aplica a cadeia de fallback do apelido, nesta ordem:
// nickname -> name -> username do provedor -> parte local do email -> "Unknown".
func nicknameOf(p payload) string {
	switch {
	case p.Nickname != "":
		return p.Nickname
	case p.Name != "":
		return p.Name
	case p.CognitoUsername != "":
		return p.CognitoUsername
	case p.Email != "":
		return strings.SplitN(p.Email, "@", 2)[0]
	default:
		return "Unknown"
	}
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
