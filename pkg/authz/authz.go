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

// Package authz decide allow/deny sobre recursos cujo dono está codificado
// posicionalmente na chave: <folder>/<ownerId>/<name>.
//
// Essa codificação posicional é a invariante central do sistema — não há
// metadado de posse fora da chave.
package authz

import (
	"context"
	"errors"
	"strings"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
)

// ErrUnknownSession é retornado por um SessionResolver quando a sessão não
// existe. A checagem converte em negação (403), não em 404: os ids de sessão
// aparecem em URLs e um not-found distinto confirmaria quais existem.
var ErrUnknownSession = errors.New("authz: sessão desconhecida")

// SessionResolver resolve o dono verdadeiro de uma sessão de voice-test.
// As chaves voice-tests/ carregam um id de sessão no lugar do dono, então a
// posse exige um lookup secundário.
type SessionResolver interface {
	OwnerOf(ctx context.Context, sessionID string) (string, error)
}

// Prefixos de chave reconhecidos.
const (
	PrefixAttachments = "attachments"
	PrefixAvatars     = "avatars"
	PrefixUploads     = "uploads"
	PrefixVoiceTests  = "voice-tests"
)

// uploadFolders é a allow-list de pastas aceitas em chaves de upload.
var uploadFolders = map[string]bool{
	PrefixAvatars:     true,
	PrefixAttachments: true,
	PrefixUploads:     true,
}

// CheckFileRead autoriza a leitura de uma chave de arquivo pelo chamador.
//
//   - attachments/ e uploads/: o segundo segmento deve ser o próprio chamador
//   - avatars/: leitura pública
//   - voice-tests/: o segundo segmento é um id de sessão; o dono resolvido
//     deve ser o chamador
//
// Qualquer outro prefixo é negado.
func CheckFileRead(ctx context.Context, fileKey, userID string, sessions SessionResolver) error {
	segments := split(fileKey)
	if len(segments) < 2 {
		return apperr.Validation("fileKey inválido: %q", fileKey)
	}

	switch segments[0] {
	case PrefixAvatars:
		return nil

	case PrefixAttachments, PrefixUploads:
		if segments[1] != userID {
			return apperr.Forbidden("acesso negado ao arquivo de outro usuário")
		}
		return nil

	case PrefixVoiceTests:
		if sessions == nil {
			return apperr.Forbidden("acesso negado")
		}
		owner, err := sessions.OwnerOf(ctx, segments[1])
		if err != nil {
			if errors.Is(err, ErrUnknownSession) {
				return apperr.Forbidden("acesso negado")
			}
			return apperr.Dependency("falha ao resolver dono da sessão", err)
		}
		if owner != userID {
			return apperr.Forbidden("acesso negado")
		}
		return nil

	default:
		return apperr.Forbidden("prefixo de arquivo não reconhecido: %s", segments[0])
	}
}

// CheckUploadKey autoriza a escrita de uma chave de upload pelo chamador.
//
// Exige exatamente 3 segmentos não vazios (folder/ownerId/filename); menos
// que isso é request malformado (400), não negação. Pasta fora da allow-list
// ou dono diferente do chamador nega (403) mesmo com o resto correto.
func CheckUploadKey(fileKey, userID string) error {
	segments := split(fileKey)
	if len(segments) != 3 {
		return apperr.Validation("fileKey deve ter o formato folder/userId/filename, recebido %q", fileKey)
	}

	folder, owner := segments[0], segments[1]
	if !uploadFolders[folder] {
		return apperr.Forbidden("upload não permitido na pasta %q", folder)
	}
	if owner != userID {
		return apperr.Forbidden("upload negado em caminho de outro usuário")
	}
	return nil
}

// CheckOwner autoriza operações sobre recursos endereçados por parâmetro de
// caminho (eventos e perfil): o userId do caminho deve ser o chamador.
func CheckOwner(pathUserID, userID string) error {
	if pathUserID == "" {
		return apperr.Validation("parâmetro userId ausente")
	}
	if pathUserID != userID {
		return apperr.Forbidden("operação permitida apenas ao dono do recurso")
	}
	return nil
}

// split quebra a chave em segmentos não vazios.
func split(key string) []string {
	var segments []string
	for _, s := range strings.Split(key, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
