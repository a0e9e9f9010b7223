// handlers/files.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
	"github.com/raywall/vfs-tracker-services/pkg/authz"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

// GetFileURL emite uma URL pré-assinada de leitura para uma chave de
// arquivo, após a checagem de posse por prefixo.
//
// Input: {fileKey} via query string ou body. Output: {url, expiresIn}.
func (s *Service) GetFileURL(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error) {
	caller, err := s.identity(req)
	if err != nil {
		return 0, nil, err
	}

	fileKey := req.QueryStringParameters["fileKey"]
	if fileKey == "" && req.Body != "" {
		var body struct {
			FileKey string `json:"fileKey"`
		}
		if err := transport.ParseBody(req, &body); err != nil {
			return 0, nil, err
		}
		fileKey = body.FileKey
	}
	if fileKey == "" {
		return 0, nil, apperr.Validation("campo obrigatório ausente: fileKey")
	}

	if err := authz.CheckFileRead(ctx, fileKey, caller.UserID, s.sessions); err != nil {
		return 0, nil, err
	}

	signedURL, err := s.signer.DownloadURL(ctx, fileKey, fileURLTTL)
	if err != nil {
		return 0, nil, apperr.Dependency("falha ao gerar URL do arquivo", err)
	}

	return http.StatusOK, map[string]interface{}{
		"url":       s.rewriteCDN(req, signedURL),
		"expiresIn": int(fileURLTTL / time.Second),
	}, nil
}

// GetAvatarURL emite uma URL pré-assinada de leitura do avatar de um
// usuário. Avatares são públicos por decisão de produto: não há checagem de
// autorização além da presença do userId.
//
// Input: path /{userId}. Output: {url, expiresIn}.
func (s *Service) GetAvatarURL(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error) {
	userID, err := transport.PathParam(req, "userId")
	if err != nil {
		return 0, nil, err
	}

	// Convenção fixa da chave: o upload de avatar passa pelo mesmo caminho
	signedURL, err := s.signer.DownloadURL(ctx, "avatars/"+userID+"/avatar", avatarURLTTL)
	if err != nil {
		return 0, nil, apperr.Dependency("falha ao gerar URL do avatar", err)
	}

	return http.StatusOK, map[string]interface{}{
		"url":       s.rewriteCDN(req, signedURL),
		"expiresIn": int(avatarURLTTL / time.Second),
	}, nil
}

// GetUploadURL emite uma URL pré-assinada de escrita para uma chave
// folder/<userId>/<filename>, anotando quem sobe e quando nos metadados do
// objeto.
//
// Input: body {fileKey, contentType}. Output: {uploadUrl, fileKey, expiresIn}.
func (s *Service) GetUploadURL(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error) {
	caller, err := s.identity(req)
	if err != nil {
		return 0, nil, err
	}

	var body struct {
		FileKey     string `json:"fileKey"`
		ContentType string `json:"contentType"`
	}
	if err := transport.ParseBody(req, &body); err != nil {
		return 0, nil, err
	}
	if body.FileKey == "" {
		return 0, nil, apperr.Validation("campo obrigatório ausente: fileKey")
	}

	if err := authz.CheckUploadKey(body.FileKey, caller.UserID); err != nil {
		return 0, nil, err
	}

	metadata := map[string]string{
		"uploaded-by": caller.UserID,
		"uploaded-at": s.now().UTC().Format(time.RFC3339),
	}
	uploadURL, err := s.signer.UploadURL(ctx, body.FileKey, body.ContentType, metadata, uploadURLTTL)
	if err != nil {
		return 0, nil, apperr.Dependency("falha ao gerar URL de upload", err)
	}

	// Sem reescrita de CDN aqui: o PUT vai direto ao bucket.
	return http.StatusOK, map[string]interface{}{
		"uploadUrl": uploadURL,
		"fileKey":   body.FileKey,
		"expiresIn": int(uploadURLTTL / time.Second),
	}, nil
}
