// Package transport adapta eventos do API Gateway para os handlers: headers
// case-insensitive, CORS fixo, curto-circuito de pré-flight, logger
// contextual com correlation id e conversão da taxonomia de erros em
// respostas JSON.
package transport

import (
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
)

// Header busca um header sem diferenciar maiúsculas — o API Gateway não
// normaliza a caixa de "Authorization" nem dos headers encaminhados.
func Header(req events.APIGatewayProxyRequest, name string) string {
	if v, ok := req.Headers[name]; ok {
		return v
	}
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// ForwardedHost devolve o host pelo qual o chamador chegou, preferindo o
// header encaminhado pelo CDN/proxy.
func ForwardedHost(req events.APIGatewayProxyRequest) string {
	if host := Header(req, "X-Forwarded-Host"); host != "" {
		return host
	}
	return Header(req, "Host")
}

// Bearer devolve o header Authorization, falhando com 401 quando ausente.
func Bearer(req events.APIGatewayProxyRequest) (string, error) {
	auth := Header(req, "Authorization")
	if auth == "" {
		return "", apperr.Auth("authorization header ausente", nil)
	}
	return auth, nil
}

// PathParam devolve um parâmetro de caminho, falhando com 400 quando ausente.
func PathParam(req events.APIGatewayProxyRequest, name string) (string, error) {
	if v := req.PathParameters[name]; v != "" {
		return v, nil
	}
	return "", apperr.Validation("parâmetro de caminho ausente: %s", name)
}

// ParseBody decodifica o body JSON do request no destino informado.
func ParseBody(req events.APIGatewayProxyRequest, dst interface{}) error {
	if strings.TrimSpace(req.Body) == "" {
		return apperr.Validation("body ausente")
	}
	if err := json.Unmarshal([]byte(req.Body), dst); err != nil {
		return apperr.Validation("body não é JSON válido")
	}
	return nil
}
