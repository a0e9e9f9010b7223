// pkg/transport/response.go
package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
)

// corsHeaders monta o conjunto fixo de headers CORS de toda resposta.
func corsHeaders(allowMethods string) map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": allowMethods,
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
	}
}

// JSONResponse serializa o body com os headers CORS do handler.
func JSONResponse(statusCode int, allowMethods string, body interface{}) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(allowMethods),
			Body:       `{"error": "internal server error encoding response"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    corsHeaders(allowMethods),
		Body:       string(raw),
	}
}

// errorResponse converte um erro da taxonomia na resposta JSON adequada.
// Erros fora da taxonomia viram 500 com mensagem genérica: a mensagem
// upstream só é exposta quando veio embrulhada num DependencyError ou
// ConfigurationError, nunca de um fault bruto.
func errorResponse(err error, allowMethods string) events.APIGatewayProxyResponse {
	status := apperr.StatusOf(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		var dep *apperr.DependencyError
		var conf *apperr.ConfigurationError
		if !errors.As(err, &dep) && !errors.As(err, &conf) {
			message = "internal server error"
		}
	}

	return JSONResponse(status, allowMethods, map[string]string{"error": message})
}
