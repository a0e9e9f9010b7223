// pkg/transport/wrap.go
package transport

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raywall/vfs-tracker-services/pkg/observability"
)

// HeaderCorrelationID identifica a requisição ponta a ponta nos logs.
const HeaderCorrelationID = "X-Correlation-Id"

type contextKey string

// ContextKeyCorrID expõe o correlation id para uso interno dos handlers.
const ContextKeyCorrID contextKey = "correlation_id"

// HandlerFunc é a forma interna de um handler: status + body + erro. O Wrap
// cuida do resto (CORS, pré-flight, conversão de erro, logs, métricas).
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (int, interface{}, error)

// LambdaHandler é a assinatura esperada pelo lambda.Start.
type LambdaHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Wrap embrulha um handler com o comportamento comum de borda.
//
// Nenhum erro escapa como fault: tudo vira uma resposta JSON da taxonomia.
// allowMethods é a allow-list específica do handler (ex: "GET,OPTIONS").
func Wrap(name, allowMethods string, metrics observability.Provider, fn HandlerFunc) LambdaHandler {
	if metrics == nil {
		metrics = &observability.NoopProvider{}
	}

	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		start := time.Now()

		corrID := Header(req, HeaderCorrelationID)
		if corrID == "" {
			corrID = uuid.NewString()
		}

		// Configura Logger Contextual
		logger := log.With().
			Str("correlation_id", corrID).
			Str("handler", name).
			Logger()
		ctx = logger.WithContext(ctx)
		ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

		var response events.APIGatewayProxyResponse

		// Pré-flight nunca chega ao handler
		if req.HTTPMethod == http.MethodOptions {
			response = JSONResponse(http.StatusNoContent, allowMethods, nil)
		} else {
			code, body, err := fn(ctx, req)
			if err != nil {
				logger.Warn().Err(err).Msg("request rejeitado")
				response = errorResponse(err, allowMethods)
			} else {
				response = JSONResponse(code, allowMethods, body)
			}
		}

		duration := time.Since(start).Milliseconds()
		logger.Info().
			Str("method", req.HTTPMethod).
			Str("path", req.Path).
			Int("status", response.StatusCode).
			Int64("latency_ms", duration).
			Msg("request completed")

		tags := []string{"handler:" + name, "status:" + strconv.Itoa(response.StatusCode)}
		_ = metrics.Count("requests", 1, tags)
		_ = metrics.Histogram("latency_ms", float64(duration), tags)

		response.Headers[HeaderCorrelationID] = corrID
		return response, nil
	}
}
