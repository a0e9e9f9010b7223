package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func TestHeader_CaseInsensitive(t *testing.T) {
	t.Parallel()

	req := events.APIGatewayProxyRequest{
		Headers: map[string]string{"authorization": "Bearer abc", "X-Forwarded-Host": "app.vfs-tracker.app"},
	}

	assert.Equal(t, "Bearer abc", transport.Header(req, "Authorization"))
	assert.Equal(t, "app.vfs-tracker.app", transport.Header(req, "x-forwarded-host"))
	assert.Empty(t, transport.Header(req, "X-Missing"))
}

func TestBearer_MissingIs401(t *testing.T) {
	t.Parallel()

	_, err := transport.Bearer(events.APIGatewayProxyRequest{})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
}

func TestPathParam_MissingIs400(t *testing.T) {
	t.Parallel()

	_, err := transport.PathParam(events.APIGatewayProxyRequest{}, "userId")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestParseBody(t *testing.T) {
	t.Parallel()

	var dst map[string]string
	err := transport.ParseBody(events.APIGatewayProxyRequest{Body: `{"fileKey":"a/b/c"}`}, &dst)
	require.NoError(t, err)
	assert.Equal(t, "a/b/c", dst["fileKey"])

	err = transport.ParseBody(events.APIGatewayProxyRequest{Body: "not json"}, &dst)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	err = transport.ParseBody(events.APIGatewayProxyRequest{}, &dst)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestWrap_Preflight(t *testing.T) {
	t.Parallel()

	called := false
	handler := transport.Wrap("test", "GET,OPTIONS", nil, func(_ context.Context, _ events.APIGatewayProxyRequest) (int, interface{}, error) {
		called = true
		return http.StatusOK, nil, nil
	})

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodOptions})

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "GET,OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
}

func TestWrap_Success(t *testing.T) {
	t.Parallel()

	handler := transport.Wrap("test", "GET,OPTIONS", nil, func(_ context.Context, _ events.APIGatewayProxyRequest) (int, interface{}, error) {
		return http.StatusOK, map[string]string{"ok": "yes"}, nil
	})

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/test"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":"yes"}`, resp.Body)
	assert.Contains(t, resp.Headers, "Access-Control-Allow-Headers")
	assert.NotEmpty(t, resp.Headers[transport.HeaderCorrelationID])
}

func TestWrap_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validação", apperr.Validation("campo ausente: fileKey"), http.StatusBadRequest, "campo ausente: fileKey"},
		{"auth", apperr.Auth("token inválido", nil), http.StatusUnauthorized, "token inválido"},
		{"forbidden", apperr.Forbidden("acesso negado"), http.StatusForbidden, "acesso negado"},
		{"dependency expõe mensagem upstream", apperr.Dependency("query failed", errors.New("throttled")), http.StatusInternalServerError, "query failed: throttled"},
		{"erro cru é redigido", errors.New("panic: secret dsn"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := transport.Wrap("test", "POST,OPTIONS", nil, func(_ context.Context, _ events.APIGatewayProxyRequest) (int, interface{}, error) {
				return 0, nil, tc.err
			})

			resp, err := handler(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost})

			require.NoError(t, err, "erros nunca propagam como fault")
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Equal(t, tc.wantMsg, body["error"])
		})
	}
}

func TestWrap_PreservesCorrelationID(t *testing.T) {
	t.Parallel()

	handler := transport.Wrap("test", "GET,OPTIONS", nil, func(ctx context.Context, _ events.APIGatewayProxyRequest) (int, interface{}, error) {
		assert.Equal(t, "corr-123", ctx.Value(transport.ContextKeyCorrID))
		return http.StatusOK, nil, nil
	})

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Headers:    map[string]string{"x-correlation-id": "corr-123"},
	})

	require.NoError(t, err)
	assert.Equal(t, "corr-123", resp.Headers[transport.HeaderCorrelationID])
}
