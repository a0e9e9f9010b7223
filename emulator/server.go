// Package emulator sobe os handlers do VFS Tracker como um servidor HTTP
// local, convertendo cada request no evento de proxy que o API Gateway
// entregaria. Útil para exercitar o front-end sem deploy.
package emulator

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/raywall/vfs-tracker-services/handlers"
	"github.com/raywall/vfs-tracker-services/pkg/apperr"
	"github.com/raywall/vfs-tracker-services/pkg/observability"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

// Server adapta os handlers de lambda para um mux HTTP local.
type Server struct {
	cfg    ServerConfig
	router *mux.Router
}

// New monta o roteador a partir da configuração de rotas. Cada handler
// passa pelo mesmo transport.Wrap da produção, então CORS, erros e logs
// se comportam igual.
func New(cfg ServerConfig, svc *handlers.Service, metrics observability.Provider) (*Server, error) {
	registry := map[string]transport.HandlerFunc{
		"get-file-url":   svc.GetFileURL,
		"get-avatar-url": svc.GetAvatarURL,
		"get-upload-url": svc.GetUploadURL,
		"list-events":    svc.ListEvents,
		"public-events":  svc.PublicEvents,
		"create-event":   svc.CreateEvent,
		"update-profile": svc.UpdateProfile,
	}

	router := mux.NewRouter()
	for _, route := range cfg.Routes {
		fn, ok := registry[route.Handler]
		if !ok {
			return nil, apperr.Configuration("handler desconhecido na rota: "+route.Handler, nil)
		}
		wrapped := transport.Wrap(route.Handler, route.Method+",OPTIONS", metrics, fn)
		router.HandleFunc(route.Path, adapt(wrapped)).Methods(route.Method, http.MethodOptions)
	}

	return &Server{cfg: cfg, router: router}, nil
}

// Handler expõe o roteador, para testes e composição.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe bloqueia servindo na porta configurada.
func (s *Server) ListenAndServe() error {
	log.Info().Str("addr", s.cfg.Addr).Msg("emulador no ar")
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

// adapt converte http.Request -> evento de proxy -> resposta HTTP.
func adapt(fn transport.LambdaHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := toProxyRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		response, err := fn(r.Context(), event)
		if err != nil {
			// O Wrap nunca retorna erro; se retornar, é bug do emulador.
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for name, value := range response.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(response.StatusCode)
		if response.Body != "" {
			_, _ = io.WriteString(w, response.Body)
		}
	}
}

func toProxyRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	var body string
	if r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayProxyRequest{}, err
		}
		body = string(raw)
	}

	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}
	headers["Host"] = r.Host

	query := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: query,
		PathParameters:        mux.Vars(r),
		Body:                  body,
	}, nil
}
