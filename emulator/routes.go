package emulator

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
)

// RouteConfig liga um path HTTP local a um handler registrado.
type RouteConfig struct {
	Path    string `yaml:"path"`
	Method  string `yaml:"method"`
	Handler string `yaml:"handler"`
}

// ServerConfig é o arquivo de rotas do emulador (emulator.yaml).
type ServerConfig struct {
	Addr   string        `yaml:"addr"`
	Routes []RouteConfig `yaml:"routes"`
}

// DefaultConfig replica o roteamento do API Gateway de produção, para o
// emulador subir sem arquivo nenhum.
func DefaultConfig() ServerConfig {
	return ServerConfig{
		Addr: ":8080",
		Routes: []RouteConfig{
			{Path: "/files/url", Method: "GET", Handler: "get-file-url"},
			{Path: "/files/url", Method: "POST", Handler: "get-file-url"},
			{Path: "/files/upload-url", Method: "POST", Handler: "get-upload-url"},
			{Path: "/avatars/{userId}", Method: "GET", Handler: "get-avatar-url"},
			{Path: "/users/{userId}/events", Method: "GET", Handler: "list-events"},
			{Path: "/users/{userId}/events", Method: "POST", Handler: "create-event"},
			{Path: "/users/{userId}/profile", Method: "PUT", Handler: "update-profile"},
			{Path: "/events/public", Method: "GET", Handler: "public-events"},
		},
	}
}

// LoadConfig carrega o arquivo de rotas. Arquivo ausente cai no default;
// arquivo inválido é erro de configuração.
func LoadConfig(path string) (ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return ServerConfig{}, apperr.Configuration("falha ao ler arquivo de rotas", err)
	}

	cfg := DefaultConfig()
	cfg.Routes = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ServerConfig{}, apperr.Configuration("falha ao parsear arquivo de rotas", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if len(cfg.Routes) == 0 {
		cfg.Routes = DefaultConfig().Routes
	}
	return cfg, nil
}
