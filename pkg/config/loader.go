package config

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
)

// SSMClient define a interface mínima do Parameter Store (permite mocking).
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Load monta a configuração a partir das variáveis de ambiente e, quando
// SSMPrefix está definido e um cliente foi fornecido, aplica overrides do
// Parameter Store por cima. A validação estrutural roda no final: faltar
// bucket ou tabela é erro de configuração, não de request.
func Load(ctx context.Context, client SSMClient) (*Config, error) {
	var cfg Config
	if err := loadEnv(&cfg); err != nil {
		return nil, apperr.Configuration("falha ao carregar variáveis de ambiente", err)
	}

	if cfg.SSMPrefix != "" && client != nil {
		if err := applySSMOverrides(ctx, client, &cfg); err != nil {
			return nil, apperr.Configuration("falha ao aplicar overrides do parameter store", err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, apperr.Configuration("configuração inválida", err)
	}
	return &cfg, nil
}

// applySSMOverrides busca cada parâmetro conhecido sob o prefixo e, quando
// existe, substitui o valor vindo do ambiente. Parâmetro ausente não é erro:
// o ambiente continua valendo.
func applySSMOverrides(ctx context.Context, client SSMClient, cfg *Config) error {
	targets := map[string]*string{
		"bucket":         &cfg.Bucket,
		"events-table":   &cfg.EventsTable,
		"profiles-table": &cfg.ProfilesTable,
		"sessions-table": &cfg.SessionsTable,
		"cdn-host":       &cfg.CDN.DefaultHost,
		"cdn-host-cn":    &cfg.CDN.CNHost,
	}

	prefix := strings.TrimSuffix(cfg.SSMPrefix, "/")
	for name, field := range targets {
		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name: aws.String(prefix + "/" + name),
		})
		if err != nil {
			// ParameterNotFound é esperado; qualquer outro erro interrompe.
			if strings.Contains(err.Error(), "ParameterNotFound") {
				continue
			}
			return fmt.Errorf("ssm get %s: %w", name, err)
		}
		if out.Parameter != nil && out.Parameter.Value != nil && *out.Parameter.Value != "" {
			*field = *out.Parameter.Value
		}
	}
	return nil
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errMsgs []string
		for _, e := range validationErrors {
			errMsgs = append(errMsgs, fmt.Sprintf("campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
		}
		return fmt.Errorf("erros de validação:\n- %s", strings.Join(errMsgs, "\n- "))
	}
	return err
}

// loadEnv preenche a struct com valores de variáveis de ambiente baseado nas
// tags "env" e "envDefault". Suporta apenas os tipos que a Config usa.
func loadEnv(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config deve ser ponteiro para struct, recebido %s", val.Kind())
	}
	return loadStruct(val.Elem())
}

func loadStruct(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		// Structs aninhadas (CDN, Logging, Metrics) são processadas
		// recursivamente.
		if field.Kind() == reflect.Struct {
			if err := loadStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			envValue = fieldType.Tag.Get("envDefault")
		}
		if envValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(envValue)
		case reflect.Bool:
			boolValue, err := strconv.ParseBool(strings.ToLower(envValue))
			if err != nil {
				return fmt.Errorf("campo %s (env %s): %w", fieldType.Name, envTag, err)
			}
			field.SetBool(boolValue)
		case reflect.Int, reflect.Int32, reflect.Int64:
			intValue, err := strconv.ParseInt(envValue, 10, 64)
			if err != nil {
				return fmt.Errorf("campo %s (env %s): %w", fieldType.Name, envTag, err)
			}
			field.SetInt(intValue)
		default:
			return fmt.Errorf("campo %s: tipo %s não suportado", fieldType.Name, field.Kind())
		}
	}

	return nil
}
