package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controla a saída do logger global.
type Options struct {
	// Level aceita os níveis do zerolog ("debug", "info", ...). Vazio = info.
	Level string
	// Format "console" habilita saída legível para rodar local; qualquer
	// outro valor mantém JSON (produção/CloudWatch).
	Format string
	// Disabled descarta toda a saída (útil em testes).
	Disabled bool
}

// Configure inicializa o logger global do serviço.
func Configure(opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if opts.Disabled {
		output = io.Discard
	} else if opts.Format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	return logger
}
