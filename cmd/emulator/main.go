// Emulador local: serve todos os handlers do VFS Tracker em uma porta
// HTTP, com o mesmo comportamento de borda da produção.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/emulator"
)

func main() {
	ctx := context.Background()
	app := bootstrap.MustInit(ctx)

	path := os.Getenv("VFS_EMULATOR_CONFIG")
	if path == "" {
		path = "emulator.yaml"
	}

	cfg, err := emulator.LoadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar rotas do emulador")
	}

	srv, err := emulator.New(cfg, app.Service, app.Metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao montar o emulador")
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("emulador encerrado com erro")
	}
}
