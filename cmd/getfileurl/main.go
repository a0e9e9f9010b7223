// Lambda GET /files/url: URL pré-assinada de leitura de um arquivo.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func main() {
	app := bootstrap.MustInit(context.Background())
	lambda.Start(transport.Wrap("get-file-url", "GET,POST,OPTIONS", app.Metrics, app.Service.GetFileURL))
}
