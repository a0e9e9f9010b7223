// Lambda GET /events/public: feed público de eventos aprovados.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func main() {
	app := bootstrap.MustInit(context.Background())
	lambda.Start(transport.Wrap("public-events", "GET,OPTIONS", app.Metrics, app.Service.PublicEvents))
}
