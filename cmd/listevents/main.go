// Lambda GET /users/{userId}/events: eventos do próprio usuário.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func main() {
	app := bootstrap.MustInit(context.Background())
	lambda.Start(transport.Wrap("list-events", "GET,OPTIONS", app.Metrics, app.Service.ListEvents))
}
