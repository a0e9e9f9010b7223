// Lambda POST /users/{userId}/events: registra um novo evento vocal.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func main() {
	app := bootstrap.MustInit(context.Background())
	lambda.Start(transport.Wrap("create-event", "POST,OPTIONS", app.Metrics, app.Service.CreateEvent))
}
