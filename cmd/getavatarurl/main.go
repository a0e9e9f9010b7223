// Lambda GET /avatars/{userId}: URL pré-assinada do avatar público.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func main() {
	app := bootstrap.MustInit(context.Background())
	lambda.Start(transport.Wrap("get-avatar-url", "GET,OPTIONS", app.Metrics, app.Service.GetAvatarURL))
}
