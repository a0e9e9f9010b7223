// Lambda PUT /users/{userId}/profile: atualiza o perfil do usuário.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func main() {
	app := bootstrap.MustInit(context.Background())
	lambda.Start(transport.Wrap("update-profile", "PUT,OPTIONS", app.Metrics, app.Service.UpdateProfile))
}
