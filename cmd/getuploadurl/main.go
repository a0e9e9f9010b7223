// Lambda POST /files/upload-url: URL pré-assinada de PUT para upload.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/vfs-tracker-services/bootstrap"
	"github.com/raywall/vfs-tracker-services/pkg/transport"
)

func main() {
	app := bootstrap.MustInit(context.Background())
	lambda.Start(transport.Wrap("get-upload-url", "POST,OPTIONS", app.Metrics, app.Service.GetUploadURL))
}
