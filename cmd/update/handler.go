package cliupdate

import (
	"context"

	"github.com/alexflint/go-arg"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/nathants/lambdupdate/lib"
)

func init() {
	lib.Commands["lambda-handler"] = handler
	lib.Args["lambda-handler"] = handlerArgs{}
}

type handlerArgs struct {
}

func (handlerArgs) Description() string {
	return "\nrun the s3 notification handler under the lambda runtime, for container image deployments\n"
}

func handleRequest(ctx context.Context, event events.S3Event) error {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		lib.Logger.Println("request:", lc.AwsRequestID)
	}
	return lib.Update(ctx, event)
}

func handler() {
	var args handlerArgs
	arg.MustParse(&args)
	lambda.Start(handleRequest)
}
