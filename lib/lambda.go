package lib

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

var lambdaClientLock sync.Mutex
var lambdaClientsRegional = map[string]*lambda.Client{}

// LambdaUpdateCodeAPI is the slice of the lambda client the pipeline needs,
// so tests can substitute fakes.
type LambdaUpdateCodeAPI interface {
	UpdateFunctionCode(ctx context.Context, input *lambda.UpdateFunctionCodeInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error)
}

func LambdaClientRegion(ctx context.Context, region string) (*lambda.Client, error) {
	lambdaClientLock.Lock()
	defer lambdaClientLock.Unlock()
	client, ok := lambdaClientsRegional[region]
	if !ok {
		sess, err := SessionRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		client = lambda.NewFromConfig(*sess)
		lambdaClientsRegional[region] = client
	}
	return client, nil
}

// lambdaUpdateCode points one function at the code zip just uploaded.
// UpdateFunctionCode is idempotent downstream, repeated calls with the same
// source are harmless.
func lambdaUpdateCode(ctx context.Context, client LambdaUpdateCodeAPI, task UpdateTask) error {
	_, err := client.UpdateFunctionCode(ctx, &lambda.UpdateFunctionCodeInput{
		FunctionName: aws.String(task.FunctionName),
		S3Bucket:     aws.String(task.Bucket),
		S3Key:        aws.String(task.Key),
	})
	if err != nil {
		Logger.Println("error: update function code:", task.FunctionName, "<-", task.Bucket+":"+task.Key, err)
		return err
	}
	Logger.Println("update function code:", task.FunctionName, "<-", task.Bucket+":"+task.Key)
	return nil
}
