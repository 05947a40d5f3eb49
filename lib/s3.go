package lib

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"
)

// s3 object metadata key holding a comma separated list of lambda names to
// update when the object lands in the code bucket.
const functionNamesMetadataKey = "function.names"

var s3ClientLock sync.Mutex
var s3ClientsRegional = map[string]*s3.Client{}

// S3HeadObjectAPI is the slice of the s3 client the pipeline needs, so tests
// can substitute fakes.
type S3HeadObjectAPI interface {
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

func S3ClientRegion(ctx context.Context, region string) (*s3.Client, error) {
	s3ClientLock.Lock()
	defer s3ClientLock.Unlock()
	client, ok := s3ClientsRegional[region]
	if !ok {
		sess, err := SessionRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		client = s3.NewFromConfig(*sess)
		s3ClientsRegional[region] = client
	}
	return client, nil
}

// s3FunctionNamesMetadata heads bucket:key and returns the raw value of the
// function.names metadata, or nil when the object has no such metadata. Head
// failures are common for untagged objects and collapse to nil as well, they
// never abort the pipeline.
func s3FunctionNamesMetadata(ctx context.Context, client S3HeadObjectAPI, bucket, key string) *string {
	out, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		Logger.Println("head object failed, falling back to object key:", bucket+":"+key, err)
		return nil
	}
	if out.ContentLength != nil {
		Logger.Println("head object:", bucket+":"+key, humanize.Bytes(uint64(*out.ContentLength)))
	} else {
		Logger.Println("head object:", bucket+":"+key)
	}
	names, ok := out.Metadata[functionNamesMetadataKey]
	if !ok {
		return nil
	}
	return &names
}
