package lib

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"golang.org/x/sync/semaphore"
)

// UpdateTask is one concrete unit of dispatched work: point FunctionName at
// the code zip sitting at Bucket:Key.
type UpdateTask struct {
	FunctionName string
	Bucket       string
	Key          string
}

// EventRegion returns the single region shared by all records. Mixed region
// batches are never partially processed, zero or multiple distinct regions
// reject the whole event.
func EventRegion(records []events.S3EventRecord) (string, error) {
	var regions []string
	for _, record := range records {
		if record.AWSRegion != "" && !Contains(regions, record.AWSRegion) {
			regions = append(regions, record.AWSRegion)
		}
	}
	if len(regions) != 1 {
		err := fmt.Errorf("invalid region count: [%s]", strings.Join(regions, ", "))
		Logger.Println("error:", err)
		return "", err
	}
	return regions[0], nil
}

// functionNames picks the resolved names string for one object: the raw
// function.names metadata when present, otherwise the object key with its
// required .zip suffix stripped.
func functionNames(fromMetadata *string, key string) (string, error) {
	if fromMetadata != nil {
		Logger.Println("function names from object metadata:", *fromMetadata)
		return *fromMetadata, nil
	}
	name, ok := strings.CutSuffix(key, ".zip")
	if !ok {
		err := fmt.Errorf("'.zip' not found in object key: %s", key)
		Logger.Println("error:", err)
		return "", err
	}
	Logger.Println("function name from object key:", name)
	return name, nil
}

// processFunctionNames splits a comma separated names string, trimming
// whitespace and dropping empty pieces while preserving order.
func processFunctionNames(names string) ([]string, error) {
	var processed []string
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			processed = append(processed, name)
		}
	}
	if len(processed) == 0 {
		err := fmt.Errorf("no valid function names found in: '%s' - check for empty or whitespace-only names", names)
		Logger.Println("error:", err)
		return nil, err
	}
	return processed, nil
}

// UpdateTasks dispatches every task concurrently and waits for all of them
// regardless of individual failures, so every attempted update is visible in
// the logs. The returned error is the first failure encountered while
// draining. maxConcurrency caps in-flight calls when positive; the
// notification pipeline passes 0 and fans out eagerly.
func UpdateTasks(ctx context.Context, client LambdaUpdateCodeAPI, tasks []UpdateTask, maxConcurrency int) error {
	var concurrency *semaphore.Weighted
	if maxConcurrency > 0 {
		concurrency = semaphore.NewWeighted(int64(maxConcurrency))
	}
	errs := make(chan error, len(tasks))
	for _, task := range tasks {
		go func() {
			if concurrency != nil {
				if err := concurrency.Acquire(ctx, 1); err != nil {
					errs <- err
					return
				}
				defer concurrency.Release(1)
			}
			errs <- lambdaUpdateCode(ctx, client, task)
		}()
	}
	var err error
	for range tasks {
		e := <-errs
		if e != nil && err == nil {
			err = e
		}
	}
	return err
}

// update is the pipeline with its aws seams injected. Every stage before
// dispatch is all-or-nothing: a record that cannot be resolved aborts the run
// before any function is touched.
func update(ctx context.Context, s3Client S3HeadObjectAPI, lambdaClient LambdaUpdateCodeAPI, records []events.S3EventRecord) error {
	var tasks []UpdateTask
	for _, record := range records {
		bucket := record.S3.Bucket.Name
		key := record.S3.Object.Key
		if bucket == "" {
			err := fmt.Errorf("bucket not found in record with key: %s", key)
			Logger.Println("error:", err)
			return err
		}
		if key == "" {
			err := fmt.Errorf("key not found in record with bucket: %s", bucket)
			Logger.Println("error:", err)
			return err
		}
		names, err := functionNames(s3FunctionNamesMetadata(ctx, s3Client, bucket, key), key)
		if err != nil {
			return err
		}
		processed, err := processFunctionNames(names)
		if err != nil {
			return err
		}
		for _, name := range processed {
			tasks = append(tasks, UpdateTask{
				FunctionName: name,
				Bucket:       bucket,
				Key:          key,
			})
		}
	}
	Logger.Println(len(tasks), "function(s) to update")
	return UpdateTasks(ctx, lambdaClient, tasks, 0)
}

// Update processes one s3 notification event: validate the region, build the
// regional clients once, resolve names per record, then fan out one
// UpdateFunctionCode call per resolved name.
func Update(ctx context.Context, event events.S3Event) error {
	region, err := EventRegion(event.Records)
	if err != nil {
		return err
	}
	s3Client, err := S3ClientRegion(ctx, region)
	if err != nil {
		return err
	}
	lambdaClient, err := LambdaClientRegion(ctx, region)
	if err != nil {
		return err
	}
	return update(ctx, s3Client, lambdaClient, event.Records)
}

// NewS3Event synthesizes a one record event, used by the cli to trigger the
// same pipeline the notification handler runs.
func NewS3Event(region, bucket, key string) events.S3Event {
	return events.S3Event{
		Records: []events.S3EventRecord{
			{
				AWSRegion:   region,
				EventSource: "aws:s3",
				EventName:   "ObjectCreated:Put",
				S3: events.S3Entity{
					Bucket: events.S3Bucket{
						Name: bucket,
					},
					Object: events.S3Object{
						Key: key,
					},
				},
			},
		},
	}
}
