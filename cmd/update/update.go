package cliupdate

import (
	"context"

	"github.com/alexflint/go-arg"
	"github.com/nathants/lambdupdate/lib"
)

func init() {
	lib.Commands["update"] = update
	lib.Args["update"] = updateArgs{}
}

type updateArgs struct {
	Region string `arg:"-r,--region,required" help:"aws region"`
	Bucket string `arg:"-b,--bucket,required" help:"s3 bucket holding the code zip"`
	Key    string `arg:"-k,--key,required" help:"s3 key of the code zip"`
}

func (updateArgs) Description() string {
	return "\nupdate lambda code from an s3 object, as if its upload notification had just fired\n"
}

func update() {
	var args updateArgs
	arg.MustParse(&args)
	ctx := context.Background()
	err := lib.Update(ctx, lib.NewS3Event(args.Region, args.Bucket, args.Key))
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}
