package cliupdate

import (
	"context"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/nathants/lambdupdate/lib"
)

func init() {
	lib.Commands["update-batch"] = updateBatch
	lib.Args["update-batch"] = updateBatchArgs{}
}

type updateBatchArgs struct {
	Region         string `arg:"-r,--region,required" help:"aws region"`
	Manifest       string `arg:"positional,required" help:"path to a yaml manifest of functions/bucket/key entries"`
	MaxConcurrency int    `arg:"-c,--max-concurrency" default:"0" help:"cap on in-flight update calls, 0 for unbounded"`
}

func (updateBatchArgs) Description() string {
	return "\nupdate lambda code for every entry in a yaml manifest\n"
}

func updateBatch() {
	var args updateBatchArgs
	arg.MustParse(&args)
	ctx := context.Background()
	data, err := os.ReadFile(args.Manifest)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	tasks, err := lib.ReadBatchManifest(data)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	client, err := lib.LambdaClientRegion(ctx, args.Region)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	err = lib.UpdateTasks(ctx, client, tasks, args.MaxConcurrency)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}
