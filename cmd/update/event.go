package cliupdate

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/aws/aws-lambda-go/events"
	"github.com/nathants/lambdupdate/lib"
)

func init() {
	lib.Commands["update-event"] = updateEvent
	lib.Args["update-event"] = updateEventArgs{}
}

type updateEventArgs struct {
	Path string `arg:"positional" default:"-" help:"path to an s3 event json document, - for stdin"`
}

func (updateEventArgs) Description() string {
	return "\nupdate lambda code from a raw s3 notification event json document\n"
}

func updateEvent() {
	var args updateEventArgs
	arg.MustParse(&args)
	ctx := context.Background()
	var data []byte
	var err error
	if args.Path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args.Path)
	}
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	var event events.S3Event
	err = json.Unmarshal(data, &event)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	err = lib.Update(ctx, event)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}
