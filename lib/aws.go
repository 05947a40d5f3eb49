package lib

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

var sessLock sync.Mutex
var sessRegional = map[string]*aws.Config{}

// SessionRegion loads aws config for a region once and caches it. One event
// carries exactly one region, so a pipeline run touches a single entry.
func SessionRegion(ctx context.Context, region string) (*aws.Config, error) {
	sessLock.Lock()
	defer sessLock.Unlock()
	sess, ok := sessRegional[region]
	if !ok {
		cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
		if err != nil {
			Logger.Println("error:", err)
			return nil, err
		}
		sess = &cfg
		sessRegional[region] = sess
	}
	return sess, nil
}

func sessionClear() {
	sessLock.Lock()
	defer sessLock.Unlock()
	sessRegional = map[string]*aws.Config{}
}
