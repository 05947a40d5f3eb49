package lib

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BatchEntry is one line of an update manifest. Functions takes the same
// comma separated form as the function.names object metadata.
type BatchEntry struct {
	Functions string `yaml:"functions"`
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
}

// ReadBatchManifest parses a yaml manifest into update tasks, expanding each
// entry's comma separated function list.
func ReadBatchManifest(data []byte) ([]UpdateTask, error) {
	var entries []BatchEntry
	err := yaml.Unmarshal(data, &entries)
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	if len(entries) == 0 {
		err := fmt.Errorf("no entries found in manifest")
		Logger.Println("error:", err)
		return nil, err
	}
	var tasks []UpdateTask
	for i, entry := range entries {
		if entry.Bucket == "" || entry.Key == "" {
			err := fmt.Errorf("manifest entry %d missing bucket or key", i)
			Logger.Println("error:", err)
			return nil, err
		}
		names, err := processFunctionNames(entry.Functions)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			tasks = append(tasks, UpdateTask{
				FunctionName: name,
				Bucket:       entry.Bucket,
				Key:          entry.Key,
			})
		}
	}
	return tasks, nil
}
