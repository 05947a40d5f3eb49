package lib

import (
	"strings"
	"testing"
)

func TestReadBatchManifest(t *testing.T) {
	manifest := `
- functions: api, worker
  bucket: code-bucket
  key: api.zip
- functions: cron
  bucket: code-bucket
  key: cron.zip
`
	tasks, err := ReadBatchManifest([]byte(manifest))
	if err != nil {
		t.Fatal(err)
	}
	want := []UpdateTask{
		{FunctionName: "api", Bucket: "code-bucket", Key: "api.zip"},
		{FunctionName: "worker", Bucket: "code-bucket", Key: "api.zip"},
		{FunctionName: "cron", Bucket: "code-bucket", Key: "cron.zip"},
	}
	if len(tasks) != len(want) {
		t.Fatalf("got: %v, want: %v", tasks, want)
	}
	for i := range tasks {
		if tasks[i] != want[i] {
			t.Errorf("got: %v, want: %v", tasks[i], want[i])
		}
	}
}

func TestReadBatchManifestMissingBucket(t *testing.T) {
	manifest := `
- functions: api
  key: api.zip
`
	_, err := ReadBatchManifest([]byte(manifest))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "missing bucket or key") {
		t.Errorf("got: %s, want: missing bucket or key", err)
	}
}

func TestReadBatchManifestNoFunctions(t *testing.T) {
	manifest := `
- functions: " , "
  bucket: code-bucket
  key: api.zip
`
	_, err := ReadBatchManifest([]byte(manifest))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no valid function names found") {
		t.Errorf("got: %s, want: no valid function names found", err)
	}
}

func TestReadBatchManifestEmpty(t *testing.T) {
	_, err := ReadBatchManifest([]byte(""))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no entries found") {
		t.Errorf("got: %s, want: no entries found", err)
	}
}
