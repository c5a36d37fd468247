package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	qgerrors "github.com/quickgraph/quickgraph/pkg/errors"
	"github.com/quickgraph/quickgraph/pkg/graph"
)

func TestSubmitCommand(t *testing.T) {
	isolateConfig(t)
	fv, host := newFakeViewer(t, http.StatusCreated, `{"id":"g42"}`)
	path := writeFile(t, "deps.toml", testDescription)

	stdout, _, err := runCLI(t, "submit", path, "--host", host)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	wantURL := "http://" + host + "/graphs/g42"
	if !strings.Contains(stdout, "Graph created. View it at") || !strings.Contains(stdout, wantURL) {
		t.Errorf("submit output = %q, want view URL %s", stdout, wantURL)
	}

	docs := fv.posted()
	if len(docs) != 1 {
		t.Fatalf("posted %d documents, want 1", len(docs))
	}
	doc := docs[0]
	if doc.Name != "Deps" {
		t.Errorf("Name = %q, want Deps", doc.Name)
	}
	if len(doc.Nodes) != 3 {
		t.Errorf("len(Nodes) = %d, want 3", len(doc.Nodes))
	}
	// app -> lib expands to both lib nodes.
	if len(doc.Edges) != 2 {
		t.Fatalf("len(Edges) = %d, want 2", len(doc.Edges))
	}
	for _, e := range doc.Edges {
		if e.Source != "1" || e.Name != "imports" {
			t.Errorf("unexpected edge %+v", e)
		}
	}
}

func TestSubmitCommandHostFromEnv(t *testing.T) {
	isolateConfig(t)
	fv, host := newFakeViewer(t, http.StatusOK, `{"id":7}`)
	t.Setenv(envHost, host)
	path := writeFile(t, "deps.toml", testDescription)

	stdout, _, err := runCLI(t, "submit", path)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(stdout, "/graphs/7") {
		t.Errorf("submit output = %q, want numeric id in URL", stdout)
	}
	if len(fv.posted()) != 1 {
		t.Error("expected one request to the env host")
	}
}

func TestSubmitCommandNameOverride(t *testing.T) {
	isolateConfig(t)
	fv, host := newFakeViewer(t, http.StatusCreated, `{"id":"x"}`)
	path := writeFile(t, "deps.toml", testDescription)

	if _, _, err := runCLI(t, "submit", path, "--host", host, "--name", "Release"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if docs := fv.posted(); len(docs) != 1 || docs[0].Name != "Release" {
		t.Errorf("posted %+v, want name Release", docs)
	}
}

func TestSubmitCommandDryRun(t *testing.T) {
	isolateConfig(t)
	fv, host := newFakeViewer(t, http.StatusCreated, `{"id":"x"}`)
	path := writeFile(t, "deps.toml", testDescription)

	stdout, _, err := runCLI(t, "submit", path, "--host", host, "--dry-run")
	if err != nil {
		t.Fatalf("submit --dry-run: %v", err)
	}
	if len(fv.posted()) != 0 {
		t.Error("dry run should not contact the viewer")
	}

	var doc graph.Document
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("dry run output is not a document: %v\n%s", err, stdout)
	}
	if doc.Name != "Deps" || len(doc.Edges) != 2 {
		t.Errorf("dry run document = %+v", doc)
	}
}

func TestSubmitCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode qgerrors.Code
	}{
		{"server error", http.StatusInternalServerError, "boom", qgerrors.ErrCodeNetwork},
		{"missing id", http.StatusCreated, `{}`, qgerrors.ErrCodeMissingID},
		{"not json", http.StatusCreated, `<html>`, qgerrors.ErrCodeInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			_, host := newFakeViewer(t, tt.status, tt.body)
			path := writeFile(t, "deps.toml", testDescription)

			_, _, err := runCLI(t, "submit", path, "--host", host)
			if !qgerrors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestSubmitCommandInvalidHost(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, "deps.toml", testDescription)

	_, _, err := runCLI(t, "submit", path, "--host", "http://example.com")
	if !qgerrors.Is(err, qgerrors.ErrCodeInvalidHost) {
		t.Errorf("error = %v, want INVALID_HOST", err)
	}
}

func TestSubmitCommandMissingFile(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCLI(t, "submit", "does-not-exist.toml", "--host", "localhost")
	if !qgerrors.Is(err, qgerrors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadBuilderWarnsOnUnmatchedEdges(t *testing.T) {
	path := writeFile(t, "g.toml", `nodes = ["a"]

[[edges]]
source = "a"
target = "ghost"
`)
	var stderr bytes.Buffer
	c := New(&bytes.Buffer{}, log.InfoLevel)

	b, err := c.loadBuilder(&stderr, path, "")
	if err != nil {
		t.Fatalf("loadBuilder() error: %v", err)
	}
	if !strings.Contains(stderr.String(), "1 edge(s) reference unknown node names") {
		t.Errorf("missing warning, got %q", stderr.String())
	}
	if got := len(b.Finalize().Edges); got != 0 {
		t.Errorf("len(Edges) = %d, want 0", got)
	}
}

func TestUnmatchedEdges(t *testing.T) {
	b := graph.NewBuilder()
	b.AddNode("a")
	b.AddNode("b")
	b.AddEdge("a", "b", "")
	b.AddEdge("a", "c", "")
	b.AddEdge("z", "b", "")

	if got := unmatchedEdges(b); got != 2 {
		t.Errorf("unmatchedEdges() = %d, want 2", got)
	}
}

func TestRunSubmitCancelled(t *testing.T) {
	isolateConfig(t)
	_, host := newFakeViewer(t, http.StatusCreated, `{"id":"x"}`)
	path := writeFile(t, "deps.toml", testDescription)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	var stdout, stderr bytes.Buffer
	err := c.runSubmit(ctx, &stdout, &stderr, path, submitOpts{host: host})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if strings.Contains(stdout.String(), "Graph created") {
		t.Error("cancelled submit should not report success")
	}
	if !strings.Contains(logs.String(), "Submission cancelled") {
		t.Errorf("missing cancellation warning in logs: %q", logs.String())
	}
}

func TestRunSubmitFailureNotCancelled(t *testing.T) {
	isolateConfig(t)
	_, host := newFakeViewer(t, http.StatusInternalServerError, "down")
	path := writeFile(t, "deps.toml", testDescription)

	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	var stdout, stderr bytes.Buffer
	err := c.runSubmit(context.Background(), &stdout, &stderr, path, submitOpts{host: host})
	if !qgerrors.Is(err, qgerrors.ErrCodeNetwork) {
		t.Fatalf("error = %v, want NETWORK_ERROR", err)
	}
	if strings.Contains(logs.String(), "cancelled") {
		t.Errorf("server failure logged as cancellation: %q", logs.String())
	}
}
