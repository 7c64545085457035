package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestAttrConstructors(t *testing.T) {
	tests := []struct {
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{Operation("tasks.update"), KeyOperation, "tasks.update"},
		{Service("tasks"), KeyService, "tasks"},
		{Workspace("work"), KeyWorkspace, "work"},
		{Project("proj_1"), KeyProject, "proj_1"},
		{Task("task_1"), KeyTask, "task_1"},
		{Tool("task_update"), KeyTool, "task_update"},
		{Status(StatusSuccess), KeyStatus, "success"},
	}

	for _, tt := range tests {
		if tt.attr.Key != tt.wantKey {
			t.Errorf("expected key %q, got %q", tt.wantKey, tt.attr.Key)
		}
		if tt.attr.Value.String() != tt.wantVal {
			t.Errorf("expected value %q, got %q", tt.wantVal, tt.attr.Value.String())
		}
	}
}

func TestErrWithNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("operation completed", Err(nil))
	if strings.Contains(buf.String(), "error") {
		t.Errorf("nil error should not produce an error attribute, got: %s", buf.String())
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithOperation(logger, "columns.list").Info("listing")
	if !strings.Contains(buf.String(), "operation=columns.list") {
		t.Errorf("expected operation attribute, got: %s", buf.String())
	}

	buf.Reset()
	WithWorkspace(logger, "personal").Warn("warning")
	if !strings.Contains(buf.String(), "workspace=personal") {
		t.Errorf("expected workspace attribute, got: %s", buf.String())
	}
}

func TestSanitizeToken(t *testing.T) {
	if got := SanitizeToken(""); got != "<empty>" {
		t.Errorf("expected <empty>, got %s", got)
	}
	got := SanitizeToken("secret-token-value")
	if strings.Contains(got, "secret") {
		t.Errorf("sanitized token leaked content: %s", got)
	}
	if !strings.Contains(got, "18") {
		t.Errorf("expected length indicator in %s", got)
	}
}
