package logger

import (
	"bytes"
	"os"
	"testing"
)

func TestDefaultSink_WritesThroughPackageLogger(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	sink := Default()
	sink.Debug("loaded %d files", 3)
	sink.Info("corpus %s ready", "demo")
	sink.Warn("skipping %s", "entry")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output from default sink")
	}
	for _, want := range []string{
		"[DEBUG] loaded 3 files\n",
		"[INFO] corpus demo ready\n",
		"[WARN] skipping entry\n",
	} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("output missing %q, got %q", want, output)
		}
	}
}

func TestNopSink_ProducesNoOutput(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	sink := Nop()
	sink.Debug("dropped")
	sink.Info("dropped")
	sink.Warn("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
