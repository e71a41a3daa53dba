package audio_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"homingai-bridge/internal/infra/audio"
)

func TestFileSource_ReadsWavInNameOrder(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string][]byte{
		"b.wav":     []byte("second"),
		"a.wav":     []byte("first"),
		"notes.txt": []byte("ignored"),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), content, 0644); err != nil {
			t.Fatalf("writing test file: %v", err)
		}
	}

	source := audio.NewFileSource(tmpDir, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("starting source: %v", err)
	}

	for _, want := range []string{"first", "second"} {
		got, err := source.NextCommand(ctx)
		if err != nil {
			t.Fatalf("NextCommand: %v", err)
		}
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "a.wav.processed")); err != nil {
		t.Errorf("processed file should exist: %v", err)
	}

	short, cancelShort := context.WithTimeout(context.Background(), 700*time.Millisecond)
	defer cancelShort()
	if _, err := source.NextCommand(short); err != context.DeadlineExceeded {
		t.Errorf("drained directory: got %v, want deadline exceeded", err)
	}
}

func TestEncodeWAV_Header(t *testing.T) {
	data := audio.EncodeWAV([]int16{1, -1, 300}, 16000)

	if len(data) != 44+6 {
		t.Fatalf("length: got %d, want 50", len(data))
	}
	if !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Errorf("bad magic: %q", data[:12])
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 16000 {
		t.Errorf("sample rate: got %d", rate)
	}
	if size := binary.LittleEndian.Uint32(data[40:44]); size != 6 {
		t.Errorf("data size: got %d", size)
	}
}
