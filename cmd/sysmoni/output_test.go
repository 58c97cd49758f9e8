package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Dicklesworthstone/sysmoni/internal/logging"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
	"github.com/Dicklesworthstone/sysmoni/internal/sampler"
	"github.com/Dicklesworthstone/sysmoni/internal/sampler/mocks"
)

// newTicking returns a sampler whose single CPU advances 30 user and 70 idle
// ticks per refresh.
func newTicking(t *testing.T) *sampler.Sampler {
	t.Helper()
	src := mocks.NewMockSource(gomock.NewController(t))
	var n uint64
	src.EXPECT().CPUTimes(gomock.Any()).DoAndReturn(func(context.Context) ([]model.CPUTimes, error) {
		n++
		return []model.CPUTimes{{User: 30 * n, Idle: 70 * n}}, nil
	}).AnyTimes()
	src.EXPECT().CPUInfo(gomock.Any()).Return(model.CPUInfo{Brand: "test"}, nil).AnyTimes()
	src.EXPECT().Memory(gomock.Any()).Return(model.RawMemory{MemTotalKB: 100, MemFreeKB: 40}, nil).AnyTimes()
	return sampler.New(src)
}

var cpuAndMemory = sampler.Selection{CPU: true, Memory: true}

func TestOneShot(t *testing.T) {
	var buf bytes.Buffer
	if err := oneShot(context.Background(), newTicking(t), logging.NewNop(), &buf, time.Millisecond, cpuAndMemory); err != nil {
		t.Fatalf("oneShot() error = %v", err)
	}
	var got model.Sample
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON sample: %v\n%s", err, buf.String())
	}
	want := model.CPUUsage{User: 30, Idle: 70}
	if !got.GlobalCPU.Valid || got.GlobalCPU.Usage != want {
		t.Errorf("GlobalCPU = %+v, want valid %+v", got.GlobalCPU, want)
	}
	if got.Memory.UsedKB != 60 {
		t.Errorf("Memory.UsedKB = %d, want 60", got.Memory.UsedKB)
	}
}

func TestOneShot_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := oneShot(ctx, newTicking(t), logging.NewNop(), &buf, time.Hour, cpuAndMemory); err == nil {
		t.Error("oneShot() on cancelled context error = nil")
	}
	if buf.Len() != 0 {
		t.Errorf("oneShot() wrote %q after cancellation", buf.String())
	}
}

func TestOneShot_LogsFailedRefreshes(t *testing.T) {
	src := mocks.NewMockSource(gomock.NewController(t))
	cause := errors.New("vm.stats: permission denied")
	src.EXPECT().Memory(gomock.Any()).Return(model.RawMemory{}, cause).Times(2)

	var logs, out bytes.Buffer
	err := oneShot(context.Background(), sampler.New(src), logging.NewLogger(&logs, "test"),
		&out, time.Millisecond, sampler.Selection{Memory: true})
	if err != nil {
		t.Fatalf("oneShot() error = %v", err)
	}
	for _, want := range []string{"priming refresh incomplete", `"message":"refresh incomplete"`, "permission denied"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
	var got model.Sample
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON sample: %v", err)
	}
}

type lineWriter struct {
	lines  chan string
	buffer bytes.Buffer
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buffer.Write(p)
	sc := bufio.NewScanner(bytes.NewReader(w.buffer.Bytes()))
	w.buffer.Reset()
	for sc.Scan() {
		select {
		case w.lines <- sc.Text():
		default:
		}
	}
	return len(p), nil
}

func TestStream_NDJSON(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &lineWriter{lines: make(chan string, 16)}
	done := make(chan error, 1)
	go func() { done <- stream(ctx, newTicking(t), w, time.Millisecond, cpuAndMemory) }()

	for i := 0; i < 2; i++ {
		select {
		case line := <-w.lines:
			var s model.Sample
			if err := json.Unmarshal([]byte(line), &s); err != nil {
				t.Fatalf("line %d is not a JSON sample: %v", i, err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for NDJSON line")
		}
	}
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("stream() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stream() did not stop after cancel")
	}
}
