package colortransfer

import (
	"log/slog"
	"testing"

	"github.com/gogpu/colortransfer/internal/parallel"
)

func TestDefaultOptions(t *testing.T) {
	o := newOptions(nil)
	if o.workers != 0 || o.logger != nil || o.linearLight {
		t.Errorf("defaultOptions() = %+v, want zero value", o)
	}
}

func TestWithWorkers(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{8, 8},
	}

	for _, tt := range tests {
		o := newOptions([]Option{WithWorkers(tt.n)})
		if o.workers != tt.want {
			t.Errorf("WithWorkers(%d): workers = %d, want %d", tt.n, o.workers, tt.want)
		}
	}
}

func TestOptionsPool(t *testing.T) {
	t.Run("shared", func(t *testing.T) {
		o := newOptions(nil)
		p, release := o.pool()
		defer release()
		if p != parallel.Default() {
			t.Error("workers=0 should use the shared pool")
		}
		release()
		if !p.IsRunning() {
			t.Error("releasing the shared pool must not close it")
		}
	})

	t.Run("inline", func(t *testing.T) {
		o := newOptions([]Option{WithWorkers(1)})
		p, release := o.pool()
		defer release()
		if p != nil {
			t.Error("workers=1 should run without a pool")
		}
	})

	t.Run("dedicated", func(t *testing.T) {
		o := newOptions([]Option{WithWorkers(3)})
		p, release := o.pool()
		if p == nil || p == parallel.Default() {
			t.Fatal("workers=3 should create a dedicated pool")
		}
		if p.Workers() != 3 {
			t.Errorf("Workers() = %d, want 3", p.Workers())
		}
		release()
		if p.IsRunning() {
			t.Error("dedicated pool still running after release")
		}
	})
}

func TestOptionsLog(t *testing.T) {
	o := newOptions(nil)
	if o.log() != Logger() {
		t.Error("log() should fall back to the package logger")
	}

	l := slog.New(slog.DiscardHandler)
	o = newOptions([]Option{WithLogger(l)})
	if o.log() != l {
		t.Error("log() should return the WithLogger logger")
	}
}

func TestOptionsLastWins(t *testing.T) {
	o := newOptions([]Option{
		WithLinearLight(true),
		WithWorkers(4),
		WithLinearLight(false),
		WithWorkers(2),
	})
	if o.linearLight {
		t.Error("linearLight = true, want false")
	}
	if o.workers != 2 {
		t.Errorf("workers = %d, want 2", o.workers)
	}
}
