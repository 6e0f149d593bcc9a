package rasterfx

import "testing"

func TestDefaultConvolveOptions(t *testing.T) {
	o := defaultConvolveOptions()
	if o.extend {
		t.Error("default extend = true, want false")
	}
	if o.border != BorderLegacy {
		t.Errorf("default border = %v, want legacy", o.border)
	}
	if o.workers != 0 || o.pool != nil {
		t.Error("default options should run sequentially")
	}
}

func TestConvolveOptionsApply(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	o := defaultConvolveOptions()
	for _, opt := range []ConvolveOption{
		WithExtendEdges(true),
		WithBorderPolicy(BorderSymmetric),
		WithWorkers(3),
		WithPool(pool),
	} {
		opt(&o)
	}

	if !o.extend || o.border != BorderSymmetric || o.workers != 3 || o.pool != pool {
		t.Errorf("options = %+v", o)
	}
}

func TestResolvePool(t *testing.T) {
	tests := []struct {
		name         string
		workers      int
		wantParallel bool
	}{
		{"sequential default", 0, false},
		{"single worker", 1, false},
		{"per-call pool", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultConvolveOptions()
			WithWorkers(tt.workers)(&o)

			p, release := o.resolvePool()
			defer release()
			if (p != nil) != tt.wantParallel {
				t.Errorf("resolvePool() parallel = %v, want %v", p != nil, tt.wantParallel)
			}
			if p != nil && p.Workers() != tt.workers {
				t.Errorf("Workers() = %d, want %d", p.Workers(), tt.workers)
			}
		})
	}
}

func TestResolvePoolPrefersCallerPool(t *testing.T) {
	pool := NewWorkerPool(2)

	o := defaultConvolveOptions()
	WithWorkers(8)(&o)
	WithPool(pool)(&o)

	p, release := o.resolvePool()
	release()
	if p != pool.pool {
		t.Error("resolvePool() did not use the caller's pool")
	}
	if !pool.pool.IsRunning() {
		t.Error("release closed the caller's pool")
	}

	pool.Close()
	if p, _ := o.resolvePool(); p != nil {
		t.Error("resolvePool() returned a closed pool")
	}
}

func TestBorderPolicyString(t *testing.T) {
	if BorderLegacy.String() != "legacy" || BorderSymmetric.String() != "symmetric" {
		t.Errorf("policy names = %q, %q", BorderLegacy, BorderSymmetric)
	}
}
