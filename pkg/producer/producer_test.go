package producer

import (
	"context"
	"testing"

	"github.com/NVIDIA/census/pkg/record"
)

func TestFuncAdapter(t *testing.T) {
	p := Func(func(ctx context.Context, host string) ([]*record.Record, error) {
		return []*record.Record{record.New().SetString("Host", host)}, nil
	})

	recs, err := p.Produce(context.Background(), "h1")
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if v, _ := recs[0].Get("Host"); v.String() != "h1" {
		t.Errorf("Host = %q", v.String())
	}
}

func TestSystemProduce(t *testing.T) {
	recs, err := System{}.Produce(context.Background(), "local")
	if err != nil {
		t.Skipf("host facts unavailable in this environment: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}

	r := recs[0]
	for _, name := range []string{"Hostname", "OS", "CPUCores", "MemoryTotalBytes", "BootTime"} {
		if !r.Has(name) {
			t.Errorf("record missing field %q", name)
		}
	}
	if v, _ := r.Get("CPUCores"); v.Kind() != record.KindInt {
		t.Errorf("CPUCores kind = %s", v.Kind())
	}
}

func TestInterfacesProduce(t *testing.T) {
	recs, err := Interfaces{}.Produce(context.Background(), "local")
	if err != nil {
		t.Skipf("interface facts unavailable in this environment: %v", err)
	}

	for _, r := range recs {
		for _, name := range []string{"Name", "MTU", "Up"} {
			if !r.Has(name) {
				t.Errorf("record missing field %q", name)
			}
		}
		if v, ok := r.Get("Up"); ok && v.Kind() != record.KindBool {
			t.Errorf("Up kind = %s", v.Kind())
		}
	}
}
