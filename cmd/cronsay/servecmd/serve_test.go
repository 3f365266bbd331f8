package servecmd

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/quailyquaily/cronsay/internal/daemonruntime"
	"github.com/spf13/viper"
)

func TestLoadServeConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := NewCommand(Dependencies{})
	cfg := loadServeConfig(cmd)
	if cfg.listen != defaultListen || cfg.historyMax != 1000 || cfg.authToken != "" {
		t.Fatalf("cfg = %#v", cfg)
	}
}

func TestLoadServeConfigFromViperAndFlags(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("serve.listen", "0.0.0.0:8080")
	viper.Set("serve.auth_token", " secret ")
	viper.Set("serve.history_max", 5)

	cmd := NewCommand(Dependencies{})
	if err := cmd.Flags().Set("history-max", "7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg := loadServeConfig(cmd)
	if cfg.listen != "0.0.0.0:8080" || cfg.authToken != "secret" || cfg.historyMax != 7 {
		t.Fatalf("cfg = %#v", cfg)
	}
}

func TestDescribeFuncStoresRecords(t *testing.T) {
	t.Parallel()

	store := daemonruntime.NewMemoryStore(10)
	fn := newDescribeFunc(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ok, err := fn(context.Background(), "0 0 12 * * *")
	if err != nil || ok.Failed() {
		t.Fatalf("describe ok: %#v, %v", ok, err)
	}
	bad, err := fn(context.Background(), "0 0 12 * *")
	if err != nil || !bad.Failed() {
		t.Fatalf("describe bad: %#v, %v", bad, err)
	}
	if store.Len() != 2 {
		t.Fatalf("store len = %d, want 2", store.Len())
	}
	if got, found := store.Get(ok.ID); !found || got.Description != "At 12:00:00." {
		t.Fatalf("stored = %#v, %v", got, found)
	}
}
