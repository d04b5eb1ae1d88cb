package api

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
	"github.com/sirxnine/cartas/testutil"
)

type mockConfigSubscriber struct {
	name    string
	configs chan *model.AppConfig
	order   *[]string
}

func (m *mockConfigSubscriber) OnConfigChange(cfg *model.AppConfig) {
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
	m.configs <- cfg
}

func newMockConfigSubscriber(name string, order *[]string) *mockConfigSubscriber {
	return &mockConfigSubscriber{name: name, configs: make(chan *model.AppConfig, 10), order: order}
}

func TestNewConfigWatcher_RequiresPath(t *testing.T) {
	if _, err := NewConfigWatcher("", nil); err == nil {
		t.Error("Expected error for empty config path")
	}
}

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	configPath := testutil.TempConfigDir(t, `title = "Antes"`)
	configStore := store.NewConfigStore(testutil.NewTestPaths(configPath))

	cw, err := NewConfigWatcher(configPath, configStore.Load)
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}
	sub := newMockConfigSubscriber("sub", nil)
	cw.Subscribe(sub)

	if err := cw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer cw.Stop()

	if err := os.WriteFile(configPath, []byte(`title = "Después"`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case cfg := <-sub.configs:
		if cfg.Title != "Después" {
			t.Errorf("Title = %q, want %q", cfg.Title, "Después")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for config reload")
	}
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	configPath := testutil.TempConfigDir(t, "")
	cw, err := NewConfigWatcher(configPath, func() (*model.AppConfig, error) {
		return &model.AppConfig{}, nil
	})
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}

	cw.handleEvent(fsnotify.Event{Name: filepath.Join(filepath.Dir(configPath), "notes.txt"), Op: fsnotify.Write})
	cw.handleEvent(fsnotify.Event{Name: configPath, Op: fsnotify.Chmod})

	cw.timerMu.Lock()
	pending := cw.timer != nil
	cw.timerMu.Unlock()
	if pending {
		t.Error("Unrelated events should not schedule a reload")
	}
	_ = cw.Stop()
}

func TestConfigWatcher_SubscribersRunInOrder(t *testing.T) {
	configPath := testutil.TempConfigDir(t, "")
	cw, err := NewConfigWatcher(configPath, func() (*model.AppConfig, error) {
		return &model.AppConfig{Title: "x"}, nil
	})
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}
	defer cw.Stop()

	var order []string
	first := newMockConfigSubscriber("first", &order)
	second := newMockConfigSubscriber("second", &order)
	cw.Subscribe(first)
	cw.Subscribe(second)

	cw.reload()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Order = %v, want [first second]", order)
	}
}

func TestConfigWatcher_LoadErrorKeepsSettings(t *testing.T) {
	configPath := testutil.TempConfigDir(t, "")
	cw, err := NewConfigWatcher(configPath, func() (*model.AppConfig, error) {
		return nil, errors.New("bad toml")
	})
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}
	defer cw.Stop()

	sub := newMockConfigSubscriber("sub", nil)
	cw.Subscribe(sub)
	cw.reload()

	select {
	case <-sub.configs:
		t.Error("Subscriber should not run when loading fails")
	default:
	}
}

func TestConfigWatcher_NoReloadAfterStop(t *testing.T) {
	configPath := testutil.TempConfigDir(t, "")
	cw, err := NewConfigWatcher(configPath, func() (*model.AppConfig, error) {
		return &model.AppConfig{}, nil
	})
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}
	sub := newMockConfigSubscriber("sub", nil)
	cw.Subscribe(sub)

	_ = cw.Stop()
	cw.reload()

	select {
	case <-sub.configs:
		t.Error("Stopped watcher should not notify")
	default:
	}
	if err := cw.Start(); err == nil {
		t.Error("Expected error restarting a stopped watcher")
	}
}

func TestAppContext_OnConfigChange(t *testing.T) {
	configPath := testutil.TempConfigDir(t, "")
	paths := testutil.NewTestPaths(configPath)
	app, err := NewAppContext(paths, store.NewConfigStore(paths), &model.AppConfig{})
	if err != nil {
		t.Fatalf("NewAppContext failed: %v", err)
	}

	app.OnConfigChange(&model.AppConfig{Title: "Renombrado", FallbackImage: "https://example.com/x.png"})

	if got := app.DeckService.Deck().Title; got != "Renombrado" {
		t.Errorf("Title = %q, want %q", got, "Renombrado")
	}
	if got := app.CardService.FallbackImage(); got != "https://example.com/x.png" {
		t.Errorf("FallbackImage = %q", got)
	}
}
