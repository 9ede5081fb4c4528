package persistence

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCredentialFileStore(t *testing.T) {
	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewCredentialFileStore(filepath.Join(t.TempDir(), "wifi.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != (Credentials{}) {
			t.Errorf("Load() = %+v, want empty credentials", got)
		}
		if got.IsConfigured() {
			t.Error("IsConfigured() = true for empty credentials")
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewCredentialFileStore(filepath.Join(t.TempDir(), "nested", "wifi.json"))

		want := Credentials{SSID: "home", Password: "hunter22", Hostname: "sandbot-lab"}
		if err := store.Save(want); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != want {
			t.Errorf("Load() = %+v, want %+v", got, want)
		}
	})

	t.Run("DocumentKeys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wifi.json")
		store := NewCredentialFileStore(path)

		if err := store.Save(Credentials{SSID: "home", Password: "pw", Hostname: "bot"}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		var doc map[string]string
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("document is not JSON: %v", err)
		}
		for key, want := range map[string]string{"WiFiSSID": "home", "WiFiPW": "pw", "WiFiHostname": "bot"} {
			if doc[key] != want {
				t.Errorf("doc[%q] = %q, want %q", key, doc[key], want)
			}
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		dir := t.TempDir()
		store := NewCredentialFileStore(filepath.Join(dir, "wifi.json"))

		_ = store.Save(Credentials{SSID: "old"})
		if err := store.Save(Credentials{SSID: "new"}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, _ := store.Load()
		if got.SSID != "new" {
			t.Errorf("SSID = %q, want %q", got.SSID, "new")
		}

		// No temp files left behind
		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
	})

	t.Run("CorruptDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wifi.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := NewCredentialFileStore(path).Load()
		if !errors.Is(err, ErrCorruptDocument) {
			t.Errorf("Load() error = %v, want ErrCorruptDocument", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wifi.json")
		store := NewCredentialFileStore(path)
		_ = store.Save(Credentials{SSID: "home"})

		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file still exists after Clear()")
		}
		// Clearing twice is fine
		if err := store.Clear(); err != nil {
			t.Errorf("second Clear() error = %v", err)
		}
	})
}

func TestMemoryCredentialStore(t *testing.T) {
	store := NewMemoryCredentialStore(Credentials{SSID: "seed"})

	got, _ := store.Load()
	if got.SSID != "seed" {
		t.Errorf("SSID = %q, want %q", got.SSID, "seed")
	}

	_ = store.Save(Credentials{SSID: "next"})
	got, _ = store.Load()
	if got.SSID != "next" {
		t.Errorf("SSID = %q, want %q", got.SSID, "next")
	}
	if store.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", store.Saves())
	}
}
