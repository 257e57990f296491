package django

import (
	"errors"
	"reflect"
	"testing"

	"github.com/classconf/classconf"
)

func TestFlattenDefaultSettings(t *testing.T) {
	t.Parallel()

	m, err := classconf.Flatten(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m["TIME_ZONE"]; got != "UTC" {
		t.Fatalf("expected TIME_ZONE UTC, got %v", got)
	}
	if got := m["DEBUG"]; got != true {
		t.Fatalf("expected DEBUG true, got %v", got)
	}
	if got := m["USE_I18N"]; got != true {
		t.Fatalf("expected USE_I18N true, got %v", got)
	}
	if got := m["CSRF_COOKIE_NAME"]; got != "csrftoken" {
		t.Fatalf("expected CSRF_COOKIE_NAME csrftoken, got %v", got)
	}

	apps, ok := m["INSTALLED_APPS"].([]string)
	if !ok || len(apps) != 6 {
		t.Fatalf("unexpected INSTALLED_APPS: %#v", m["INSTALLED_APPS"])
	}
}

func TestFlattenOmitsEmptyDefaults(t *testing.T) {
	t.Parallel()

	m, err := classconf.Flatten(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Defaults that resolve to empty values never reach the mapping.
	for _, name := range []string{
		"SECRET_KEY",
		"ALLOWED_HOSTS",
		"ADMINS",
		"MANAGERS",
		"DATABASES",
		"SECURE_HSTS_SECONDS",
		"PREPEND_WWW",
		"SECURE_PROXY_SSL_HEADER",
	} {
		if m.Has(name) {
			t.Errorf("expected %s to be omitted, got %v", name, m[name])
		}
	}
}

func TestFlattenExtraOverridesDeclaredSetting(t *testing.T) {
	t.Parallel()

	s := Default()
	s.AllowedHosts = []string{"example.com"}
	s.Extra = map[string]any{
		"allowed_hosts":  []string{"override.example.com"},
		"custom_setting": 42,
	}

	m, err := classconf.Flatten(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(m["ALLOWED_HOSTS"], []string{"override.example.com"}) {
		t.Fatalf("expected extra to win ALLOWED_HOSTS, got %v", m["ALLOWED_HOSTS"])
	}
	if m["CUSTOM_SETTING"] != 42 {
		t.Fatalf("expected CUSTOM_SETTING 42, got %v", m["CUSTOM_SETTING"])
	}
}

func TestProjectDefaultSettings(t *testing.T) {
	t.Parallel()

	proj, err := classconf.Project(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if proj.Record() != "Settings" {
		t.Fatalf("unexpected record name: %s", proj.Record())
	}

	if _, err := proj.Get("MIDDLEWARE"); err != nil {
		t.Fatalf("expected MIDDLEWARE to resolve: %v", err)
	}

	_, err = proj.Get("NOT_A_FIELD")
	if !errors.Is(err, classconf.ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}

func TestDefaultSettingsAreStructurallyStable(t *testing.T) {
	t.Parallel()

	first, err := classconf.Flatten(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := classconf.Flatten(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two default settings flattened differently")
	}
}
