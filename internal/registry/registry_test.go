package registry

import (
	"context"
	"errors"
	"testing"
)

type stubFrontend struct {
	name string
	runs int
}

func (s *stubFrontend) Name() string  { return s.name }
func (s *stubFrontend) Title() string { return "stub " + s.name }
func (s *stubFrontend) Run(_ context.Context, _ Options) error {
	s.runs++
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Frontend { return &stubFrontend{name: "test-b"} })
	Register("test-a", func() Frontend { return &stubFrontend{name: "test-a"} })

	if !Exists("test-a") || !Exists("test-b") {
		t.Fatal("registered frontends should exist")
	}

	var names []string
	for _, info := range List() {
		names = append(names, info.Name)
		if info.Title != "stub "+info.Name {
			t.Errorf("title of %q = %q", info.Name, info.Title)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}

	f, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.Name() != "test-a" {
		t.Errorf("Create() returned %q", f.Name())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-frontend")
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Create() error = %v, expected ErrUnknownFrontend", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Frontend { return &stubFrontend{name: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Frontend { return &stubFrontend{name: "test-dup"} })
}
