package registry

import (
	"testing"

	"github.com/vovakirdan/equata/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b", title: "Stub B"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a", title: "Stub A"} })

	if !Exists("zz_stub_a") {
		t.Error("Exists(zz_stub_a) = false, expected true")
	}
	if Exists("zz_missing") {
		t.Error("Exists(zz_missing) = true, expected false")
	}

	if TitleOf("zz_stub_a") != "Stub A" {
		t.Errorf("TitleOf() = %q, expected %q", TitleOf("zz_stub_a"), "Stub A")
	}
	if TitleOf("zz_missing") != "zz_missing" {
		t.Errorf("TitleOf() of unknown id = %q, expected the id", TitleOf("zz_missing"))
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i].ID < list[i-1].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate id should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
