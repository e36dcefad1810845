package schema

import "testing"

func TestBuilder_Defaults(t *testing.T) {
	s := NewSchema().Build()

	if len(s.Fields) != 0 {
		t.Errorf("expected no fields, got %d", len(s.Fields))
	}
	if s.Propagate {
		t.Error("expected contained overlay by default")
	}
	if s.EagerValidate {
		t.Error("expected lazy validation by default")
	}
	if s.DotEnvPath != "" {
		t.Errorf("expected no dotenv path, got %q", s.DotEnvPath)
	}
}

func TestBuilder_FieldsKeepDeclarationOrder(t *testing.T) {
	s := NewSchema().
		WithField("FIRST", nil).
		WithFieldDefault("SECOND", "two", nil).
		WithField("THIRD", Required(TypeInt)).
		Build()

	want := []string{"FIRST", "SECOND", "THIRD"}
	got := s.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if s.Fields[1].Default != "two" {
		t.Errorf("expected default %q, got %v", "two", s.Fields[1].Default)
	}
	if s.Fields[2].Rule == nil || !s.Fields[2].Rule.Required {
		t.Error("expected THIRD to carry a required rule")
	}
}

func TestBuilder_Policy(t *testing.T) {
	s := NewSchema().
		WithDotEnv(".env.test").
		WithPropagation().
		WithEagerValidation().
		Build()

	if s.DotEnvPath != ".env.test" {
		t.Errorf("expected dotenv path %q, got %q", ".env.test", s.DotEnvPath)
	}
	if !s.Propagate {
		t.Error("expected propagation enabled")
	}
	if !s.EagerValidate {
		t.Error("expected eager validation enabled")
	}
}
