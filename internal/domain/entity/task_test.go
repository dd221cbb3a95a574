package entity

import "testing"

func TestNormalizeStatus_Default(t *testing.T) {
	status, err := NormalizeStatus("")
	if err != nil {
		t.Fatalf("NormalizeStatus failed: %v", err)
	}
	if status != TaskStatusTodo {
		t.Errorf("expected default status todo, got %s", status)
	}
}

func TestNormalizeStatus_Invalid(t *testing.T) {
	if _, err := NormalizeStatus("archived"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestNormalizeStatus_AllKnownValues(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := NormalizeStatus(string(s))
		if err != nil {
			t.Errorf("NormalizeStatus(%q) failed: %v", s, err)
		}
		if got != s {
			t.Errorf("expected %s, got %s", s, got)
		}
	}
}

func TestNormalizeLabel_Default(t *testing.T) {
	label, err := NormalizeLabel("")
	if err != nil {
		t.Fatalf("NormalizeLabel failed: %v", err)
	}
	if label != TaskLabelFeature {
		t.Errorf("expected default label feature, got %s", label)
	}
}

func TestNormalizeLabel_Invalid(t *testing.T) {
	if _, err := NormalizeLabel("chore"); err == nil {
		t.Error("expected error for unknown label")
	}
}

func TestNormalizePriority_Default(t *testing.T) {
	priority, err := NormalizePriority("")
	if err != nil {
		t.Fatalf("NormalizePriority failed: %v", err)
	}
	if priority != TaskPriorityMedium {
		t.Errorf("expected default priority medium, got %s", priority)
	}
}

func TestNormalizePriority_Invalid(t *testing.T) {
	if _, err := NormalizePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
}
