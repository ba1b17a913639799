package model

import "testing"

func TestParsersAcceptCanonicalValues(t *testing.T) {
	if s, err := ParseStatus(" DONE "); err != nil || s != StatusDone {
		t.Fatalf("ParseStatus = %q, %v", s, err)
	}
	if m, err := ParseSortMode("manual"); err != nil || m != SortManual {
		t.Fatalf("ParseSortMode(manual) = %q, %v", m, err)
	}
	if m, err := ParseSortMode("createdAt"); err != nil || m != SortManual {
		t.Fatalf("ParseSortMode(createdAt) = %q, %v", m, err)
	}
	if tab, err := ParseTab("Overdue"); err != nil || tab != TabOverdue {
		t.Fatalf("ParseTab = %q, %v", tab, err)
	}
	if f, err := ParsePriorityFilter("high"); err != nil || f != PriorityHigh {
		t.Fatalf("ParsePriorityFilter = %q, %v", f, err)
	}
	if p, err := ParsePage("goal"); err != nil || p != PageGoal {
		t.Fatalf("ParsePage = %q, %v", p, err)
	}
}

func TestParsersRejectUnknownValues(t *testing.T) {
	if _, err := ParseStatus("blocked"); err == nil {
		t.Fatal("ParseStatus accepted unknown value")
	}
	if _, err := ParseSortMode("alpha"); err == nil {
		t.Fatal("ParseSortMode accepted unknown value")
	}
	if _, err := ParseTab("tomorrow"); err == nil {
		t.Fatal("ParseTab accepted unknown value")
	}
	if _, err := ParsePriorityFilter("urgent"); err == nil {
		t.Fatal("ParsePriorityFilter accepted unknown value")
	}
	if _, err := ParsePage("settings"); err == nil {
		t.Fatal("ParsePage accepted unknown value")
	}
}

func TestIsExpanded(t *testing.T) {
	d := &Document{UI: UIState{ExpandedTaskIDs: []string{"task-a"}}}
	if !d.IsExpanded("task-a") {
		t.Fatal("expanded task reported collapsed")
	}
	if d.IsExpanded("task-b") {
		t.Fatal("collapsed task reported expanded")
	}
}
