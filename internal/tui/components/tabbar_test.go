package components

import "testing"

func TestTabVisualWidth(t *testing.T) {
	// Active: name plus one column of padding each side.
	if got := TabVisualWidth(Tabs[0], true); got != len("Overview")+2 {
		t.Errorf("active width = %d, want %d", got, len("Overview")+2)
	}
	// Inactive: the shortcut letter gains brackets.
	if got := TabVisualWidth(Tabs[1], false); got != len("[D]etail")+2 {
		t.Errorf("inactive width = %d, want %d", got, len("[D]etail")+2)
	}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		pos := 0
		for i, tab := range Tabs {
			w := TabVisualWidth(tab, i == active)
			for _, x := range []int{pos, pos + w/2, pos + w - 1} {
				if got := TabAtX(active, x); got != i {
					t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
				}
			}
			pos += w
			if i < len(Tabs)-1 {
				if got := TabAtX(active, pos); got != -1 {
					t.Errorf("separator at x=%d -> tab %d, want -1", pos, got)
				}
				pos++
			}
		}
		if got := TabAtX(active, pos+5); got != -1 {
			t.Errorf("past last tab -> %d, want -1", got)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if TabIdxByKey('o') != 0 || TabIdxByKey('d') != 1 || TabIdxByKey('z') != -1 {
		t.Error("TabIdxByKey returned wrong index")
	}
}
