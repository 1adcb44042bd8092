package pagination

import (
	"slices"
	"testing"
)

func TestPaginate(t *testing.T) {
	items := []string{"a.com", "b.com", "c.com", "d.com", "e.com"}

	tests := []struct {
		name        string
		opts        Options
		want        []string
		wantShowing int
		wantHasMore bool
	}{
		{"no limit returns all", Options{Limit: 0, Page: 1}, items, 5, false},
		{"first page", Options{Limit: 2, Page: 1}, []string{"a.com", "b.com"}, 2, true},
		{"middle page", Options{Limit: 2, Page: 2}, []string{"c.com", "d.com"}, 2, true},
		{"short last page", Options{Limit: 2, Page: 3}, []string{"e.com"}, 1, false},
		{"page past the end", Options{Limit: 2, Page: 9}, []string{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, info := Paginate(items, tt.opts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Paginate() = %v, want %v", got, tt.want)
			}
			if info.Showing != tt.wantShowing {
				t.Errorf("Showing = %d, want %d", info.Showing, tt.wantShowing)
			}
			if info.HasMore != tt.wantHasMore {
				t.Errorf("HasMore = %v, want %v", info.HasMore, tt.wantHasMore)
			}
			if info.Total != len(items) {
				t.Errorf("Total = %d, want %d", info.Total, len(items))
			}
		})
	}
}

func TestFooterMessage(t *testing.T) {
	tests := []struct {
		name string
		info PageInfo
		want string
	}{
		{"unlimited", PageInfo{Total: 3, Showing: 3}, "Found 3 domain(s)"},
		{"limit covers everything", PageInfo{Page: 1, Limit: 10, Total: 3, Showing: 3}, "Found 3 domain(s)"},
		{"limited", PageInfo{Page: 2, Limit: 2, Total: 5, Showing: 2, HasMore: true}, "Showing 2 of 5 domain(s) (page 2/3)"},
		{"page past the end", PageInfo{Page: 9, Limit: 2, Total: 5, Showing: 0}, "Showing 0 of 5 domain(s) (page 9/3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.FooterMessage("domain(s)"); got != tt.want {
				t.Errorf("FooterMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
