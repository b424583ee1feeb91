package diff

import (
	"slices"
	"testing"

	"github.com/followdiff/followdiff/pkg/export"
)

func TestNotFollowingBack(t *testing.T) {
	tests := []struct {
		name      string
		following []string
		followers []string
		want      []string
	}{
		{
			name:      "partial overlap",
			following: []string{"alice", "bob", "carol"},
			followers: []string{"bob"},
			want:      []string{"alice", "carol"},
		},
		{
			name:      "identical sets",
			following: []string{"alice", "bob"},
			followers: []string{"alice", "bob"},
			want:      []string{},
		},
		{
			name:      "no overlap",
			following: []string{"alice", "bob"},
			followers: []string{"carol"},
			want:      []string{"alice", "bob"},
		},
		{
			name:      "empty following",
			following: []string{},
			followers: []string{"alice"},
			want:      []string{},
		},
		{
			name:      "empty followers is full passthrough",
			following: []string{"bob", "alice"},
			followers: []string{},
			want:      []string{"alice", "bob"},
		},
		{
			name:      "both empty",
			following: []string{},
			followers: []string{},
			want:      []string{},
		},
		{
			name:      "extra followers ignored",
			following: []string{"alice"},
			followers: []string{"alice", "bob", "carol"},
			want:      []string{},
		},
		{
			name:      "sorted ascending",
			following: []string{"zed", "mallory", "alice", "bob"},
			followers: []string{"bob"},
			want:      []string{"alice", "mallory", "zed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NotFollowingBack(export.NewSet(tt.following...), export.NewSet(tt.followers...))
			if !slices.Equal(got, tt.want) {
				t.Errorf("NotFollowingBack() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The result must contain exactly the elements of following absent from
// followers, with no duplicates, regardless of insertion order.
func TestNotFollowingBackNoDuplicates(t *testing.T) {
	following := export.NewSet("alice", "alice", "bob")
	followers := export.NewSet()

	got := NotFollowingBack(following, followers)
	want := []string{"alice", "bob"}
	if !slices.Equal(got, want) {
		t.Errorf("NotFollowingBack() = %v, want %v", got, want)
	}
}
