package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"/":                "Dashboard",
		"":                 "Dashboard",
		"/feedback":        "Feedback 1:1",
		"/feedback/3":      "Feedback 1:1",
		"/feedback/new":    "Feedback 1:1",
		"/pdi/2/edit":      "PDI",
		"/profile":         "Profile",
		"/profile/edit":    "Profile",
		"/feedbackarchive": "Dashboard",
	}
	for path, want := range cases {
		assert.Equal(t, want, Title(path), path)
	}
}

func TestSidebarActive(t *testing.T) {
	active := func(path string) []string {
		var out []string
		for _, l := range Sidebar(path) {
			if l.Active {
				out = append(out, l.Title)
			}
		}
		return out
	}
	assert.Equal(t, []string{"Dashboard"}, active("/"))
	assert.Equal(t, []string{"PDI"}, active("/pdi/1"))
	assert.Equal(t, []string{"Profile"}, active("/profile/edit"))
	assert.Empty(t, active("/metrics"))
	assert.Len(t, Sidebar("/"), 4)
}
