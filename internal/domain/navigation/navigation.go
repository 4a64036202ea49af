// Package navigation maps request paths onto the page shell: the header
// title and the sidebar links.
package navigation

import "strings"

type Link struct {
	Title  string
	Href   string
	Icon   string
	Active bool
}

var sidebar = []Link{
	{Title: "Dashboard", Href: "/", Icon: "layout-dashboard"},
	{Title: "Feedback 1:1", Href: "/feedback", Icon: "message-square"},
	{Title: "PDI", Href: "/pdi", Icon: "target"},
	{Title: "Profile", Href: "/profile", Icon: "user"},
}

// Title is the header title for path.
func Title(path string) string {
	for _, link := range sidebar[1:] {
		if matches(path, link.Href) {
			return link.Title
		}
	}
	return sidebar[0].Title
}

// Sidebar returns the navigation links with the one serving path marked
// active.
func Sidebar(path string) []Link {
	out := make([]Link, len(sidebar))
	copy(out, sidebar)
	for i := range out {
		if out[i].Href == "/" {
			out[i].Active = path == "/" || path == ""
			continue
		}
		out[i].Active = matches(path, out[i].Href)
	}
	return out
}

func matches(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
