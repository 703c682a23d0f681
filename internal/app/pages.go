package app

import "geometry-explorer/internal/nav"

// Card is one info box under the explorer.
type Card struct {
	Title string
	Text  string
}

// Page is the static copy of a routed view.
type Page struct {
	Title       string
	Description string
	Cards       []Card
}

// Palette is the colour picker's swatches. The first entry is the default colour.
var Palette = []string{
	"#22c55e", "#3b82f6", "#ef4444", "#f59e0b",
	"#a855f7", "#ec4899", "#14b8a6", "#0f172a",
}

// Pages returns the copy for every route.
func Pages() map[string]Page {
	return map[string]Page{
		nav.RouteHome: {
			Title:       "Welcome",
			Description: "Pick a subject from the sidebar. Mathematics opens the 3D explorer.",
		},
		nav.RouteExplorer: {
			Title: "3D Shape Explorer",
			Description: "Visualize and manipulate three-dimensional geometric shapes interactively. " +
				"Explore cubes, spheres and cylinders with rotation, scale and colour controls.",
			Cards: []Card{
				{Title: "Rotation", Text: "Drag with the mouse to orbit the view. Turn on automatic rotation to watch the shape spin continuously."},
				{Title: "Scale", Text: "Adjust the size of the shape with the slider, from 0.1x up to 3x the original size."},
				{Title: "Shapes", Text: "Switch between cube, sphere and cylinder to explore different three-dimensional geometries."},
			},
		},
		nav.RouteSocial: {
			Title:       "Social Sciences",
			Description: "Content for this subject is on its way.",
		},
		nav.RouteNatural: {
			Title:       "Natural Sciences",
			Description: "Content for this subject is on its way.",
		},
	}
}
