package nav

// Item is one routable link.
type Item struct {
	Label string
	Route string
}

// Section is a collapsible group of links.
type Section struct {
	Title string
	Items []Item
	Open  bool
}

// Sidebar is the left navigation: independent accordions, all collapsed at start.
type Sidebar struct {
	Sections []Section
}

// NewSidebar returns the subject accordions.
func NewSidebar() *Sidebar {
	return &Sidebar{Sections: []Section{
		{Title: "Mathematics", Items: []Item{{Label: "3D Explorer", Route: RouteExplorer}}},
		{Title: "Social Sciences", Items: []Item{{Label: "Social Sciences", Route: RouteSocial}}},
		{Title: "Natural Sciences", Items: []Item{{Label: "Natural Sciences", Route: RouteNatural}}},
	}}
}

// Toggle flips section i open or closed and returns its new state.
// Out-of-range indexes do nothing and return false.
func (s *Sidebar) Toggle(i int) bool {
	if i < 0 || i >= len(s.Sections) {
		return false
	}
	s.Sections[i].Open = !s.Sections[i].Open
	return s.Sections[i].Open
}

// Indicator is the expand marker drawn next to a section title.
func (s *Sidebar) Indicator(i int) string {
	if i >= 0 && i < len(s.Sections) && s.Sections[i].Open {
		return "-"
	}
	return "+"
}

// RowKind says whether a Row is a section header or a link.
type RowKind int

const (
	HeaderRow RowKind = iota
	LinkRow
)

// Row is one visible line of the sidebar, top to bottom.
type Row struct {
	Kind    RowKind
	Section int
	Item    Item
}

// Rows returns headers plus the links of open sections.
func (s *Sidebar) Rows() []Row {
	var rows []Row
	for i, sec := range s.Sections {
		rows = append(rows, Row{Kind: HeaderRow, Section: i})
		if !sec.Open {
			continue
		}
		for _, it := range sec.Items {
			rows = append(rows, Row{Kind: LinkRow, Section: i, Item: it})
		}
	}
	return rows
}
