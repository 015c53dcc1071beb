package charts

// ChartSnippet represents an embeddable chart or map fragment: a target div,
// the script that populates it, and the complete HTML including any library
// includes.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}
