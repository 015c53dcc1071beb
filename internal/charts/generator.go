package charts

// ChartGenerator builds the report's map snippet, chart fragments and static
// chart images from a filtered record set.
type ChartGenerator struct {
	outputDir string
}

// NewChartGenerator creates a chart generator. outputDir receives static
// chart images; snippet generation never touches the filesystem.
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{
		outputDir: outputDir,
	}
}
