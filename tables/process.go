package tables

// WMO Code Table 4.3: Type of Generating Process
//
// This table names the process that produced the data (analysis, forecast,
// ensemble forecast, and so on).

var generatingProcessEntries = []*Entry{
	{0, "Analysis", "Analysis", ""},
	{1, "Initialization", "Initialization", ""},
	{2, "Forecast", "Forecast", ""},
	{3, "Bias Corrected Forecast", "Bias corrected forecast", ""},
	{4, "Ensemble Forecast", "Ensemble forecast", ""},
	{5, "Probability Forecast", "Probability forecast", ""},
	{6, "Forecast Error", "Forecast error", ""},
	{7, "Analysis Error", "Analysis error", ""},
	{8, "Observation", "Observation", ""},
	{9, "Climatological", "Climatological", ""},
	{10, "Probability-Weighted Forecast", "Probability-weighted forecast", ""},
	{11, "Bias-Corrected Ensemble Forecast", "Bias-corrected ensemble forecast", ""},
	{12, "Post-Processed Analysis", "Post-processed analysis", ""},
	{13, "Post-Processed Forecast", "Post-processed forecast", ""},
	{14, "Nowcast", "Nowcast", ""},
	{15, "Hindcast", "Hindcast", ""},
}

var generatingProcessRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// GeneratingProcessTable is the WMO Code Table 4.3.
var GeneratingProcessTable = NewRangeTable(generatingProcessEntries, generatingProcessRanges, "Unknown generating process")

// GetGeneratingProcessName returns the name for a generating process code.
func GetGeneratingProcessName(code int) string {
	return GeneratingProcessTable.Name(code)
}
