package tables

// WMO Code Table 4.10: Type of Statistical Processing
//
// This table names the statistical operation applied over a time interval
// by product definition templates 4.8, 4.11 and 4.12.

var statisticalProcessEntries = []*Entry{
	{0, "Average", "Average", ""},
	{1, "Accumulation", "Accumulation", ""},
	{2, "Maximum", "Maximum", ""},
	{3, "Minimum", "Minimum", ""},
	{4, "Difference", "Difference (end minus beginning)", ""},
	{5, "RMS", "Root mean square", ""},
	{6, "Standard Deviation", "Standard deviation", ""},
	{7, "Covariance", "Covariance (temporal variance)", ""},
	{8, "Difference (Reversed)", "Difference (beginning minus end)", ""},
	{9, "Ratio", "Ratio", ""},
	{10, "Standardized Anomaly", "Standardized anomaly", ""},
	{11, "Summation", "Summation", ""},
}

var statisticalProcessRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// StatisticalProcessTable is the WMO Code Table 4.10.
var StatisticalProcessTable = NewRangeTable(statisticalProcessEntries, statisticalProcessRanges, "Unknown statistical process")

// GetStatisticalProcessName returns the name for a statistical process code.
func GetStatisticalProcessName(code int) string {
	return StatisticalProcessTable.Name(code)
}

// WMO Code Table 4.7: Derived Forecast
//
// This table names how a derived ensemble product (templates 4.2 and 4.12)
// was computed from its members.

var derivedForecastEntries = []*Entry{
	{0, "Unweighted Mean", "Unweighted mean of all members", ""},
	{1, "Weighted Mean", "Weighted mean of all members", ""},
	{2, "Standard Deviation", "Standard deviation with respect to cluster mean", ""},
	{3, "Normalized Standard Deviation", "Standard deviation with respect to cluster mean, normalized", ""},
	{4, "Spread", "Spread of all members", ""},
	{5, "Large Anomaly Index", "Large anomaly index of all members", ""},
	{6, "Unweighted Mean of Cluster", "Unweighted mean of the cluster members", ""},
	{7, "Interquartile Range", "Interquartile range", ""},
	{8, "Minimum", "Minimum of all ensemble members", ""},
	{9, "Maximum", "Maximum of all ensemble members", ""},
}

var derivedForecastRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// DerivedForecastTable is the WMO Code Table 4.7.
var DerivedForecastTable = NewRangeTable(derivedForecastEntries, derivedForecastRanges, "Unknown derived forecast type")

// GetDerivedForecastName returns the name for a derived forecast type code.
func GetDerivedForecastName(code int) string {
	return DerivedForecastTable.Name(code)
}
