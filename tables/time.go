package tables

import "time"

// WMO Code Table 1.2: Significance of Reference Time
//
// This table defines the meaning of the reference time in Section 1.

var timeSignificanceEntries = []*Entry{
	{0, "Analysis", "Analysis", ""},
	{1, "Start of Forecast", "Start of forecast", ""},
	{2, "Verifying Time", "Verifying time of forecast", ""},
	{3, "Observation Time", "Observation time", ""},
	{4, "Analysis Valid Time", "Time of analysis valid at reference time", ""},
}

var timeSignificanceRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// TimeSignificanceTable is the WMO Code Table 1.2.
var TimeSignificanceTable = NewRangeTable(timeSignificanceEntries, timeSignificanceRanges, "Unknown time significance")

// GetTimeSignificanceName returns the name for a time significance code.
func GetTimeSignificanceName(code int) string {
	return TimeSignificanceTable.Name(code)
}

// WMO Code Table 1.3: Production Status of Processed Data
//
// This table defines the production status of the data.

var productionStatusEntries = []*Entry{
	{0, "Operational", "Operational products", ""},
	{1, "Experimental", "Operational test products", ""},
	{2, "Research", "Research products", ""},
	{3, "Re-analysis", "Re-analysis products", ""},
	{4, "TIGGE", "THORPEX Interactive Grand Global Ensemble (TIGGE)", ""},
	{5, "TIGGE-Test", "TIGGE test", ""},
	{6, "S2S", "Sub-seasonal to seasonal prediction project (S2S)", ""},
	{7, "S2S-Test", "S2S test", ""},
	{8, "UERRA", "Uncertainties in Ensembles of Regional ReAnalyses project (UERRA)", ""},
	{9, "UERRA-Test", "UERRA test", ""},
}

var productionStatusRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// ProductionStatusTable is the WMO Code Table 1.3.
var ProductionStatusTable = NewRangeTable(productionStatusEntries, productionStatusRanges, "Unknown production status")

// GetProductionStatusName returns the name for a production status code.
func GetProductionStatusName(code int) string {
	return ProductionStatusTable.Name(code)
}

// WMO Code Table 1.4: Type of Data
//
// This table defines the type of processed data.

var dataTypeEntries = []*Entry{
	{0, "Analysis", "Analysis products", ""},
	{1, "Forecast", "Forecast products", ""},
	{2, "Analysis & Forecast", "Analysis and forecast products", ""},
	{3, "Control Forecast", "Control forecast products", ""},
	{4, "Perturbed Forecast", "Perturbed forecast products", ""},
	{5, "Control & Perturbed", "Control and perturbed forecast products", ""},
	{6, "Processed Satellite", "Processed satellite observations", ""},
	{7, "Processed Radar", "Processed radar observations", ""},
	{8, "Event Probability", "Event probability", ""},
}

var dataTypeRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// DataTypeTable is the WMO Code Table 1.4.
var DataTypeTable = NewRangeTable(dataTypeEntries, dataTypeRanges, "Unknown data type")

// GetDataTypeName returns the name for a data type code.
func GetDataTypeName(code int) string {
	return DataTypeTable.Name(code)
}

// WMO Code Table 4.4: Indicator of Unit of Time Range
//
// This table defines the unit a product definition template's forecast
// time offset is expressed in.

var timeRangeUnitEntries = []*Entry{
	{0, "Minute", "Minute", "min"},
	{1, "Hour", "Hour", "h"},
	{2, "Day", "Day", "d"},
	{3, "Month", "Month", "mon"},
	{4, "Year", "Year", "yr"},
	{5, "Decade", "Decade (10 years)", ""},
	{6, "Normal", "Normal (30 years)", ""},
	{7, "Century", "Century (100 years)", ""},
	{10, "3 Hours", "3 hours", "h"},
	{11, "6 Hours", "6 hours", "h"},
	{12, "12 Hours", "12 hours", "h"},
	{13, "Second", "Second", "s"},
}

var timeRangeUnitRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// TimeRangeUnitTable is the WMO Code Table 4.4.
var TimeRangeUnitTable = NewRangeTable(timeRangeUnitEntries, timeRangeUnitRanges, "Unknown time range unit")

// GetTimeRangeUnitName returns the name for a time range unit code.
func GetTimeRangeUnitName(code int) string {
	return TimeRangeUnitTable.Name(code)
}

// AddForecastTime returns ref advanced by offset units of the given Table
// 4.4 time range unit. Calendar units (month, year, decade, normal,
// century) advance by calendar arithmetic rather than a fixed duration, so
// a one-month offset lands on the same day of the next month. The boolean
// result is false for unrecognized unit codes.
func AddForecastTime(ref time.Time, unit int, offset int) (time.Time, bool) {
	switch unit {
	case 0:
		return ref.Add(time.Duration(offset) * time.Minute), true
	case 1:
		return ref.Add(time.Duration(offset) * time.Hour), true
	case 2:
		return ref.AddDate(0, 0, offset), true
	case 3:
		return ref.AddDate(0, offset, 0), true
	case 4:
		return ref.AddDate(offset, 0, 0), true
	case 5:
		return ref.AddDate(10*offset, 0, 0), true
	case 6:
		return ref.AddDate(30*offset, 0, 0), true
	case 7:
		return ref.AddDate(100*offset, 0, 0), true
	case 10:
		return ref.Add(time.Duration(offset) * 3 * time.Hour), true
	case 11:
		return ref.Add(time.Duration(offset) * 6 * time.Hour), true
	case 12:
		return ref.Add(time.Duration(offset) * 12 * time.Hour), true
	case 13:
		return ref.Add(time.Duration(offset) * time.Second), true
	default:
		return ref, false
	}
}
