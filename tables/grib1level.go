package tables

// GRIB1 WMO Code Table 3: Indicator of Type of Level, the edition-1
// analogue of GRIB2's Code Table 4.5 (see level.go). The two tables share
// some codes but disagree on others: GRIB1 code 102 is "Mean sea level"
// while Table 4.5's 102 is "Specific altitude above mean sea level", and
// GRIB1 code 105 is "Height above ground" while Table 4.5's 105 is "Hybrid
// level". Feeding a GRIB1 "indicator of type of level" code into the
// GRIB2 level table silently produces the wrong name/unit for exactly the
// codes archived NCEP GRIB1 files use most (10m wind, 2m temperature, MSL
// pressure), so GRIB1 messages must resolve level type/unit through this
// table instead of LevelTable.

var grib1LevelEntries = []*Entry{
	{1, "Surface", "Ground or water surface", ""},
	{2, "Cloud Base", "Cloud base level", ""},
	{3, "Cloud Top", "Cloud top level", ""},
	{4, "0°C Isotherm", "Level of 0°C isotherm", ""},
	{5, "Condensation", "Level of adiabatic condensation lifted from the surface", ""},
	{6, "Max Wind", "Maximum wind level", ""},
	{7, "Tropopause", "Tropopause", ""},
	{8, "Nominal Top", "Nominal top of the atmosphere", ""},
	{9, "Sea Bottom", "Sea bottom", ""},
	{20, "Isothermal", "Isothermal level", "K"},
	{100, "Isobaric", "Isobaric surface", "hPa"},
	{101, "Layer Between Isobaric", "Layer between two isobaric surfaces", "hPa"},
	{102, "MSL", "Mean sea level", ""},
	{103, "Altitude AMSL", "Altitude above mean sea level", "m"},
	{104, "Layer Between Altitude", "Layer between two altitudes above mean sea level", "m"},
	{105, "Height AGL", "Height above ground", "m"},
	{106, "Layer Between Height", "Layer between two heights above ground", "m"},
	{107, "Sigma", "Sigma level", ""},
	{108, "Layer Between Sigma", "Layer between two sigma levels", ""},
	{109, "Hybrid", "Hybrid level", ""},
	{110, "Layer Between Hybrid", "Layer between two hybrid levels", ""},
	{111, "Depth BGL", "Depth below land surface", "cm"},
	{112, "Layer Between Depth", "Layer between two depths below land surface", "cm"},
	{113, "Isentropic", "Isentropic (theta) level", "K"},
	{114, "Layer Between Isentropic", "Layer between two isentropic levels", "K"},
	{115, "Pressure Diff", "Level at specified pressure difference from ground to level", "hPa"},
	{116, "Layer Between Pressure Diff", "Layer between two levels at specified pressure differences from ground", "hPa"},
	{117, "Potential Vorticity", "Potential vorticity surface", "10⁻⁶ K m²/(kg s)"},
	{119, "Eta", "Eta level", ""},
	{120, "Layer Between Eta", "Layer between two eta levels", ""},
	{125, "Height AGL", "Specific height above ground", "cm"},
	{126, "Isobaric (hPa)", "Isobaric surface", "hPa"},
	{128, "Sigma Layer", "Layer between two sigma levels", "1/1000"},
	{141, "Layer Between Isobaric", "Layer between two isobaric surfaces (hPa, mixed)", "hPa"},
	{160, "Depth BelowSea", "Depth below sea level", "m"},
	{200, "Entire Atmosphere", "Entire atmosphere (considered as a single layer)", ""},
	{201, "Entire Ocean", "Entire ocean (considered as a single layer)", ""},
}

// grib1LevelTable is the GRIB1 WMO Table 3 fixed-surface table.
var grib1LevelTable = NewSimpleTable(grib1LevelEntries, "Unknown GRIB1 level type")

// GetGRIB1LevelName returns the name for a GRIB1 "indicator of type of
// level" code (WMO Table 3).
func GetGRIB1LevelName(code int) string {
	return grib1LevelTable.Name(code)
}

// GetGRIB1LevelUnit returns the unit for a GRIB1 level type code. Returns
// empty string if the level type doesn't have a unit or is not found.
func GetGRIB1LevelUnit(code int) string {
	if e := grib1LevelTable.Lookup(code); e != nil {
		return e.Unit
	}
	return ""
}
