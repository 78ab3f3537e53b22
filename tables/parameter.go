package tables

import (
	"fmt"
	"sync"
)

// WMO Code Table 4.1: Parameter Category by Product Discipline
//
// This table defines parameter categories within each discipline.
// The actual parameters are defined in Table 4.2, which is further subdivided
// by discipline and category.

// Discipline 0: Meteorological Products
var parameterCategoryMeteorologicalEntries = []*Entry{
	{0, "Temperature", "Temperature", ""},
	{1, "Moisture", "Moisture", ""},
	{2, "Momentum", "Momentum", ""},
	{3, "Mass", "Mass", ""},
	{4, "Short-wave Radiation", "Short-wave radiation", ""},
	{5, "Long-wave Radiation", "Long-wave radiation", ""},
	{6, "Cloud", "Cloud", ""},
	{7, "Thermodynamic Stability", "Thermodynamic stability indices", ""},
	{8, "Aerosols", "Aerosols", ""},
	{9, "Trace Gases", "Trace gases (e.g. ozone, CO2)", ""},
	{10, "Radar", "Radar", ""},
	{11, "Radar Imagery", "Radar imagery", ""},
	{12, "Electrodynamics", "Electrodynamics", ""},
	{13, "Nuclear/Radiology", "Nuclear/radiology", ""},
	{14, "Physical Atmospheric", "Physical atmospheric properties", ""},
	{15, "Atmospheric Chemical", "Atmospheric chemical constituents", ""},
	{16, "Forecast Radar Imagery", "Forecast radar imagery", ""},
	{17, "Electrodynamics", "Electrodynamics", ""},
	{18, "Signal Processing", "Signal processing", ""},
	{19, "Vegetation/Biomass", "Vegetation/biomass", ""},
	{20, "Atmospheric", "Atmospheric", ""},
	{190, "CCITT IA5 String", "CCITT IA5 string", ""},
	{191, "Miscellaneous", "Miscellaneous", ""},
}

// Discipline 1: Hydrological Products
var parameterCategoryHydrologicalEntries = []*Entry{
	{0, "Hydrology Basic", "Hydrology basic products", ""},
	{1, "Hydrology Probabilities", "Hydrology probabilities", ""},
	{2, "Inland Water", "Inland water and sediment properties", ""},
}

// Discipline 2: Land Surface Products
var parameterCategoryLandSurfaceEntries = []*Entry{
	{0, "Vegetation/Biomass", "Vegetation/biomass", ""},
	{1, "Agricultural", "Agricultural/aquacultural special products", ""},
	{2, "Transportation", "Transportation-related products", ""},
	{3, "Soil Products", "Soil products", ""},
	{4, "Fire Weather", "Fire weather products", ""},
	{5, "Glaciers and Ice Sheets", "Glaciers and inland ice", ""},
}

// Discipline 3: Space Products
var parameterCategorySpaceEntries = []*Entry{
	{0, "Image Format", "Image format products", ""},
	{1, "Quantitative", "Quantitative products", ""},
	{2, "Cloud Properties", "Cloud properties", ""},
	{3, "Flight Rules", "Flight rule conditions", ""},
	{4, "Volcanic Ash", "Volcanic ash", ""},
	{5, "Sea-surface Temperature", "Sea-surface temperature", ""},
	{6, "Solar Radiation", "Solar radiation", ""},
}

// Discipline 10: Oceanographic Products
var parameterCategoryOceanographicEntries = []*Entry{
	{0, "Waves", "Waves", ""},
	{1, "Currents", "Currents", ""},
	{2, "Ice", "Ice", ""},
	{3, "Surface Properties", "Surface properties", ""},
	{4, "Sub-surface Properties", "Sub-surface properties", ""},
	{191, "Miscellaneous", "Miscellaneous", ""},
}

// ParameterCategoryTable is a discipline-specific table for parameter categories.
var ParameterCategoryTable *DisciplineSpecificTable

func init() {
	ParameterCategoryTable = NewDisciplineSpecificTable("Unknown parameter category")

	// Add tables for each discipline
	ParameterCategoryTable.AddTable(0, NewSimpleTable(parameterCategoryMeteorologicalEntries, "Unknown category"))
	ParameterCategoryTable.AddTable(1, NewSimpleTable(parameterCategoryHydrologicalEntries, "Unknown category"))
	ParameterCategoryTable.AddTable(2, NewSimpleTable(parameterCategoryLandSurfaceEntries, "Unknown category"))
	ParameterCategoryTable.AddTable(3, NewSimpleTable(parameterCategorySpaceEntries, "Unknown category"))
	ParameterCategoryTable.AddTable(10, NewSimpleTable(parameterCategoryOceanographicEntries, "Unknown category"))
}

// GetParameterCategoryName returns the name for a parameter category code
// within a specific discipline.
func GetParameterCategoryName(discipline, category int) string {
	return ParameterCategoryTable.Name(discipline, category)
}

// GetParameterCategoryDescription returns the full description for a parameter
// category code within a specific discipline.
func GetParameterCategoryDescription(discipline, category int) string {
	return ParameterCategoryTable.Description(discipline, category)
}

// WMO Code Table 4.2: Parameter Number by Product Discipline and Parameter Category
//
// This table is extremely large and varies by both discipline and category.
// We implement only the most common parameters, mostly from Discipline 0
// (Meteorological), plus a few from disciplines 2 (land surface), 10
// (oceanographic) and the MRMS local discipline 209.
//
// Full implementation would require hundreds of entries across multiple tables.

// Discipline 0, Category 0: Temperature parameters
var parameterTemperatureEntries = []*Entry{
	{0, "Temperature", "Temperature", "K"},
	{1, "Virtual Temperature", "Virtual temperature", "K"},
	{2, "Potential Temperature", "Potential temperature", "K"},
	{3, "Pseudo-Adiabatic Potential Temperature", "Pseudo-adiabatic potential temperature", "K"},
	{4, "Maximum Temperature", "Maximum temperature", "K"},
	{5, "Minimum Temperature", "Minimum temperature", "K"},
	{6, "Dew Point Temperature", "Dew point temperature", "K"},
	{7, "Dew Point Depression", "Dew point depression (or deficit)", "K"},
	{8, "Lapse Rate", "Lapse rate", "K/m"},
	{9, "Temperature Anomaly", "Temperature anomaly", "K"},
	{10, "Latent Heat", "Latent heat net flux", "W/m²"},
	{11, "Sensible Heat", "Sensible heat net flux", "W/m²"},
	{12, "Heat Index", "Heat index", "K"},
	{13, "Wind Chill", "Wind chill factor", "K"},
	{14, "Minimum Dew Point", "Minimum dew point depression", "K"},
	{15, "Virtual Potential Temperature", "Virtual potential temperature", "K"},
	{16, "Snow Phase Change Heat Flux", "Snow phase change heat flux", "W/m²"},
	{17, "Skin Temperature", "Skin temperature", "K"},
	{18, "Snow Temperature", "Snow temperature", "K"},
	{19, "Turbulent Transfer Coefficient", "Turbulent transfer coefficient for heat", "Numeric"},
	{20, "Turbulent Diffusion Coefficient", "Turbulent diffusion coefficient for heat", "m²/s"},
	{21, "Apparent Temperature", "Apparent temperature", "K"},
	{192, "Snow Phase Change Heat Flux", "Snow phase change heat flux", "W/m²"},
}

// Discipline 0, Category 1: Moisture parameters
var parameterMoistureEntries = []*Entry{
	{0, "Specific Humidity", "Specific humidity", "kg/kg"},
	{1, "Relative Humidity", "Relative humidity", "%"},
	{2, "Humidity Mixing Ratio", "Humidity mixing ratio", "kg/kg"},
	{3, "Precipitable Water", "Precipitable water", "kg/m²"},
	{4, "Vapor Pressure", "Vapor pressure", "Pa"},
	{5, "Saturation Deficit", "Saturation deficit", "Pa"},
	{6, "Evaporation", "Evaporation", "kg/m²"},
	{7, "Precipitation Rate", "Precipitation rate", "kg/(m² s)"},
	{8, "Total Precipitation", "Total precipitation", "kg/m²"},
	{9, "Large Scale Precipitation", "Large scale precipitation", "kg/m²"},
	{10, "Convective Precipitation", "Convective precipitation", "kg/m²"},
	{11, "Snow Depth", "Snow depth", "m"},
	{12, "Snowfall Rate Water Equivalent", "Snowfall rate water equivalent", "kg/(m² s)"},
	{13, "Water Equiv of Accumulated Snow", "Water equivalent of accumulated snow depth", "kg/m²"},
	{14, "Convective Snow", "Convective snow", "kg/m²"},
	{15, "Large Scale Snow", "Large scale snow", "kg/m²"},
	{16, "Snow Melt", "Snow melt", "kg/m²"},
	{17, "Snow Age", "Snow age", "day"},
	{18, "Absolute Humidity", "Absolute humidity", "kg/m³"},
	{19, "Precipitation Type", "Precipitation type", "Code table 4.201"},
	{20, "Integrated Liquid Water", "Integrated liquid water", "kg/m²"},
	{21, "Condensate", "Condensate", "kg/kg"},
	{22, "Cloud Mixing Ratio", "Cloud mixing ratio", "kg/kg"},
	{23, "Ice Water Mixing Ratio", "Ice water mixing ratio", "kg/kg"},
	{24, "Rain Mixing Ratio", "Rain mixing ratio", "kg/kg"},
	{25, "Snow Mixing Ratio", "Snow mixing ratio", "kg/kg"},
	{26, "Horizontal Moisture Convergence", "Horizontal moisture convergence", "kg/(kg s)"},
	{27, "Maximum Relative Humidity", "Maximum relative humidity", "%"},
	{28, "Maximum Absolute Humidity", "Maximum absolute humidity", "kg/m³"},
	{29, "Total Snowfall", "Total snowfall", "m"},
	{32, "Graupel", "Graupel (precipitation-sized ice particles)", "kg/kg"},
	{82, "Cloud Ice Mixing Ratio", "Cloud ice mixing ratio", "kg/kg"},
}

// Discipline 0, Category 2: Momentum parameters
var parameterMomentumEntries = []*Entry{
	{0, "Wind Direction", "Wind direction (from which blowing)", "°"},
	{1, "Wind Speed", "Wind speed", "m/s"},
	{2, "U-Component of Wind", "U-component of wind", "m/s"},
	{3, "V-Component of Wind", "V-component of wind", "m/s"},
	{4, "Stream Function", "Stream function", "m²/s"},
	{5, "Velocity Potential", "Velocity potential", "m²/s"},
	{6, "Montgomery Stream Function", "Montgomery stream function", "m²/s²"},
	{7, "Sigma Vertical Velocity", "Sigma coordinate vertical velocity", "1/s"},
	{8, "Vertical Velocity (Pressure)", "Vertical velocity (pressure)", "Pa/s"},
	{9, "Vertical Velocity (Geometric)", "Vertical velocity (geometric)", "m/s"},
	{10, "Absolute Vorticity", "Absolute vorticity", "1/s"},
	{11, "Absolute Divergence", "Absolute divergence", "1/s"},
	{12, "Relative Vorticity", "Relative vorticity", "1/s"},
	{13, "Relative Divergence", "Relative divergence", "1/s"},
	{14, "Potential Vorticity", "Potential vorticity", "K m²/(kg s)"},
	{15, "Vertical U Shear", "Vertical u-component shear", "1/s"},
	{16, "Vertical V Shear", "Vertical v-component shear", "1/s"},
	{17, "Momentum Flux U", "Momentum flux, u-component", "N/m²"},
	{18, "Momentum Flux V", "Momentum flux, v-component", "N/m²"},
	{19, "Wind Mixing Energy", "Wind mixing energy", "J"},
	{20, "Boundary Layer Dissipation", "Boundary layer dissipation", "W/m²"},
	{21, "Maximum Wind Speed", "Maximum wind speed", "m/s"},
	{22, "Wind Gust", "Wind speed (gust)", "m/s"},
	{23, "U-Component Gust", "U-component of wind (gust)", "m/s"},
	{24, "V-Component Gust", "V-component of wind (gust)", "m/s"},
}

// Discipline 0, Category 3: Mass parameters
var parameterMassEntries = []*Entry{
	{0, "Pressure", "Pressure", "Pa"},
	{1, "Pressure Reduced to MSL", "Pressure reduced to MSL", "Pa"},
	{2, "Pressure Tendency", "Pressure tendency", "Pa/s"},
	{3, "ICAO Standard Atmosphere", "ICAO standard atmosphere reference height", "m"},
	{4, "Geopotential", "Geopotential", "m²/s²"},
	{5, "Geopotential Height", "Geopotential height", "gpm"},
	{6, "Geometric Height", "Geometric height", "m"},
	{7, "Standard Deviation Height", "Standard deviation of height", "m"},
	{8, "Pressure Anomaly", "Pressure anomaly", "Pa"},
	{9, "Geopotential Height Anomaly", "Geopotential height anomaly", "gpm"},
	{10, "Density", "Density", "kg/m³"},
	{11, "Altimeter Setting", "Altimeter setting", "Pa"},
	{12, "Thickness", "Thickness", "m"},
	{13, "Pressure Altitude", "Pressure altitude", "m"},
	{14, "Density Altitude", "Density altitude", "m"},
	{15, "5-Wave Geopotential Height", "5-wave geopotential height", "gpm"},
	{16, "Zonal Flux Gravity Wave Stress", "Zonal flux of gravity wave stress", "N/m²"},
	{17, "Meridional Flux Gravity Wave Stress", "Meridional flux of gravity wave stress", "N/m²"},
	{18, "Planetary Boundary Layer Height", "Planetary boundary layer height", "m"},
	{19, "5-Wave Geopotential Height Anomaly", "5-wave geopotential height anomaly", "gpm"},
	{20, "Standard Deviation Pressure", "Standard deviation of pressure", "Pa"},
}

// Discipline 2, Category 0: Vegetation/Biomass parameters
var parameterLandVegetationEntries = []*Entry{
	{0, "Land Cover", "Land cover (0=sea, 1=land)", "Proportion"},
	{1, "Surface Roughness", "Surface roughness", "m"},
	{2, "Soil Temperature", "Soil temperature", "K"},
	{3, "Soil Moisture Content", "Soil moisture content", "kg/m²"},
	{4, "Vegetation", "Vegetation", "%"},
	{5, "Water Runoff", "Water runoff", "kg/m²"},
	{8, "Surface Albedo", "Surface albedo (visible band)", "%"},
	{192, "Volumetric Soil Moisture Content", "Volumetric soil moisture content", "Fraction"},
}

// Discipline 2, Category 3: Soil parameters
var parameterLandSoilEntries = []*Entry{
	{0, "Soil Type", "Soil type", "Code table 4.213"},
	{1, "Upper Layer Soil Temperature", "Upper layer soil temperature", "K"},
	{2, "Upper Layer Soil Moisture", "Upper layer soil moisture", "kg/m³"},
	{3, "Lower Layer Soil Moisture", "Lower layer soil moisture", "kg/m³"},
	{4, "Bottom Layer Soil Temperature", "Bottom layer soil temperature", "K"},
}

// Discipline 10, Category 0: Wave parameters
var parameterOceanWaveEntries = []*Entry{
	{0, "Wave Spectra (1)", "Wave spectra (1)", "-"},
	{3, "Significant Wave Height", "Significant height of combined wind waves and swell", "m"},
	{4, "Direction of Wind Waves", "Direction of wind waves", "°"},
	{5, "Significant Height of Wind Waves", "Significant height of wind waves", "m"},
	{6, "Mean Period of Wind Waves", "Mean period of wind waves", "s"},
	{7, "Direction of Swell Waves", "Direction of swell waves", "°"},
	{8, "Significant Height of Swell Waves", "Significant height of swell waves", "m"},
	{9, "Mean Period of Swell Waves", "Mean period of swell waves", "s"},
	{10, "Primary Wave Direction", "Primary wave direction", "°"},
	{11, "Primary Wave Mean Period", "Primary wave mean period", "s"},
}

// Discipline 10, Category 3: Surface Properties parameters
var parameterOceanSurfaceEntries = []*Entry{
	{0, "Water Temperature", "Water temperature", "K"},
	{1, "Deviation of Sea Level", "Deviation of sea level from mean", "m"},
}

// Discipline 209, Category 0: NOAA Multi-Radar Multi-Sensor (MRMS) local-use
// products, grounded in the NOAA MRMS local table convention (WMO local table
// range, grib2-local-tables MRMS.csv).
var parameterMRMSReflectivityEntries = []*Entry{
	{0, "Merged Base Reflectivity QC", "Merged base reflectivity quality controlled", "dBZ"},
	{1, "Merged Reflectivity Composite", "Merged reflectivity composite", "dBZ"},
	{2, "Echo Top", "Height of the 18 dBZ echo top", "km"},
	{3, "Reflectivity At Lowest Altitude", "Reflectivity at lowest altitude", "dBZ"},
}

// parameterCategoryTables indexes parameter-number entries by
// (discipline, category), the shape WMO Table 4.2 actually has: the
// flat DisciplineSpecificTable above only reaches Table 4.1 (category
// names), so a second, category-keyed map supplies parameter numbers.
var parameterCategoryTables = map[int]map[int][]*Entry{
	0: {
		0: parameterTemperatureEntries,
		1: parameterMoistureEntries,
		2: parameterMomentumEntries,
		3: parameterMassEntries,
	},
	2: {
		0: parameterLandVegetationEntries,
		3: parameterLandSoilEntries,
	},
	10: {
		0: parameterOceanWaveEntries,
		3: parameterOceanSurfaceEntries,
	},
	209: {
		0: parameterMRMSReflectivityEntries,
	},
}

// parameterOverlayKey identifies a single parameter overlay registration.
type parameterOverlayKey struct {
	Discipline, Category, Number int
}

var (
	parameterOverlayMu sync.RWMutex
	parameterOverlay   = make(map[parameterOverlayKey]*Entry)
)

// RegisterParameter adds or replaces an entry in the runtime-extensible
// parameter overlay. Overlay entries are consulted before the built-in WMO
// tables by GetParameterName and GetParameterUnit, so callers can add local
// or experimental parameters (or patch a built-in entry) without forking
// this package. Safe for concurrent use.
func RegisterParameter(discipline, category, number int, name, unit string) {
	parameterOverlayMu.Lock()
	defer parameterOverlayMu.Unlock()
	parameterOverlay[parameterOverlayKey{discipline, category, number}] = &Entry{
		Code: number,
		Name: name,
		Unit: unit,
	}
}

// lookupParameterOverlay returns the overlay entry for the given triple, or
// nil if nothing has been registered for it.
func lookupParameterOverlay(discipline, category, number int) *Entry {
	parameterOverlayMu.RLock()
	defer parameterOverlayMu.RUnlock()
	return parameterOverlay[parameterOverlayKey{discipline, category, number}]
}

// lookupParameterEntry resolves a (discipline, category, number) triple,
// checking the runtime overlay before the built-in WMO Table 4.2 entries.
func lookupParameterEntry(discipline, category, parameter int) *Entry {
	if entry := lookupParameterOverlay(discipline, category, parameter); entry != nil {
		return entry
	}
	if categories, ok := parameterCategoryTables[discipline]; ok {
		if entries, ok := categories[category]; ok {
			return lookupInEntries(entries, parameter)
		}
	}
	return nil
}

// GetParameterName returns the name for a specific parameter, checking the
// runtime overlay before the built-in WMO Table 4.2 entries. Unknown
// triples resolve to a synthesized "discipline-category-number" label.
func GetParameterName(discipline, category, parameter int) string {
	if entry := lookupParameterEntry(discipline, category, parameter); entry != nil {
		return entry.Name
	}
	return fmt.Sprintf("%d-%d-%d", discipline, category, parameter)
}

// GetParameterUnit returns the unit for a specific parameter. Unknown
// triples resolve to an empty unit.
func GetParameterUnit(discipline, category, parameter int) string {
	if entry := lookupParameterEntry(discipline, category, parameter); entry != nil {
		return entry.Unit
	}
	return ""
}

// Helper function to lookup in entry slices
func lookupInEntries(entries []*Entry, code int) *Entry {
	for _, e := range entries {
		if e.Code == code {
			return e
		}
	}
	return nil
}
