package tables

import (
	"fmt"
	"sync"
)

// grib1ParameterEntry is a GRIB1 WMO Table 2 parameter entry: unlike GRIB2's
// discipline/category/number triple, GRIB1 identifies a parameter with a
// single indicatorOfParameter code, scoped to an originating center's
// parameter table version (table2Version).
type grib1ParameterEntry struct {
	Name       string
	Abbrev     string
	Unit       string
}

// grib1ParameterKey identifies one (center, table2Version,
// indicatorOfParameter) parameter entry.
type grib1ParameterKey struct {
	Center               int
	Table2Version        int
	IndicatorOfParameter int
}

// grib1DefaultCenter is used to look up entries seeded against the common
// WMO standard table (version 2), which NCEP (center 7) and most other
// centers share for codes 1-127. Centers running a local table2Version
// should register their own entries via RegisterGRIB1Parameter.
const grib1DefaultCenter = 7

// grib1Parameters seeds WMO Table 2 (table2Version 2) with the codes this
// decoder is most likely to encounter in archived model output.
var grib1Parameters = map[grib1ParameterKey]grib1ParameterEntry{
	{grib1DefaultCenter, 2, 1}:   {"Pressure", "PRES", "Pa"},
	{grib1DefaultCenter, 2, 2}:   {"Pressure Reduced to MSL", "PRMSL", "Pa"},
	{grib1DefaultCenter, 2, 6}:   {"Geopotential", "GP", "m²/s²"},
	{grib1DefaultCenter, 2, 7}:   {"Geopotential Height", "HGT", "gpm"},
	{grib1DefaultCenter, 2, 11}:  {"Temperature", "TMP", "K"},
	{grib1DefaultCenter, 2, 17}:  {"Skin Temperature", "SKINT", "K"},
	{grib1DefaultCenter, 2, 33}:  {"U-Component of Wind", "UGRD", "m/s"},
	{grib1DefaultCenter, 2, 34}:  {"V-Component of Wind", "VGRD", "m/s"},
	{grib1DefaultCenter, 2, 39}:  {"Vertical Velocity (Pressure)", "VVEL", "Pa/s"},
	{grib1DefaultCenter, 2, 52}:  {"Relative Humidity", "RH", "%"},
	{grib1DefaultCenter, 2, 59}:  {"Precipitation Rate", "PRATE", "kg/(m² s)"},
	{grib1DefaultCenter, 2, 61}:  {"Total Precipitation", "APCP", "kg/m²"},
	{grib1DefaultCenter, 2, 65}:  {"Water Equiv of Accumulated Snow", "WEASD", "kg/m²"},
	{grib1DefaultCenter, 2, 66}:  {"Snow Depth", "SNOD", "m"},
	{grib1DefaultCenter, 2, 71}:  {"Total Cloud Cover", "TCDC", "%"},
	{grib1DefaultCenter, 2, 81}:  {"Land Cover", "LAND", "Proportion"},
	{grib1DefaultCenter, 2, 144}: {"Volumetric Soil Moisture Content", "SOILW", "Fraction"},
	{grib1DefaultCenter, 2, 165}: {"10m U-Component of Wind", "10UGRD", "m/s"},
	{grib1DefaultCenter, 2, 166}: {"10m V-Component of Wind", "10VGRD", "m/s"},
	{grib1DefaultCenter, 2, 169}: {"Downward Short-Wave Radiation Flux", "DSWRF", "W/m²"},
}

var (
	grib1ParameterOverlayMu sync.RWMutex
	grib1ParameterOverlay   = make(map[grib1ParameterKey]grib1ParameterEntry)
)

// RegisterGRIB1Parameter adds or replaces an entry in the runtime-extensible
// GRIB1 parameter overlay, keyed by (center, table2Version,
// indicatorOfParameter). Overlay entries are consulted before the built-in
// table by GetGRIB1ParameterName, GetGRIB1ParameterAbbreviation and
// GetGRIB1ParameterUnit, so callers can add center-specific or local-table
// parameters without forking this package. Safe for concurrent use.
func RegisterGRIB1Parameter(center, table2Version, indicatorOfParameter int, name, abbrev, unit string) {
	grib1ParameterOverlayMu.Lock()
	defer grib1ParameterOverlayMu.Unlock()
	grib1ParameterOverlay[grib1ParameterKey{center, table2Version, indicatorOfParameter}] = grib1ParameterEntry{
		Name:   name,
		Abbrev: abbrev,
		Unit:   unit,
	}
}

// lookupGRIB1Parameter resolves a (center, table2Version,
// indicatorOfParameter) triple, checking the runtime overlay, then the
// center's own seeded table, then the shared WMO standard table (version 2
// under the default center) that most centers' low-numbered codes share.
func lookupGRIB1Parameter(center, table2Version, indicatorOfParameter int) (grib1ParameterEntry, bool) {
	key := grib1ParameterKey{center, table2Version, indicatorOfParameter}

	grib1ParameterOverlayMu.RLock()
	entry, ok := grib1ParameterOverlay[key]
	grib1ParameterOverlayMu.RUnlock()
	if ok {
		return entry, true
	}

	if entry, ok := grib1Parameters[key]; ok {
		return entry, true
	}

	if center != grib1DefaultCenter {
		if entry, ok := grib1Parameters[grib1ParameterKey{grib1DefaultCenter, table2Version, indicatorOfParameter}]; ok {
			return entry, true
		}
	}

	return grib1ParameterEntry{}, false
}

// GetGRIB1ParameterName returns the name for a GRIB1 parameter. Unknown
// triples resolve to a synthesized "center-table-indicator" label.
func GetGRIB1ParameterName(center, table2Version, indicatorOfParameter int) string {
	if entry, ok := lookupGRIB1Parameter(center, table2Version, indicatorOfParameter); ok {
		return entry.Name
	}
	return fmt.Sprintf("%d-%d-%d", center, table2Version, indicatorOfParameter)
}

// GetGRIB1ParameterAbbreviation returns the short abbreviation for a GRIB1
// parameter, matching the style GRIB2's ShortName uses. Returns empty string
// if no abbreviation is known.
func GetGRIB1ParameterAbbreviation(center, table2Version, indicatorOfParameter int) string {
	if entry, ok := lookupGRIB1Parameter(center, table2Version, indicatorOfParameter); ok {
		return entry.Abbrev
	}
	return ""
}

// GetGRIB1ParameterUnit returns the unit for a GRIB1 parameter. Unknown
// triples resolve to an empty unit.
func GetGRIB1ParameterUnit(center, table2Version, indicatorOfParameter int) string {
	if entry, ok := lookupGRIB1Parameter(center, table2Version, indicatorOfParameter); ok {
		return entry.Unit
	}
	return ""
}
