// Package operators maps the carrier names found on RFI boards to short
// abbreviations and full company names.
package operators

import "strings"

// Operator is a railway undertaking running trains on the Italian network
type Operator struct {
	Abbr string
	Name string
}

// operatorMap is keyed by normalized carrier name as it appears in the feed
var operatorMap = map[string]*Operator{
	"TRENITALIA":         {Abbr: "TI", Name: "Trenitalia"},
	"TRENITALIA TPER":    {Abbr: "TPER", Name: "Trenitalia Tper"},
	"TPER":               {Abbr: "TPER", Name: "Trenitalia Tper"},
	"TRENORD":            {Abbr: "TN", Name: "Trenord"},
	"ITALO":              {Abbr: "NTV", Name: "Italo - Nuovo Trasporto Viaggiatori"},
	"NTV":                {Abbr: "NTV", Name: "Italo - Nuovo Trasporto Viaggiatori"},
	"TILO":               {Abbr: "TILO", Name: "Treni Regionali Ticino Lombardia"},
	"SAD":                {Abbr: "SAD", Name: "Südtiroler Transportstrukturen"},
	"FUC":                {Abbr: "FUC", Name: "Società Ferrovie Udine Cividale"},
	"FER":                {Abbr: "FER", Name: "Ferrovie Emilia Romagna"},
	"GTT":                {Abbr: "GTT", Name: "Gruppo Torinese Trasporti"},
	"EAV":                {Abbr: "EAV", Name: "Ente Autonomo Volturno"},
	"FAL":                {Abbr: "FAL", Name: "Ferrovie Appulo Lucane"},
	"FSE":                {Abbr: "FSE", Name: "Ferrovie del Sud Est"},
	"ARST":               {Abbr: "ARST", Name: "Azienda Regionale Sarda Trasporti"},
	"TRENTINO TRASPORTI": {Abbr: "TT", Name: "Trentino Trasporti"},
	"FERROVIENORD":       {Abbr: "FN", Name: "FERROVIENORD"},
	"FNM":                {Abbr: "FN", Name: "FERROVIENORD"},
	"ARENAWAYS":          {Abbr: "AW", Name: "Arenaways"},
	"SBB":                {Abbr: "SBB", Name: "Schweizerische Bundesbahnen"},
	"FFS":                {Abbr: "SBB", Name: "Schweizerische Bundesbahnen"},
	"OBB":                {Abbr: "ÖBB", Name: "Österreichische Bundesbahnen"},
	"ÖBB":                {Abbr: "ÖBB", Name: "Österreichische Bundesbahnen"},
	"DB":                 {Abbr: "DB", Name: "DB Fernverkehr AG"},
	"SNCF":               {Abbr: "SNCF", Name: "SNCF Voyageurs"},
}

// normalize upper-cases the carrier and collapses inner whitespace
func normalize(carrier string) string {
	return strings.Join(strings.Fields(strings.ToUpper(carrier)), " ")
}

// GetOperator returns the operator for a carrier name, or nil if unknown
func GetOperator(carrier string) *Operator {
	return operatorMap[normalize(carrier)]
}

// GetOperatorAbbr returns the abbreviation for a carrier, or "" if unknown
func GetOperatorAbbr(carrier string) string {
	if op := GetOperator(carrier); op != nil {
		return op.Abbr
	}
	return ""
}

// GetOperatorName returns the full name for a carrier, or "" if unknown
func GetOperatorName(carrier string) string {
	if op := GetOperator(carrier); op != nil {
		return op.Name
	}
	return ""
}

// Label returns the abbreviation for known carriers and the carrier name
// itself otherwise
func Label(carrier string) string {
	if abbr := GetOperatorAbbr(carrier); abbr != "" {
		return abbr
	}
	return strings.TrimSpace(carrier)
}
