package feed

import "strings"

// Service holds the icon code and display name of a service type
type Service struct {
	Icon string
	Name string
}

// services maps feed category codes to service types
var services = map[string]Service{
	"FR":      {"FR", "Frecciarossa"},
	"FA":      {"FA", "Frecciargento"},
	"FB":      {"FB", "Frecciabianca"},
	"IC":      {"IC", "Intercity"},
	"ICN":     {"ICN", "Intercity Notte"},
	"EC":      {"EC", "EuroCity"},
	"EN":      {"EN", "EuroNight"},
	"ES":      {"FR", "Frecciarossa"},
	"RV":      {"RV", "Regionale Veloce"},
	"REG":     {"REG", "Regionale"},
	"R":       {"REG", "Regionale"},
	"IR":      {"REG", "Regionale"},
	"ITA":     {"ITA", "Italo"},
	"ITALO":   {"ITA", "Italo"},
	"NTV":     {"ITA", "Italo"},
	"S":       {"S", "Suburbano"},
	"SFM":     {"S", "Suburbano"},
	"MET":     {"MET", "Metropolitano"},
	"BUS":     {"BUS", "Bus"},
	"AUTOBUS": {"BUS", "Bus"},
}

// IconFor returns the icon code for a feed category, or false when the
// category is not a known service type
func IconFor(category string) (string, bool) {
	s, ok := services[strings.ToUpper(strings.TrimSpace(category))]
	return s.Icon, ok
}

// ServiceName returns the display name for an icon or category code
func ServiceName(code string) string {
	return services[strings.ToUpper(strings.TrimSpace(code))].Name
}
