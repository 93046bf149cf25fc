// Package feed turns the text payload of the RFI station-board endpoint into
// train records.
//
// The payload is line oriented. Each line holds one record made of
// "|"-separated key=value fields:
//
//	vettore=TRENITALIA|treno=9412|destinazione=Milano Centrale|orario=14:32|ritardo=7|binario=3
//
// Blank lines and lines starting with "#" are ignored. A key without a value
// ("binario=") is an explicit empty value and differs from a missing key.
// Records need at least the orario and destinazione keys.
//
// Parsing, classification and mapping are pure: they perform no I/O and keep
// no state between calls.
package feed
