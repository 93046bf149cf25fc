package testutil

// Sample board payloads in the RFI monitor line format

// SampleDepartureFeed is a departures board with one on-time, one delayed,
// one departing and one bus replacement entry
const SampleDepartureFeed = `# Milano Centrale - partenze
treno=9547|destinazione=ROMA TERMINI|orario=14:30|binario=7|vettore=TRENITALIA|ritardo=0|categoria=FR
treno=2619|destinazione=VENEZIA S. LUCIA|orario=14:35|binario=12|vettore=TRENITALIA|ritardo=15|categoria=RV
treno=9929|destinazione=NAPOLI CENTRALE|orario=14:40|binario=5|vettore=ITALO|ritardo=0|lampeggio=1|categoria=ITA
treno=10001|destinazione=BERGAMO|orario=14:45|binario=|vettore=TRENORD|ritardo=5|stato=BUS|categoria=BUS
`

// SampleArrivalFeed is an arrivals board with a single entry
const SampleArrivalFeed = `treno=9512|destinazione=TORINO PORTA NUOVA|orario=15:10|binario=9|vettore=TRENITALIA|ritardo=3|categoria=FR
`

// SampleIncompleteFeed holds one record without a train number
const SampleIncompleteFeed = `treno=2088|destinazione=GENOVA P. PRINCIPE|orario=16:00|binario=3|vettore=TRENITALIA|ritardo=0|categoria=IC
destinazione=CHIASSO|orario=16:05|binario=4|vettore=TILO|ritardo=0|categoria=S
`

// SampleEmptyFeed is a board with no trains scheduled
const SampleEmptyFeed = `# nessun treno in partenza
`

// SampleMaintenancePage is what the service returns while it is down
const SampleMaintenancePage = `<!DOCTYPE html>
<html><head><title>Servizio non disponibile</title></head>
<body><h1>Servizio temporaneamente non disponibile</h1></body></html>
`
