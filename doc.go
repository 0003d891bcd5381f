/*
ARFCN converts cellular channel numbers into the bands and carrier frequencies
they identify, for GSM, WCDMA, TD-SCDMA, LTE and NR.

	arfcn [flags] CHANNEL...

Each channel may match several bands, one line is printed per match:

	$ arfcn -tech lte 1300
	{LTE:1300 {Band:3 Downlink:1815.000 Uplink:1720.000}}

	$ arfcn -tech gsm 62
	{GSM:62 {Band:E-GSM 900 Downlink:947.400 Uplink:902.400}}
	{GSM:62 {Band:R-GSM 900 Downlink:947.400 Uplink:902.400}}
	{GSM:62 {Band:P-GSM 900 Downlink:947.400 Uplink:902.400}}

Directions a band lacks print as N/A in plain output and -1 in csv, json and
xml output. Channels that match no band print nothing.

Command-line Flags:

	-tech=lte

Radio access technology of the given channels: gsm, wcdma (umts), tdscdma,
lte (eutra) or nr (5g).

	-format=plain

Output format: plain, csv, json or xml. Records have the fields below, csv
output starts with a header row naming them:

	Channel, Technology, Band, Downlink, Uplink

	-list=false

Print the band table of the selected technology instead of converting
channels. Each row gives the band, its channel range and the carriers at both
ends of the range.

	-tune=false

Connect to an rtl_tcp server (see -server) and tune to the downlink carrier of
the first match. Any rtltcp flags given, such as -samplerate or -tunergain,
are applied after tuning. The receiver stays tuned until interrupted or
-duration elapses, dumping samples to -samplefile.

	-samplefile=/dev/null

File to dump raw interleaved 8-bit IQ samples to while tuned.

	-duration=0

Time to stay tuned for, 0 for infinite.

	-loglevel=info

One of debug, info, warn or error. Logs go to stderr.

Every flag may also be set through an environment variable named ARFCN_
followed by the upper case flag name, for example ARFCN_TECH=nr.
*/
package main
