package external

import "encoding/xml"

// IPLocationResponse is the body of ip-api.com GET /xml
type IPLocationResponse struct {
	XMLName    xml.Name `xml:"query"`
	Status     string   `xml:"status"`
	Message    string   `xml:"message"`
	Country    string   `xml:"country"`
	RegionName string   `xml:"regionName"`
	City       string   `xml:"city"`
	Lat        float64  `xml:"lat"`
	Lon        float64  `xml:"lon"`
	Query      string   `xml:"query"`
}
