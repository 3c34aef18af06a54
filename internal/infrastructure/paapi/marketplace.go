package paapi

import (
	"fmt"
	"strings"
)

// Marketplace describes where a country's Product Advertising API lives
type Marketplace struct {
	Country string // amazon domain suffix, e.g. "co.jp"
	Host    string
	Region  string
	Domain  string // value sent as Marketplace in request bodies
}

// host and signing region per amazon domain suffix
var marketplaces = map[string][2]string{
	"com":    {"webservices.amazon.com", "us-east-1"},
	"ca":     {"webservices.amazon.ca", "us-east-1"},
	"com.mx": {"webservices.amazon.com.mx", "us-east-1"},
	"com.br": {"webservices.amazon.com.br", "us-east-1"},
	"co.uk":  {"webservices.amazon.co.uk", "eu-west-1"},
	"de":     {"webservices.amazon.de", "eu-west-1"},
	"fr":     {"webservices.amazon.fr", "eu-west-1"},
	"it":     {"webservices.amazon.it", "eu-west-1"},
	"es":     {"webservices.amazon.es", "eu-west-1"},
	"nl":     {"webservices.amazon.nl", "eu-west-1"},
	"be":     {"webservices.amazon.com.be", "eu-west-1"},
	"se":     {"webservices.amazon.se", "eu-west-1"},
	"pl":     {"webservices.amazon.pl", "eu-west-1"},
	"com.tr": {"webservices.amazon.com.tr", "eu-west-1"},
	"ae":     {"webservices.amazon.ae", "eu-west-1"},
	"sa":     {"webservices.amazon.sa", "eu-west-1"},
	"eg":     {"webservices.amazon.eg", "eu-west-1"},
	"in":     {"webservices.amazon.in", "eu-west-1"},
	"co.jp":  {"webservices.amazon.co.jp", "us-west-2"},
	"sg":     {"webservices.amazon.sg", "us-west-2"},
	"com.au": {"webservices.amazon.com.au", "us-west-2"},
}

// LookupMarketplace resolves a country code such as "co.jp" or "com"
func LookupMarketplace(country string) (Marketplace, error) {
	country = strings.ToLower(strings.TrimSpace(country))
	country = strings.TrimPrefix(country, ".")

	entry, ok := marketplaces[country]
	if !ok {
		return Marketplace{}, fmt.Errorf("unsupported marketplace country %q", country)
	}

	return Marketplace{
		Country: country,
		Host:    entry[0],
		Region:  entry[1],
		Domain:  "www." + strings.TrimPrefix(entry[0], "webservices."),
	}, nil
}
