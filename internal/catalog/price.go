package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders grouped digits for the en-US locale ("1,234").
var printer = message.NewPrinter(language.AmericanEnglish)

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"AUD": "A$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"KRW": "₩",
	"MXN": "MX$",
}

// Currencies whose minor unit is the whole unit.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
}

// FormatPrice renders an amount of minor currency units as an en-US display
// string, e.g. 850 USD cents -> "$8.50". A nil amount formats as zero. The
// currency defaults to USD. Always returns a string; never fails.
func FormatPrice(amount *int64, code string) string {
	var cents int64
	if amount != nil {
		cents = *amount
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}

	symbol, ok := currencySymbols[code]
	if !ok {
		// Unknown or non-ISO codes fall back to a code prefix.
		if unit, err := currency.ParseISO(code); err == nil {
			symbol = unit.String() + " "
		} else {
			symbol = code + " "
		}
	}

	negative := cents < 0
	if negative {
		cents = -cents
	}

	var formatted string
	if zeroDecimal[code] {
		formatted = symbol + printer.Sprintf("%d", (cents+50)/100)
	} else {
		formatted = symbol + printer.Sprintf("%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
	}
	if negative {
		return "-" + formatted
	}
	return formatted
}
