package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "Gs. "

// German grouping uses "." from the first thousand, which is the guaraní
// convention the cards display.
var amountPrinter = message.NewPrinter(language.German)

// FormatGs formats an integer amount of guaraníes, e.g. "Gs. 1.250.000".
func FormatGs(amount int) string {
	return currencyPrefix + amountPrinter.Sprintf("%d", amount)
}

// FormatCount groups a plain counter without a currency prefix.
func FormatCount(n int) string {
	return amountPrinter.Sprintf("%d", n)
}
