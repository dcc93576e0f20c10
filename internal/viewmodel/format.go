package viewmodel

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands separators, e.g. $2,450,000
func FormatMoney(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-$%d", -amount)
	}
	return printer.Sprintf("$%d", amount)
}

// FormatCount renders an integer with thousands separators
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPlaytime renders whole hours, e.g. "156 h"
func FormatPlaytime(hours int) string {
	return printer.Sprintf("%d h", hours)
}
