package service

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way the back office displays money:
// "Rp" plus the whole-rupiah amount with Indonesian digit grouping.
func FormatRupiah(amount float64) string {
	return rupiahPrinter.Sprintf("Rp %d", int64(math.Round(amount)))
}
