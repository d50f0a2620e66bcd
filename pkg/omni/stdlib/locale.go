package stdlib

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func localeTag(args []evaluator.Value, i int) language.Tag {
	tag, err := language.Parse(argString(args, i))
	if err != nil {
		return language.English
	}
	return tag
}

func (l *Library) registerLocale() {
	// Locale.formatNumber(n, locale?) renders a number with the locale's
	// digit grouping, e.g. 1234567.89 -> "1,234,567.89" for en.
	l.register("Locale.formatNumber", func(args []evaluator.Value) evaluator.Value {
		tag := language.English
		if len(args) > 1 {
			tag = localeTag(args, 1)
		}
		printer := message.NewPrinter(tag)
		return &evaluator.String{Value: printer.Sprint(number.Decimal(argDouble(args, 0)))}
	})

	// Locale.formatCurrency(amount, code, locale?) renders an amount with
	// its ISO currency symbol, e.g. (12.5, "USD") -> "USD 12.50".
	l.register("Locale.formatCurrency", func(args []evaluator.Value) evaluator.Value {
		unit, err := currency.ParseISO(argString(args, 1))
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		tag := language.English
		if len(args) > 2 {
			tag = localeTag(args, 2)
		}
		printer := message.NewPrinter(tag)
		return &evaluator.String{Value: printer.Sprint(unit.Amount(argDouble(args, 0)))}
	})
}
