package stdlib

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

// patternToLayout converts the Java-style dd/MM/yyyy HH:mm:ss patterns the
// language uses into a Go time layout.
func patternToLayout(pattern string) string {
	replacer := strings.NewReplacer(
		"yyyy", "2006",
		"MMMM", "January",
		"MMM", "Jan",
		"MM", "01",
		"EEEE", "Monday",
		"EEE", "Mon",
		"dd", "02",
		"HH", "15",
		"mm", "04",
		"ss", "05",
	)
	return replacer.Replace(pattern)
}

// localeFor maps a locale tag like "en_US" or "fr_FR" to a monday locale,
// defaulting to US English.
func localeFor(tag string) monday.Locale {
	for _, loc := range monday.ListLocales() {
		if string(loc) == tag {
			return loc
		}
	}
	return monday.LocaleEnUS
}

func (l *Library) registerDatetime() {
	l.register("Date.now", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: time.Now().Unix()}
	})

	// Date.format(timestamp, pattern?, locale?) renders a Unix timestamp;
	// month and day names follow the requested locale.
	l.register("Date.format", func(args []evaluator.Value) evaluator.Value {
		ts := time.Unix(argInt(args, 0), 0)
		pattern := "dd/MM/yyyy"
		if len(args) > 1 {
			pattern = argString(args, 1)
		}
		var locale monday.Locale = monday.LocaleEnUS
		if len(args) > 2 {
			locale = localeFor(argString(args, 2))
		}
		return &evaluator.String{Value: monday.Format(ts, patternToLayout(pattern), locale)}
	})

	// Date.parse(text, pattern?) parses dd/MM/yyyy by default and falls back
	// to lenient parsing for anything else. Returns a Unix timestamp, 0 on
	// failure.
	l.register("Date.parse", func(args []evaluator.Value) evaluator.Value {
		text := argString(args, 0)
		pattern := "dd/MM/yyyy"
		if len(args) > 1 {
			pattern = argString(args, 1)
		}

		if ts, ok := parseWithPattern(text, pattern); ok {
			return &evaluator.Int{Value: ts}
		}
		if t, err := dateparse.ParseLocal(text); err == nil {
			return &evaluator.Int{Value: t.Unix()}
		}
		return &evaluator.Int{Value: 0}
	})

	l.register("Date.before", func(args []evaluator.Value) evaluator.Value {
		return boolValue(argInt(args, 0) < argInt(args, 1))
	})

	l.register("Date.after", func(args []evaluator.Value) evaluator.Value {
		return boolValue(argInt(args, 0) > argInt(args, 1))
	})

	l.register("Date.year", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(time.Unix(argInt(args, 0), 0).Year())}
	})

	l.register("Date.month", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(time.Unix(argInt(args, 0), 0).Month())}
	})

	l.register("Date.day", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(time.Unix(argInt(args, 0), 0).Day())}
	})
}

func parseWithPattern(text, pattern string) (int64, bool) {
	if pattern == "dd/MM/yyyy" && len(text) >= 10 {
		day, err1 := strconv.Atoi(text[0:2])
		month, err2 := strconv.Atoi(text[3:5])
		year, err3 := strconv.Atoi(text[6:10])
		if err1 == nil && err2 == nil && err3 == nil {
			t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
			return t.Unix(), true
		}
		return 0, false
	}
	if t, err := time.ParseInLocation(patternToLayout(pattern), text, time.Local); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
