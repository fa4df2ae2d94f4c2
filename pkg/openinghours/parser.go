/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package openinghours

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator joins a rule to the rule before it.
type Separator string

const (
	SeparatorNone       Separator = ""
	SeparatorNormal     Separator = ";"
	SeparatorAdditional Separator = ","
	SeparatorFallback   Separator = "||"
)

// Range is an inclusive numeric range with an optional step.
type Range struct {
	From int
	To   int
	Step int
}

// MonthRange selects months, or dates when the day fields are set.
type MonthRange struct {
	FromMonth int
	FromDay   int
	ToMonth   int
	ToDay     int
}

// WeekdayRange selects a contiguous (possibly wrapping) run of weekdays.
type WeekdayRange struct {
	From string
	To   string
	Nth  []Range
}

// Time is a clock time or a solar event with an offset in minutes.
type Time struct {
	Hour   int
	Minute int
	Event  string
	Offset int
}

// IsClock reports whether t is a fixed clock time.
func (t Time) IsClock() bool { return t.Event == "" }

// TimeSpan is a start time with an optional end.
type TimeSpan struct {
	Start   Time
	End     *Time
	OpenEnd bool
}

// Rule is one rule sequence of an expression.
type Rule struct {
	Separator  Separator
	AlwaysOpen bool
	Years      []Range
	Months     []MonthRange
	Weeks      []Range
	Weekdays   []WeekdayRange
	Holidays   []string
	Times      []TimeSpan
	Modifier   string
	Comment    string
}

// Expression is a parsed opening_hours value.
type Expression struct {
	Source   string
	Rules    []Rule
	Warnings []string
}

var (
	weekdayNames  = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	holidayNames  = []string{"PH", "SH"}
	monthNames    = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	eventNames    = []string{"sunrise", "sunset", "dawn", "dusk"}
	modifierNames = []string{"open", "closed", "off", "unknown"}
)

// Parse parses expr and collects advisory warnings.
func Parse(expr string) (*Expression, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, syntaxErrorf(0, "empty expression")
	}

	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks, seen: make(map[string]bool)}
	out := &Expression{Source: expr}
	sep := SeparatorNone

	for {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rule.Separator = sep
		out.Rules = append(out.Rules, rule)

		t := p.next()
		switch {
		case t.kind == tokEOF:
			out.Warnings = p.warnings
			return out, nil
		case p.isPunct(t, ";"):
			sep = SeparatorNormal
		case p.isPunct(t, ","):
			sep = SeparatorAdditional
		case p.isPunct(t, "||"):
			sep = SeparatorFallback
		default:
			return nil, p.unexpected(t)
		}

		if p.peek().kind == tokEOF {
			p.warnf("Expression ends with a trailing '%s'.", sep)
			out.Warnings = p.warnings
			return out, nil
		}
	}
}

// Checker validates opening_hours values for the dataset validator.
type Checker struct{}

// Check parses expr and returns its advisory warnings.
func (Checker) Check(expr string) ([]string, error) {
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return e.Warnings, nil
}

type parser struct {
	toks     []token
	pos      int
	warnings []string
	seen     map[string]bool
}

func (p *parser) peek() token { return p.peekAt(0) }

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isPunct(t token, s string) bool {
	return t.kind == tokPunct && t.text == s
}

func (p *parser) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.seen[msg] {
		return
	}
	p.seen[msg] = true
	p.warnings = append(p.warnings, msg)
}

func (p *parser) unexpected(t token) error {
	if t.kind == tokWord && !knownWord(t.text) {
		return syntaxErrorf(t.pos, "unknown word %s", t)
	}
	return syntaxErrorf(t.pos, "unexpected %s", t)
}

func (p *parser) expect(s string) error {
	t := p.next()
	if !p.isPunct(t, s) {
		return syntaxErrorf(t.pos, "expected '%s', got %s", s, t)
	}
	return nil
}

func (p *parser) expectNumber() (int, token, error) {
	t := p.next()
	if t.kind != tokNumber {
		return 0, t, syntaxErrorf(t.pos, "expected number, got %s", t)
	}
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, t, syntaxErrorf(t.pos, "invalid number %s", t)
	}
	return n, t, nil
}

// canonical looks word up in table, ignoring case, and warns when the
// spelling differs from the canonical one.
func (p *parser) canonical(t token, table []string, what string) (string, int, bool) {
	if t.kind != tokWord {
		return "", -1, false
	}
	c, idx, ok := lookup(table, t.text)
	if ok && c != t.text {
		p.warnf("%s '%s' should be written as '%s'.", what, t.text, c)
	}
	return c, idx, ok
}

func lookup(table []string, word string) (string, int, bool) {
	for i, c := range table {
		if strings.EqualFold(c, word) {
			return c, i, true
		}
	}
	return "", -1, false
}

func inTable(t token, tables ...[]string) bool {
	if t.kind != tokWord {
		return false
	}
	for _, table := range tables {
		if _, _, ok := lookup(table, t.text); ok {
			return true
		}
	}
	return false
}

func knownWord(w string) bool {
	if strings.EqualFold(w, "week") {
		return true
	}
	for _, table := range [][]string{weekdayNames, holidayNames, monthNames, eventNames, modifierNames} {
		if _, _, ok := lookup(table, w); ok {
			return true
		}
	}
	return false
}

func (p *parser) parseRule() (Rule, error) {
	var r Rule
	start := p.pos

	if p.atAlwaysOpen() {
		p.pos += 3
		r.AlwaysOpen = true
	} else {
		if err := p.parseWideRange(&r); err != nil {
			return r, err
		}
		if err := p.parseSmallRange(&r); err != nil {
			return r, err
		}
	}

	if t := p.peek(); t.kind == tokWord {
		m, _, ok := p.canonical(t, modifierNames, "Modifier")
		if !ok {
			return r, p.unexpected(t)
		}
		p.next()
		r.Modifier = m
	}

	if t := p.peek(); t.kind == tokComment {
		p.next()
		r.Comment = t.text
	}

	if p.pos == start {
		t := p.peek()
		if t.kind == tokEOF || p.isPunct(t, ";") || p.isPunct(t, ",") || p.isPunct(t, "||") {
			return r, syntaxErrorf(t.pos, "empty rule")
		}
		return r, p.unexpected(t)
	}

	p.checkRule(r)
	return r, nil
}

func (p *parser) checkRule(r Rule) {
	if len(r.Times) != 1 || len(r.Holidays) > 0 ||
		len(r.Months) > 0 || len(r.Weeks) > 0 || len(r.Years) > 0 {
		return
	}
	if len(r.Weekdays) > 0 && !coversWeek(r.Weekdays) {
		return
	}
	span := r.Times[0]
	if span.End == nil || !span.Start.IsClock() || !span.End.IsClock() {
		return
	}
	if span.Start.Hour == 0 && span.Start.Minute == 0 && span.End.Hour == 24 && span.End.Minute == 0 {
		p.warnf("Use '24/7' instead of '00:00-24:00'.")
	}
}

// coversWeek reports whether the selectors pick every day of every week.
func coversWeek(ranges []WeekdayRange) bool {
	var seen [7]bool
	for _, wr := range ranges {
		if len(wr.Nth) > 0 {
			continue
		}
		from, to := weekdayIndex(wr.From), weekdayIndex(wr.To)
		if from < 0 || to < 0 {
			continue
		}
		for i := from; ; i = (i + 1) % len(weekdayNames) {
			seen[i] = true
			if i == to {
				break
			}
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}

func weekdayIndex(name string) int {
	for i, w := range weekdayNames {
		if w == name {
			return i
		}
	}
	return -1
}

func (p *parser) atAlwaysOpen() bool {
	a, b, c := p.peekAt(0), p.peekAt(1), p.peekAt(2)
	return a.kind == tokNumber && a.text == "24" && p.isPunct(b, "/") && c.kind == tokNumber && c.text == "7"
}

func (p *parser) parseWideRange(r *Rule) error {
	var err error
	if p.atYear(0) {
		if r.Years, err = p.parseYears(); err != nil {
			return err
		}
	}
	if inTable(p.peek(), monthNames) {
		if r.Months, err = p.parseMonths(); err != nil {
			return err
		}
	}
	if t := p.peek(); t.kind == tokWord && strings.EqualFold(t.text, "week") {
		if r.Weeks, err = p.parseWeeks(); err != nil {
			return err
		}
	}
	if len(r.Years)+len(r.Months)+len(r.Weeks) > 0 && p.isPunct(p.peek(), ":") {
		p.next()
	}
	return nil
}

func (p *parser) atYear(n int) bool {
	t := p.peekAt(n)
	return t.kind == tokNumber && len(t.text) == 4 && !p.isPunct(p.peekAt(n+1), ":")
}

func (p *parser) atDay(n int) bool {
	t := p.peekAt(n)
	return t.kind == tokNumber && len(t.text) <= 2 && !p.isPunct(p.peekAt(n+1), ":")
}

func (p *parser) parseYears() ([]Range, error) {
	var out []Range
	for {
		y, t, err := p.expectNumber()
		if err != nil {
			return nil, err
		}
		if y < 1900 {
			return nil, syntaxErrorf(t.pos, "invalid year %s", t)
		}
		rg := Range{From: y, To: y}

		if p.isPunct(p.peek(), "-") {
			p.next()
			if !p.atYear(0) {
				return nil, syntaxErrorf(p.peek().pos, "expected year, got %s", p.peek())
			}
			to, t2, _ := p.expectNumber()
			if to < y {
				return nil, syntaxErrorf(t2.pos, "year range ends before it starts")
			}
			rg.To = to
		}
		if p.isPunct(p.peek(), "/") {
			p.next()
			step, _, err := p.expectNumber()
			if err != nil {
				return nil, err
			}
			rg.Step = step
		}
		out = append(out, rg)

		if p.isPunct(p.peek(), ",") && p.atYear(1) {
			p.next()
			continue
		}
		return out, nil
	}
}

func (p *parser) parseMonth() (int, error) {
	t := p.next()
	_, idx, ok := p.canonical(t, monthNames, "Month")
	if !ok {
		return 0, syntaxErrorf(t.pos, "expected month, got %s", t)
	}
	return idx + 1, nil
}

func (p *parser) parseDay() (int, error) {
	d, t, err := p.expectNumber()
	if err != nil {
		return 0, err
	}
	if d < 1 || d > 31 {
		return 0, syntaxErrorf(t.pos, "invalid day of month %s", t)
	}
	return d, nil
}

func (p *parser) parseMonths() ([]MonthRange, error) {
	var out []MonthRange
	for {
		var mr MonthRange
		start := p.peek()

		m, err := p.parseMonth()
		if err != nil {
			return nil, err
		}
		mr.FromMonth = m
		if p.atDay(0) {
			if mr.FromDay, err = p.parseDay(); err != nil {
				return nil, err
			}
		}
		mr.ToMonth, mr.ToDay = mr.FromMonth, mr.FromDay

		if p.isPunct(p.peek(), "-") {
			switch {
			case inTable(p.peekAt(1), monthNames):
				p.next()
				if mr.ToMonth, err = p.parseMonth(); err != nil {
					return nil, err
				}
				mr.ToDay = 0
				if p.atDay(0) {
					if mr.ToDay, err = p.parseDay(); err != nil {
						return nil, err
					}
				}
				if (mr.FromDay == 0) != (mr.ToDay == 0) {
					return nil, syntaxErrorf(start.pos, "date range mixes months and days")
				}
			case mr.FromDay > 0 && p.atDay(1):
				p.next()
				if mr.ToDay, err = p.parseDay(); err != nil {
					return nil, err
				}
				if mr.ToDay < mr.FromDay {
					return nil, syntaxErrorf(start.pos, "day range ends before it starts")
				}
			}
		}
		out = append(out, mr)

		if p.isPunct(p.peek(), ",") && inTable(p.peekAt(1), monthNames) {
			p.next()
			continue
		}
		return out, nil
	}
}

func (p *parser) parseWeeks() ([]Range, error) {
	kw := p.next()
	if kw.text != "week" {
		p.warnf("Keyword '%s' should be written as 'week'.", kw.text)
	}

	var out []Range
	for {
		from, t, err := p.expectNumber()
		if err != nil {
			return nil, err
		}
		if from < 1 || from > 53 {
			return nil, syntaxErrorf(t.pos, "invalid week number %s", t)
		}
		rg := Range{From: from, To: from}

		if p.isPunct(p.peek(), "-") {
			p.next()
			to, t2, err := p.expectNumber()
			if err != nil {
				return nil, err
			}
			if to < from || to > 53 {
				return nil, syntaxErrorf(t2.pos, "invalid week range end %s", t2)
			}
			rg.To = to
		}
		if p.isPunct(p.peek(), "/") {
			p.next()
			step, _, err := p.expectNumber()
			if err != nil {
				return nil, err
			}
			rg.Step = step
		}
		out = append(out, rg)

		if p.isPunct(p.peek(), ",") && p.peekAt(1).kind == tokNumber && !p.isPunct(p.peekAt(2), ":") {
			p.next()
			continue
		}
		return out, nil
	}
}

func (p *parser) parseSmallRange(r *Rule) error {
	if inTable(p.peek(), weekdayNames, holidayNames) {
		if err := p.parseWeekdays(r); err != nil {
			return err
		}
	}
	if p.atTime(0) {
		times, err := p.parseTimes()
		if err != nil {
			return err
		}
		r.Times = times
	}
	return nil
}

func (p *parser) parseWeekdays(r *Rule) error {
	selected := make(map[int]bool)
	for {
		t := p.next()
		if h, _, ok := p.canonical(t, holidayNames, "Holiday"); ok {
			r.Holidays = append(r.Holidays, h)
		} else {
			from, fi, ok := p.canonical(t, weekdayNames, "Weekday")
			if !ok {
				return syntaxErrorf(t.pos, "expected weekday, got %s", t)
			}
			wr := WeekdayRange{From: from, To: from}
			ti := fi

			if p.isPunct(p.peek(), "[") {
				nth, err := p.parseNth()
				if err != nil {
					return err
				}
				wr.Nth = nth
			}
			if p.isPunct(p.peek(), "-") && inTable(p.peekAt(1), weekdayNames) {
				p.next()
				wr.To, ti, _ = p.canonical(p.next(), weekdayNames, "Weekday")
			}

			if len(wr.Nth) == 0 {
				for i := fi; ; i = (i + 1) % len(weekdayNames) {
					if selected[i] {
						p.warnf("Weekday '%s' is selected more than once.", weekdayNames[i])
					}
					selected[i] = true
					if i == ti {
						break
					}
				}
			}
			r.Weekdays = append(r.Weekdays, wr)
		}

		if p.isPunct(p.peek(), ",") && inTable(p.peekAt(1), weekdayNames, holidayNames) {
			p.next()
			continue
		}
		return nil
	}
}

func (p *parser) parseNth() ([]Range, error) {
	if err := p.expect("["); err != nil {
		return nil, err
	}

	var out []Range
	for {
		neg := false
		if p.isPunct(p.peek(), "-") {
			p.next()
			neg = true
		}
		n, t, err := p.expectNumber()
		if err != nil {
			return nil, err
		}
		if n < 1 || n > 5 {
			return nil, syntaxErrorf(t.pos, "invalid nth weekday %s", t)
		}
		rg := Range{From: n, To: n}
		if neg {
			rg = Range{From: -n, To: -n}
		} else if p.isPunct(p.peek(), "-") && p.peekAt(1).kind == tokNumber {
			p.next()
			to, t2, _ := p.expectNumber()
			if to < n || to > 5 {
				return nil, syntaxErrorf(t2.pos, "invalid nth weekday range end %s", t2)
			}
			rg.To = to
		}
		out = append(out, rg)

		if p.isPunct(p.peek(), ",") {
			p.next()
			continue
		}
		break
	}

	if err := p.expect("]"); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *parser) atTime(n int) bool {
	t := p.peekAt(n)
	switch {
	case t.kind == tokNumber:
		return p.isPunct(p.peekAt(n+1), ":")
	case t.kind == tokWord:
		return inTable(t, eventNames)
	default:
		return p.isPunct(t, "(") && inTable(p.peekAt(n+1), eventNames)
	}
}

func (p *parser) parseTimes() ([]TimeSpan, error) {
	var out []TimeSpan
	for {
		start, err := p.parseTime()
		if err != nil {
			return nil, err
		}
		span := TimeSpan{Start: start}

		switch {
		case p.isPunct(p.peek(), "-"):
			p.next()
			end, err := p.parseTime()
			if err != nil {
				return nil, err
			}
			span.End = &end
			if p.isPunct(p.peek(), "+") {
				p.next()
				span.OpenEnd = true
			}
		case p.isPunct(p.peek(), "+"):
			p.next()
			span.OpenEnd = true
		}
		out = append(out, span)

		if p.isPunct(p.peek(), ",") && p.atTime(1) {
			p.next()
			continue
		}
		return out, nil
	}
}

func (p *parser) parseTime() (Time, error) {
	t := p.peek()
	switch {
	case t.kind == tokNumber:
		return p.parseClock()
	case t.kind == tokWord:
		ev, _, ok := p.canonical(t, eventNames, "Event")
		if !ok {
			return Time{}, syntaxErrorf(t.pos, "expected time, got %s", t)
		}
		p.next()
		return Time{Event: ev}, nil
	case p.isPunct(t, "("):
		p.next()
		evTok := p.next()
		ev, _, ok := p.canonical(evTok, eventNames, "Event")
		if !ok {
			return Time{}, syntaxErrorf(evTok.pos, "expected sunrise, sunset, dawn or dusk, got %s", evTok)
		}
		sign := p.next()
		if !p.isPunct(sign, "+") && !p.isPunct(sign, "-") {
			return Time{}, syntaxErrorf(sign.pos, "expected '+' or '-', got %s", sign)
		}
		off, err := p.parseClock()
		if err != nil {
			return Time{}, err
		}
		if err := p.expect(")"); err != nil {
			return Time{}, err
		}
		offset := off.Hour*60 + off.Minute
		if sign.text == "-" {
			offset = -offset
		}
		return Time{Event: ev, Offset: offset}, nil
	default:
		return Time{}, syntaxErrorf(t.pos, "expected time, got %s", t)
	}
}

func (p *parser) parseClock() (Time, error) {
	h := p.next()
	if h.kind != tokNumber || len(h.text) > 2 {
		return Time{}, syntaxErrorf(h.pos, "invalid hour %s", h)
	}
	if err := p.expect(":"); err != nil {
		return Time{}, err
	}
	m := p.next()
	if m.kind != tokNumber || len(m.text) != 2 {
		return Time{}, syntaxErrorf(m.pos, "invalid minutes %s", m)
	}

	hour, _ := strconv.Atoi(h.text)
	minute, _ := strconv.Atoi(m.text)
	if minute > 59 {
		return Time{}, syntaxErrorf(m.pos, "invalid minutes %s", m)
	}
	if hour > 48 {
		return Time{}, syntaxErrorf(h.pos, "invalid hour %s", h)
	}

	written := h.text + ":" + m.text
	if len(h.text) == 1 {
		p.warnf("Time '%s' should use two-digit hours: '%02d:%s'.", written, hour, m.text)
	}
	if hour > 24 || (hour == 24 && minute > 0) {
		p.warnf("Time '%s' is past midnight, write it as '%02d:%s' on the following day.", written, hour-24, m.text)
	}
	return Time{Hour: hour, Minute: minute}, nil
}
