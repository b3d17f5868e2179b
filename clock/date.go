package clock

import (
	"strconv"
	"strings"
	"time"
)

func (w *Widget) renderDate(date time.Time, format DateFormat) {
	lang := w.tr.Lang()
	day := strconv.Itoa(date.Day())
	if strings.Contains(lang, "zh") || strings.Contains(lang, "jp") {
		day += "日"
	}
	weekday := w.tr.Trad(date.Weekday().String())
	month := w.tr.Trad(date.Month().String())

	dom := w.Surface.El("date")
	dom.RemoveClass(string(DateEU), string(DateUS), string(DateCN))
	dom.AddClass(string(format))

	aa, bb, cc := w.Surface.El("date-aa"), w.Surface.El("date-bb"), w.Surface.El("date-cc")
	switch format {
	case DateEU:
		aa.SetText(weekday)
		bb.SetText(day)
		cc.SetText(month)
	case DateUS:
		aa.SetText(weekday)
		bb.SetText(month)
		cc.SetText(day)
	case DateCN:
		aa.SetText(month)
		bb.SetText(day)
		cc.SetText(weekday)
	}
}
