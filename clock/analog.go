package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HandAngles returns the hour, minute and second hand rotations in degrees,
// each formatted with one decimal.
func HandAngles(date time.Time) (hour, minute, second string) {
	h, m, s := float64(date.Hour()), float64(date.Minute()), float64(date.Second())
	minute = strconv.FormatFloat((m+s/60)*6, 'f', 1, 64)
	hour = strconv.FormatFloat((float64(int(h)%12)+m/60)*30, 'f', 1, 64)
	second = strconv.FormatFloat(s*6, 'f', 1, 64)
	return hour, minute, second
}

func (w *Widget) analog(date time.Time, seconds bool) {
	h, m, s := HandAngles(date)
	w.Surface.El("analog-hours").SetStyle("--deg", h+"deg")
	w.Surface.El("analog-minutes").SetStyle("--deg", m+"deg")
	if !seconds {
		return
	}
	w.Surface.El("analog-seconds").SetStyle("--deg", s+"deg")
}

// faceNumerals returns the 12, 3, 6 and 9 o'clock numerals for lang.
func faceNumerals(lang string) [4]string {
	switch {
	case lang == "am":
		return [4]string{"Գ", "Զ", "Թ", "ԺԲ"}
	case lang == "ar":
		return [4]string{"٣", "٦", "٩", "١٢"}
	case lang == "fa":
		return [4]string{"۳", "۶", "۹", "۱۲"}
	case strings.Contains(lang, "zh_CN"), strings.Contains(lang, "zh_HK"), strings.Contains(lang, "jp"):
		return [4]string{"三", "六", "九", "十二"}
	}
	return [4]string{"12", "3", "6", "9"}
}

func faceGlyphs(face, lang string) [4]string {
	switch face {
	case "roman":
		return [4]string{"XII", "III", "VI", "IX"}
	case "marks":
		return [4]string{"│", "―", "│", "―"}
	case "number":
		return faceNumerals(lang)
	}
	return [4]string{}
}

func rgba(c Color) string {
	return fmt.Sprintf("rgba(%s, %s)", c.RGB, formatFloat(c.Alpha))
}

// analogStyle writes the face, hands, shape and colours. A nil style renders
// the default.
func (w *Widget) analogStyle(style *AnalogStyle) {
	st := DefaultAnalogStyle()
	if style != nil {
		st = *style
	}
	w.style = st

	el := w.Surface.El("analog")
	for i, g := range faceGlyphs(st.Face, w.tr.Lang()) {
		w.Surface.El(fmt.Sprintf("analog-face-%d", i)).SetText(g)
	}

	if st.Face == "swiss" || st.Face == "braun" {
		el.SetData("face", st.Face)
	} else {
		el.SetData("face", "")
	}
	el.SetData("shape", st.Shape)
	el.SetData("hands", st.Hands)

	whiteOpaque := strings.Contains(st.Background.RGB, rgbWhite) && st.Background.Alpha > 0.5
	el.ToggleClass("transparent", st.Background.Alpha == 0)
	el.ToggleClass("white-opaque", whiteOpaque)

	el.SetStyle("--analog-border", rgba(st.Border))
	el.SetStyle("--analog-background", rgba(st.Background))

	w.shadeButton("border", st.Border.RGB)
	w.shadeButton("background", st.Background.RGB)
}

// shadeButton marks the shade a click on the button applies: "light" turns
// a white colour black, "dark" turns a black colour white.
func (w *Widget) shadeButton(option, rgb string) {
	btn := w.Surface.El("i_clock" + option + "-shade")
	light := rgb != rgbBlack
	btn.ToggleClass("shade-light", light)
	btn.ToggleClass("shade-dark", !light)
}

func (w *Widget) clockSize(size float64) {
	if size <= 0 {
		size = 1
	}
	w.Surface.El("root").SetStyle("--clock-size", formatFloat(size)+"em")
}
