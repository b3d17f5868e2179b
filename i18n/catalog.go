package i18n

var translations = map[string]map[string]string{
	"fr": {
		"Sunday": "dimanche", "Monday": "lundi", "Tuesday": "mardi", "Wednesday": "mercredi",
		"Thursday": "jeudi", "Friday": "vendredi", "Saturday": "samedi",
		"January": "janvier", "February": "février", "March": "mars", "April": "avril",
		"May": "mai", "June": "juin", "July": "juillet", "August": "août",
		"September": "septembre", "October": "octobre", "November": "novembre", "December": "décembre",
		"Good morning": "bonjour", "Good afternoon": "bon après-midi", "Good evening": "bonsoir",
		"Good night": "bonne nuit", "Sweet dreams": "faites de beaux rêves",
	},
	"de": {
		"Sunday": "Sonntag", "Monday": "Montag", "Tuesday": "Dienstag", "Wednesday": "Mittwoch",
		"Thursday": "Donnerstag", "Friday": "Freitag", "Saturday": "Samstag",
		"January": "Januar", "February": "Februar", "March": "März", "April": "April",
		"May": "Mai", "June": "Juni", "July": "Juli", "August": "August",
		"September": "September", "October": "Oktober", "November": "November", "December": "Dezember",
		"Good morning": "Guten Morgen", "Good afternoon": "Guten Tag", "Good evening": "Guten Abend",
		"Good night": "Gute Nacht", "Sweet dreams": "Süße Träume",
	},
	"es": {
		"Sunday": "domingo", "Monday": "lunes", "Tuesday": "martes", "Wednesday": "miércoles",
		"Thursday": "jueves", "Friday": "viernes", "Saturday": "sábado",
		"January": "enero", "February": "febrero", "March": "marzo", "April": "abril",
		"May": "mayo", "June": "junio", "July": "julio", "August": "agosto",
		"September": "septiembre", "October": "octubre", "November": "noviembre", "December": "diciembre",
		"Good morning": "buenos días", "Good afternoon": "buenas tardes", "Good evening": "buenas noches",
		"Good night": "buenas noches", "Sweet dreams": "dulces sueños",
	},
	"it": {
		"Sunday": "domenica", "Monday": "lunedì", "Tuesday": "martedì", "Wednesday": "mercoledì",
		"Thursday": "giovedì", "Friday": "venerdì", "Saturday": "sabato",
		"January": "gennaio", "February": "febbraio", "March": "marzo", "April": "aprile",
		"May": "maggio", "June": "giugno", "July": "luglio", "August": "agosto",
		"September": "settembre", "October": "ottobre", "November": "novembre", "December": "dicembre",
		"Good morning": "buongiorno", "Good afternoon": "buon pomeriggio", "Good evening": "buonasera",
		"Good night": "buonanotte", "Sweet dreams": "sogni d'oro",
	},
	"jp": {
		"Sunday": "日曜日", "Monday": "月曜日", "Tuesday": "火曜日", "Wednesday": "水曜日",
		"Thursday": "木曜日", "Friday": "金曜日", "Saturday": "土曜日",
		"January": "1月", "February": "2月", "March": "3月", "April": "4月",
		"May": "5月", "June": "6月", "July": "7月", "August": "8月",
		"September": "9月", "October": "10月", "November": "11月", "December": "12月",
		"Good morning": "おはようございます", "Good afternoon": "こんにちは", "Good evening": "こんばんは",
		"Good night": "おやすみなさい", "Sweet dreams": "良い夢を",
	},
	"zh_CN": {
		"Sunday": "星期日", "Monday": "星期一", "Tuesday": "星期二", "Wednesday": "星期三",
		"Thursday": "星期四", "Friday": "星期五", "Saturday": "星期六",
		"January": "一月", "February": "二月", "March": "三月", "April": "四月",
		"May": "五月", "June": "六月", "July": "七月", "August": "八月",
		"September": "九月", "October": "十月", "November": "十一月", "December": "十二月",
		"Good morning": "早上好", "Good afternoon": "下午好", "Good evening": "晚上好",
		"Good night": "晚安", "Sweet dreams": "好梦",
	},
}
