package nlp

import (
	"reflect"
	"testing"
)

func TestExtractDaysCount(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"явное число", "3 days please", 3, true},
		{"голое число", "4", 4, true},
		{"раз в неделю", "5 times per week", 5, true},
		{"полная неделя", "full week", 7, true},
		{"будни", "weekdays only", 5, true},
		{"как обычно", "as usual", 6, true},
		{"выходные", "just the weekend", 2, true},
		{"две недели", "2 weeks of training", 14, true},
		{"перечисление дней", "monday wednesday friday", 3, true},
		{"нет информации", "i like lifting", 0, false},
		{"пустая строка", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.ExtractDaysCount(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ExtractDaysCount(%q) = (%d, %v), ожидали (%d, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMentionedDays(t *testing.T) {
	e := newTestExtractor()

	got := e.MentionedDays("friday and monday, maybe wednesday")
	want := []string{"monday", "wednesday", "friday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MentionedDays = %v, ожидали канонический порядок %v", got, want)
	}
}

func TestExtractDayNames(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name  string
		text  string
		count int
		want  []string
	}{
		{"пустой ответ", "", 3, []string{"Monday", "Tuesday", "Wednesday"}},
		{"nothing", "nothing", 2, []string{"Monday", "Tuesday"}},
		{"через запятую", "push, pull, legs", 3, []string{"Push", "Pull", "Legs"}},
		{"дни недели с добором", "monday and friday", 3, []string{"Monday", "Friday", "Tuesday"}},
		{"слово day", "monster day crunch day", 2, []string{"Monster Day", "Crunch Day"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractDayNames(tt.text, tt.count)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractDayNames(%q, %d) = %v, ожидали %v", tt.text, tt.count, got, tt.want)
			}
		})
	}
}

func TestIsNothingResponse(t *testing.T) {
	for _, s := range []string{"nothing", "no", "skip", "Default", " none "} {
		if !IsNothingResponse(s) {
			t.Errorf("IsNothingResponse(%q) = false, ожидали true", s)
		}
	}
	if IsNothingResponse("push and pull") {
		t.Error("содержательный ответ распознан как отказ")
	}
}
