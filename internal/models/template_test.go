package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDaysJSONKeepsOrder(t *testing.T) {
	tpl := NewSkeleton([]string{"Push Day", "Pull Day", "Leg Day"})

	data, err := json.Marshal(&tpl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Template
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"push_day", "pull_day", "leg_day"}
	if !reflect.DeepEqual(back.DayKeys(), want) {
		t.Errorf("порядок дней потерян: %v, ожидали %v", back.DayKeys(), want)
	}
	if back.Days[0].Title != "Push Day" {
		t.Errorf("Title = %q, ожидали Push Day", back.Days[0].Title)
	}
}

func TestRepsUnmarshalFlexible(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Reps
	}{
		{"число", `{"id":1,"name":"Squat","sets":3,"reps":10}`, "10"},
		{"строка-диапазон", `{"id":1,"name":"Squat","sets":3,"reps":"8-12"}`, "8-12"},
		{"null", `{"id":1,"name":"Squat","sets":3,"reps":null}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ex Exercise
			if err := json.Unmarshal([]byte(tt.in), &ex); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if tt.name == "null" {
				if ex.Reps != nil && *ex.Reps != "" {
					t.Errorf("Reps = %q, ожидали пустое", *ex.Reps)
				}
				return
			}
			if ex.Reps == nil || *ex.Reps != tt.want {
				t.Errorf("Reps = %v, ожидали %q", ex.Reps, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	tpl := NewSkeleton([]string{"Monday"})
	tpl.Days[0].Exercises = []Exercise{NewExercise(1, "Squat")}

	clone := tpl.Clone()
	*clone.Days[0].Exercises[0].Sets = 9
	clone.Days[0].Title = "Changed"

	if *tpl.Days[0].Exercises[0].Sets == 9 {
		t.Error("копия разделяет указатели с оригиналом")
	}
	if tpl.Days[0].Title == "Changed" {
		t.Error("копия разделяет дни с оригиналом")
	}
}

func TestSameDayKeys(t *testing.T) {
	a := NewSkeleton([]string{"Monday", "Tuesday"})
	b := NewSkeleton([]string{"Tuesday", "Monday"})
	c := NewSkeleton([]string{"Monday", "Wednesday"})

	if !a.SameDayKeys(&b) {
		t.Error("одинаковые наборы ключей в разном порядке должны совпадать")
	}
	if a.SameDayKeys(&c) {
		t.Error("разные наборы ключей не должны совпадать")
	}
}
