package fuzzy

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"точное совпадение", "bench press", "bench press", 1.0, 1.0},
		{"регистр и пробелы", "  Bench Press ", "bench press", 1.0, 1.0},
		{"слитное написание", "benchpress", "bench press", 0.95, 0.95},
		{"подстрока", "bench", "bench press", 0.85, 1.0},
		{"опечатка benhc", "benhc press", "bench press", 0.8, 1.0},
		{"опечатка sqaut", "sqaut", "squat", 0.7, 1.0},
		{"опечатка dumbell", "dumbell curl", "dumbbell curl", 0.8, 1.0},
		{"разные упражнения", "squat", "plank", 0.0, 0.49},
		{"пустая строка", "", "squat", 0.0, 0.0},
		{"обе пустые", "", "", 0.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if got < tt.min || got > tt.max {
				t.Errorf("Similarity(%q, %q) = %.2f, ожидали в [%.2f, %.2f]", tt.a, tt.b, got, tt.min, tt.max)
			}
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"bench press", "benchpress"},
		{"sqaut", "squat"},
		{"lat pulldown", "pulldown"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q)=%.3f != Similarity(%q, %q)=%.3f", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"Squat", "Bench Press", "Deadlift", "Lunge"}

	idx, score := BestMatch("benhc press", candidates)
	if idx != 1 {
		t.Fatalf("ожидали Bench Press (1), получили %d (%.2f)", idx, score)
	}
	if score < 0.8 {
		t.Errorf("слишком низкая оценка для опечатки: %.2f", score)
	}

	idx, _ = BestMatch("", candidates)
	if idx != -1 {
		t.Errorf("пустой запрос должен давать -1, получили %d", idx)
	}
}

func TestBestMatchDeterministic(t *testing.T) {
	// При равных оценках побеждает первый кандидат
	candidates := []string{"Row", "Row"}
	idx, _ := BestMatch("row", candidates)
	if idx != 0 {
		t.Errorf("ожидали первый индекс при равных оценках, получили %d", idx)
	}
}

func TestWordMatch(t *testing.T) {
	tests := []struct {
		target, word string
		want         bool
	}{
		{"create", "create", true},
		{"create", "craete", true},
		{"create", "remove", false},
		{"on", "on", true},
		{"on", "in", false},
	}
	for _, tt := range tests {
		if got := WordMatch(tt.target, tt.word); got != tt.want {
			t.Errorf("WordMatch(%q, %q) = %v, ожидали %v", tt.target, tt.word, got, tt.want)
		}
	}
}
