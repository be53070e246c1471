package main

import "testing"

func TestSpokenOnTurn(t *testing.T) {
	start := []int{0, 3, 6}
	for i, want := range []int{0, 3, 6, 0, 3, 3, 1, 0, 4, 0} {
		if got := spokenOnTurn(start, i+1); got != want {
			t.Errorf("turn %d: got %d; want %d", i+1, got, want)
		}
	}
	if got := spokenOnTurn(start, 2020); got != 436 {
		t.Errorf("turn 2020: got %d; want 436", got)
	}
}

func TestSpokenOnTurnLong(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 30M-turn games in short mode")
	}
	for _, tt := range []struct {
		start []int
		want  int
	}{
		{[]int{0, 3, 6}, 175594},
		{[]int{1, 3, 2}, 2578},
		{[]int{2, 1, 3}, 3544142},
		{[]int{1, 2, 3}, 261214},
		{[]int{2, 3, 1}, 6895259},
		{[]int{3, 2, 1}, 18},
		{[]int{3, 1, 2}, 362},
	} {
		if got := spokenOnTurn(tt.start, 30000000); got != tt.want {
			t.Errorf("%v: got %d; want %d", tt.start, got, tt.want)
		}
	}
}

func TestParseStartingNumbers(t *testing.T) {
	for _, input := range []string{"", "1,2\n3,4\n", "1,-2", "1,,2"} {
		if _, err := parseStartingNumbers(input); err == nil {
			t.Errorf("parseStartingNumbers(%q) succeeded", input)
		}
	}
}

func TestDay15Configure(t *testing.T) {
	for _, tt := range []struct {
		sec map[string]string
		ok  bool
	}{
		{map[string]string{"turnsA": "10", "turnsB": "2147483647"}, true},
		{map[string]string{"turnsB": "2147483648"}, false},
		{map[string]string{"turnsA": "0"}, false},
		{map[string]string{"turnsA": "-5"}, false},
		{map[string]string{"turns": "5"}, false},
	} {
		d := solutions[15]().(*day15)
		err := d.configure(tt.sec)
		if (err == nil) != tt.ok {
			t.Errorf("configure(%v): got error %v", tt.sec, err)
		}
	}
}

func TestDay15ErrorAnswer(t *testing.T) {
	got, err := solutions[15]().partA("1,x\n")
	if err == nil {
		t.Fatal("malformed starting numbers accepted")
	}
	if got != nil {
		t.Errorf("got answer %v alongside error; want nil", got)
	}
}
