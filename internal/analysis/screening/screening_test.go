package screening

import "testing"

func TestScorePHQ9Bands(t *testing.T) {
	cases := []struct {
		answers  []int
		severity string
	}{
		{[]int{0, 0, 0, 0, 0, 0, 0, 0, 0}, "Minimal Depression"},
		{[]int{1, 1, 1, 1, 1, 0, 0, 0, 0}, "Mild Depression"},
		{[]int{2, 2, 2, 2, 2, 0, 0, 0, 0}, "Moderate Depression"},
		{[]int{3, 3, 3, 3, 3, 0, 0, 0, 0}, "Moderately Severe Depression"},
		{[]int{3, 3, 3, 3, 3, 3, 3, 3, 3}, "Severe Depression"},
	}
	for _, tc := range cases {
		res, err := Score(PHQ9, tc.answers)
		if err != nil {
			t.Fatalf("Score err: %v", err)
		}
		if res.Severity != tc.severity {
			t.Fatalf("score %d: got %q want %q", res.Score, res.Severity, tc.severity)
		}
	}
}

func TestScoreGAD7SevereBand(t *testing.T) {
	res, err := Score(GAD7, []int{3, 3, 3, 3, 3, 0, 0})
	if err != nil {
		t.Fatalf("Score err: %v", err)
	}
	if res.Score != 15 || res.Severity != "Severe Anxiety" {
		t.Fatalf("got %d %q", res.Score, res.Severity)
	}
}

func TestScoreIgnoresUnanswered(t *testing.T) {
	res, err := Score(GAD7, []int{-1, -1, -1, -1, -1, -1, 2})
	if err != nil {
		t.Fatalf("Score err: %v", err)
	}
	if res.Score != 2 {
		t.Fatalf("unanswered questions must score zero, got %d", res.Score)
	}
}

func TestScoreRejectsBadInput(t *testing.T) {
	if _, err := Score(PHQ9, []int{0, 1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := Score(GAD7, []int{0, 0, 0, 0, 0, 0, 4}); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := Score(Instrument("pcl5"), nil); err == nil {
		t.Fatal("expected unknown instrument error")
	}
}
