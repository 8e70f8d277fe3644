package subjects

import "testing"

func TestWithReligionsExpandsAgama(t *testing.T) {
	list := WithReligions("SMA")
	for _, s := range list {
		if s == "AGAMA" {
			t.Error("WithReligions() kept the AGAMA placeholder")
		}
	}
	found := 0
	for _, s := range list {
		for _, r := range Religions {
			if s == r {
				found++
			}
		}
	}
	if found != len(Religions) {
		t.Errorf("WithReligions() contains %d religion subjects, want %d", found, len(Religions))
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		subject string
		want    bool
	}{
		{name: "catalog subject", level: "SD", subject: "IPA", want: true},
		{name: "religion subject", level: "SMP", subject: "HINDU", want: true},
		{name: "unknown subject", level: "SMA", subject: "ASTROLOGI", want: false},
		{name: "unknown level", level: "KULIAH", subject: "IPA", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.level, tt.subject); got != tt.want {
				t.Errorf("IsValid(%s, %s) = %v, want %v", tt.level, tt.subject, got, tt.want)
			}
		})
	}
}
