package catalog

import "testing"

func TestDaysToken(t *testing.T) {
	for _, tst := range []struct {
		days []string
		tok  string
	}{
		{[]string{"Mon", "Wed", "Fri"}, "MWF"},
		{[]string{"Tue", "Thu"}, "TR"},
		{[]string{"Sun", "Sat"}, "US"},
		{[]string{"Wed", "Mon"}, "WM"}, // selection order, not week order
		{[]string{"Blursday"}, ""},
		{[]string{}, ""},
		{nil, ""},
	} {
		if tok := DaysToken(tst.days); tok != tst.tok {
			t.Errorf("DaysToken(%v) = %q, want %q", tst.days, tok, tst.tok)
		}
	}
}

func TestTermCode(t *testing.T) {
	if c := TermCode("Fall 2025"); c != "2258" {
		t.Errorf("got %q, want 2258", c)
	}
	if c := TermCode("Spring 2025"); c != "2252" {
		t.Errorf("got %q, want 2252", c)
	}
	// unknown terms pass through
	if c := TermCode("Fall 1999"); c != "Fall 1999" {
		t.Errorf("unknown term should pass through, got %q", c)
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, label := range ModeLabels() {
		if got := ModeLabel(ModeCode(label)); got != label {
			t.Errorf("round trip of %q gave %q", label, got)
		}
	}
	if c := ModeCode("In Person"); c != "P" {
		t.Errorf("got %q, want P", c)
	}
	if l := ModeLabel("WA"); l != "Asynchronous Online" {
		t.Errorf("got %q, want Asynchronous Online", l)
	}
	// unknown codes pass through both ways
	if l := ModeLabel("XX"); l != "XX" {
		t.Errorf("unknown code should pass through, got %q", l)
	}
	if c := ModeCode("Carrier Pigeon"); c != "Carrier Pigeon" {
		t.Errorf("unknown label should pass through, got %q", c)
	}
}

func TestLevelToken(t *testing.T) {
	for bucket, want := range map[string]string{
		"100": "1", "200": "2", "300": "3", "400": "4", "500+": "5",
	} {
		tok, ok := LevelToken(bucket)
		if !ok || tok != want {
			t.Errorf("LevelToken(%q) = %q,%v, want %q,true", bucket, tok, ok, want)
		}
	}
	if _, ok := LevelToken("kindergarten"); ok {
		t.Error("unmapped bucket should not resolve")
	}
}

func TestCourseLevel(t *testing.T) {
	for _, tst := range []struct {
		num   int
		level string
	}{
		{150, "100 Level"},
		{101, "100 Level"},
		{210, "200 Level"},
		{305, "300 Level"},
		{401, "400 Level"},
		{500, "600+ Level"},
		{610, "600+ Level"},
		{99, "Other"},
		{0, "Other"},
		{-5, "Other"},
	} {
		if l := CourseLevel(tst.num); l != tst.level {
			t.Errorf("CourseLevel(%d) = %q, want %q", tst.num, l, tst.level)
		}
	}
}

func TestCourseCareer(t *testing.T) {
	if c := CourseCareer(650); c != "Graduate" {
		t.Errorf("got %q, want Graduate", c)
	}
	if c := CourseCareer(101); c != "Undergraduate" {
		t.Errorf("got %q, want Undergraduate", c)
	}
	if c := CourseCareer(600); c != "Graduate" {
		t.Errorf("600 should be Graduate, got %q", c)
	}
	if c := CourseCareer(0); c != "Undergraduate" {
		t.Errorf("got %q, want Undergraduate", c)
	}
}

func TestFormatTime(t *testing.T) {
	for _, tst := range []struct{ in, out string }{
		{"", ""},
		{"14:30:00", "2:30 PM"},
		{"00:05:00", "12:05 AM"},
		{"12:00:00", "12:00 PM"},
		{"09:15:00", "9:15 AM"},
		{"23:59:00", "11:59 PM"},
		{"garbage", ""},
	} {
		if got := FormatTime(tst.in); got != tst.out {
			t.Errorf("FormatTime(%q) = %q, want %q", tst.in, got, tst.out)
		}
	}
}

func TestAvailability(t *testing.T) {
	for _, tst := range []struct {
		enrolled, capacity int
		want               string
	}{
		{28, 30, StatusFull},    // 0.933
		{20, 30, StatusOpen},    // 0.667
		{24, 30, StatusLimited}, // 0.80
		{27, 30, StatusFull},    // exactly 0.90
		{21, 30, StatusLimited}, // exactly 0.70
		{0, 0, StatusFull},      // zero capacity never divides
		{5, -1, StatusFull},
		{0, 30, StatusOpen},
	} {
		if got := Availability(tst.enrolled, tst.capacity); got != tst.want {
			t.Errorf("Availability(%d, %d) = %q, want %q",
				tst.enrolled, tst.capacity, got, tst.want)
		}
	}
}
