package vrex_test

import (
	"testing"

	"github.com/vlinear/vrex"
)

// TestDirectoryFixtureNamedGroupsAndRepetition reproduces the contact-card
// parsing example distributed with drore (test.py): a pattern mixing
// nested optional groups, an alternation inside a repetition, and named
// captures that close a variable number of times per entry.
func TestDirectoryFixtureNamedGroupsAndRepetition(t *testing.T) {
	re := vrex.MustCompile(`(\s*Name: (?P<name>\w+)\n(?:Title: (?P<title>\w+)\n)?(?:Phone: (?P<phone>\d+)\n|Email: (?P<email>\w+)\n)*\s*)*`)

	text := "\nName: Amir\nPhone: 0546320668\nEmail: amir_livne_baron\n" +
		"\nName: Dror\nTitle: Mr\nEmail: livne_dror\n" +
		"\nName: Hagar\nPhone: 0543384678\nEmail: strayblues\nEmail: abc0543384678\n"

	m, err := re.Match(text)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil {
		t.Fatal("expected the whole fixture to match")
	}

	names := m.GetAll("name")
	wantNames := []string{"Amir", "Dror", "Hagar"}
	if len(names) != len(wantNames) {
		t.Fatalf("got %d \"name\" captures, want %d", len(names), len(wantNames))
	}
	for i, n := range names {
		if n.Text() != wantNames[i] {
			t.Errorf("names[%d] = %q, want %q", i, n.Text(), wantNames[i])
		}
	}

	titles := m.GetAll("title")
	if len(titles) != 1 || titles[0].Text() != "Mr" {
		t.Fatalf("titles = %v, want exactly one capture \"Mr\"", titles)
	}

	phones := m.GetAll("phone")
	wantPhones := []string{"0546320668", "0543384678"}
	if len(phones) != len(wantPhones) {
		t.Fatalf("got %d \"phone\" captures, want %d", len(phones), len(wantPhones))
	}
	for i, p := range phones {
		if p.Text() != wantPhones[i] {
			t.Errorf("phones[%d] = %q, want %q", i, p.Text(), wantPhones[i])
		}
	}

	emails := m.GetAll("email")
	wantEmails := []string{"amir_livne_baron", "livne_dror", "strayblues", "abc0543384678"}
	if len(emails) != len(wantEmails) {
		t.Fatalf("got %d \"email\" captures, want %d", len(emails), len(wantEmails))
	}
	for i, e := range emails {
		if e.Text() != wantEmails[i] {
			t.Errorf("emails[%d] = %q, want %q", i, e.Text(), wantEmails[i])
		}
	}
}
