package matcher

import (
	"reflect"
	"strings"
	"testing"
	"unsafe"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

func TestSearch_CaseSensitive(t *testing.T) {
	got := Search("duct", poem)
	want := []string{"safe, fast, productive."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search() = %q, want %q", got, want)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	got := SearchCaseInsensitive("rUsT", poem)
	want := []string{"Rust:"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchCaseInsensitive() = %q, want %q", got, want)
	}

	got = SearchCaseInsensitive("rUsT", "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.")
	want = []string{"Rust:", "Trust me."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchCaseInsensitive() = %q, want %q", got, want)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		ignoreCase bool
		input      string
		want       []string
	}{
		{
			name:  "no match",
			query: "xyz",
			input: "hello world\ngoodbye world\n",
			want:  nil,
		},
		{
			name:  "empty query matches every line",
			query: "",
			input: "one\n\nthree",
			want:  []string{"one", "", "three"},
		},
		{
			name:       "empty query matches every line ignoring case",
			query:      "",
			ignoreCase: true,
			input:      "One\nTwo\n",
			want:       []string{"One", "Two"},
		},
		{
			name:  "trailing line without terminator",
			query: "end",
			input: "start\nthe end",
			want:  []string{"the end"},
		},
		{
			name:  "final newline adds no empty line",
			query: "",
			input: "a\nb\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty lines are entries",
			query: "",
			input: "\n\n",
			want:  []string{"", ""},
		},
		{
			name:  "crlf terminators stripped",
			query: "b",
			input: "a\r\nb\r\nab",
			want:  []string{"b", "ab"},
		},
		{
			name:  "duplicate lines kept",
			query: "x",
			input: "x\ny\nx\n",
			want:  []string{"x", "x"},
		},
		{
			name:  "multiple occurrences count once",
			query: "ab",
			input: "ababab\n",
			want:  []string{"ababab"},
		},
		{
			name:       "unicode fold",
			query:      "ÉTÉ",
			ignoreCase: true,
			input:      "un été chaud\nhiver\n",
			want:       []string{"un été chaud"},
		},
		{
			name:  "empty text",
			query: "a",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.query, tt.ignoreCase).FindAll(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAll(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSearch_EveryContainingLineInOrder(t *testing.T) {
	text := "alpha\nbeta\nALPHA beta\ngamma\nalphabet\n\nAlpha"
	queries := []string{"alpha", "Alpha", "beta", "a", "zzz", "ALPHA", "t\n"}

	for _, q := range queries {
		for _, ignoreCase := range []bool{false, true} {
			var want []string
			for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
				l, qq := line, q
				if ignoreCase {
					l, qq = strings.ToLower(line), strings.ToLower(q)
				}
				if strings.Contains(l, qq) {
					want = append(want, line)
				}
			}
			got := New(q, ignoreCase).FindAll(text)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("query %q ignoreCase=%v: got %q, want %q", q, ignoreCase, got, want)
			}
		}
	}
}

func TestSearch_InsensitiveIsSuperset(t *testing.T) {
	text := "Rust:\nrust\nRUST\ntrust\nnothing"
	for _, q := range []string{"rust", "Rust", "RUST", "ust"} {
		sensitive := Search(q, text)
		insensitive := SearchCaseInsensitive(q, text)
		if len(insensitive) < len(sensitive) {
			t.Errorf("query %q: insensitive %d < sensitive %d", q, len(insensitive), len(sensitive))
		}
	}
}

func TestSearch_ResultsShareText(t *testing.T) {
	text := "first\nsecond match\nthird"
	got := Search("match", text)
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0] != "second match" {
		t.Errorf("match = %q, want %q", got[0], "second match")
	}
	if unsafe.StringData(got[0]) != unsafe.StringData(text[6:]) {
		t.Error("match does not point into the searched text")
	}
}

func TestFixedMatcher_Positions(t *testing.T) {
	tests := []struct {
		name  string
		query string
		line  string
		want  [][2]int
	}{
		{"start middle end", "duct", "ducted dog duct", [][2]int{{0, 4}, {11, 15}}},
		{"non overlapping", "aa", "aaaaa", [][2]int{{0, 2}, {2, 4}}},
		{"whole line", "abc", "abc", [][2]int{{0, 3}}},
		{"case differs", "Duct", "duct", nil},
		{"empty query", "", "abc", nil},
		{"empty line", "a", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFixedMatcher(tt.query).Positions(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Positions(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestNew_SelectsImplementation(t *testing.T) {
	if _, ok := New("q", false).(*FixedMatcher); !ok {
		t.Error("New(ignoreCase=false) should return *FixedMatcher")
	}
	if _, ok := New("q", true).(*FoldMatcher); !ok {
		t.Error("New(ignoreCase=true) should return *FoldMatcher")
	}
}
