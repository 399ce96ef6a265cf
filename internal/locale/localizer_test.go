package locale

import (
	"encoding/json"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// extractMessageKeys returns the string constants declared in keys.go
func extractMessageKeys(t *testing.T) []string {
	t.Helper()

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, "keys.go", nil, 0)
	if err != nil {
		t.Fatalf("failed to parse keys.go: %v", err)
	}

	var keys []string
	for _, decl := range node.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}
		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok || len(valueSpec.Values) == 0 {
				continue
			}
			if lit, ok := valueSpec.Values[0].(*ast.BasicLit); ok && lit.Kind == token.STRING {
				keys = append(keys, strings.Trim(lit.Value, `"`))
			}
		}
	}

	sort.Strings(keys)
	return keys
}

func TestTranslationCompleteness(t *testing.T) {
	data, err := localizedata.ReadFile("locales/en.json")
	if err != nil {
		t.Fatalf("failed to read en.json: %v", err)
	}

	var catalog map[string]string
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatalf("failed to parse en.json: %v", err)
	}

	keys := extractMessageKeys(t)
	if len(keys) == 0 {
		t.Fatal("no message keys found in keys.go")
	}

	for _, key := range keys {
		if strings.TrimSpace(catalog[key]) == "" {
			t.Errorf("missing translation for key %q", key)
		}
	}

	declared := make(map[string]bool, len(keys))
	for _, key := range keys {
		declared[key] = true
	}
	for key := range catalog {
		if !declared[key] {
			t.Errorf("unused translation %q is not declared in keys.go", key)
		}
	}
}

func TestNewLocalizer(t *testing.T) {
	l, err := NewLocalizer(En)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := l.MustLocalize(StartButtonVisit); got != "Visit Web Page" {
		t.Errorf("StartButtonVisit = %q", got)
	}
}

func TestStartGreetingTemplate(t *testing.T) {
	l, err := NewLocalizer(En)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := l.MustLocalizeWithTemplate(StartGreeting, "https://example.com?pr=true")
	expected := "Hello! This is a test bot. You can visit the web page by clicking the button below.\n\n" +
		"https://example.com?pr=true\n<a href='https://example.com?pr=true'>URL</a>"
	if got != expected {
		t.Errorf("StartGreeting =\n%q\nwant\n%q", got, expected)
	}
}

// TestStartGreetingEmbedsURLTwice checks that the template inserts the value verbatim in both places
func TestStartGreetingEmbedsURLTwice(t *testing.T) {
	l, err := NewLocalizer(En)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("value appears as text and as anchor target", prop.ForAll(
		func(value string) bool {
			text := l.MustLocalizeWithTemplate(StartGreeting, value)
			return strings.Contains(text, "\n"+value+"\n") &&
				strings.Contains(text, "<a href='"+value+"'>URL</a>")
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	l, err := NewLocalizer("de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := l.MustLocalize(StartButtonVisit); got != "Visit Web Page" {
		t.Errorf("StartButtonVisit = %q", got)
	}
}
