package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpetrun5/formscout/internal/analyzer"
	"github.com/mpetrun5/formscout/internal/dom"
)

func loginResult() *analyzer.PageResult {
	return &analyzer.PageResult{
		Success: true,
		URL:     "https://example.com/login",
		Forms: []analyzer.Form{
			{
				ID:           "login_form",
				SubmitButton: "Log In",
				Fields: []dom.Field{
					{ID: "email", Name: "email", Type: dom.FieldEmail},
					{ID: "password", Name: "password", Type: dom.FieldPassword},
				},
			},
		},
	}
}

func TestGenerate_LoginForm(t *testing.T) {
	got := Generate(loginResult())

	want := "set email to test@example.com\n" +
		"set password to password\n" +
		"click Log In\n"
	assert.Equal(t, want, got)
}

func TestGenerate_Deterministic(t *testing.T) {
	res := loginResult()
	first := Generate(res)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Generate(res))
	}
}

func TestGenerate_SetsBeforeClick(t *testing.T) {
	got := Generate(loginResult())
	assert.Less(t, strings.Index(got, "set email"), strings.Index(got, "click Log In"))
}

func TestGenerate_SampleValues(t *testing.T) {
	res := &analyzer.PageResult{
		Success: true,
		Forms: []analyzer.Form{
			{
				SubmitButton: "Submit",
				Fields: []dom.Field{
					{Name: "bio", Type: dom.FieldTextarea},
					{Name: "terms", Type: dom.FieldCheckbox, Options: []string{"terms"}},
					{Name: "plan", Type: dom.FieldRadio, Options: []string{"free", "pro"}},
					{Name: "country", Type: dom.FieldSelect, Options: []string{"Croatia", "Japan"}},
					{Name: "color", Type: dom.FieldOther},
				},
			},
		},
	}

	got := Generate(res)
	want := "set bio to This is a default textarea input.\n" +
		"set terms to checked\n" +
		"set plan to free\n" +
		"set country to Croatia\n" +
		"set color to defaultValue\n" +
		"click Submit\n"
	assert.Equal(t, want, got)
}

func TestGenerate_UnaddressableFieldOmitted(t *testing.T) {
	res := &analyzer.PageResult{
		Success: true,
		Forms: []analyzer.Form{
			{
				SubmitButton: "Go",
				Fields: []dom.Field{
					{Type: dom.FieldText}, // no id, no name
					{Name: "ok", Type: dom.FieldText},
				},
			},
		},
	}

	got := Generate(res)
	assert.Equal(t, "set ok to defaultText\nclick Go\n", got)
}

func TestGenerate_MultipleFormsSeparatedByBlankLine(t *testing.T) {
	res := &analyzer.PageResult{
		Success: true,
		Forms: []analyzer.Form{
			{SubmitButton: "First", Fields: []dom.Field{{Name: "a", Type: dom.FieldText}}},
			{SubmitButton: "Second", Fields: []dom.Field{{Name: "b", Type: dom.FieldText}}},
		},
	}

	got := Generate(res)
	want := "set a to defaultText\n" +
		"click First\n" +
		"\n" +
		"set b to defaultText\n" +
		"click Second\n"
	assert.Equal(t, want, got)
}

func TestGenerate_FailedOrEmptyResult(t *testing.T) {
	assert.Equal(t, "", Generate(nil))

	assert.Equal(t, "", Generate(analyzer.Failed("https://example.com", "navigation timed out")))

	empty := &analyzer.PageResult{Success: true, URL: "https://example.com"}
	assert.Equal(t, "", Generate(empty))
}

func TestGenerateWith_Overrides(t *testing.T) {
	values := map[string]string{
		"email":    "jane@corp.example",
		"password": "hunter2",
	}

	got := GenerateWith(loginResult(), values)
	want := "set email to jane@corp.example\n" +
		"set password to hunter2\n" +
		"click Log In\n"
	assert.Equal(t, want, got)
}

func TestGenerateWith_PartialOverride(t *testing.T) {
	got := GenerateWith(loginResult(), map[string]string{"email": "jane@corp.example"})
	assert.Contains(t, got, "set email to jane@corp.example\n")
	assert.Contains(t, got, "set password to password\n")
}
