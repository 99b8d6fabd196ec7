package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"script tag stripped", "<script>a</script>b", "b"},
		{"plain text untouched", "Lisbon in spring", "Lisbon in spring"},
		{"empty passes through", "", ""},
		{"nested markup stripped", "<b>bold <i>and italic</i></b>", "bold and italic"},
		{"img onerror stripped", `<img src=x onerror=alert(1)>hello`, "hello"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"anchor stripped keeps text", `<a href="https://evil.example">click</a>`, "click"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeStruct(t *testing.T) {
	type request struct {
		Title   string
		Content string
		Count   int
		Keep    *bool
	}

	keep := true
	req := &request{
		Title:   "<script>x</script>Trip report",
		Content: "  <b>great</b> time  ",
		Count:   3,
		Keep:    &keep,
	}

	SanitizeStruct(req)

	assert.Equal(t, "Trip report", req.Title)
	assert.Equal(t, "great time", req.Content)
	assert.Equal(t, 3, req.Count)
	assert.True(t, *req.Keep)
}

func TestSanitizeStructIgnoresNonStructs(t *testing.T) {
	// Must not panic on nil or non-pointer input.
	SanitizeStruct(nil)
	SanitizeStruct("plain string")
	var req *struct{ Name string }
	SanitizeStruct(req)
}
