package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    rune
	}{
		{name: "tie goes to comma", content: "a,b|c,d|e\nx|y|z|w", want: ','},
		{name: "more pipes", content: "a,b|c|d\n1,2,3,4,5,6", want: '|'},
		{name: "only commas", content: "Worker ID,First Name,Last Name", want: ','},
		{name: "only pipes without newline", content: "Worker ID|First Name", want: '|'},
		{name: "empty input", content: "", want: ','},
		{name: "later lines ignored", content: "header\n|||||", want: ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDelimiter(tt.content))
		})
	}
}
